package models

import (
	"time"

	"github.com/google/uuid"
)

type CallbackStatus string

const (
	CallbackStatusNew        CallbackStatus = "NEW"
	CallbackStatusInProgress CallbackStatus = "IN_PROGRESS"
	CallbackStatusDone       CallbackStatus = "DONE"
)

// Callback is a storefront "call me back" request. Creation is the one
// unauthenticated write in the system.
type Callback struct {
	ID        uuid.UUID      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string         `gorm:"size:200;not null"`
	Phone     string         `gorm:"size:30;not null"`
	Comment   string         `gorm:"size:1000"`
	Status    CallbackStatus `gorm:"size:20;not null;default:'NEW'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Callback) TableName() string {
	return "callbacks"
}
