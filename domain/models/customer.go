package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `gorm:"size:200;not null"`
	Phone     string    `gorm:"size:30;index;not null"`
	Email     string    `gorm:"size:200;index"`
	Comment   string    `gorm:"size:1000"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Customer) TableName() string {
	return "customers"
}
