package models

import (
	"time"

	"github.com/google/uuid"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

type Review struct {
	ID        uuid.UUID    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductID *uuid.UUID   `gorm:"type:uuid;index"` // nil = review of the shop itself
	Author    string       `gorm:"size:200;not null"`
	Text      string       `gorm:"type:text;not null"`
	Rating    int          `gorm:"not null"` // 1..5
	Status    ReviewStatus `gorm:"size:20;not null;default:'PENDING'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Product *Product `gorm:"foreignKey:ProductID"`
}

func (Review) TableName() string {
	return "reviews"
}
