package models

import (
	"time"

	"github.com/google/uuid"
)

// Product prices are stored in minor currency units.
type Product struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string     `gorm:"size:200;not null"`
	Slug        string     `gorm:"size:200;uniqueIndex;not null"`
	Description string     `gorm:"type:text"`
	Price       int64      `gorm:"not null"`
	OldPrice    *int64
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Stock       int        `gorm:"default:0"`
	IsActive    bool       `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string {
	return "products"
}
