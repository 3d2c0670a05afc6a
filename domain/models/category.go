package models

import (
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryTypeProducts CategoryType = "PRODUCTS"
	CategoryTypeBalloons CategoryType = "BALLOONS"
	CategoryTypeGifts    CategoryType = "GIFTS"
	CategoryTypeServices CategoryType = "SERVICES"
)

type Category struct {
	ID               uuid.UUID    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name             string       `gorm:"size:100;not null"`
	Slug             string       `gorm:"size:100;uniqueIndex;not null"`
	Description      string       `gorm:"size:500"`
	Type             CategoryType `gorm:"size:20;not null;default:'PRODUCTS'"`
	ParentID         *uuid.UUID   `gorm:"type:uuid;index"`
	SortOrder        int          `gorm:"default:0"`
	IsActive         bool         `gorm:"default:true"`
	ShowInNavigation bool         `gorm:"default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Relations
	Parent   *Category  `gorm:"foreignKey:ParentID"`
	Children []Category `gorm:"-"` // assembled in memory, never preloaded

	// Aggregate filled by the caller's query, not stored
	ProductCount int64 `gorm:"-"`
}

func (Category) TableName() string {
	return "categories"
}
