package models

import (
	"time"

	"github.com/google/uuid"
)

type NavigationItemType string

const (
	NavigationItemTypeLink     NavigationItemType = "LINK"
	NavigationItemTypeCategory NavigationItemType = "CATEGORY"
)

type NavigationItem struct {
	ID         uuid.UUID          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title      string             `gorm:"size:100;not null"`
	Type       NavigationItemType `gorm:"size:20;not null;default:'LINK'"`
	URL        string             `gorm:"size:500"`
	CategoryID *uuid.UUID         `gorm:"type:uuid;index"`
	ParentID   *uuid.UUID         `gorm:"type:uuid;index"`
	SortOrder  int                `gorm:"default:0"`
	IsActive   bool               `gorm:"default:true"`
	// ShowInNavigation hides the item from the storefront menu without
	// deactivating it.
	ShowInNavigation bool `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relations
	Category *Category        `gorm:"foreignKey:CategoryID"`
	Parent   *NavigationItem  `gorm:"foreignKey:ParentID"`
	Children []NavigationItem `gorm:"-"` // assembled in memory, never preloaded
}

func (NavigationItem) TableName() string {
	return "navigation_items"
}
