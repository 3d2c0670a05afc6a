package models

import (
	"time"

	"github.com/google/uuid"
)

type PromotionKind string

const (
	PromotionKindPercent PromotionKind = "PERCENT"
	PromotionKindFixed   PromotionKind = "FIXED"
)

type Promotion struct {
	ID   uuid.UUID     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code string        `gorm:"size:40;uniqueIndex;not null"` // stored uppercased
	Kind PromotionKind `gorm:"size:20;not null;default:'PERCENT'"`
	// Value is percent (1..100) for PERCENT, minor units for FIXED
	Value      int64 `gorm:"not null"`
	UsageLimit int   `gorm:"default:0"` // 0 = unlimited
	UsedCount  int   `gorm:"default:0"`
	StartsAt   *time.Time
	EndsAt     *time.Time
	IsActive   bool `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Promotion) TableName() string {
	return "promotions"
}

// WithinWindow reports whether the promotion is inside its validity window at t.
func (p *Promotion) WithinWindow(t time.Time) bool {
	if p.StartsAt != nil && t.Before(*p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && t.After(*p.EndsAt) {
		return false
	}
	return true
}

// HasUsageLeft reports whether the usage limit still has headroom.
func (p *Promotion) HasUsageLeft() bool {
	return p.UsageLimit == 0 || p.UsedCount < p.UsageLimit
}
