package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// orderTransitions defines the legal status machine. Cancellation is allowed
// only before shipping.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:       {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// CanTransition reports whether status `from` may move to `to`.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID         uuid.UUID   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Number     string      `gorm:"size:30;uniqueIndex;not null"` // ORD-YYYYMMDD-xxxx
	CustomerID uuid.UUID   `gorm:"type:uuid;index;not null"`
	Status     OrderStatus `gorm:"size:20;not null;default:'NEW'"`
	// Total in minor units, snapshot of item prices at order time
	Total     int64  `gorm:"not null;default:0"`
	Comment   string `gorm:"size:1000"`
	PromoCode string `gorm:"size:40"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Customer *Customer   `gorm:"foreignKey:CustomerID"`
	Items    []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	// Name/Price are snapshots; later product edits must not rewrite history
	Name     string `gorm:"size:200;not null"`
	Price    int64  `gorm:"not null"`
	Quantity int    `gorm:"not null;default:1"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
