package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

type OrderFilter struct {
	CustomerID *uuid.UUID
	Status     *models.OrderStatus
}

type OrderRepository interface {
	// Create persists the order and its items in one transaction.
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByNumber(ctx context.Context, number string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	// Delete removes the order and its items; used to unwind a creation whose
	// promo redemption failed.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter OrderFilter, page, limit int) ([]*models.Order, int64, error)
	// CountCreatedSince backs the per-day order number sequence.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	List(ctx context.Context, page, limit int) ([]*models.Customer, int64, error)
}
