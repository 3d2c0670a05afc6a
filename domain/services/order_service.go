package services

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
)

type OrderService interface {
	// Create snapshots product names/prices, applies an optional promo code
	// and assigns a per-day sequential number.
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*models.Order, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)

	// UpdateStatus enforces the order status machine.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)

	List(ctx context.Context, query *dto.ListOrdersQuery) ([]*models.Order, int64, error)
}

type CustomerService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, id uuid.UUID, name, email, comment *string) (*models.Customer, error)
	List(ctx context.Context, page, limit int) ([]*models.Customer, int64, error)
}
