package repositories

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

type ProductFilter struct {
	CategoryID *uuid.UUID
	IsActive   *bool
	Search     string // matched against name, ILIKE
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ProductFilter, page, limit int) ([]*models.Product, int64, error)
	// CountActiveByCategory backs the category-deletion dependent check.
	CountActiveByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	// CountActivePerCategory returns category_id -> active product count.
	CountActivePerCategory(ctx context.Context) (map[uuid.UUID]int64, error)
}
