package repositories

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

// CategoryFilter narrows list reads. Nil fields are ignored.
type CategoryFilter struct {
	IsActive         *bool
	ShowInNavigation *bool
	Type             *models.CategoryType
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteReparenting deletes the node and moves its children to newParentID
	// in one transaction.
	DeleteReparenting(ctx context.Context, id uuid.UUID, newParentID *uuid.UUID) error
	// ListAll returns every matching node ordered by sort_order, created_at.
	ListAll(ctx context.Context, filter CategoryFilter) ([]*models.Category, error)
	// ListChildren returns direct children of parentID (nil = roots).
	ListChildren(ctx context.Context, parentID *uuid.UUID, filter CategoryFilter) ([]*models.Category, error)
	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)
	GetMaxSortOrder(ctx context.Context, parentID *uuid.UUID) (int, error)
	// UpdateSortOrders applies all pairs in one transaction; a missing id
	// aborts the whole batch.
	UpdateSortOrders(ctx context.Context, items []SortOrderItem) error
}

type SortOrderItem struct {
	ID        uuid.UUID
	SortOrder int
}
