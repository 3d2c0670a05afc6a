package repositories

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

type NavigationFilter struct {
	IsActive         *bool
	ShowInNavigation *bool
	Type             *models.NavigationItemType
}

type NavigationRepository interface {
	Create(ctx context.Context, item *models.NavigationItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.NavigationItem, error)
	Update(ctx context.Context, item *models.NavigationItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteReparenting(ctx context.Context, id uuid.UUID, newParentID *uuid.UUID) error
	ListAll(ctx context.Context, filter NavigationFilter) ([]*models.NavigationItem, error)
	ListChildren(ctx context.Context, parentID *uuid.UUID, filter NavigationFilter) ([]*models.NavigationItem, error)
	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)
	GetMaxSortOrder(ctx context.Context, parentID *uuid.UUID) (int, error)
	UpdateSortOrders(ctx context.Context, items []SortOrderItem) error
}
