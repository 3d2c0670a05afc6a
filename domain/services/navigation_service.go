package services

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
)

type NavigationService interface {
	Create(ctx context.Context, req *dto.CreateNavigationItemRequest) (*models.NavigationItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.NavigationItem, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNavigationItemRequest) (*models.NavigationItem, error)
	Delete(ctx context.Context, id uuid.UUID, force bool) error
	List(ctx context.Context) ([]*models.NavigationItem, error)
	ListChildren(ctx context.Context, parentID *uuid.UUID) ([]*models.NavigationItem, error)

	// Tree returns the full nested view for the admin panel.
	Tree(ctx context.Context) ([]*models.NavigationItem, error)

	// PublicTree returns the storefront menu: active items plus categories
	// flagged for navigation, served from the best-effort cache when warm.
	PublicTree(ctx context.Context) ([]*dto.NavigationItemResponse, error)

	Reorder(ctx context.Context, req *dto.ReorderRequest) error
}
