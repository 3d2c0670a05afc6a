package services

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
)

type CategoryService interface {
	// Create inserts a node. The parent, when given, must exist; the slug is
	// derived from the name when absent; sortOrder defaults to max(sibling)+1.
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)

	// Update applies a partial update. Nil fields are untouched; a parent
	// change is checked for existence and ancestry cycles.
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)

	// Delete rejects nodes with children or with active products. force waives
	// only the children check by re-parenting them; the product check always
	// applies.
	Delete(ctx context.Context, id uuid.UUID, force bool) error

	// List returns a flat, sort-ordered list with product counts attached.
	List(ctx context.Context, filter repositories.CategoryFilter) ([]*models.Category, error)

	// ListChildren returns the direct children of parentID (nil = roots).
	ListChildren(ctx context.Context, parentID *uuid.UUID, filter repositories.CategoryFilter) ([]*models.Category, error)

	// Tree returns the nested view, assembled in memory from one flat read.
	Tree(ctx context.Context, filter repositories.CategoryFilter) ([]*models.Category, error)

	// Reorder applies sibling sort orders atomically. All ids must exist and
	// share one parent.
	Reorder(ctx context.Context, req *dto.ReorderRequest) error
}
