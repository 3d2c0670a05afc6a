package serviceimpl

import (
	"context"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/infrastructure/redis"
	"shop-backend/pkg/apperrors"
	"shop-backend/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	navCache     *redis.NavCache
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	productRepo repositories.ProductRepository,
	navCache *redis.NavCache,
) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		navCache:     navCache,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	if req.ParentID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.ParentID); err != nil {
			logger.WarnContext(ctx, "Category parent not found", "parent_id", req.ParentID)
			return nil, apperrors.NewReference("category", "parent not found: "+req.ParentID.String())
		}
	}

	categorySlug := req.Slug
	if categorySlug == "" {
		categorySlug = req.Name
	}
	categorySlug = slug.Make(categorySlug)

	if existing, err := s.categoryRepo.GetBySlug(ctx, categorySlug); err == nil && existing != nil {
		logger.WarnContext(ctx, "Category slug already exists", "slug", categorySlug)
		return nil, apperrors.NewConflict("category", "slug already exists: "+categorySlug)
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		maxOrder, err := s.categoryRepo.GetMaxSortOrder(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		sortOrder = maxOrder + 1
	}

	categoryType := models.CategoryTypeProducts
	if req.Type != "" {
		categoryType = models.CategoryType(req.Type)
	}

	category := &models.Category{
		ID:               uuid.New(),
		Name:             req.Name,
		Slug:             categorySlug,
		Description:      req.Description,
		Type:             categoryType,
		ParentID:         req.ParentID,
		SortOrder:        sortOrder,
		IsActive:         true,
		ShowInNavigation: true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ShowInNavigation != nil {
		category.ShowInNavigation = *req.ShowInNavigation
	}

	// the unique index still backs the pre-check; a concurrent create loses
	// here with the same ConflictError
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		return nil, err
	}

	s.navCache.Invalidate(ctx)
	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.productRepo.CountActiveByCategory(ctx, id)
	if err == nil {
		category.ProductCount = count
	}
	return category, nil
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, slugStr string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}
	count, err := s.productRepo.CountActiveByCategory(ctx, category.ID)
	if err == nil {
		category.ProductCount = count
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		newSlug := slug.Make(*req.Slug)
		existing, err := s.categoryRepo.GetBySlug(ctx, newSlug)
		if err == nil && existing != nil && existing.ID != id {
			logger.WarnContext(ctx, "Category slug already exists", "slug", newSlug)
			return nil, apperrors.NewConflict("category", "slug already exists: "+newSlug)
		}
		category.Slug = newSlug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Type != nil {
		category.Type = models.CategoryType(*req.Type)
	}
	if req.ParentID.Present {
		if err := s.checkParentChange(ctx, category, req.ParentID.Value); err != nil {
			return nil, err
		}
		category.ParentID = req.ParentID.Value
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ShowInNavigation != nil {
		category.ShowInNavigation = *req.ShowInNavigation
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	s.navCache.Invalidate(ctx)
	logger.InfoContext(ctx, "Category updated", "category_id", id)
	return category, nil
}

// checkParentChange verifies the new parent exists and that the move does not
// create a cycle: the node must not appear anywhere in the new parent's
// ancestor chain.
func (s *CategoryServiceImpl) checkParentChange(ctx context.Context, category *models.Category, newParentID *uuid.UUID) error {
	if newParentID == nil {
		return nil // moving to root is always safe
	}
	if *newParentID == category.ID {
		return apperrors.NewReference("category", "cannot be its own parent")
	}
	parent, err := s.categoryRepo.GetByID(ctx, *newParentID)
	if err != nil {
		return apperrors.NewReference("category", "parent not found: "+newParentID.String())
	}
	for parent.ParentID != nil {
		if *parent.ParentID == category.ID {
			return apperrors.NewReference("category", "parent change would create a cycle")
		}
		parent, err = s.categoryRepo.GetByID(ctx, *parent.ParentID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID, force bool) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// the product check is never waived: products must be moved or deleted
	// explicitly before the category goes away
	productCount, err := s.productRepo.CountActiveByCategory(ctx, id)
	if err != nil {
		return err
	}
	if productCount > 0 {
		logger.WarnContext(ctx, "Category has active products", "category_id", id, "count", productCount)
		return apperrors.NewConflictCount("category",
			"has active products, move or delete them first", productCount)
	}

	childCount, err := s.categoryRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if childCount > 0 {
		if !force {
			logger.WarnContext(ctx, "Category has children", "category_id", id, "count", childCount)
			return apperrors.NewConflictCount("category", "has children", childCount)
		}
		// force re-parents the children to the deleted node's parent so no
		// orphan references survive the delete
		if err := s.categoryRepo.DeleteReparenting(ctx, id, category.ParentID); err != nil {
			logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
			return err
		}
	} else if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return err
	}

	s.navCache.Invalidate(ctx)
	logger.InfoContext(ctx, "Category deleted", "category_id", id, "force", force)
	return nil
}

func (s *CategoryServiceImpl) List(ctx context.Context, filter repositories.CategoryFilter) ([]*models.Category, error) {
	categories, err := s.categoryRepo.ListAll(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, err
	}
	s.attachProductCounts(ctx, categories)
	return categories, nil
}

func (s *CategoryServiceImpl) ListChildren(ctx context.Context, parentID *uuid.UUID, filter repositories.CategoryFilter) ([]*models.Category, error) {
	if parentID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *parentID); err != nil {
			return nil, err
		}
	}
	children, err := s.categoryRepo.ListChildren(ctx, parentID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list category children", "parent_id", parentID, "error", err)
		return nil, err
	}
	s.attachProductCounts(ctx, children)
	return children, nil
}

func (s *CategoryServiceImpl) Tree(ctx context.Context, filter repositories.CategoryFilter) ([]*models.Category, error) {
	categories, err := s.categoryRepo.ListAll(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, err
	}
	s.attachProductCounts(ctx, categories)
	return dto.BuildCategoryTree(categories), nil
}

// attachProductCounts is best effort; a failed aggregate read leaves zero
// counts rather than failing the listing.
func (s *CategoryServiceImpl) attachProductCounts(ctx context.Context, categories []*models.Category) {
	counts, err := s.productRepo.CountActivePerCategory(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load product counts", "error", err)
		return
	}
	for _, category := range categories {
		category.ProductCount = counts[category.ID]
	}
}

func (s *CategoryServiceImpl) Reorder(ctx context.Context, req *dto.ReorderRequest) error {
	// all items must be siblings; verify before touching anything
	var parentID *uuid.UUID
	for i, item := range req.Items {
		node, err := s.categoryRepo.GetByID(ctx, item.ID)
		if err != nil {
			return err
		}
		if i == 0 {
			parentID = node.ParentID
			continue
		}
		if !sameParent(parentID, node.ParentID) {
			return apperrors.NewConflict("category", "reorder items must share one parent")
		}
	}

	items := make([]repositories.SortOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = repositories.SortOrderItem{ID: item.ID, SortOrder: item.SortOrder}
	}
	if err := s.categoryRepo.UpdateSortOrders(ctx, items); err != nil {
		logger.ErrorContext(ctx, "Failed to reorder categories", "error", err)
		return err
	}

	s.navCache.Invalidate(ctx)
	logger.InfoContext(ctx, "Categories reordered", "count", len(items))
	return nil
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
