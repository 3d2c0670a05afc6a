package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/infrastructure/redis"
	"shop-backend/pkg/apperrors"
	"shop-backend/pkg/logger"
)

type NavigationServiceImpl struct {
	navRepo      repositories.NavigationRepository
	categoryRepo repositories.CategoryRepository
	navCache     *redis.NavCache
}

func NewNavigationService(
	navRepo repositories.NavigationRepository,
	categoryRepo repositories.CategoryRepository,
	navCache *redis.NavCache,
) services.NavigationService {
	return &NavigationServiceImpl{
		navRepo:      navRepo,
		categoryRepo: categoryRepo,
		navCache:     navCache,
	}
}

func (s *NavigationServiceImpl) Create(ctx context.Context, req *dto.CreateNavigationItemRequest) (*models.NavigationItem, error) {
	itemType := models.NavigationItemTypeLink
	if req.Type != "" {
		itemType = models.NavigationItemType(req.Type)
	}
	if err := s.checkTypeFields(ctx, itemType, req.URL, req.CategoryID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if _, err := s.navRepo.GetByID(ctx, *req.ParentID); err != nil {
			logger.WarnContext(ctx, "Navigation parent not found", "parent_id", req.ParentID)
			return nil, apperrors.NewReference("navigation item", "parent not found: "+req.ParentID.String())
		}
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		maxOrder, err := s.navRepo.GetMaxSortOrder(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		sortOrder = maxOrder + 1
	}

	item := &models.NavigationItem{
		ID:               uuid.New(),
		Title:            req.Title,
		Type:             itemType,
		URL:              req.URL,
		CategoryID:       req.CategoryID,
		ParentID:         req.ParentID,
		SortOrder:        sortOrder,
		IsActive:         true,
		ShowInNavigation: true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.ShowInNavigation != nil {
		item.ShowInNavigation = *req.ShowInNavigation
	}

	if err := s.navRepo.Create(ctx, item); err != nil {
		logger.ErrorContext(ctx, "Failed to create navigation item", "error", err)
		return nil, err
	}

	s.navCache.Invalidate(ctx)
	logger.InfoContext(ctx, "Navigation item created", "item_id", item.ID, "title", item.Title)
	return item, nil
}

// checkTypeFields enforces the kind-specific references: LINK items need a
// URL, CATEGORY items an existing category.
func (s *NavigationServiceImpl) checkTypeFields(ctx context.Context, itemType models.NavigationItemType, url string, categoryID *uuid.UUID) error {
	switch itemType {
	case models.NavigationItemTypeLink:
		if url == "" {
			return apperrors.NewReference("navigation item", "link items require a url")
		}
	case models.NavigationItemTypeCategory:
		if categoryID == nil {
			return apperrors.NewReference("navigation item", "category items require a categoryId")
		}
		if _, err := s.categoryRepo.GetByID(ctx, *categoryID); err != nil {
			return apperrors.NewReference("navigation item", "category not found: "+categoryID.String())
		}
	}
	return nil
}

func (s *NavigationServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.NavigationItem, error) {
	return s.navRepo.GetByID(ctx, id)
}

func (s *NavigationServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNavigationItemRequest) (*models.NavigationItem, error) {
	item, err := s.navRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Type != nil {
		item.Type = models.NavigationItemType(*req.Type)
	}
	if req.URL != nil {
		item.URL = *req.URL
	}
	if req.CategoryID.Present {
		item.CategoryID = req.CategoryID.Value
	}
	if err := s.checkTypeFields(ctx, item.Type, item.URL, item.CategoryID); err != nil {
		return nil, err
	}
	if req.ParentID.Present {
		if err := s.checkParentChange(ctx, item, req.ParentID.Value); err != nil {
			return nil, err
		}
		item.ParentID = req.ParentID.Value
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.ShowInNavigation != nil {
		item.ShowInNavigation = *req.ShowInNavigation
	}

	if err := s.navRepo.Update(ctx, item); err != nil {
		logger.ErrorContext(ctx, "Failed to update navigation item", "item_id", id, "error", err)
		return nil, err
	}

	s.navCache.Invalidate(ctx)
	logger.InfoContext(ctx, "Navigation item updated", "item_id", id)
	return item, nil
}

func (s *NavigationServiceImpl) checkParentChange(ctx context.Context, item *models.NavigationItem, newParentID *uuid.UUID) error {
	if newParentID == nil {
		return nil
	}
	if *newParentID == item.ID {
		return apperrors.NewReference("navigation item", "cannot be its own parent")
	}
	parent, err := s.navRepo.GetByID(ctx, *newParentID)
	if err != nil {
		return apperrors.NewReference("navigation item", "parent not found: "+newParentID.String())
	}
	for parent.ParentID != nil {
		if *parent.ParentID == item.ID {
			return apperrors.NewReference("navigation item", "parent change would create a cycle")
		}
		parent, err = s.navRepo.GetByID(ctx, *parent.ParentID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *NavigationServiceImpl) Delete(ctx context.Context, id uuid.UUID, force bool) error {
	item, err := s.navRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	childCount, err := s.navRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if childCount > 0 {
		if !force {
			logger.WarnContext(ctx, "Navigation item has children", "item_id", id, "count", childCount)
			return apperrors.NewConflictCount("navigation item", "has children", childCount)
		}
		if err := s.navRepo.DeleteReparenting(ctx, id, item.ParentID); err != nil {
			logger.ErrorContext(ctx, "Failed to delete navigation item", "item_id", id, "error", err)
			return err
		}
	} else if err := s.navRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete navigation item", "item_id", id, "error", err)
		return err
	}

	s.navCache.Invalidate(ctx)
	logger.InfoContext(ctx, "Navigation item deleted", "item_id", id, "force", force)
	return nil
}

func (s *NavigationServiceImpl) List(ctx context.Context) ([]*models.NavigationItem, error) {
	return s.navRepo.ListAll(ctx, repositories.NavigationFilter{})
}

func (s *NavigationServiceImpl) ListChildren(ctx context.Context, parentID *uuid.UUID) ([]*models.NavigationItem, error) {
	if parentID != nil {
		if _, err := s.navRepo.GetByID(ctx, *parentID); err != nil {
			return nil, err
		}
	}
	return s.navRepo.ListChildren(ctx, parentID, repositories.NavigationFilter{})
}

func (s *NavigationServiceImpl) Tree(ctx context.Context) ([]*models.NavigationItem, error) {
	items, err := s.navRepo.ListAll(ctx, repositories.NavigationFilter{})
	if err != nil {
		return nil, err
	}
	return dto.BuildNavigationTree(items), nil
}

func (s *NavigationServiceImpl) PublicTree(ctx context.Context) ([]*dto.NavigationItemResponse, error) {
	if tree, ok := s.navCache.Get(ctx); ok {
		return tree, nil
	}

	visibleOnly := true
	items, err := s.navRepo.ListAll(ctx, repositories.NavigationFilter{
		IsActive:         &visibleOnly,
		ShowInNavigation: &visibleOnly,
	})
	if err != nil {
		return nil, err
	}

	// CATEGORY items whose target is hidden disappear from the storefront menu
	visible := make([]*models.NavigationItem, 0, len(items))
	for _, item := range items {
		if item.Type == models.NavigationItemTypeCategory {
			if item.Category == nil || !item.Category.IsActive || !item.Category.ShowInNavigation {
				continue
			}
		}
		visible = append(visible, item)
	}

	tree := dto.NavigationItemsToResponses(dto.BuildNavigationTree(visible))
	s.navCache.Set(ctx, tree)
	return tree, nil
}

func (s *NavigationServiceImpl) Reorder(ctx context.Context, req *dto.ReorderRequest) error {
	var parentID *uuid.UUID
	for i, reqItem := range req.Items {
		node, err := s.navRepo.GetByID(ctx, reqItem.ID)
		if err != nil {
			return err
		}
		if i == 0 {
			parentID = node.ParentID
			continue
		}
		if !sameParent(parentID, node.ParentID) {
			return apperrors.NewConflict("navigation item", "reorder items must share one parent")
		}
	}

	items := make([]repositories.SortOrderItem, len(req.Items))
	for i, reqItem := range req.Items {
		items[i] = repositories.SortOrderItem{ID: reqItem.ID, SortOrder: reqItem.SortOrder}
	}
	if err := s.navRepo.UpdateSortOrders(ctx, items); err != nil {
		logger.ErrorContext(ctx, "Failed to reorder navigation items", "error", err)
		return err
	}

	s.navCache.Invalidate(ctx)
	logger.InfoContext(ctx, "Navigation items reordered", "count", len(items))
	return nil
}
