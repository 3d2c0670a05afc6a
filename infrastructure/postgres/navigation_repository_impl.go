package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/pkg/apperrors"
)

type NavigationRepositoryImpl struct {
	db *gorm.DB
}

func NewNavigationRepository(db *gorm.DB) repositories.NavigationRepository {
	return &NavigationRepositoryImpl{db: db}
}

func (r *NavigationRepositoryImpl) Create(ctx context.Context, item *models.NavigationItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *NavigationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.NavigationItem, error) {
	var item models.NavigationItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("navigation item", id.String())
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *NavigationRepositoryImpl) Update(ctx context.Context, item *models.NavigationItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *NavigationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.NavigationItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("navigation item", id.String())
	}
	return nil
}

func (r *NavigationRepositoryImpl) DeleteReparenting(ctx context.Context, id uuid.UUID, newParentID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.NavigationItem{}).
			Where("parent_id = ?", id).
			Update("parent_id", newParentID).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.NavigationItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFound("navigation item", id.String())
		}
		return nil
	})
}

func applyNavigationFilter(q *gorm.DB, filter repositories.NavigationFilter) *gorm.DB {
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.ShowInNavigation != nil {
		q = q.Where("show_in_navigation = ?", *filter.ShowInNavigation)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	return q
}

func (r *NavigationRepositoryImpl) ListAll(ctx context.Context, filter repositories.NavigationFilter) ([]*models.NavigationItem, error) {
	var items []*models.NavigationItem
	q := applyNavigationFilter(r.db.WithContext(ctx), filter)
	err := q.Preload("Category").Order("sort_order ASC, created_at ASC, id ASC").Find(&items).Error
	return items, err
}

func (r *NavigationRepositoryImpl) ListChildren(ctx context.Context, parentID *uuid.UUID, filter repositories.NavigationFilter) ([]*models.NavigationItem, error) {
	var items []*models.NavigationItem
	q := applyNavigationFilter(r.db.WithContext(ctx), filter)
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", parentID)
	}
	err := q.Order("sort_order ASC, created_at ASC, id ASC").Find(&items).Error
	return items, err
}

func (r *NavigationRepositoryImpl) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NavigationItem{}).
		Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

func (r *NavigationRepositoryImpl) GetMaxSortOrder(ctx context.Context, parentID *uuid.UUID) (int, error) {
	var maxOrder int
	query := r.db.WithContext(ctx).Model(&models.NavigationItem{})
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", parentID)
	}
	err := query.Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error
	return maxOrder, err
}

func (r *NavigationRepositoryImpl) UpdateSortOrders(ctx context.Context, items []repositories.SortOrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			result := tx.Model(&models.NavigationItem{}).
				Where("id = ?", item.ID).
				Update("sort_order", item.SortOrder)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.NewNotFound("navigation item", item.ID.String())
			}
		}
		return nil
	})
}
