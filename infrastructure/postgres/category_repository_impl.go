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

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflict("category", "slug already exists: "+category.Slug)
	}
	return err
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("category", id.String())
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("category", slug)
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Save(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflict("category", "slug already exists: "+category.Slug)
	}
	return err
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("category", id.String())
	}
	return nil
}

func (r *CategoryRepositoryImpl) DeleteReparenting(ctx context.Context, id uuid.UUID, newParentID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Category{}).
			Where("parent_id = ?", id).
			Update("parent_id", newParentID).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFound("category", id.String())
		}
		return nil
	})
}

func applyCategoryFilter(q *gorm.DB, filter repositories.CategoryFilter) *gorm.DB {
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

func (r *CategoryRepositoryImpl) ListAll(ctx context.Context, filter repositories.CategoryFilter) ([]*models.Category, error) {
	var categories []*models.Category
	q := applyCategoryFilter(r.db.WithContext(ctx), filter)
	err := q.Order("sort_order ASC, created_at ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) ListChildren(ctx context.Context, parentID *uuid.UUID, filter repositories.CategoryFilter) ([]*models.Category, error) {
	var categories []*models.Category
	q := applyCategoryFilter(r.db.WithContext(ctx), filter)
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", parentID)
	}
	err := q.Order("sort_order ASC, created_at ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

func (r *CategoryRepositoryImpl) GetMaxSortOrder(ctx context.Context, parentID *uuid.UUID) (int, error) {
	var maxOrder int
	query := r.db.WithContext(ctx).Model(&models.Category{})
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", parentID)
	}
	err := query.Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error
	return maxOrder, err
}

func (r *CategoryRepositoryImpl) UpdateSortOrders(ctx context.Context, items []repositories.SortOrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			result := tx.Model(&models.Category{}).
				Where("id = ?", item.ID).
				Update("sort_order", item.SortOrder)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// aborts the whole transaction, no partial ordering lands
				return apperrors.NewNotFound("category", item.ID.String())
			}
		}
		return nil
	})
}
