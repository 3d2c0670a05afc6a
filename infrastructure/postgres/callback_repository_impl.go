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

type CallbackRepositoryImpl struct {
	db *gorm.DB
}

func NewCallbackRepository(db *gorm.DB) repositories.CallbackRepository {
	return &CallbackRepositoryImpl{db: db}
}

func (r *CallbackRepositoryImpl) Create(ctx context.Context, callback *models.Callback) error {
	return r.db.WithContext(ctx).Create(callback).Error
}

func (r *CallbackRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Callback, error) {
	var callback models.Callback
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&callback).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("callback", id.String())
	}
	if err != nil {
		return nil, err
	}
	return &callback, nil
}

func (r *CallbackRepositoryImpl) Update(ctx context.Context, callback *models.Callback) error {
	return r.db.WithContext(ctx).Save(callback).Error
}

func (r *CallbackRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Callback{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("callback", id.String())
	}
	return nil
}

func (r *CallbackRepositoryImpl) List(ctx context.Context, status *models.CallbackStatus, page, limit int) ([]*models.Callback, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Callback{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var callbacks []*models.Callback
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&callbacks).Error
	return callbacks, total, err
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("review", id.String())
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *ReviewRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("review", id.String())
	}
	return nil
}

func (r *ReviewRepositoryImpl) List(ctx context.Context, status *models.ReviewStatus, productID *uuid.UUID, page, limit int) ([]*models.Review, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Review{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if productID != nil {
		q = q.Where("product_id = ?", productID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var reviews []*models.Review
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	return reviews, total, err
}
