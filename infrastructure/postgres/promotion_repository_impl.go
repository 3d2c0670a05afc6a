package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/pkg/apperrors"
)

type PromotionRepositoryImpl struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) repositories.PromotionRepository {
	return &PromotionRepositoryImpl{db: db}
}

func (r *PromotionRepositoryImpl) Create(ctx context.Context, promotion *models.Promotion) error {
	err := r.db.WithContext(ctx).Create(promotion).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflict("promotion", "code already exists: "+promotion.Code)
	}
	return err
}

func (r *PromotionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&promotion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("promotion", id.String())
	}
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *PromotionRepositoryImpl) GetByCode(ctx context.Context, code string) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&promotion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("promotion", code)
	}
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *PromotionRepositoryImpl) Update(ctx context.Context, promotion *models.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *PromotionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Promotion{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("promotion", id.String())
	}
	return nil
}

func (r *PromotionRepositoryImpl) List(ctx context.Context) ([]*models.Promotion, error) {
	var promotions []*models.Promotion
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&promotions).Error
	return promotions, err
}

// IncrementUsage is the whole race guard: the WHERE clause only matches while
// the limit has headroom, so two concurrent redemptions of the last use
// cannot both succeed.
func (r *PromotionRepositoryImpl) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Promotion{}).
		Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", id).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PromotionRepositoryImpl) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Promotion{}).
		Where("is_active = ? AND ends_at IS NOT NULL AND ends_at < ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
