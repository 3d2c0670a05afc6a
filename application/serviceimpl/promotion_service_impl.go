package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/pkg/apperrors"
	"shop-backend/pkg/logger"
)

type PromotionServiceImpl struct {
	promotionRepo repositories.PromotionRepository
}

func NewPromotionService(promotionRepo repositories.PromotionRepository) services.PromotionService {
	return &PromotionServiceImpl{promotionRepo: promotionRepo}
}

func (s *PromotionServiceImpl) Create(ctx context.Context, req *dto.CreatePromotionRequest) (*models.Promotion, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	if existing, err := s.promotionRepo.GetByCode(ctx, code); err == nil && existing != nil {
		logger.WarnContext(ctx, "Promotion code already exists", "code", code)
		return nil, apperrors.NewConflict("promotion", "code already exists: "+code)
	}

	if req.Kind == string(models.PromotionKindPercent) && req.Value > 100 {
		return nil, apperrors.NewConflict("promotion", "percent value cannot exceed 100")
	}

	promotion := &models.Promotion{
		ID:         uuid.New(),
		Code:       code,
		Kind:       models.PromotionKind(req.Kind),
		Value:      req.Value,
		UsageLimit: req.UsageLimit,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		IsActive:   true,
	}
	if req.IsActive != nil {
		promotion.IsActive = *req.IsActive
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		logger.ErrorContext(ctx, "Failed to create promotion", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Promotion created", "promotion_id", promotion.ID, "code", code)
	return promotion, nil
}

func (s *PromotionServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	return s.promotionRepo.GetByID(ctx, id)
}

func (s *PromotionServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePromotionRequest) (*models.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Kind != nil {
		promotion.Kind = models.PromotionKind(*req.Kind)
	}
	if req.Value != nil {
		promotion.Value = *req.Value
	}
	if promotion.Kind == models.PromotionKindPercent && promotion.Value > 100 {
		return nil, apperrors.NewConflict("promotion", "percent value cannot exceed 100")
	}
	if req.UsageLimit != nil {
		promotion.UsageLimit = *req.UsageLimit
	}
	if req.StartsAt != nil {
		promotion.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		promotion.EndsAt = req.EndsAt
	}
	if req.IsActive != nil {
		promotion.IsActive = *req.IsActive
	}

	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		logger.ErrorContext(ctx, "Failed to update promotion", "promotion_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Promotion updated", "promotion_id", id)
	return promotion, nil
}

func (s *PromotionServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.promotionRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete promotion", "promotion_id", id, "error", err)
		return err
	}
	logger.InfoContext(ctx, "Promotion deleted", "promotion_id", id)
	return nil
}

func (s *PromotionServiceImpl) List(ctx context.Context) ([]*models.Promotion, error) {
	return s.promotionRepo.List(ctx)
}

func (s *PromotionServiceImpl) Validate(ctx context.Context, code string) (*models.Promotion, error) {
	promotion, err := s.promotionRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if !promotion.IsActive {
		return nil, apperrors.NewConflict("promotion", "code is not active")
	}
	if !promotion.WithinWindow(time.Now()) {
		return nil, apperrors.NewConflict("promotion", "code is outside its validity window")
	}
	if !promotion.HasUsageLeft() {
		return nil, apperrors.NewConflict("promotion", "usage limit reached")
	}
	return promotion, nil
}

func (s *PromotionServiceImpl) Redeem(ctx context.Context, code string) (*models.Promotion, error) {
	promotion, err := s.Validate(ctx, code)
	if err != nil {
		return nil, err
	}
	// conditional increment closes the validate/redeem race; the loser at the
	// limit sees ok == false
	ok, err := s.promotionRepo.IncrementUsage(ctx, promotion.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.WarnContext(ctx, "Promotion usage race lost", "promotion_id", promotion.ID)
		return nil, apperrors.NewConflict("promotion", "usage limit reached")
	}
	promotion.UsedCount++
	logger.InfoContext(ctx, "Promotion redeemed", "promotion_id", promotion.ID, "code", promotion.Code)
	return promotion, nil
}

func (s *PromotionServiceImpl) DeactivateExpired(ctx context.Context) (int64, error) {
	count, err := s.promotionRepo.DeactivateExpired(ctx, time.Now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to deactivate expired promotions", "error", err)
		return 0, err
	}
	if count > 0 {
		logger.InfoContext(ctx, "Expired promotions deactivated", "count", count)
	}
	return count, nil
}
