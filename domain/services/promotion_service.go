package services

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
)

type PromotionService interface {
	Create(ctx context.Context, req *dto.CreatePromotionRequest) (*models.Promotion, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePromotionRequest) (*models.Promotion, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Promotion, error)

	// Validate checks active flag, validity window and usage headroom.
	Validate(ctx context.Context, code string) (*models.Promotion, error)

	// Redeem re-validates and increments usage atomically; concurrent losers
	// at the limit get ConflictError.
	Redeem(ctx context.Context, code string) (*models.Promotion, error)

	// DeactivateExpired is invoked by the scheduler.
	DeactivateExpired(ctx context.Context) (int64, error)
}
