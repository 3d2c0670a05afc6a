package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

type PromotionRepository interface {
	Create(ctx context.Context, promotion *models.Promotion) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error)
	GetByCode(ctx context.Context, code string) (*models.Promotion, error)
	Update(ctx context.Context, promotion *models.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Promotion, error)
	// IncrementUsage bumps used_count only while the limit still has headroom;
	// returns false when the conditional update matched no row.
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)
	// DeactivateExpired flips is_active off for promotions past their window.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
