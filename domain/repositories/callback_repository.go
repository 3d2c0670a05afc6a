package repositories

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

type CallbackRepository interface {
	Create(ctx context.Context, callback *models.Callback) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Callback, error)
	Update(ctx context.Context, callback *models.Callback) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status *models.CallbackStatus, page, limit int) ([]*models.Callback, int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status *models.ReviewStatus, productID *uuid.UUID, page, limit int) ([]*models.Review, int64, error)
}
