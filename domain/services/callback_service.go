package services

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
)

type CallbackService interface {
	// Create is reachable without authentication from the storefront.
	Create(ctx context.Context, req *dto.CreateCallbackRequest) (*models.Callback, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Callback, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCallbackRequest) (*models.Callback, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status *models.CallbackStatus, page, limit int) ([]*models.Callback, int64, error)
}

type ReviewService interface {
	Create(ctx context.Context, req *dto.CreateReviewRequest) (*models.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	Moderate(ctx context.Context, id uuid.UUID, status models.ReviewStatus) (*models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all reviews for the back office; ListApproved is the
	// public read.
	List(ctx context.Context, status *models.ReviewStatus, productID *uuid.UUID, page, limit int) ([]*models.Review, int64, error)
	ListApproved(ctx context.Context, productID *uuid.UUID, page, limit int) ([]*models.Review, int64, error)
}
