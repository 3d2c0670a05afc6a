package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/infrastructure/messaging"
	"shop-backend/pkg/logger"
)

type CallbackServiceImpl struct {
	callbackRepo repositories.CallbackRepository
	events       *messaging.EventPublisher
}

func NewCallbackService(callbackRepo repositories.CallbackRepository, events *messaging.EventPublisher) services.CallbackService {
	return &CallbackServiceImpl{
		callbackRepo: callbackRepo,
		events:       events,
	}
}

func (s *CallbackServiceImpl) Create(ctx context.Context, req *dto.CreateCallbackRequest) (*models.Callback, error) {
	callback := &models.Callback{
		ID:      uuid.New(),
		Name:    req.Name,
		Phone:   req.Phone,
		Comment: req.Comment,
		Status:  models.CallbackStatusNew,
	}
	if err := s.callbackRepo.Create(ctx, callback); err != nil {
		logger.ErrorContext(ctx, "Failed to create callback", "error", err)
		return nil, err
	}

	s.events.Publish(ctx, messaging.SubjectCallbackCreated, map[string]any{
		"callbackId": callback.ID,
		"name":       callback.Name,
		"phone":      callback.Phone,
	})
	logger.InfoContext(ctx, "Callback created", "callback_id", callback.ID)
	return callback, nil
}

func (s *CallbackServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Callback, error) {
	return s.callbackRepo.GetByID(ctx, id)
}

func (s *CallbackServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCallbackRequest) (*models.Callback, error) {
	callback, err := s.callbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		callback.Status = models.CallbackStatus(*req.Status)
	}
	if req.Comment != nil {
		callback.Comment = *req.Comment
	}
	if err := s.callbackRepo.Update(ctx, callback); err != nil {
		logger.ErrorContext(ctx, "Failed to update callback", "callback_id", id, "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "Callback updated", "callback_id", id, "status", callback.Status)
	return callback, nil
}

func (s *CallbackServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.callbackRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.callbackRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete callback", "callback_id", id, "error", err)
		return err
	}
	logger.InfoContext(ctx, "Callback deleted", "callback_id", id)
	return nil
}

func (s *CallbackServiceImpl) List(ctx context.Context, status *models.CallbackStatus, page, limit int) ([]*models.Callback, int64, error) {
	return s.callbackRepo.List(ctx, status, page, limit)
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) services.ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.ProductID != nil {
		if _, err := s.productRepo.GetByID(ctx, *req.ProductID); err != nil {
			return nil, err
		}
	}
	review := &models.Review{
		ID:        uuid.New(),
		ProductID: req.ProductID,
		Author:    req.Author,
		Text:      req.Text,
		Rating:    req.Rating,
		Status:    models.ReviewStatusPending,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.ErrorContext(ctx, "Failed to create review", "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "Review created", "review_id", review.ID)
	return review, nil
}

func (s *ReviewServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *ReviewServiceImpl) Moderate(ctx context.Context, id uuid.UUID, status models.ReviewStatus) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	review.Status = status
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		logger.ErrorContext(ctx, "Failed to moderate review", "review_id", id, "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "Review moderated", "review_id", id, "status", status)
	return review, nil
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.reviewRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete review", "review_id", id, "error", err)
		return err
	}
	logger.InfoContext(ctx, "Review deleted", "review_id", id)
	return nil
}

func (s *ReviewServiceImpl) List(ctx context.Context, status *models.ReviewStatus, productID *uuid.UUID, page, limit int) ([]*models.Review, int64, error) {
	return s.reviewRepo.List(ctx, status, productID, page, limit)
}

func (s *ReviewServiceImpl) ListApproved(ctx context.Context, productID *uuid.UUID, page, limit int) ([]*models.Review, int64, error) {
	approved := models.ReviewStatusApproved
	return s.reviewRepo.List(ctx, &approved, productID, page, limit)
}
