package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

// === Callbacks ===

type CreateCallbackRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Phone   string `json:"phone" validate:"required,min=5,max=30"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

type UpdateCallbackRequest struct {
	Status  *string `json:"status" validate:"omitempty,oneof=NEW IN_PROGRESS DONE"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

type CallbackResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Comment   string    `json:"comment,omitempty"`
	Status    string    `json:"status"` // lowercased enum
	CreatedAt time.Time `json:"createdAt"`
}

func CallbackToResponse(callback *models.Callback) *CallbackResponse {
	if callback == nil {
		return nil
	}
	return &CallbackResponse{
		ID:        callback.ID,
		Name:      callback.Name,
		Phone:     callback.Phone,
		Comment:   callback.Comment,
		Status:    strings.ToLower(string(callback.Status)),
		CreatedAt: callback.CreatedAt,
	}
}

func CallbacksToResponses(callbacks []*models.Callback) []*CallbackResponse {
	responses := make([]*CallbackResponse, len(callbacks))
	for i, callback := range callbacks {
		responses[i] = CallbackToResponse(callback)
	}
	return responses
}

// === Reviews ===

type CreateReviewRequest struct {
	ProductID *uuid.UUID `json:"productId"`
	Author    string     `json:"author" validate:"required,min=1,max=200"`
	Text      string     `json:"text" validate:"required,min=1"`
	Rating    int        `json:"rating" validate:"required,gte=1,lte=5"`
}

type ModerateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

type ReviewResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProductID *uuid.UUID `json:"productId,omitempty"`
	Author    string     `json:"author"`
	Text      string     `json:"text"`
	Rating    int        `json:"rating"`
	Status    string     `json:"status"` // lowercased enum
	CreatedAt time.Time  `json:"createdAt"`
}

func ReviewToResponse(review *models.Review) *ReviewResponse {
	if review == nil {
		return nil
	}
	return &ReviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		Author:    review.Author,
		Text:      review.Text,
		Rating:    review.Rating,
		Status:    strings.ToLower(string(review.Status)),
		CreatedAt: review.CreatedAt,
	}
}

func ReviewsToResponses(reviews []*models.Review) []*ReviewResponse {
	responses := make([]*ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewToResponse(review)
	}
	return responses
}
