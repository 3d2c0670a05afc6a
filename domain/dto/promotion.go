package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

// === Requests ===

type CreatePromotionRequest struct {
	Code       string     `json:"code" validate:"required,min=2,max=40"`
	Kind       string     `json:"kind" validate:"required,oneof=PERCENT FIXED"`
	Value      int64      `json:"value" validate:"required,gt=0"`
	UsageLimit int        `json:"usageLimit" validate:"gte=0"`
	StartsAt   *time.Time `json:"startsAt"`
	EndsAt     *time.Time `json:"endsAt"`
	IsActive   *bool      `json:"isActive"`
}

type UpdatePromotionRequest struct {
	Kind       *string    `json:"kind" validate:"omitempty,oneof=PERCENT FIXED"`
	Value      *int64     `json:"value" validate:"omitempty,gt=0"`
	UsageLimit *int       `json:"usageLimit" validate:"omitempty,gte=0"`
	StartsAt   *time.Time `json:"startsAt"`
	EndsAt     *time.Time `json:"endsAt"`
	IsActive   *bool      `json:"isActive"`
}

type ValidatePromotionRequest struct {
	Code string `json:"code" validate:"required"`
}

// === Responses ===

type PromotionResponse struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	Kind       string     `json:"kind"` // lowercased enum
	Value      int64      `json:"value"`
	UsageLimit int        `json:"usageLimit"`
	UsedCount  int        `json:"usedCount"`
	StartsAt   *time.Time `json:"startsAt,omitempty"`
	EndsAt     *time.Time `json:"endsAt,omitempty"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// === Mappers ===

func PromotionToResponse(promotion *models.Promotion) *PromotionResponse {
	if promotion == nil {
		return nil
	}
	return &PromotionResponse{
		ID:         promotion.ID,
		Code:       promotion.Code,
		Kind:       strings.ToLower(string(promotion.Kind)),
		Value:      promotion.Value,
		UsageLimit: promotion.UsageLimit,
		UsedCount:  promotion.UsedCount,
		StartsAt:   promotion.StartsAt,
		EndsAt:     promotion.EndsAt,
		IsActive:   promotion.IsActive,
		CreatedAt:  promotion.CreatedAt,
	}
}

func PromotionsToResponses(promotions []*models.Promotion) []*PromotionResponse {
	responses := make([]*PromotionResponse, len(promotions))
	for i, promotion := range promotions {
		responses[i] = PromotionToResponse(promotion)
	}
	return responses
}
