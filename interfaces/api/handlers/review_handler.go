package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/services"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/utils"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create is public; new reviews land in pending until moderated.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	review, err := h.reviewService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.ReviewToResponse(review))
}

func (h *ReviewHandler) Moderate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	var req dto.ModerateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	review, err := h.reviewService.Moderate(ctx, id, models.ReviewStatus(req.Status))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.ReviewToResponse(review))
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	if err := h.reviewService.Delete(ctx, id); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Review deleted successfully"})
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	var status *models.ReviewStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ReviewStatus(raw)
		status = &s
	}
	productID, err := parseOptionalUUIDQuery(c, "productId")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	reviews, total, err := h.reviewService.List(ctx, status, productID, query.Page, query.Limit)
	if err != nil {
		return err
	}

	return utils.PaginatedSuccessResponse(c, dto.ReviewsToResponses(reviews), total, query.Page, query.Limit)
}

// ListApproved is the public read used by product pages.
func (h *ReviewHandler) ListApproved(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	productID, err := parseOptionalUUIDQuery(c, "productId")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	reviews, total, err := h.reviewService.ListApproved(ctx, productID, query.Page, query.Limit)
	if err != nil {
		return err
	}

	return utils.PaginatedSuccessResponse(c, dto.ReviewsToResponses(reviews), total, query.Page, query.Limit)
}

func parseOptionalUUIDQuery(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
