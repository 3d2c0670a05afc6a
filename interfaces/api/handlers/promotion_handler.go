package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/services"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/utils"
)

type PromotionHandler struct {
	promotionService services.PromotionService
}

func NewPromotionHandler(promotionService services.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotionService,
	}
}

func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreatePromotionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	promotion, err := h.promotionService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.PromotionToResponse(promotion))
}

func (h *PromotionHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid promotion ID")
	}

	promotion, err := h.promotionService.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.PromotionToResponse(promotion))
}

func (h *PromotionHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid promotion ID")
	}

	var req dto.UpdatePromotionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	promotion, err := h.promotionService.Update(ctx, id, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.PromotionToResponse(promotion))
}

func (h *PromotionHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid promotion ID")
	}

	if err := h.promotionService.Delete(ctx, id); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Promotion deleted successfully"})
}

func (h *PromotionHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	promotions, err := h.promotionService.List(ctx)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.PromotionsToResponses(promotions))
}

// Validate is the storefront's "check my code" endpoint. It never consumes
// a use; redemption happens at checkout.
func (h *PromotionHandler) Validate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ValidatePromotionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	promotion, err := h.promotionService.Validate(ctx, req.Code)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.PromotionToResponse(promotion))
}
