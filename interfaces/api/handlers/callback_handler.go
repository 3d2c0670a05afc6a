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

type CallbackHandler struct {
	callbackService services.CallbackService
}

func NewCallbackHandler(callbackService services.CallbackService) *CallbackHandler {
	return &CallbackHandler{
		callbackService: callbackService,
	}
}

// Create is the public "request a call" form.
func (h *CallbackHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCallbackRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	callback, err := h.callbackService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.CallbackToResponse(callback))
}

func (h *CallbackHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid callback ID")
	}

	callback, err := h.callbackService.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CallbackToResponse(callback))
}

func (h *CallbackHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid callback ID")
	}

	var req dto.UpdateCallbackRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	callback, err := h.callbackService.Update(ctx, id, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CallbackToResponse(callback))
}

func (h *CallbackHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid callback ID")
	}

	if err := h.callbackService.Delete(ctx, id); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Callback deleted successfully"})
}

func (h *CallbackHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	var status *models.CallbackStatus
	if raw := c.Query("status"); raw != "" {
		s := models.CallbackStatus(raw)
		status = &s
	}

	callbacks, total, err := h.callbackService.List(ctx, status, query.Page, query.Limit)
	if err != nil {
		return err
	}

	return utils.PaginatedSuccessResponse(c, dto.CallbacksToResponses(callbacks), total, query.Page, query.Limit)
}
