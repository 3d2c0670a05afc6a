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

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Create is the storefront checkout endpoint.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	order, err := h.orderService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.OrderToResponse(order))
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderService.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.OrderToResponse(order))
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	order, err := h.orderService.UpdateStatus(ctx, id, models.OrderStatus(req.Status))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.OrderToResponse(order))
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.ListOrdersQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	orders, total, err := h.orderService.List(ctx, &query)
	if err != nil {
		return err
	}

	return utils.PaginatedSuccessResponse(c, dto.OrdersToResponses(orders), total, query.Page, query.Limit)
}
