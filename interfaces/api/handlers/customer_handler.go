package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/services"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/utils"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

type updateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid customer ID")
	}

	customer, err := h.customerService.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CustomerToResponse(customer))
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid customer ID")
	}

	var req updateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	customer, err := h.customerService.Update(ctx, id, req.Name, req.Email, req.Comment)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CustomerToResponse(customer))
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	customers, total, err := h.customerService.List(ctx, query.Page, query.Limit)
	if err != nil {
		return err
	}

	return utils.PaginatedSuccessResponse(c, dto.CustomersToResponses(customers), total, query.Page, query.Limit)
}
