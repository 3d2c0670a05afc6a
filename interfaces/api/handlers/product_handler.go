package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/services"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/utils"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	product, err := h.productService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.ProductToResponse(product))
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	product, err := h.productService.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.ProductToResponse(product))
}

func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()

	slug := c.Params("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "Product slug is required")
	}

	product, err := h.productService.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.ProductToResponse(product))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	product, err := h.productService.Update(ctx, id, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.ProductToResponse(product))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	if err := h.productService.Delete(ctx, id); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Product deleted successfully"})
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.ListProductsQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	products, total, err := h.productService.List(ctx, &query)
	if err != nil {
		return err
	}

	return utils.PaginatedSuccessResponse(c, dto.ProductsToResponses(products), total, query.Page, query.Limit)
}

// PublicList serves the storefront catalog: active products only.
func (h *ProductHandler) PublicList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.ListProductsQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()
	active := true
	query.IsActive = &active

	products, total, err := h.productService.List(ctx, &query)
	if err != nil {
		return err
	}

	return utils.PaginatedSuccessResponse(c, dto.ProductsToResponses(products), total, query.Page, query.Limit)
}
