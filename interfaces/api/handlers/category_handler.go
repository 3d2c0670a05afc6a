package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.CategoryToResponse(category))
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	category, err := h.categoryService.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryToResponse(category))
}

func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()

	slug := c.Params("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "Category slug is required")
	}

	category, err := h.categoryService.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryToResponse(category))
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	category, err := h.categoryService.Update(ctx, id, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryToResponse(category))
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var query dto.DeleteCategoryQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := h.categoryService.Delete(ctx, id, query.Force); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Category deleted successfully"})
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.categoryService.List(ctx, parseCategoryFilter(c))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: dto.CategoriesToResponses(categories),
	})
}

func (h *CategoryHandler) Children(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	children, err := h.categoryService.ListChildren(ctx, &id, parseCategoryFilter(c))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: dto.CategoriesToResponses(children),
	})
}

func (h *CategoryHandler) Tree(c *fiber.Ctx) error {
	ctx := c.UserContext()

	roots, err := h.categoryService.Tree(ctx, parseCategoryFilter(c))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: dto.CategoriesToResponses(roots),
	})
}

// PublicTree serves the storefront: active categories only.
func (h *CategoryHandler) PublicTree(c *fiber.Ctx) error {
	ctx := c.UserContext()

	active := true
	roots, err := h.categoryService.Tree(ctx, repositories.CategoryFilter{IsActive: &active})
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: dto.CategoriesToResponses(roots),
	})
}

func (h *CategoryHandler) Reorder(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	if err := h.categoryService.Reorder(ctx, &req); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Categories reordered successfully"})
}

func parseCategoryFilter(c *fiber.Ctx) repositories.CategoryFilter {
	var filter repositories.CategoryFilter
	if raw := c.Query("isActive"); raw != "" {
		active := raw == "true"
		filter.IsActive = &active
	}
	if raw := c.Query("showInNavigation"); raw != "" {
		show := raw == "true"
		filter.ShowInNavigation = &show
	}
	if raw := c.Query("type"); raw != "" {
		categoryType := models.CategoryType(strings.ToUpper(raw))
		filter.Type = &categoryType
	}
	return filter
}
