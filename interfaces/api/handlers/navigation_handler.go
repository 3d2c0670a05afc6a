package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/services"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/utils"
)

type NavigationHandler struct {
	navigationService services.NavigationService
}

func NewNavigationHandler(navigationService services.NavigationService) *NavigationHandler {
	return &NavigationHandler{
		navigationService: navigationService,
	}
}

func (h *NavigationHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateNavigationItemRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	item, err := h.navigationService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.NavigationItemToResponse(item))
}

func (h *NavigationHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid navigation item ID")
	}

	item, err := h.navigationService.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.NavigationItemToResponse(item))
}

func (h *NavigationHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid navigation item ID")
	}

	var req dto.UpdateNavigationItemRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	item, err := h.navigationService.Update(ctx, id, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.NavigationItemToResponse(item))
}

func (h *NavigationHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid navigation item ID")
	}

	force := c.Query("force") == "true"
	if err := h.navigationService.Delete(ctx, id, force); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Navigation item deleted successfully"})
}

func (h *NavigationHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	items, err := h.navigationService.List(ctx)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.NavigationListResponse{
		Items: dto.NavigationItemsToResponses(items),
	})
}

func (h *NavigationHandler) Children(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid navigation item ID")
	}

	children, err := h.navigationService.ListChildren(ctx, &id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.NavigationListResponse{
		Items: dto.NavigationItemsToResponses(children),
	})
}

func (h *NavigationHandler) Tree(c *fiber.Ctx) error {
	ctx := c.UserContext()

	roots, err := h.navigationService.Tree(ctx)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.NavigationListResponse{
		Items: dto.NavigationItemsToResponses(roots),
	})
}

// PublicTree serves the storefront menu, cached between tree mutations.
func (h *NavigationHandler) PublicTree(c *fiber.Ctx) error {
	ctx := c.UserContext()

	items, err := h.navigationService.PublicTree(ctx)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.NavigationListResponse{Items: items})
}

func (h *NavigationHandler) Reorder(c *fiber.Ctx) error {
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

	if err := h.navigationService.Reorder(ctx, &req); err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Navigation items reordered successfully"})
}
