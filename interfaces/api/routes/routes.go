package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, s *handlers.Services) {
	// Setup health and root routes
	SetupHealthRoutes(app)

	// API version group
	api := app.Group("/api/v1")

	// Public storefront surface
	SetupPublicRoutes(api, h)

	// Admin panel surface
	SetupAuthRoutes(api, h)
	SetupCategoryRoutes(api, h, s)
	SetupNavigationRoutes(api, h, s)
	SetupProductRoutes(api, h, s)
	SetupOrderRoutes(api, h, s)
	SetupCustomerRoutes(api, h, s)
	SetupCallbackRoutes(api, h, s)
	SetupReviewRoutes(api, h, s)
	SetupPromotionRoutes(api, h, s)
	SetupUserRoutes(api, h, s)
}
