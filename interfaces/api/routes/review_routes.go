package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/interfaces/api/middleware"
)

func SetupReviewRoutes(api fiber.Router, h *handlers.Handlers, s *handlers.Services) {
	reviews := api.Group("/reviews")
	reviews.Use(middleware.Protected(s.JWTSecret))

	reviews.Get("/",
		middleware.RequirePermission(s.UserService, permissions.ReviewsView),
		h.ReviewHandler.List)
	reviews.Patch("/:id/status",
		middleware.RequirePermission(s.UserService, permissions.ReviewsEdit),
		h.ReviewHandler.Moderate)
	reviews.Delete("/:id",
		middleware.RequirePermission(s.UserService, permissions.ReviewsDelete),
		h.ReviewHandler.Delete)
}
