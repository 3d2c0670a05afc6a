package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/interfaces/api/middleware"
)

func SetupPromotionRoutes(api fiber.Router, h *handlers.Handlers, s *handlers.Services) {
	promotions := api.Group("/promotions")
	promotions.Use(middleware.Protected(s.JWTSecret))

	promotions.Get("/",
		middleware.RequirePermission(s.UserService, permissions.PromotionsView),
		h.PromotionHandler.List)
	promotions.Get("/:id",
		middleware.RequirePermission(s.UserService, permissions.PromotionsView),
		h.PromotionHandler.GetByID)
	promotions.Post("/",
		middleware.RequirePermission(s.UserService, permissions.PromotionsCreate),
		h.PromotionHandler.Create)
	promotions.Put("/:id",
		middleware.RequirePermission(s.UserService, permissions.PromotionsEdit),
		h.PromotionHandler.Update)
	promotions.Delete("/:id",
		middleware.RequirePermission(s.UserService, permissions.PromotionsDelete),
		h.PromotionHandler.Delete)
}
