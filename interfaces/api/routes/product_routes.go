package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/interfaces/api/middleware"
)

func SetupProductRoutes(api fiber.Router, h *handlers.Handlers, s *handlers.Services) {
	products := api.Group("/products")
	products.Use(middleware.Protected(s.JWTSecret))

	products.Get("/",
		middleware.RequirePermission(s.UserService, permissions.ProductsView),
		h.ProductHandler.List)
	products.Get("/:id",
		middleware.RequirePermission(s.UserService, permissions.ProductsView),
		h.ProductHandler.GetByID)
	products.Post("/",
		middleware.RequirePermission(s.UserService, permissions.ProductsCreate),
		h.ProductHandler.Create)
	products.Put("/:id",
		middleware.RequirePermission(s.UserService, permissions.ProductsEdit),
		h.ProductHandler.Update)
	products.Delete("/:id",
		middleware.RequirePermission(s.UserService, permissions.ProductsDelete),
		h.ProductHandler.Delete)
}
