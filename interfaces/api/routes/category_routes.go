package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/interfaces/api/middleware"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers, s *handlers.Services) {
	categories := api.Group("/categories")
	categories.Use(middleware.Protected(s.JWTSecret))

	categories.Get("/",
		middleware.RequirePermission(s.UserService, permissions.CategoriesView),
		h.CategoryHandler.List)
	categories.Get("/tree",
		middleware.RequirePermission(s.UserService, permissions.CategoriesView),
		h.CategoryHandler.Tree)
	categories.Get("/:id",
		middleware.RequirePermission(s.UserService, permissions.CategoriesView),
		h.CategoryHandler.GetByID)
	categories.Get("/:id/children",
		middleware.RequirePermission(s.UserService, permissions.CategoriesView),
		h.CategoryHandler.Children)
	categories.Post("/",
		middleware.RequirePermission(s.UserService, permissions.CategoriesCreate),
		h.CategoryHandler.Create)
	categories.Put("/reorder",
		middleware.RequirePermission(s.UserService, permissions.CategoriesEdit),
		h.CategoryHandler.Reorder)
	categories.Put("/:id",
		middleware.RequirePermission(s.UserService, permissions.CategoriesEdit),
		h.CategoryHandler.Update)
	categories.Delete("/:id",
		middleware.RequirePermission(s.UserService, permissions.CategoriesDelete),
		h.CategoryHandler.Delete)
}
