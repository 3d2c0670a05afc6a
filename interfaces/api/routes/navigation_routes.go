package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/interfaces/api/middleware"
)

func SetupNavigationRoutes(api fiber.Router, h *handlers.Handlers, s *handlers.Services) {
	navigation := api.Group("/navigation")
	navigation.Use(middleware.Protected(s.JWTSecret))

	navigation.Get("/",
		middleware.RequirePermission(s.UserService, permissions.NavigationView),
		h.NavigationHandler.List)
	navigation.Get("/tree",
		middleware.RequirePermission(s.UserService, permissions.NavigationView),
		h.NavigationHandler.Tree)
	navigation.Get("/:id",
		middleware.RequirePermission(s.UserService, permissions.NavigationView),
		h.NavigationHandler.GetByID)
	navigation.Get("/:id/children",
		middleware.RequirePermission(s.UserService, permissions.NavigationView),
		h.NavigationHandler.Children)
	navigation.Post("/",
		middleware.RequirePermission(s.UserService, permissions.NavigationCreate),
		h.NavigationHandler.Create)
	navigation.Put("/reorder",
		middleware.RequirePermission(s.UserService, permissions.NavigationEdit),
		h.NavigationHandler.Reorder)
	navigation.Put("/:id",
		middleware.RequirePermission(s.UserService, permissions.NavigationEdit),
		h.NavigationHandler.Update)
	navigation.Delete("/:id",
		middleware.RequirePermission(s.UserService, permissions.NavigationDelete),
		h.NavigationHandler.Delete)
}
