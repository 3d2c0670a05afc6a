package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, s *handlers.Services) {
	users := api.Group("/users")
	users.Use(middleware.Protected(s.JWTSecret))

	// any authenticated user may read their own profile
	users.Get("/me", h.UserHandler.Me)

	users.Get("/",
		middleware.RequirePermission(s.UserService, permissions.UsersView),
		h.UserHandler.List)
	users.Get("/:id",
		middleware.RequirePermission(s.UserService, permissions.UsersView),
		h.UserHandler.GetByID)
	users.Post("/",
		middleware.RequirePermission(s.UserService, permissions.UsersCreate),
		h.UserHandler.Create)
	users.Put("/:id",
		middleware.RequirePermission(s.UserService, permissions.UsersEdit),
		h.UserHandler.Update)
	users.Delete("/:id",
		middleware.RequirePermission(s.UserService, permissions.UsersDelete),
		h.UserHandler.Delete)
}
