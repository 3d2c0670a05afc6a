package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/interfaces/api/middleware"
)

func SetupCallbackRoutes(api fiber.Router, h *handlers.Handlers, s *handlers.Services) {
	callbacks := api.Group("/callbacks")
	callbacks.Use(middleware.Protected(s.JWTSecret))

	callbacks.Get("/",
		middleware.RequirePermission(s.UserService, permissions.CallbacksView),
		h.CallbackHandler.List)
	callbacks.Get("/:id",
		middleware.RequirePermission(s.UserService, permissions.CallbacksView),
		h.CallbackHandler.GetByID)
	callbacks.Put("/:id",
		middleware.RequirePermission(s.UserService, permissions.CallbacksEdit),
		h.CallbackHandler.Update)
	callbacks.Delete("/:id",
		middleware.RequirePermission(s.UserService, permissions.CallbacksEdit),
		h.CallbackHandler.Delete)
}
