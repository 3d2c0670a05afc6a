package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/interfaces/api/middleware"
)

func SetupOrderRoutes(api fiber.Router, h *handlers.Handlers, s *handlers.Services) {
	orders := api.Group("/orders")
	orders.Use(middleware.Protected(s.JWTSecret))

	orders.Get("/",
		middleware.RequirePermission(s.UserService, permissions.OrdersView),
		h.OrderHandler.List)
	orders.Get("/:id",
		middleware.RequirePermission(s.UserService, permissions.OrdersView),
		h.OrderHandler.GetByID)
	orders.Post("/",
		middleware.RequirePermission(s.UserService, permissions.OrdersCreate),
		h.OrderHandler.Create)
	orders.Patch("/:id/status",
		middleware.RequirePermission(s.UserService, permissions.OrdersEdit),
		h.OrderHandler.UpdateStatus)
}
