package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/interfaces/api/handlers"
	"shop-backend/interfaces/api/middleware"
)

func SetupCustomerRoutes(api fiber.Router, h *handlers.Handlers, s *handlers.Services) {
	customers := api.Group("/customers")
	customers.Use(middleware.Protected(s.JWTSecret))

	customers.Get("/",
		middleware.RequirePermission(s.UserService, permissions.CustomersView),
		h.CustomerHandler.List)
	customers.Get("/:id",
		middleware.RequirePermission(s.UserService, permissions.CustomersView),
		h.CustomerHandler.GetByID)
	customers.Put("/:id",
		middleware.RequirePermission(s.UserService, permissions.CustomersEdit),
		h.CustomerHandler.Update)
}
