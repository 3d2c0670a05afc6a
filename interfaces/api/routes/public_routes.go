package routes

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/interfaces/api/handlers"
)

// SetupPublicRoutes mounts the unauthenticated storefront surface.
func SetupPublicRoutes(api fiber.Router, h *handlers.Handlers) {
	public := api.Group("/public")

	public.Get("/navigation", h.NavigationHandler.PublicTree)
	public.Get("/categories", h.CategoryHandler.PublicTree)
	public.Get("/categories/:slug", h.CategoryHandler.GetBySlug)
	public.Get("/products", h.ProductHandler.PublicList)
	public.Get("/products/:slug", h.ProductHandler.GetBySlug)
	public.Get("/reviews", h.ReviewHandler.ListApproved)
	public.Post("/reviews", h.ReviewHandler.Create)
	public.Post("/callbacks", h.CallbackHandler.Create)
	public.Post("/orders", h.OrderHandler.Create)
	public.Post("/promotions/validate", h.PromotionHandler.Validate)
}
