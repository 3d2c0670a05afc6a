package handlers

import (
	"shop-backend/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService       services.UserService
	CategoryService   services.CategoryService
	NavigationService services.NavigationService
	ProductService    services.ProductService
	OrderService      services.OrderService
	CustomerService   services.CustomerService
	CallbackService   services.CallbackService
	ReviewService     services.ReviewService
	PromotionService  services.PromotionService
	JWTSecret         string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	CategoryHandler   *CategoryHandler
	NavigationHandler *NavigationHandler
	ProductHandler    *ProductHandler
	OrderHandler      *OrderHandler
	CustomerHandler   *CustomerHandler
	CallbackHandler   *CallbackHandler
	ReviewHandler     *ReviewHandler
	PromotionHandler  *PromotionHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:       NewAuthHandler(services.UserService),
		UserHandler:       NewUserHandler(services.UserService),
		CategoryHandler:   NewCategoryHandler(services.CategoryService),
		NavigationHandler: NewNavigationHandler(services.NavigationService),
		ProductHandler:    NewProductHandler(services.ProductService),
		OrderHandler:      NewOrderHandler(services.OrderService),
		CustomerHandler:   NewCustomerHandler(services.CustomerService),
		CallbackHandler:   NewCallbackHandler(services.CallbackService),
		ReviewHandler:     NewReviewHandler(services.ReviewService),
		PromotionHandler:  NewPromotionHandler(services.PromotionService),
	}
}
