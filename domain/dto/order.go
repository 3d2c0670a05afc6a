package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

// === Requests ===

type CreateOrderRequest struct {
	// Existing customer, or inline details for a new one
	CustomerID    *uuid.UUID         `json:"customerId"`
	CustomerName  string             `json:"customerName" validate:"required_without=CustomerID,omitempty,max=200"`
	CustomerPhone string             `json:"customerPhone" validate:"required_without=CustomerID,omitempty,max=30"`
	CustomerEmail string             `json:"customerEmail" validate:"omitempty,email"`
	Comment       string             `json:"comment" validate:"omitempty,max=1000"`
	PromoCode     string             `json:"promoCode" validate:"omitempty,max=40"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW CONFIRMED SHIPPED DELIVERED CANCELLED"`
}

type ListOrdersQuery struct {
	PaginationQuery
	CustomerID *uuid.UUID `query:"customerId"`
	Status     string     `query:"status"`
}

// === Responses ===

type OrderResponse struct {
	ID         uuid.UUID            `json:"id"`
	Number     string               `json:"number"`
	CustomerID uuid.UUID            `json:"customerId"`
	Customer   *CustomerResponse    `json:"customer,omitempty"`
	Status     string               `json:"status"` // lowercased enum
	Total      int64                `json:"total"`
	Comment    string               `json:"comment,omitempty"`
	PromoCode  string               `json:"promoCode,omitempty"`
	Items      []*OrderItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
}

type OrderItemResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProductID *uuid.UUID `json:"productId"`
	Name      string     `json:"name"`
	Price     int64      `json:"price"`
	Quantity  int        `json:"quantity"`
}

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// === Mappers ===

func OrderToResponse(order *models.Order) *OrderResponse {
	if order == nil {
		return nil
	}
	resp := &OrderResponse{
		ID:         order.ID,
		Number:     order.Number,
		CustomerID: order.CustomerID,
		Customer:   CustomerToResponse(order.Customer),
		Status:     strings.ToLower(string(order.Status)),
		Total:      order.Total,
		Comment:    order.Comment,
		PromoCode:  order.PromoCode,
		CreatedAt:  order.CreatedAt,
	}
	if len(order.Items) > 0 {
		resp.Items = make([]*OrderItemResponse, len(order.Items))
		for i := range order.Items {
			item := &order.Items[i]
			resp.Items[i] = &OrderItemResponse{
				ID:        item.ID,
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			}
		}
	}
	return resp
}

func OrdersToResponses(orders []*models.Order) []*OrderResponse {
	responses := make([]*OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = OrderToResponse(order)
	}
	return responses
}

func CustomerToResponse(customer *models.Customer) *CustomerResponse {
	if customer == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Email:     customer.Email,
		Comment:   customer.Comment,
		CreatedAt: customer.CreatedAt,
	}
}

func CustomersToResponses(customers []*models.Customer) []*CustomerResponse {
	responses := make([]*CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = CustomerToResponse(customer)
	}
	return responses
}
