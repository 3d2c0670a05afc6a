package dto

import (
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

// === Requests ===

type CreateProductRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Slug        string     `json:"slug" validate:"omitempty,min=1,max=200"`
	Description string     `json:"description"`
	Price       int64      `json:"price" validate:"required,gt=0"`
	OldPrice    *int64     `json:"oldPrice" validate:"omitempty,gt=0"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Stock       int        `json:"stock" validate:"gte=0"`
	IsActive    *bool      `json:"isActive"`
}

type UpdateProductRequest struct {
	Name        *string      `json:"name" validate:"omitempty,min=1,max=200"`
	Slug        *string      `json:"slug" validate:"omitempty,min=1,max=200"`
	Description *string      `json:"description"`
	Price       *int64       `json:"price" validate:"omitempty,gt=0"`
	OldPrice    *int64       `json:"oldPrice"`
	CategoryID  OptionalUUID `json:"categoryId"`
	Stock       *int         `json:"stock" validate:"omitempty,gte=0"`
	IsActive    *bool        `json:"isActive"`
}

type ListProductsQuery struct {
	PaginationQuery
	CategoryID *uuid.UUID `query:"categoryId"`
	IsActive   *bool      `query:"isActive"`
	Search     string     `query:"search"`
}

// === Responses ===

type ProductResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description,omitempty"`
	Price        int64      `json:"price"`
	OldPrice     *int64     `json:"oldPrice,omitempty"`
	CategoryID   *uuid.UUID `json:"categoryId"`
	CategoryName string     `json:"categoryName,omitempty"`
	Stock        int        `json:"stock"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// === Mappers ===

func ProductToResponse(product *models.Product) *ProductResponse {
	if product == nil {
		return nil
	}
	resp := &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Price:       product.Price,
		OldPrice:    product.OldPrice,
		CategoryID:  product.CategoryID,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
	}
	if product.Category != nil {
		resp.CategoryName = product.Category.Name
	}
	return resp
}

func ProductsToResponses(products []*models.Product) []*ProductResponse {
	responses := make([]*ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ProductToResponse(product)
	}
	return responses
}
