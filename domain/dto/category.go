package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

// === Requests ===

type CreateCategoryRequest struct {
	Name             string     `json:"name" validate:"required,min=1,max=100"`
	Slug             string     `json:"slug" validate:"omitempty,min=1,max=100"`
	Description      string     `json:"description" validate:"omitempty,max=500"`
	Type             string     `json:"type" validate:"omitempty,oneof=PRODUCTS BALLOONS GIFTS SERVICES"`
	ParentID         *uuid.UUID `json:"parentId"`
	SortOrder        *int       `json:"sortOrder"`
	IsActive         *bool      `json:"isActive"`
	ShowInNavigation *bool      `json:"showInNavigation"`
}

type UpdateCategoryRequest struct {
	Name             *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Slug             *string    `json:"slug" validate:"omitempty,min=1,max=100"`
	Description      *string    `json:"description" validate:"omitempty,max=500"`
	Type             *string    `json:"type" validate:"omitempty,oneof=PRODUCTS BALLOONS GIFTS SERVICES"`
	// ParentID: absent = untouched, null = move to root, id = move under id
	ParentID         OptionalUUID `json:"parentId"`
	SortOrder        *int         `json:"sortOrder"`
	IsActive         *bool        `json:"isActive"`
	ShowInNavigation *bool        `json:"showInNavigation"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

type ReorderItem struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	SortOrder int       `json:"sortOrder"`
}

type DeleteCategoryQuery struct {
	Force bool `query:"force"`
}

// === Responses ===

type CategoryResponse struct {
	ID               uuid.UUID           `json:"id"`
	Name             string              `json:"name"`
	Slug             string              `json:"slug"`
	Description      string              `json:"description,omitempty"`
	Type             string              `json:"type"` // lowercased enum
	ParentID         *uuid.UUID          `json:"parentId"`
	SortOrder        int                 `json:"sortOrder"`
	IsActive         bool                `json:"isActive"`
	ShowInNavigation bool                `json:"showInNavigation"`
	ChildrenCount    int                 `json:"childrenCount"`
	ProductCount     int64               `json:"productCount"`
	CreatedAt        time.Time           `json:"createdAt"`
	Children         []*CategoryResponse `json:"children,omitempty"`
}

type CategoryListResponse struct {
	Categories []*CategoryResponse `json:"categories"`
}

// === Mappers ===

// CategoryToResponse reshapes what the caller already fetched: it lower-cases
// the type enum, flattens aggregates and recurses into populated Children.
// It never queries, so formatting depth equals the input's depth, and running
// it twice yields the same output.
func CategoryToResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	resp := &CategoryResponse{
		ID:               category.ID,
		Name:             category.Name,
		Slug:             category.Slug,
		Description:      category.Description,
		Type:             strings.ToLower(string(category.Type)),
		ParentID:         category.ParentID,
		SortOrder:        category.SortOrder,
		IsActive:         category.IsActive,
		ShowInNavigation: category.ShowInNavigation,
		ChildrenCount:    len(category.Children),
		ProductCount:     category.ProductCount,
		CreatedAt:        category.CreatedAt,
	}
	if len(category.Children) > 0 {
		resp.Children = make([]*CategoryResponse, len(category.Children))
		for i := range category.Children {
			resp.Children[i] = CategoryToResponse(&category.Children[i])
		}
	}
	return resp
}

func CategoriesToResponses(categories []*models.Category) []*CategoryResponse {
	responses := make([]*CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = CategoryToResponse(category)
	}
	return responses
}

// BuildCategoryTree links a flat, sort-ordered node list into a nested tree in
// a single pass grouped by parent id. Nodes whose parent is missing from the
// input (filtered out or inactive) are dropped rather than promoted, so a
// hidden branch hides its whole subtree. Input order is preserved.
func BuildCategoryTree(flat []*models.Category) []*models.Category {
	byID := make(map[uuid.UUID]*models.Category, len(flat))
	for _, node := range flat {
		node.Children = nil
		byID[node.ID] = node
	}
	var roots []*models.Category
	for _, node := range flat {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := byID[*node.ParentID]; ok {
			parent.Children = append(parent.Children, *node)
		}
	}
	// children were appended by value before their own children were linked;
	// relink depth-first from the roots
	var link func(node *models.Category)
	link = func(node *models.Category) {
		for i := range node.Children {
			child := byID[node.Children[i].ID]
			node.Children[i] = *child
			link(&node.Children[i])
		}
	}
	for _, root := range roots {
		link(root)
	}
	return roots
}
