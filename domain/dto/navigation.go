package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

// === Requests ===

type CreateNavigationItemRequest struct {
	Title      string     `json:"title" validate:"required,min=1,max=100"`
	Type       string     `json:"type" validate:"omitempty,oneof=LINK CATEGORY"`
	URL        string     `json:"url" validate:"omitempty,max=500"`
	CategoryID *uuid.UUID `json:"categoryId"`
	ParentID         *uuid.UUID `json:"parentId"`
	SortOrder        *int       `json:"sortOrder"`
	IsActive         *bool      `json:"isActive"`
	ShowInNavigation *bool      `json:"showInNavigation"`
}

type UpdateNavigationItemRequest struct {
	Title            *string      `json:"title" validate:"omitempty,min=1,max=100"`
	Type             *string      `json:"type" validate:"omitempty,oneof=LINK CATEGORY"`
	URL              *string      `json:"url" validate:"omitempty,max=500"`
	CategoryID       OptionalUUID `json:"categoryId"`
	ParentID         OptionalUUID `json:"parentId"`
	SortOrder        *int         `json:"sortOrder"`
	IsActive         *bool        `json:"isActive"`
	ShowInNavigation *bool        `json:"showInNavigation"`
}

// === Responses ===

type NavigationItemResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Title            string                    `json:"title"`
	Type             string                    `json:"type"` // lowercased enum
	URL              string                    `json:"url,omitempty"`
	CategoryID       *uuid.UUID                `json:"categoryId,omitempty"`
	CategorySlug     string                    `json:"categorySlug,omitempty"`
	ParentID         *uuid.UUID                `json:"parentId"`
	SortOrder        int                       `json:"sortOrder"`
	IsActive         bool                      `json:"isActive"`
	ShowInNavigation bool                      `json:"showInNavigation"`
	ChildrenCount    int                       `json:"childrenCount"`
	CreatedAt        time.Time                 `json:"createdAt"`
	Children         []*NavigationItemResponse `json:"children,omitempty"`
}

type NavigationListResponse struct {
	Items []*NavigationItemResponse `json:"items"`
}

// === Mappers ===

// NavigationItemToResponse reshapes an already-fetched item, recursing into
// populated Children only. Pure and idempotent.
func NavigationItemToResponse(item *models.NavigationItem) *NavigationItemResponse {
	if item == nil {
		return nil
	}
	resp := &NavigationItemResponse{
		ID:               item.ID,
		Title:            item.Title,
		Type:             strings.ToLower(string(item.Type)),
		URL:              item.URL,
		CategoryID:       item.CategoryID,
		ParentID:         item.ParentID,
		SortOrder:        item.SortOrder,
		IsActive:         item.IsActive,
		ShowInNavigation: item.ShowInNavigation,
		ChildrenCount:    len(item.Children),
		CreatedAt:        item.CreatedAt,
	}
	if item.Category != nil {
		resp.CategorySlug = item.Category.Slug
	}
	if len(item.Children) > 0 {
		resp.Children = make([]*NavigationItemResponse, len(item.Children))
		for i := range item.Children {
			resp.Children[i] = NavigationItemToResponse(&item.Children[i])
		}
	}
	return resp
}

func NavigationItemsToResponses(items []*models.NavigationItem) []*NavigationItemResponse {
	responses := make([]*NavigationItemResponse, len(items))
	for i, item := range items {
		responses[i] = NavigationItemToResponse(item)
	}
	return responses
}

// BuildNavigationTree mirrors BuildCategoryTree for navigation items.
func BuildNavigationTree(flat []*models.NavigationItem) []*models.NavigationItem {
	byID := make(map[uuid.UUID]*models.NavigationItem, len(flat))
	for _, node := range flat {
		node.Children = nil
		byID[node.ID] = node
	}
	var roots []*models.NavigationItem
	for _, node := range flat {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := byID[*node.ParentID]; ok {
			parent.Children = append(parent.Children, *node)
		}
	}
	var link func(node *models.NavigationItem)
	link = func(node *models.NavigationItem) {
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
