package dto

import (
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
	"shop-backend/domain/permissions"
)

// === Requests ===

type CreateUserRequest struct {
	Email             string   `json:"email" validate:"required,email"`
	Password          string   `json:"password" validate:"required,min=8,max=72"`
	FirstName         string   `json:"firstName" validate:"omitempty,max=100"`
	LastName          string   `json:"lastName" validate:"omitempty,max=100"`
	Role              string   `json:"role" validate:"required,oneof=SUPER_ADMIN ADMINISTRATOR MANAGER CRM_MANAGER"`
	CustomPermissions []string `json:"customPermissions"`
}

type UpdateUserRequest struct {
	Email             *string   `json:"email" validate:"omitempty,email"`
	Password          *string   `json:"password" validate:"omitempty,min=8,max=72"`
	FirstName         *string   `json:"firstName" validate:"omitempty,max=100"`
	LastName          *string   `json:"lastName" validate:"omitempty,max=100"`
	Role              *string   `json:"role" validate:"omitempty,oneof=SUPER_ADMIN ADMINISTRATOR MANAGER CRM_MANAGER"`
	CustomPermissions *[]string `json:"customPermissions"`
	IsActive          *bool     `json:"isActive"`
}

// === Responses ===

type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"firstName,omitempty"`
	LastName          string    `json:"lastName,omitempty"`
	Role              string    `json:"role"`
	CustomPermissions []string  `json:"customPermissions"`
	// Permissions is the effective set derived at response time, not the
	// stored snapshot column.
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UserListResponse struct {
	Users []*UserResponse `json:"users"`
}

// === Mappers ===

func UserToResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	custom := user.CustomPermissionList()
	resp := &UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Role:              user.Role,
		CustomPermissions: custom,
		IsActive:          user.IsActive,
		CreatedAt:         user.CreatedAt,
	}
	if role, err := permissions.ParseRole(user.Role); err == nil {
		if effective, err := permissions.ResolveEffective(role, custom); err == nil {
			resp.Permissions = effective.Sorted()
		}
	}
	return resp
}

func UsersToResponses(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, user := range users {
		responses[i] = UserToResponse(user)
	}
	return responses
}
