package services

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/permissions"
)

type UserService interface {
	// Login verifies credentials and issues a signed token.
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)

	// Create validates the role and any custom permission strings against the
	// catalog before persisting; the snapshot column is rebuilt on write.
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)

	// Delete refuses self-deletion.
	Delete(ctx context.Context, actorID, id uuid.UUID) error

	List(ctx context.Context) ([]*models.User, error)

	// EffectivePermissions derives the caller's set from the catalog at call
	// time; the stored snapshot is never consulted.
	EffectivePermissions(ctx context.Context, id uuid.UUID) (permissions.Set, error)
}
