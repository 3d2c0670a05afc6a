package serviceimpl

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/permissions"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/pkg/apperrors"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string, jwtTTL time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		logger.WarnContext(ctx, "Login failed, unknown email", "email", req.Email)
		return "", nil, apperrors.NewAuthorization("invalid credentials")
	}
	if !user.IsActive {
		logger.WarnContext(ctx, "Login rejected for inactive user", "user_id", user.ID)
		return "", nil, apperrors.NewAuthorization("account disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed, bad password", "user_id", user.ID)
		return "", nil, apperrors.NewAuthorization("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		logger.ErrorContext(ctx, "Token generation failed", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return token, user, nil
}

// validateCustomPermissions rejects grant strings the catalog has never heard
// of, so typos cannot silently mint capabilities.
func validateCustomPermissions(perms []string) error {
	known := permissions.All()
	var unknown []string
	for _, p := range perms {
		if !known.Has(p) {
			unknown = append(unknown, p)
		}
	}
	if len(unknown) > 0 {
		return apperrors.NewConfig("unknown permissions: " + strings.Join(unknown, ", "))
	}
	return nil
}

// refreshSnapshot rebuilds the denormalized permissions column from the
// catalog. The snapshot exists for ad hoc queries only; authorization always
// re-derives the effective set.
func refreshSnapshot(user *models.User) error {
	role, err := permissions.ParseRole(user.Role)
	if err != nil {
		return err
	}
	effective, err := permissions.ResolveEffective(role, user.CustomPermissionList())
	if err != nil {
		return err
	}
	snapshot, err := json.Marshal(effective.Sorted())
	if err != nil {
		return err
	}
	user.Permissions = string(snapshot)
	return nil
}

func (s *UserServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if _, err := permissions.ParseRole(req.Role); err != nil {
		return nil, err
	}
	if err := validateCustomPermissions(req.CustomPermissions); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	custom, err := json.Marshal(req.CustomPermissions)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:                uuid.New(),
		Email:             strings.ToLower(req.Email),
		Password:          string(hash),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Role:              req.Role,
		CustomPermissions: string(custom),
		IsActive:          true,
	}
	if err := refreshSnapshot(user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	permissionsChanged := false
	if req.Email != nil {
		user.Email = strings.ToLower(*req.Email)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		if _, err := permissions.ParseRole(*req.Role); err != nil {
			return nil, err
		}
		user.Role = *req.Role
		permissionsChanged = true
	}
	if req.CustomPermissions != nil {
		if err := validateCustomPermissions(*req.CustomPermissions); err != nil {
			return nil, err
		}
		custom, err := json.Marshal(*req.CustomPermissions)
		if err != nil {
			return nil, err
		}
		user.CustomPermissions = string(custom)
		permissionsChanged = true
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	// every role/grant write rebuilds the snapshot so it can never drift
	// unnoticed past this point
	if permissionsChanged {
		if err := refreshSnapshot(user); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User updated", "user_id", id)
	return user, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return apperrors.NewConflict("user", "cannot delete own account")
	}
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", id, "error", err)
		return err
	}
	logger.InfoContext(ctx, "User deleted", "user_id", id, "actor_id", actorID)
	return nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserServiceImpl) EffectivePermissions(ctx context.Context, id uuid.UUID) (permissions.Set, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewAuthorization("account disabled")
	}
	role, err := permissions.ParseRole(user.Role)
	if err != nil {
		return nil, err
	}
	return permissions.ResolveEffective(role, user.CustomPermissionList())
}
