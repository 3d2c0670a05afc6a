package middleware

import (
	"github.com/gofiber/fiber/v2"

	"shop-backend/domain/permissions"
	"shop-backend/domain/services"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/utils"
)

// Protected validates the bearer token and stores the caller in fiber locals.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			case utils.ErrMissingToken:
				return utils.UnauthorizedResponse(c, "Missing token")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}

// RequirePermission gates a route on the caller's effective permission set.
// The set is resolved from the catalog on every request, never from the token
// or the stored snapshot, so a role downgrade takes effect immediately.
func RequirePermission(userService services.UserService, required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}

		effective, err := userService.EffectivePermissions(c.UserContext(), user.ID)
		if err != nil {
			// deleted or deactivated since the token was issued
			return utils.UnauthorizedResponse(c, "Account is not available")
		}

		if err := permissions.Authorize(effective, required...); err != nil {
			logger.WarnContext(c.UserContext(), "Permission denied",
				"user_id", user.ID, "required", required)
			return err
		}

		return c.Next()
	}
}
