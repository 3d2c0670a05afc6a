package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shop-backend/pkg/apperrors"
	"shop-backend/pkg/logger"
	"shop-backend/pkg/utils"
)

// ErrorHandler maps the typed service errors onto HTTP statuses. It is the
// single place where the error taxonomy meets the wire; handlers just return
// whatever the service gave them.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var notFound *apperrors.NotFoundError
		var reference *apperrors.ReferenceError
		var conflict *apperrors.ConflictError
		var authz *apperrors.AuthorizationError
		var config *apperrors.ConfigError

		switch {
		case errors.As(err, &notFound):
			return utils.NotFoundResponse(c, notFound.Error())
		case errors.As(err, &reference):
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity,
				utils.ErrCodeReference, reference.Error(), nil)
		case errors.As(err, &conflict):
			var details any
			if conflict.Count > 0 {
				details = fiber.Map{"count": conflict.Count}
			}
			return utils.ErrorResponse(c, fiber.StatusConflict,
				utils.ErrCodeConflict, conflict.Error(), details)
		case errors.As(err, &authz):
			var details any
			if len(authz.Missing) > 0 {
				details = fiber.Map{"missing": authz.Missing}
			}
			return utils.ForbiddenResponse(c, "Insufficient permissions", details)
		case errors.As(err, &config):
			return utils.BadRequestResponse(c, config.Error())
		}

		if e, ok := err.(*fiber.Error); ok {
			errCode := utils.ErrCodeInternalError
			switch e.Code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusForbidden:
				errCode = utils.ErrCodeForbidden
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
			return utils.ErrorResponse(c, e.Code, errCode, e.Message, nil)
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error",
			"method", c.Method(), "path", c.Path(), "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
