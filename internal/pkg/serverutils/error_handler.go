// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hostel-mgmt-be/internal/apperror"
)

// statusForCode maps domain error codes to HTTP statuses.
func statusForCode(code apperror.Code) int {
	switch code {
	case apperror.CodeNotFound:
		return fiber.StatusNotFound
	case apperror.CodeForbidden:
		return fiber.StatusForbidden
	case apperror.CodeInvalidTransition, apperror.CodeAlreadySelected, apperror.CodeDuplicateMember, apperror.CodeRoomUnavailable:
		return fiber.StatusConflict
	case apperror.CodeNotEligible, apperror.CodeCapacityMismatch, apperror.CodeGenderMismatch:
		return fiber.StatusUnprocessableEntity
	case apperror.CodeBadRequest:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware converts errors escaping the handlers into the
// standard JSON envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperror.As(err); ok {
			status := statusForCode(appErr.Code)
			if len(appErr.Reasons) > 0 {
				return ctx.Status(status).JSON(ErrorResponseWithReasons(status, appErr.Message, appErr.Reasons))
			}
			return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message))
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		if strings.HasPrefix(err.Error(), "validation failed") {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
