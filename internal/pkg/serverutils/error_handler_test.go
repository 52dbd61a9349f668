package serverutils

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"hostel-mgmt-be/internal/apperror"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code apperror.Code
		want int
	}{
		{apperror.CodeNotFound, fiber.StatusNotFound},
		{apperror.CodeForbidden, fiber.StatusForbidden},
		{apperror.CodeInvalidTransition, fiber.StatusConflict},
		{apperror.CodeAlreadySelected, fiber.StatusConflict},
		{apperror.CodeDuplicateMember, fiber.StatusConflict},
		{apperror.CodeRoomUnavailable, fiber.StatusConflict},
		{apperror.CodeNotEligible, fiber.StatusUnprocessableEntity},
		{apperror.CodeCapacityMismatch, fiber.StatusUnprocessableEntity},
		{apperror.CodeGenderMismatch, fiber.StatusUnprocessableEntity},
		{apperror.CodeBadRequest, fiber.StatusBadRequest},
		{apperror.Code("SOMETHING_NEW"), fiber.StatusInternalServerError},
	}

	for _, tc := range tests {
		if got := statusForCode(tc.code); got != tc.want {
			t.Errorf("statusForCode(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Score int    `validate:"min=0,max=100"`
	}

	if err := ValidateRequest(payload{Email: "a@b.c", Score: 50}); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	if err := ValidateRequest(payload{Email: "nope", Score: 200}); err == nil {
		t.Error("invalid payload accepted")
	}
}
