// FILE: internal/controller/middleware.go
package controller

import (
	"hostel-mgmt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// requireStudent resolves the student profile behind the authenticated user
// and stores its id in locals. Must run after serverutils.JwtMiddleware.
func requireStudent(studentService service.IStudentService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId := currentUserId(ctx)
		if userId == uuid.Nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}
		profile, err := studentService.GetProfileByUser(ctx.Context(), userId)
		if err != nil {
			return err
		}
		ctx.Locals("student_id", profile.Id)
		return ctx.Next()
	}
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil
	}
	return userId
}

func currentStudentId(ctx *fiber.Ctx) uuid.UUID {
	studentId, _ := ctx.Locals("student_id").(uuid.UUID)
	return studentId
}
