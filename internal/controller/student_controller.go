// FILE: internal/controller/student_controller.go
package controller

import (
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/pkg/serverutils"
	"hostel-mgmt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudentController interface {
	RegisterRoutes(r fiber.Router)
	GetMyProfile(ctx *fiber.Ctx) error
	UpdatePreferences(ctx *fiber.Ctx) error
	ListStudents(ctx *fiber.Ctx) error
	GetStudent(ctx *fiber.Ctx) error
}

type studentController struct {
	studentService  service.IStudentService
	matchingService service.IMatchingService
}

func NewStudentController(studentService service.IStudentService, matchingService service.IMatchingService) IStudentController {
	return &studentController{
		studentService:  studentService,
		matchingService: matchingService,
	}
}

func (c *studentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/students")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/me", c.GetMyProfile)
	h.Put("/me/preferences", requireStudent(c.studentService), c.UpdatePreferences)

	h.Get("/", serverutils.StaffOnly, c.ListStudents)
	h.Get("/:id", serverutils.StaffOnly, c.GetStudent)
}

func (c *studentController) GetMyProfile(ctx *fiber.Ctx) error {
	res, err := c.studentService.GetProfileByUser(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Student profile", res))
}

func (c *studentController) UpdatePreferences(ctx *fiber.Ctx) error {
	var req dto.UpdatePreferencesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.matchingService.UpdatePreferences(ctx.Context(), currentStudentId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Preferences updated", nil))
}

func (c *studentController) ListStudents(ctx *fiber.Ctx) error {
	gender := ctx.Query("gender")
	unassignedOnly := ctx.QueryBool("unassigned", false)

	res, err := c.studentService.ListStudents(ctx.Context(), gender, unassignedOnly)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Students", res))
}

func (c *studentController) GetStudent(ctx *fiber.Ctx) error {
	studentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid student id"))
	}

	res, err := c.studentService.GetProfile(ctx.Context(), studentId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Student profile", res))
}
