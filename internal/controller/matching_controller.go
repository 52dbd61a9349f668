// FILE: internal/controller/matching_controller.go
package controller

import (
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/pkg/serverutils"
	"hostel-mgmt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMatchingController interface {
	RegisterRoutes(r fiber.Router)
	GetSuggestions(ctx *fiber.Ctx) error
	GetRoomTypeMatches(ctx *fiber.Ctx) error
	CheckCompatibility(ctx *fiber.Ctx) error
	FormGroups(ctx *fiber.Ctx) error
}

type matchingController struct {
	service        service.IMatchingService
	studentService service.IStudentService
}

func NewMatchingController(matchingService service.IMatchingService, studentService service.IStudentService) IMatchingController {
	return &matchingController{
		service:        matchingService,
		studentService: studentService,
	}
}

func (c *matchingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/matching")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/suggestions", requireStudent(c.studentService), c.GetSuggestions)
	h.Get("/room-type-matches", requireStudent(c.studentService), c.GetRoomTypeMatches)
	h.Get("/compatibility/:studentId", requireStudent(c.studentService), c.CheckCompatibility)

	h.Post("/form-groups", serverutils.StaffOnly, c.FormGroups)
}

func (c *matchingController) GetSuggestions(ctx *fiber.Ctx) error {
	refresh := ctx.QueryBool("refresh", false)

	res, err := c.service.GetSuggestions(ctx.Context(), currentStudentId(ctx), refresh)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Match suggestions", res))
}

// GetRoomTypeMatches builds a roommate lineup for the requested room type,
// seating the student's preferred roommates before best-match suggestions.
func (c *matchingController) GetRoomTypeMatches(ctx *fiber.Ctx) error {
	roomType := ctx.Query("room_type")

	res, err := c.service.GetRoomTypeMatches(ctx.Context(), currentStudentId(ctx), roomType)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room type matches", res))
}

func (c *matchingController) CheckCompatibility(ctx *fiber.Ctx) error {
	otherId, err := uuid.Parse(ctx.Params("studentId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid student id"))
	}

	res, err := c.service.CheckCompatibility(ctx.Context(), currentStudentId(ctx), otherId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Compatibility", res))
}

// FormGroups proposes full roommate groups over the unassigned pool. The
// proposals are not persisted; group creation stays a member-driven flow.
func (c *matchingController) FormGroups(ctx *fiber.Ctx) error {
	var req dto.FormGroupsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.FormGroups(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Formed groups", res))
}
