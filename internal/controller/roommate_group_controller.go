// FILE: internal/controller/roommate_group_controller.go
package controller

import (
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/pkg/serverutils"
	"hostel-mgmt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRoommateGroupController interface {
	RegisterRoutes(r fiber.Router)
	SendRequest(ctx *fiber.Ctx) error
	ListRequests(ctx *fiber.Ctx) error
	RespondToRequest(ctx *fiber.Ctx) error
	GetMyGroup(ctx *fiber.Ctx) error
	AvailableRooms(ctx *fiber.Ctx) error
	SelectRoom(ctx *fiber.Ctx) error
	CancelGroup(ctx *fiber.Ctx) error
}

type roommateGroupController struct {
	service        service.IRoommateGroupService
	studentService service.IStudentService
}

func NewRoommateGroupController(groupService service.IRoommateGroupService, studentService service.IStudentService) IRoommateGroupController {
	return &roommateGroupController{
		service:        groupService,
		studentService: studentService,
	}
}

func (c *roommateGroupController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/groups")
	h.Use(serverutils.JwtMiddleware, requireStudent(c.studentService))
	h.Post("/requests", c.SendRequest)
	h.Get("/requests", c.ListRequests)
	h.Post("/requests/:id/respond", c.RespondToRequest)
	h.Get("/me", c.GetMyGroup)
	h.Get("/rooms", c.AvailableRooms)
	h.Post("/select-room", c.SelectRoom)
	h.Post("/cancel", c.CancelGroup)
}

func (c *roommateGroupController) SendRequest(ctx *fiber.Ctx) error {
	var req dto.SendRoommateRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendRequest(ctx.Context(), currentStudentId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Roommate request sent", res))
}

func (c *roommateGroupController) ListRequests(ctx *fiber.Ctx) error {
	res, err := c.service.ListRequests(ctx.Context(), currentStudentId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Roommate requests", res))
}

func (c *roommateGroupController) RespondToRequest(ctx *fiber.Ctx) error {
	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request id"))
	}

	var req dto.RespondRoommateRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.RespondToRequest(ctx.Context(), currentStudentId(ctx), requestId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("Roommate request rejected", nil))
	}
	return ctx.JSON(serverutils.SuccessResponse("Roommate request accepted", res))
}

func (c *roommateGroupController) GetMyGroup(ctx *fiber.Ctx) error {
	res, err := c.service.GetMyGroup(ctx.Context(), currentStudentId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Roommate group", res))
}

func (c *roommateGroupController) AvailableRooms(ctx *fiber.Ctx) error {
	res, err := c.service.AvailableRooms(ctx.Context(), currentStudentId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Available rooms", res))
}

func (c *roommateGroupController) SelectRoom(ctx *fiber.Ctx) error {
	var req dto.SelectRoomRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SelectRoom(ctx.Context(), currentStudentId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room selected", res))
}

func (c *roommateGroupController) CancelGroup(ctx *fiber.Ctx) error {
	var req dto.CancelGroupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.CancelGroup(ctx.Context(), currentStudentId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Group cancelled", nil))
}
