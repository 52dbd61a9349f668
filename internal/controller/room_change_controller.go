// FILE: internal/controller/room_change_controller.go
package controller

import (
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/pkg/serverutils"
	"hostel-mgmt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRoomChangeController interface {
	RegisterRoutes(r fiber.Router)
	CheckEligibility(ctx *fiber.Ctx) error
	AvailableRooms(ctx *fiber.Ctx) error
	CreateRequest(ctx *fiber.Ctx) error
	GetMyRequests(ctx *fiber.Ctx) error
	CancelRequest(ctx *fiber.Ctx) error
	ListRequests(ctx *fiber.Ctx) error
	GetRequest(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type roomChangeController struct {
	service        service.IRoomChangeService
	studentService service.IStudentService
}

func NewRoomChangeController(roomChangeService service.IRoomChangeService, studentService service.IStudentService) IRoomChangeController {
	return &roomChangeController{
		service:        roomChangeService,
		studentService: studentService,
	}
}

func (c *roomChangeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/room-changes")
	h.Use(serverutils.JwtMiddleware)

	student := requireStudent(c.studentService)
	h.Get("/eligibility", student, c.CheckEligibility)
	h.Get("/rooms", student, c.AvailableRooms)
	h.Get("/me", student, c.GetMyRequests)
	h.Post("/", student, c.CreateRequest)
	h.Delete("/:id", student, c.CancelRequest)

	h.Get("/", serverutils.StaffOnly, c.ListRequests)
	h.Get("/:id", serverutils.StaffOnly, c.GetRequest)
	h.Post("/:id/approve", serverutils.StaffOnly, c.Approve)
	h.Post("/:id/reject", serverutils.StaffOnly, c.Reject)
	h.Post("/:id/complete", serverutils.StaffOnly, c.Complete)
}

func (c *roomChangeController) CheckEligibility(ctx *fiber.Ctx) error {
	res, err := c.service.CheckEligibility(ctx.Context(), currentStudentId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room change eligibility", res))
}

func (c *roomChangeController) AvailableRooms(ctx *fiber.Ctx) error {
	res, err := c.service.AvailableRooms(ctx.Context(), currentStudentId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Available rooms", res))
}

func (c *roomChangeController) CreateRequest(ctx *fiber.Ctx) error {
	var req dto.CreateRoomChangeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateRequest(ctx.Context(), currentStudentId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Room change requested", res))
}

func (c *roomChangeController) GetMyRequests(ctx *fiber.Ctx) error {
	res, err := c.service.GetMyRequests(ctx.Context(), currentStudentId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room change requests", res))
}

func (c *roomChangeController) CancelRequest(ctx *fiber.Ctx) error {
	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request id"))
	}

	if err := c.service.CancelRequest(ctx.Context(), currentStudentId(ctx), requestId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Room change request cancelled", nil))
}

func (c *roomChangeController) ListRequests(ctx *fiber.Ctx) error {
	res, err := c.service.ListRequests(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room change requests", res))
}

func (c *roomChangeController) GetRequest(ctx *fiber.Ctx) error {
	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request id"))
	}

	res, err := c.service.GetRequest(ctx.Context(), requestId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room change request", res))
}

func (c *roomChangeController) Approve(ctx *fiber.Ctx) error {
	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request id"))
	}

	var req dto.RoomChangeDecisionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	res, err := c.service.Approve(ctx.Context(), currentUserId(ctx), requestId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room change approved", res))
}

func (c *roomChangeController) Reject(ctx *fiber.Ctx) error {
	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request id"))
	}

	var req dto.RoomChangeDecisionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	res, err := c.service.Reject(ctx.Context(), currentUserId(ctx), requestId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room change rejected", res))
}

func (c *roomChangeController) Complete(ctx *fiber.Ctx) error {
	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request id"))
	}

	res, err := c.service.Complete(ctx.Context(), currentUserId(ctx), requestId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room change completed", res))
}
