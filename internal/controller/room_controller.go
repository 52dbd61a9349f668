// FILE: internal/controller/room_controller.go
package controller

import (
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/pkg/serverutils"
	"hostel-mgmt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRoomController interface {
	RegisterRoutes(r fiber.Router)
	ListRooms(ctx *fiber.Ctx) error
	GetRoom(ctx *fiber.Ctx) error
	CreateRoom(ctx *fiber.Ctx) error
	UpdateRoom(ctx *fiber.Ctx) error
}

type roomController struct {
	service service.IRoomService
}

func NewRoomController(service service.IRoomService) IRoomController {
	return &roomController{service: service}
}

func (c *roomController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/rooms")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.ListRooms)
	h.Get("/:id", c.GetRoom)

	h.Post("/", serverutils.StaffOnly, c.CreateRoom)
	h.Put("/:id", serverutils.StaffOnly, c.UpdateRoom)
}

func (c *roomController) ListRooms(ctx *fiber.Ctx) error {
	res, err := c.service.ListRooms(ctx.Context(), ctx.Query("gender"), ctx.Query("room_type"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Rooms", res))
}

func (c *roomController) GetRoom(ctx *fiber.Ctx) error {
	roomId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid room id"))
	}

	res, err := c.service.GetRoom(ctx.Context(), roomId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room", res))
}

func (c *roomController) CreateRoom(ctx *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateRoom(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Room created", res))
}

func (c *roomController) UpdateRoom(ctx *fiber.Ctx) error {
	roomId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid room id"))
	}

	var req dto.UpdateRoomRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.UpdateRoom(ctx.Context(), roomId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room updated", res))
}
