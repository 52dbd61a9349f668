// FILE: internal/controller/admin_controller.go
package controller

import (
	"hostel-mgmt-be/internal/pkg/serverutils"
	"hostel-mgmt-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
	LogById(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware, serverutils.StaffOnly)
	h.Get("/dashboard", c.Dashboard)
	h.Get("/logs", c.Logs)
	h.Get("/logs/:id", c.LogById)
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.service.Dashboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard", res))
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	entries, err := c.service.Logs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", entries))
}

func (c *adminController) LogById(ctx *fiber.Ctx) error {
	entry, err := c.service.LogById(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "log entry not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Log entry", entry))
}
