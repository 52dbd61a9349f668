// FILE: internal/controller/fee_controller.go
package controller

import (
	"fmt"

	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/pkg/serverutils"
	"hostel-mgmt-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeeController interface {
	RegisterRoutes(r fiber.Router)
	GetMyFees(ctx *fiber.Ctx) error
	GetWallet(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	PayWithWallet(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type feeController struct {
	service        service.IFeeService
	studentService service.IStudentService
}

func NewFeeController(feeService service.IFeeService, studentService service.IStudentService) IFeeController {
	return &feeController{
		service:        feeService,
		studentService: studentService,
	}
}

func (c *feeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/fees")
	h.Post("/midtrans/notification", c.Webhook)

	// Protected Routes
	student := requireStudent(c.studentService)
	h.Get("/", serverutils.JwtMiddleware, student, c.GetMyFees)
	h.Get("/wallet", serverutils.JwtMiddleware, student, c.GetWallet)
	h.Post("/checkout", serverutils.JwtMiddleware, student, c.Checkout)
	h.Post("/wallet-pay", serverutils.JwtMiddleware, student, c.PayWithWallet)
}

func (c *feeController) GetMyFees(ctx *fiber.Ctx) error {
	res, err := c.service.GetStudentFees(ctx.Context(), currentStudentId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Fees", res))
}

func (c *feeController) GetWallet(ctx *fiber.Ctx) error {
	wallet, transactions, err := c.service.GetWallet(ctx.Context(), currentStudentId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Wallet", fiber.Map{
		"wallet":       wallet,
		"transactions": transactions,
	}))
}

func (c *feeController) Checkout(ctx *fiber.Ctx) error {
	var req dto.FeeCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Checkout(ctx.Context(), currentStudentId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *feeController) PayWithWallet(ctx *fiber.Ctx) error {
	var req dto.WalletPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.PayWithWallet(ctx.Context(), currentStudentId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Fee paid from wallet", res))
}

func (c *feeController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		fmt.Printf("[WEBHOOK ERROR] Body parsing failed: %v\n", err)
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	sigPreview := req.SignatureKey
	if len(sigPreview) > 8 {
		sigPreview = sigPreview[:8] + "..."
	}
	fmt.Printf("[WEBHOOK] Received: OrderId=%s, Status=%s, SignatureKey=%s\n",
		req.OrderId, req.TransactionStatus, sigPreview)

	err := c.service.HandleNotification(ctx.Context(), &req)
	if err != nil {
		fmt.Printf("[WEBHOOK ERROR] Service handling failed for OrderId=%s: %v\n", req.OrderId, err)
		// Return 500 so Midtrans will retry the notification
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	fmt.Printf("[WEBHOOK] Successfully processed OrderId=%s\n", req.OrderId)
	return ctx.SendStatus(fiber.StatusOK)
}
