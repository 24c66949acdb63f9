package controller

import (
	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/pkg/logger"
	"juntaplay-be/internal/pkg/serverutils"
	"juntaplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Notification(ctx *fiber.Ctx) error
	ShowOrder(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService service.IPaymentService
	logger         logger.ILogger
}

func NewPaymentController(paymentService service.IPaymentService, log logger.ILogger) IPaymentController {
	return &paymentController{
		paymentService: paymentService,
		logger:         log,
	}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payments")
	// Webhook is called by the gateway, no JWT.
	h.Post("/notification", c.Notification)
	h.Get("/orders/:id", serverutils.JwtMiddleware, c.ShowOrder)
}

func (c *paymentController) Notification(ctx *fiber.Ctx) error {
	var req dto.PaymentNotificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.paymentService.HandleNotification(ctx.Context(), &req); err != nil {
		if err == service.ErrInvalidSignature {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		// Non-2xx makes the gateway retry, which is what we want on
		// transient failures.
		c.logger.Error("PaymentController", "Webhook processing failed", map[string]interface{}{"order_id": req.OrderId, "error": err.Error()})
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}

func (c *paymentController) ShowOrder(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	orderId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	res, err := c.paymentService.GetOrder(ctx.Context(), userId, orderId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
