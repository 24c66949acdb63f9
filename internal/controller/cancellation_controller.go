package controller

import (
	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/pkg/serverutils"
	"juntaplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICancellationController interface {
	RegisterRoutes(r fiber.Router)
	Request(ctx *fiber.Ctx) error
	Confirm(ctx *fiber.Ctx) error
	ShowRecord(ctx *fiber.Ctx) error
}

type cancellationController struct {
	cancellationService service.ICancellationService
}

func NewCancellationController(cancellationService service.ICancellationService) ICancellationController {
	return &cancellationController{cancellationService: cancellationService}
}

func (c *cancellationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/memberships/:id/cancellation")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/request", c.Request)
	h.Post("/confirm", c.Confirm)
	h.Get("/", c.ShowRecord)
}

func (c *cancellationController) Request(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	membershipId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid membership id")
	}

	var req dto.RequestCancellationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cancellationService.RequestCancellation(ctx.Context(), userId, membershipId, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Prévia do cancelamento, confirme para efetivar", res))
}

func (c *cancellationController) Confirm(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	membershipId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid membership id")
	}

	res, err := c.cancellationService.ConfirmCancellation(ctx.Context(), userId, membershipId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Cancelamento efetivado", res))
}

func (c *cancellationController) ShowRecord(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	membershipId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid membership id")
	}

	res, err := c.cancellationService.GetRecord(ctx.Context(), userId, membershipId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
