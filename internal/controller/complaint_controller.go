package controller

import (
	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/pkg/serverutils"
	"juntaplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IComplaintController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
}

type complaintController struct {
	complaintService service.IComplaintService
}

func NewComplaintController(complaintService service.IComplaintService) IComplaintController {
	return &complaintController{complaintService: complaintService}
}

func (c *complaintController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/complaints")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Open)
	h.Get("/", c.ListMine)
	h.Patch("/:id/close", serverutils.AdminMiddleware, c.Close)
}

func (c *complaintController) Open(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.OpenComplaintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.complaintService.Open(ctx.Context(), userId, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Reclamação registrada", res))
}

func (c *complaintController) ListMine(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.complaintService.ListMine(ctx.Context(), userId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *complaintController) Close(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid complaint id")
	}

	var req dto.CloseComplaintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.complaintService.Close(ctx.Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Reclamação encerrada", res))
}
