package controller

import (
	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/pkg/serverutils"
	"juntaplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMembershipController interface {
	RegisterRoutes(r fiber.Router)
	Join(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
}

type membershipController struct {
	membershipService service.IMembershipService
}

func NewMembershipController(membershipService service.IMembershipService) IMembershipController {
	return &membershipController{membershipService: membershipService}
}

func (c *membershipController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/memberships")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/join", c.Join)
	h.Get("/", c.ListMine)
}

func (c *membershipController) Join(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.JoinGroupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.membershipService.Join(ctx.Context(), userId, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Pagamento criado, aguardando confirmação", res))
}

func (c *membershipController) ListMine(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.membershipService.MyMemberships(ctx.Context(), userId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
