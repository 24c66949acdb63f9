package controller

import (
	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/pkg/serverutils"
	"juntaplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWalletController interface {
	RegisterRoutes(r fiber.Router)
	Balance(ctx *fiber.Ctx) error
	Statement(ctx *fiber.Ctx) error
	TopUp(ctx *fiber.Ctx) error
}

type walletController struct {
	walletService service.IWalletService
}

func NewWalletController(walletService service.IWalletService) IWalletController {
	return &walletController{walletService: walletService}
}

func (c *walletController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wallet")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.Balance)
	h.Get("/statement", c.Statement)
	h.Post("/top-up", c.TopUp)
}

func (c *walletController) Balance(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.walletService.GetBalance(ctx.Context(), userId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *walletController) Statement(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.walletService.GetStatement(ctx.Context(), userId, limit, offset)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *walletController) TopUp(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.TopUpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.walletService.TopUp(ctx.Context(), userId, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Recarga criada, aguardando pagamento", res))
}
