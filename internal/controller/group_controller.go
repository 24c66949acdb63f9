package controller

import (
	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/pkg/serverutils"
	"juntaplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGroupController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ListPublic(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	ListServices(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
}

type groupController struct {
	groupService service.IGroupService
}

func NewGroupController(groupService service.IGroupService) IGroupController {
	return &groupController{groupService: groupService}
}

func (c *groupController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/groups")
	h.Get("/services", c.ListServices)
	h.Get("/", c.ListPublic)
	h.Get("/mine", serverutils.JwtMiddleware, c.ListMine)
	h.Post("/", serverutils.JwtMiddleware, c.Create)
	h.Get("/:id", c.Show)
	h.Patch("/:id/approval", serverutils.JwtMiddleware, serverutils.AdminMiddleware, c.Approve)
}

func (c *groupController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateGroupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.groupService.CreateGroup(ctx.Context(), userId, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Grupo criado, aguardando aprovação", res))
}

func (c *groupController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid group id")
	}

	res, err := c.groupService.GetGroup(ctx.Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *groupController) ListPublic(ctx *fiber.Ctx) error {
	req := dto.ListGroupsRequest{
		ServiceSlug: ctx.Query("service"),
		Page:        ctx.QueryInt("page", 1),
		PageSize:    ctx.QueryInt("page_size", 20),
	}

	res, err := c.groupService.ListPublicGroups(ctx.Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *groupController) ListMine(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.groupService.ListMyGroups(ctx.Context(), userId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *groupController) ListServices(ctx *fiber.Ctx) error {
	res, err := c.groupService.ListServices(ctx.Context())
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *groupController) Approve(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid group id")
	}

	var req dto.ApproveGroupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.groupService.ApproveGroup(ctx.Context(), id, req.Approved); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Aprovação atualizada", nil))
}
