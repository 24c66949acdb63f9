package controller

import (
	"errors"

	"juntaplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// httpError maps service sentinel errors onto HTTP status codes. Anything
// unmapped bubbles up as a 500 through the error middleware.
func httpError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrMembershipNotFound),
		errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrServiceNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrComplaintNotFound),
		errors.Is(err, service.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotMembershipOwner),
		errors.Is(err, service.ErrNotGroupAdmin):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrAlreadyCancelled),
		errors.Is(err, service.ErrNoPendingRequest),
		errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrGroupFull),
		errors.Is(err, service.ErrGroupNotOpen),
		errors.Is(err, service.ErrUserRestricted),
		errors.Is(err, service.ErrComplaintExists),
		errors.Is(err, service.ErrEmailTaken):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidReason),
		errors.Is(err, service.ErrNotAMember):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrEmailNotVerified):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	return err
}

// currentUserId reads the authenticated user from the JWT middleware locals.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing authentication")
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user id in token")
	}
	return userId, nil
}
