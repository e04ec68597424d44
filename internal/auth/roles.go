package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/bookshop-service/pkg/util/errorutil"
)

// MsgNotOwner is returned when a caller targets another user's resource.
const MsgNotOwner = "Cannot delete another user's review"

// RequireOwner ensures the route parameter param names the authenticated user.
func RequireOwner(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized(MsgUnauthorized)
		}
		target, err := PathParam(c, param)
		if err != nil {
			return err
		}
		if target != principal.Username {
			return apperrors.NewForbidden(MsgNotOwner)
		}
		return c.Next()
	}
}
