package handlers

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/bookshop-service/pkg/util/errorutil"
)

// parseBody decodes the request body into out. An empty body leaves out zeroed.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}
