package auth

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/bookshop-service/pkg/util/errorutil"
)

// PathParam returns the URL-decoded route parameter name.
func PathParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperrors.NewValidationError("invalid path parameter", map[string]any{"param": name})
	}
	return decoded, nil
}
