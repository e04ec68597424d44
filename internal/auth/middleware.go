package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/bookshop-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

const bearerScheme = "Bearer"

// Messages returned by the middleware. Verification failures share one message
// so callers cannot tell an expired token from a forged one.
const (
	MsgTokenRequired      = "Token required"
	MsgInvalidTokenFormat = "Invalid token format"
	MsgUnauthorized       = "Unauthorized"
)

// TokenParser verifies bearer tokens.
type TokenParser interface {
	ParseToken(token string) (*Claims, error)
}

// Principal represents the authenticated caller.
type Principal struct {
	Username string
}

// AuthMiddleware validates bearer tokens and attaches the principal.
type AuthMiddleware struct {
	tokens TokenParser
	logger *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens TokenParser, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewForbidden(MsgTokenRequired)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != bearerScheme || parts[1] == "" {
		return apperrors.NewUnauthorized(MsgInvalidTokenFormat)
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		m.logger.Debug("token rejected",
			zap.String("path", c.Path()),
			zap.Error(err))
		return apperrors.NewUnauthorized(MsgUnauthorized)
	}

	c.Locals(principalKey, &Principal{Username: claims.Subject})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
