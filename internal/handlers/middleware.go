package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumecoach/backend/internal/services"
)

const identityLocalKey = "identity"

type AuthMiddleware struct {
	tokens services.TokenService
}

func NewAuthMiddleware(tokens services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handler verifies the bearer token and attaches the identity to the request.
func (m *AuthMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": services.ErrNoToken.Error(),
			})
		}

		identity, err := m.tokens.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": services.ErrInvalidToken.Error(),
			})
		}

		c.Locals(identityLocalKey, identity)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

// CurrentIdentity returns the identity attached by the auth middleware.
func CurrentIdentity(c *fiber.Ctx) services.Identity {
	identity, _ := c.Locals(identityLocalKey).(services.Identity)
	return identity
}
