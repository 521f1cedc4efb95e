package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ekinokr/eventmate-backend/internal/models"
	"github.com/ekinokr/eventmate-backend/pkg/jwt"
)

// TokenHeader is the custom header the clients send the session token in.
const TokenHeader = "x-auth-token"

// AuthRequired rejects requests without a valid session token and stores
// the token's identity in the request locals for downstream handlers.
func AuthRequired(tokens *jwt.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(TokenHeader)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication token is required"))
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		c.Locals("userID", claims.User.ID)
		c.Locals("userRole", claims.User.Role)

		return c.Next()
	}
}
