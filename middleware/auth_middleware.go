package middleware

import (
	config "github.com/vibequiz/backend/configs"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// AuthUser is the verified identity triple extracted from a request's JWT.
// Token issuance happens outside this service; we only consume claims.
type AuthUser struct {
	ID    string
	Name  string
	Email string
}

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// CurrentUser reads the identity triple from the validated token. The core
// requires a user id and display name; requests missing either are rejected
// by RequireIdentity before any handler runs.
func CurrentUser(c *fiber.Ctx) AuthUser {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return AuthUser{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AuthUser{}
	}

	user := AuthUser{}
	if id, ok := claims["user_id"].(string); ok {
		user.ID = id
	} else if sub, ok := claims["sub"].(string); ok {
		user.ID = sub
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	return user
}

// RequireIdentity rejects authenticated requests whose token lacks the user
// id or display name the core depends on.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user.ID == "" || user.Name == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		return c.Next()
	}
}
