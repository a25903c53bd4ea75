package middleware

import (
	"errors"
	"strings"

	"coffeeshop/config"
	"coffeeshop/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const authUserKey = "authUser"

// JWTMiddleware validates the JWT token provided in the Authorization header
// and attaches the authenticated identity to the request.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing or malformed JWT"})
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing or malformed JWT"})
	}

	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired JWT"})
	}

	c.Locals(authUserKey, &models.AuthUser{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	})

	return c.Next()
}

// CurrentUser returns the identity attached by JWTMiddleware.
func CurrentUser(c *fiber.Ctx) (*models.AuthUser, error) {
	user, ok := c.Locals(authUserKey).(*models.AuthUser)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user on request")
	}
	return user, nil
}

// AdminRequired checks that the authenticated user has the admin role.
func AdminRequired(c *fiber.Ctx) error {
	user, err := CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	if user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Admin access required"})
	}
	return c.Next()
}
