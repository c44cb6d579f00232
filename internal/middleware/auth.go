package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// RequireAuth guards the dashboard data routes: a valid bearer token with a
// user id in the subject claim, or 401 before any handler runs.
func RequireAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not authenticated",
			})
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		userID, err := ParseUserID(tokenStr, jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not authenticated",
			})
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present but never
// rejects. The AI function endpoints work for anonymous callers and only
// use the identity for extra context.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if userID, err := ParseUserID(strings.TrimPrefix(header, "Bearer "), jwtSecret); err == nil {
				c.Locals(userIDKey, userID)
			}
		}
		return c.Next()
	}
}

// ParseUserID validates the token signature and extracts the subject claim
// as a user id.
func ParseUserID(tokenStr, jwtSecret string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("missing subject claim: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("subject is not a user id: %w", err)
	}

	return userID, nil
}

// UserID returns the authenticated user's id set by RequireAuth.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals(userIDKey).(uuid.UUID)
	return userID, ok
}
