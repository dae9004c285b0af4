package middleware

import (
	"strings"

	"exam-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionIDKey        = "sessionID" // key for the session ID in fiber.Ctx locals
)

// Session resolves the caller's anonymous session from a bearer token.
// Quizzes can be taken without a session, so a missing header is not an
// error: the request proceeds ownerless. A token that is present but invalid
// is rejected so that a client never silently loses its history.
func Session(sessions service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return c.Next()
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_AUTH_SCHEME",
				Message: "Authorization scheme is not Bearer",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		sessionID, err := sessions.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Session token is invalid or expired",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}

// SessionID returns the resolved session ID for the request, or "" when the
// caller is anonymous.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(SessionIDKey).(string); ok {
		return id
	}
	return ""
}
