package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workforce-api/internal/shared/contextkeys"
	apperrors "workforce-api/internal/shared/errors"
	"workforce-api/internal/workforce/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RequestID attaches a correlation ID to every request, echoing a
// client-supplied X-Request-ID or minting a new one.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)

		ctx := context.WithValue(c.UserContext(), contextkeys.RequestIDKey, id)
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// AuthMiddleware validates Bearer tokens on mutating routes. With auth
// disabled every request passes through untouched.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates the auth middleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Protect returns the handler enforcing a valid HS256 token.
func (m *AuthMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.cfg.AuthEnabled {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing bearer token",
			})
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(m.cfg.JWTSecretKey), nil
		}, jwt.WithIssuer(m.cfg.JWTIssuer), jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		if subject, err := token.Claims.GetSubject(); err == nil && subject != "" {
			ctx := context.WithValue(c.UserContext(), contextkeys.ActorKey, subject)
			c.SetUserContext(ctx)
		}
		return c.Next()
	}
}

// respondError maps domain errors onto HTTP responses. Unknown errors become
// a 500 carrying the underlying error text in "message".
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode >= fiber.StatusInternalServerError {
			return c.Status(appErr.HTTPCode).JSON(fiber.Map{
				"error":   "Internal server error",
				"message": appErr.Error(),
			})
		}
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{"error": appErr.Message})
	}

	switch {
	case apperrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}
