package http

import (
	"time"

	"workforce-api/internal/workforce/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues access tokens for the configured admin account.
type AuthHandler struct {
	cfg *config.Config
	now func() time.Time
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg, now: time.Now}
}

// RegisterRoutes mounts the token endpoint.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/auth/token", h.IssueToken)
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// IssueToken exchanges admin credentials for an HS256 access token.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	if h.cfg.AdminPasswordHash == "" || h.cfg.JWTSecretKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Authentication is not configured",
		})
	}

	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Username != h.cfg.AdminUser ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid username or password",
		})
	}

	now := h.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    h.cfg.JWTIssuer,
		Subject:   req.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.AccessTokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.cfg.JWTSecretKey))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.cfg.AccessTokenTTL.Seconds()),
	})
}
