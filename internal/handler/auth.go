package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/entradas/seatmap/internal/utils"
)

// AuthHandler issues access tokens for the admin blocking workflow.
// There is a single operator credential, configured as a bcrypt hash;
// storefront visitors never authenticate.
type AuthHandler struct {
	AdminUser     string
	AdminPassHash string
	JWTSecret     string
	AccessTTLMin  int
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /v1/auth/login. On a valid credential it returns
// an HS256 access token with the ADMIN role claim.
func (h *AuthHandler) Login(c echo.Context) error {
	var body loginRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Username != h.AdminUser || !utils.VerifyPassword(h.AdminPassHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tok, err := utils.NewAccessToken(h.JWTSecret, body.Username, "ADMIN", h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp.Format(time.RFC3339),
	})
}
