package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/contactanuptop/movie-booking/internal/config"
	"github.com/contactanuptop/movie-booking/internal/utils"
)

// AuthHandler issues access tokens. There is no user database (the
// service keeps no persistent state at all), so authentication is
// deliberately small: one owner account configured through the
// environment for catalog changes, and self-service guest tokens for
// booking.
type AuthHandler struct {
	Cfg config.Config
}

// NewAuthHandler constructs an AuthHandler with the given configuration.
func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

// Login handles POST /v1/auth/login. It verifies the configured owner
// credentials and returns an OWNER access token. Wrong credentials get
// a 401 with no detail about which part failed.
func (a *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Username != a.Cfg.OwnerUsername || !utils.VerifyPassword(a.Cfg.OwnerPasswordHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAccessToken(a.Cfg.JWTSecret, body.Username, "OWNER", a.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
	})
}

// Guest handles POST /v1/auth/guest. It issues a CUSTOMER token for the
// supplied display name so bookings can be attributed to someone
// without a registration flow.
func (a *AuthHandler) Guest(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	tok, err := utils.NewAccessToken(a.Cfg.JWTSecret, name, "CUSTOMER", a.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
	})
}
