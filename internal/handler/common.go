package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// errNoUser is returned by getUserID when no authenticated identity is
// present in the context.
var errNoUser = errors.New("no authenticated user")

// getUserID extracts the authenticated subject stored by the JWTAuth
// middleware. Handlers that require authentication translate the error
// into a 401 response.
func getUserID(c echo.Context) (string, error) {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s, nil
	}
	return "", errNoUser
}
