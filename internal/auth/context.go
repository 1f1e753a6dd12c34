package auth

import (
	"github.com/labstack/echo/v4"
)

// CurrentClaims returns the session claims parsed by the auth middleware,
// or nil when the request carries no valid session.
func CurrentClaims(c echo.Context) *Claims {
	claims, ok := c.Get("user").(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// CurrentUserID returns the authenticated user's id, or 0 when absent.
func CurrentUserID(c echo.Context) uint {
	claims := CurrentClaims(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}
