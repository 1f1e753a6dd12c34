package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "stayspots/internal/errors"
)

// respondError maps a domain error onto the HTTP taxonomy and writes the
// standard {message, errors} body.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// parseID reads a positive integer path parameter; malformed ids are a 400.
func parseID(c echo.Context, param, label string) (uint, error) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id < 1 {
		return 0, apperrors.NewHTTPError(400, "Invalid "+label, nil)
	}
	return uint(id), nil
}
