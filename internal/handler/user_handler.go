package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stayspots/internal/auth"
	"stayspots/internal/service"
)

// UserHandler handles signup, login and session endpoints.
type UserHandler struct {
	svc          service.UserService
	jwt          *auth.JWTService
	cookieSecure bool
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService, jwt *auth.JWTService, cookieSecure bool) *UserHandler {
	return &UserHandler{svc: svc, jwt: jwt, cookieSecure: cookieSecure}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=4,not_email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request; credential is username or email.
type LoginRequest struct {
	Credential string `json:"credential" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Signup godoc
// @Summary Sign up a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.svc.Signup(c.Request().Context(), req.Email, req.Username, req.FirstName, req.LastName, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.setSession(c, user.ID, user.Username, user.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"user": user.Session()})
}

// Login godoc
// @Summary Log in
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/session [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.svc.Login(c.Request().Context(), req.Credential, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.setSession(c, user.ID, user.Username, user.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user.Session()})
}

// Session godoc
// @Summary Probe the current session
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/session [get]
func (h *UserHandler) Session(c echo.Context) error {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, echo.Map{"user": nil})
	}

	claims, err := h.jwt.ValidateToken(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"user": nil})
	}

	user, err := h.svc.Get(c.Request().Context(), claims.UserID)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"user": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user.Session()})
}

// Logout godoc
// @Summary Log out
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Router /users/session [delete]
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(auth.ExpiredSessionCookie(h.cookieSecure))
	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}

func (h *UserHandler) setSession(c echo.Context, userID uint, username, email string) error {
	token, err := h.jwt.GenerateSessionToken(userID, username, email)
	if err != nil {
		return err
	}
	c.SetCookie(auth.NewSessionCookie(token, h.cookieSecure))
	return nil
}
