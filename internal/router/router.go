package router

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"stayspots/internal/auth"
	"stayspots/internal/config"
	apperrors "stayspots/internal/errors"
	"stayspots/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userHandler *handler.UserHandler,
	spotHandler *handler.SpotHandler,
	reviewHandler *handler.ReviewHandler,
	bookingHandler *handler.BookingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewCustomValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// State-changing requests must present the anti-forgery token that pairs
	// with the XSRF-TOKEN cookie.
	api := e.Group("/api", middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token",
		CookieName:     "XSRF-TOKEN",
		CookiePath:     "/",
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
	}))

	api.GET("/csrf/restore", func(c echo.Context) error {
		token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
		return c.JSON(http.StatusOK, echo.Map{"XSRF-Token": token})
	})

	// Public routes
	api.POST("/users", userHandler.Signup)
	api.POST("/users/session", userHandler.Login)
	api.GET("/users/session", userHandler.Session)
	api.DELETE("/users/session", userHandler.Logout)
	api.GET("/spots", spotHandler.List)
	api.GET("/spots/:spotId", spotHandler.Get)
	api.GET("/spots/:spotId/reviews", reviewHandler.ListBySpot)

	// Secured routes require the session cookie.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.CookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Message: apperrors.ErrAuthRequired.Error(),
			})
		},
	}))

	// Spot routes
	secured.GET("/spots/current", spotHandler.ListCurrent)
	secured.POST("/spots", spotHandler.Create)
	secured.PUT("/spots/:spotId", spotHandler.Update)
	secured.DELETE("/spots/:spotId", spotHandler.Delete)
	secured.POST("/spots/:spotId/images", spotHandler.AddImage)
	secured.DELETE("/spot-images/:imageId", spotHandler.DeleteImage)

	// Review routes
	secured.GET("/reviews/current", reviewHandler.ListCurrent)
	secured.POST("/spots/:spotId/reviews", reviewHandler.Create)
	secured.PUT("/reviews/:reviewId", reviewHandler.Update)
	secured.DELETE("/reviews/:reviewId", reviewHandler.Delete)
	secured.POST("/reviews/:reviewId/images", reviewHandler.AddImage)
	secured.DELETE("/review-images/:imageId", reviewHandler.DeleteImage)

	// Booking routes
	secured.GET("/bookings/current", bookingHandler.ListCurrent)
	secured.GET("/spots/:spotId/bookings", bookingHandler.ListBySpot)
	secured.POST("/spots/:spotId/bookings", bookingHandler.Create)
	secured.PUT("/bookings/:bookingId", bookingHandler.Update)
	secured.DELETE("/bookings/:bookingId", bookingHandler.Delete)
}
