package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"stayspots/internal/auth"
	"stayspots/internal/model"
	"stayspots/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	svc service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// BookingRequest represents a booking create/update request.
type BookingRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

func (r *BookingRequest) dates() (model.Date, model.Date) {
	// Formats were already validated; parse failures leave zero dates that
	// the service rejects.
	start, _ := model.ParseDate(r.StartDate)
	end, _ := model.ParseDate(r.EndDate)
	return start, end
}

// restrictedBooking is the payload shown to callers who do not own the spot.
type restrictedBooking struct {
	ID        uint       `json:"id"`
	SpotID    uint       `json:"spotId"`
	StartDate model.Date `json:"startDate"`
	EndDate   model.Date `json:"endDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ListCurrent godoc
// @Summary List bookings made by the current user
// @Tags bookings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /bookings/current [get]
func (h *BookingHandler) ListCurrent(c echo.Context) error {
	bookings, err := h.svc.ListByUser(c.Request().Context(), auth.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"Bookings": bookings})
}

// ListBySpot godoc
// @Summary List bookings for a spot
// @Tags bookings
// @Produce json
// @Param spotId path int true "Spot ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /spots/{spotId}/bookings [get]
func (h *BookingHandler) ListBySpot(c echo.Context) error {
	spotID, err := parseID(c, "spotId", "spot ID")
	if err != nil {
		return respondError(c, err)
	}

	bookings, isOwner, err := h.svc.ListBySpot(c.Request().Context(), spotID, auth.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	if isOwner {
		return c.JSON(http.StatusOK, echo.Map{"Bookings": bookings})
	}
	restricted := make([]restrictedBooking, 0, len(bookings))
	for _, b := range bookings {
		restricted = append(restricted, restrictedBooking{
			ID:        b.ID,
			SpotID:    b.SpotID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"Bookings": restricted})
}

// Create godoc
// @Summary Book a spot
// @Tags bookings
// @Accept json
// @Produce json
// @Param spotId path int true "Spot ID"
// @Param request body BookingRequest true "Booking dates"
// @Success 200 {object} model.Booking
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /spots/{spotId}/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	spotID, err := parseID(c, "spotId", "spot ID")
	if err != nil {
		return respondError(c, err)
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	start, end := req.dates()
	booking, err := h.svc.Create(c.Request().Context(), spotID, auth.CurrentUserID(c), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

// Update godoc
// @Summary Edit a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingId path int true "Booking ID"
// @Param request body BookingRequest true "Booking dates"
// @Success 200 {object} model.Booking
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /bookings/{bookingId} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	bookingID, err := parseID(c, "bookingId", "booking ID")
	if err != nil {
		return respondError(c, err)
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	start, end := req.dates()
	booking, err := h.svc.Update(c.Request().Context(), bookingID, auth.CurrentUserID(c), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

// Delete godoc
// @Summary Delete a booking
// @Tags bookings
// @Produce json
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{bookingId} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	bookingID, err := parseID(c, "bookingId", "booking ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), bookingID, auth.CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully deleted"})
}
