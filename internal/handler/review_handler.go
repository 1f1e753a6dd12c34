package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stayspots/internal/auth"
	"stayspots/internal/service"
)

// ReviewHandler handles review and review image endpoints.
type ReviewHandler struct {
	svc service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// ReviewRequest represents a review create/update request.
type ReviewRequest struct {
	Review string `json:"review" validate:"required"`
	Stars  int    `json:"stars" validate:"required,min=1,max=5"`
}

// ReviewImageRequest represents an add-image request.
type ReviewImageRequest struct {
	URL string `json:"url" validate:"required"`
}

// ListBySpot godoc
// @Summary List reviews for a spot
// @Tags reviews
// @Produce json
// @Param spotId path int true "Spot ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /spots/{spotId}/reviews [get]
func (h *ReviewHandler) ListBySpot(c echo.Context) error {
	spotID, err := parseID(c, "spotId", "spot ID")
	if err != nil {
		return respondError(c, err)
	}

	reviews, err := h.svc.ListBySpot(c.Request().Context(), spotID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"Reviews": reviews})
}

// ListCurrent godoc
// @Summary List reviews authored by the current user
// @Tags reviews
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /reviews/current [get]
func (h *ReviewHandler) ListCurrent(c echo.Context) error {
	reviews, err := h.svc.ListByUser(c.Request().Context(), auth.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"Reviews": reviews})
}

// Create godoc
// @Summary Review a spot
// @Tags reviews
// @Accept json
// @Produce json
// @Param spotId path int true "Spot ID"
// @Param request body ReviewRequest true "Review payload"
// @Success 201 {object} model.Review
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /spots/{spotId}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	spotID, err := parseID(c, "spotId", "spot ID")
	if err != nil {
		return respondError(c, err)
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	review, err := h.svc.Create(c.Request().Context(), spotID, auth.CurrentUserID(c), req.Review, req.Stars)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, review)
}

// Update godoc
// @Summary Edit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewId path int true "Review ID"
// @Param request body ReviewRequest true "Review payload"
// @Success 200 {object} model.Review
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{reviewId} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	reviewID, err := parseID(c, "reviewId", "review ID")
	if err != nil {
		return respondError(c, err)
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	review, err := h.svc.Update(c.Request().Context(), reviewID, auth.CurrentUserID(c), req.Review, req.Stars)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

// Delete godoc
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param reviewId path int true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{reviewId} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	reviewID, err := parseID(c, "reviewId", "review ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), reviewID, auth.CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully deleted"})
}

// AddImage godoc
// @Summary Add an image to a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewId path int true "Review ID"
// @Param request body ReviewImageRequest true "Image payload"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{reviewId}/images [post]
func (h *ReviewHandler) AddImage(c echo.Context) error {
	reviewID, err := parseID(c, "reviewId", "review ID")
	if err != nil {
		return respondError(c, err)
	}

	var req ReviewImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	image, err := h.svc.AddImage(c.Request().Context(), reviewID, auth.CurrentUserID(c), req.URL)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": image.ID, "url": image.URL})
}

// DeleteImage godoc
// @Summary Delete a review image
// @Tags reviews
// @Produce json
// @Param imageId path int true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /review-images/{imageId} [delete]
func (h *ReviewHandler) DeleteImage(c echo.Context) error {
	imageID, err := parseID(c, "imageId", "image ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.svc.DeleteImage(c.Request().Context(), imageID, auth.CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully deleted"})
}
