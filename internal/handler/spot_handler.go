package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"stayspots/internal/auth"
	apperrors "stayspots/internal/errors"
	"stayspots/internal/model"
	"stayspots/internal/repository"
	"stayspots/internal/service"
)

// SpotHandler handles spot and spot image endpoints.
type SpotHandler struct {
	svc service.SpotService
}

// NewSpotHandler creates a new spot handler.
func NewSpotHandler(svc service.SpotService) *SpotHandler {
	return &SpotHandler{svc: svc}
}

// SpotRequest represents a spot create/update request.
type SpotRequest struct {
	Address     string  `json:"address" validate:"required"`
	City        string  `json:"city" validate:"required"`
	State       string  `json:"state" validate:"required"`
	Country     string  `json:"country" validate:"required"`
	Lat         float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng         float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Name        string  `json:"name" validate:"omitempty,max=50"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
}

// SpotImageRequest represents an add-image request.
type SpotImageRequest struct {
	URL     string `json:"url" validate:"required"`
	Preview bool   `json:"preview"`
}

func (r *SpotRequest) toModel() *model.Spot {
	return &model.Spot{
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		Lat:         r.Lat,
		Lng:         r.Lng,
		Name:        r.Name,
		Description: r.Description,
		Price:       decimal.NewFromFloat(r.Price),
	}
}

// List godoc
// @Summary List spots with optional filters
// @Tags spots
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param minLat query number false "Minimum latitude"
// @Param maxLat query number false "Maximum latitude"
// @Param minLng query number false "Minimum longitude"
// @Param maxLng query number false "Maximum longitude"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /spots [get]
func (h *SpotHandler) List(c echo.Context) error {
	filter, fieldErrs := parseSpotFilter(c)
	if len(fieldErrs) > 0 {
		return respondError(c, apperrors.NewHTTPError(http.StatusBadRequest, "Bad Request", fieldErrs))
	}

	spots, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"Spots": spots, "page": filter.Page, "size": filter.Size})
}

// ListCurrent godoc
// @Summary List spots owned by the current user
// @Tags spots
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /spots/current [get]
func (h *SpotHandler) ListCurrent(c echo.Context) error {
	spots, err := h.svc.ListByOwner(c.Request().Context(), auth.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"Spots": spots})
}

// Get godoc
// @Summary Get spot details
// @Tags spots
// @Produce json
// @Param spotId path int true "Spot ID"
// @Success 200 {object} model.Spot
// @Failure 404 {object} errors.ErrorResponse
// @Router /spots/{spotId} [get]
func (h *SpotHandler) Get(c echo.Context) error {
	spotID, err := parseID(c, "spotId", "spot ID")
	if err != nil {
		return respondError(c, err)
	}

	spot, err := h.svc.Get(c.Request().Context(), spotID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, spot)
}

// Create godoc
// @Summary Create a spot
// @Tags spots
// @Accept json
// @Produce json
// @Param request body SpotRequest true "Spot payload"
// @Success 201 {object} model.Spot
// @Failure 400 {object} errors.ErrorResponse
// @Router /spots [post]
func (h *SpotHandler) Create(c echo.Context) error {
	var req SpotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	spot := req.toModel()
	spot.OwnerID = auth.CurrentUserID(c)
	if err := h.svc.Create(c.Request().Context(), spot); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, spot)
}

// Update godoc
// @Summary Edit a spot
// @Tags spots
// @Accept json
// @Produce json
// @Param spotId path int true "Spot ID"
// @Param request body SpotRequest true "Spot payload"
// @Success 200 {object} model.Spot
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /spots/{spotId} [put]
func (h *SpotHandler) Update(c echo.Context) error {
	spotID, err := parseID(c, "spotId", "spot ID")
	if err != nil {
		return respondError(c, err)
	}

	var req SpotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	spot, err := h.svc.Update(c.Request().Context(), spotID, auth.CurrentUserID(c), req.toModel())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, spot)
}

// Delete godoc
// @Summary Delete a spot
// @Tags spots
// @Produce json
// @Param spotId path int true "Spot ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /spots/{spotId} [delete]
func (h *SpotHandler) Delete(c echo.Context) error {
	spotID, err := parseID(c, "spotId", "spot ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), spotID, auth.CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully deleted"})
}

// AddImage godoc
// @Summary Add an image to a spot
// @Tags spots
// @Accept json
// @Produce json
// @Param spotId path int true "Spot ID"
// @Param request body SpotImageRequest true "Image payload"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /spots/{spotId}/images [post]
func (h *SpotHandler) AddImage(c echo.Context) error {
	spotID, err := parseID(c, "spotId", "spot ID")
	if err != nil {
		return respondError(c, err)
	}

	var req SpotImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	image, err := h.svc.AddImage(c.Request().Context(), spotID, auth.CurrentUserID(c), req.URL, req.Preview)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": image.ID, "url": image.URL, "preview": image.Preview})
}

// DeleteImage godoc
// @Summary Delete a spot image
// @Tags spots
// @Produce json
// @Param imageId path int true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /spot-images/{imageId} [delete]
func (h *SpotHandler) DeleteImage(c echo.Context) error {
	imageID, err := parseID(c, "imageId", "image ID")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.svc.DeleteImage(c.Request().Context(), imageID, auth.CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully deleted"})
}

// parseSpotFilter reads the listing query parameters, collecting every
// invalid one so the caller sees all problems at once.
func parseSpotFilter(c echo.Context) (repository.SpotFilter, map[string]string) {
	fieldErrs := map[string]string{}
	filter := repository.SpotFilter{Page: 1, Size: 20}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fieldErrs["page"] = "Page must be greater than or equal to 1"
		} else {
			filter.Page = page
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			fieldErrs["size"] = "Size must be greater than or equal to 1"
		} else {
			filter.Size = size
		}
	}

	filter.MinLat = parseFloatParam(c, "minLat", fieldErrs, "Minimum latitude is invalid", nil)
	filter.MaxLat = parseFloatParam(c, "maxLat", fieldErrs, "Maximum latitude is invalid", nil)
	filter.MinLng = parseFloatParam(c, "minLng", fieldErrs, "Minimum longitude is invalid", nil)
	filter.MaxLng = parseFloatParam(c, "maxLng", fieldErrs, "Maximum longitude is invalid", nil)

	nonNegative := func(v float64) bool { return v >= 0 }
	filter.MinPrice = parseFloatParam(c, "minPrice", fieldErrs, "Minimum price must be greater than or equal to 0", nonNegative)
	filter.MaxPrice = parseFloatParam(c, "maxPrice", fieldErrs, "Maximum price must be greater than or equal to 0", nonNegative)

	return filter, fieldErrs
}

func parseFloatParam(c echo.Context, name string, fieldErrs map[string]string, message string, ok func(float64) bool) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || (ok != nil && !ok(v)) {
		fieldErrs[name] = message
		return nil
	}
	return &v
}
