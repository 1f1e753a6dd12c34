package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "stayspots/internal/errors"
)

func newQueryContext(rawQuery string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/spots?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseSpotFilter(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedPage  int
		expectedSize  int
		invalidFields []string
	}{
		{
			name:         "defaults when no parameters",
			query:        "",
			expectedPage: 1,
			expectedSize: 20,
		},
		{
			name:         "explicit paging and bounds",
			query:        "page=2&size=5&minLat=30&maxLat=40&minPrice=50",
			expectedPage: 2,
			expectedSize: 5,
		},
		{
			name:          "page below one",
			query:         "page=0",
			invalidFields: []string{"page"},
		},
		{
			name:          "non-numeric latitude",
			query:         "maxLat=north",
			invalidFields: []string{"maxLat"},
		},
		{
			name:          "negative price",
			query:         "minPrice=-10",
			invalidFields: []string{"minPrice"},
		},
		{
			name:          "every bad parameter is reported",
			query:         "page=abc&size=-1&minLng=west&maxPrice=-5",
			invalidFields: []string{"page", "size", "minLng", "maxPrice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, fieldErrs := parseSpotFilter(newQueryContext(tt.query))

			if len(tt.invalidFields) > 0 {
				assert.Len(t, fieldErrs, len(tt.invalidFields))
				for _, field := range tt.invalidFields {
					assert.Contains(t, fieldErrs, field)
				}
				return
			}
			assert.Empty(t, fieldErrs)
			assert.Equal(t, tt.expectedPage, filter.Page)
			assert.Equal(t, tt.expectedSize, filter.Size)
		})
	}
}

func TestParseSpotFilter_Bounds(t *testing.T) {
	filter, fieldErrs := parseSpotFilter(newQueryContext("minLat=30.5&maxPrice=200"))

	assert.Empty(t, fieldErrs)
	assert.NotNil(t, filter.MinLat)
	assert.Equal(t, 30.5, *filter.MinLat)
	assert.NotNil(t, filter.MaxPrice)
	assert.Equal(t, 200.0, *filter.MaxPrice)
	assert.Nil(t, filter.MaxLat)
	assert.Nil(t, filter.MinPrice)
}

func TestParseID(t *testing.T) {
	e := echo.New()

	newParamContext := func(value string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("spotId")
		c.SetParamValues(value)
		return c
	}

	id, err := parseID(newParamContext("7"), "spotId", "spot ID")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		_, err := parseID(newParamContext(bad), "spotId", "spot ID")
		var httpErr *apperrors.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
		assert.Equal(t, "Invalid spot ID", httpErr.Message)
	}
}
