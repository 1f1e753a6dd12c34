package errors

import (
	"errors"
	"net/http"
)

// Sentinel domain errors. Messages double as the wire-level message field.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User couldn't be found")
	// ErrSpotNotFound is returned when a spot is not found.
	ErrSpotNotFound = errors.New("Spot couldn't be found")
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("Review couldn't be found")
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = errors.New("Booking couldn't be found")
	// ErrSpotImageNotFound is returned when a spot image is not found.
	ErrSpotImageNotFound = errors.New("Spot Image couldn't be found")
	// ErrReviewImageNotFound is returned when a review image is not found.
	ErrReviewImageNotFound = errors.New("Review Image couldn't be found")
	// ErrForbidden is returned when the acting user is not entitled to the resource.
	ErrForbidden = errors.New("Forbidden")
	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrAuthRequired is returned when no valid session accompanies the request.
	ErrAuthRequired = errors.New("Authentication required")
	// ErrEmailExists is returned on signup with an already registered email.
	ErrEmailExists = errors.New("User already exists")
	// ErrUsernameExists is returned on signup with an already taken username.
	ErrUsernameExists = errors.New("User already exists")
	// ErrDuplicateReview is returned when a user reviews the same spot twice.
	ErrDuplicateReview = errors.New("User already has a review for this spot")
	// ErrBookingConflict is returned when a date range overlaps an existing booking.
	ErrBookingConflict = errors.New("Sorry, this spot is already booked for the specified dates")
	// ErrBookingStarted is returned when deleting a booking whose interval has begun.
	ErrBookingStarted = errors.New("Bookings that have been started can't be deleted")
	// ErrBookingPast is returned when editing a booking to an end date in the past.
	ErrBookingPast = errors.New("Past bookings can't be modified")
	// ErrReviewImageLimit is returned when a review already carries 10 images.
	ErrReviewImageLimit = errors.New("Maximum number of images for this resource was reached")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// HTTPError represents an HTTP error with status code and optional field errors.
type HTTPError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string, fields map[string]string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Fields:     fields,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Errors:  e.Fields,
	}
}

// ValidationError aggregates field-level rule violations into one error.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "Bad Request"
}

// NewValidationError builds a ValidationError over a field-to-message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become an
// opaque 500 so internals never leak to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return NewHTTPError(http.StatusBadRequest, "Bad Request", valErr.Fields)
	}

	switch err {
	case ErrUserNotFound, ErrSpotNotFound, ErrReviewNotFound,
		ErrBookingNotFound, ErrSpotImageNotFound, ErrReviewImageNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), nil)
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), nil)
	case ErrInvalidCredentials, ErrAuthRequired:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), nil)
	case ErrEmailExists:
		return NewHTTPError(http.StatusConflict, err.Error(), map[string]string{
			"email": "User with that email already exists",
		})
	case ErrUsernameExists:
		return NewHTTPError(http.StatusConflict, err.Error(), map[string]string{
			"username": "User with that username already exists",
		})
	case ErrDuplicateReview:
		return NewHTTPError(http.StatusConflict, err.Error(), nil)
	case ErrBookingConflict:
		return NewHTTPError(http.StatusConflict, err.Error(), map[string]string{
			"startDate": "Start date conflicts with an existing booking",
			"endDate":   "End date conflicts with an existing booking",
		})
	case ErrBookingStarted:
		return NewHTTPError(http.StatusForbidden, err.Error(), map[string]string{
			"startDate": "Booking has already started and cannot be deleted",
		})
	case ErrBookingPast:
		return NewHTTPError(http.StatusForbidden, err.Error(), map[string]string{
			"endDate": "End date cannot be in the past",
		})
	case ErrReviewImageLimit:
		return NewHTTPError(http.StatusForbidden, err.Error(), map[string]string{
			"review": "Cannot add any more images because there is a maximum of 10 images per resource",
		})
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error", nil)
	}
}
