package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "stayspots/internal/errors"
)

type signupPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=4,not_email"`
	Password string `json:"password" validate:"required,min=6"`
}

type spotPayload struct {
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

func TestCustomValidator_AggregatesAllViolations(t *testing.T) {
	cv := NewCustomValidator()

	err := cv.Validate(&spotPayload{
		City:        "San Francisco",
		State:       "California",
		Country:     "United States of America",
		Lat:         137.7,
		Lng:         -122.47,
		Description: "A place",
		Price:       100,
	})

	var valErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Street address is required", valErr.Fields["address"])
	assert.Equal(t, "Latitude must be between -90 and 90", valErr.Fields["lat"])
	assert.Len(t, valErr.Fields, 2)
}

func TestCustomValidator_ValidPayloadPasses(t *testing.T) {
	cv := NewCustomValidator()

	err := cv.Validate(&spotPayload{
		Address:     "123 Disney Lane",
		City:        "San Francisco",
		State:       "California",
		Country:     "United States of America",
		Lat:         37.76,
		Lng:         -122.47,
		Name:        "App Academy",
		Description: "A place",
		Price:       123,
	})

	assert.NoError(t, err)
}

func TestCustomValidator_SignupMessages(t *testing.T) {
	cv := NewCustomValidator()

	tests := []struct {
		name    string
		payload signupPayload
		field   string
		message string
	}{
		{
			name:    "invalid email",
			payload: signupPayload{Email: "not-an-email", Username: "validname", Password: "password123"},
			field:   "email",
			message: "Please provide a valid email.",
		},
		{
			name:    "short username",
			payload: signupPayload{Email: "demo@user.io", Username: "abc", Password: "password123"},
			field:   "username",
			message: "Please provide a username with at least 4 characters.",
		},
		{
			name:    "username that is an email",
			payload: signupPayload{Email: "demo@user.io", Username: "demo@user.io", Password: "password123"},
			field:   "username",
			message: "Username cannot be an email.",
		},
		{
			name:    "short password",
			payload: signupPayload{Email: "demo@user.io", Username: "validname", Password: "short"},
			field:   "password",
			message: "Password must be 6 characters or more.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.payload)

			var valErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.message, valErr.Fields[tt.field])
		})
	}
}
