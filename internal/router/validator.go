package router

import (
	"errors"
	"fmt"
	"net/mail"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "stayspots/internal/errors"
)

// fieldMessages maps "<json field>.<rule>" to the message reported for that
// violation.
var fieldMessages = map[string]string{
	"address.required":     "Street address is required",
	"city.required":        "City is required",
	"state.required":       "State is required",
	"country.required":     "Country is required",
	"lat.required":         "Latitude is required",
	"lat.gte":              "Latitude must be between -90 and 90",
	"lat.lte":              "Latitude must be between -90 and 90",
	"lng.required":         "Longitude is required",
	"lng.gte":              "Longitude must be between -180 and 180",
	"lng.lte":              "Longitude must be between -180 and 180",
	"name.max":             "Name must be less than 50 characters",
	"description.required": "Description is required",
	"price.required":       "Price per day is required",
	"price.gte":            "Price per day must be a positive number",
	"review.required":      "Review text is required",
	"stars.required":       "Stars are required",
	"stars.min":            "Stars must be an integer from 1 to 5",
	"stars.max":            "Stars must be an integer from 1 to 5",
	"startDate.required":   "Start date is required",
	"startDate.datetime":   "startDate must be a valid date",
	"endDate.required":     "End date is required",
	"endDate.datetime":     "endDate must be a valid date",
	"email.required":       "Please provide a valid email.",
	"email.email":          "Please provide a valid email.",
	"username.required":    "Please provide a username with at least 4 characters.",
	"username.min":         "Please provide a username with at least 4 characters.",
	"username.not_email":   "Username cannot be an email.",
	"password.required":    "Password must be 6 characters or more.",
	"password.min":         "Password must be 6 characters or more.",
	"credential.required":  "Please provide a valid email or username.",
	"url.required":         "URL is required",
}

// CustomValidator wraps validator for Echo and aggregates every field
// violation into a single ValidationError, so callers see all problems in
// one response.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator builds the validator with json field naming and the
// custom rules the request types use.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("not_email", notEmail)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	fields := make(map[string]string, len(violations))
	for _, violation := range violations {
		fields[violation.Field()] = messageFor(violation)
	}
	return apperrors.NewValidationError(fields)
}

func messageFor(violation validator.FieldError) string {
	if msg, ok := fieldMessages[violation.Field()+"."+violation.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", violation.Field())
}

// notEmail rejects values that parse as an email address.
func notEmail(fl validator.FieldLevel) bool {
	_, err := mail.ParseAddress(fl.Field().String())
	return err != nil
}
