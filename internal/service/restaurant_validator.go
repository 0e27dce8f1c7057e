package service

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"foodadmin/internal/errors"
)

var imageURLPattern = regexp.MustCompile(`^https?://.+`)

// RestaurantInput is the editable part of a restaurant as submitted by an admin.
type RestaurantInput struct {
	Name     string   `json:"name" validate:"required,min=2,max=100"`
	Rating   *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	ImageURL string   `json:"image_url" validate:"required,max=2048,httpurl"`
}

// RestaurantValidator checks restaurant input before anything is written.
type RestaurantValidator struct {
	validate *validator.Validate
}

// NewRestaurantValidator creates a new restaurant validator.
func NewRestaurantValidator() *RestaurantValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return imageURLPattern.MatchString(fl.Field().String())
	})
	return &RestaurantValidator{validate: v}
}

// Normalize trims the input and validates it. The returned error is a
// *errors.ValidationError naming each offending field.
func (v *RestaurantValidator) Normalize(input RestaurantInput) (RestaurantInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.ImageURL = strings.TrimSpace(input.ImageURL)

	err := v.validate.Struct(input)
	if err == nil {
		return input, nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return input, err
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return input, &errors.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte", "lte":
		return "must be between 0 and 5"
	case "httpurl":
		return "must start with http:// or https://"
	default:
		return "is invalid"
	}
}
