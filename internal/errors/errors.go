package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrInvalidRestaurant is returned when restaurant input fails validation.
	ErrInvalidRestaurant = errors.New("invalid restaurant")
	// ErrInvalidRating is returned when a rating is outside [0, 5].
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	// ErrAdminNotFound is returned when an admin account is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrAdminInactive is returned when an admin account is disabled.
	ErrAdminInactive = errors.New("admin is not active")
	// ErrDashboardUnavailable is returned when any dashboard read fails.
	ErrDashboardUnavailable = errors.New("failed to fetch dashboard data")
)

// ValidationError lists the input fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap reports ErrInvalidRating when the rating is the only offending field.
func (e *ValidationError) Unwrap() error {
	if _, ok := e.Fields["rating"]; ok && len(e.Fields) == 1 {
		return ErrInvalidRating
	}
	return ErrInvalidRestaurant
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Store failures collapse
// into a generic internal error so backend details never reach clients.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		httpErr := NewHTTPError(http.StatusBadRequest, verr.Error(), "VALIDATION_ERROR")
		if errors.Is(err, ErrInvalidRating) {
			httpErr.Message = ErrInvalidRating.Error()
			httpErr.Code = "INVALID_RATING"
		}
		httpErr.Fields = verr.Fields
		return httpErr
	}

	switch {
	case errors.Is(err, ErrRestaurantNotFound):
		return NewHTTPError(http.StatusNotFound, ErrRestaurantNotFound.Error(), "RESTAURANT_NOT_FOUND")
	case errors.Is(err, ErrInvalidRating):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidRating.Error(), "INVALID_RATING")
	case errors.Is(err, ErrInvalidRestaurant):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrAdminNotFound):
		return NewHTTPError(http.StatusNotFound, ErrAdminNotFound.Error(), "ADMIN_NOT_FOUND")
	case errors.Is(err, ErrAdminInactive):
		return NewHTTPError(http.StatusForbidden, ErrAdminInactive.Error(), "ADMIN_INACTIVE")
	case errors.Is(err, ErrDashboardUnavailable):
		return NewHTTPError(http.StatusInternalServerError, ErrDashboardUnavailable.Error(), "DASHBOARD_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
