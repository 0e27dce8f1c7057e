package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodadmin/internal/errors"
	"foodadmin/internal/service"
)

// SeedHandler loads demo fixtures over HTTP.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string              `json:"message"`
	Created *service.SeedResult `json:"created"`
}

// Seed godoc
// @Summary Load a fixture
// @Description Creates the users, restaurants, menus and items of the posted fixture.
// @Tags seed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.Fixture true "Fixture"
// @Success 201 {object} SeedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	var fixture service.Fixture
	if err := c.Bind(&fixture); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid fixture",
			Code:  "INVALID_REQUEST",
		})
	}

	result, err := h.seedService.Seed(c.Request().Context(), fixture, adminEmail(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, SeedResponse{
		Message: "fixture loaded",
		Created: result,
	})
}
