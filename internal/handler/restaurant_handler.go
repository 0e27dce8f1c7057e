package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodadmin/internal/errors"
	"foodadmin/internal/model"
	"foodadmin/internal/service"
)

// RestaurantHandler handles restaurant endpoints.
type RestaurantHandler struct {
	restaurants service.RestaurantService
	dashboard   service.DashboardService
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(restaurants service.RestaurantService, dashboard service.DashboardService) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, dashboard: dashboard}
}

// CreateRestaurantResponse carries the new restaurant and the refreshed
// dashboard. Dashboard is omitted when the refresh failed.
type CreateRestaurantResponse struct {
	Restaurant *model.Restaurant `json:"restaurant"`
	Dashboard  *service.Snapshot `json:"dashboard,omitempty"`
}

// ListRestaurants godoc
// @Summary List restaurants
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Restaurant
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.restaurants.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, restaurants)
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Description Validates, stores the restaurant, records the action and returns a fresh dashboard snapshot.
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.RestaurantInput true "Restaurant data"
// @Success 201 {object} CreateRestaurantResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants [post]
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req service.RestaurantInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	ctx := c.Request().Context()
	restaurant, err := h.restaurants.Create(ctx, req, adminEmail(c))
	if err != nil {
		return httpError(err)
	}

	resp := CreateRestaurantResponse{Restaurant: restaurant}
	snapshot, err := h.dashboard.Snapshot(ctx)
	if err != nil {
		slog.WarnContext(ctx, "dashboard refresh after create failed", "restaurant_id", restaurant.ID, "error", err)
	} else {
		resp.Dashboard = snapshot
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetRestaurant godoc
// @Summary Restaurant detail
// @Description The restaurant with its menus, each with its items.
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 200 {object} service.RestaurantDetail
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	detail, err := h.restaurants.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// ListMenuItems godoc
// @Summary Menu items of a restaurant
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 200 {array} model.MenuItem
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{id}/menu-items [get]
func (h *RestaurantHandler) ListMenuItems(c echo.Context) error {
	items, err := h.restaurants.MenuItems(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateRestaurant godoc
// @Summary Edit a restaurant
// @Description Overwrites name, rating and image; menus are unchanged.
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param request body service.RestaurantInput true "Restaurant data"
// @Success 200 {object} model.Restaurant
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{id} [put]
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	var req service.RestaurantInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	restaurant, err := h.restaurants.Update(c.Request().Context(), c.Param("id"), req, adminEmail(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, restaurant)
}
