package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"foodadmin/internal/errors"
	"foodadmin/internal/service"
)

// DashboardHandler serves the dashboard overview endpoints.
type DashboardHandler struct {
	dashboard   service.DashboardService
	aggregation service.AggregationService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard service.DashboardService, aggregation service.AggregationService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, aggregation: aggregation}
}

// GetDashboard godoc
// @Summary Dashboard snapshot
// @Description Counts, the 10 most recent log entries and all restaurants, read together.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Snapshot
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	snapshot, err := h.dashboard.Snapshot(c.Request().Context())
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "dashboard snapshot failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetStats godoc
// @Summary Aggregate counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Stats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stats [get]
func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "dashboard stats failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// GetLogs godoc
// @Summary Recent activity
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries (default 10, max 100)"
// @Success 200 {array} model.LogEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logs [get]
func (h *DashboardHandler) GetLogs(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "limit must be a non-negative integer",
				Code:  "INVALID_LIMIT",
			})
		}
		limit = n
	}

	entries, err := h.aggregation.RecentLogs(c.Request().Context(), limit)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "recent logs failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}
