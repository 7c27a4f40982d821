package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

type DashboardHandler struct {
	dashboard ports.DashboardService
	activity  ports.ActivityLog
}

func NewDashboardHandler(dashboard ports.DashboardService, activity ports.ActivityLog) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, activity: activity}
}

// Stats handles GET /v1/dashboard.
//
// @Summary      Catalog totals, breakdowns and recent records
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Failure      500  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Activity handles GET /v1/activity.
//
// @Summary      Recent catalog writes
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (1-100, default 20)"
// @Success      200    {object}  activityResponse
// @Failure      400    {object}  errorResponse
// @Router       /v1/activity [get]
func (h *DashboardHandler) Activity(c echo.Context) error {
	limit := defaultActivityLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = min(n, maxActivityLimit)
	}

	entries, err := h.activity.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.Activity{}
	}
	return c.JSON(http.StatusOK, activityResponse{Data: entries, Limit: limit})
}
