package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/export"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/service"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/pkg/response"
)

// DashboardHandler handles HTTP requests for aggregates and the
// dashboard view
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetAggregates handles GET /api/v1/aggregates
func (h *DashboardHandler) GetAggregates(c *gin.Context) {
	filter := models.AggregateFilter{
		Grouping:       c.DefaultQuery("grouping", string(models.GroupingZoneHour)),
		Zone:           c.Query("zone"),
		DayType:        c.Query("dayType"),
		DayPart:        c.Query("dayPart"),
		TripLengthType: c.Query("tripLengthType"),
		SortBy:         c.Query("sortBy"),
	}

	var ok bool
	if filter.Weekday, ok = intParam(c, "weekday", 0); !ok {
		return
	}
	if filter.Hour, ok = intParam(c, "hour", -1); !ok {
		return
	}
	if filter.Limit, ok = intParam(c, "limit", 0); !ok {
		return
	}
	if filter.MinTripsPerDayHour, ok = floatParam(c, "minTripsPerDayHour", -1); !ok {
		return
	}

	buckets, err := h.dashboardService.GetAggregates(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, buckets)
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	filter, ok := dashboardFilter(c)
	if !ok {
		return
	}

	rows, err := h.dashboardService.GetDashboard(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, rows)
}

// ExportDashboard handles GET /api/v1/dashboard/export
func (h *DashboardHandler) ExportDashboard(c *gin.Context) {
	filter, ok := dashboardFilter(c)
	if !ok {
		return
	}

	rows, err := h.dashboardService.GetDashboard(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	workbook, err := export.DashboardWorkbook(rows)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("taxi-dashboard-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		// Headers are already out; nothing to do but log via gin
		_ = c.Error(err)
	}
}

// GetZones handles GET /api/v1/zones
func (h *DashboardHandler) GetZones(c *gin.Context) {
	zones, err := h.dashboardService.GetZones()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, zones)
}

func dashboardFilter(c *gin.Context) (models.DashboardFilter, bool) {
	filter := models.DashboardFilter{
		Zone:           c.Query("zone"),
		ZoneType:       c.Query("zoneType"),
		DayType:        c.Query("dayType"),
		DayPart:        c.Query("dayPart"),
		TripLengthType: c.Query("tripLengthType"),
		SortBy:         c.Query("sortBy"),
	}

	var ok bool
	if filter.Weekday, ok = intParam(c, "weekday", 0); !ok {
		return filter, false
	}
	if filter.Hour, ok = intParam(c, "hour", -1); !ok {
		return filter, false
	}
	if filter.Limit, ok = intParam(c, "limit", 0); !ok {
		return filter, false
	}
	if filter.MinTripsPerDayHour, ok = floatParam(c, "minTripsPerDayHour", -1); !ok {
		return filter, false
	}

	return filter, true
}

func intParam(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s parameter", name))
		return 0, false
	}
	return v, true
}

func floatParam(c *gin.Context, name string, fallback float64) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s parameter", name))
		return 0, false
	}
	return v, true
}
