package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/handler"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/metrics"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/middleware"
)

// SetupRouter wires all HTTP routes
func SetupRouter(
	dashboardHandler *handler.DashboardHandler,
	pipelineHandler *handler.PipelineHandler,
	m *metrics.Metrics,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS middleware; the dashboard is consumed by browser-based
	// reporting tools on other origins
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Taxi efficiency API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	api := r.Group("/api/v1")
	{
		api.GET("/zones", dashboardHandler.GetZones)
		api.GET("/aggregates", dashboardHandler.GetAggregates)

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("", dashboardHandler.GetDashboard)
			dashboard.GET("/export", dashboardHandler.ExportDashboard)
		}

		pipeline := api.Group("/pipeline")
		{
			// A refresh re-reads and re-aggregates everything
			pipeline.POST("/refresh", middleware.RateLimit(5, time.Minute), pipelineHandler.Refresh)
		}

		runs := api.Group("/runs")
		{
			runs.GET("", pipelineHandler.GetRuns)
			runs.GET("/latest", pipelineHandler.GetLatestRun)
		}
	}

	return r
}
