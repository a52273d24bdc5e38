package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/api"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/config"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/database"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/handler"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/metrics"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/pipeline"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/repository"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.WithError(err).Fatal("Failed to create data directory")
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	m := metrics.New()
	runner := pipeline.NewRunner(db, m)

	zoneRepo := repository.NewZoneRepository(db)
	aggregateRepo := repository.NewAggregateRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	runRepo := repository.NewRunRepository(db)

	pipelineService := service.NewPipelineService(runner, runRepo, cfg.TripsPath, cfg.ZonesPath)
	dashboardService := service.NewDashboardService(aggregateRepo, dashboardRepo, zoneRepo, cfg.MinTripsPerDayHour)

	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	pipelineHandler := handler.NewPipelineHandler(pipelineService)

	if cfg.RefreshInterval != "" {
		c := cron.New()
		spec := fmt.Sprintf("@every %s", cfg.RefreshInterval)
		err := c.AddFunc(spec, func() {
			if _, err := pipelineService.Refresh(); err != nil {
				log.WithError(err).Error("Scheduled refresh failed")
			}
		})
		if err != nil {
			log.WithError(err).Fatal("Invalid refresh interval")
		}
		c.Start()
		defer c.Stop()
		log.WithField("schedule", spec).Info("Scheduled pipeline refresh enabled")
	}

	router := api.SetupRouter(dashboardHandler, pipelineHandler, m)

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := router.Run(cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
