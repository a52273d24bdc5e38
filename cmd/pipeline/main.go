package main

import (
	"flag"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/config"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/database"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	tripsPath := flag.String("trips", "", "path to the trip records CSV")
	zonesPath := flag.String("zones", "", "path to the taxi zone lookup CSV")
	dbPath := flag.String("db", "", "path to the SQLite database")
	flag.Parse()

	// The config file flag routes through the same loader path as the
	// server's CONFIG_PATH.
	if *configPath != "" {
		os.Setenv("CONFIG_PATH", *configPath)
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if *tripsPath == "" {
		*tripsPath = cfg.TripsPath
	}
	if *zonesPath == "" {
		*zonesPath = cfg.ZonesPath
	}
	if *dbPath == "" {
		*dbPath = cfg.DBPath
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.WithError(err).Fatal("Failed to create data directory")
	}

	db, err := database.Open(database.Config{Path: *dbPath})
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	runner := pipeline.NewRunner(db, nil)
	if _, err := runner.Run(*tripsPath, *zonesPath); err != nil {
		log.WithError(err).Fatal("Pipeline run failed")
	}
}
