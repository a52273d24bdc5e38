package pipeline

import (
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/database"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/ingest"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/metrics"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/repository"
)

// Runner orchestrates one full-refresh pass: load both inputs, clean,
// enrich, aggregate every grouping, build the dashboard view, and
// replace all stored outputs in a single transaction. A failed run
// rolls back and leaves the previous outputs untouched.
type Runner struct {
	db      *sql.DB
	metrics *metrics.Metrics

	zoneRepo      *repository.ZoneRepository
	rawRepo       *repository.RawTripRepository
	cleanRepo     *repository.CleanTripRepository
	aggregateRepo *repository.AggregateRepository
	dashboardRepo *repository.DashboardRepository
	runRepo       *repository.RunRepository
}

// NewRunner creates a runner over an initialized database. The metrics
// argument may be nil for one-shot CLI runs.
func NewRunner(db *sql.DB, m *metrics.Metrics) *Runner {
	return &Runner{
		db:            db,
		metrics:       m,
		zoneRepo:      repository.NewZoneRepository(db),
		rawRepo:       repository.NewRawTripRepository(db),
		cleanRepo:     repository.NewCleanTripRepository(db),
		aggregateRepo: repository.NewAggregateRepository(db),
		dashboardRepo: repository.NewDashboardRepository(db),
		runRepo:       repository.NewRunRepository(db),
	}
}

// Run executes one full refresh from the given source files and
// returns the finished run record.
func (r *Runner) Run(tripsPath, zonesPath string) (models.PipelineRun, error) {
	started := time.Now()
	logger := log.WithField("component", "pipeline")

	runID, err := r.runRepo.Create()
	if err != nil {
		return models.PipelineRun{}, err
	}

	run, err := r.execute(logger, tripsPath, zonesPath)
	elapsed := time.Since(started)

	if err != nil {
		logger.WithError(err).Error("Pipeline run failed, previous outputs kept")
		if markErr := r.runRepo.MarkFailed(runID, err.Error()); markErr != nil {
			logger.WithError(markErr).Error("Failed to record run failure")
		}
		if r.metrics != nil {
			r.metrics.ObserveRun(models.RunStatusFailed, run.Diagnostics, elapsed)
		}
		return models.PipelineRun{}, err
	}

	if err := r.runRepo.MarkCompleted(runID, run); err != nil {
		return models.PipelineRun{}, err
	}
	if r.metrics != nil {
		r.metrics.ObserveRun(models.RunStatusCompleted, run.Diagnostics, elapsed)
	}

	run.ID = runID
	run.Status = models.RunStatusCompleted

	logger.WithFields(log.Fields{
		"raw_rows":       run.RawRows,
		"duplicates":     run.DuplicatesRemoved,
		"clean_rows":     run.CleanRows,
		"bucket_rows":    run.BucketRows,
		"dashboard_rows": run.DashboardRows,
		"elapsed":        elapsed.Round(time.Millisecond).String(),
	}).Info("Pipeline run completed")

	return run, nil
}

func (r *Runner) execute(logger *log.Entry, tripsPath, zonesPath string) (models.PipelineRun, error) {
	var run models.PipelineRun

	// Unreadable input is fatal before anything is written, so a
	// truncated source can never half-replace the previous outputs.
	zones, err := ingest.LoadZones(zonesPath)
	if err != nil {
		return run, err
	}
	raw, err := ingest.LoadTrips(tripsPath)
	if err != nil {
		return run, err
	}
	logger.WithFields(log.Fields{
		"trips": len(raw),
		"zones": len(zones),
	}).Info("Loaded source files")

	lookup := models.NewZoneLookup(zones)

	result := NewCleaner(lookup).Clean(raw)
	run.Diagnostics = result.Diagnostics
	logger.WithFields(log.Fields{
		"clean_rows":        result.Diagnostics.CleanRows,
		"duplicates":        result.Diagnostics.DuplicatesRemoved,
		"invalid_timestamp": result.Diagnostics.InvalidTimestamp,
		"invalid_fare":      result.Diagnostics.InvalidFare,
		"invalid_distance":  result.Diagnostics.InvalidDistance,
		"zone_mismatch":     result.Diagnostics.ZoneMismatch,
	}).Info("Validated and deduplicated raw trips")

	enriched := Enrich(result.Trips)
	run.EnrichedRows = int64(len(enriched))

	var buckets []models.AggregateBucket
	for _, g := range models.Groupings() {
		buckets = append(buckets, Aggregate(enriched, g)...)
	}
	run.BucketRows = int64(len(buckets))

	dashboard := BuildDashboard(buckets)
	run.DashboardRows = int64(len(dashboard))

	err = database.Transaction(r.db, func(tx *sql.Tx) error {
		if err := r.zoneRepo.ReplaceAll(tx, zones); err != nil {
			return err
		}
		if err := r.rawRepo.ReplaceAll(tx, raw); err != nil {
			return err
		}
		if err := r.cleanRepo.ReplaceAll(tx, enriched); err != nil {
			return err
		}
		if err := r.aggregateRepo.ReplaceAll(tx, buckets); err != nil {
			return err
		}
		return r.dashboardRepo.ReplaceAll(tx, dashboard)
	})
	if err != nil {
		return run, fmt.Errorf("failed to store pipeline outputs: %w", err)
	}

	return run, nil
}
