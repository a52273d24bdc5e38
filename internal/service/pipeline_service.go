package service

import (
	"fmt"
	"sync/atomic"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/pipeline"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/repository"
)

// PipelineService handles business logic for pipeline runs
type PipelineService struct {
	runner    *pipeline.Runner
	runRepo   *repository.RunRepository
	tripsPath string
	zonesPath string

	// Only one refresh may run at a time; each run fully replaces
	// every derived table.
	running atomic.Bool
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(runner *pipeline.Runner, runRepo *repository.RunRepository, tripsPath, zonesPath string) *PipelineService {
	return &PipelineService{
		runner:    runner,
		runRepo:   runRepo,
		tripsPath: tripsPath,
		zonesPath: zonesPath,
	}
}

// Refresh executes one full pipeline refresh
func (s *PipelineService) Refresh() (models.PipelineRun, error) {
	if !s.running.CompareAndSwap(false, true) {
		return models.PipelineRun{}, fmt.Errorf("a pipeline refresh is already running")
	}
	defer s.running.Store(false)

	return s.runner.Run(s.tripsPath, s.zonesPath)
}

// GetRuns returns the most recent runs, newest first
func (s *PipelineService) GetRuns(limit int) ([]models.PipelineRun, error) {
	if limit < 1 || limit > 200 {
		limit = 20
	}
	return s.runRepo.List(limit)
}

// GetLatestRun returns the most recent run, or nil when the pipeline
// has never run
func (s *PipelineService) GetLatestRun() (*models.PipelineRun, error) {
	return s.runRepo.GetLatest()
}
