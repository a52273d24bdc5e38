package service

import (
	"fmt"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/repository"
)

// DashboardService handles business logic for the aggregate and
// dashboard queries
type DashboardService struct {
	aggregateRepo *repository.AggregateRepository
	dashboardRepo *repository.DashboardRepository
	zoneRepo      *repository.ZoneRepository

	// Default minimum-support threshold applied when a caller does
	// not pass one. Thresholding is a query-time concern; buckets are
	// stored unfiltered.
	defaultMinSupport float64
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	aggregateRepo *repository.AggregateRepository,
	dashboardRepo *repository.DashboardRepository,
	zoneRepo *repository.ZoneRepository,
	defaultMinSupport float64,
) *DashboardService {
	return &DashboardService{
		aggregateRepo:     aggregateRepo,
		dashboardRepo:     dashboardRepo,
		zoneRepo:          zoneRepo,
		defaultMinSupport: defaultMinSupport,
	}
}

// GetAggregates retrieves aggregate buckets for a grouping
func (s *DashboardService) GetAggregates(filter models.AggregateFilter) ([]models.AggregateBucket, error) {
	if filter.Grouping == "" {
		filter.Grouping = string(models.GroupingZoneHour)
	}
	if !models.Grouping(filter.Grouping).Valid() {
		return nil, fmt.Errorf("unknown grouping %q", filter.Grouping)
	}
	if filter.Weekday != 0 && (filter.Weekday < 1 || filter.Weekday > 7) {
		return nil, fmt.Errorf("weekday must be between 1 (Sunday) and 7 (Saturday)")
	}
	if filter.Hour < -1 || filter.Hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23, or -1 for any hour")
	}
	if filter.MinTripsPerDayHour < 0 {
		filter.MinTripsPerDayHour = s.defaultMinSupport
	}

	return s.aggregateRepo.Query(filter)
}

// GetDashboard retrieves dashboard view rows
func (s *DashboardService) GetDashboard(filter models.DashboardFilter) ([]models.DashboardRow, error) {
	if filter.Weekday != 0 && (filter.Weekday < 1 || filter.Weekday > 7) {
		return nil, fmt.Errorf("weekday must be between 1 (Sunday) and 7 (Saturday)")
	}
	if filter.Hour < -1 || filter.Hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23, or -1 for any hour")
	}
	if filter.ZoneType != "" && filter.ZoneType != models.ZoneTypeAirport && filter.ZoneType != models.ZoneTypeCity {
		return nil, fmt.Errorf("zoneType must be %s or %s", models.ZoneTypeAirport, models.ZoneTypeCity)
	}
	if filter.MinTripsPerDayHour < 0 {
		filter.MinTripsPerDayHour = s.defaultMinSupport
	}

	return s.dashboardRepo.Query(filter)
}

// GetZones retrieves the zone reference
func (s *DashboardService) GetZones() ([]models.TaxiZone, error) {
	return s.zoneRepo.GetAll()
}
