package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/database"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/repository"
)

func testDashboardService(t *testing.T) *DashboardService {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	return NewDashboardService(
		repository.NewAggregateRepository(db),
		repository.NewDashboardRepository(db),
		repository.NewZoneRepository(db),
		50,
	)
}

func TestGetAggregatesHourSentinel(t *testing.T) {
	svc := testDashboardService(t)

	// -1 is the documented "any hour" sentinel, never an error.
	_, err := svc.GetAggregates(models.AggregateFilter{Hour: -1})
	assert.NoError(t, err)

	_, err = svc.GetAggregates(models.AggregateFilter{Hour: 24})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-1 for any hour")

	_, err = svc.GetAggregates(models.AggregateFilter{Hour: -2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-1 for any hour")
}

func TestGetAggregatesValidation(t *testing.T) {
	svc := testDashboardService(t)

	_, err := svc.GetAggregates(models.AggregateFilter{Grouping: "bogus", Hour: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown grouping")

	_, err = svc.GetAggregates(models.AggregateFilter{Weekday: 8, Hour: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weekday")
}

func TestGetDashboardValidation(t *testing.T) {
	svc := testDashboardService(t)

	_, err := svc.GetDashboard(models.DashboardFilter{Hour: -1})
	assert.NoError(t, err)

	_, err = svc.GetDashboard(models.DashboardFilter{Hour: 25})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-1 for any hour")

	_, err = svc.GetDashboard(models.DashboardFilter{Hour: -1, ZoneType: "Suburb"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zoneType")
}
