package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

func fptr(v float64) *float64 { return &v }

func seedBuckets(t *testing.T, db *sql.DB, repo *AggregateRepository) {
	t.Helper()
	buckets := []models.AggregateBucket{
		{
			Grouping: models.GroupingZoneHour, PickupWeekday: 2, PickupHour: 17,
			PUZone: "Midtown Center", TotalTrips: 120, ActiveDays: 4,
			AvgTripsPerDayHour: 30, AvgTripDurationMin: 15, AvgMinutesPerMile: 5.5,
			TotalFare: 1800, TotalDurationMin: 1800,
			EarningsPerHour: fptr(60), VolatilityMin: fptr(4.2),
		},
		{
			Grouping: models.GroupingZoneHour, PickupWeekday: 2, PickupHour: 0,
			PUZone: "JFK Airport", TotalTrips: 3, ActiveDays: 3,
			AvgTripsPerDayHour: 1, AvgTripDurationMin: 40, AvgMinutesPerMile: 3.6,
			TotalFare: 156, TotalDurationMin: 120,
			EarningsPerHour: fptr(78), VolatilityMin: fptr(2.1),
		},
		{
			// Degenerate bucket: one trip, its metrics undefined.
			Grouping: models.GroupingZoneHour, PickupWeekday: 6, PickupHour: 3,
			PUZone: "Times Sq/Theatre District", TotalTrips: 1, ActiveDays: 1,
			AvgTripsPerDayHour: 1, AvgTripDurationMin: 8, AvgMinutesPerMile: 5.3,
			TotalFare: 9, TotalDurationMin: 8,
			EarningsPerHour: fptr(67.5),
		},
		{
			Grouping: models.GroupingFull, PickupWeekday: 2, PickupHour: 17,
			PUZone: "Midtown Center", DayType: models.DayTypeWeekday,
			DayPart: models.DayPartEvening, TripLengthType: models.TripLengthMedium,
			TotalTrips: 80, ActiveDays: 4,
			AvgTripsPerDayHour: 20, AvgTripDurationMin: 14, AvgMinutesPerMile: 5.2,
			TotalFare: 1100, TotalDurationMin: 1120,
			EarningsPerHour: fptr(58.93), VolatilityMin: fptr(3.8),
		},
		{
			Grouping: models.GroupingFull, PickupWeekday: 2, PickupHour: 17,
			PUZone: "Midtown Center", DayType: models.DayTypeWeekday,
			DayPart: models.DayPartEvening, TripLengthType: models.TripLengthLong,
			TotalTrips: 40, ActiveDays: 4,
			AvgTripsPerDayHour: 10, AvgTripDurationMin: 32, AvgMinutesPerMile: 3.4,
			TotalFare: 900, TotalDurationMin: 1280,
			EarningsPerHour: fptr(42.19), VolatilityMin: fptr(6.1),
		},
	}
	inTx(t, db, func(tx *sql.Tx) error { return repo.ReplaceAll(tx, buckets) })
}

func TestAggregateRepositoryRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewAggregateRepository(db)
	seedBuckets(t, db, repo)

	got, err := repo.Query(models.AggregateFilter{Grouping: "zone_hour", Hour: -1})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Default order is by weekday then hour.
	assert.Equal(t, "JFK Airport", got[0].PUZone)
	assert.Equal(t, "Midtown Center", got[1].PUZone)
	assert.Equal(t, "Times Sq/Theatre District", got[2].PUZone)

	require.NotNil(t, got[1].EarningsPerHour)
	assert.InDelta(t, 60, *got[1].EarningsPerHour, 1e-9)
	assert.Nil(t, got[2].VolatilityMin, "NULL volatility scans back as absent")
}

func TestAggregateRepositoryDefaultsToZoneHour(t *testing.T) {
	db := testDB(t)
	repo := NewAggregateRepository(db)
	seedBuckets(t, db, repo)

	got, err := repo.Query(models.AggregateFilter{Hour: -1})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, b := range got {
		assert.Equal(t, models.GroupingZoneHour, b.Grouping)
	}
}

func TestAggregateRepositoryHourZeroIsAFilter(t *testing.T) {
	db := testDB(t)
	repo := NewAggregateRepository(db)
	seedBuckets(t, db, repo)

	got, err := repo.Query(models.AggregateFilter{Grouping: "zone_hour", Hour: 0})
	require.NoError(t, err)
	require.Len(t, got, 1, "hour 0 means midnight, not unset")
	assert.Equal(t, "JFK Airport", got[0].PUZone)
}

func TestAggregateRepositoryMinSupportThreshold(t *testing.T) {
	db := testDB(t)
	repo := NewAggregateRepository(db)
	seedBuckets(t, db, repo)

	got, err := repo.Query(models.AggregateFilter{
		Grouping: "zone_hour", Hour: -1, MinTripsPerDayHour: 10,
	})
	require.NoError(t, err)
	require.Len(t, got, 1, "thin buckets fall below the support threshold")
	assert.Equal(t, "Midtown Center", got[0].PUZone)
}

func TestAggregateRepositorySortByEarnings(t *testing.T) {
	db := testDB(t)
	repo := NewAggregateRepository(db)
	seedBuckets(t, db, repo)

	got, err := repo.Query(models.AggregateFilter{
		Grouping: "zone_hour", Hour: -1, SortBy: "earnings",
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "JFK Airport", got[0].PUZone)
	assert.Equal(t, "Times Sq/Theatre District", got[1].PUZone)
	assert.Equal(t, "Midtown Center", got[2].PUZone)
}

func TestAggregateRepositoryFilterCombination(t *testing.T) {
	db := testDB(t)
	repo := NewAggregateRepository(db)
	seedBuckets(t, db, repo)

	got, err := repo.Query(models.AggregateFilter{
		Grouping: "full", Weekday: 2, Hour: 17,
		Zone: "Midtown Center", DayPart: models.DayPartEvening,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.TripLengthLong, got[0].TripLengthType)
	assert.Equal(t, models.TripLengthMedium, got[1].TripLengthType)
}

func TestAggregateRepositoryTripLengthFilter(t *testing.T) {
	db := testDB(t)
	repo := NewAggregateRepository(db)
	seedBuckets(t, db, repo)

	got, err := repo.Query(models.AggregateFilter{
		Grouping: "full", Hour: -1, TripLengthType: models.TripLengthLong,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(40), got[0].TotalTrips)

	got, err = repo.Query(models.AggregateFilter{
		Grouping: "full", Hour: -1, TripLengthType: models.TripLengthShort,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAggregateRepositoryLimit(t *testing.T) {
	db := testDB(t)
	repo := NewAggregateRepository(db)
	seedBuckets(t, db, repo)

	got, err := repo.Query(models.AggregateFilter{Grouping: "zone_hour", Hour: -1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAggregateRepositoryTotalTrips(t *testing.T) {
	db := testDB(t)
	repo := NewAggregateRepository(db)
	seedBuckets(t, db, repo)

	total, err := repo.TotalTrips(models.GroupingZoneHour)
	require.NoError(t, err)
	assert.Equal(t, int64(124), total)

	total, err = repo.TotalTrips(models.GroupingZoneHourDayPart)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
