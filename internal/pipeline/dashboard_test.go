package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

func fullBucket() models.AggregateBucket {
	eph := 58.333333
	vol := 4.042
	return models.AggregateBucket{
		Grouping:       models.GroupingFull,
		PickupWeekday:  2,
		PickupHour:     17,
		PUZone:         "JFK Airport",
		DayType:        models.DayTypeWeekday,
		DayPart:        models.DayPartEvening,
		TripLengthType: models.TripLengthLong,

		TotalTrips:         3,
		ActiveDays:         2,
		AvgTripsPerDayHour: 1.5,
		AvgTripDurationMin: 15.666666,
		AvgMinutesPerMile:  4.12345,
		TotalFare:          45.005,
		TotalDurationMin:   47,
		EarningsPerHour:    &eph,
		VolatilityMin:      &vol,
	}
}

func TestBuildDashboardRow(t *testing.T) {
	rows := BuildDashboard([]models.AggregateBucket{fullBucket()})
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "Monday", r.WeekdayName)
	assert.Equal(t, models.ZoneTypeAirport, r.ZoneType)
	assert.Equal(t, models.DayPartEvening, r.DayPart)
	assert.Equal(t, models.TripLengthLong, r.TripLengthType)
	assert.Equal(t, int64(3), r.TotalTrips)
	assert.Equal(t, int64(2), r.ActiveDays)
}

func TestBuildDashboardRounding(t *testing.T) {
	rows := BuildDashboard([]models.AggregateBucket{fullBucket()})
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 15.67, r.AvgTripDurationMin)
	assert.Equal(t, 4.12, r.AvgMinutesPerMile)
	assert.Equal(t, 45.01, r.TotalFare)

	require.NotNil(t, r.EarningsPerHour)
	assert.Equal(t, 58.33, *r.EarningsPerHour)
	require.NotNil(t, r.VolatilityMin)
	assert.Equal(t, 4.04, *r.VolatilityMin)
}

func TestBuildDashboardKeepsUndefinedMetricsAbsent(t *testing.T) {
	b := fullBucket()
	b.EarningsPerHour = nil
	b.VolatilityMin = nil

	rows := BuildDashboard([]models.AggregateBucket{b})
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].EarningsPerHour)
	assert.Nil(t, rows[0].VolatilityMin)
}

func TestBuildDashboardCityZone(t *testing.T) {
	b := fullBucket()
	b.PUZone = "Midtown Center"

	rows := BuildDashboard([]models.AggregateBucket{b})
	require.Len(t, rows, 1)
	assert.Equal(t, models.ZoneTypeCity, rows[0].ZoneType)
}

func TestBuildDashboardSkipsCoarserGroupings(t *testing.T) {
	coarse := fullBucket()
	coarse.Grouping = models.GroupingZoneHour

	rows := BuildDashboard([]models.AggregateBucket{coarse, fullBucket()})
	assert.Len(t, rows, 1)
}
