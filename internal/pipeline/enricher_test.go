package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

func cleanTripAt(pickup time.Time, distance float64) models.CleanTrip {
	return models.CleanTrip{
		PickupDatetime:  pickup,
		DropoffDatetime: pickup.Add(15 * time.Minute),
		TripDistance:    distance,
		FareAmount:      10,
		TripDurationMin: 15,
		PUZone:          "Midtown Center",
	}
}

func TestEnrichWeekdayConvention(t *testing.T) {
	// 2023-03-05 is a Sunday; the pipeline numbers Sunday=1.
	sunday := time.Date(2023, 3, 5, 12, 0, 0, 0, time.UTC)

	for offset, want := range []int{1, 2, 3, 4, 5, 6, 7} {
		e := EnrichTrip(cleanTripAt(sunday.AddDate(0, 0, offset), 3))
		assert.Equal(t, want, e.PickupWeekday)
	}
}

func TestEnrichDayType(t *testing.T) {
	sunday := time.Date(2023, 3, 5, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2023, 3, 11, 12, 0, 0, 0, time.UTC)
	wednesday := time.Date(2023, 3, 8, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, models.DayTypeWeekend, EnrichTrip(cleanTripAt(sunday, 3)).DayType)
	assert.Equal(t, models.DayTypeWeekend, EnrichTrip(cleanTripAt(saturday, 3)).DayType)
	assert.Equal(t, models.DayTypeWeekday, EnrichTrip(cleanTripAt(wednesday, 3)).DayType)
}

func TestEnrichDayPartBuckets(t *testing.T) {
	cases := map[int]string{
		0:  models.DayPartNight,
		4:  models.DayPartNight,
		5:  models.DayPartMorning,
		10: models.DayPartMorning,
		11: models.DayPartAfternoon,
		12: models.DayPartAfternoon,
		15: models.DayPartAfternoon,
		16: models.DayPartEvening,
		20: models.DayPartEvening,
		21: models.DayPartNight,
		23: models.DayPartNight,
	}

	for hour, want := range cases {
		pickup := time.Date(2023, 3, 8, hour, 30, 0, 0, time.UTC)
		e := EnrichTrip(cleanTripAt(pickup, 3))
		assert.Equal(t, want, e.DayPart, "hour %d", hour)
		assert.Equal(t, hour, e.PickupHour)
	}
}

func TestEnrichTripLengthBuckets(t *testing.T) {
	pickup := time.Date(2023, 3, 8, 9, 0, 0, 0, time.UTC)

	cases := map[float64]string{
		0.4: models.TripLengthShort,
		1.9: models.TripLengthShort,
		2.0: models.TripLengthMedium,
		5.0: models.TripLengthMedium,
		8.0: models.TripLengthMedium,
		8.1: models.TripLengthLong,
		20:  models.TripLengthLong,
	}

	for distance, want := range cases {
		e := EnrichTrip(cleanTripAt(pickup, distance))
		assert.Equal(t, want, e.TripLengthType, "distance %.1f", distance)
	}
}

func TestEnrichIsTotal(t *testing.T) {
	trips := []models.CleanTrip{
		cleanTripAt(time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC), 1),
		cleanTripAt(time.Date(2023, 3, 8, 23, 59, 0, 0, time.UTC), 8),
		cleanTripAt(time.Date(2023, 3, 11, 13, 0, 0, 0, time.UTC), 12),
	}

	enriched := Enrich(trips)
	assert.Len(t, enriched, len(trips))

	dayParts := map[string]bool{
		models.DayPartMorning: true, models.DayPartAfternoon: true,
		models.DayPartEvening: true, models.DayPartNight: true,
	}
	lengths := map[string]bool{
		models.TripLengthShort: true, models.TripLengthMedium: true, models.TripLengthLong: true,
	}

	for _, e := range enriched {
		assert.True(t, dayParts[e.DayPart])
		assert.True(t, lengths[e.TripLengthType])
		assert.Equal(t, e.PickupDatetime.Format("2006-01-02"), e.PickupDate)
	}
}
