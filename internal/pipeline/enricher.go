package pipeline

import (
	"time"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// Enrich maps every clean trip to exactly one enriched trip. The
// mapping is a pure function of the clean trip fields and has no
// error conditions.
func Enrich(trips []models.CleanTrip) []models.EnrichedTrip {
	enriched := make([]models.EnrichedTrip, len(trips))
	for i, t := range trips {
		enriched[i] = EnrichTrip(t)
	}
	return enriched
}

// EnrichTrip derives the calendar and category attributes for one trip
func EnrichTrip(t models.CleanTrip) models.EnrichedTrip {
	weekday := sundayFirstWeekday(t.PickupDatetime)
	hour := t.PickupDatetime.Hour()

	return models.EnrichedTrip{
		CleanTrip:      t,
		PickupWeekday:  weekday,
		PickupHour:     hour,
		PickupDate:     t.PickupDatetime.Format("2006-01-02"),
		DayType:        dayTypeFor(weekday),
		DayPart:        dayPartFor(hour),
		TripLengthType: tripLengthFor(t.TripDistance),
	}
}

// sundayFirstWeekday numbers days Sunday=1 .. Saturday=7. The weekend
// test {1,7} depends on this convention, so it is fixed here rather
// than taken from any locale.
func sundayFirstWeekday(t time.Time) int {
	return int(t.Weekday()) + 1
}

func dayTypeFor(weekday int) string {
	if weekday == 1 || weekday == 7 {
		return models.DayTypeWeekend
	}
	return models.DayTypeWeekday
}

// dayPartFor buckets a 0-23 wall-clock hour: 5-10 Morning, 11-15
// Afternoon, 16-20 Evening, everything else Night.
func dayPartFor(hour int) string {
	switch {
	case hour >= 5 && hour <= 10:
		return models.DayPartMorning
	case hour >= 11 && hour <= 15:
		return models.DayPartAfternoon
	case hour >= 16 && hour <= 20:
		return models.DayPartEvening
	default:
		return models.DayPartNight
	}
}

// tripLengthFor buckets trip distance in miles: under 2 Short, 2-8
// Medium, over 8 Long.
func tripLengthFor(distance float64) string {
	switch {
	case distance < 2:
		return models.TripLengthShort
	case distance <= 8:
		return models.TripLengthMedium
	default:
		return models.TripLengthLong
	}
}
