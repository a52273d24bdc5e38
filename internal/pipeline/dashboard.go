package pipeline

import (
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/stats"
)

// BuildDashboard assembles the wide reporting rows from the full-grain
// aggregate buckets. No new aggregation happens here: the builder only
// attaches the weekday name and the zone classification, and rounds
// every metric to 2 decimals for presentation. Undefined metrics stay
// absent rather than becoming zeroes.
func BuildDashboard(full []models.AggregateBucket) []models.DashboardRow {
	rows := make([]models.DashboardRow, 0, len(full))
	for _, b := range full {
		if b.Grouping != models.GroupingFull {
			continue
		}
		rows = append(rows, buildRow(b))
	}
	return rows
}

func buildRow(b models.AggregateBucket) models.DashboardRow {
	return models.DashboardRow{
		PickupWeekday:  b.PickupWeekday,
		WeekdayName:    models.WeekdayName(b.PickupWeekday),
		PickupHour:     b.PickupHour,
		PUZone:         b.PUZone,
		ZoneType:       models.ZoneType(b.PUZone),
		DayType:        b.DayType,
		DayPart:        b.DayPart,
		TripLengthType: b.TripLengthType,

		TotalTrips:         b.TotalTrips,
		ActiveDays:         b.ActiveDays,
		AvgTripsPerDayHour: stats.Round2(b.AvgTripsPerDayHour),
		AvgTripDurationMin: stats.Round2(b.AvgTripDurationMin),
		AvgMinutesPerMile:  stats.Round2(b.AvgMinutesPerMile),
		TotalFare:          stats.Round2(b.TotalFare),
		TotalDurationMin:   stats.Round2(b.TotalDurationMin),
		EarningsPerHour:    roundPtr(b.EarningsPerHour),
		VolatilityMin:      roundPtr(b.VolatilityMin),
	}
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := stats.Round2(*v)
	return &rounded
}
