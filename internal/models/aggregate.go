package models

// Grouping identifies which dimension combination an aggregate bucket
// was computed over.
type Grouping string

const (
	// GroupingZoneHour groups by (weekday, hour, pickup zone)
	GroupingZoneHour Grouping = "zone_hour"
	// GroupingZoneHourDayPart extends GroupingZoneHour with
	// day_type and day_part
	GroupingZoneHourDayPart Grouping = "zone_hour_daypart"
	// GroupingFull is the dashboard grain: weekday, hour, zone,
	// day_type, day_part and trip_length_type
	GroupingFull Grouping = "full"
)

// Groupings lists every supported grouping in pipeline order.
func Groupings() []Grouping {
	return []Grouping{GroupingZoneHour, GroupingZoneHourDayPart, GroupingFull}
}

// Valid reports whether g names a supported grouping.
func (g Grouping) Valid() bool {
	switch g {
	case GroupingZoneHour, GroupingZoneHourDayPart, GroupingFull:
		return true
	}
	return false
}

// AggregateBucket is one grouped row of the aggregate output. Buckets
// only exist for key combinations that saw at least one trip; the set
// is fully recomputed from the enriched trips on every run.
//
// EarningsPerHour and VolatilityMin are pointers because both metrics
// can be undefined for a bucket (zero pooled duration, fewer than two
// trips). An undefined metric is omitted from output, never reported
// as zero or infinity.
type AggregateBucket struct {
	ID       int64    `json:"id" db:"id"`
	Grouping Grouping `json:"grouping" db:"grouping"`

	// Grouping dimensions; the optional ones are empty strings for
	// groupings that do not include them.
	PickupWeekday  int    `json:"pickup_weekday" db:"pickup_weekday"`
	PickupHour     int    `json:"pickup_hour" db:"pickup_hour"`
	PUZone         string `json:"pu_zone" db:"pu_zone"`
	DayType        string `json:"day_type,omitempty" db:"day_type"`
	DayPart        string `json:"day_part,omitempty" db:"day_part"`
	TripLengthType string `json:"trip_length_type,omitempty" db:"trip_length_type"`

	TotalTrips int64 `json:"total_trips" db:"total_trips"`
	ActiveDays int64 `json:"active_days" db:"active_days"`

	// Demand support: trips per observed day-hour. Stored at full
	// precision; thresholds are applied at query time.
	AvgTripsPerDayHour float64 `json:"avg_trips_per_day_hour" db:"avg_trips_per_day_hour"`

	AvgTripDurationMin float64 `json:"avg_trip_duration_min" db:"avg_trip_duration_min"`
	AvgMinutesPerMile  float64 `json:"avg_minutes_per_mile" db:"avg_minutes_per_mile"`
	TotalFare          float64 `json:"total_fare" db:"total_fare"`
	TotalDurationMin   float64 `json:"total_duration_min" db:"total_duration_min"`

	EarningsPerHour *float64 `json:"earnings_per_hour,omitempty" db:"earnings_per_hour"`
	VolatilityMin   *float64 `json:"trip_duration_volatility_min,omitempty" db:"trip_duration_volatility_min"`
}
