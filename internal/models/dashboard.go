package models

// weekdayNames follows the Sunday-first numbering used across the
// pipeline: 1=Sunday .. 7=Saturday.
var weekdayNames = map[int]string{
	1: "Sunday",
	2: "Monday",
	3: "Tuesday",
	4: "Wednesday",
	5: "Thursday",
	6: "Friday",
	7: "Saturday",
}

// WeekdayName returns the name for a 1-7 weekday index, or an empty
// string for anything out of range.
func WeekdayName(weekday int) string {
	return weekdayNames[weekday]
}

// DashboardRow is one wide row of the reporting view: the full
// dimension set with every metric side by side. All float metrics are
// rounded to 2 decimals when the row is built; undefined metrics stay
// nil and are omitted from JSON. This row shape is the stable contract
// handed to reporting tools.
type DashboardRow struct {
	ID int64 `json:"id" db:"id"`

	PickupWeekday  int    `json:"pickup_weekday" db:"pickup_weekday"`
	WeekdayName    string `json:"weekday_name" db:"weekday_name"`
	PickupHour     int    `json:"pickup_hour" db:"pickup_hour"`
	PUZone         string `json:"pu_zone" db:"pu_zone"`
	ZoneType       string `json:"zone_type" db:"zone_type"`
	DayType        string `json:"day_type" db:"day_type"`
	DayPart        string `json:"day_part" db:"day_part"`
	TripLengthType string `json:"trip_length_type" db:"trip_length_type"`

	TotalTrips         int64    `json:"total_trips" db:"total_trips"`
	ActiveDays         int64    `json:"active_days" db:"active_days"`
	AvgTripsPerDayHour float64  `json:"avg_trips_per_day_hour" db:"avg_trips_per_day_hour"`
	AvgTripDurationMin float64  `json:"avg_trip_duration_min" db:"avg_trip_duration_min"`
	AvgMinutesPerMile  float64  `json:"avg_minutes_per_mile" db:"avg_minutes_per_mile"`
	TotalFare          float64  `json:"total_fare" db:"total_fare"`
	TotalDurationMin   float64  `json:"total_duration_min" db:"total_duration_min"`
	EarningsPerHour    *float64 `json:"earnings_per_hour,omitempty" db:"earnings_per_hour"`
	VolatilityMin      *float64 `json:"trip_duration_volatility_min,omitempty" db:"trip_duration_volatility_min"`
}
