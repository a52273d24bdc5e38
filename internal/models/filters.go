package models

// AggregateFilter represents filter parameters for querying aggregate
// buckets
type AggregateFilter struct {
	Grouping       string `form:"grouping"` // zone_hour, zone_hour_daypart, full
	Weekday        int    `form:"weekday"`  // 1=Sunday .. 7=Saturday
	Hour           int    `form:"hour"`     // 0-23, -1 for any
	Zone           string `form:"zone"`
	DayType        string `form:"dayType"`        // Weekend, Weekday
	DayPart        string `form:"dayPart"`        // Morning, Afternoon, Evening, Night
	TripLengthType string `form:"tripLengthType"` // Short, Medium, Long; only the full grouping carries it
	// Minimum-support threshold on avg_trips_per_day_hour; buckets
	// below it are statistically thin and filtered at query time.
	MinTripsPerDayHour float64 `form:"minTripsPerDayHour"`
	SortBy             string  `form:"sortBy"` // earnings, congestion, demand
	Limit              int     `form:"limit"`
}

// DashboardFilter represents filter parameters for querying the
// dashboard view
type DashboardFilter struct {
	Weekday            int     `form:"weekday"` // 1=Sunday .. 7=Saturday
	Hour               int     `form:"hour"`    // 0-23, -1 for any
	Zone               string  `form:"zone"`
	ZoneType           string  `form:"zoneType"` // Airport, City
	DayType            string  `form:"dayType"`
	DayPart            string  `form:"dayPart"`
	TripLengthType     string  `form:"tripLengthType"`
	MinTripsPerDayHour float64 `form:"minTripsPerDayHour"`
	SortBy             string  `form:"sortBy"`
	Limit              int     `form:"limit"`
}
