package models

import "time"

// CleanTrip is a raw trip that has been deduplicated, typed, validated
// and joined to the zone reference on both ends.
//
// Invariants: FareAmount > 0, TripDistance > 0, Dropoff strictly after
// Pickup, and both location ids resolved to a known zone. The set is
// fully recomputed on every pipeline run, never updated in place.
type CleanTrip struct {
	ID int64 `json:"id" db:"id"`

	VendorID        string    `json:"vendor_id" db:"vendor_id"`
	PickupDatetime  time.Time `json:"pickup_datetime" db:"pickup_datetime"`
	DropoffDatetime time.Time `json:"dropoff_datetime" db:"dropoff_datetime"`
	PassengerCount  int       `json:"passenger_count" db:"passenger_count"`
	TripDistance    float64   `json:"trip_distance" db:"trip_distance"`
	FareAmount      float64   `json:"fare_amount" db:"fare_amount"`
	PaymentType     string    `json:"payment_type,omitempty" db:"payment_type"`

	PULocationID int64  `json:"pu_location_id" db:"pu_location_id"`
	DOLocationID int64  `json:"do_location_id" db:"do_location_id"`
	PUZone       string `json:"pu_zone" db:"pu_zone"`
	PUBorough    string `json:"pu_borough" db:"pu_borough"`
	DOZone       string `json:"do_zone" db:"do_zone"`
	DOBorough    string `json:"do_borough" db:"do_borough"`

	// Dropoff minus pickup in whole minutes
	TripDurationMin float64 `json:"trip_duration_min" db:"trip_duration_min"`
}

// Day type constants
const (
	DayTypeWeekend = "Weekend"
	DayTypeWeekday = "Weekday"
)

// Day part constants
const (
	DayPartMorning   = "Morning"
	DayPartAfternoon = "Afternoon"
	DayPartEvening   = "Evening"
	DayPartNight     = "Night"
)

// Trip length constants
const (
	TripLengthShort  = "Short"
	TripLengthMedium = "Medium"
	TripLengthLong   = "Long"
)

// EnrichedTrip is a CleanTrip plus derived calendar and category
// attributes. It is a pure function of the CleanTrip fields and adds
// no invariants of its own.
type EnrichedTrip struct {
	CleanTrip

	// Sunday=1 .. Saturday=7; weekend is {1,7}
	PickupWeekday int `json:"pickup_weekday" db:"pickup_weekday"`
	// Wall-clock hour of the pickup, 0-23
	PickupHour int `json:"pickup_hour" db:"pickup_hour"`
	// Calendar date of the pickup, YYYY-MM-DD
	PickupDate string `json:"pickup_date" db:"pickup_date"`

	DayType        string `json:"day_type" db:"day_type"`
	DayPart        string `json:"day_part" db:"day_part"`
	TripLengthType string `json:"trip_length_type" db:"trip_length_type"`
}
