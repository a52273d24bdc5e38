package models

// RawTrip represents one ingested trip record exactly as received.
// All fields are kept as strings; nothing is validated or parsed at
// this stage. Raw rows are immutable and retained as the audit trail
// for every pipeline run.
type RawTrip struct {
	ID int64 `json:"id" db:"id"`

	VendorID             string `json:"vendor_id" db:"vendor_id"`
	PickupDatetime       string `json:"tpep_pickup_datetime" db:"tpep_pickup_datetime"`
	DropoffDatetime      string `json:"tpep_dropoff_datetime" db:"tpep_dropoff_datetime"`
	PassengerCount       string `json:"passenger_count" db:"passenger_count"`
	TripDistance         string `json:"trip_distance" db:"trip_distance"`
	RatecodeID           string `json:"ratecode_id" db:"ratecode_id"`
	StoreAndFwdFlag      string `json:"store_and_fwd_flag" db:"store_and_fwd_flag"`
	PULocationID         string `json:"pu_location_id" db:"pu_location_id"`
	DOLocationID         string `json:"do_location_id" db:"do_location_id"`
	PaymentType          string `json:"payment_type" db:"payment_type"`
	FareAmount           string `json:"fare_amount" db:"fare_amount"`
	Extra                string `json:"extra" db:"extra"`
	MTATax               string `json:"mta_tax" db:"mta_tax"`
	TipAmount            string `json:"tip_amount" db:"tip_amount"`
	TollsAmount          string `json:"tolls_amount" db:"tolls_amount"`
	ImprovementSurcharge string `json:"improvement_surcharge" db:"improvement_surcharge"`
	TotalAmount          string `json:"total_amount" db:"total_amount"`
	CongestionSurcharge  string `json:"congestion_surcharge" db:"congestion_surcharge"`
	AirportFee           string `json:"airport_fee" db:"airport_fee"`
}
