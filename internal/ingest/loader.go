// Package ingest loads the two delimited inputs: TLC trip records and
// the taxi zone reference. An unreadable source is fatal to the run;
// malformed values inside a readable file are the cleaner's problem,
// not the loader's.
package ingest

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// Trip file column names as shipped by the TLC exports
const (
	colVendorID             = "VendorID"
	colPickupDatetime       = "tpep_pickup_datetime"
	colDropoffDatetime      = "tpep_dropoff_datetime"
	colPassengerCount       = "passenger_count"
	colTripDistance         = "trip_distance"
	colRatecodeID           = "RatecodeID"
	colStoreAndFwdFlag      = "store_and_fwd_flag"
	colPULocationID         = "PULocationID"
	colDOLocationID         = "DOLocationID"
	colPaymentType          = "payment_type"
	colFareAmount           = "fare_amount"
	colExtra                = "extra"
	colMTATax               = "mta_tax"
	colTipAmount            = "tip_amount"
	colTollsAmount          = "tolls_amount"
	colImprovementSurcharge = "improvement_surcharge"
	colTotalAmount          = "total_amount"
	colCongestionSurcharge  = "congestion_surcharge"
	colAirportFee           = "airport_fee"
)

// Zone file column names
const (
	colLocationID  = "LocationID"
	colBorough     = "Borough"
	colZone        = "Zone"
	colServiceZone = "service_zone"
)

// LoadTrips reads the trip records file into raw rows. Every field
// stays a string; the header row is required and data starts at row 2.
func LoadTrips(path string) ([]models.RawTrip, error) {
	records, index, err := readDelimited(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip records: %w", err)
	}

	for _, required := range []string{
		colPickupDatetime, colDropoffDatetime, colTripDistance,
		colFareAmount, colPULocationID, colDOLocationID,
	} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("trip records %s: missing required column %q", path, required)
		}
	}

	field := func(row []string, name string) string {
		if i, ok := index[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	trips := make([]models.RawTrip, 0, len(records))
	for _, row := range records {
		trips = append(trips, models.RawTrip{
			VendorID:             field(row, colVendorID),
			PickupDatetime:       field(row, colPickupDatetime),
			DropoffDatetime:      field(row, colDropoffDatetime),
			PassengerCount:       field(row, colPassengerCount),
			TripDistance:         field(row, colTripDistance),
			RatecodeID:           field(row, colRatecodeID),
			StoreAndFwdFlag:      field(row, colStoreAndFwdFlag),
			PULocationID:         field(row, colPULocationID),
			DOLocationID:         field(row, colDOLocationID),
			PaymentType:          field(row, colPaymentType),
			FareAmount:           field(row, colFareAmount),
			Extra:                field(row, colExtra),
			MTATax:               field(row, colMTATax),
			TipAmount:            field(row, colTipAmount),
			TollsAmount:          field(row, colTollsAmount),
			ImprovementSurcharge: field(row, colImprovementSurcharge),
			TotalAmount:          field(row, colTotalAmount),
			CongestionSurcharge:  field(row, colCongestionSurcharge),
			AirportFee:           field(row, colAirportFee),
		})
	}

	return trips, nil
}

// LoadZones reads the zone reference file. Rows whose location id does
// not parse are skipped; trips pointing at them will surface as zone
// mismatches in the cleaner diagnostics.
func LoadZones(path string) ([]models.TaxiZone, error) {
	records, index, err := readDelimited(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load zone reference: %w", err)
	}

	for _, required := range []string{colLocationID, colZone, colBorough} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("zone reference %s: missing required column %q", path, required)
		}
	}

	field := func(row []string, name string) string {
		if i, ok := index[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	zones := make([]models.TaxiZone, 0, len(records))
	for _, row := range records {
		id, err := strconv.ParseInt(field(row, colLocationID), 10, 64)
		if err != nil {
			continue
		}
		zones = append(zones, models.TaxiZone{
			LocationID:  id,
			Zone:        field(row, colZone),
			Borough:     field(row, colBorough),
			ServiceZone: field(row, colServiceZone),
		})
	}

	return zones, nil
}

// readDelimited loads a headered CSV into string records plus a
// column-name index. Everything is read as string series so that no
// value is coerced before the cleaner sees it.
func readDelimited(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, df.Err)
	}

	index := make(map[string]int, len(df.Names()))
	for i, name := range df.Names() {
		index[strings.TrimSpace(name)] = i
	}

	// Records() repeats the header as its first row
	records := df.Records()
	if len(records) > 0 {
		records = records[1:]
	}

	return records, index, nil
}
