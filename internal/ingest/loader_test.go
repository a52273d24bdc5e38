package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const tripsHeader = "VendorID,tpep_pickup_datetime,tpep_dropoff_datetime,passenger_count,trip_distance,RatecodeID,store_and_fwd_flag,PULocationID,DOLocationID,payment_type,fare_amount,extra,mta_tax,tip_amount,tolls_amount,improvement_surcharge,total_amount,congestion_surcharge,airport_fee\n"

func TestLoadTrips(t *testing.T) {
	path := writeFixture(t, "trips.csv", tripsHeader+
		"1,2023-03-06 08:00:00,2023-03-06 08:15:00,2,2.5,1,N,161,230,1,14.5,0.5,0.5,3,0,0.3,18.8,2.5,0\n"+
		"2,2023-03-06 09:00:00,2023-03-06 09:40:00,1,11.2,1,N,132,161,2,52,0,0.5,0,6.55,0.3,59.35,2.5,1.25\n")

	trips, err := LoadTrips(path)
	require.NoError(t, err)
	require.Len(t, trips, 2)

	assert.Equal(t, "1", trips[0].VendorID)
	assert.Equal(t, "2023-03-06 08:00:00", trips[0].PickupDatetime)
	assert.Equal(t, "2.5", trips[0].TripDistance)
	assert.Equal(t, "14.5", trips[0].FareAmount)
	assert.Equal(t, "161", trips[0].PULocationID)
	assert.Equal(t, "230", trips[0].DOLocationID)
	assert.Equal(t, "52", trips[1].FareAmount)
}

func TestLoadTripsKeepsValuesUncoerced(t *testing.T) {
	// Malformed numbers and timestamps pass through untouched; the
	// cleaner decides what is valid, not the loader.
	path := writeFixture(t, "trips.csv", tripsHeader+
		"1,not-a-date,2023-03-06 08:15:00,2,abc,1,N,161,230,1,-5,0,0,0,0,0,0,0,0\n")

	trips, err := LoadTrips(path)
	require.NoError(t, err)
	require.Len(t, trips, 1)

	assert.Equal(t, "not-a-date", trips[0].PickupDatetime)
	assert.Equal(t, "abc", trips[0].TripDistance)
	assert.Equal(t, "-5", trips[0].FareAmount)
}

func TestLoadTripsMissingFile(t *testing.T) {
	_, err := LoadTrips(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load trip records")
}

func TestLoadTripsMissingRequiredColumn(t *testing.T) {
	path := writeFixture(t, "trips.csv",
		"VendorID,tpep_pickup_datetime,tpep_dropoff_datetime,trip_distance,PULocationID,DOLocationID\n"+
			"1,2023-03-06 08:00:00,2023-03-06 08:15:00,2.5,161,230\n")

	_, err := LoadTrips(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fare_amount")
}

func TestLoadZones(t *testing.T) {
	path := writeFixture(t, "zones.csv",
		"LocationID,Borough,Zone,service_zone\n"+
			"132,Queens,JFK Airport,Airports\n"+
			"161,Manhattan,Midtown Center,Yellow Zone\n")

	zones, err := LoadZones(path)
	require.NoError(t, err)
	require.Len(t, zones, 2)

	assert.Equal(t, int64(132), zones[0].LocationID)
	assert.Equal(t, "JFK Airport", zones[0].Zone)
	assert.Equal(t, "Queens", zones[0].Borough)
	assert.Equal(t, "Yellow Zone", zones[1].ServiceZone)
}

func TestLoadZonesSkipsUnparseableIDs(t *testing.T) {
	path := writeFixture(t, "zones.csv",
		"LocationID,Borough,Zone,service_zone\n"+
			"oops,Queens,Broken Row,\n"+
			"161,Manhattan,Midtown Center,Yellow Zone\n")

	zones, err := LoadZones(path)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, int64(161), zones[0].LocationID)
}

func TestLoadZonesMissingRequiredColumn(t *testing.T) {
	path := writeFixture(t, "zones.csv",
		"LocationID,Borough\n161,Manhattan\n")

	_, err := LoadZones(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Zone")
}
