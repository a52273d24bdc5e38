package models

import "strings"

// TaxiZone maps a TLC location id to a zone name and borough.
// Loaded once at ingest time and treated as static reference data.
type TaxiZone struct {
	LocationID  int64  `json:"location_id" db:"location_id"`
	Zone        string `json:"zone" db:"zone"`
	Borough     string `json:"borough" db:"borough"`
	ServiceZone string `json:"service_zone,omitempty" db:"service_zone"`
}

// Zone type constants used by the dashboard view
const (
	ZoneTypeAirport = "Airport"
	ZoneTypeCity    = "City"
)

// ZoneType classifies a zone name for the dashboard view. Any zone
// whose name mentions an airport is treated as an Airport zone.
func ZoneType(zoneName string) string {
	if strings.Contains(zoneName, "Airport") {
		return ZoneTypeAirport
	}
	return ZoneTypeCity
}

// ZoneLookup is an immutable location-id index over the zone reference.
// It is built once after loading and shared read-only across all
// pipeline stages, so no synchronization is needed.
type ZoneLookup map[int64]TaxiZone

// NewZoneLookup builds the lookup from loaded zone rows. Later rows
// with a repeated location id are ignored; location ids are unique in
// well-formed reference data.
func NewZoneLookup(zones []TaxiZone) ZoneLookup {
	lookup := make(ZoneLookup, len(zones))
	for _, z := range zones {
		if _, ok := lookup[z.LocationID]; !ok {
			lookup[z.LocationID] = z
		}
	}
	return lookup
}

// Resolve returns the zone for a location id.
func (l ZoneLookup) Resolve(locationID int64) (TaxiZone, bool) {
	z, ok := l[locationID]
	return z, ok
}
