package pipeline

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// Timestamp layouts seen in TLC trip exports. The second one shows up
// in files exported through spreadsheet tools.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"01/02/2006 03:04:05 PM",
}

// Cleaner turns the raw store into the clean trip set: deduplicate,
// type, validate, and join both trip ends to the zone reference.
type Cleaner struct {
	zones models.ZoneLookup
}

// NewCleaner creates a cleaner bound to an immutable zone lookup
func NewCleaner(zones models.ZoneLookup) *Cleaner {
	return &Cleaner{zones: zones}
}

// CleanResult is the clean trip set plus the run diagnostics
type CleanResult struct {
	Trips       []models.CleanTrip
	Diagnostics models.Diagnostics
}

// Clean consumes the full raw store and produces the clean trip set.
// Deduplication runs before validity filtering so duplicate detection
// sees every raw value. The pass is deterministic: the same raw input
// always yields the same clean set.
func (c *Cleaner) Clean(raw []models.RawTrip) CleanResult {
	result := CleanResult{
		Diagnostics: models.Diagnostics{RawRows: int64(len(raw))},
	}

	deduped := c.deduplicate(raw, &result.Diagnostics)

	for _, r := range deduped {
		if t, ok := c.validate(r, &result.Diagnostics); ok {
			result.Trips = append(result.Trips, t)
		}
	}

	result.Diagnostics.CleanRows = int64(len(result.Trips))
	return result
}

// deduplicate keeps exactly one row per (pickup ts, dropoff ts, PU,
// DO, fare) group. Group members share the pickup timestamp, so the
// "earliest pickup" rule degenerates to a stable first-seen choice in
// input order.
func (c *Cleaner) deduplicate(raw []models.RawTrip, diag *models.Diagnostics) []models.RawTrip {
	seen := make(map[string]struct{}, len(raw))
	deduped := make([]models.RawTrip, 0, len(raw))

	for _, r := range raw {
		key := strings.Join([]string{
			strings.TrimSpace(r.PickupDatetime),
			strings.TrimSpace(r.DropoffDatetime),
			strings.TrimSpace(r.PULocationID),
			strings.TrimSpace(r.DOLocationID),
			strings.TrimSpace(r.FareAmount),
		}, "\x1f")

		if _, dup := seen[key]; dup {
			diag.DuplicatesRemoved++
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, r)
	}

	return deduped
}

// validate coerces the raw fields and applies the validity filter. A
// field that fails to parse counts as invalid for its category; every
// failing category is counted, so one row can increment several
// counters. Parsing never aborts the run.
func (c *Cleaner) validate(r models.RawTrip, diag *models.Diagnostics) (models.CleanTrip, bool) {
	valid := true

	pickup, pickupOK := parseTimestamp(r.PickupDatetime)
	dropoff, dropoffOK := parseTimestamp(r.DropoffDatetime)
	if !pickupOK || !dropoffOK || !dropoff.After(pickup) {
		diag.InvalidTimestamp++
		valid = false
	}

	fare, fareOK := parseFloat(r.FareAmount)
	if !fareOK || fare <= 0 {
		diag.InvalidFare++
		valid = false
	}

	distance, distOK := parseFloat(r.TripDistance)
	if !distOK || distance <= 0 {
		diag.InvalidDistance++
		valid = false
	}

	puID, puOK := parseInt(r.PULocationID)
	doID, doOK := parseInt(r.DOLocationID)
	var puZone, doZone models.TaxiZone
	if puOK {
		puZone, puOK = c.zones.Resolve(puID)
	}
	if doOK {
		doZone, doOK = c.zones.Resolve(doID)
	}
	if !puOK || !doOK {
		diag.ZoneMismatch++
		valid = false
	}

	if !valid {
		return models.CleanTrip{}, false
	}

	// Passenger count is informational only; a malformed value does
	// not invalidate the trip.
	passengers, _ := parseInt(r.PassengerCount)

	return models.CleanTrip{
		VendorID:        strings.TrimSpace(r.VendorID),
		PickupDatetime:  pickup,
		DropoffDatetime: dropoff,
		PassengerCount:  int(passengers),
		TripDistance:    distance,
		FareAmount:      fare,
		PaymentType:     strings.TrimSpace(r.PaymentType),
		PULocationID:    puID,
		DOLocationID:    doID,
		PUZone:          puZone.Zone,
		PUBorough:       puZone.Borough,
		DOZone:          doZone.Zone,
		DOBorough:       doZone.Borough,
		TripDurationMin: float64(int64(dropoff.Sub(pickup) / time.Minute)),
	}, true
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseFloat rejects NaN and the infinities explicitly: ParseFloat
// accepts the literals "NaN" and "Inf", NaN slips through every
// numeric validity comparison, and +Inf passes a > 0 check outright.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v, err == nil
}
