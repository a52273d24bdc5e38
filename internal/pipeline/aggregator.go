package pipeline

import (
	"sort"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/stats"
)

// bucketKey is one distinct combination of grouping dimensions. The
// optional dimensions stay empty for groupings that do not use them,
// so keys from different groupings never collide within one fold.
type bucketKey struct {
	weekday    int
	hour       int
	zone       string
	dayType    string
	dayPart    string
	lengthType string
}

func keyFor(g models.Grouping, t models.EnrichedTrip) bucketKey {
	key := bucketKey{
		weekday: t.PickupWeekday,
		hour:    t.PickupHour,
		zone:    t.PUZone,
	}
	if g == models.GroupingZoneHourDayPart || g == models.GroupingFull {
		key.dayType = t.DayType
		key.dayPart = t.DayPart
	}
	if g == models.GroupingFull {
		key.lengthType = t.TripLengthType
	}
	return key
}

// accumulator collects the raw aggregates a bucket needs before any
// ratio is derived: trip count with duration moments, pooled fare,
// per-trip duration/distance ratios, and the set of calendar dates.
type accumulator struct {
	duration stats.Moments
	sumFare  float64
	ratioSum float64
	ratioN   int64
	dates    map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{dates: make(map[string]struct{})}
}

func (a *accumulator) add(t models.EnrichedTrip) {
	a.duration.Add(t.TripDurationMin)
	a.sumFare += t.FareAmount
	// Distance is guaranteed positive for clean trips; the guard keeps
	// a zero from ever producing an undefined per-trip ratio.
	if t.TripDistance > 0 {
		a.ratioSum += t.TripDurationMin / t.TripDistance
		a.ratioN++
	}
	a.dates[t.PickupDate] = struct{}{}
}

// merge folds another partition's accumulator into a. Spread is later
// derived from the combined moments, never from per-partition results.
func (a *accumulator) merge(other *accumulator) {
	a.duration.Merge(other.duration)
	a.sumFare += other.sumFare
	a.ratioSum += other.ratioSum
	a.ratioN += other.ratioN
	for d := range other.dates {
		a.dates[d] = struct{}{}
	}
}

// Aggregate groups the enriched trips by the given grouping and
// derives the bucket metrics. Buckets are only materialized for keys
// that saw at least one trip. Internal accumulation keeps full
// precision; rounding belongs to the presentation layer.
func Aggregate(trips []models.EnrichedTrip, g models.Grouping) []models.AggregateBucket {
	return buckets(g, fold(trips, g))
}

// AggregatePartitioned applies the fold independently per partition
// and combines the partial accumulators before deriving metrics. The
// result is identical to a single-pass Aggregate over the
// concatenation of all partitions.
func AggregatePartitioned(partitions [][]models.EnrichedTrip, g models.Grouping) []models.AggregateBucket {
	combined := make(map[bucketKey]*accumulator)
	for _, part := range partitions {
		for key, acc := range fold(part, g) {
			if existing, ok := combined[key]; ok {
				existing.merge(acc)
			} else {
				combined[key] = acc
			}
		}
	}
	return buckets(g, combined)
}

func fold(trips []models.EnrichedTrip, g models.Grouping) map[bucketKey]*accumulator {
	accs := make(map[bucketKey]*accumulator)
	for _, t := range trips {
		key := keyFor(g, t)
		acc, ok := accs[key]
		if !ok {
			acc = newAccumulator()
			accs[key] = acc
		}
		acc.add(t)
	}
	return accs
}

func buckets(g models.Grouping, accs map[bucketKey]*accumulator) []models.AggregateBucket {
	out := make([]models.AggregateBucket, 0, len(accs))
	for key, acc := range accs {
		out = append(out, deriveBucket(g, key, acc))
	}

	// Map iteration order is random; a deterministic order keeps
	// repeated runs byte-identical.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PickupWeekday != b.PickupWeekday {
			return a.PickupWeekday < b.PickupWeekday
		}
		if a.PickupHour != b.PickupHour {
			return a.PickupHour < b.PickupHour
		}
		if a.PUZone != b.PUZone {
			return a.PUZone < b.PUZone
		}
		if a.DayType != b.DayType {
			return a.DayType < b.DayType
		}
		if a.DayPart != b.DayPart {
			return a.DayPart < b.DayPart
		}
		return a.TripLengthType < b.TripLengthType
	})

	return out
}

func deriveBucket(g models.Grouping, key bucketKey, acc *accumulator) models.AggregateBucket {
	b := models.AggregateBucket{
		Grouping:       g,
		PickupWeekday:  key.weekday,
		PickupHour:     key.hour,
		PUZone:         key.zone,
		DayType:        key.dayType,
		DayPart:        key.dayPart,
		TripLengthType: key.lengthType,

		TotalTrips:         acc.duration.Count,
		ActiveDays:         int64(len(acc.dates)),
		AvgTripDurationMin: acc.duration.Mean(),
		TotalFare:          acc.sumFare,
		TotalDurationMin:   acc.duration.Sum,
	}

	// A bucket exists only because at least one trip landed in it, so
	// it always has at least one active date.
	b.AvgTripsPerDayHour = float64(b.TotalTrips) / float64(b.ActiveDays)

	if acc.ratioN > 0 {
		b.AvgMinutesPerMile = acc.ratioSum / float64(acc.ratioN)
	}

	// Pooled rate: total revenue over total billed hours. Undefined
	// when no duration was billed; never reported as zero or infinity.
	if acc.duration.Sum > 0 {
		eph := acc.sumFare / (acc.duration.Sum / 60)
		b.EarningsPerHour = &eph
	}

	// Sample deviation needs at least two trips.
	if acc.duration.Count >= 2 {
		vol := acc.duration.SampleStdDev()
		b.VolatilityMin = &vol
	}

	return b
}
