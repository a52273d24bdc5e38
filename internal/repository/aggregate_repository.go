package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// AggregateRepository handles database operations for aggregate
// buckets
type AggregateRepository struct {
	db *sql.DB
}

// NewAggregateRepository creates a new aggregate repository
func NewAggregateRepository(db *sql.DB) *AggregateRepository {
	return &AggregateRepository{db: db}
}

// ReplaceAll replaces all bucket rows inside an existing refresh
// transaction
func (r *AggregateRepository) ReplaceAll(tx *sql.Tx, buckets []models.AggregateBucket) error {
	if _, err := tx.Exec("DELETE FROM trip_aggregates"); err != nil {
		return fmt.Errorf("failed to clear trip_aggregates: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO trip_aggregates (
		grouping, pickup_weekday, pickup_hour, pu_zone,
		day_type, day_part, trip_length_type,
		total_trips, active_days, avg_trips_per_day_hour,
		avg_trip_duration_min, avg_minutes_per_mile,
		total_fare, total_duration_min,
		earnings_per_hour, trip_duration_volatility_min
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare bucket insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range buckets {
		_, err := stmt.Exec(
			string(b.Grouping), b.PickupWeekday, b.PickupHour, b.PUZone,
			b.DayType, b.DayPart, b.TripLengthType,
			b.TotalTrips, b.ActiveDays, b.AvgTripsPerDayHour,
			b.AvgTripDurationMin, b.AvgMinutesPerMile,
			b.TotalFare, b.TotalDurationMin,
			nullableFloat(b.EarningsPerHour), nullableFloat(b.VolatilityMin),
		)
		if err != nil {
			return fmt.Errorf("failed to insert bucket: %w", err)
		}
	}

	return nil
}

// Query retrieves bucket rows matching the filter, thin buckets
// removed by the minimum-support threshold
func (r *AggregateRepository) Query(filter models.AggregateFilter) ([]models.AggregateBucket, error) {
	query := `SELECT id, grouping, pickup_weekday, pickup_hour, pu_zone,
		day_type, day_part, trip_length_type,
		total_trips, active_days, avg_trips_per_day_hour,
		avg_trip_duration_min, avg_minutes_per_mile,
		total_fare, total_duration_min,
		earnings_per_hour, trip_duration_volatility_min
		FROM trip_aggregates`

	conditions := []string{"grouping = ?"}
	grouping := filter.Grouping
	if grouping == "" {
		grouping = string(models.GroupingZoneHour)
	}
	args := []interface{}{grouping}

	if filter.Weekday > 0 {
		conditions = append(conditions, "pickup_weekday = ?")
		args = append(args, filter.Weekday)
	}
	if filter.Hour >= 0 {
		conditions = append(conditions, "pickup_hour = ?")
		args = append(args, filter.Hour)
	}
	if filter.Zone != "" {
		conditions = append(conditions, "pu_zone = ?")
		args = append(args, filter.Zone)
	}
	if filter.DayType != "" {
		conditions = append(conditions, "day_type = ?")
		args = append(args, filter.DayType)
	}
	if filter.DayPart != "" {
		conditions = append(conditions, "day_part = ?")
		args = append(args, filter.DayPart)
	}
	if filter.TripLengthType != "" {
		conditions = append(conditions, "trip_length_type = ?")
		args = append(args, filter.TripLengthType)
	}
	if filter.MinTripsPerDayHour > 0 {
		conditions = append(conditions, "avg_trips_per_day_hour >= ?")
		args = append(args, filter.MinTripsPerDayHour)
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += orderClause(filter.SortBy)

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query aggregates: %w", err)
	}
	defer rows.Close()

	var buckets []models.AggregateBucket
	for rows.Next() {
		b, err := scanBucket(rows)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}

	return buckets, rows.Err()
}

// TotalTrips returns the sum of total_trips over all buckets of a
// grouping (conservation check against the clean trip count)
func (r *AggregateRepository) TotalTrips(grouping models.Grouping) (int64, error) {
	var total int64
	err := r.db.QueryRow(
		"SELECT COALESCE(SUM(total_trips), 0) FROM trip_aggregates WHERE grouping = ?",
		string(grouping),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum bucket trips: %w", err)
	}
	return total, nil
}

func scanBucket(rows *sql.Rows) (models.AggregateBucket, error) {
	var b models.AggregateBucket
	var grouping string
	var earnings, volatility sql.NullFloat64

	err := rows.Scan(
		&b.ID, &grouping, &b.PickupWeekday, &b.PickupHour, &b.PUZone,
		&b.DayType, &b.DayPart, &b.TripLengthType,
		&b.TotalTrips, &b.ActiveDays, &b.AvgTripsPerDayHour,
		&b.AvgTripDurationMin, &b.AvgMinutesPerMile,
		&b.TotalFare, &b.TotalDurationMin,
		&earnings, &volatility,
	)
	if err != nil {
		return b, fmt.Errorf("failed to scan bucket: %w", err)
	}

	b.Grouping = models.Grouping(grouping)
	if earnings.Valid {
		b.EarningsPerHour = &earnings.Float64
	}
	if volatility.Valid {
		b.VolatilityMin = &volatility.Float64
	}

	return b, nil
}

// orderClause maps the caller's ranking intent to a sort. Undefined
// metrics sort last rather than being treated as zero.
func orderClause(sortBy string) string {
	switch sortBy {
	case "earnings":
		return " ORDER BY earnings_per_hour IS NULL, earnings_per_hour DESC"
	case "congestion":
		return " ORDER BY avg_minutes_per_mile DESC"
	case "demand":
		return " ORDER BY avg_trips_per_day_hour DESC"
	default:
		return " ORDER BY pickup_weekday, pickup_hour, pu_zone, day_type, day_part, trip_length_type"
	}
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
