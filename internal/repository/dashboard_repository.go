package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// DashboardRepository handles database operations for the dashboard
// view
type DashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// ReplaceAll replaces the dashboard view inside an existing refresh
// transaction
func (r *DashboardRepository) ReplaceAll(tx *sql.Tx, rows []models.DashboardRow) error {
	if _, err := tx.Exec("DELETE FROM dashboard_stats"); err != nil {
		return fmt.Errorf("failed to clear dashboard_stats: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO dashboard_stats (
		pickup_weekday, weekday_name, pickup_hour, pu_zone, zone_type,
		day_type, day_part, trip_length_type,
		total_trips, active_days, avg_trips_per_day_hour,
		avg_trip_duration_min, avg_minutes_per_mile,
		total_fare, total_duration_min,
		earnings_per_hour, trip_duration_volatility_min
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare dashboard insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.Exec(
			row.PickupWeekday, row.WeekdayName, row.PickupHour, row.PUZone, row.ZoneType,
			row.DayType, row.DayPart, row.TripLengthType,
			row.TotalTrips, row.ActiveDays, row.AvgTripsPerDayHour,
			row.AvgTripDurationMin, row.AvgMinutesPerMile,
			row.TotalFare, row.TotalDurationMin,
			nullableFloat(row.EarningsPerHour), nullableFloat(row.VolatilityMin),
		)
		if err != nil {
			return fmt.Errorf("failed to insert dashboard row: %w", err)
		}
	}

	return nil
}

// Query retrieves dashboard rows matching the filter
func (r *DashboardRepository) Query(filter models.DashboardFilter) ([]models.DashboardRow, error) {
	query := `SELECT id, pickup_weekday, weekday_name, pickup_hour, pu_zone, zone_type,
		day_type, day_part, trip_length_type,
		total_trips, active_days, avg_trips_per_day_hour,
		avg_trip_duration_min, avg_minutes_per_mile,
		total_fare, total_duration_min,
		earnings_per_hour, trip_duration_volatility_min
		FROM dashboard_stats`

	var conditions []string
	var args []interface{}

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
	if filter.ZoneType != "" {
		conditions = append(conditions, "zone_type = ?")
		args = append(args, filter.ZoneType)
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

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += orderClause(filter.SortBy)

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard: %w", err)
	}
	defer rows.Close()

	var result []models.DashboardRow
	for rows.Next() {
		var row models.DashboardRow
		var earnings, volatility sql.NullFloat64

		err := rows.Scan(
			&row.ID, &row.PickupWeekday, &row.WeekdayName, &row.PickupHour, &row.PUZone, &row.ZoneType,
			&row.DayType, &row.DayPart, &row.TripLengthType,
			&row.TotalTrips, &row.ActiveDays, &row.AvgTripsPerDayHour,
			&row.AvgTripDurationMin, &row.AvgMinutesPerMile,
			&row.TotalFare, &row.TotalDurationMin,
			&earnings, &volatility,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dashboard row: %w", err)
		}

		if earnings.Valid {
			row.EarningsPerHour = &earnings.Float64
		}
		if volatility.Valid {
			row.VolatilityMin = &volatility.Float64
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
