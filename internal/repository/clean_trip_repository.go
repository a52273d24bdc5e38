package repository

import (
	"database/sql"
	"fmt"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// CleanTripRepository handles database operations for the clean trip
// set. Rows are stored with their enrichment columns so the table is
// directly queryable by the grouping dimensions.
type CleanTripRepository struct {
	db *sql.DB
}

// NewCleanTripRepository creates a new clean trip repository
func NewCleanTripRepository(db *sql.DB) *CleanTripRepository {
	return &CleanTripRepository{db: db}
}

// ReplaceAll replaces the clean trip set inside an existing refresh
// transaction
func (r *CleanTripRepository) ReplaceAll(tx *sql.Tx, trips []models.EnrichedTrip) error {
	if _, err := tx.Exec("DELETE FROM clean_trips"); err != nil {
		return fmt.Errorf("failed to clear clean_trips: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO clean_trips (
		vendor_id, pickup_datetime, dropoff_datetime, passenger_count,
		trip_distance, fare_amount, payment_type,
		pu_location_id, do_location_id, pu_zone, pu_borough, do_zone, do_borough,
		trip_duration_min, pickup_weekday, pickup_hour, pickup_date,
		day_type, day_part, trip_length_type
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare clean trip insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trips {
		_, err := stmt.Exec(
			t.VendorID, t.PickupDatetime, t.DropoffDatetime, t.PassengerCount,
			t.TripDistance, t.FareAmount, t.PaymentType,
			t.PULocationID, t.DOLocationID, t.PUZone, t.PUBorough, t.DOZone, t.DOBorough,
			t.TripDurationMin, t.PickupWeekday, t.PickupHour, t.PickupDate,
			t.DayType, t.DayPart, t.TripLengthType,
		)
		if err != nil {
			return fmt.Errorf("failed to insert clean trip: %w", err)
		}
	}

	return nil
}

// GetAll retrieves the full clean trip set in insertion order
func (r *CleanTripRepository) GetAll() ([]models.EnrichedTrip, error) {
	rows, err := r.db.Query(`SELECT
		id, vendor_id, pickup_datetime, dropoff_datetime, passenger_count,
		trip_distance, fare_amount, COALESCE(payment_type, ''),
		pu_location_id, do_location_id, pu_zone, pu_borough, do_zone, do_borough,
		trip_duration_min, pickup_weekday, pickup_hour, pickup_date,
		day_type, day_part, trip_length_type
		FROM clean_trips ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clean trips: %w", err)
	}
	defer rows.Close()

	var trips []models.EnrichedTrip
	for rows.Next() {
		var t models.EnrichedTrip
		err := rows.Scan(
			&t.ID, &t.VendorID, &t.PickupDatetime, &t.DropoffDatetime, &t.PassengerCount,
			&t.TripDistance, &t.FareAmount, &t.PaymentType,
			&t.PULocationID, &t.DOLocationID, &t.PUZone, &t.PUBorough, &t.DOZone, &t.DOBorough,
			&t.TripDurationMin, &t.PickupWeekday, &t.PickupHour, &t.PickupDate,
			&t.DayType, &t.DayPart, &t.TripLengthType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clean trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}

// Count returns the number of clean trips currently stored
func (r *CleanTripRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM clean_trips").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clean trips: %w", err)
	}
	return count, nil
}
