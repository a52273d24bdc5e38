package repository

import (
	"database/sql"
	"fmt"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// RawTripRepository handles database operations for the raw store
type RawTripRepository struct {
	db *sql.DB
}

// NewRawTripRepository creates a new raw trip repository
func NewRawTripRepository(db *sql.DB) *RawTripRepository {
	return &RawTripRepository{db: db}
}

// ReplaceAll replaces the raw store inside an existing refresh
// transaction. Raw rows are the audit trail: they are kept verbatim
// and only ever superseded by a full re-ingest.
func (r *RawTripRepository) ReplaceAll(tx *sql.Tx, trips []models.RawTrip) error {
	if _, err := tx.Exec("DELETE FROM raw_trips"); err != nil {
		return fmt.Errorf("failed to clear raw_trips: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO raw_trips (
		vendor_id, tpep_pickup_datetime, tpep_dropoff_datetime,
		passenger_count, trip_distance, ratecode_id, store_and_fwd_flag,
		pu_location_id, do_location_id, payment_type, fare_amount,
		extra, mta_tax, tip_amount, tolls_amount, improvement_surcharge,
		total_amount, congestion_surcharge, airport_fee
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare raw trip insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trips {
		_, err := stmt.Exec(
			t.VendorID, t.PickupDatetime, t.DropoffDatetime,
			t.PassengerCount, t.TripDistance, t.RatecodeID, t.StoreAndFwdFlag,
			t.PULocationID, t.DOLocationID, t.PaymentType, t.FareAmount,
			t.Extra, t.MTATax, t.TipAmount, t.TollsAmount, t.ImprovementSurcharge,
			t.TotalAmount, t.CongestionSurcharge, t.AirportFee,
		)
		if err != nil {
			return fmt.Errorf("failed to insert raw trip: %w", err)
		}
	}

	return nil
}

// GetAll retrieves the full raw store in insertion order
func (r *RawTripRepository) GetAll() ([]models.RawTrip, error) {
	rows, err := r.db.Query(`SELECT
		id, vendor_id, tpep_pickup_datetime, tpep_dropoff_datetime,
		passenger_count, trip_distance, ratecode_id, store_and_fwd_flag,
		pu_location_id, do_location_id, payment_type, fare_amount,
		extra, mta_tax, tip_amount, tolls_amount, improvement_surcharge,
		total_amount, congestion_surcharge, airport_fee
		FROM raw_trips ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw trips: %w", err)
	}
	defer rows.Close()

	var trips []models.RawTrip
	for rows.Next() {
		var t models.RawTrip
		err := rows.Scan(
			&t.ID, &t.VendorID, &t.PickupDatetime, &t.DropoffDatetime,
			&t.PassengerCount, &t.TripDistance, &t.RatecodeID, &t.StoreAndFwdFlag,
			&t.PULocationID, &t.DOLocationID, &t.PaymentType, &t.FareAmount,
			&t.Extra, &t.MTATax, &t.TipAmount, &t.TollsAmount, &t.ImprovementSurcharge,
			&t.TotalAmount, &t.CongestionSurcharge, &t.AirportFee,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan raw trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}

// Count returns the number of raw rows currently stored
func (r *RawTripRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM raw_trips").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count raw trips: %w", err)
	}
	return count, nil
}
