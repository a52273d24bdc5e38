package repository

import (
	"database/sql"
	"fmt"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// ZoneRepository handles database operations for the zone reference
type ZoneRepository struct {
	db *sql.DB
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *sql.DB) *ZoneRepository {
	return &ZoneRepository{db: db}
}

// ReplaceAll replaces the zone reference inside an existing refresh
// transaction
func (r *ZoneRepository) ReplaceAll(tx *sql.Tx, zones []models.TaxiZone) error {
	if _, err := tx.Exec("DELETE FROM taxi_zones"); err != nil {
		return fmt.Errorf("failed to clear taxi_zones: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO taxi_zones (location_id, zone, borough, service_zone)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare zone insert: %w", err)
	}
	defer stmt.Close()

	for _, z := range zones {
		if _, err := stmt.Exec(z.LocationID, z.Zone, z.Borough, z.ServiceZone); err != nil {
			return fmt.Errorf("failed to insert zone %d: %w", z.LocationID, err)
		}
	}

	return nil
}

// GetAll retrieves the full zone reference ordered by location id
func (r *ZoneRepository) GetAll() ([]models.TaxiZone, error) {
	rows, err := r.db.Query(`SELECT location_id, zone, borough, COALESCE(service_zone, '')
		FROM taxi_zones ORDER BY location_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	var zones []models.TaxiZone
	for rows.Next() {
		var z models.TaxiZone
		if err := rows.Scan(&z.LocationID, &z.Zone, &z.Borough, &z.ServiceZone); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, z)
	}

	return zones, rows.Err()
}
