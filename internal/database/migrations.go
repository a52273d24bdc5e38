package database

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the full schema, compiled in and applied in order.
// Derived tables are fully replaced on every pipeline run, so no
// migration ever needs to reshape existing derived data.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_raw_store",
		SQL: `
		CREATE TABLE IF NOT EXISTS taxi_zones (
			location_id INTEGER PRIMARY KEY,
			zone TEXT NOT NULL,
			borough TEXT NOT NULL,
			service_zone TEXT
		);

		CREATE TABLE IF NOT EXISTS raw_trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			vendor_id TEXT,
			tpep_pickup_datetime TEXT,
			tpep_dropoff_datetime TEXT,
			passenger_count TEXT,
			trip_distance TEXT,
			ratecode_id TEXT,
			store_and_fwd_flag TEXT,
			pu_location_id TEXT,
			do_location_id TEXT,
			payment_type TEXT,
			fare_amount TEXT,
			extra TEXT,
			mta_tax TEXT,
			tip_amount TEXT,
			tolls_amount TEXT,
			improvement_surcharge TEXT,
			total_amount TEXT,
			congestion_surcharge TEXT,
			airport_fee TEXT
		);
		`,
	},
	{
		Version: 2,
		Name:    "create_clean_trips",
		SQL: `
		CREATE TABLE IF NOT EXISTS clean_trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			vendor_id TEXT,
			pickup_datetime TIMESTAMP NOT NULL,
			dropoff_datetime TIMESTAMP NOT NULL,
			passenger_count INTEGER,
			trip_distance REAL NOT NULL,
			fare_amount REAL NOT NULL,
			payment_type TEXT,
			pu_location_id INTEGER NOT NULL,
			do_location_id INTEGER NOT NULL,
			pu_zone TEXT NOT NULL,
			pu_borough TEXT NOT NULL,
			do_zone TEXT NOT NULL,
			do_borough TEXT NOT NULL,
			trip_duration_min REAL NOT NULL,
			pickup_weekday INTEGER NOT NULL,
			pickup_hour INTEGER NOT NULL,
			pickup_date TEXT NOT NULL,
			day_type TEXT NOT NULL,
			day_part TEXT NOT NULL,
			trip_length_type TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_clean_trips_bucket
			ON clean_trips (pickup_weekday, pickup_hour, pu_zone);
		`,
	},
	{
		Version: 3,
		Name:    "create_aggregates",
		SQL: `
		CREATE TABLE IF NOT EXISTS trip_aggregates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			grouping TEXT NOT NULL,
			pickup_weekday INTEGER NOT NULL,
			pickup_hour INTEGER NOT NULL,
			pu_zone TEXT NOT NULL,
			day_type TEXT NOT NULL DEFAULT '',
			day_part TEXT NOT NULL DEFAULT '',
			trip_length_type TEXT NOT NULL DEFAULT '',
			total_trips INTEGER NOT NULL,
			active_days INTEGER NOT NULL,
			avg_trips_per_day_hour REAL NOT NULL,
			avg_trip_duration_min REAL NOT NULL,
			avg_minutes_per_mile REAL NOT NULL,
			total_fare REAL NOT NULL,
			total_duration_min REAL NOT NULL,
			earnings_per_hour REAL,
			trip_duration_volatility_min REAL
		);

		CREATE INDEX IF NOT EXISTS idx_trip_aggregates_grouping
			ON trip_aggregates (grouping, pickup_weekday, pickup_hour);

		CREATE TABLE IF NOT EXISTS dashboard_stats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pickup_weekday INTEGER NOT NULL,
			weekday_name TEXT NOT NULL,
			pickup_hour INTEGER NOT NULL,
			pu_zone TEXT NOT NULL,
			zone_type TEXT NOT NULL,
			day_type TEXT NOT NULL,
			day_part TEXT NOT NULL,
			trip_length_type TEXT NOT NULL,
			total_trips INTEGER NOT NULL,
			active_days INTEGER NOT NULL,
			avg_trips_per_day_hour REAL NOT NULL,
			avg_trip_duration_min REAL NOT NULL,
			avg_minutes_per_mile REAL NOT NULL,
			total_fare REAL NOT NULL,
			total_duration_min REAL NOT NULL,
			earnings_per_hour REAL,
			trip_duration_volatility_min REAL
		);

		CREATE INDEX IF NOT EXISTS idx_dashboard_stats_bucket
			ON dashboard_stats (pickup_weekday, pickup_hour, zone_type);
		`,
	},
	{
		Version: 4,
		Name:    "create_pipeline_runs",
		SQL: `
		CREATE TABLE IF NOT EXISTS pipeline_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			status TEXT NOT NULL,
			raw_rows INTEGER NOT NULL DEFAULT 0,
			duplicates_removed INTEGER NOT NULL DEFAULT 0,
			invalid_timestamp INTEGER NOT NULL DEFAULT 0,
			invalid_fare INTEGER NOT NULL DEFAULT 0,
			invalid_distance INTEGER NOT NULL DEFAULT 0,
			zone_mismatch INTEGER NOT NULL DEFAULT 0,
			clean_rows INTEGER NOT NULL DEFAULT 0,
			enriched_rows INTEGER NOT NULL DEFAULT 0,
			bucket_rows INTEGER NOT NULL DEFAULT 0,
			dashboard_rows INTEGER NOT NULL DEFAULT 0,
			error_message TEXT,
			started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			completed_at TIMESTAMP
		);
		`,
	},
}

// InitMigrationsTable creates the migrations tracking table
func InitMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// applyMigration applies a single migration inside a transaction
func applyMigration(db *sql.DB, migration Migration) error {
	return Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(migration.SQL); err != nil {
			return fmt.Errorf("failed to execute migration %d: %w", migration.Version, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)",
			migration.Version, migration.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}
		return nil
	})
}

// RunMigrations applies all pending migrations in version order
func RunMigrations(db *sql.DB) error {
	if err := InitMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}
		if err := applyMigration(db, migration); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"version": migration.Version,
			"name":    migration.Name,
		}).Info("applied migration")
	}

	return nil
}
