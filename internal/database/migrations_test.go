package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// testDB opens an in-memory database on a single connection. Each
// pooled connection would otherwise see its own empty :memory: schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := testDB(t)
	require.NoError(t, RunMigrations(db))

	for _, table := range []string{
		"taxi_zones", "raw_trips", "clean_trips",
		"trip_aggregates", "dashboard_stats", "pipeline_runs",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := testDB(t)
	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, len(migrations), count)
}

func TestTransactionCommit(t *testing.T) {
	db := testDB(t)
	require.NoError(t, RunMigrations(db))

	err := Transaction(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO taxi_zones (location_id, zone, borough) VALUES (1, 'Newark Airport', 'EWR')")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM taxi_zones").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestTransactionRollbackOnError(t *testing.T) {
	db := testDB(t)
	require.NoError(t, RunMigrations(db))

	boom := errors.New("boom")
	err := Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			"INSERT INTO taxi_zones (location_id, zone, borough) VALUES (1, 'Newark Airport', 'EWR')"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM taxi_zones").Scan(&count))
	assert.Equal(t, 0, count, "failed transaction leaves no rows behind")
}
