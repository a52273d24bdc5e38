package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

func TestNewRegistersMetrics(t *testing.T) {
	m := New()
	require.NotNil(t, m.Registry)

	// A fresh instance gets its own registry, so parallel instances
	// never collide on registration.
	assert.NotPanics(t, func() { New() })
}

func TestObserveRun(t *testing.T) {
	m := New()

	m.ObserveRun(models.RunStatusCompleted, models.Diagnostics{
		RawRows:           100,
		DuplicatesRemoved: 10,
		InvalidTimestamp:  2,
		InvalidFare:       5,
		InvalidDistance:   3,
		ZoneMismatch:      1,
		CleanRows:         80,
	}, 3*time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues(models.RunStatusCompleted)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues(models.RunStatusFailed)))

	assert.Equal(t, 100.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues(DispositionRaw)))
	assert.Equal(t, 80.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues(DispositionClean)))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues(DispositionDuplicate)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues(DispositionInvalidFare)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues(DispositionZoneMismatch)))
}

func TestObserveRunAccumulates(t *testing.T) {
	m := New()
	diag := models.Diagnostics{RawRows: 10, CleanRows: 8}

	m.ObserveRun(models.RunStatusCompleted, diag, time.Second)
	m.ObserveRun(models.RunStatusFailed, models.Diagnostics{}, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues(models.RunStatusCompleted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues(models.RunStatusFailed)))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues(DispositionRaw)))
}
