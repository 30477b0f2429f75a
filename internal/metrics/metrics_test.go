package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	assert.NotNil(t, m.Registry)
	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.TripFetchesTotal)
	assert.NotNil(t, m.TripCacheHitsTotal)
	assert.NotNil(t, m.PrewarmCyclesTotal)
	assert.NotNil(t, m.PrewarmErrorsTotal)
}

func TestTripFetchCounters(t *testing.T) {
	m := New()

	m.TripFetchesTotal.WithLabelValues("asdz", "laa", "success").Inc()
	m.TripFetchesTotal.WithLabelValues("asdz", "laa", "success").Inc()
	m.TripFetchesTotal.WithLabelValues("gvc", "asd", "error").Inc()
	m.TripCacheHitsTotal.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TripFetchesTotal.WithLabelValues("asdz", "laa", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TripFetchesTotal.WithLabelValues("gvc", "asd", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TripCacheHitsTotal))
}

func TestRegistryGathersAllMetricFamilies(t *testing.T) {
	m := New()

	// Counters without observations are not exported, so record one of each
	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/trips/{direction}", "200").Inc()
	m.HTTPRequestDuration.WithLabelValues("GET", "/api/trips/{direction}").Observe(0.05)
	m.TripFetchesTotal.WithLabelValues("asdz", "gvc", "success").Inc()
	m.TripCacheHitsTotal.Inc()
	m.PrewarmCyclesTotal.Inc()
	m.PrewarmErrorsTotal.Inc()

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}

	expected := []string{
		"stationator_http_requests_total",
		"stationator_http_request_duration_seconds",
		"stationator_trip_fetches_total",
		"stationator_trip_cache_hits_total",
		"stationator_prewarm_cycles_total",
		"stationator_prewarm_errors_total",
	}
	for _, name := range expected {
		assert.True(t, names[name], "expected metric family %s", name)
	}
}
