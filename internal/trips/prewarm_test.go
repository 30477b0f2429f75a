package trips

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stationator.nl/internal/clock"
	"stationator.nl/internal/metrics"
	"stationator.nl/internal/nsapi"
)

type fakeCache struct {
	mu     sync.Mutex
	clears int
}

func (c *fakeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clears++
}

func (c *fakeCache) clearCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clears
}

func emptyResponsesForAllPairs() map[string][]nsapi.RawTrip {
	responses := make(map[string][]nsapi.RawTrip)
	for _, pairs := range DefaultDirections() {
		for _, pair := range pairs {
			responses[pair.Origin+"-"+pair.Destination] = nil
		}
	}
	return responses
}

func TestWarmCycle_ClearsThenWarmsBothDirections(t *testing.T) {
	fetcher := &fakeFetcher{responses: emptyResponsesForAllPairs()}
	cache := &fakeCache{}
	clk := clock.NewMockClock(time.Date(2024, 1, 15, 7, 12, 0, 0, time.UTC))
	m := metrics.New()

	service := NewService(fetcher, nil, nil)
	prewarmer := NewPrewarmer(service, cache, clk, time.Minute, nil, m)

	prewarmer.warmCycle()

	assert.Equal(t, 1, cache.clearCount(), "each cycle starts with an atomic cache clear")
	// 2 directions x 4 pairs x 2 windows (now, now+1h)
	assert.Equal(t, 16, fetcher.callCount())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PrewarmCyclesTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.PrewarmErrorsTotal))
}

func TestWarmCycle_FailuresAreCountedNotFatal(t *testing.T) {
	fetcher := &fakeFetcher{
		responses: emptyResponsesForAllPairs(),
		errs: map[string]error{
			"laa-asdz": &nsapi.FetchError{URL: "http://example.test", StatusCode: 503, Body: "down"},
		},
	}
	cache := &fakeCache{}
	clk := clock.NewMockClock(time.Date(2024, 1, 15, 7, 12, 0, 0, time.UTC))
	m := metrics.New()

	service := NewService(fetcher, nil, nil)
	prewarmer := NewPrewarmer(service, cache, clk, time.Minute, nil, m)

	prewarmer.warmCycle()

	// Both the "now" and "now+1h" work aggregations fail on the bad pair.
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PrewarmErrorsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PrewarmCyclesTotal), "the cycle itself still completes")
}

func TestPrewarmer_StartRunsImmediatelyAndStops(t *testing.T) {
	fetcher := &fakeFetcher{responses: emptyResponsesForAllPairs()}
	cache := &fakeCache{}
	clk := clock.NewMockClock(time.Date(2024, 1, 15, 7, 12, 0, 0, time.UTC))

	service := NewService(fetcher, nil, nil)
	prewarmer := NewPrewarmer(service, cache, clk, time.Hour, nil, nil)

	prewarmer.Start()

	// The first cycle runs at startup, not after the first tick.
	require.Eventually(t, func() bool {
		return fetcher.callCount() == 16
	}, 2*time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		prewarmer.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("prewarmer did not stop promptly")
	}
}
