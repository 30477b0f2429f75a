package trips

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stationator.nl/internal/clock"
	"stationator.nl/internal/logging"
	"stationator.nl/internal/metrics"
)

// DefaultPrewarmInterval is how often the cache is refreshed.
const DefaultPrewarmInterval = 5 * time.Minute

// prewarmFetchTimeout bounds one full warm cycle.
const prewarmFetchTimeout = 30 * time.Second

// cacheClearer is the slice of the fetch cache the prewarmer needs.
type cacheClearer interface {
	Clear()
}

// Prewarmer periodically refreshes the fetch cache so page loads hit warm
// data: each cycle clears the cache atomically, then fetches trips for
// "now" and "now+1h" in both commute directions. It runs independently of
// user-triggered fetches and never blocks them; warm failures are logged,
// not fatal.
type Prewarmer struct {
	service      *Service
	cache        cacheClearer
	clk          clock.Clock
	interval     time.Duration
	logger       *slog.Logger
	metrics      *metrics.Metrics
	shutdownChan chan struct{}
	wg           sync.WaitGroup
}

// NewPrewarmer creates a prewarmer; interval <= 0 selects the default.
func NewPrewarmer(service *Service, cache cacheClearer, clk clock.Clock, interval time.Duration, logger *slog.Logger, m *metrics.Metrics) *Prewarmer {
	if interval <= 0 {
		interval = DefaultPrewarmInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Prewarmer{
		service:      service,
		cache:        cache,
		clk:          clk,
		interval:     interval,
		logger:       logger.With(slog.String("component", "trip_prewarmer")),
		metrics:      m,
		shutdownChan: make(chan struct{}),
	}
}

// Start launches the background refresh loop. The first cycle runs
// immediately so the cache is warm before the first page view.
func (p *Prewarmer) Start() {
	p.wg.Add(1)
	go p.run()
}

// Stop signals the loop to exit and waits for it.
func (p *Prewarmer) Stop() {
	close(p.shutdownChan)
	p.wg.Wait()
}

func (p *Prewarmer) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	firstRun := time.After(0)

	for {
		select {
		case <-firstRun:
			p.warmCycle()
		case <-ticker.C:
			p.warmCycle()
		case <-p.shutdownChan:
			logging.LogOperation(p.logger, "shutting_down_prewarmer")
			return
		}
	}
}

// warmCycle clears the cache and re-fetches the near-term commute windows.
// The clear is an atomic swap, so requests racing with it see either the
// previous generation or freshly-fetched entries.
func (p *Prewarmer) warmCycle() {
	logging.LogOperation(p.logger, "prewarming_trip_cache")
	p.cache.Clear()

	ctx, cancel := context.WithTimeout(context.Background(), prewarmFetchTimeout)
	defer cancel()

	now := clock.NowInAmsterdam(p.clk, clock.NoHourOverride, true)

	for _, at := range []time.Time{now, now.Add(time.Hour)} {
		for direction := range p.service.directions {
			if _, err := p.service.ListTrips(ctx, direction, at); err != nil {
				if p.metrics != nil {
					p.metrics.PrewarmErrorsTotal.Inc()
				}
				logging.LogError(p.logger, "prewarm fetch failed", err,
					slog.String("direction", direction),
					slog.Time("at", at))
			}
		}
	}

	if p.metrics != nil {
		p.metrics.PrewarmCyclesTotal.Inc()
	}
}
