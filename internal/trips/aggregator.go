package trips

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"stationator.nl/internal/nsapi"
)

// Fetcher retrieves raw trip records for one station pair at a given time.
// *nsapi.Client satisfies this; tests substitute fakes.
type Fetcher interface {
	Fetch(ctx context.Context, origin, destination string, at time.Time) ([]nsapi.RawTrip, error)
}

// Service aggregates trips across the station pairs of a direction.
type Service struct {
	fetcher    Fetcher
	directions DirectionTable
	logger     *slog.Logger
}

// NewService creates a trip aggregation service. A nil direction table
// falls back to the default commute configuration.
func NewService(fetcher Fetcher, directions DirectionTable, logger *slog.Logger) *Service {
	if directions == nil {
		directions = DefaultDirections()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fetcher:    fetcher,
		directions: directions,
		logger:     logger.With(slog.String("component", "trip_service")),
	}
}

// ListTrips returns the direct trips for a direction at the given time,
// sorted ascending by departure time. For home/work it fans out one fetch
// per station pair and joins them all before assembling; any pair failing
// fails the whole call, because a partial commute view is misleading. Any
// other direction is served from the bundled sample dataset without
// touching the network.
func (s *Service) ListTrips(ctx context.Context, direction string, at time.Time) ([]Trip, error) {
	pairs, ok := s.directions.Pairs(direction)
	if !ok {
		s.logger.Info("serving sample trips", slog.String("direction", direction))
		raw, err := SampleTrips()
		if err != nil {
			return nil, err
		}
		return s.assemble(raw)
	}

	// Fan out one fetch per pair and wait for all of them. Slots are
	// per-goroutine, so no locking is needed; results stay in pair order.
	results := make([][]nsapi.RawTrip, len(pairs))
	errs := make([]error, len(pairs))

	var wg sync.WaitGroup
	for i, pair := range pairs {
		wg.Add(1)
		go func(i int, pair Pair) {
			defer wg.Done()
			results[i], errs[i] = s.fetcher.Fetch(ctx, pair.Origin, pair.Destination, at)
		}(i, pair)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var raw []nsapi.RawTrip
	for _, records := range results {
		raw = append(raw, records...)
	}

	list, err := s.assemble(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Info("aggregated trips",
		slog.String("direction", direction),
		slog.Time("at", at),
		slog.Int("pairs", len(pairs)),
		slog.Int("trips", len(list)))
	return list, nil
}

// assemble builds each record exactly once, keeps the direct trips, and
// stable-sorts them by departure time so ties preserve concatenation order.
func (s *Service) assemble(raw []nsapi.RawTrip) ([]Trip, error) {
	list := make([]Trip, 0, len(raw))
	for _, record := range raw {
		trip, err := Build(record)
		if err != nil {
			// Malformed records abort the call even if the trip would have
			// been filtered out below.
			return nil, err
		}
		if !trip.Direct() {
			continue
		}
		list = append(list, trip)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].DepartureTime.Before(list[j].DepartureTime)
	})
	return list, nil
}
