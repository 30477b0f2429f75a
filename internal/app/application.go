package app

import (
	"log/slog"

	"stationator.nl/internal/appconf"
	"stationator.nl/internal/clock"
	"stationator.nl/internal/metrics"
	"stationator.nl/internal/nsapi"
	"stationator.nl/internal/prefs"
	"stationator.nl/internal/trips"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	Clock     clock.Clock
	Metrics   *metrics.Metrics
	Trips     *trips.Service
	TripCache *nsapi.Cache
	Prefs     *prefs.Store
}
