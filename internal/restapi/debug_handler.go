package restapi

import (
	"fmt"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"stationator.nl/internal/appconf"
	"stationator.nl/internal/clock"
	"stationator.nl/internal/stations"
	"stationator.nl/internal/trips"
)

// debugHandler dumps a snapshot of runtime state. It is for local
// troubleshooting only and is hidden in production.
func (api *RestAPI) debugHandler(w http.ResponseWriter, r *http.Request) {
	if api.Config.Env == appconf.Production {
		http.NotFound(w, r)
		return
	}

	snapshot := struct {
		Env           string
		Port          int
		RateLimit     int
		AmsterdamTime string
		CachedTrips   int
		Stations      []stations.Station
		Directions    trips.DirectionTable
	}{
		Env:           api.Config.Env.String(),
		Port:          api.Config.Port,
		RateLimit:     api.Config.RateLimit,
		AmsterdamTime: clock.NowInAmsterdam(api.Clock, clock.NoHourOverride, false).String(),
		CachedTrips:   api.TripCache.Len(),
		Stations:      stations.All(),
		Directions:    trips.DefaultDirections(),
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, spew.Sdump(snapshot))
}
