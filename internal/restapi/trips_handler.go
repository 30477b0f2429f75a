package restapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stationator.nl/internal/clock"
	"stationator.nl/internal/logging"
	"stationator.nl/internal/models"
	"stationator.nl/internal/nsapi"
	"stationator.nl/internal/trips"
)

// tripsHandler serves GET /api/trips/{direction} and
// GET /api/trips/{direction}/{hour}. Without an hour the current
// Amsterdam hour is used; with one, the hour-of-day is overridden while
// keeping today's date. A fetch failure fails the whole response so the
// display layer shows an explicit error state instead of a silently
// shortened trip list.
func (api *RestAPI) tripsHandler(w http.ResponseWriter, r *http.Request) {
	direction := chi.URLParam(r, "direction")

	hourOverride := clock.NoHourOverride
	if hourParam := chi.URLParam(r, "hour"); hourParam != "" {
		hour, err := strconv.Atoi(hourParam)
		if err != nil || hour < 0 || hour > 23 {
			api.sendError(w, r, http.StatusUnprocessableEntity, "hour must be an integer between 0 and 23")
			return
		}
		hourOverride = hour
	}

	at := clock.NowInAmsterdam(api.Clock, hourOverride, true)

	list, err := api.Trips.ListTrips(r.Context(), direction, at)
	if err != nil {
		api.tripErrorResponse(w, r, direction, err)
		return
	}

	data := models.NewTripListData(direction, at, list)
	api.sendResponse(w, r, models.NewOKResponse(data, api.Clock))
}

func (api *RestAPI) tripErrorResponse(w http.ResponseWriter, r *http.Request, direction string, err error) {
	logging.LogError(api.Logger, "trip aggregation failed", err,
		slog.String("direction", direction))

	var fetchErr *nsapi.FetchError
	var malformed *trips.MalformedRecordError

	switch {
	case errors.Is(err, nsapi.ErrMissingAPIKey):
		api.sendError(w, r, http.StatusInternalServerError, "service is not configured with an NS API key")
	case errors.As(err, &fetchErr):
		api.sendError(w, r, http.StatusBadGateway, "trip provider request failed")
	case errors.As(err, &malformed):
		api.sendError(w, r, http.StatusBadGateway, "trip provider returned malformed data")
	default:
		api.sendError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
