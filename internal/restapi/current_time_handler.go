package restapi

import (
	"net/http"

	"stationator.nl/internal/clock"
	"stationator.nl/internal/models"
)

// currentTimeHandler writes a JSON response with the current time in the
// reference timezone, unrounded. The display layer uses it for the
// "minutes until departure" column.
func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	now := clock.NowInAmsterdam(api.Clock, clock.NoHourOverride, false)

	timeData := models.NewCurrentTimeData(now)
	api.sendResponse(w, r, models.NewOKResponse(timeData, api.Clock))
}
