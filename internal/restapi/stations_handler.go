package restapi

import (
	"net/http"

	"stationator.nl/internal/models"
	"stationator.nl/internal/stations"
)

// stationsHandler serves the static station directory.
func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	all := stations.All()

	stationModels := make([]models.StationModel, 0, len(all))
	for _, station := range all {
		stationModels = append(stationModels, models.NewStationModel(station))
	}

	api.sendResponse(w, r, models.NewOKResponse(map[string]any{
		"stations": stationModels,
	}, api.Clock))
}
