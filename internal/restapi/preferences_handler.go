package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"stationator.nl/internal/models"
	"stationator.nl/internal/prefs"
)

// sessionCookieName identifies a browser session for preference storage.
// There is no authentication; the cookie only namespaces in-memory state.
const sessionCookieName = "stationator_session"

// sessionID returns the session from the request cookie, minting and
// setting a new one when absent.
func (api *RestAPI) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// getPreferencesHandler serves the session's station selection,
// initializing it with the defaults on first use.
func (api *RestAPI) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	session := api.sessionID(w, r)
	selection := api.Prefs.Get(session)

	api.sendResponse(w, r, models.NewOKResponse(map[string]any{
		"stationSelection": selection,
	}, api.Clock))
}

type preferenceUpdate struct {
	Station  string `json:"station"`
	Included bool   `json:"included"`
}

// putPreferencesHandler toggles one station in the session's selection.
func (api *RestAPI) putPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	session := api.sessionID(w, r)

	var update preferenceUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		api.sendError(w, r, http.StatusBadRequest, "request body must be JSON with station and included fields")
		return
	}
	if update.Station == "" {
		api.sendError(w, r, http.StatusBadRequest, "station is required")
		return
	}

	if err := api.Prefs.Set(session, update.Station, update.Included); err != nil {
		if errors.Is(err, prefs.ErrUnknownStation) {
			api.sendError(w, r, http.StatusUnprocessableEntity, "unknown station code")
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(map[string]any{
		"stationSelection": api.Prefs.Get(session),
	}, api.Clock))
}
