// test_helper.go contains shared utilities for standing up the full
// handler chain against a stubbed NS gateway in integration tests.
package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stationator.nl/internal/app"
	"stationator.nl/internal/appconf"
	"stationator.nl/internal/clock"
	"stationator.nl/internal/metrics"
	"stationator.nl/internal/models"
	"stationator.nl/internal/nsapi"
	"stationator.nl/internal/prefs"
	"stationator.nl/internal/trips"
)

// testTime is 08:15 on a Monday in Amsterdam (CET, +01:00).
var testTime = time.Date(2025, 1, 13, 7, 15, 0, 0, time.UTC)

// nsSuccessHandler fabricates one direct trip per request, departing at
// the requested dateTime and arriving 30 minutes later.
func nsSuccessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("fromStation")
		to := r.URL.Query().Get("toStation")

		departure, err := time.ParseInLocation("2006-01-02T15:04", r.URL.Query().Get("dateTime"), clock.Amsterdam())
		if err != nil {
			http.Error(w, "bad dateTime", http.StatusBadRequest)
			return
		}
		arrival := departure.Add(30 * time.Minute)

		status := "NORMAL"
		transfers := 0
		response := nsapi.TripsResponse{
			Trips: []nsapi.RawTrip{{
				Status:    &status,
				Transfers: &transfers,
				Legs: []nsapi.Leg{{
					Direction: to,
					Origin: nsapi.LegStop{
						StationCode:     from,
						PlannedDateTime: departure.Format(time.RFC3339),
						PlannedTrack:    "4",
					},
					Destination: nsapi.LegStop{
						StationCode:     to,
						PlannedDateTime: arrival.Format(time.RFC3339),
						PlannedTrack:    "2",
					},
				}},
			}},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}
}

// newTestApi wires a complete application around a stubbed NS gateway
// and serves its routes from an httptest server.
func newTestApi(t *testing.T, nsHandler http.Handler) (*RestAPI, *httptest.Server) {
	t.Helper()

	nsServer := httptest.NewServer(nsHandler)
	t.Cleanup(nsServer.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockClock := clock.NewMockClock(testTime)
	m := metrics.New()

	client := nsapi.NewClient(nsapi.Config{
		BaseURL: nsServer.URL,
		APIKey:  "test-key",
	}, nsapi.NewCache(), logger, m)

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			RateLimit: -1,
		},
		Logger:    logger,
		Clock:     mockClock,
		Metrics:   m,
		Trips:     trips.NewService(client, nil, logger),
		TripCache: client.Cache(),
		Prefs:     prefs.NewStore(),
	}

	api := New(application)
	server := httptest.NewServer(api.Routes())
	t.Cleanup(func() {
		server.Close()
		api.Shutdown()
	})

	return api, server
}

// getEnvelope issues a GET against the test server and decodes the
// response envelope.
func getEnvelope(t *testing.T, server *httptest.Server, path string) (*http.Response, models.ResponseModel) {
	t.Helper()

	resp, err := server.Client().Get(server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var model models.ResponseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))

	return resp, model
}

// envelopeData casts the envelope payload to a JSON object.
func envelopeData(t *testing.T, model models.ResponseModel) map[string]any {
	t.Helper()

	data, ok := model.Data.(map[string]any)
	require.True(t, ok, "response data is not a JSON object: %T", model.Data)
	return data
}
