package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stationator.nl/internal/appconf"
	"stationator.nl/internal/nsapi"
	"stationator.nl/internal/restapi"
)

func testConfig() appconf.Config {
	return appconf.Config{
		Port:      4000,
		Env:       appconf.Test,
		RateLimit: -1,
		Verbose:   false,
	}
}

func TestBuildApplication(t *testing.T) {
	cfg := testConfig()
	nsCfg := nsapi.Config{APIKey: "test-key"}

	application, err := BuildApplication(cfg, nsCfg)

	require.NoError(t, err, "BuildApplication should not return an error")
	assert.NotNil(t, application, "Application should not be nil")
	assert.NotNil(t, application.Logger, "Logger should be initialized")
	assert.NotNil(t, application.Clock, "Clock should be initialized")
	assert.NotNil(t, application.Metrics, "Metrics should be initialized")
	assert.NotNil(t, application.Trips, "Trip service should be initialized")
	assert.NotNil(t, application.TripCache, "Trip cache should be initialized")
	assert.NotNil(t, application.Prefs, "Preference store should be initialized")
	assert.Equal(t, cfg, application.Config, "Config should match input")
}

func TestBuildApplicationWithoutAPIKey(t *testing.T) {
	// Startup must succeed without a key; only live fetches fail.
	application, err := BuildApplication(testConfig(), nsapi.Config{})
	require.NoError(t, err)
	assert.NotNil(t, application)
}

func TestCreateServer(t *testing.T) {
	application, err := BuildApplication(testConfig(), nsapi.Config{APIKey: "test-key"})
	require.NoError(t, err)

	api := restapi.New(application)
	defer api.Shutdown()

	server := CreateServer(application, api)
	assert.Equal(t, ":4000", server.Addr)
	assert.NotNil(t, server.Handler)

	// The wired routes must serve the health endpoint.
	testServer := httptest.NewServer(server.Handler)
	defer testServer.Close()

	resp, err := testServer.Client().Get(testServer.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
