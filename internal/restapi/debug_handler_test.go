package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stationator.nl/internal/appconf"
)

func TestDebugHandlerVisibleOutsideProduction(t *testing.T) {
	_, server := newTestApi(t, nsSuccessHandler())

	resp, err := server.Client().Get(server.URL + "/debug")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDebugHandlerHiddenInProduction(t *testing.T) {
	api, server := newTestApi(t, nsSuccessHandler())
	api.Config.Env = appconf.Production

	resp, err := server.Client().Get(server.URL + "/debug")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
