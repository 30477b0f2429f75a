package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stationator.nl/internal/models"
)

func TestSendResponse(t *testing.T) {
	api, _ := newTestApi(t, nsSuccessHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	response := models.ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: 1234567890,
		Text:        "OK",
		Data:        map[string]string{"test": "data"},
	}

	api.sendResponse(w, r, response)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var decoded models.ResponseModel
	require.NoError(t, json.NewDecoder(w.Body).Decode(&decoded))
	assert.Equal(t, int64(1234567890), decoded.CurrentTime)
	assert.Equal(t, "OK", decoded.Text)
}

func TestSendError(t *testing.T) {
	api, _ := newTestApi(t, nsSuccessHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	api.sendError(w, r, http.StatusUnprocessableEntity, "bad input")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var decoded models.ResponseModel
	require.NoError(t, json.NewDecoder(w.Body).Decode(&decoded))
	assert.Equal(t, http.StatusUnprocessableEntity, decoded.Code)
	assert.Equal(t, "bad input", decoded.Text)
	assert.Nil(t, decoded.Data)

	// The envelope timestamp comes from the mock clock.
	assert.Equal(t, testTime.UnixMilli(), decoded.CurrentTime)
}
