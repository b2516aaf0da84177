package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertext.app/internal/core/weather"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

func TestWeatherHandler_GetWeather_Success(t *testing.T) {
	ts := setupTestServer(t, nil)
	ts.selectProvider(t, ports.ProviderWttr)

	ts.registry.EXPECT().Fetch(mock.Anything, ports.ProviderWttr).Return("London: ⛅️ +13°C", nil).Once()

	w := ts.do(http.MethodGet, "/api/weather", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"provider":"wttr","fetchedAtMs":1000,"text":"London: ⛅️ +13°C"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestWeatherHandler_GetWeather_ServedFromCache(t *testing.T) {
	ts := setupTestServer(t, nil)
	ts.selectProvider(t, ports.ProviderWttr)

	ts.registry.EXPECT().Fetch(mock.Anything, ports.ProviderWttr).Return("Sunny", nil).Once()

	first := ts.do(http.MethodGet, "/api/weather", "")
	require.Equal(t, http.StatusOK, first.Code)

	ts.nowMs = 1000 + 300*1000
	second := ts.do(http.MethodGet, "/api/weather", "")
	require.Equal(t, http.StatusOK, second.Code)

	var item weather.CachedItem
	decodeJSON(t, second, &item)
	assert.Equal(t, int64(1000), item.FetchedAtMs)
}

func TestWeatherHandler_GetWeather_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		provider ports.ProviderID
		err      error
		status   int
		errType  string
	}{
		{"NotSelected", ports.ProviderUnset, errors.NewConfigurationError("no provider configured", nil), http.StatusConflict, "CONFIGURATION_ERROR"},
		{"NotImplemented", ports.ProviderOpenWeatherMap, errors.NewNotImplementedError("weather provider openweathermap is not implemented"), http.StatusNotImplemented, "NOT_IMPLEMENTED_ERROR"},
		{"Network", ports.ProviderWttr, errors.NewNetworkError("wttr returned status 503", nil), http.StatusBadGateway, "NETWORK_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestServer(t, nil)
			if tt.provider != ports.ProviderUnset {
				ts.selectProvider(t, tt.provider)
			}

			ts.registry.EXPECT().Fetch(mock.Anything, tt.provider).Return("", tt.err).Once()

			w := ts.do(http.MethodGet, "/api/weather", "")

			assert.Equal(t, tt.status, w.Code)
			var response ErrorResponse
			decodeJSON(t, w, &response)
			assert.Equal(t, tt.errType, response.Type)
			assert.NotEmpty(t, response.Error)
			assert.Equal(t, w.Header().Get(RequestIDHeader), response.RequestID)

			cache := ts.do(http.MethodGet, "/api/cache", "")
			assert.JSONEq(t, `{"empty":true,"entries":[]}`, cache.Body.String())
		})
	}
}

func TestWeatherHandler_GetWeatherText(t *testing.T) {
	ts := setupTestServer(t, nil)
	ts.selectProvider(t, ports.ProviderWttr)

	ts.registry.EXPECT().Fetch(mock.Anything, ports.ProviderWttr).Return("Kyiv: ☀️ +25°C\n", nil).Once()

	w := ts.do(http.MethodGet, "/api/weather/text", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kyiv: ☀️ +25°C\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestWeatherHandler_InsertWeather(t *testing.T) {
	ts := setupTestServer(t, nil)
	ts.selectProvider(t, ports.ProviderWttr)

	ts.registry.EXPECT().Fetch(mock.Anything, ports.ProviderWttr).Return("Rain", nil).Once()

	w := ts.do(http.MethodPost, "/api/weather/insert", `{"document":"Today: !","position":7}`)

	require.Equal(t, http.StatusOK, w.Code)
	var response InsertResponse
	decodeJSON(t, w, &response)
	assert.Equal(t, "Today: Rain!", response.Document)
	assert.Equal(t, "Rain", response.Weather.Text)
}

func TestWeatherHandler_InsertWeather_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"MissingPosition", `{"document":"abc"}`},
		{"PositionPastEnd", `{"document":"abc","position":4}`},
		{"NegativePosition", `{"document":"abc","position":-1}`},
		{"NotJSON", `position=1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestServer(t, nil)

			w := ts.do(http.MethodPost, "/api/weather/insert", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestWeatherHandler_GetCache(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.do(http.MethodGet, "/api/cache", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"empty":true,"entries":[]}`, w.Body.String())

	ts.selectProvider(t, ports.ProviderWttr)
	ts.registry.EXPECT().Fetch(mock.Anything, ports.ProviderWttr).Return("Fog", nil).Once()
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/weather", "").Code)

	w = ts.do(http.MethodGet, "/api/cache", "")
	assert.JSONEq(t, `{"empty":false,"entries":[{"provider":"wttr","fetchedAtMs":1000,"text":"Fog"}]}`, w.Body.String())
}
