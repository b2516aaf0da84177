package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertext.app/internal/config"
	"weathertext.app/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T, wttrURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Weather: config.WeatherConfig{
			WttrURL:       wttrURL,
			HTTPTimeout:   2 * time.Second,
			EnableLogging: true,
			LogFilePath:   filepath.Join(dir, "logs", "weather.log"),
		},
		Settings: config.SettingsConfig{
			Store:    config.SettingsStoreFile,
			FilePath: filepath.Join(dir, "settings.json"),
			Name:     "default",
		},
		Log: config.LogConfig{Level: "debug", Format: "json"},
	}
}

func newWttrServer(t *testing.T, text string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, text)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	t.Helper()

	deps, err := NewDependencyContainer(cfg, DependencyOptions{LogOutput: io.Discard})
	require.NoError(t, err)

	application, err := NewApplicationWithDependencies(context.Background(), cfg, deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown(context.Background()) })

	return application
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestApplication_EndToEnd(t *testing.T) {
	wttr, calls := newWttrServer(t, "Kyiv: ⛅️ +12°C\n")
	cfg := testConfig(t, wttr.URL)
	application := newTestApplication(t, cfg)
	router := application.GetRouter()

	// nothing selected yet
	w := serve(router, http.MethodGet, "/api/weather/text", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(router, http.MethodPatch, "/api/settings", `{"source":"wttr"}`)
	require.Equal(t, http.StatusOK, w.Code)

	persisted, err := os.ReadFile(cfg.Settings.FilePath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"wttr","cacheSeconds":300,"addRibbon":true}`, string(persisted))

	for i := 0; i < 2; i++ {
		w = serve(router, http.MethodGet, "/api/weather/text", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Kyiv: ⛅️ +12°C\n", w.Body.String())
	}
	assert.Equal(t, int32(1), calls.Load())

	w = serve(router, http.MethodGet, "/api/cache", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"empty":false`)

	w = serve(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `weathertext_cache_hits_total{provider="wttr"} 1`)

	w = serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	logData, err := os.ReadFile(cfg.Weather.LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Weather text request completed")
}

func TestApplication_ProviderLogsCarryServiceAndComponent(t *testing.T) {
	wttr, _ := newWttrServer(t, "Sunny")
	cfg := testConfig(t, wttr.URL)
	cfg.Weather.LogFilePath = ""
	require.NoError(t, os.WriteFile(cfg.Settings.FilePath, []byte(`{"source":"wttr"}`), 0o600))

	var logs bytes.Buffer
	deps, err := NewDependencyContainer(cfg, DependencyOptions{LogOutput: &logs})
	require.NoError(t, err)
	application, err := NewApplicationWithDependencies(context.Background(), cfg, deps)
	require.NoError(t, err)
	defer application.Shutdown(context.Background())

	_, err = application.WeatherService().CurrentText(context.Background())
	require.NoError(t, err)

	var completed map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "weathertext", entry["service"])
		if entry["msg"] == "Weather text request completed" {
			completed = entry
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, "provider_calls", completed["component"])
}

func TestApplication_MetricsIncludeRuntimeCollectors(t *testing.T) {
	wttr, _ := newWttrServer(t, "Sunny")
	application := newTestApplication(t, testConfig(t, wttr.URL))

	w := serve(application.GetRouter(), http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestApplication_LoadsPersistedSettings(t *testing.T) {
	wttr, _ := newWttrServer(t, "Sunny")
	cfg := testConfig(t, wttr.URL)
	require.NoError(t, os.WriteFile(cfg.Settings.FilePath, []byte(`{"source":"wttr","cacheSeconds":60}`), 0o600))

	application := newTestApplication(t, cfg)

	current := application.SettingsUseCase().Current()
	assert.Equal(t, ports.ProviderWttr, current.Source)
	assert.Equal(t, 60, current.CacheSeconds)
	assert.True(t, current.AddRibbon)

	item, err := application.WeatherService().CurrentText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sunny", item.Text)
}

func TestApplication_CorruptSettingsFallBackToDefaults(t *testing.T) {
	wttr, _ := newWttrServer(t, "Sunny")
	cfg := testConfig(t, wttr.URL)
	require.NoError(t, os.WriteFile(cfg.Settings.FilePath, []byte(`not json`), 0o600))

	application := newTestApplication(t, cfg)

	assert.Equal(t, ports.ProviderUnset, application.SettingsUseCase().Current().Source)
}

func TestNewDependencyContainer_UnwritableLogFileFallsBack(t *testing.T) {
	cfg := testConfig(t, "https://wttr.in/?format=3")
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	cfg.Weather.LogFilePath = filepath.Join(blocker, "weather.log")

	deps, err := NewDependencyContainer(cfg, DependencyOptions{LogOutput: io.Discard})
	require.NoError(t, err)
	defer deps.Close()

	appPorts := deps.ApplicationPorts()
	assert.NotNil(t, appPorts.ProviderRegistry)
	assert.NotNil(t, appPorts.SettingsStore)
	assert.NotNil(t, appPorts.Metrics)
	assert.NotNil(t, appPorts.Logger)
}

func TestNewDependencyContainer_StoreFailure(t *testing.T) {
	cfg := testConfig(t, "https://wttr.in/?format=3")
	cfg.Settings.Store = config.SettingsStoreUnknown

	deps, err := NewDependencyContainer(cfg, DependencyOptions{LogOutput: io.Discard})
	assert.Nil(t, deps)
	assert.Error(t, err)
}
