package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertext.app/internal/core/settings"
	"weathertext.app/internal/core/weather"
	"weathertext.app/internal/mocks"
	"weathertext.app/internal/ports"
)

type discardLogger struct{}

func (discardLogger) Debug(string, ...ports.Field) {}
func (discardLogger) Info(string, ...ports.Field)  {}
func (discardLogger) Warn(string, ...ports.Field)  {}
func (discardLogger) Error(string, ...ports.Field) {}

type stubHealthChecker map[string]ports.HealthStatus

func (s stubHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s
}

type testServer struct {
	server   *HTTPServerAdapter
	registry *mocks.ProviderRegistry
	store    *mocks.SettingsStore
	settings *settings.UseCase
	nowMs    int64
}

func setupTestServer(t *testing.T, health stubHealthChecker) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		registry: mocks.NewProviderRegistry(t),
		store:    mocks.NewSettingsStore(t),
		nowMs:    1000,
	}
	ts.store.EXPECT().GetStoreName().Return("mock").Maybe()

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordCacheHit(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().RecordCacheMiss(mock.Anything, mock.Anything).Maybe()

	cache, err := weather.NewUseCase(weather.UseCaseDependencies{
		Registry: ts.registry,
		Metrics:  metrics,
		Logger:   discardLogger{},
		Now:      func() time.Time { return time.UnixMilli(ts.nowMs) },
	})
	require.NoError(t, err)

	ts.settings, err = settings.NewUseCase(settings.UseCaseDependencies{Store: ts.store, Logger: discardLogger{}})
	require.NoError(t, err)

	service, err := weather.NewService(weather.ServiceDependencies{
		Cache:    cache,
		Settings: ts.settings,
		Logger:   discardLogger{},
	})
	require.NoError(t, err)

	if health == nil {
		health = stubHealthChecker{}
	}

	ts.server, err = NewHTTPServerAdapter(ServerOptions{
		WeatherService:  service,
		SettingsUseCase: ts.settings,
		HealthChecker:   health,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "weathertext_cache_hits_total 0\n")
		}),
		Logger: discardLogger{},
	})
	require.NoError(t, err)

	return ts
}

// selectProvider switches the in-memory settings through the real use case
func (ts *testServer) selectProvider(t *testing.T, provider ports.ProviderID) {
	t.Helper()
	ts.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	_, err := ts.settings.Update(context.Background(), settings.Patch{Source: &provider})
	require.NoError(t, err)
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.server.GetRouter().ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}
