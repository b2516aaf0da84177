package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertext.app/internal/mocks"
	"weathertext.app/pkg/errors"
)

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestWttrProvider_GetWeatherText_Success(t *testing.T) {
	body := "London: ⛅️  +13°C\n"

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "3", r.URL.Query().Get("format"))

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(body))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := NewWttrProviderAdapter(WttrProviderParams{
		URL:    mockServer.URL + "/?format=3",
		Logger: setupLoggerMock(t),
	})

	text, err := provider.GetWeatherText(context.Background())

	require.NoError(t, err)
	assert.Equal(t, body, text, "body is passed through verbatim")
	assert.Equal(t, "wttr", provider.GetProviderName())
}

func TestWttrProvider_GetWeatherText_EmptyBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	provider := NewWttrProviderAdapter(WttrProviderParams{URL: mockServer.URL, Logger: setupLoggerMock(t)})

	text, err := provider.GetWeatherText(context.Background())

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestWttrProvider_GetWeatherText_ErrorStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte("Unknown location"))
			}))
			defer mockServer.Close()

			provider := NewWttrProviderAdapter(WttrProviderParams{URL: mockServer.URL, Logger: setupLoggerMock(t)})

			text, err := provider.GetWeatherText(context.Background())

			assert.Empty(t, text)
			assert.True(t, errors.IsNetworkError(err))
			assert.Contains(t, err.Error(), "status")
		})
	}
}

func TestWttrProvider_GetWeatherText_TransportFailure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := mockServer.URL
	mockServer.Close()

	provider := NewWttrProviderAdapter(WttrProviderParams{URL: url, Logger: setupLoggerMock(t)})

	_, err := provider.GetWeatherText(context.Background())

	assert.True(t, errors.IsNetworkError(err))
}

func TestWttrProvider_GetWeatherText_Timeout(t *testing.T) {
	release := make(chan struct{})
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer mockServer.Close()
	defer close(release)

	provider := NewWttrProviderAdapter(WttrProviderParams{
		URL:     mockServer.URL,
		Timeout: 50 * time.Millisecond,
		Logger:  setupLoggerMock(t),
	})

	_, err := provider.GetWeatherText(context.Background())

	assert.True(t, errors.IsNetworkError(err))
}

func TestWttrProvider_GetWeatherText_ContextCanceled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("unreachable"))
	}))
	defer mockServer.Close()

	provider := NewWttrProviderAdapter(WttrProviderParams{URL: mockServer.URL, Logger: setupLoggerMock(t)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.GetWeatherText(ctx)

	assert.True(t, errors.IsNetworkError(err))
}

func TestNewWttrProviderAdapter_Defaults(t *testing.T) {
	provider := NewWttrProviderAdapter(WttrProviderParams{})

	assert.Equal(t, DefaultWttrURL, provider.url)
	client, ok := provider.client.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, client.Timeout)
}

func TestOpenWeatherMapProvider_NotImplemented(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter()

	text, err := provider.GetWeatherText(context.Background())

	assert.Empty(t, text)
	assert.True(t, errors.IsNotImplementedError(err))
	assert.Contains(t, err.Error(), "openweathermap")
	assert.Equal(t, "openweathermap", provider.GetProviderName())
}
