// Package external provides adapters for the weather text providers
package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

const (
	DefaultWttrURL     = "https://wttr.in/?format=3"
	defaultHTTPTimeout = 10 * time.Second
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WttrProviderAdapter implements TextProvider for wttr.in
type WttrProviderAdapter struct {
	url    string
	client HTTPClient
	logger ports.Logger
}

// WttrProviderParams holds parameters for creating the wttr provider
type WttrProviderParams struct {
	URL     string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// NewWttrProviderAdapter creates a new wttr.in provider adapter
func NewWttrProviderAdapter(params WttrProviderParams) *WttrProviderAdapter {
	url := params.URL
	if url == "" {
		url = DefaultWttrURL
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &WttrProviderAdapter{
		url:    url,
		client: client,
		logger: params.Logger,
	}
}

// GetWeatherText issues one GET and returns the response body as is
func (p *WttrProviderAdapter) GetWeatherText(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return "", errors.NewNetworkError("failed to build wttr request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.NewNetworkError("failed to call wttr", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && p.logger != nil {
			p.logger.Warn("Failed to close wttr response body", ports.F("error", closeErr.Error()))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errors.NewNetworkError(fmt.Sprintf("wttr returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewNetworkError("failed to read wttr response", err)
	}

	return string(body), nil
}

// GetProviderName returns the name of this weather provider
func (p *WttrProviderAdapter) GetProviderName() string {
	return ports.ProviderWttr.String()
}
