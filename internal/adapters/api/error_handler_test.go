package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"weathertext.app/pkg/errors"
)

func TestHandleError_StatusMapping(t *testing.T) {
	ts := setupTestServer(t, nil)

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedType    string
		expectedMessage string
	}{
		{"Validation", errors.NewValidationError("position out of range"), http.StatusBadRequest, "VALIDATION_ERROR", "position out of range"},
		{"NotFound", errors.NewNotFoundError("no such entry"), http.StatusNotFound, "NOT_FOUND_ERROR", "no such entry"},
		{"Configuration", errors.NewConfigurationError("no provider configured", nil), http.StatusConflict, "CONFIGURATION_ERROR", "no provider configured"},
		{"NotImplemented", errors.NewNotImplementedError("weather provider openweathermap is not implemented"), http.StatusNotImplemented, "NOT_IMPLEMENTED_ERROR", "weather provider openweathermap is not implemented"},
		{"Network", errors.NewNetworkError("wttr returned status 503", nil), http.StatusBadGateway, "NETWORK_ERROR", "Weather provider unavailable"},
		{"Storage", errors.NewStorageError("disk full", nil), http.StatusInternalServerError, "STORAGE_ERROR", "Settings storage failure"},
		{"Wrapped", fmt.Errorf("fetch: %w", errors.NewNetworkError("timeout", nil)), http.StatusBadGateway, "NETWORK_ERROR", "Weather provider unavailable"},
		{"Plain", fmt.Errorf("boom"), http.StatusInternalServerError, "UNKNOWN_ERROR", "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set(requestIDKey, "req-1")

			ts.server.handleError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, c.IsAborted())

			var resp ErrorResponse
			decodeJSON(t, w, &resp)
			assert.Equal(t, tt.expectedType, resp.Type)
			assert.Equal(t, tt.expectedMessage, resp.Error)
			assert.Equal(t, "req-1", resp.RequestID)
		})
	}
}
