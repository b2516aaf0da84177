package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weathertext.app/internal/ports"
	errorspkg "weathertext.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error     string `json:"error"`
	Type      string `json:"type"`
	RequestID string `json:"requestId,omitempty"`
}

// handleError maps application errors to HTTP responses
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		s.respondError(c, http.StatusInternalServerError, errorspkg.ErrorTypeUnknown, "Internal server error", err)
		return
	}

	var statusCode int
	message := appErr.Message

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
	case errorspkg.ConfigurationError:
		statusCode = http.StatusConflict
	case errorspkg.NotImplementedError:
		statusCode = http.StatusNotImplemented
	case errorspkg.NetworkError:
		statusCode = http.StatusBadGateway
		message = "Weather provider unavailable"
	case errorspkg.StorageError:
		statusCode = http.StatusInternalServerError
		message = "Settings storage failure"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	s.respondError(c, statusCode, appErr.Type, message, err)
}

func (s *HTTPServerAdapter) respondError(c *gin.Context, status int, errType errorspkg.ErrorType, message string, err error) {
	if status >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("Request failed",
			ports.F("request_id", c.GetString(requestIDKey)),
			ports.F("error", err.Error()))
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Type:      errType.String(),
		RequestID: c.GetString(requestIDKey),
	})
}
