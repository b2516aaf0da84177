package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathertext.app/internal/ports"
)

// HealthResponse aggregates component statuses
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /health requests. Degraded components keep the
// service available; any unhealthy component returns 503.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: ports.OverallStatus(results), Components: results}

	statusCode := http.StatusOK
	if response.Status == ports.HealthStatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
