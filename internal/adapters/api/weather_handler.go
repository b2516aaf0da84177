package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathertext.app/internal/core/weather"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

// InsertRequest is the body of POST /api/weather/insert
type InsertRequest struct {
	Document string `json:"document"`
	Position *int   `json:"position" binding:"required"`
}

// InsertResponse carries the document with the weather text inserted
type InsertResponse struct {
	Document string             `json:"document"`
	Weather  weather.CachedItem `json:"weather"`
}

// CacheResponse is the debug view of the process-wide cache table
type CacheResponse struct {
	Empty   bool                 `json:"empty"`
	Entries []weather.CachedItem `json:"entries"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	item, err := s.weatherService.CurrentText(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// getWeatherText handles GET /api/weather/text requests
func (s *HTTPServerAdapter) getWeatherText(c *gin.Context) {
	item, err := s.weatherService.CurrentText(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(item.Text))
}

// insertWeather handles POST /api/weather/insert requests
func (s *HTTPServerAdapter) insertWeather(c *gin.Context) {
	var req InsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("invalid insert request: "+err.Error()))
		return
	}

	document, item, err := s.weatherService.InsertInto(c.Request.Context(), req.Document, *req.Position)
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.logger.Debug("Weather text inserted into document",
		ports.F("request_id", c.GetString(requestIDKey)),
		ports.F("provider", item.Provider.String()))

	c.JSON(http.StatusOK, InsertResponse{Document: document, Weather: item})
}

// getCache handles GET /api/cache requests
func (s *HTTPServerAdapter) getCache(c *gin.Context) {
	entries := s.weatherService.CacheEntries()
	if entries == nil {
		entries = []weather.CachedItem{}
	}

	c.JSON(http.StatusOK, CacheResponse{
		Empty:   s.weatherService.CacheIsEmpty(),
		Entries: entries,
	})
}
