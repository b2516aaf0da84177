package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathertext.app/internal/core/settings"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

// SettingsResponse is the current settings plus the values a user may pick
type SettingsResponse struct {
	settings.Settings
	AvailableSources []ports.ProviderID `json:"availableSources"`
}

func newSettingsResponse(current settings.Settings) SettingsResponse {
	return SettingsResponse{
		Settings:         current,
		AvailableSources: ports.SelectableProviders(),
	}
}

// getSettings handles GET /api/settings requests
func (s *HTTPServerAdapter) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, newSettingsResponse(s.settingsUseCase.Current()))
}

// patchSettings handles PATCH /api/settings requests
func (s *HTTPServerAdapter) patchSettings(c *gin.Context) {
	var patch settings.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.handleError(c, errors.NewValidationError("invalid settings patch: "+err.Error()))
		return
	}
	if patch.IsEmpty() {
		s.handleError(c, errors.NewValidationError("settings patch has no known fields"))
		return
	}

	updated, err := s.settingsUseCase.Update(c.Request.Context(), patch)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSettingsResponse(updated))
}
