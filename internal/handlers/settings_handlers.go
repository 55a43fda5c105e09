package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk_backend/internal/middleware"
	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/services"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

// SettingsHandler serves per-user settings.
type SettingsHandler struct {
	settingsService services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(ss services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: ss}
}

// GetSettings returns the caller's settings, or an empty record when none were saved.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	settings, err := h.settingsService.GetUserSettings(c.Request.Context(), session)
	if err != nil {
		utils.LogError(err, "GetSettings: Error from settingsService.GetUserSettings for userID "+session.UserID)
		utils.RespondInternal(c, "Could not load settings.")
		return
	}
	if settings == nil {
		settings = &models.UserSettings{UserID: session.UserID}
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettings merges the submitted fields into the stored settings.
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var form validation.SettingsForm
	if !bindJSON(c, &form, "SaveSettings") {
		return
	}

	settings, err := h.settingsService.SaveUserSettings(c.Request.Context(), middleware.SessionFromContext(c), form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		utils.LogError(err, "SaveSettings: Error from settingsService.SaveUserSettings")
		utils.RespondInternal(c, "Could not save settings.")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) GetBusinessTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.settingsService.BusinessTypes()})
}
