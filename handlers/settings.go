package handlers

import (
	"errors"
	"net/http"

	"remindly/services/settings"
	"remindly/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the scalar preferences over HTTP.
type SettingsHandler struct {
	Service settings.SettingsService
}

func NewSettingsHandler(svc settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: svc}
}

func (h *SettingsHandler) GetToneHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tone": h.Service.DefaultTone(c.Request.Context())})
}

func (h *SettingsHandler) SetToneHandler(c *gin.Context) {
	var input struct {
		Tone string `json:"tone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.Service.SetDefaultTone(c.Request.Context(), input.Tone)
	switch {
	case errors.Is(err, settings.ErrUnknownTone):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to save preference", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"tone": input.Tone})
}

func (h *SettingsHandler) GetDailySummaryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"enabled": h.Service.DailySummary(c.Request.Context())})
}

func (h *SettingsHandler) SetDailySummaryHandler(c *gin.Context) {
	var input struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.SetDailySummary(c.Request.Context(), *input.Enabled); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save preference", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": *input.Enabled})
}
