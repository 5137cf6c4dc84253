package handlers

import (
	"errors"
	"net/http"
	"time"

	"remindly/services/reminder"
	"remindly/utils"

	"github.com/gin-gonic/gin"
)

// ReminderHandler exposes the reminder lifecycle over HTTP.
type ReminderHandler struct {
	Service reminder.ReminderService
}

func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: svc}
}

// ListHandler returns the full reminder collection.
func (h *ReminderHandler) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Request.Context()))
}

// ByDayHandler returns the reminders whose trigger falls on the given day.
func (h *ReminderHandler) ByDayHandler(c *gin.Context) {
	matched, err := h.Service.ByDay(c.Request.Context(), c.Param("day"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid day", err.Error())
		return
	}
	c.JSON(http.StatusOK, matched)
}

// CreateHandler runs the creation flow and returns the stored record,
// including its notification handle (null when scheduling was skipped).
func (h *ReminderHandler) CreateHandler(c *gin.Context) {
	var input struct {
		Title string    `json:"title" binding:"required"`
		Date  time.Time `json:"date" binding:"required"`
		Tone  string    `json:"tone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rec, err := h.Service.Create(c.Request.Context(), reminder.CreateReminderInput{
		Title: input.Title,
		Date:  input.Date,
		Tone:  input.Tone,
	})
	switch {
	case errors.Is(err, reminder.ErrEmptyTitle), errors.Is(err, reminder.ErrUnknownTone):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to save reminder", err.Error())
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// DeleteHandler removes one reminder and cancels its notification.
func (h *ReminderHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete reminder", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ClearAllHandler empties the collection and cancels every scheduled
// notification.
func (h *ReminderHandler) ClearAllHandler(c *gin.Context) {
	if err := h.Service.ClearAll(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear reminders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
