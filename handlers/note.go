package handlers

import (
	"errors"
	"net/http"

	"remindly/services/note"
	"remindly/utils"

	"github.com/gin-gonic/gin"
)

// NoteHandler exposes the note collection over HTTP.
type NoteHandler struct {
	Service note.NoteService
}

func NewNoteHandler(svc note.NoteService) *NoteHandler {
	return &NoteHandler{Service: svc}
}

func (h *NoteHandler) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Request.Context()))
}

// UpsertHandler creates a note, or updates an existing one when the body
// carries its id.
func (h *NoteHandler) UpsertHandler(c *gin.Context) {
	var input note.UpsertNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	saved, err := h.Service.Upsert(c.Request.Context(), input)
	switch {
	case errors.Is(err, note.ErrEmptyTitle):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to save note", err.Error())
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *NoteHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete note", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
