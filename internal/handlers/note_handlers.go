package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk_backend/internal/middleware"
	"bizdesk_backend/internal/services"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

// NoteHandler serves personal notes.
type NoteHandler struct {
	noteService services.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(ns services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: ns}
}

func respondNoteNotFound(c *gin.Context) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Note not found.", ""))
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var form validation.NoteForm
	if !bindJSON(c, &form, "CreateNote") {
		return
	}

	note, err := h.noteService.AddNote(c.Request.Context(), middleware.SessionFromContext(c), form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		utils.LogError(err, "CreateNote: Error from noteService.AddNote")
		utils.RespondInternal(c, "Could not add note.")
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) GetNotes(c *gin.Context) {
	notes, err := h.noteService.GetNotes(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		utils.LogError(err, "GetNotes: Error from noteService.GetNotes")
		utils.RespondInternal(c, "Could not fetch notes.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": notes, "total": len(notes)})
}

func (h *NoteHandler) GetNoteByID(c *gin.Context) {
	id := c.Param("id")
	note, err := h.noteService.GetNote(c.Request.Context(), middleware.SessionFromContext(c), id)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			respondNoteNotFound(c)
			return
		}
		utils.LogError(err, "GetNoteByID: Error from noteService.GetNote for ID "+id)
		utils.RespondInternal(c, "Could not fetch note.")
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id := c.Param("id")
	var form validation.NoteForm
	if !bindJSON(c, &form, "UpdateNote") {
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), middleware.SessionFromContext(c), id, form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		if errors.Is(err, services.ErrNoteNotFound) {
			respondNoteNotFound(c)
			return
		}
		utils.LogError(err, "UpdateNote: Error from noteService.UpdateNote for ID "+id)
		utils.RespondInternal(c, "Could not update note.")
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id := c.Param("id")
	if err := h.noteService.DeleteNote(c.Request.Context(), middleware.SessionFromContext(c), id); err != nil {
		if respondCommonError(c, err) {
			return
		}
		utils.LogError(err, "DeleteNote: Error from noteService.DeleteNote for ID "+id)
		utils.RespondInternal(c, "Could not delete note.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
