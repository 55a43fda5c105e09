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

// ClientHandler holds the client service.
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

func respondClientNotFound(c *gin.Context) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Client not found.", ""))
}

// CreateClient handles the creation of a new client.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var form validation.ClientForm
	if !bindJSON(c, &form, "CreateClient") {
		return
	}

	client, err := h.clientService.AddClient(c.Request.Context(), middleware.SessionFromContext(c), form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		utils.LogError(err, "CreateClient: Error from clientService.AddClient")
		utils.RespondInternal(c, "Could not add client.")
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClients lists the caller's clients, newest first.
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.GetClients(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		utils.LogError(err, "GetClients: Error from clientService.GetClients")
		utils.RespondInternal(c, "Could not fetch clients.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": clients, "total": len(clients)})
}

// GetClientByID handles fetching a single client by ID.
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	id := c.Param("id")
	client, err := h.clientService.GetClient(c.Request.Context(), middleware.SessionFromContext(c), id)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			respondClientNotFound(c)
			return
		}
		utils.LogError(err, "GetClientByID: Error from clientService.GetClient for ID "+id)
		utils.RespondInternal(c, "Could not fetch client.")
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient replaces every mutable field of a client.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id := c.Param("id")
	var form validation.ClientUpdateForm
	if !bindJSON(c, &form, "UpdateClient") {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), middleware.SessionFromContext(c), id, form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		if errors.Is(err, services.ErrClientNotFound) {
			respondClientNotFound(c)
			return
		}
		utils.LogError(err, "UpdateClient: Error from clientService.UpdateClient for ID "+id)
		utils.RespondInternal(c, "Could not update client.")
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient handles deleting a client. Unknown ids succeed.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id := c.Param("id")
	if err := h.clientService.DeleteClient(c.Request.Context(), middleware.SessionFromContext(c), id); err != nil {
		if respondCommonError(c, err) {
			return
		}
		utils.LogError(err, "DeleteClient: Error from clientService.DeleteClient for ID "+id)
		utils.RespondInternal(c, "Could not delete client.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// CreateClientNote attaches a note to a client.
func (h *ClientHandler) CreateClientNote(c *gin.Context) {
	clientID := c.Param("id")
	var form validation.ClientNoteForm
	if !bindJSON(c, &form, "CreateClientNote") {
		return
	}

	note, err := h.clientService.AddClientNote(c.Request.Context(), middleware.SessionFromContext(c), clientID, form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		if errors.Is(err, services.ErrClientNotFound) {
			respondClientNotFound(c)
			return
		}
		utils.LogError(err, "CreateClientNote: Error from clientService.AddClientNote for client "+clientID)
		utils.RespondInternal(c, "Could not add note.")
		return
	}
	c.JSON(http.StatusCreated, note)
}

// GetClientNotes lists a client's notes, newest first.
func (h *ClientHandler) GetClientNotes(c *gin.Context) {
	clientID := c.Param("id")
	notes, err := h.clientService.GetClientNotes(c.Request.Context(), middleware.SessionFromContext(c), clientID)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			respondClientNotFound(c)
			return
		}
		utils.LogError(err, "GetClientNotes: Error from clientService.GetClientNotes for client "+clientID)
		utils.RespondInternal(c, "Could not fetch notes.")
		return
	}
	c.JSON(http.StatusOK, notes)
}

// DeleteClientNote removes one note of a client.
func (h *ClientHandler) DeleteClientNote(c *gin.Context) {
	clientID, noteID := c.Param("id"), c.Param("noteId")
	err := h.clientService.DeleteClientNote(c.Request.Context(), middleware.SessionFromContext(c), clientID, noteID)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		if errors.Is(err, services.ErrClientNotFound) {
			respondClientNotFound(c)
			return
		}
		utils.LogError(err, "DeleteClientNote: Error from clientService.DeleteClientNote for note "+noteID)
		utils.RespondInternal(c, "Could not delete note.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
