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

// ChatHandler proxies the AI chat.
type ChatHandler struct {
	chatService services.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(cs services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: cs}
}

// Complete returns the conversation with the assistant's reply appended.
func (h *ChatHandler) Complete(c *gin.Context) {
	var form validation.ChatForm
	if !bindJSON(c, &form, "Complete") {
		return
	}

	conversation, err := h.chatService.Complete(c.Request.Context(), middleware.SessionFromContext(c), form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		if errors.Is(err, services.ErrUnsupportedModel) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "The model is under maintenance. Please try again later.", ""))
			return
		}
		utils.LogError(err, "Complete: Error from chatService.Complete")
		utils.RespondInternal(c, "Could not reach the assistant.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": conversation})
}

func (h *ChatHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.chatService.Models(), "default": h.chatService.DefaultModel()})
}
