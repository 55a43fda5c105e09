package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk_backend/internal/middleware"
	"bizdesk_backend/internal/services"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

// FeedbackHandler serves feedback submission and the admin listing.
type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(fs services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: fs}
}

// SubmitFeedback stores a submission; anonymous callers are allowed.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var form validation.FeedbackForm
	if !bindJSON(c, &form, "SubmitFeedback") {
		return
	}

	fb, err := h.feedbackService.SaveFeedback(c.Request.Context(), middleware.SessionFromContext(c), form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		utils.LogError(err, "SubmitFeedback: Error from feedbackService.SaveFeedback")
		utils.RespondInternal(c, "Could not send feedback.")
		return
	}
	c.JSON(http.StatusCreated, fb)
}

func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	items, err := h.feedbackService.GetFeedback(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		utils.LogError(err, "ListFeedback: Error from feedbackService.GetFeedback")
		utils.RespondInternal(c, "Could not fetch feedback.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "total": len(items)})
}
