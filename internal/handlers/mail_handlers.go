package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk_backend/internal/middleware"
	"bizdesk_backend/internal/services"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

// MailHandler enqueues outbound mail.
type MailHandler struct {
	mailService services.MailService
}

// NewMailHandler creates a new MailHandler.
func NewMailHandler(ms services.MailService) *MailHandler {
	return &MailHandler{mailService: ms}
}

// SendMail answers 202: the mail is queued, not delivered.
func (h *MailHandler) SendMail(c *gin.Context) {
	var form validation.MailForm
	if !bindJSON(c, &form, "SendMail") {
		return
	}

	mail, err := h.mailService.SendEmail(c.Request.Context(), middleware.SessionFromContext(c), form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		utils.LogError(err, "SendMail: Error from mailService.SendEmail")
		utils.RespondInternal(c, "Could not queue email.")
		return
	}
	c.JSON(http.StatusAccepted, mail)
}
