package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk_backend/internal/services"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

// bindJSON decodes the request body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst interface{}, op string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.LogDebug(op+": Failed to bind JSON", map[string]interface{}{"error": err.Error()})
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request payload.", err.Error()))
		return false
	}
	return true
}

// respondCommonError answers validation and authentication failures, which
// every handler maps the same way. It reports whether a response was written.
func respondCommonError(c *gin.Context, err error) bool {
	if fields, ok := validation.AsFieldErrors(err); ok {
		utils.RespondValidationFailed(c, fields)
		return true
	}
	if errors.Is(err, services.ErrUnauthenticated) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", ""))
		return true
	}
	if errors.Is(err, services.ErrForbidden) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You do not have permission to access this resource.", ""))
		return true
	}
	return false
}
