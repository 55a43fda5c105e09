package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk_backend/internal/middleware"
	"bizdesk_backend/internal/services"
	"bizdesk_backend/pkg/utils"
)

// DashboardHandler serves the dashboard card and the calendar view.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		utils.LogError(err, "GetSummary: Error from dashboardService.Summary")
		utils.RespondInternal(c, "Could not load dashboard.")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetCalendar groups appointments by day; ?date=YYYY-MM-DD selects one day.
func (h *DashboardHandler) GetCalendar(c *gin.Context) {
	view, err := h.dashboardService.Calendar(c.Request.Context(), middleware.SessionFromContext(c), c.Query("date"))
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		utils.LogError(err, "GetCalendar: Error from dashboardService.Calendar")
		utils.RespondInternal(c, "Could not fetch clients.")
		return
	}
	c.JSON(http.StatusOK, view)
}
