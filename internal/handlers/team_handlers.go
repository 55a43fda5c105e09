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

// TeamHandler serves teams and the member lookup.
type TeamHandler struct {
	teamService services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

// respondTeamError maps team domain errors. It reports whether a response was written.
func respondTeamError(c *gin.Context, err error) bool {
	if respondCommonError(c, err) {
		return true
	}
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found.", ""))
	case errors.Is(err, services.ErrTeamNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Team not found.", ""))
	case errors.Is(err, services.ErrNotTeamOwner):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Only the team owner can change members.", ""))
	case errors.Is(err, services.ErrCannotRemoveOwner):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "The team owner cannot be removed.", ""))
	case errors.Is(err, services.ErrAlreadyTeamMember):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "User is already a team member.", ""))
	default:
		return false
	}
	return true
}

// LookupUser finds a registered user by the email query parameter.
func (h *TeamHandler) LookupUser(c *gin.Context) {
	email := c.Query("email")
	member, err := h.teamService.FindUserByEmail(c.Request.Context(), middleware.SessionFromContext(c), email)
	if err != nil {
		if respondTeamError(c, err) {
			return
		}
		utils.LogError(err, "LookupUser: Error from teamService.FindUserByEmail")
		utils.RespondInternal(c, "Could not look up user.")
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateTeam creates a team owned by the caller.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	team, err := h.teamService.CreateTeam(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		if respondTeamError(c, err) {
			return
		}
		utils.LogError(err, "CreateTeam: Error from teamService.CreateTeam")
		utils.RespondInternal(c, "Could not create team.")
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (h *TeamHandler) GetTeam(c *gin.Context) {
	id := c.Param("id")
	team, err := h.teamService.GetTeam(c.Request.Context(), middleware.SessionFromContext(c), id)
	if err != nil {
		if respondTeamError(c, err) {
			return
		}
		utils.LogError(err, "GetTeam: Error from teamService.GetTeam for ID "+id)
		utils.RespondInternal(c, "Could not fetch team.")
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) AddMember(c *gin.Context) {
	id := c.Param("id")
	var form validation.TeamMemberForm
	if !bindJSON(c, &form, "AddMember") {
		return
	}

	team, err := h.teamService.AddTeamMember(c.Request.Context(), middleware.SessionFromContext(c), id, form)
	if err != nil {
		if respondTeamError(c, err) {
			return
		}
		utils.LogError(err, "AddMember: Error from teamService.AddTeamMember for team "+id)
		utils.RespondInternal(c, "Could not add team member.")
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) RemoveMember(c *gin.Context) {
	id, uid := c.Param("id"), c.Param("uid")
	team, err := h.teamService.RemoveTeamMember(c.Request.Context(), middleware.SessionFromContext(c), id, uid)
	if err != nil {
		if respondTeamError(c, err) {
			return
		}
		utils.LogError(err, "RemoveMember: Error from teamService.RemoveTeamMember for team "+id)
		utils.RespondInternal(c, "Could not remove team member.")
		return
	}
	c.JSON(http.StatusOK, team)
}
