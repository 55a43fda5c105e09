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

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// RegisterUser handles user registration.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var form validation.RegisterForm
	if !bindJSON(c, &form, "RegisterUser") {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		if errors.Is(err, services.ErrEmailExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Email already exists.", ""))
			return
		}
		utils.LogError(err, "RegisterUser: Error from authService.Register")
		utils.RespondInternal(c, "Failed to register user.")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginUser handles user login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var form validation.LoginForm
	if !bindJSON(c, &form, "LoginUser") {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid email or password.", ""))
			return
		}
		utils.LogError(err, "LoginUser: Error from authService.Login")
		utils.RespondInternal(c, "Failed to login.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var form validation.RefreshForm
	if !bindJSON(c, &form, "RefreshToken") {
		return
	}

	resp, err := h.authService.RefreshToken(c.Request.Context(), form)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		if errors.Is(err, services.ErrInvalidToken) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired refresh token.", ""))
			return
		}
		utils.LogError(err, "RefreshToken: Error from authService.RefreshToken")
		utils.RespondInternal(c, "Failed to refresh token.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCurrentUser retrieves the profile of the currently authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	user, err := h.authService.GetUserProfile(c.Request.Context(), session)
	if err != nil {
		if respondCommonError(c, err) {
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User profile not found.", ""))
			return
		}
		utils.LogError(err, "GetCurrentUser: Error from authService.GetUserProfile for userID "+session.UserID)
		utils.RespondInternal(c, "Failed to retrieve user profile.")
		return
	}
	c.JSON(http.StatusOK, user)
}

// LogoutUser acknowledges a logout. Tokens are stateless; the client discards them.
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully. Please discard your token."})
}
