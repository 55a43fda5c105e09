package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/pkg/utils"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", ""))
			return
		}

		claims, err := tokens.ValidateAccessToken(tokenString)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", err.Error()))
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller identity when a valid bearer
// token is present and lets anonymous requests through otherwise.
func OptionalAuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := tokens.ValidateAccessToken(tokenString); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// RoleAuthMiddleware creates a Gin middleware for role-based authorization.
// It checks if the user role (from JWT claims) is one of the allowed roles.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr := c.GetString(utils.ContextUserRole)
		if roleStr == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "User role not found in token claims.", ""))
			return
		}

		for _, r := range allowedRoles {
			if strings.EqualFold(roleStr, r) {
				c.Next()
				return
			}
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden,
			"You do not have permission to access this resource. Required roles: "+strings.Join(allowedRoles, ", "), ""))
	}
}

// SessionFromContext returns the caller identity stored by the auth
// middleware, or the anonymous session.
func SessionFromContext(c *gin.Context) models.Session {
	return models.Session{
		UserID: c.GetString(utils.ContextUserID),
		Email:  c.GetString(utils.ContextUserEmail),
		Name:   c.GetString(utils.ContextUserName),
		Role:   c.GetString(utils.ContextUserRole),
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c *gin.Context, claims *utils.Claims) {
	c.Set(utils.ContextUserID, claims.UserID)
	c.Set(utils.ContextUserEmail, claims.Email)
	c.Set(utils.ContextUserName, claims.Name)
	c.Set(utils.ContextUserRole, claims.Role)
}
