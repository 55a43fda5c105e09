package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/pkg/utils"
)

func newIssuer(t *testing.T) *utils.TokenIssuer {
	t.Helper()
	tokens, err := utils.NewTokenIssuer("0123456789abcdef0123", time.Minute, time.Hour)
	require.NoError(t, err)
	return tokens
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, SessionFromContext(c))
	})
	r.GET("/", handlers...)
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newIssuer(t)
	r := newEngine(AuthMiddleware(tokens))

	access, err := tokens.GenerateAccessToken("u1", "jo@x.io", "Jo", models.RoleUser)
	require.NoError(t, err)
	refresh, err := tokens.GenerateRefreshToken("u1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Token "+access).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Bearer "+refresh).Code)

	w := do(r, "Bearer "+access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","email":"jo@x.io","name":"Jo","role":"user"}`, w.Body.String())
}

func TestOptionalAuthMiddleware(t *testing.T) {
	tokens := newIssuer(t)
	r := newEngine(OptionalAuthMiddleware(tokens))

	w := do(r, "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":""}`, w.Body.String())
}

func TestRoleAuthMiddleware(t *testing.T) {
	tokens := newIssuer(t)
	r := newEngine(AuthMiddleware(tokens), RoleAuthMiddleware(models.RoleAdmin))

	user, err := tokens.GenerateAccessToken("u1", "jo@x.io", "Jo", models.RoleUser)
	require.NoError(t, err)
	admin, err := tokens.GenerateAccessToken("u2", "boss@x.io", "Boss", models.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, do(r, "Bearer "+user).Code)
	assert.Equal(t, http.StatusOK, do(r, "Bearer "+admin).Code)
}
