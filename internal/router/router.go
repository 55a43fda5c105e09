package router

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bizdesk_backend/internal/config"
	"bizdesk_backend/internal/handlers"
	"bizdesk_backend/internal/middleware"
	"bizdesk_backend/internal/repositories"
	"bizdesk_backend/internal/services"
	"bizdesk_backend/pkg/utils"
)

// Dependencies are the process-wide resources the routes are built from.
type Dependencies struct {
	DB     *sql.DB
	Config config.App
	Tokens *utils.TokenIssuer
	// Publisher is optional; nil disables mail-queued events.
	Publisher services.EventPublisher
	// ChatClient is optional; nil gets a client bounded by AI_TIMEOUT.
	ChatClient *http.Client
}

// Setup installs the global middleware and every application route.
func Setup(engine *gin.Engine, deps Dependencies) error {
	cfg := deps.Config

	engine.Use(utils.GinLogger())
	engine.Use(middleware.TracingMiddleware(cfg.ServiceName))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Repositories
	authRepo := repositories.NewAuthRepository(deps.DB)
	clientRepo := repositories.NewClientRepository(deps.DB)
	clientNoteRepo := repositories.NewClientNoteRepository(deps.DB)
	noteRepo := repositories.NewNoteRepository(deps.DB)
	settingsRepo := repositories.NewSettingsRepository(deps.DB)
	teamRepo := repositories.NewTeamRepository(deps.DB)
	feedbackRepo := repositories.NewFeedbackRepository(deps.DB)
	mailRepo := repositories.NewMailRepository(deps.DB)

	// Services
	settingsService, err := services.NewSettingsService(settingsRepo, cfg.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("settings service: %w", err)
	}
	authService := services.NewAuthService(authRepo, deps.Tokens, cfg.IsAdminEmail)
	clientService := services.NewClientService(clientRepo, clientNoteRepo)
	noteService := services.NewNoteService(noteRepo)
	teamService := services.NewTeamService(teamRepo, authRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	mailService := services.NewMailService(mailRepo, deps.Publisher)
	dashboardService := services.NewDashboardService(clientService, settingsService)
	chatService := services.NewChatService(services.ChatConfig{
		URL:          cfg.AIAPIURL,
		APIKey:       cfg.AIAPIKey,
		DefaultModel: cfg.AIDefaultModel,
		Timeout:      cfg.AITimeout,
	}, deps.ChatClient)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, handlers.NewAuthHandler(authService), deps.Tokens)
	SetupFeedbackRoutes(apiV1, handlers.NewFeedbackHandler(feedbackService), deps.Tokens)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		SetupClientRoutes(authenticated, handlers.NewClientHandler(clientService))
		SetupNoteRoutes(authenticated, handlers.NewNoteHandler(noteService))
		SetupSettingsRoutes(authenticated, handlers.NewSettingsHandler(settingsService))
		SetupTeamRoutes(authenticated, handlers.NewTeamHandler(teamService))
		SetupMailRoutes(authenticated, handlers.NewMailHandler(mailService))
		SetupDashboardRoutes(authenticated, handlers.NewDashboardHandler(dashboardService))
		SetupChatRoutes(authenticated, handlers.NewChatHandler(chatService))
	}
	return nil
}
