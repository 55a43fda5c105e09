package router

import (
	"github.com/gin-gonic/gin"

	"bizdesk_backend/internal/handlers"
	"bizdesk_backend/internal/middleware"
	"bizdesk_backend/internal/models"
	"bizdesk_backend/pkg/utils"
)

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler, tokens *utils.TokenIssuer) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterUser)
		authRoutes.POST("/login", authHandler.LoginUser)
		authRoutes.POST("/refresh-token", authHandler.RefreshToken)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware(tokens))
		{
			authRequiredRoutes.POST("/logout", authHandler.LogoutUser)
			authRequiredRoutes.GET("/me", authHandler.GetCurrentUser)
		}
	}
}

// SetupFeedbackRoutes accepts anonymous submissions; listing is admin only.
func SetupFeedbackRoutes(apiGroup *gin.RouterGroup, feedbackHandler *handlers.FeedbackHandler, tokens *utils.TokenIssuer) {
	apiGroup.POST("/feedback", middleware.OptionalAuthMiddleware(tokens), feedbackHandler.SubmitFeedback)
	apiGroup.GET("/feedback", middleware.AuthMiddleware(tokens), middleware.RoleAuthMiddleware(models.RoleAdmin), feedbackHandler.ListFeedback)
}

// SetupClientRoutes sets up the client routes, including client notes.
func SetupClientRoutes(authenticatedGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := authenticatedGroup.Group("/clients")
	{
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.GET("/:id", clientHandler.GetClientByID)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)

		clientRoutes.GET("/:id/notes", clientHandler.GetClientNotes)
		clientRoutes.POST("/:id/notes", clientHandler.CreateClientNote)
		clientRoutes.DELETE("/:id/notes/:noteId", clientHandler.DeleteClientNote)
	}
}

// SetupNoteRoutes sets up the personal note routes.
func SetupNoteRoutes(authenticatedGroup *gin.RouterGroup, noteHandler *handlers.NoteHandler) {
	noteRoutes := authenticatedGroup.Group("/notes")
	{
		noteRoutes.POST("", noteHandler.CreateNote)
		noteRoutes.GET("", noteHandler.GetNotes)
		noteRoutes.GET("/:id", noteHandler.GetNoteByID)
		noteRoutes.PUT("/:id", noteHandler.UpdateNote)
		noteRoutes.DELETE("/:id", noteHandler.DeleteNote)
	}
}

// SetupSettingsRoutes sets up the per-user settings routes.
func SetupSettingsRoutes(authenticatedGroup *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settingsRoutes := authenticatedGroup.Group("/settings")
	{
		settingsRoutes.GET("", settingsHandler.GetSettings)
		settingsRoutes.PUT("", settingsHandler.SaveSettings)
		settingsRoutes.GET("/business-types", settingsHandler.GetBusinessTypes)
	}
}

// SetupTeamRoutes sets up the team and user lookup routes.
func SetupTeamRoutes(authenticatedGroup *gin.RouterGroup, teamHandler *handlers.TeamHandler) {
	authenticatedGroup.GET("/users/lookup", teamHandler.LookupUser)

	teamRoutes := authenticatedGroup.Group("/teams")
	{
		teamRoutes.POST("", teamHandler.CreateTeam)
		teamRoutes.GET("/:id", teamHandler.GetTeam)
		teamRoutes.POST("/:id/members", teamHandler.AddMember)
		teamRoutes.DELETE("/:id/members/:uid", teamHandler.RemoveMember)
	}
}

// SetupMailRoutes sets up the mail enqueue route.
func SetupMailRoutes(authenticatedGroup *gin.RouterGroup, mailHandler *handlers.MailHandler) {
	authenticatedGroup.POST("/mail", mailHandler.SendMail)
}

// SetupDashboardRoutes sets up the calendar and dashboard routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	authenticatedGroup.GET("/calendar", dashboardHandler.GetCalendar)

	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	{
		dashboardRoutes.GET("/summary", dashboardHandler.GetSummary)
	}
}

// SetupChatRoutes sets up the AI chat routes.
func SetupChatRoutes(authenticatedGroup *gin.RouterGroup, chatHandler *handlers.ChatHandler) {
	chatRoutes := authenticatedGroup.Group("/chat")
	{
		chatRoutes.POST("/completions", chatHandler.Complete)
		chatRoutes.GET("/models", chatHandler.ListModels)
	}
}
