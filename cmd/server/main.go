package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bizdesk_backend/internal/config"
	"bizdesk_backend/internal/database"
	"bizdesk_backend/internal/router"
	"bizdesk_backend/pkg/mq"
	"bizdesk_backend/pkg/obs"
	"bizdesk_backend/pkg/utils"
)

const serviceVersion = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.InitLogger("info", true)
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := obs.InitTracer(ctx, obs.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Version:     serviceVersion,
		Environment: cfg.Environment,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(sctx); err != nil {
			utils.LogWarn(err, "Tracer shutdown failed")
		}
	}()

	db, err := database.InitDB(ctx, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()
	utils.LogInfo("Database initialized", map[string]interface{}{"host": cfg.DBHost, "name": cfg.DBName})

	if cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	tokens, err := utils.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create token issuer")
	}

	deps := router.Dependencies{DB: db, Config: cfg, Tokens: tokens}
	if cfg.RabbitURL != "" {
		publisher, err := mq.NewPublisher(cfg.RabbitURL, cfg.MailExchange)
		if err != nil {
			// Mail rows are still written, only the wake-up event is lost.
			utils.LogWarn(err, "RabbitMQ unavailable, mail-queued events disabled")
		} else {
			defer publisher.Close()
			deps.Publisher = publisher
		}
	}

	if cfg.Environment != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	if err := router.Setup(engine, deps); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port})
		utils.LogInfo("Frontend should be configured to make API calls", map[string]interface{}{"url": "http://localhost:" + cfg.Port + "/api/v1"})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError(err, "Failed to start server")
			stop()
		}
	}()

	<-ctx.Done()
	utils.LogInfo("Shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		utils.LogError(err, "Server shutdown failed")
	}
}
