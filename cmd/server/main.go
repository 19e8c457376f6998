package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-io/devconnect-api/adapters/github"
	httpAdapter "github.com/devconnect-io/devconnect-api/adapters/http"
	"github.com/devconnect-io/devconnect-api/adapters/persistence"
	authUC "github.com/devconnect-io/devconnect-api/internal/application/usecase/auth"
	profileUC "github.com/devconnect-io/devconnect-api/internal/application/usecase/profile"
	"github.com/devconnect-io/devconnect-api/internal/config"
	"github.com/devconnect-io/devconnect-api/pkg/auth"
	"github.com/devconnect-io/devconnect-api/pkg/logger"
	"github.com/devconnect-io/devconnect-api/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.New(cfg.App.Env)

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "devconnect-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	githubClient := github.NewClient(cfg)

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo)
	entryUseCase := profileUC.NewEntryUseCase(profileRepo)
	accountUseCase := profileUC.NewAccountUseCase(userRepo, profileRepo)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, registerUseCase, currentUserUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, entryUseCase, accountUseCase)
	githubHandler := httpAdapter.NewGithubHandler(githubClient)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpAdapter.NewRouter(
		authHandler,
		profileHandler,
		githubHandler,
		httpAdapter.AuthMiddleware(jwtSvc),
		httpAdapter.ErrorMiddleware(appLogger),
	)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
