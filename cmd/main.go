package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lyrahhq/lyrah-backend/internal/app"
	"github.com/lyrahhq/lyrah-backend/internal/clients/redis"
	"github.com/lyrahhq/lyrah-backend/internal/db"
	"github.com/lyrahhq/lyrah-backend/internal/handlers"
	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/middleware"
	"github.com/lyrahhq/lyrah-backend/internal/repos"
	"github.com/lyrahhq/lyrah-backend/internal/server"
	"github.com/lyrahhq/lyrah-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	cfg := app.LoadConfig(log)
	gin.SetMode(cfg.GinMode)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Redis (optional)
	cache, err := redis.NewCache(context.Background(), log)
	if err != nil {
		log.Warn("Redis init failed, continuing without cache", "error", err)
		cache = nil
	}
	defer cache.Close()

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	profileRepo := repos.NewProfileRepo(thePG, log)
	questionRepo := repos.NewQuestionRepo(thePG, log)
	categoryRepo := repos.NewCategoryRepo(thePG, log)
	optionsRepo := repos.NewOptionsRepo(thePG, log)
	surveyRepo := repos.NewSurveyRepo(thePG, log)
	responseRepo := repos.NewSurveyResponseRepo(thePG, log)
	scoreRepo := repos.NewSurveyCategoryScoreRepo(thePG, log)
	metricsRepo := repos.NewMetricsRepo(thePG, log)

	// Services
	log.Info("Setting up services from main...")
	authService := services.NewAuthService(thePG, userRepo, profileRepo, metricsRepo, cfg.JWTSecretKey, cfg.AccessTokenTTL, log)
	userService := services.NewUserService(thePG, userRepo, log)
	profileService := services.NewProfileService(thePG, profileRepo, userRepo, log)
	referenceService := services.NewReferenceService(thePG, questionRepo, categoryRepo, optionsRepo, cache, log)
	surveyService := services.NewSurveyService(thePG, surveyRepo, responseRepo, scoreRepo, profileRepo, categoryRepo, metricsRepo, log)
	metricsService := services.NewMetricsService(thePG, metricsRepo, userRepo, log)

	// Handlers
	log.Info("Setting up handlers from main...")
	healthHandler := handlers.NewHealthHandler(postgresService, log)
	authHandler := handlers.NewAuthHandler(authService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	profileHandler := handlers.NewProfileHandler(profileService, log)
	referenceHandler := handlers.NewReferenceHandler(referenceService, log)
	surveyHandler := handlers.NewSurveyHandler(surveyService, log)
	metricsHandler := handlers.NewMetricsHandler(metricsService, log)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		CORSOrigins:      cfg.CORSOrigins,
		HealthHandler:    healthHandler,
		AuthHandler:      authHandler,
		AuthMiddleware:   authMiddleware,
		UserHandler:      userHandler,
		ProfileHandler:   profileHandler,
		ReferenceHandler: referenceHandler,
		SurveyHandler:    surveyHandler,
		MetricsHandler:   metricsHandler,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM. In-flight requests get 10s to
	// finish before the listener is torn down.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}
	log.Info("Server stopped")
}
