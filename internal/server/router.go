package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lyrahhq/lyrah-backend/internal/handlers"
	"github.com/lyrahhq/lyrah-backend/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins      []string
	HealthHandler    *handlers.HealthHandler
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	UserHandler      *handlers.UserHandler
	ProfileHandler   *handlers.ProfileHandler
	ReferenceHandler *handlers.ReferenceHandler
	SurveyHandler    *handlers.SurveyHandler
	MetricsHandler   *handlers.MetricsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	users := api.Group("/users")
	{
		users.GET("", cfg.AuthMiddleware.RequireAdmin(), cfg.UserHandler.GetAll)
		users.GET("/:id", cfg.UserHandler.GetByID)
		users.PUT("/:id", cfg.UserHandler.Update)
		users.DELETE("/:id", cfg.AuthMiddleware.RequireAdmin(), cfg.UserHandler.Deactivate)
	}

	profiles := api.Group("/profiles")
	{
		profiles.GET("", cfg.ProfileHandler.GetAll)
		profiles.POST("", cfg.ProfileHandler.Create)
		profiles.GET("/user/:userId", cfg.ProfileHandler.GetByUserID)
		profiles.GET("/:id", cfg.ProfileHandler.GetByID)
		profiles.PUT("/:id", cfg.ProfileHandler.Update)
		profiles.GET("/:id/improvement-areas", cfg.ProfileHandler.GetImprovementAreas)
		profiles.POST("/:id/improvement-areas", cfg.ProfileHandler.SetImprovementArea)
		profiles.PUT("/:id/improvement-areas", cfg.ProfileHandler.SetImprovementArea)
		profiles.DELETE("/:id/improvement-areas/:optionId", cfg.ProfileHandler.RemoveImprovementArea)
		profiles.GET("/:id/wellness-activities", cfg.ProfileHandler.GetWellnessActivities)
		profiles.POST("/:id/wellness-activities", cfg.ProfileHandler.AddWellnessActivity)
		profiles.DELETE("/:id/wellness-activities/:optionId", cfg.ProfileHandler.RemoveWellnessActivity)
	}

	questions := api.Group("/questions")
	{
		questions.GET("", cfg.ReferenceHandler.GetQuestions)
		questions.GET("/with-options", cfg.ReferenceHandler.GetQuestionsWithOptions)
		questions.GET("/questionnaire", cfg.ReferenceHandler.GetQuestionnaire)
		questions.GET("/section/:sectionNumber", cfg.ReferenceHandler.GetQuestionsBySection)
		questions.GET("/options/:optionId", cfg.ReferenceHandler.GetOptionByID)
		questions.GET("/:id", cfg.ReferenceHandler.GetQuestionByID)
		questions.GET("/:id/options", cfg.ReferenceHandler.GetQuestionOptions)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", cfg.ReferenceHandler.GetCategories)
		categories.GET("/with-questions", cfg.ReferenceHandler.GetCategoriesWithQuestions)
		categories.GET("/mappings", cfg.ReferenceHandler.GetMappings)
		categories.GET("/:id", cfg.ReferenceHandler.GetCategoryByID)
		categories.GET("/:id/questions", cfg.ReferenceHandler.GetCategoryQuestions)
	}

	api.GET("/improvement-areas", cfg.ReferenceHandler.GetImprovementAreaOptions)
	api.GET("/wellness-activities", cfg.ReferenceHandler.GetWellnessActivityOptions)

	surveys := api.Group("/surveys")
	{
		surveys.GET("", cfg.AuthMiddleware.RequireAdmin(), cfg.SurveyHandler.GetAll)
		surveys.POST("", cfg.SurveyHandler.Create)
		surveys.GET("/profile/:profileId", cfg.SurveyHandler.GetByProfile)
		surveys.GET("/profile/:profileId/latest", cfg.SurveyHandler.GetLatestByProfile)
		surveys.GET("/profile/:profileId/history", cfg.SurveyHandler.GetHistory)
		surveys.GET("/:id", cfg.SurveyHandler.GetByID)
		surveys.PUT("/:id", cfg.SurveyHandler.Update)
	}

	metrics := api.Group("/metrics")
	{
		metrics.GET("/wellness", cfg.AuthMiddleware.RequireAdmin(), cfg.MetricsHandler.GetLatestWellnessMetric)
		metrics.GET("/surveys/statistics", cfg.AuthMiddleware.RequireAdmin(), cfg.MetricsHandler.GetSurveyStatistics)
		metrics.GET("/users/:userId/login-history", cfg.MetricsHandler.GetLoginHistory)
		metrics.GET("/users/:userId/activity", cfg.MetricsHandler.GetUserActivity)
		metrics.POST("/users/:userId/activity", cfg.AuthMiddleware.RequireAdmin(), cfg.MetricsHandler.LogActivity)
	}

	return router
}
