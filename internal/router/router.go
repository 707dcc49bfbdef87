package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fitforge/backend/internal/api"
	"github.com/fitforge/backend/internal/middleware"
	"github.com/fitforge/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	exerciseHandler *api.ExerciseHandler,
	planHandler *api.PlanHandler,
	logHandler *api.LogHandler,
	authService service.IAuthService,
	generationLimiter *middleware.RateLimiter,
	allowedOrigins []string,
	log *zap.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(allowedOrigins))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		// Profile routes
		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		// Exercise library routes
		exercises := protected.Group("/exercises")
		{
			exercises.GET("", exerciseHandler.ListExercises)
			exercises.GET("/:id", exerciseHandler.GetExercise)
			exercises.POST("", exerciseHandler.CreateExercise)
			exercises.PUT("/:id", exerciseHandler.UpdateExercise)
			exercises.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		// Plan routes. Generation is rate limited per user.
		plans := protected.Group("/plans")
		{
			generate := plans.Group("/generate")
			if generationLimiter != nil {
				generate.Use(generationLimiter.RateLimitMiddleware())
			}
			{
				generate.POST("/workout", planHandler.GenerateWorkoutPlan)
				generate.POST("/nutrition", planHandler.GenerateNutritionPlan)
			}

			workout := plans.Group("/workout")
			{
				workout.GET("/current", planHandler.GetCurrentWorkoutPlan)
				workout.GET("", planHandler.ListWorkoutPlans)
				workout.GET("/:id", planHandler.GetWorkoutPlan)
				workout.DELETE("/:id", planHandler.DeleteWorkoutPlan)
			}

			nutrition := plans.Group("/nutrition")
			{
				nutrition.GET("/current", planHandler.GetCurrentNutritionPlan)
				nutrition.GET("", planHandler.ListNutritionPlans)
				nutrition.GET("/:id", planHandler.GetNutritionPlan)
				nutrition.DELETE("/:id", planHandler.DeleteNutritionPlan)
			}

			plans.GET("/history", planHandler.History)
			plans.POST("/history/:id/rating", planHandler.RatePlan)
		}

		// Workout log routes
		logs := protected.Group("/logs")
		{
			logs.POST("", logHandler.CreateWorkoutLog)
			logs.GET("", logHandler.ListWorkoutLogs)
			logs.DELETE("/:id", logHandler.DeleteWorkoutLog)
		}

		// Progress tracking routes
		progress := protected.Group("/progress")
		{
			progress.POST("", logHandler.CreateProgressEntry)
			progress.GET("", logHandler.ListProgressEntries)
		}
	}

	return router
}
