package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fitforge/backend/config"
	"github.com/fitforge/backend/internal/api"
	"github.com/fitforge/backend/internal/database"
	"github.com/fitforge/backend/internal/middleware"
	"github.com/fitforge/backend/internal/router"
	"github.com/fitforge/backend/internal/service"
)

func main() {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// The API stays up without redis; generation simply goes unthrottled.
	var generationLimiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, generation rate limiting disabled", zap.Error(err))
	} else {
		generationLimiter = middleware.NewGenerationRateLimiter(
			redisClient,
			cfg.GenerationRateLimit,
			time.Duration(cfg.GenerationRateWindow)*time.Second,
		)
	}

	generationService := service.NewGenerationService(db, logger)
	authService := service.NewAuthService(db, cfg.JWTSecret, logger, generationService)
	profileService := service.NewProfileService(db)
	exerciseService := service.NewExerciseService(db)
	workoutService := service.NewWorkoutService(db)
	nutritionService := service.NewNutritionService(db)
	logService := service.NewLogService(db)

	var allowedOrigins []string
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewProfileHandler(profileService),
		api.NewExerciseHandler(exerciseService),
		api.NewPlanHandler(generationService, workoutService, nutritionService),
		api.NewLogHandler(logService),
		authService,
		generationLimiter,
		allowedOrigins,
		logger,
	)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		errChan <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
