package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/types"
)

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IGenerationService defines the interface for plan generation runs.
type IGenerationService interface {
	GenerateWorkoutPlan(ctx context.Context, userID uuid.UUID) bool
	GenerateNutritionPlan(ctx context.Context, userID uuid.UUID) bool
}

// IProfileService defines the interface for user profile operations.
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.User, error)
}

// IExerciseService defines the interface for exercise library operations.
type IExerciseService interface {
	ListExercises(ctx context.Context, filter types.ExerciseFilter) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id uuid.UUID) (*models.Exercise, error)
	CreateExercise(ctx context.Context, req *types.ExerciseRequest) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, id uuid.UUID, req *types.ExerciseRequest) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, id uuid.UUID) error
}

// IWorkoutService defines the interface for workout plan reads.
type IWorkoutService interface {
	GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*models.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID uuid.UUID) ([]models.WorkoutPlan, error)
	GetPlan(ctx context.Context, userID, planID uuid.UUID) (*models.WorkoutPlan, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
	History(ctx context.Context, userID uuid.UUID) ([]models.PlanHistory, error)
	RatePlan(ctx context.Context, userID, historyID uuid.UUID, req *types.RatePlanRequest) error
}

// INutritionService defines the interface for nutrition plan reads.
type INutritionService interface {
	GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*models.NutritionPlan, error)
	ListPlans(ctx context.Context, userID uuid.UUID) ([]models.NutritionPlan, error)
	GetPlan(ctx context.Context, userID, planID uuid.UUID) (*models.NutritionPlan, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
}

// ILogService defines the interface for workout logs and progress entries.
type ILogService interface {
	CreateWorkoutLog(ctx context.Context, userID uuid.UUID, req *types.WorkoutLogRequest) (*models.WorkoutLog, error)
	ListWorkoutLogs(ctx context.Context, userID uuid.UUID) ([]models.WorkoutLog, error)
	DeleteWorkoutLog(ctx context.Context, userID, logID uuid.UUID) error
	CreateProgressEntry(ctx context.Context, userID uuid.UUID, req *types.ProgressEntryRequest) (*models.ProgressEntry, error)
	ListProgressEntries(ctx context.Context, userID uuid.UUID) ([]models.ProgressEntry, error)
}

var (
	_ IAuthService       = (*AuthService)(nil)
	_ IGenerationService = (*GenerationService)(nil)
	_ IProfileService    = (*ProfileService)(nil)
	_ IExerciseService   = (*ExerciseService)(nil)
	_ IWorkoutService    = (*WorkoutService)(nil)
	_ INutritionService  = (*NutritionService)(nil)
	_ ILogService        = (*LogService)(nil)
)
