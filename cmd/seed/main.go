package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitforge/backend/config"
	"github.com/fitforge/backend/internal/database"
	"github.com/fitforge/backend/internal/models"
)

func main() {
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
		logger.Fatal("migration failed", zap.Error(err))
	}

	if err := seedPlanConfigs(db); err != nil {
		logger.Fatal("seeding plan configs failed", zap.Error(err))
	}
	if err := seedExercises(db); err != nil {
		logger.Fatal("seeding exercises failed", zap.Error(err))
	}
	logger.Info("seed data applied")
}

// seedPlanConfigs inserts the baseline generation configuration rows.
// Existing rows are left alone so reseeding is safe.
func seedPlanConfigs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PlanConfig{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fullBodySplit := models.SplitMap{
		"day1": "full_body",
		"day2": "rest",
		"day3": "full_body",
		"day4": "rest",
		"day5": "full_body",
	}
	upperLowerSplit := models.SplitMap{
		"day1": "chest",
		"day2": "back",
		"day3": "rest",
		"day4": "legs",
		"day5": "shoulders",
		"day6": "rest",
	}
	pushPullLegsSplit := models.SplitMap{
		"day1": "chest",
		"day2": "back",
		"day3": "legs",
		"day4": "rest",
		"day5": "shoulders",
		"day6": "arms",
	}

	configs := []models.PlanConfig{
		{
			FitnessGoal:        models.GoalWeightLoss,
			ExperienceLevel:    models.LevelBeginner,
			Venue:              models.VenueGym,
			MuscleGroupSplit:   fullBodySplit,
			ExerciseCountRange: models.IntRange{Min: 3, Max: 5},
			RestPeriodRange:    models.IntRange{Min: 45, Max: 60},
			SetRanges: models.RangePair{
				Compound:  models.IntRange{Min: 2, Max: 3},
				Isolation: models.IntRange{Min: 2, Max: 3},
			},
			RepRanges: models.RangePair{
				Compound:  models.IntRange{Min: 10, Max: 15},
				Isolation: models.IntRange{Min: 12, Max: 15},
			},
		},
		{
			FitnessGoal:        models.GoalWeightLoss,
			ExperienceLevel:    models.LevelIntermediate,
			Venue:              models.VenueGym,
			MuscleGroupSplit:   upperLowerSplit,
			ExerciseCountRange: models.IntRange{Min: 4, Max: 6},
			RestPeriodRange:    models.IntRange{Min: 30, Max: 60},
			SetRanges: models.RangePair{
				Compound:  models.IntRange{Min: 3, Max: 4},
				Isolation: models.IntRange{Min: 2, Max: 3},
			},
			RepRanges: models.RangePair{
				Compound:  models.IntRange{Min: 10, Max: 15},
				Isolation: models.IntRange{Min: 12, Max: 20},
			},
		},
		{
			FitnessGoal:        models.GoalMuscleGain,
			ExperienceLevel:    models.LevelBeginner,
			Venue:              models.VenueGym,
			MuscleGroupSplit:   fullBodySplit,
			ExerciseCountRange: models.IntRange{Min: 3, Max: 5},
			RestPeriodRange:    models.IntRange{Min: 60, Max: 90},
			SetRanges: models.RangePair{
				Compound:  models.IntRange{Min: 3, Max: 4},
				Isolation: models.IntRange{Min: 2, Max: 3},
			},
			RepRanges: models.RangePair{
				Compound:  models.IntRange{Min: 6, Max: 10},
				Isolation: models.IntRange{Min: 8, Max: 12},
			},
		},
		{
			FitnessGoal:        models.GoalMuscleGain,
			ExperienceLevel:    models.LevelIntermediate,
			Venue:              models.VenueGym,
			MuscleGroupSplit:   pushPullLegsSplit,
			ExerciseCountRange: models.IntRange{Min: 4, Max: 6},
			RestPeriodRange:    models.IntRange{Min: 60, Max: 120},
			SetRanges: models.RangePair{
				Compound:  models.IntRange{Min: 3, Max: 5},
				Isolation: models.IntRange{Min: 3, Max: 4},
			},
			RepRanges: models.RangePair{
				Compound:  models.IntRange{Min: 6, Max: 10},
				Isolation: models.IntRange{Min: 8, Max: 12},
			},
		},
		{
			FitnessGoal:        models.GoalMaintenance,
			ExperienceLevel:    models.LevelBeginner,
			Venue:              models.VenueHome,
			MuscleGroupSplit:   fullBodySplit,
			ExerciseCountRange: models.IntRange{Min: 3, Max: 5},
			RestPeriodRange:    models.IntRange{Min: 45, Max: 90},
			SetRanges: models.RangePair{
				Compound:  models.IntRange{Min: 2, Max: 3},
				Isolation: models.IntRange{Min: 2, Max: 3},
			},
			RepRanges: models.RangePair{
				Compound:  models.IntRange{Min: 8, Max: 12},
				Isolation: models.IntRange{Min: 10, Max: 15},
			},
		},
	}
	return db.Create(&configs).Error
}

// seedExercises inserts a starter exercise library covering both venues.
func seedExercises(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Exercise{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	exercises := []models.Exercise{
		{Name: "Barbell Bench Press", TargetMuscleGroup: "chest", Equipment: "barbell, bench", Difficulty: models.LevelIntermediate, Venue: models.VenueGym},
		{Name: "Incline Dumbbell Press", TargetMuscleGroup: "chest", Equipment: "dumbbells, bench", Difficulty: models.LevelIntermediate, Venue: models.VenueGym},
		{Name: "Cable Fly", TargetMuscleGroup: "chest", Equipment: "cable machine", Difficulty: models.LevelBeginner, Venue: models.VenueGym},
		{Name: "Push-Up", TargetMuscleGroup: "chest", Equipment: "none", Difficulty: models.LevelBeginner, Venue: models.VenueHome},
		{Name: "Deadlift", TargetMuscleGroup: "back", Equipment: "barbell", Difficulty: models.LevelAdvanced, Venue: models.VenueGym},
		{Name: "Barbell Row", TargetMuscleGroup: "back", Equipment: "barbell", Difficulty: models.LevelIntermediate, Venue: models.VenueGym},
		{Name: "Lat Pulldown", TargetMuscleGroup: "back", Equipment: "cable machine", Difficulty: models.LevelBeginner, Venue: models.VenueGym},
		{Name: "Pull-Up", TargetMuscleGroup: "back", Equipment: "pull-up bar", Difficulty: models.LevelIntermediate, Venue: models.VenueHome},
		{Name: "Barbell Back Squat", TargetMuscleGroup: "legs", Equipment: "barbell, rack", Difficulty: models.LevelIntermediate, Venue: models.VenueGym},
		{Name: "Leg Press", TargetMuscleGroup: "legs", Equipment: "leg press machine", Difficulty: models.LevelBeginner, Venue: models.VenueGym},
		{Name: "Romanian Deadlift", TargetMuscleGroup: "legs", Equipment: "barbell", Difficulty: models.LevelIntermediate, Venue: models.VenueGym},
		{Name: "Walking Lunge", TargetMuscleGroup: "legs", Equipment: "none", Difficulty: models.LevelBeginner, Venue: models.VenueHome},
		{Name: "Bodyweight Squat", TargetMuscleGroup: "legs", Equipment: "none", Difficulty: models.LevelBeginner, Venue: models.VenueHome},
		{Name: "Overhead Press", TargetMuscleGroup: "shoulders", Equipment: "barbell", Difficulty: models.LevelIntermediate, Venue: models.VenueGym},
		{Name: "Lateral Raise", TargetMuscleGroup: "shoulders", Equipment: "dumbbells", Difficulty: models.LevelBeginner, Venue: models.VenueGym},
		{Name: "Pike Push-Up", TargetMuscleGroup: "shoulders", Equipment: "none", Difficulty: models.LevelIntermediate, Venue: models.VenueHome},
		{Name: "Barbell Curl", TargetMuscleGroup: "arms", Equipment: "barbell", Difficulty: models.LevelBeginner, Venue: models.VenueGym},
		{Name: "Triceps Dip", TargetMuscleGroup: "arms", Equipment: "dip bars", Difficulty: models.LevelIntermediate, Venue: models.VenueGym},
		{Name: "Chin-Up", TargetMuscleGroup: "arms", Equipment: "pull-up bar", Difficulty: models.LevelIntermediate, Venue: models.VenueHome},
		{Name: "Plank", TargetMuscleGroup: "core", Equipment: "none", Difficulty: models.LevelBeginner, Venue: models.VenueHome},
		{Name: "Hanging Leg Raise", TargetMuscleGroup: "core", Equipment: "pull-up bar", Difficulty: models.LevelIntermediate, Venue: models.VenueGym},
		{Name: "Burpee", TargetMuscleGroup: "full_body", Equipment: "none", Difficulty: models.LevelIntermediate, Venue: models.VenueHome},
		{Name: "Kettlebell Swing", TargetMuscleGroup: "full_body", Equipment: "kettlebell", Difficulty: models.LevelIntermediate, Venue: models.VenueGym},
		{Name: "Mountain Climber", TargetMuscleGroup: "full_body", Equipment: "none", Difficulty: models.LevelBeginner, Venue: models.VenueHome},
	}
	return db.Create(&exercises).Error
}
