package database

import (
	"gorm.io/gorm"

	"github.com/fitforge/backend/internal/models"
)

// AllModels lists every persisted entity in migration order: referenced
// tables before referencing ones.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Exercise{},
		&models.PlanConfig{},
		&models.WorkoutPlan{},
		&models.WorkoutSession{},
		&models.WorkoutExercise{},
		&models.NutritionPlan{},
		&models.MealPlan{},
		&models.PlanHistory{},
		&models.WorkoutLog{},
		&models.ExerciseLog{},
		&models.ProgressEntry{},
	}
}

// Migrate applies the gorm auto-migration for the full schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
