package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerationInputs is the snapshot of profile fields that triggered a
// generation run, stored as an opaque JSONB payload.
type GenerationInputs struct {
	PlanType        string  `json:"plan_type"`
	FitnessGoal     string  `json:"fitness_goal"`
	ExperienceLevel string  `json:"experience_level"`
	Venue           string  `json:"venue"`
	HeightCm        float64 `json:"height_cm"`
	WeightKg        float64 `json:"weight_kg"`
}

// Value implements the driver.Valuer interface.
func (g GenerationInputs) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements the sql.Scanner interface.
func (g *GenerationInputs) Scan(value interface{}) error {
	return scanJSON(value, g)
}

// PlanHistory is one append-only audit record per generation run.
type PlanHistory struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	WorkoutPlanID   *uuid.UUID       `gorm:"type:uuid" json:"workout_plan_id,omitempty"`
	NutritionPlanID *uuid.UUID       `gorm:"type:uuid" json:"nutrition_plan_id,omitempty"`
	UserInputs      GenerationInputs `gorm:"type:jsonb;not null" json:"user_inputs"`
	GeneratedAt     time.Time        `gorm:"not null" json:"generated_at"`
	Rating          *int             `json:"rating,omitempty"`
	Feedback        string           `gorm:"type:text" json:"feedback"`
}

func (h *PlanHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.GeneratedAt.IsZero() {
		h.GeneratedAt = time.Now()
	}
	return nil
}
