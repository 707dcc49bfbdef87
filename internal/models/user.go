package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fitness goal values. Goal is stored as free text so deployments can add
// values such as "strength" or "endurance" beyond the core enum; the
// planner matches the extras by substring.
const (
	GoalWeightLoss  = "weight_loss"
	GoalMuscleGain  = "muscle_gain"
	GoalMaintenance = "maintenance"
)

// Experience level values.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Workout venue values.
const (
	VenueHome = "home"
	VenueGym  = "gym"
)

// User stores the account identity together with the physical and
// preference attributes the plan generation engine reads.
type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FullName            string         `gorm:"not null" json:"full_name"`
	Email               string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash        string         `gorm:"size:255;not null" json:"-"`
	DateOfBirth         time.Time      `gorm:"not null" json:"date_of_birth"`
	Gender              string         `gorm:"size:20;not null" json:"gender"`
	HeightCm            float64        `gorm:"not null" json:"height_cm"`
	WeightKg            float64        `gorm:"not null" json:"weight_kg"`
	Role                string         `gorm:"size:20;not null;default:'user'" json:"role"`
	FitnessGoal         string         `gorm:"size:50;not null" json:"fitness_goal"`
	ExperienceLevel     string         `gorm:"size:20;not null" json:"experience_level"`
	PreferredVenue      string         `gorm:"size:20;not null" json:"preferred_venue"`
	ActivityLevel       string         `gorm:"size:50;not null" json:"activity_level"`
	MedicalConditions   string         `gorm:"type:text" json:"medical_conditions"`
	DietaryRestrictions string         `gorm:"type:text" json:"dietary_restrictions"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
