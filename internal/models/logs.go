package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutLog records one performed workout session.
type WorkoutLog struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionID      uuid.UUID     `gorm:"type:uuid;not null" json:"session_id"`
	Date           time.Time     `gorm:"not null" json:"date"`
	DurationMin    int           `gorm:"not null" json:"duration_min"`
	CaloriesBurned int           `json:"calories_burned"`
	Completed      bool          `gorm:"not null;default:true" json:"completed"`
	Notes          string        `gorm:"type:text" json:"notes"`
	ExerciseLogs   []ExerciseLog `gorm:"foreignKey:WorkoutLogID" json:"exercise_logs,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (l *WorkoutLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// ExerciseLog records the sets actually performed for one exercise of a
// logged workout.
type ExerciseLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkoutLogID uuid.UUID `gorm:"type:uuid;not null;index" json:"workout_log_id"`
	ExerciseID   uuid.UUID `gorm:"type:uuid;not null" json:"exercise_id"`
	Sets         int       `gorm:"not null" json:"sets"`
	Reps         int       `gorm:"not null" json:"reps"`
	WeightKg     float64   `json:"weight_kg"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (l *ExerciseLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// ProgressEntry is a body measurement snapshot.
type ProgressEntry struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Date              time.Time `gorm:"not null" json:"date"`
	WeightKg          float64   `json:"weight_kg"`
	BodyFatPercentage float64   `json:"body_fat_percentage"`
	ChestCm           float64   `json:"chest_cm"`
	WaistCm           float64   `json:"waist_cm"`
	HipsCm            float64   `json:"hips_cm"`
	ArmsCm            float64   `json:"arms_cm"`
	ThighsCm          float64   `json:"thighs_cm"`
	Notes             string    `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (p *ProgressEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
