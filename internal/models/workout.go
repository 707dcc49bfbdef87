package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutPlan is a generated multi-week program. The engine creates it
// once and never mutates it; later user edits go through the CRUD path.
type WorkoutPlan struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string           `gorm:"size:100;not null" json:"name"`
	Description   string           `gorm:"type:text" json:"description"`
	Goal          string           `gorm:"size:50;not null" json:"goal"`
	Difficulty    string           `gorm:"size:20;not null" json:"difficulty"`
	DurationWeeks int              `gorm:"not null" json:"duration_weeks"`
	Venue         string           `gorm:"size:20;not null" json:"venue"`
	IsAIGenerated bool             `gorm:"not null;default:false" json:"is_ai_generated"`
	Sessions      []WorkoutSession `gorm:"foreignKey:PlanID" json:"sessions,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (p *WorkoutPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// WorkoutSession is one day of a workout plan.
type WorkoutSession struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID             uuid.UUID         `gorm:"type:uuid;not null;index" json:"plan_id"`
	DayNumber          int               `gorm:"not null" json:"day_number"`
	Name               string            `gorm:"size:100;not null" json:"name"`
	Description        string            `gorm:"type:text" json:"description"`
	TargetMuscleGroups string            `gorm:"size:100;not null" json:"target_muscle_groups"`
	DurationMinutes    int               `gorm:"not null" json:"duration_minutes"`
	Exercises          []WorkoutExercise `gorm:"foreignKey:SessionID" json:"exercises,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func (s *WorkoutSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// WorkoutExercise is one prescribed exercise within a session. Order is
// 1-based and dense within the session.
type WorkoutExercise struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID         uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	ExerciseID        uuid.UUID `gorm:"type:uuid;not null" json:"exercise_id"`
	Exercise          *Exercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
	Sets              int       `gorm:"not null" json:"sets"`
	Reps              int       `gorm:"not null" json:"reps"`
	RestPeriodSeconds int       `gorm:"not null" json:"rest_period_seconds"`
	Order             int       `gorm:"column:exercise_order;not null" json:"order"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (e *WorkoutExercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
