package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise is one entry in the exercise library. Reference data: the
// engine only ever reads it.
type Exercise struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string         `gorm:"size:100;not null" json:"name"`
	Description       string         `gorm:"type:text" json:"description"`
	TargetMuscleGroup string         `gorm:"size:50;not null;index" json:"target_muscle_group"`
	Equipment         string         `gorm:"type:text" json:"equipment"`
	Difficulty        string         `gorm:"size:20;not null" json:"difficulty"`
	Venue             string         `gorm:"size:20;not null;index" json:"venue"`
	Instructions      string         `gorm:"type:text" json:"instructions"`
	VideoURL          string         `gorm:"size:255" json:"video_url"`
	ImageURL          string         `gorm:"size:255" json:"image_url"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
