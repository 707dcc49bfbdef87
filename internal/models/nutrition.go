package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NutritionPlan is a generated daily-calorie and macro target set with a
// 7-day meal cycle attached.
type NutritionPlan struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Goal          string         `gorm:"size:50;not null" json:"goal"`
	DailyCalories int            `gorm:"not null" json:"daily_calories"`
	ProteinGrams  int            `gorm:"not null" json:"protein_grams"`
	CarbsGrams    int            `gorm:"not null" json:"carbs_grams"`
	FatGrams      int            `gorm:"not null" json:"fat_grams"`
	MealsPerDay   int            `gorm:"not null" json:"meals_per_day"`
	Restrictions  string         `gorm:"type:text" json:"restrictions"`
	IsAIGenerated bool           `gorm:"not null;default:false" json:"is_ai_generated"`
	Meals         []MealPlan     `gorm:"foreignKey:NutritionPlanID" json:"meals,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *NutritionPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// MealPlan is one meal slot on one day of the 7-day cycle.
type MealPlan struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NutritionPlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"nutrition_plan_id"`
	DayNumber       int       `gorm:"not null" json:"day_number"`
	MealTime        string    `gorm:"size:50;not null" json:"meal_time"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Calories        int       `gorm:"not null" json:"calories"`
	Protein         int       `gorm:"not null" json:"protein"`
	Carbs           int       `gorm:"not null" json:"carbs"`
	Fat             int       `gorm:"not null" json:"fat"`
	Recipe          string    `gorm:"type:text" json:"recipe"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
