package types

import "time"

// RegisterRequest carries the full onboarding payload. The profile fields
// feed plan generation immediately after signup.
type RegisterRequest struct {
	FullName            string  `json:"full_name" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Password            string  `json:"password" binding:"required,min=8"`
	DateOfBirth         string  `json:"date_of_birth" binding:"required"`
	Gender              string  `json:"gender" binding:"required"`
	HeightCm            float64 `json:"height_cm" binding:"required,gt=0"`
	WeightKg            float64 `json:"weight_kg" binding:"required,gt=0"`
	FitnessGoal         string  `json:"fitness_goal" binding:"required"`
	ExperienceLevel     string  `json:"experience_level" binding:"required"`
	PreferredVenue      string  `json:"preferred_venue" binding:"required"`
	ActivityLevel       string  `json:"activity_level"`
	MedicalConditions   string  `json:"medical_conditions"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
}

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	FullName            *string  `json:"full_name"`
	Gender              *string  `json:"gender"`
	HeightCm            *float64 `json:"height_cm"`
	WeightKg            *float64 `json:"weight_kg"`
	FitnessGoal         *string  `json:"fitness_goal"`
	ExperienceLevel     *string  `json:"experience_level"`
	PreferredVenue      *string  `json:"preferred_venue"`
	ActivityLevel       *string  `json:"activity_level"`
	MedicalConditions   *string  `json:"medical_conditions"`
	DietaryRestrictions *string  `json:"dietary_restrictions"`
}

// ExerciseRequest carries a create or full update of a library exercise.
type ExerciseRequest struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	TargetMuscleGroup string `json:"target_muscle_group" binding:"required"`
	Equipment         string `json:"equipment"`
	Difficulty        string `json:"difficulty" binding:"required"`
	Venue             string `json:"venue" binding:"required"`
	Instructions      string `json:"instructions"`
	VideoURL          string `json:"video_url"`
	ImageURL          string `json:"image_url"`
}

// ExerciseFilter narrows exercise library listings.
type ExerciseFilter struct {
	MuscleGroup string `form:"muscle_group"`
	Difficulty  string `form:"difficulty"`
	Venue       string `form:"venue"`
}

// WorkoutLogRequest records one performed session.
type WorkoutLogRequest struct {
	SessionID      string               `json:"session_id" binding:"required,uuid"`
	Date           time.Time            `json:"date" binding:"required"`
	DurationMin    int                  `json:"duration_min" binding:"required,gt=0"`
	CaloriesBurned int                  `json:"calories_burned"`
	Completed      bool                 `json:"completed"`
	Notes          string               `json:"notes"`
	Exercises      []ExerciseLogRequest `json:"exercises"`
}

// ExerciseLogRequest records the sets performed for one exercise.
type ExerciseLogRequest struct {
	ExerciseID string  `json:"exercise_id" binding:"required,uuid"`
	Sets       int     `json:"sets" binding:"required,gt=0"`
	Reps       int     `json:"reps" binding:"required,gt=0"`
	WeightKg   float64 `json:"weight_kg"`
	Notes      string  `json:"notes"`
}

// ProgressEntryRequest records a body measurement snapshot.
type ProgressEntryRequest struct {
	Date              time.Time `json:"date" binding:"required"`
	WeightKg          float64   `json:"weight_kg"`
	BodyFatPercentage float64   `json:"body_fat_percentage"`
	ChestCm           float64   `json:"chest_cm"`
	WaistCm           float64   `json:"waist_cm"`
	HipsCm            float64   `json:"hips_cm"`
	ArmsCm            float64   `json:"arms_cm"`
	ThighsCm          float64   `json:"thighs_cm"`
	Notes             string    `json:"notes"`
}

// RatePlanRequest attaches a rating and optional feedback to a history
// record.
type RatePlanRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}
