package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/testhelpers"
)

func createTestUser(t *testing.T, db *gorm.DB, mutate func(*models.User)) *models.User {
	t.Helper()
	user := &models.User{
		FullName:        "Test User",
		Email:           uuid.NewString() + "@example.com",
		PasswordHash:    "not-a-real-hash",
		DateOfBirth:     time.Now().AddDate(-30, 0, -1),
		Gender:          "female",
		HeightCm:        165,
		WeightKg:        60,
		Role:            "user",
		FitnessGoal:     models.GoalWeightLoss,
		ExperienceLevel: models.LevelIntermediate,
		PreferredVenue:  models.VenueGym,
		ActivityLevel:   "moderately_active",
	}
	if mutate != nil {
		mutate(user)
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestConfig(t *testing.T, db *gorm.DB, mutate func(*models.PlanConfig)) *models.PlanConfig {
	t.Helper()
	cfg := &models.PlanConfig{
		FitnessGoal:     models.GoalWeightLoss,
		ExperienceLevel: models.LevelIntermediate,
		Venue:           models.VenueGym,
		MuscleGroupSplit: models.SplitMap{
			"day1": "chest",
			"day2": "rest",
			"day3": "legs",
		},
		ExerciseCountRange: models.IntRange{Min: 2, Max: 3},
		RestPeriodRange:    models.IntRange{Min: 60, Max: 90},
		SetRanges: models.RangePair{
			Compound:  models.IntRange{Min: 3, Max: 4},
			Isolation: models.IntRange{Min: 2, Max: 3},
		},
		RepRanges: models.RangePair{
			Compound:  models.IntRange{Min: 6, Max: 10},
			Isolation: models.IntRange{Min: 10, Max: 15},
		},
	}
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, db.Create(cfg).Error)
	return cfg
}

func seedExerciseLibrary(t *testing.T, db *gorm.DB) {
	t.Helper()
	exercises := []models.Exercise{
		{Name: "Bench Press", TargetMuscleGroup: "chest", Difficulty: "intermediate", Venue: "gym"},
		{Name: "Incline Press", TargetMuscleGroup: "chest", Difficulty: "intermediate", Venue: "gym"},
		{Name: "Chest Fly", TargetMuscleGroup: "chest", Difficulty: "intermediate", Venue: "gym"},
		{Name: "Cable Crossover", TargetMuscleGroup: "chest", Difficulty: "intermediate", Venue: "gym"},
		{Name: "Barbell Squat", TargetMuscleGroup: "legs", Difficulty: "intermediate", Venue: "gym"},
		{Name: "Leg Press", TargetMuscleGroup: "legs", Difficulty: "intermediate", Venue: "gym"},
		{Name: "Leg Curl", TargetMuscleGroup: "legs", Difficulty: "intermediate", Venue: "gym"},
		{Name: "Leg Extension", TargetMuscleGroup: "legs", Difficulty: "intermediate", Venue: "gym"},
		{Name: "Push-Up", TargetMuscleGroup: "chest", Difficulty: "beginner", Venue: "home"},
	}
	for i := range exercises {
		require.NoError(t, db.Create(&exercises[i]).Error)
	}
}

func TestGenerateWorkoutPlanPersistsAggregate(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	user := createTestUser(t, db, nil)
	createTestConfig(t, db, nil)
	seedExerciseLibrary(t, db)

	svc := NewGenerationService(db, nil).WithSeed(42, 7)
	ok := svc.GenerateWorkoutPlan(context.Background(), user.ID)
	require.True(t, ok)

	var plan models.WorkoutPlan
	err := db.Preload("Sessions.Exercises").Where("user_id = ?", user.ID).First(&plan).Error
	require.NoError(t, err)

	assert.Equal(t, "Fat Burning Plan", plan.Name)
	assert.Equal(t, models.GoalWeightLoss, plan.Goal)
	assert.Equal(t, models.LevelIntermediate, plan.Difficulty)
	assert.Equal(t, 12, plan.DurationWeeks)
	assert.Equal(t, models.VenueGym, plan.Venue)
	assert.True(t, plan.IsAIGenerated)
	require.Len(t, plan.Sessions, 3)

	for _, session := range plan.Sessions {
		if session.TargetMuscleGroups == "rest" {
			assert.Equal(t, 0, session.DurationMinutes)
			assert.Empty(t, session.Exercises)
			continue
		}
		// Intermediate base 45-60 plus the weight-loss bonus.
		assert.GreaterOrEqual(t, session.DurationMinutes, 55)
		assert.LessOrEqual(t, session.DurationMinutes, 70)
		assert.NotEmpty(t, session.Exercises)

		orders := make(map[int]bool)
		for _, ex := range session.Exercises {
			assert.GreaterOrEqual(t, ex.Sets, 3)
			assert.LessOrEqual(t, ex.Sets, 4)
			assert.GreaterOrEqual(t, ex.Reps, 12)
			assert.LessOrEqual(t, ex.Reps, 20)
			orders[ex.Order] = true
		}
		for i := 1; i <= len(session.Exercises); i++ {
			assert.True(t, orders[i], "order %d missing", i)
		}
	}

	var history models.PlanHistory
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&history).Error)
	require.NotNil(t, history.WorkoutPlanID)
	assert.Equal(t, plan.ID, *history.WorkoutPlanID)
	assert.Equal(t, "workout", history.UserInputs.PlanType)
	assert.Equal(t, models.GoalWeightLoss, history.UserInputs.FitnessGoal)
	assert.InDelta(t, 60.0, history.UserInputs.WeightKg, 0.001)
	assert.False(t, history.GeneratedAt.IsZero())
}

func TestGenerateWorkoutPlanMissingProfile(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	createTestConfig(t, db, nil)
	seedExerciseLibrary(t, db)

	svc := NewGenerationService(db, nil)
	ok := svc.GenerateWorkoutPlan(context.Background(), uuid.New())
	assert.False(t, ok)

	var count int64
	require.NoError(t, db.Model(&models.WorkoutPlan{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerateWorkoutPlanNoConfiguration(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	user := createTestUser(t, db, nil)
	seedExerciseLibrary(t, db)

	svc := NewGenerationService(db, nil)
	ok := svc.GenerateWorkoutPlan(context.Background(), user.ID)
	assert.False(t, ok)

	var count int64
	require.NoError(t, db.Model(&models.WorkoutPlan{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.PlanHistory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerateWorkoutPlanConfigFallback(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	// Only a muscle_gain/beginner config exists; the weight_loss user
	// still gets a plan through the fallback cascade.
	createTestConfig(t, db, func(cfg *models.PlanConfig) {
		cfg.FitnessGoal = models.GoalMuscleGain
		cfg.ExperienceLevel = models.LevelBeginner
	})
	user := createTestUser(t, db, nil)
	seedExerciseLibrary(t, db)

	svc := NewGenerationService(db, nil).WithSeed(1, 1)
	ok := svc.GenerateWorkoutPlan(context.Background(), user.ID)
	assert.True(t, ok)
}

func TestGenerateWorkoutPlanEmptyPoolStillSucceeds(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	user := createTestUser(t, db, nil)
	createTestConfig(t, db, nil)

	svc := NewGenerationService(db, nil).WithSeed(1, 1)
	ok := svc.GenerateWorkoutPlan(context.Background(), user.ID)
	require.True(t, ok)

	var plan models.WorkoutPlan
	require.NoError(t, db.Preload("Sessions.Exercises").Where("user_id = ?", user.ID).First(&plan).Error)
	require.Len(t, plan.Sessions, 3)
	for _, session := range plan.Sessions {
		assert.Empty(t, session.Exercises)
	}
}

func TestGenerateWorkoutPlanRollsBackOnPersistenceFailure(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	user := createTestUser(t, db, nil)
	createTestConfig(t, db, nil)
	seedExerciseLibrary(t, db)

	// The history insert is the last write of the transaction; with its
	// table gone the whole run must roll back, leaving no partial plan.
	require.NoError(t, db.Migrator().DropTable(&models.PlanHistory{}))

	svc := NewGenerationService(db, nil).WithSeed(42, 7)
	ok := svc.GenerateWorkoutPlan(context.Background(), user.ID)
	assert.False(t, ok)

	var count int64
	require.NoError(t, db.Model(&models.WorkoutPlan{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.WorkoutSession{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.WorkoutExercise{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerateNutritionPlanPersistsAggregate(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	user := createTestUser(t, db, func(u *models.User) {
		u.DietaryRestrictions = "vegetarian"
	})

	svc := NewGenerationService(db, nil).WithSeed(42, 7)
	ok := svc.GenerateNutritionPlan(context.Background(), user.ID)
	require.True(t, ok)

	var plan models.NutritionPlan
	require.NoError(t, db.Preload("Meals").Where("user_id = ?", user.ID).First(&plan).Error)

	assert.Equal(t, 1792, plan.DailyCalories)
	assert.Equal(t, 120, plan.ProteinGrams)
	assert.Equal(t, 48, plan.FatGrams)
	assert.Equal(t, 220, plan.CarbsGrams)
	assert.Equal(t, 4, plan.MealsPerDay)
	assert.Equal(t, "vegetarian", plan.Restrictions)
	assert.True(t, plan.IsAIGenerated)
	require.Len(t, plan.Meals, 7*4)

	days := make(map[int]int)
	for _, meal := range plan.Meals {
		days[meal.DayNumber]++
		assert.NotEmpty(t, meal.Name)
		assert.NotEmpty(t, meal.Recipe)
		assert.Positive(t, meal.Calories)
	}
	for day := 1; day <= 7; day++ {
		assert.Equal(t, 4, days[day])
	}

	var history models.PlanHistory
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&history).Error)
	require.NotNil(t, history.NutritionPlanID)
	assert.Equal(t, plan.ID, *history.NutritionPlanID)
	assert.Equal(t, "nutrition", history.UserInputs.PlanType)
}

func TestGenerateNutritionPlanMissingProfile(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)

	svc := NewGenerationService(db, nil)
	ok := svc.GenerateNutritionPlan(context.Background(), uuid.New())
	assert.False(t, ok)
}

func TestGenerationReproducibleWithSeed(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	user := createTestUser(t, db, nil)
	createTestConfig(t, db, nil)
	seedExerciseLibrary(t, db)

	svc := NewGenerationService(db, nil)
	require.True(t, svc.WithSeed(99, 3).GenerateWorkoutPlan(context.Background(), user.ID))
	require.True(t, svc.WithSeed(99, 3).GenerateWorkoutPlan(context.Background(), user.ID))

	var plans []models.WorkoutPlan
	require.NoError(t, db.
		Preload("Sessions", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Sessions.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_order") }).
		Where("user_id = ?", user.ID).
		Order("created_at").
		Find(&plans).Error)
	require.Len(t, plans, 2)

	first, second := plans[0], plans[1]
	require.Len(t, second.Sessions, len(first.Sessions))
	for i := range first.Sessions {
		assert.Equal(t, first.Sessions[i].DurationMinutes, second.Sessions[i].DurationMinutes)
		require.Len(t, second.Sessions[i].Exercises, len(first.Sessions[i].Exercises))
		for j := range first.Sessions[i].Exercises {
			a, b := first.Sessions[i].Exercises[j], second.Sessions[i].Exercises[j]
			assert.Equal(t, a.ExerciseID, b.ExerciseID)
			assert.Equal(t, a.Sets, b.Sets)
			assert.Equal(t, a.Reps, b.Reps)
			assert.Equal(t, a.RestPeriodSeconds, b.RestPeriodSeconds)
		}
	}
}
