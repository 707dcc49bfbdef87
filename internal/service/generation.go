package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/planner"
)

var ErrProfileNotFound = errors.New("user profile not found")

// GenerationService runs the plan generation engine against the database.
// Each call loads the inputs, runs the pure engine and persists the result
// inside a single transaction. The boolean return signals whether a plan
// was produced; all failure causes are logged, never raised.
type GenerationService struct {
	db   *gorm.DB
	log  *zap.Logger
	seed func() rand.Source
}

func NewGenerationService(db *gorm.DB, log *zap.Logger) *GenerationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &GenerationService{
		db:  db,
		log: log,
		seed: func() rand.Source {
			now := uint64(time.Now().UnixNano())
			return rand.NewPCG(now, now>>32)
		},
	}
}

// WithSeed pins the random source so generation runs are reproducible.
// Intended for tests.
func (s *GenerationService) WithSeed(seed1, seed2 uint64) *GenerationService {
	s.seed = func() rand.Source { return rand.NewPCG(seed1, seed2) }
	return s
}

// GenerateWorkoutPlan builds and stores a workout plan for the user.
// Returns false when the profile is missing, no configuration exists, or
// persistence fails.
func (s *GenerationService) GenerateWorkoutPlan(ctx context.Context, userID uuid.UUID) bool {
	log := s.log.With(zap.String("user_id", userID.String()), zap.String("plan_type", "workout"))

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		log.Warn("generation skipped", zap.Error(err))
		return false
	}
	profile := profileFromUser(user)

	cfg, err := s.resolveConfig(ctx, profile)
	if err != nil {
		log.Warn("generation skipped", zap.Error(err))
		return false
	}

	pool, err := s.loadExercisePool(ctx, profile.Venue)
	if err != nil {
		log.Error("exercise pool load failed", zap.Error(err))
		return false
	}

	gen := planner.New(rand.New(s.seed()), log)
	plan := gen.WorkoutProgram(profile, cfg, pool)

	record := workoutPlanRecord(userID, plan)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		history := historyRecord(user, "workout")
		history.WorkoutPlanID = &record.ID
		return tx.Create(&history).Error
	})
	if err != nil {
		log.Error("workout plan persistence failed", zap.Error(err))
		return false
	}

	log.Info("workout plan generated",
		zap.String("plan_id", record.ID.String()),
		zap.Int("sessions", len(record.Sessions)),
		zap.Int("duration_weeks", record.DurationWeeks))
	return true
}

// GenerateNutritionPlan builds and stores a nutrition plan with its 7-day
// meal cycle. Same failure contract as GenerateWorkoutPlan.
func (s *GenerationService) GenerateNutritionPlan(ctx context.Context, userID uuid.UUID) bool {
	log := s.log.With(zap.String("user_id", userID.String()), zap.String("plan_type", "nutrition"))

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		log.Warn("generation skipped", zap.Error(err))
		return false
	}
	profile := profileFromUser(user)

	targets := planner.Nutrition(profile)
	gen := planner.New(rand.New(s.seed()), log)
	meals := gen.MealPlan(targets, profile)

	record := nutritionPlanRecord(userID, profile, targets, meals)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		history := historyRecord(user, "nutrition")
		history.NutritionPlanID = &record.ID
		return tx.Create(&history).Error
	})
	if err != nil {
		log.Error("nutrition plan persistence failed", zap.Error(err))
		return false
	}

	log.Info("nutrition plan generated",
		zap.String("plan_id", record.ID.String()),
		zap.Int("daily_calories", record.DailyCalories),
		zap.Int("meals", len(record.Meals)))
	return true
}

func (s *GenerationService) loadUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &user, nil
}

// resolveConfig loads the full configuration table and applies the
// cascading fallback in memory. The table is reference data and small.
func (s *GenerationService) resolveConfig(ctx context.Context, profile planner.Profile) (planner.Config, error) {
	var rows []models.PlanConfig
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return planner.Config{}, err
	}

	table := make([]planner.Config, 0, len(rows))
	for _, row := range rows {
		table = append(table, configFromModel(row))
	}
	return planner.Resolve(table, profile.Goal, profile.Experience, profile.Venue)
}

func (s *GenerationService) loadExercisePool(ctx context.Context, venue string) ([]planner.Exercise, error) {
	var rows []models.Exercise
	if err := s.db.WithContext(ctx).Where("venue = ?", venue).Find(&rows).Error; err != nil {
		return nil, err
	}

	pool := make([]planner.Exercise, 0, len(rows))
	for _, row := range rows {
		pool = append(pool, planner.Exercise{
			ID:          row.ID,
			Name:        row.Name,
			MuscleGroup: row.TargetMuscleGroup,
			Difficulty:  row.Difficulty,
		})
	}
	return pool, nil
}

func profileFromUser(user *models.User) planner.Profile {
	return planner.Profile{
		Goal:          user.FitnessGoal,
		Experience:    user.ExperienceLevel,
		Venue:         user.PreferredVenue,
		Gender:        user.Gender,
		HeightCm:      user.HeightCm,
		WeightKg:      user.WeightKg,
		AgeYears:      planner.AgeAt(user.DateOfBirth, time.Now()),
		ActivityLevel: user.ActivityLevel,
		Restrictions:  user.DietaryRestrictions,
	}
}

func configFromModel(row models.PlanConfig) planner.Config {
	days := row.MuscleGroupSplit.Days()
	split := make([]planner.SplitDay, 0, len(days))
	for _, d := range days {
		split = append(split, planner.SplitDay{Day: d.Day, MuscleGroup: d.MuscleGroup})
	}

	return planner.Config{
		Goal:          row.FitnessGoal,
		Experience:    row.ExperienceLevel,
		Venue:         row.Venue,
		Split:         split,
		ExerciseCount: planner.Range{Min: row.ExerciseCountRange.Min, Max: row.ExerciseCountRange.Max},
		RestPeriod:    planner.Range{Min: row.RestPeriodRange.Min, Max: row.RestPeriodRange.Max},
		Sets: planner.RangePair{
			Compound:  planner.Range{Min: row.SetRanges.Compound.Min, Max: row.SetRanges.Compound.Max},
			Isolation: planner.Range{Min: row.SetRanges.Isolation.Min, Max: row.SetRanges.Isolation.Max},
		},
		Reps: planner.RangePair{
			Compound:  planner.Range{Min: row.RepRanges.Compound.Min, Max: row.RepRanges.Compound.Max},
			Isolation: planner.Range{Min: row.RepRanges.Isolation.Min, Max: row.RepRanges.Isolation.Max},
		},
	}
}

func workoutPlanRecord(userID uuid.UUID, plan planner.WorkoutPlan) *models.WorkoutPlan {
	record := &models.WorkoutPlan{
		UserID:        userID,
		Name:          plan.Name,
		Description:   plan.Description,
		Goal:          plan.Goal,
		Difficulty:    plan.Difficulty,
		DurationWeeks: plan.DurationWeeks,
		Venue:         plan.Venue,
		IsAIGenerated: true,
	}
	for _, session := range plan.Sessions {
		rec := models.WorkoutSession{
			DayNumber:          session.Day,
			Name:               session.Name,
			Description:        session.Description,
			TargetMuscleGroups: session.MuscleGroups,
			DurationMinutes:    session.DurationMinutes,
		}
		for _, p := range session.Exercises {
			rec.Exercises = append(rec.Exercises, models.WorkoutExercise{
				ExerciseID:        p.ExerciseID,
				Sets:              p.Sets,
				Reps:              p.Reps,
				RestPeriodSeconds: p.RestSeconds,
				Order:             p.Order,
			})
		}
		record.Sessions = append(record.Sessions, rec)
	}
	return record
}

func nutritionPlanRecord(userID uuid.UUID, profile planner.Profile, targets planner.NutritionTargets, meals []planner.Meal) *models.NutritionPlan {
	record := &models.NutritionPlan{
		UserID:        userID,
		Goal:          profile.Goal,
		DailyCalories: targets.DailyCalories,
		ProteinGrams:  targets.ProteinGrams,
		CarbsGrams:    targets.CarbsGrams,
		FatGrams:      targets.FatGrams,
		MealsPerDay:   targets.MealsPerDay,
		Restrictions:  profile.Restrictions,
		IsAIGenerated: true,
	}
	for _, meal := range meals {
		record.Meals = append(record.Meals, models.MealPlan{
			DayNumber:   meal.Day,
			MealTime:    meal.Slot,
			Name:        meal.Name,
			Description: meal.Description,
			Calories:    meal.Calories,
			Protein:     meal.Protein,
			Carbs:       meal.Carbs,
			Fat:         meal.Fat,
			Recipe:      meal.Recipe,
		})
	}
	return record
}

func historyRecord(user *models.User, planType string) models.PlanHistory {
	return models.PlanHistory{
		UserID: user.ID,
		UserInputs: models.GenerationInputs{
			PlanType:        planType,
			FitnessGoal:     user.FitnessGoal,
			ExperienceLevel: user.ExperienceLevel,
			Venue:           user.PreferredVenue,
			HeightCm:        user.HeightCm,
			WeightKg:        user.WeightKg,
		},
		GeneratedAt: time.Now(),
	}
}
