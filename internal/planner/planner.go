// Package planner implements the rule-based plan generation engine. It
// synthesizes multi-week workout programs and 7-day nutrition programs
// from a user profile, a generation configuration, and an exercise pool.
//
// The package performs no I/O: callers load the inputs, hand in a seeded
// random source, and persist the returned value aggregates. All warnings
// go through the injected logger.
package planner

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNoConfiguration is returned by Resolve when the configuration
	// table is empty. Fatal for the run, not for the process.
	ErrNoConfiguration = errors.New("no plan configuration available")
)

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// RangePair holds separate ranges for compound and isolation exercises.
type RangePair struct {
	Compound  Range
	Isolation Range
}

// SplitDay is one day of a training split. MuscleGroup is a muscle-group
// tag, a specialized workout label, or the sentinel "rest".
type SplitDay struct {
	Day         int
	MuscleGroup string
}

// Config is one row of the generation configuration table.
type Config struct {
	Goal          string
	Experience    string
	Venue         string
	Split         []SplitDay
	ExerciseCount Range
	RestPeriod    Range
	Sets          RangePair
	Reps          RangePair
}

// Profile carries the user attributes the engine reads. Immutable input.
type Profile struct {
	Goal          string
	Experience    string
	Venue         string
	Gender        string
	HeightCm      float64
	WeightKg      float64
	AgeYears      int
	ActivityLevel string
	Restrictions  string
}

// Exercise is one candidate from the exercise library.
type Exercise struct {
	ID          uuid.UUID
	Name        string
	MuscleGroup string
	Difficulty  string
}

// WorkoutPlan is the generated workout aggregate.
type WorkoutPlan struct {
	Name          string
	Description   string
	Goal          string
	Difficulty    string
	DurationWeeks int
	Venue         string
	Sessions      []Session
}

// Session is one generated training day.
type Session struct {
	Day             int
	Name            string
	Description     string
	MuscleGroups    string
	DurationMinutes int
	Exercises       []Prescription
}

// Prescription assigns sets, reps and rest to one selected exercise.
// Order is 1-based and dense within the session.
type Prescription struct {
	ExerciseID  uuid.UUID
	Sets        int
	Reps        int
	RestSeconds int
	Order       int
}

// NutritionTargets are the computed daily calorie and macro targets.
type NutritionTargets struct {
	DailyCalories int
	ProteinGrams  int
	CarbsGrams    int
	FatGrams      int
	MealsPerDay   int
}

// Meal is one generated meal slot on one day of the 7-day cycle.
type Meal struct {
	Day         int
	Slot        string
	Name        string
	Description string
	Calories    int
	Protein     int
	Carbs       int
	Fat         int
	Recipe      string
}

// Generator runs the engine. Randomness flows through the injected source
// so runs are reproducible under test; logging is a cross-cutting concern
// injected by the caller.
type Generator struct {
	rng *rand.Rand
	log *zap.Logger
}

// New constructs a Generator. A nil logger disables warning output.
func New(rng *rand.Rand, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{rng: rng, log: log}
}

// WorkoutProgram generates the full workout aggregate for the profile.
func (g *Generator) WorkoutProgram(profile Profile, cfg Config, pool []Exercise) WorkoutPlan {
	meta := PlanMeta(profile.Goal, profile.Experience)
	return WorkoutPlan{
		Name:          meta.Name,
		Description:   meta.Description,
		Goal:          profile.Goal,
		Difficulty:    profile.Experience,
		DurationWeeks: meta.DurationWeeks,
		Venue:         profile.Venue,
		Sessions:      g.Sessions(cfg, profile, pool),
	}
}

// formatLabel turns a tag like "weight_loss" into "Weight Loss".
func formatLabel(tag string) string {
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
