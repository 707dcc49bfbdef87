package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertWithin(t *testing.T, value int, r Range, label string) {
	t.Helper()
	assert.GreaterOrEqual(t, value, r.Min, label)
	assert.LessOrEqual(t, value, r.Max, label)
}

func TestPrescribeStrengthCompound(t *testing.T) {
	exercise := ex("Barbell Squat", "legs", "intermediate")

	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		p := g.prescribe(exercise, "strength", "legs", baseConfig(), 1)
		assertWithin(t, p.Sets, Range{4, 5}, "sets")
		assertWithin(t, p.Reps, Range{3, 6}, "reps")
		assertWithin(t, p.RestSeconds, Range{180, 240}, "rest")
		assert.Equal(t, exercise.ID, p.ExerciseID)
		assert.Equal(t, 1, p.Order)
	}
}

func TestPrescribeStrengthIsolation(t *testing.T) {
	exercise := ex("Leg Extension", "legs", "intermediate")

	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		p := g.prescribe(exercise, "strength_focus", "legs", baseConfig(), 2)
		assertWithin(t, p.Sets, Range{3, 4}, "sets")
		assertWithin(t, p.Reps, Range{6, 10}, "reps")
		assertWithin(t, p.RestSeconds, Range{120, 180}, "rest")
	}
}

func TestPrescribeMuscleGain(t *testing.T) {
	compound := ex("Bench Press", "chest", "intermediate")
	isolation := ex("Chest Fly", "chest", "intermediate")

	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)

		p := g.prescribe(compound, "muscle_gain", "chest", baseConfig(), 1)
		assertWithin(t, p.Sets, Range{3, 5}, "compound sets")
		assertWithin(t, p.Reps, Range{6, 12}, "compound reps")
		assertWithin(t, p.RestSeconds, Range{90, 120}, "compound rest")

		p = g.prescribe(isolation, "muscle_gain", "chest", baseConfig(), 2)
		assertWithin(t, p.Sets, Range{3, 4}, "isolation sets")
		assertWithin(t, p.Reps, Range{8, 15}, "isolation reps")
		assertWithin(t, p.RestSeconds, Range{60, 90}, "isolation rest")
	}
}

func TestPrescribeWeightLoss(t *testing.T) {
	exercise := ex("Burpee", "full_body", "beginner")

	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		p := g.prescribe(exercise, "weight_loss", "full_body", baseConfig(), 1)
		assertWithin(t, p.Sets, Range{3, 4}, "sets")
		assertWithin(t, p.Reps, Range{12, 20}, "reps")
		assertWithin(t, p.RestSeconds, Range{30, 60}, "rest")
	}
}

func TestPrescribeEnduranceGoal(t *testing.T) {
	exercise := ex("Rowing Machine", "full_body", "intermediate")

	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		p := g.prescribe(exercise, "endurance_training", "full_body", baseConfig(), 1)
		assertWithin(t, p.Sets, Range{2, 4}, "sets")
		assertWithin(t, p.Reps, Range{15, 25}, "reps")
		assertWithin(t, p.RestSeconds, Range{30, 45}, "rest")
	}
}

func TestPrescribeSpecializedLabel(t *testing.T) {
	exercise := ex("Mountain Climber", "core", "intermediate")

	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		p := g.prescribe(exercise, "maintenance", "tabata", baseConfig(), 1)
		assertWithin(t, p.Sets, Range{4, 8}, "sets")
		assertWithin(t, p.Reps, Range{15, 20}, "reps")
		assertWithin(t, p.RestSeconds, Range{10, 20}, "rest")
	}
}

func TestPrescribeGoalBeatsSpecializedLabel(t *testing.T) {
	exercise := ex("Kettlebell Swing", "full_body", "intermediate")

	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		p := g.prescribe(exercise, "weight_loss", "hiit_strength", baseConfig(), 1)
		assertWithin(t, p.Reps, Range{12, 20}, "reps")
		assertWithin(t, p.RestSeconds, Range{30, 60}, "rest")
	}
}

func TestPrescribeConfigFallback(t *testing.T) {
	cfg := baseConfig()
	compound := ex("Bench Press", "chest", "intermediate")
	isolation := ex("Chest Fly", "chest", "intermediate")

	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)

		p := g.prescribe(compound, "maintenance", "chest", cfg, 1)
		assertWithin(t, p.Sets, cfg.Sets.Compound, "compound sets")
		assertWithin(t, p.Reps, cfg.Reps.Compound, "compound reps")
		assertWithin(t, p.RestSeconds, cfg.RestPeriod, "rest")

		p = g.prescribe(isolation, "maintenance", "chest", cfg, 2)
		assertWithin(t, p.Sets, cfg.Sets.Isolation, "isolation sets")
		assertWithin(t, p.Reps, cfg.Reps.Isolation, "isolation reps")
	}
}
