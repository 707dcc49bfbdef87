package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklySplit() []SplitDay {
	return []SplitDay{
		{Day: 1, MuscleGroup: "chest"},
		{Day: 2, MuscleGroup: "back"},
		{Day: 3, MuscleGroup: "rest"},
		{Day: 4, MuscleGroup: "legs"},
		{Day: 5, MuscleGroup: "rest"},
	}
}

func scheduleConfig() Config {
	cfg := baseConfig()
	cfg.Split = weeklySplit()
	return cfg
}

func schedulePool() []Exercise {
	return []Exercise{
		ex("Bench Press", "chest", "intermediate"),
		ex("Incline Press", "chest", "intermediate"),
		ex("Chest Fly", "chest", "intermediate"),
		ex("Barbell Row", "back", "intermediate"),
		ex("Lat Pulldown", "back", "intermediate"),
		ex("Face Pull", "back", "intermediate"),
		ex("Barbell Squat", "legs", "intermediate"),
		ex("Leg Press", "legs", "intermediate"),
		ex("Leg Curl", "legs", "intermediate"),
	}
}

func TestSessionsFollowSplit(t *testing.T) {
	g := newTestGenerator(3)
	profile := Profile{Goal: "maintenance", Experience: "intermediate"}

	sessions := g.Sessions(scheduleConfig(), profile, schedulePool())
	require.Len(t, sessions, 5)
	for i, day := range weeklySplit() {
		assert.Equal(t, day.Day, sessions[i].Day)
		assert.Equal(t, day.MuscleGroup, sessions[i].MuscleGroups)
	}
	assert.Equal(t, "Day 1: Chest", sessions[0].Name)
	assert.Equal(t, "Day 4: Legs", sessions[3].Name)
}

func TestSessionsRestDay(t *testing.T) {
	g := newTestGenerator(3)
	profile := Profile{Goal: "weight_loss", Experience: "beginner"}

	sessions := g.Sessions(scheduleConfig(), profile, schedulePool())
	rest := sessions[2]
	assert.Equal(t, "Day 3: Rest Day", rest.Name)
	assert.Equal(t, "Active recovery or complete rest", rest.Description)
	assert.Equal(t, 0, rest.DurationMinutes)
	assert.Empty(t, rest.Exercises)
}

func TestSessionsPrescriptionOrderDense(t *testing.T) {
	g := newTestGenerator(9)
	profile := Profile{Goal: "muscle_gain", Experience: "intermediate"}

	sessions := g.Sessions(scheduleConfig(), profile, schedulePool())
	for _, s := range sessions {
		for i, p := range s.Exercises {
			assert.Equal(t, i+1, p.Order)
		}
	}
}

func TestSessionsEmptyPoolStillScheduled(t *testing.T) {
	g := newTestGenerator(3)
	profile := Profile{Goal: "maintenance", Experience: "intermediate"}

	sessions := g.Sessions(scheduleConfig(), profile, nil)
	require.Len(t, sessions, 5)
	for _, s := range sessions {
		assert.Empty(t, s.Exercises)
	}
	assert.Positive(t, sessions[0].DurationMinutes)
}

func TestSessionDurationByExperience(t *testing.T) {
	cases := []struct {
		experience string
		goal       string
		min, max   int
	}{
		{"beginner", "maintenance", 30, 45},
		{"intermediate", "maintenance", 45, 60},
		{"advanced", "maintenance", 60, 90},
		{"unknown", "maintenance", 60, 90},
		{"beginner", "weight_loss", 40, 55},
		{"intermediate", "endurance_training", 60, 75},
	}

	for _, tc := range cases {
		for seed := uint64(0); seed < 20; seed++ {
			g := newTestGenerator(seed)
			d := g.sessionDuration(Profile{Goal: tc.goal, Experience: tc.experience})
			assert.GreaterOrEqual(t, d, tc.min, "%s/%s", tc.experience, tc.goal)
			assert.LessOrEqual(t, d, tc.max, "%s/%s", tc.experience, tc.goal)
		}
	}
}

func TestSessionDurationEnduranceBeatsWeightLoss(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		d := g.sessionDuration(Profile{Goal: "endurance_weight_loss", Experience: "beginner"})
		assert.GreaterOrEqual(t, d, 45)
		assert.LessOrEqual(t, d, 60)
	}
}

func TestSessionDescriptions(t *testing.T) {
	assert.Equal(t,
		"High intensity Chest workout with minimal rest to maximize calorie burn",
		sessionDescription("chest", "weight_loss"))
	assert.Equal(t,
		"Heavy Back workout focused on hypertrophy with progressive overload",
		sessionDescription("back", "muscle_gain"))
	assert.Equal(t,
		"Targeted Shoulders workout with isolation and compound movements",
		sessionDescription("shoulders", "muscle_gain"))
	assert.Equal(t,
		"Heavy Legs workout with compound lifts and longer rest periods",
		sessionDescription("legs", "strength"))
	assert.Equal(t,
		"High-rep Full Body workout with minimal rest to build muscular endurance",
		sessionDescription("full_body", "endurance"))
	assert.Equal(t,
		"Focus on Arms",
		sessionDescription("arms", "maintenance"))
}

func TestWorkoutProgram(t *testing.T) {
	g := newTestGenerator(5)
	profile := Profile{
		Goal:       "weight_loss",
		Experience: "beginner",
		Venue:      "gym",
	}

	plan := g.WorkoutProgram(profile, scheduleConfig(), schedulePool())
	assert.Equal(t, "Fat Burning Plan", plan.Name)
	assert.Equal(t, 8, plan.DurationWeeks)
	assert.Equal(t, "weight_loss", plan.Goal)
	assert.Equal(t, "beginner", plan.Difficulty)
	assert.Equal(t, "gym", plan.Venue)
	assert.Len(t, plan.Sessions, 5)
}
