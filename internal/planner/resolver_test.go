package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configTable() []Config {
	return []Config{
		{Goal: "muscle_gain", Experience: "advanced", Venue: "gym"},
		{Goal: "weight_loss", Experience: "beginner", Venue: "home"},
		{Goal: "weight_loss", Experience: "beginner", Venue: "gym"},
		{Goal: "maintenance", Experience: "intermediate", Venue: "gym"},
	}
}

func TestResolveExactMatch(t *testing.T) {
	cfg, err := Resolve(configTable(), "weight_loss", "beginner", "gym")
	require.NoError(t, err)
	assert.Equal(t, "weight_loss", cfg.Goal)
	assert.Equal(t, "beginner", cfg.Experience)
	assert.Equal(t, "gym", cfg.Venue)
}

func TestResolveIgnoresVenue(t *testing.T) {
	cfg, err := Resolve(configTable(), "muscle_gain", "advanced", "home")
	require.NoError(t, err)
	assert.Equal(t, "muscle_gain", cfg.Goal)
	assert.Equal(t, "advanced", cfg.Experience)
}

func TestResolveGoalOnly(t *testing.T) {
	cfg, err := Resolve(configTable(), "muscle_gain", "beginner", "home")
	require.NoError(t, err)
	assert.Equal(t, "muscle_gain", cfg.Goal)
}

func TestResolveExperienceOnly(t *testing.T) {
	cfg, err := Resolve(configTable(), "endurance", "intermediate", "home")
	require.NoError(t, err)
	assert.Equal(t, "intermediate", cfg.Experience)
	assert.Equal(t, "maintenance", cfg.Goal)
}

func TestResolveFallsBackToFirstRow(t *testing.T) {
	cfg, err := Resolve(configTable(), "endurance", "elite", "park")
	require.NoError(t, err)
	assert.Equal(t, configTable()[0], cfg)
}

func TestResolveEmptyTable(t *testing.T) {
	_, err := Resolve(nil, "weight_loss", "beginner", "gym")
	assert.ErrorIs(t, err, ErrNoConfiguration)
}

func TestResolveTotalOverNonEmptyTable(t *testing.T) {
	goals := []string{"weight_loss", "muscle_gain", "maintenance", "strength", "whatever"}
	levels := []string{"beginner", "intermediate", "advanced", "unknown"}
	venues := []string{"home", "gym", ""}

	for _, goal := range goals {
		for _, level := range levels {
			for _, venue := range venues {
				_, err := Resolve(configTable(), goal, level, venue)
				assert.NoError(t, err)
			}
		}
	}
}
