package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/testhelpers"
	"github.com/fitforge/backend/internal/types"
)

func TestGetProfile(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	user := createTestUser(t, db, nil)

	svc := NewProfileService(db)
	got, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, models.GoalWeightLoss, got.FitnessGoal)
}

func TestGetProfileNotFound(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)

	svc := NewProfileService(db)
	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	user := createTestUser(t, db, nil)

	goal := models.GoalMuscleGain
	weight := 63.5
	svc := NewProfileService(db)
	got, err := svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		FitnessGoal: &goal,
		WeightKg:    &weight,
	})
	require.NoError(t, err)

	assert.Equal(t, models.GoalMuscleGain, got.FitnessGoal)
	assert.InDelta(t, 63.5, got.WeightKg, 0.001)
	// Untouched fields survive.
	assert.Equal(t, models.LevelIntermediate, got.ExperienceLevel)
	assert.Equal(t, user.FullName, got.FullName)
}
