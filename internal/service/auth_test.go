package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/testhelpers"
	"github.com/fitforge/backend/internal/types"
)

func registerRequest() *types.RegisterRequest {
	return &types.RegisterRequest{
		FullName:        "Jordan Fields",
		Email:           "jordan@example.com",
		Password:        "correct-horse",
		DateOfBirth:     "1995-06-15",
		Gender:          "male",
		HeightCm:        180,
		WeightKg:        80,
		FitnessGoal:     models.GoalMuscleGain,
		ExperienceLevel: models.LevelIntermediate,
		PreferredVenue:  models.VenueGym,
		ActivityLevel:   "moderately_active",
	}
}

func TestRegisterCreatesUserAndPlans(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	createTestConfig(t, db, func(cfg *models.PlanConfig) {
		cfg.FitnessGoal = models.GoalMuscleGain
	})
	seedExerciseLibrary(t, db)

	generator := NewGenerationService(db, nil).WithSeed(5, 5)
	svc := NewAuthService(db, "test-secret", nil, generator)

	user, token, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jordan@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	// Registration triggers both generation runs.
	var workoutCount, nutritionCount int64
	require.NoError(t, db.Model(&models.WorkoutPlan{}).Where("user_id = ?", user.ID).Count(&workoutCount).Error)
	require.NoError(t, db.Model(&models.NutritionPlan{}).Where("user_id = ?", user.ID).Count(&nutritionCount).Error)
	assert.EqualValues(t, 1, workoutCount)
	assert.EqualValues(t, 1, nutritionCount)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterSucceedsWhenGenerationFails(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	// No plan configuration: workout generation returns false, but
	// registration must still complete.
	generator := NewGenerationService(db, nil)
	svc := NewAuthService(db, "test-secret", nil, generator)

	user, token, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	var count int64
	require.NoError(t, db.Model(&models.WorkoutPlan{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	svc := NewAuthService(db, "test-secret", nil, nil)

	_, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsBadDateOfBirth(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	svc := NewAuthService(db, "test-secret", nil, nil)

	req := registerRequest()
	req.DateOfBirth = "15/06/1995"
	_, _, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	svc := NewAuthService(db, "test-secret", nil, nil)

	_, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "jordan@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jordan@example.com", user.Email)

	_, _, err = svc.Login(context.Background(), "jordan@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	svc := NewAuthService(db, "test-secret", nil, nil)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := testhelpers.SetupInMemoryDatabase(t)
	issuer := NewAuthService(db, "secret-a", nil, nil)
	verifier := NewAuthService(db, "secret-b", nil, nil)

	_, token, err := issuer.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
