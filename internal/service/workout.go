package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/types"
)

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrHistoryNotFound = errors.New("plan history record not found")
)

// WorkoutService exposes generated workout plans and their history.
type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// GetCurrentPlan returns the user's most recent workout plan with sessions
// and prescriptions preloaded.
func (s *WorkoutService) GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := s.db.WithContext(ctx).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Sessions.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_order") }).
		Preload("Sessions.Exercises.Exercise").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListPlans returns all of the user's workout plans, newest first, without
// children.
func (s *WorkoutService) ListPlans(ctx context.Context, userID uuid.UUID) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// GetPlan returns one plan by id, scoped to the user.
func (s *WorkoutService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := s.db.WithContext(ctx).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Sessions.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_order") }).
		Preload("Sessions.Exercises.Exercise").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// DeletePlan soft-deletes a plan, scoped to the user.
func (s *WorkoutService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&models.WorkoutPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// History returns the user's generation audit records, newest first.
func (s *WorkoutService) History(ctx context.Context, userID uuid.UUID) ([]models.PlanHistory, error) {
	var history []models.PlanHistory
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

// RatePlan attaches a rating and optional feedback to a history record.
func (s *WorkoutService) RatePlan(ctx context.Context, userID, historyID uuid.UUID, req *types.RatePlanRequest) error {
	var record models.PlanHistory
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", historyID, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHistoryNotFound
		}
		return err
	}

	record.Rating = &req.Rating
	record.Feedback = req.Feedback
	return s.db.WithContext(ctx).Save(&record).Error
}
