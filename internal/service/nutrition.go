package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitforge/backend/internal/models"
)

// NutritionService exposes generated nutrition plans.
type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

// GetCurrentPlan returns the user's most recent nutrition plan with the
// full meal cycle preloaded.
func (s *NutritionService) GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	err := s.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
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

// ListPlans returns all of the user's nutrition plans, newest first,
// without meals.
func (s *NutritionService) ListPlans(ctx context.Context, userID uuid.UUID) ([]models.NutritionPlan, error) {
	var plans []models.NutritionPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// GetPlan returns one nutrition plan by id, scoped to the user.
func (s *NutritionService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	err := s.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
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

// DeletePlan soft-deletes a nutrition plan, scoped to the user.
func (s *NutritionService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&models.NutritionPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
