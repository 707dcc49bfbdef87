package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/types"
)

// ProfileService reads and updates the user profile the engine consumes.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves the user by id.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the non-nil fields of the request.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.HeightCm != nil {
		user.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		user.WeightKg = *req.WeightKg
	}
	if req.FitnessGoal != nil {
		user.FitnessGoal = *req.FitnessGoal
	}
	if req.ExperienceLevel != nil {
		user.ExperienceLevel = *req.ExperienceLevel
	}
	if req.PreferredVenue != nil {
		user.PreferredVenue = *req.PreferredVenue
	}
	if req.ActivityLevel != nil {
		user.ActivityLevel = *req.ActivityLevel
	}
	if req.MedicalConditions != nil {
		user.MedicalConditions = *req.MedicalConditions
	}
	if req.DietaryRestrictions != nil {
		user.DietaryRestrictions = *req.DietaryRestrictions
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
