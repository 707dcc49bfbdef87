package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/types"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseService manages the exercise library that feeds the selection
// pool.
type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

// ListExercises returns the library, narrowed by the non-empty filter
// fields.
func (s *ExerciseService) ListExercises(ctx context.Context, filter types.ExerciseFilter) ([]models.Exercise, error) {
	query := s.db.WithContext(ctx)
	if filter.MuscleGroup != "" {
		query = query.Where("target_muscle_group = ?", filter.MuscleGroup)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Venue != "" {
		query = query.Where("venue = ?", filter.Venue)
	}

	var exercises []models.Exercise
	if err := query.Order("name").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

// GetExercise retrieves one exercise by id.
func (s *ExerciseService) GetExercise(ctx context.Context, id uuid.UUID) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.db.WithContext(ctx).First(&exercise, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// CreateExercise adds a library entry.
func (s *ExerciseService) CreateExercise(ctx context.Context, req *types.ExerciseRequest) (*models.Exercise, error) {
	exercise := models.Exercise{
		Name:              req.Name,
		Description:       req.Description,
		TargetMuscleGroup: req.TargetMuscleGroup,
		Equipment:         req.Equipment,
		Difficulty:        req.Difficulty,
		Venue:             req.Venue,
		Instructions:      req.Instructions,
		VideoURL:          req.VideoURL,
		ImageURL:          req.ImageURL,
	}
	if err := s.db.WithContext(ctx).Create(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

// UpdateExercise replaces the mutable fields of a library entry.
func (s *ExerciseService) UpdateExercise(ctx context.Context, id uuid.UUID, req *types.ExerciseRequest) (*models.Exercise, error) {
	exercise, err := s.GetExercise(ctx, id)
	if err != nil {
		return nil, err
	}

	exercise.Name = req.Name
	exercise.Description = req.Description
	exercise.TargetMuscleGroup = req.TargetMuscleGroup
	exercise.Equipment = req.Equipment
	exercise.Difficulty = req.Difficulty
	exercise.Venue = req.Venue
	exercise.Instructions = req.Instructions
	exercise.VideoURL = req.VideoURL
	exercise.ImageURL = req.ImageURL

	if err := s.db.WithContext(ctx).Save(exercise).Error; err != nil {
		return nil, err
	}
	return exercise, nil
}

// DeleteExercise soft-deletes a library entry.
func (s *ExerciseService) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Exercise{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
