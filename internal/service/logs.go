package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/types"
)

var ErrLogNotFound = errors.New("log entry not found")

// LogService records performed workouts and body measurements.
type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

// CreateWorkoutLog stores a performed session with its exercise entries in
// one transaction.
func (s *LogService) CreateWorkoutLog(ctx context.Context, userID uuid.UUID, req *types.WorkoutLogRequest) (*models.WorkoutLog, error) {
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, err
	}

	log := models.WorkoutLog{
		UserID:         userID,
		SessionID:      sessionID,
		Date:           req.Date,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		Completed:      req.Completed,
		Notes:          req.Notes,
	}
	for _, e := range req.Exercises {
		exerciseID, err := uuid.Parse(e.ExerciseID)
		if err != nil {
			return nil, err
		}
		log.ExerciseLogs = append(log.ExerciseLogs, models.ExerciseLog{
			ExerciseID: exerciseID,
			Sets:       e.Sets,
			Reps:       e.Reps,
			WeightKg:   e.WeightKg,
			Notes:      e.Notes,
		})
	}

	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ListWorkoutLogs returns the user's logs, newest first.
func (s *LogService) ListWorkoutLogs(ctx context.Context, userID uuid.UUID) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	err := s.db.WithContext(ctx).
		Preload("ExerciseLogs").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteWorkoutLog removes a log entry, scoped to the user.
func (s *LogService) DeleteWorkoutLog(ctx context.Context, userID, logID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.WorkoutLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}

// CreateProgressEntry stores a body measurement snapshot.
func (s *LogService) CreateProgressEntry(ctx context.Context, userID uuid.UUID, req *types.ProgressEntryRequest) (*models.ProgressEntry, error) {
	entry := models.ProgressEntry{
		UserID:            userID,
		Date:              req.Date,
		WeightKg:          req.WeightKg,
		BodyFatPercentage: req.BodyFatPercentage,
		ChestCm:           req.ChestCm,
		WaistCm:           req.WaistCm,
		HipsCm:            req.HipsCm,
		ArmsCm:            req.ArmsCm,
		ThighsCm:          req.ThighsCm,
		Notes:             req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListProgressEntries returns the user's measurements, newest first.
func (s *LogService) ListProgressEntries(ctx context.Context, userID uuid.UUID) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
