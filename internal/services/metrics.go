package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/repos"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

const activityHistoryLimit = 100

type ActivityInput struct {
	ActivityType    string         `json:"activity_type" binding:"required"`
	ActivityDetails map[string]any `json:"activity_details"`
	IPAddress       string         `json:"-"`
}

type MetricsService interface {
	GetLatestWellnessMetric(ctx context.Context) (*types.WellnessMetric, error)
	GetSurveyStatistics(ctx context.Context) (*types.SurveyStatistics, error)
	GetLoginHistory(ctx context.Context, userID uuid.UUID) ([]*types.LoginHistory, error)
	GetUserActivity(ctx context.Context, userID uuid.UUID) ([]*types.UserActivityLog, error)
	LogActivity(ctx context.Context, userID uuid.UUID, input ActivityInput) error
}

type metricsService struct {
	db          *gorm.DB
	metricsRepo repos.MetricsRepo
	userRepo    repos.UserRepo
	log         *logger.Logger
}

func NewMetricsService(db *gorm.DB, metricsRepo repos.MetricsRepo, userRepo repos.UserRepo, baseLog *logger.Logger) MetricsService {
	serviceLog := baseLog.With("service", "MetricsService")
	return &metricsService{db: db, metricsRepo: metricsRepo, userRepo: userRepo, log: serviceLog}
}

// GetLatestWellnessMetric returns the newest snapshot row. Snapshots are
// produced out of band; this path never computes one.
func (s *metricsService) GetLatestWellnessMetric(ctx context.Context) (*types.WellnessMetric, error) {
	metric, err := s.metricsRepo.GetLatestWellnessMetric(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if metric == nil {
		return nil, fmt.Errorf("no wellness metrics recorded: %w", ErrNotFound)
	}
	return metric, nil
}

func (s *metricsService) GetSurveyStatistics(ctx context.Context) (*types.SurveyStatistics, error) {
	stats, err := s.metricsRepo.GetSurveyStatistics(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return stats, nil
}

func (s *metricsService) GetLoginHistory(ctx context.Context, userID uuid.UUID) ([]*types.LoginHistory, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	entries, err := s.metricsRepo.GetLoginHistory(ctx, nil, userID, activityHistoryLimit)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return entries, nil
}

func (s *metricsService) GetUserActivity(ctx context.Context, userID uuid.UUID) ([]*types.UserActivityLog, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	entries, err := s.metricsRepo.GetUserActivity(ctx, nil, userID, activityHistoryLimit)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return entries, nil
}

func (s *metricsService) LogActivity(ctx context.Context, userID uuid.UUID, input ActivityInput) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	details := datatypes.JSON([]byte("{}"))
	if input.ActivityDetails != nil {
		raw, err := json.Marshal(input.ActivityDetails)
		if err != nil {
			return fmt.Errorf("encode activity details: %w", ErrValidation)
		}
		details = datatypes.JSON(raw)
	}

	entry := &types.UserActivityLog{
		UserID:          userID,
		ActivityType:    input.ActivityType,
		ActivityDetails: details,
		IPAddress:       input.IPAddress,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.metricsRepo.LogActivity(ctx, nil, entry); err != nil {
		return classifyDBError(err)
	}
	return nil
}

func (s *metricsService) requireUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return classifyDBError(err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return nil
}
