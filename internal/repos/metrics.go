package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

type MetricsRepo interface {
	GetLatestWellnessMetric(ctx context.Context, tx *gorm.DB) (*types.WellnessMetric, error)
	GetSurveyStatistics(ctx context.Context, tx *gorm.DB) (*types.SurveyStatistics, error)
	GetSurveyHistory(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.SurveyHistoryEntry, error)
	CreateLoginHistory(ctx context.Context, tx *gorm.DB, entry *types.LoginHistory) error
	GetLoginHistory(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.LoginHistory, error)
	LogActivity(ctx context.Context, tx *gorm.DB, entry *types.UserActivityLog) error
	GetUserActivity(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.UserActivityLog, error)
}

type metricsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMetricsRepo(db *gorm.DB, baseLog *logger.Logger) MetricsRepo {
	repoLog := baseLog.With("repo", "MetricsRepo")
	return &metricsRepo{db: db, log: repoLog}
}

func (r *metricsRepo) GetLatestWellnessMetric(ctx context.Context, tx *gorm.DB) (*types.WellnessMetric, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var metric types.WellnessMetric
	err := transaction.WithContext(ctx).
		Order("calculation_date DESC").
		First(&metric).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

func (r *metricsRepo) GetSurveyStatistics(ctx context.Context, tx *gorm.DB) (*types.SurveyStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var stats types.SurveyStatistics
	if err := transaction.WithContext(ctx).
		Table("surveys").
		Select("COUNT(*) AS total_surveys, COUNT(DISTINCT profile_id) AS unique_profiles, MAX(survey_date) AS latest_survey, MIN(survey_date) AS first_survey").
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetSurveyHistory summarizes one survey per row: how many questions were
// answered and the sum of category scores, newest survey first.
func (r *metricsRepo) GetSurveyHistory(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.SurveyHistoryEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var entries []*types.SurveyHistoryEntry
	if err := transaction.WithContext(ctx).
		Table("surveys").
		Select("surveys.survey_id, surveys.profile_id, surveys.survey_date, surveys.created_at, (SELECT COUNT(*) FROM survey_responses WHERE survey_responses.survey_id = surveys.survey_id) AS questions_answered, (SELECT COALESCE(SUM(score), 0) FROM survey_category_scores WHERE survey_category_scores.survey_id = surveys.survey_id) AS total_score").
		Where("surveys.profile_id = ?", profileID).
		Order("surveys.survey_date DESC, surveys.created_at DESC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *metricsRepo) CreateLoginHistory(ctx context.Context, tx *gorm.DB, entry *types.LoginHistory) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).Create(entry).Error
}

func (r *metricsRepo) GetLoginHistory(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.LoginHistory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var entries []*types.LoginHistory
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("login_timestamp DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *metricsRepo) LogActivity(ctx context.Context, tx *gorm.DB, entry *types.UserActivityLog) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).Create(entry).Error
}

func (r *metricsRepo) GetUserActivity(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.UserActivityLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var entries []*types.UserActivityLog
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
