package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

type SurveyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, survey *types.Survey) (*types.Survey, error)
	GetByID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) (*types.Survey, error)
	GetAllWithOwner(ctx context.Context, tx *gorm.DB) ([]*types.SurveyWithOwner, error)
	GetByProfileID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Survey, error)
	GetLatestByProfileID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Survey, error)
	UpdateHeader(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID, patch types.SurveyHeaderPatch) error
	Exists(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) (bool, error)
}

type surveyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSurveyRepo(db *gorm.DB, baseLog *logger.Logger) SurveyRepo {
	repoLog := baseLog.With("repo", "SurveyRepo")
	return &surveyRepo{db: db, log: repoLog}
}

func (r *surveyRepo) Create(ctx context.Context, tx *gorm.DB, survey *types.Survey) (*types.Survey, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(survey).Error; err != nil {
		return nil, err
	}
	return survey, nil
}

func (r *surveyRepo) GetByID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) (*types.Survey, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var survey types.Survey
	err := transaction.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		First(&survey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepo) GetAllWithOwner(ctx context.Context, tx *gorm.DB) ([]*types.SurveyWithOwner, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var surveys []*types.SurveyWithOwner
	if err := transaction.WithContext(ctx).
		Table("surveys").
		Select("surveys.*, profiles.first_name, profiles.last_name, users.username, users.email").
		Joins("JOIN profiles ON profiles.profile_id = surveys.profile_id").
		Joins("JOIN users ON users.user_id = profiles.user_id").
		Order("surveys.survey_date DESC, surveys.created_at DESC").
		Scan(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *surveyRepo) GetByProfileID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Survey, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var surveys []*types.Survey
	if err := transaction.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("survey_date DESC, created_at DESC").
		Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *surveyRepo) GetLatestByProfileID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Survey, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var survey types.Survey
	err := transaction.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("survey_date DESC, created_at DESC").
		First(&survey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepo) UpdateHeader(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID, patch types.SurveyHeaderPatch) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	updates := map[string]any{}
	if patch.ConsentGiven != nil {
		updates["consent_given"] = *patch.ConsentGiven
	}
	if patch.SurveyDate != nil {
		updates["survey_date"] = *patch.SurveyDate
	}
	if len(updates) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.Survey{}).
		Where("survey_id = ?", surveyID).
		Updates(updates).Error
}

func (r *surveyRepo) Exists(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Survey{}).
		Where("survey_id = ?", surveyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
