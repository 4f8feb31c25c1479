package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

type SurveyCategoryScoreRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, scores []types.SurveyCategoryScore) error
	GetBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) ([]types.CategoryScoreDetail, error)
	DeleteBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) error
}

type surveyCategoryScoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSurveyCategoryScoreRepo(db *gorm.DB, baseLog *logger.Logger) SurveyCategoryScoreRepo {
	repoLog := baseLog.With("repo", "SurveyCategoryScoreRepo")
	return &surveyCategoryScoreRepo{db: db, log: repoLog}
}

func (r *surveyCategoryScoreRepo) CreateBatch(ctx context.Context, tx *gorm.DB, scores []types.SurveyCategoryScore) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(scores) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&scores).Error
}

func (r *surveyCategoryScoreRepo) GetBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) ([]types.CategoryScoreDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var details []types.CategoryScoreDetail
	if err := transaction.WithContext(ctx).
		Table("survey_category_scores").
		Select("survey_category_scores.category_id, wellness_categories.name AS category_name, wellness_categories.display_order, survey_category_scores.score").
		Joins("JOIN wellness_categories ON wellness_categories.category_id = survey_category_scores.category_id").
		Where("survey_category_scores.survey_id = ?", surveyID).
		Order("wellness_categories.display_order").
		Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *surveyCategoryScoreRepo) DeleteBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Delete(&types.SurveyCategoryScore{}).Error
}
