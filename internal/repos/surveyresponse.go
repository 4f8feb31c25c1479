package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

type SurveyResponseRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, responses []types.SurveyResponse) error
	GetBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) ([]*types.SurveyResponse, error)
	GetDetailedBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) ([]types.ResponseDetail, error)
	DeleteBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) error
}

type surveyResponseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSurveyResponseRepo(db *gorm.DB, baseLog *logger.Logger) SurveyResponseRepo {
	repoLog := baseLog.With("repo", "SurveyResponseRepo")
	return &surveyResponseRepo{db: db, log: repoLog}
}

func (r *surveyResponseRepo) CreateBatch(ctx context.Context, tx *gorm.DB, responses []types.SurveyResponse) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(responses) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&responses).Error
}

func (r *surveyResponseRepo) GetBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) ([]*types.SurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var responses []*types.SurveyResponse
	if err := transaction.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Order("response_id").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *surveyResponseRepo) GetDetailedBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) ([]types.ResponseDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var details []types.ResponseDetail
	if err := transaction.WithContext(ctx).
		Table("survey_responses").
		Select("survey_responses.response_id, survey_responses.question_id, wellness_questions.question_text, wellness_questions.section_number, wellness_questions.question_number, survey_responses.selected_option_id, wellness_question_options.option_text, survey_responses.score").
		Joins("JOIN wellness_questions ON wellness_questions.question_id = survey_responses.question_id").
		Joins("JOIN wellness_question_options ON wellness_question_options.option_id = survey_responses.selected_option_id").
		Where("survey_responses.survey_id = ?", surveyID).
		Order("wellness_questions.section_number, wellness_questions.question_number").
		Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *surveyResponseRepo) DeleteBySurveyID(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Delete(&types.SurveyResponse{}).Error
}
