package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

type QuestionRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Question, error)
	GetByID(ctx context.Context, tx *gorm.DB, questionID int) (*types.Question, error)
	GetBySection(ctx context.Context, tx *gorm.DB, sectionNumber int) ([]*types.Question, error)
	GetAllWithOptions(ctx context.Context, tx *gorm.DB) ([]*types.Question, error)
	GetOptions(ctx context.Context, tx *gorm.DB, questionID int) ([]*types.QuestionOption, error)
	GetOptionByID(ctx context.Context, tx *gorm.DB, optionID int) (*types.QuestionOption, error)
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	repoLog := baseLog.With("repo", "QuestionRepo")
	return &questionRepo{db: db, log: repoLog}
}

func (r *questionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var questions []*types.Question
	if err := transaction.WithContext(ctx).
		Order("section_number, question_number").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetByID(ctx context.Context, tx *gorm.DB, questionID int) (*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var question types.Question
	err := transaction.WithContext(ctx).
		Where("question_id = ?", questionID).
		First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) GetBySection(ctx context.Context, tx *gorm.DB, sectionNumber int) ([]*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var questions []*types.Question
	if err := transaction.WithContext(ctx).
		Where("section_number = ?", sectionNumber).
		Order("question_number").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetAllWithOptions(ctx context.Context, tx *gorm.DB) ([]*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var questions []*types.Question
	if err := transaction.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order")
		}).
		Order("section_number, question_number").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetOptions(ctx context.Context, tx *gorm.DB, questionID int) ([]*types.QuestionOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var options []*types.QuestionOption
	if err := transaction.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("display_order").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *questionRepo) GetOptionByID(ctx context.Context, tx *gorm.DB, optionID int) (*types.QuestionOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var option types.QuestionOption
	err := transaction.WithContext(ctx).
		Where("option_id = ?", optionID).
		First(&option).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &option, nil
}
