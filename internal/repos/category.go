package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

type CategoryRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Category, error)
	GetByID(ctx context.Context, tx *gorm.DB, categoryID int) (*types.Category, error)
	GetMappings(ctx context.Context, tx *gorm.DB) ([]*types.QuestionCategoryMapping, error)
	GetMappingEntries(ctx context.Context, tx *gorm.DB) ([]*types.MappingEntry, error)
	GetQuestionsForCategory(ctx context.Context, tx *gorm.DB, categoryID int) ([]*types.CategoryQuestion, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	repoLog := baseLog.With("repo", "CategoryRepo")
	return &categoryRepo{db: db, log: repoLog}
}

func (r *categoryRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var categories []*types.Category
	if err := transaction.WithContext(ctx).
		Order("display_order").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, tx *gorm.DB, categoryID int) (*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var category types.Category
	err := transaction.WithContext(ctx).
		Where("category_id = ?", categoryID).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetMappings returns the full question-to-category weighting table. The
// scoring path loads it once per recompute inside the survey transaction.
func (r *categoryRepo) GetMappings(ctx context.Context, tx *gorm.DB) ([]*types.QuestionCategoryMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var mappings []*types.QuestionCategoryMapping
	if err := transaction.WithContext(ctx).
		Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *categoryRepo) GetMappingEntries(ctx context.Context, tx *gorm.DB) ([]*types.MappingEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var entries []*types.MappingEntry
	if err := transaction.WithContext(ctx).
		Table("question_category_mapping").
		Select("question_category_mapping.mapping_id, question_category_mapping.question_id, wellness_questions.question_text, question_category_mapping.category_id, wellness_categories.name AS category_name, question_category_mapping.weight, question_category_mapping.is_external").
		Joins("JOIN wellness_questions ON wellness_questions.question_id = question_category_mapping.question_id").
		Joins("JOIN wellness_categories ON wellness_categories.category_id = question_category_mapping.category_id").
		Order("wellness_categories.display_order, wellness_questions.section_number, wellness_questions.question_number").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *categoryRepo) GetQuestionsForCategory(ctx context.Context, tx *gorm.DB, categoryID int) ([]*types.CategoryQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var questions []*types.CategoryQuestion
	if err := transaction.WithContext(ctx).
		Table("question_category_mapping").
		Select("wellness_questions.question_id, wellness_questions.question_text, wellness_questions.section_number, wellness_questions.question_number, question_category_mapping.weight, question_category_mapping.is_external").
		Joins("JOIN wellness_questions ON wellness_questions.question_id = question_category_mapping.question_id").
		Where("question_category_mapping.category_id = ?", categoryID).
		Order("wellness_questions.section_number, wellness_questions.question_number").
		Scan(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
