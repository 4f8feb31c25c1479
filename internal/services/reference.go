package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/clients/redis"
	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/repos"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

// Catalog data changes only on reseeds, so cached copies can live a while.
const referenceCacheTTL = 10 * time.Minute

// ReferenceService serves the read-only catalogs: questions, options,
// categories, the question-to-category mapping, and the profile option
// lists. Everything is read-shared; there is no write path here.
type ReferenceService interface {
	GetQuestions(ctx context.Context) ([]*types.Question, error)
	GetQuestionByID(ctx context.Context, questionID int) (*types.Question, error)
	GetQuestionsBySection(ctx context.Context, sectionNumber int) ([]*types.Question, error)
	GetQuestionsWithOptions(ctx context.Context) ([]*types.Question, error)
	GetQuestionnaire(ctx context.Context) ([]types.QuestionnaireSection, error)
	GetQuestionOptions(ctx context.Context, questionID int) ([]*types.QuestionOption, error)
	GetOptionByID(ctx context.Context, optionID int) (*types.QuestionOption, error)

	GetCategories(ctx context.Context) ([]*types.Category, error)
	GetCategoryByID(ctx context.Context, categoryID int) (*types.Category, error)
	GetCategoryQuestions(ctx context.Context, categoryID int) ([]*types.CategoryQuestion, error)
	GetCategoriesWithQuestions(ctx context.Context) ([]*types.CategoryWithQuestions, error)
	GetMappingEntries(ctx context.Context) ([]*types.MappingEntry, error)

	GetImprovementAreaOptions(ctx context.Context) ([]*types.ImprovementAreaOption, error)
	GetWellnessActivityOptions(ctx context.Context) ([]*types.WellnessActivityOption, error)
}

type referenceService struct {
	db           *gorm.DB
	questionRepo repos.QuestionRepo
	categoryRepo repos.CategoryRepo
	optionsRepo  repos.OptionsRepo
	cache        *redis.Cache
	log          *logger.Logger
}

func NewReferenceService(
	db *gorm.DB,
	questionRepo repos.QuestionRepo,
	categoryRepo repos.CategoryRepo,
	optionsRepo repos.OptionsRepo,
	cache *redis.Cache,
	baseLog *logger.Logger,
) ReferenceService {
	serviceLog := baseLog.With("service", "ReferenceService")
	return &referenceService{
		db:           db,
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		optionsRepo:  optionsRepo,
		cache:        cache,
		log:          serviceLog,
	}
}

func (s *referenceService) GetQuestions(ctx context.Context) ([]*types.Question, error) {
	questions, err := s.questionRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return questions, nil
}

func (s *referenceService) GetQuestionByID(ctx context.Context, questionID int) (*types.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, nil, questionID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if question == nil {
		return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
	}
	return question, nil
}

func (s *referenceService) GetQuestionsBySection(ctx context.Context, sectionNumber int) ([]*types.Question, error) {
	questions, err := s.questionRepo.GetBySection(ctx, nil, sectionNumber)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return questions, nil
}

func (s *referenceService) GetQuestionsWithOptions(ctx context.Context) ([]*types.Question, error) {
	var cached []*types.Question
	if hit := s.fromCache(ctx, "reference:questions_with_options", &cached); hit {
		return cached, nil
	}

	questions, err := s.questionRepo.GetAllWithOptions(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	s.toCache(ctx, "reference:questions_with_options", questions)
	return questions, nil
}

// GetQuestionnaire groups questions (with their options) by section, in
// section then question order.
func (s *referenceService) GetQuestionnaire(ctx context.Context) ([]types.QuestionnaireSection, error) {
	var cached []types.QuestionnaireSection
	if hit := s.fromCache(ctx, "reference:questionnaire", &cached); hit {
		return cached, nil
	}

	questions, err := s.questionRepo.GetAllWithOptions(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}

	sections := make([]types.QuestionnaireSection, 0)
	for _, q := range questions {
		if len(sections) == 0 || sections[len(sections)-1].SectionNumber != q.SectionNumber {
			sections = append(sections, types.QuestionnaireSection{SectionNumber: q.SectionNumber})
		}
		last := &sections[len(sections)-1]
		last.Questions = append(last.Questions, *q)
	}

	s.toCache(ctx, "reference:questionnaire", sections)
	return sections, nil
}

func (s *referenceService) GetQuestionOptions(ctx context.Context, questionID int) ([]*types.QuestionOption, error) {
	question, err := s.questionRepo.GetByID(ctx, nil, questionID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if question == nil {
		return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
	}
	options, err := s.questionRepo.GetOptions(ctx, nil, questionID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return options, nil
}

func (s *referenceService) GetOptionByID(ctx context.Context, optionID int) (*types.QuestionOption, error) {
	option, err := s.questionRepo.GetOptionByID(ctx, nil, optionID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if option == nil {
		return nil, fmt.Errorf("option %d: %w", optionID, ErrNotFound)
	}
	return option, nil
}

func (s *referenceService) GetCategories(ctx context.Context) ([]*types.Category, error) {
	var cached []*types.Category
	if hit := s.fromCache(ctx, "reference:categories", &cached); hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	s.toCache(ctx, "reference:categories", categories)
	return categories, nil
}

func (s *referenceService) GetCategoryByID(ctx context.Context, categoryID int) (*types.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, nil, categoryID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}
	return category, nil
}

func (s *referenceService) GetCategoryQuestions(ctx context.Context, categoryID int) ([]*types.CategoryQuestion, error) {
	category, err := s.categoryRepo.GetByID(ctx, nil, categoryID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}
	questions, err := s.categoryRepo.GetQuestionsForCategory(ctx, nil, categoryID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return questions, nil
}

func (s *referenceService) GetCategoriesWithQuestions(ctx context.Context) ([]*types.CategoryWithQuestions, error) {
	var cached []*types.CategoryWithQuestions
	if hit := s.fromCache(ctx, "reference:categories_with_questions", &cached); hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}

	result := make([]*types.CategoryWithQuestions, 0, len(categories))
	for _, c := range categories {
		questions, err := s.categoryRepo.GetQuestionsForCategory(ctx, nil, c.CategoryID)
		if err != nil {
			return nil, classifyDBError(err)
		}
		result = append(result, &types.CategoryWithQuestions{Category: *c, Questions: derefQuestions(questions)})
	}

	s.toCache(ctx, "reference:categories_with_questions", result)
	return result, nil
}

func (s *referenceService) GetMappingEntries(ctx context.Context) ([]*types.MappingEntry, error) {
	entries, err := s.categoryRepo.GetMappingEntries(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return entries, nil
}

func (s *referenceService) GetImprovementAreaOptions(ctx context.Context) ([]*types.ImprovementAreaOption, error) {
	var cached []*types.ImprovementAreaOption
	if hit := s.fromCache(ctx, "reference:improvement_areas", &cached); hit {
		return cached, nil
	}

	options, err := s.optionsRepo.GetImprovementAreas(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	s.toCache(ctx, "reference:improvement_areas", options)
	return options, nil
}

func (s *referenceService) GetWellnessActivityOptions(ctx context.Context) ([]*types.WellnessActivityOption, error) {
	var cached []*types.WellnessActivityOption
	if hit := s.fromCache(ctx, "reference:wellness_activities", &cached); hit {
		return cached, nil
	}

	options, err := s.optionsRepo.GetWellnessActivities(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	s.toCache(ctx, "reference:wellness_activities", options)
	return options, nil
}

// Cache failures are logged and ignored; the database remains the source of
// truth.
func (s *referenceService) fromCache(ctx context.Context, key string, dest any) bool {
	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		s.log.Warn("Reference cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *referenceService) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.SetJSON(ctx, key, value, referenceCacheTTL); err != nil {
		s.log.Warn("Reference cache write failed", "key", key, "error", err)
	}
}

func derefQuestions(in []*types.CategoryQuestion) []types.CategoryQuestion {
	out := make([]types.CategoryQuestion, 0, len(in))
	for _, q := range in {
		out = append(out, *q)
	}
	return out
}
