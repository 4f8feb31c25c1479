package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/repos"
	"github.com/lyrahhq/lyrah-backend/internal/scoring"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

// ResponseInput is one submitted answer. Score is captured as sent and
// stored on the response row; it is never re-derived from the option later.
type ResponseInput struct {
	QuestionID       int     `json:"question_id" binding:"required"`
	SelectedOptionID int     `json:"selected_option_id" binding:"required"`
	Score            float64 `json:"score"`
}

type SurveyCreateInput struct {
	ProfileID    uuid.UUID       `json:"profile_id" binding:"required"`
	ConsentGiven bool            `json:"consent_given"`
	SurveyDate   *time.Time      `json:"survey_date"`
	Responses    []ResponseInput `json:"responses" binding:"required"`
}

// SurveyUpdateInput patches the header and, when Responses is non-nil,
// replaces the full response set. A nil Responses leaves responses and
// scores untouched; an empty non-nil slice clears them.
type SurveyUpdateInput struct {
	ConsentGiven *bool           `json:"consent_given"`
	SurveyDate   *time.Time      `json:"survey_date"`
	Responses    []ResponseInput `json:"responses"`
}

type SurveyService interface {
	Create(ctx context.Context, input SurveyCreateInput) (*types.SurveyDetail, error)
	Update(ctx context.Context, surveyID uuid.UUID, input SurveyUpdateInput) (*types.SurveyDetail, error)
	GetByID(ctx context.Context, surveyID uuid.UUID) (*types.SurveyDetail, error)
	GetAll(ctx context.Context) ([]*types.SurveyWithOwner, error)
	GetByProfile(ctx context.Context, profileID uuid.UUID) ([]*types.Survey, error)
	GetLatestByProfile(ctx context.Context, profileID uuid.UUID) (*types.SurveySummary, error)
	GetHistory(ctx context.Context, profileID uuid.UUID) ([]*types.SurveyHistoryEntry, error)
}

type surveyService struct {
	db           *gorm.DB
	surveyRepo   repos.SurveyRepo
	responseRepo repos.SurveyResponseRepo
	scoreRepo    repos.SurveyCategoryScoreRepo
	profileRepo  repos.ProfileRepo
	categoryRepo repos.CategoryRepo
	metricsRepo  repos.MetricsRepo
	log          *logger.Logger
}

func NewSurveyService(
	db *gorm.DB,
	surveyRepo repos.SurveyRepo,
	responseRepo repos.SurveyResponseRepo,
	scoreRepo repos.SurveyCategoryScoreRepo,
	profileRepo repos.ProfileRepo,
	categoryRepo repos.CategoryRepo,
	metricsRepo repos.MetricsRepo,
	baseLog *logger.Logger,
) SurveyService {
	serviceLog := baseLog.With("service", "SurveyService")
	return &surveyService{
		db:           db,
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		scoreRepo:    scoreRepo,
		profileRepo:  profileRepo,
		categoryRepo: categoryRepo,
		metricsRepo:  metricsRepo,
		log:          serviceLog,
	}
}

// Create writes the survey header, its responses, and the derived category
// scores in one transaction. Either everything commits or nothing does.
func (s *surveyService) Create(ctx context.Context, input SurveyCreateInput) (*types.SurveyDetail, error) {
	if err := validateResponses(input.Responses); err != nil {
		return nil, err
	}

	surveyDate := time.Now().UTC()
	if input.SurveyDate != nil {
		surveyDate = *input.SurveyDate
	}
	survey := &types.Survey{
		SurveyID:     uuid.New(),
		ProfileID:    input.ProfileID,
		ConsentGiven: input.ConsentGiven,
		SurveyDate:   surveyDate,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.profileRepo.Exists(ctx, tx, input.ProfileID)
		if err != nil {
			return fmt.Errorf("check profile: %w", err)
		}
		if !exists {
			return fmt.Errorf("profile %s: %w", input.ProfileID, ErrInvalidReference)
		}

		if _, err := s.surveyRepo.Create(ctx, tx, survey); err != nil {
			return fmt.Errorf("create survey header: %w", err)
		}
		if err := s.replaceResponses(ctx, tx, survey.SurveyID, input.Responses); err != nil {
			return err
		}
		return s.recomputeScores(ctx, tx, survey.SurveyID, input.Responses)
	})
	if err != nil {
		return nil, classifyDBError(err)
	}

	s.log.Info("Survey created", "survey_id", survey.SurveyID, "profile_id", survey.ProfileID, "responses", len(input.Responses))
	return s.GetByID(ctx, survey.SurveyID)
}

// Update patches the header and, when a response set is supplied, replaces
// every stored response and recomputes category scores, all inside the same
// transaction. Concurrent updates to the same survey are last-commit-wins.
func (s *surveyService) Update(ctx context.Context, surveyID uuid.UUID, input SurveyUpdateInput) (*types.SurveyDetail, error) {
	if input.Responses != nil {
		if err := validateResponses(input.Responses); err != nil {
			return nil, err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.surveyRepo.Exists(ctx, tx, surveyID)
		if err != nil {
			return fmt.Errorf("check survey: %w", err)
		}
		if !exists {
			return fmt.Errorf("survey %s: %w", surveyID, ErrNotFound)
		}

		patch := types.SurveyHeaderPatch{ConsentGiven: input.ConsentGiven, SurveyDate: input.SurveyDate}
		if err := s.surveyRepo.UpdateHeader(ctx, tx, surveyID, patch); err != nil {
			return fmt.Errorf("update survey header: %w", err)
		}

		if input.Responses == nil {
			return nil
		}
		if err := s.responseRepo.DeleteBySurveyID(ctx, tx, surveyID); err != nil {
			return fmt.Errorf("delete responses: %w", err)
		}
		if err := s.replaceResponses(ctx, tx, surveyID, input.Responses); err != nil {
			return err
		}
		return s.recomputeScores(ctx, tx, surveyID, input.Responses)
	})
	if err != nil {
		return nil, classifyDBError(err)
	}

	s.log.Info("Survey updated", "survey_id", surveyID, "responses_replaced", input.Responses != nil)
	return s.GetByID(ctx, surveyID)
}

func (s *surveyService) replaceResponses(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID, inputs []ResponseInput) error {
	rows := make([]types.SurveyResponse, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, types.SurveyResponse{
			SurveyID:         surveyID,
			QuestionID:       in.QuestionID,
			SelectedOptionID: in.SelectedOptionID,
			Score:            in.Score,
		})
	}
	if err := s.responseRepo.CreateBatch(ctx, tx, rows); err != nil {
		return fmt.Errorf("insert responses: %w", err)
	}
	return nil
}

// recomputeScores rebuilds survey_category_scores from the current response
// set and the mapping table. Old score rows are removed first so the stored
// scores always mirror exactly what Compute derived.
func (s *surveyService) recomputeScores(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID, inputs []ResponseInput) error {
	mappingRows, err := s.categoryRepo.GetMappings(ctx, tx)
	if err != nil {
		return fmt.Errorf("load mappings: %w", err)
	}

	responses := make([]scoring.Response, 0, len(inputs))
	for _, in := range inputs {
		responses = append(responses, scoring.Response{QuestionID: in.QuestionID, Score: in.Score})
	}
	mappings := make([]scoring.Mapping, 0, len(mappingRows))
	for _, m := range mappingRows {
		mappings = append(mappings, scoring.Mapping{
			QuestionID: m.QuestionID,
			CategoryID: m.CategoryID,
			Weight:     m.Weight,
			IsExternal: m.IsExternal,
		})
	}

	computed := scoring.Compute(responses, mappings)
	categoryIDs := make([]int, 0, len(computed))
	for id := range computed {
		categoryIDs = append(categoryIDs, id)
	}
	sort.Ints(categoryIDs)

	rows := make([]types.SurveyCategoryScore, 0, len(computed))
	for _, id := range categoryIDs {
		rows = append(rows, types.SurveyCategoryScore{SurveyID: surveyID, CategoryID: id, Score: computed[id]})
	}

	if err := s.scoreRepo.DeleteBySurveyID(ctx, tx, surveyID); err != nil {
		return fmt.Errorf("delete category scores: %w", err)
	}
	if err := s.scoreRepo.CreateBatch(ctx, tx, rows); err != nil {
		return fmt.Errorf("insert category scores: %w", err)
	}
	return nil
}

// GetByID assembles the composed survey view. Owner fields, response details,
// and category scores are independent reads, fetched concurrently.
func (s *surveyService) GetByID(ctx context.Context, surveyID uuid.UUID) (*types.SurveyDetail, error) {
	survey, err := s.surveyRepo.GetByID(ctx, nil, surveyID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if survey == nil {
		return nil, fmt.Errorf("survey %s: %w", surveyID, ErrNotFound)
	}

	detail := &types.SurveyDetail{Survey: *survey}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		owner, err := s.profileRepo.GetOwner(gctx, nil, survey.ProfileID)
		if err != nil {
			return fmt.Errorf("load owner: %w", err)
		}
		if owner != nil {
			detail.Owner = *owner
		}
		return nil
	})
	g.Go(func() error {
		responses, err := s.responseRepo.GetDetailedBySurveyID(gctx, nil, surveyID)
		if err != nil {
			return fmt.Errorf("load responses: %w", err)
		}
		detail.Responses = responses
		return nil
	})
	g.Go(func() error {
		scores, err := s.scoreRepo.GetBySurveyID(gctx, nil, surveyID)
		if err != nil {
			return fmt.Errorf("load category scores: %w", err)
		}
		detail.CategoryScores = scores
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, classifyDBError(err)
	}
	return detail, nil
}

func (s *surveyService) GetAll(ctx context.Context) ([]*types.SurveyWithOwner, error) {
	surveys, err := s.surveyRepo.GetAllWithOwner(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return surveys, nil
}

func (s *surveyService) GetByProfile(ctx context.Context, profileID uuid.UUID) ([]*types.Survey, error) {
	exists, err := s.profileRepo.Exists(ctx, nil, profileID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if !exists {
		return nil, fmt.Errorf("profile %s: %w", profileID, ErrNotFound)
	}
	surveys, err := s.surveyRepo.GetByProfileID(ctx, nil, profileID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return surveys, nil
}

func (s *surveyService) GetLatestByProfile(ctx context.Context, profileID uuid.UUID) (*types.SurveySummary, error) {
	survey, err := s.surveyRepo.GetLatestByProfileID(ctx, nil, profileID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if survey == nil {
		return nil, fmt.Errorf("profile %s has no surveys: %w", profileID, ErrNotFound)
	}
	scores, err := s.scoreRepo.GetBySurveyID(ctx, nil, survey.SurveyID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return &types.SurveySummary{Survey: *survey, CategoryScores: scores}, nil
}

func (s *surveyService) GetHistory(ctx context.Context, profileID uuid.UUID) ([]*types.SurveyHistoryEntry, error) {
	exists, err := s.profileRepo.Exists(ctx, nil, profileID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if !exists {
		return nil, fmt.Errorf("profile %s: %w", profileID, ErrNotFound)
	}
	entries, err := s.metricsRepo.GetSurveyHistory(ctx, nil, profileID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return entries, nil
}

func validateResponses(inputs []ResponseInput) error {
	for i, in := range inputs {
		if in.QuestionID <= 0 {
			return fmt.Errorf("response %d: question_id is required: %w", i, ErrValidation)
		}
		if in.SelectedOptionID <= 0 {
			return fmt.Errorf("response %d: selected_option_id is required: %w", i, ErrValidation)
		}
	}
	return nil
}
