package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/repos"
	"github.com/lyrahhq/lyrah-backend/internal/repos/testutil"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

type surveyFixture struct {
	svc      SurveyService
	db       *gorm.DB
	profile  *types.Profile
	q1, q2   *types.Question
	o1, o2   *types.QuestionOption
	mood     *types.Category
	sleep    *types.Category
}

// newSurveyFixture seeds two questions mapped into two categories:
// q1 -> mood (w=1.0) and sleep (w=0.5), q2 -> sleep (w=2.0).
func newSurveyFixture(t *testing.T, email string, scoreRepo repos.SurveyCategoryScoreRepo) *surveyFixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, db, email)
	p := testutil.SeedProfile(t, ctx, db, u.UserID)
	q1 := testutil.SeedQuestion(t, ctx, db, 1, 1)
	q2 := testutil.SeedQuestion(t, ctx, db, 1, 2)
	o1 := testutil.SeedOption(t, ctx, db, q1.QuestionID, 4, 1)
	o2 := testutil.SeedOption(t, ctx, db, q2.QuestionID, 2, 1)
	mood := testutil.SeedCategory(t, ctx, db, "Mood "+email, 1)
	sleep := testutil.SeedCategory(t, ctx, db, "Sleep "+email, 2)
	testutil.SeedMapping(t, ctx, db, q1.QuestionID, mood.CategoryID, 1.0)
	testutil.SeedMapping(t, ctx, db, q1.QuestionID, sleep.CategoryID, 0.5)
	testutil.SeedMapping(t, ctx, db, q2.QuestionID, sleep.CategoryID, 2.0)

	if scoreRepo == nil {
		scoreRepo = repos.NewSurveyCategoryScoreRepo(db, log)
	}
	svc := NewSurveyService(
		db,
		repos.NewSurveyRepo(db, log),
		repos.NewSurveyResponseRepo(db, log),
		scoreRepo,
		repos.NewProfileRepo(db, log),
		repos.NewCategoryRepo(db, log),
		repos.NewMetricsRepo(db, log),
		log,
	)
	return &surveyFixture{svc: svc, db: db, profile: p, q1: q1, q2: q2, o1: o1, o2: o2, mood: mood, sleep: sleep}
}

func scoreFor(details []types.CategoryScoreDetail, categoryID int) (float64, bool) {
	for _, d := range details {
		if d.CategoryID == categoryID {
			return d.Score, true
		}
	}
	return 0, false
}

func TestSurveyServiceCreateComputesScores(t *testing.T) {
	f := newSurveyFixture(t, "svc-create@example.com", nil)
	ctx := context.Background()

	detail, err := f.svc.Create(ctx, SurveyCreateInput{
		ProfileID:    f.profile.ProfileID,
		ConsentGiven: true,
		Responses: []ResponseInput{
			{QuestionID: f.q1.QuestionID, SelectedOptionID: f.o1.OptionID, Score: 4},
			{QuestionID: f.q2.QuestionID, SelectedOptionID: f.o2.OptionID, Score: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if detail.SurveyID == uuid.Nil || !detail.ConsentGiven {
		t.Fatalf("Create header: %+v", detail.Survey)
	}
	if len(detail.Responses) != 2 {
		t.Fatalf("Create responses: %d", len(detail.Responses))
	}
	if detail.Owner.ProfileID != f.profile.ProfileID {
		t.Fatalf("Create owner: %+v", detail.Owner)
	}

	// mood = 4*1.0, sleep = 4*0.5 + 2*2.0
	if got, ok := scoreFor(detail.CategoryScores, f.mood.CategoryID); !ok || got != 4 {
		t.Fatalf("mood score: ok=%v got=%v", ok, got)
	}
	if got, ok := scoreFor(detail.CategoryScores, f.sleep.CategoryID); !ok || got != 6 {
		t.Fatalf("sleep score: ok=%v got=%v", ok, got)
	}
}

func TestSurveyServiceCreateUnknownProfile(t *testing.T) {
	f := newSurveyFixture(t, "svc-badprofile@example.com", nil)

	_, err := f.svc.Create(context.Background(), SurveyCreateInput{
		ProfileID: uuid.New(),
		Responses: []ResponseInput{{QuestionID: f.q1.QuestionID, SelectedOptionID: f.o1.OptionID, Score: 4}},
	})
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("want ErrInvalidReference, got %v", err)
	}
}

func TestSurveyServiceCreateValidation(t *testing.T) {
	f := newSurveyFixture(t, "svc-validate@example.com", nil)

	_, err := f.svc.Create(context.Background(), SurveyCreateInput{
		ProfileID: f.profile.ProfileID,
		Responses: []ResponseInput{{QuestionID: 0, SelectedOptionID: f.o1.OptionID}},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestSurveyServiceUpdateReplacesResponsesAndScores(t *testing.T) {
	f := newSurveyFixture(t, "svc-update@example.com", nil)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, SurveyCreateInput{
		ProfileID: f.profile.ProfileID,
		Responses: []ResponseInput{
			{QuestionID: f.q1.QuestionID, SelectedOptionID: f.o1.OptionID, Score: 4},
			{QuestionID: f.q2.QuestionID, SelectedOptionID: f.o2.OptionID, Score: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := f.svc.Update(ctx, created.SurveyID, SurveyUpdateInput{
		Responses: []ResponseInput{
			{QuestionID: f.q2.QuestionID, SelectedOptionID: f.o2.OptionID, Score: 2},
		},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.Responses) != 1 || updated.Responses[0].QuestionID != f.q2.QuestionID {
		t.Fatalf("Update responses not replaced: %+v", updated.Responses)
	}

	// Only sleep remains: 2*2.0. Mood must be gone, not stale.
	if _, ok := scoreFor(updated.CategoryScores, f.mood.CategoryID); ok {
		t.Fatalf("stale mood score survived replacement: %+v", updated.CategoryScores)
	}
	if got, ok := scoreFor(updated.CategoryScores, f.sleep.CategoryID); !ok || got != 4 {
		t.Fatalf("sleep score after update: ok=%v got=%v", ok, got)
	}
}

func TestSurveyServiceUpdateHeaderOnly(t *testing.T) {
	f := newSurveyFixture(t, "svc-header@example.com", nil)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, SurveyCreateInput{
		ProfileID: f.profile.ProfileID,
		Responses: []ResponseInput{
			{QuestionID: f.q1.QuestionID, SelectedOptionID: f.o1.OptionID, Score: 4},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	consent := true
	newDate := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	updated, err := f.svc.Update(ctx, created.SurveyID, SurveyUpdateInput{
		ConsentGiven: &consent,
		SurveyDate:   &newDate,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.ConsentGiven || !updated.SurveyDate.Equal(newDate) {
		t.Fatalf("header patch not applied: %+v", updated.Survey)
	}
	if len(updated.Responses) != 1 || len(updated.CategoryScores) != len(created.CategoryScores) {
		t.Fatalf("header-only update touched responses or scores: %+v", updated)
	}
}

func TestSurveyServiceUpdateUnknownSurvey(t *testing.T) {
	f := newSurveyFixture(t, "svc-missing@example.com", nil)

	_, err := f.svc.Update(context.Background(), uuid.New(), SurveyUpdateInput{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

type failingScoreRepo struct {
	repos.SurveyCategoryScoreRepo
}

func (f failingScoreRepo) CreateBatch(ctx context.Context, tx *gorm.DB, scores []types.SurveyCategoryScore) error {
	return errors.New("score insert failed")
}

func TestSurveyServiceCreateRollsBackOnScoreFailure(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	inner := repos.NewSurveyCategoryScoreRepo(db, log)
	f := newSurveyFixture(t, "svc-rollback@example.com", failingScoreRepo{inner})
	ctx := context.Background()

	_, err := f.svc.Create(ctx, SurveyCreateInput{
		ProfileID: f.profile.ProfileID,
		Responses: []ResponseInput{
			{QuestionID: f.q1.QuestionID, SelectedOptionID: f.o1.OptionID, Score: 4},
		},
	})
	if err == nil {
		t.Fatal("Create should fail when score insert fails")
	}

	// Nothing from the transaction may survive: no header, no responses.
	var headerCount int64
	if err := f.db.Model(&types.Survey{}).Where("profile_id = ?", f.profile.ProfileID).Count(&headerCount).Error; err != nil {
		t.Fatalf("count surveys: %v", err)
	}
	if headerCount != 0 {
		t.Fatalf("survey header survived rollback: count=%d", headerCount)
	}
	var responseCount int64
	if err := f.db.Table("survey_responses").
		Joins("JOIN surveys ON surveys.survey_id = survey_responses.survey_id").
		Where("surveys.profile_id = ?", f.profile.ProfileID).
		Count(&responseCount).Error; err != nil {
		t.Fatalf("count responses: %v", err)
	}
	if responseCount != 0 {
		t.Fatalf("responses survived rollback: count=%d", responseCount)
	}
}

func TestSurveyServiceHistoryAndLatest(t *testing.T) {
	f := newSurveyFixture(t, "svc-history@example.com", nil)
	ctx := context.Background()

	olderDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newerDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if _, err := f.svc.Create(ctx, SurveyCreateInput{
		ProfileID:  f.profile.ProfileID,
		SurveyDate: &olderDate,
		Responses:  []ResponseInput{{QuestionID: f.q1.QuestionID, SelectedOptionID: f.o1.OptionID, Score: 4}},
	}); err != nil {
		t.Fatalf("Create older: %v", err)
	}
	newer, err := f.svc.Create(ctx, SurveyCreateInput{
		ProfileID:  f.profile.ProfileID,
		SurveyDate: &newerDate,
		Responses: []ResponseInput{
			{QuestionID: f.q1.QuestionID, SelectedOptionID: f.o1.OptionID, Score: 4},
			{QuestionID: f.q2.QuestionID, SelectedOptionID: f.o2.OptionID, Score: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create newer: %v", err)
	}

	latest, err := f.svc.GetLatestByProfile(ctx, f.profile.ProfileID)
	if err != nil || latest.SurveyID != newer.SurveyID {
		t.Fatalf("GetLatestByProfile: err=%v got=%v", err, latest)
	}
	if len(latest.CategoryScores) == 0 {
		t.Fatalf("GetLatestByProfile missing scores")
	}

	history, err := f.svc.GetHistory(ctx, f.profile.ProfileID)
	if err != nil || len(history) != 2 {
		t.Fatalf("GetHistory: err=%v len=%d", err, len(history))
	}
	if history[0].SurveyID != newer.SurveyID || history[0].QuestionsAnswered != 2 {
		t.Fatalf("GetHistory newest row: %+v", history[0])
	}
	// mood 4 + sleep 6
	if history[0].TotalScore != 10 {
		t.Fatalf("GetHistory total score: %v", history[0].TotalScore)
	}

	if _, err := f.svc.GetHistory(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetHistory unknown profile: %v", err)
	}
}
