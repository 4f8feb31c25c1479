package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lyrahhq/lyrah-backend/internal/repos/testutil"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

func TestSurveyRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewSurveyRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "surveyrepo@example.com")
	p := testutil.SeedProfile(t, ctx, tx, u.UserID)

	older := testutil.SeedSurvey(t, ctx, tx, p.ProfileID, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	newer := testutil.SeedSurvey(t, ctx, tx, p.ProfileID, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	got, err := repo.GetByID(ctx, tx, older.SurveyID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if missing, err := repo.GetByID(ctx, tx, uuid.New()); err != nil || missing != nil {
		t.Fatalf("GetByID for unknown id: err=%v got=%v", err, missing)
	}

	list, err := repo.GetByProfileID(ctx, tx, p.ProfileID)
	if err != nil || len(list) != 2 {
		t.Fatalf("GetByProfileID: err=%v len=%d", err, len(list))
	}
	if list[0].SurveyID != newer.SurveyID {
		t.Fatalf("GetByProfileID order: want newest first, got %s", list[0].SurveyID)
	}

	latest, err := repo.GetLatestByProfileID(ctx, tx, p.ProfileID)
	if err != nil || latest == nil || latest.SurveyID != newer.SurveyID {
		t.Fatalf("GetLatestByProfileID: err=%v got=%v", err, latest)
	}

	consent := false
	newDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if err := repo.UpdateHeader(ctx, tx, older.SurveyID, types.SurveyHeaderPatch{ConsentGiven: &consent, SurveyDate: &newDate}); err != nil {
		t.Fatalf("UpdateHeader: %v", err)
	}
	updated, err := repo.GetByID(ctx, tx, older.SurveyID)
	if err != nil || updated == nil {
		t.Fatalf("GetByID after update: err=%v", err)
	}
	if updated.ConsentGiven || !updated.SurveyDate.Equal(newDate) {
		t.Fatalf("UpdateHeader did not apply: consent=%v date=%v", updated.ConsentGiven, updated.SurveyDate)
	}

	// Empty patch is a no-op, not an error.
	if err := repo.UpdateHeader(ctx, tx, older.SurveyID, types.SurveyHeaderPatch{}); err != nil {
		t.Fatalf("UpdateHeader empty patch: %v", err)
	}

	exists, err := repo.Exists(ctx, tx, newer.SurveyID)
	if err != nil || !exists {
		t.Fatalf("Exists: err=%v exists=%v", err, exists)
	}
	exists, err = repo.Exists(ctx, tx, uuid.New())
	if err != nil || exists {
		t.Fatalf("Exists for unknown id: err=%v exists=%v", err, exists)
	}

	all, err := repo.GetAllWithOwner(ctx, tx)
	if err != nil || len(all) < 2 {
		t.Fatalf("GetAllWithOwner: err=%v len=%d", err, len(all))
	}
	if all[0].Email == "" {
		t.Fatalf("GetAllWithOwner missing owner fields: %+v", all[0])
	}
}

func TestSurveyResponseRepoReplaceSemantics(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewSurveyResponseRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "responserepo@example.com")
	p := testutil.SeedProfile(t, ctx, tx, u.UserID)
	s := testutil.SeedSurvey(t, ctx, tx, p.ProfileID, time.Now().UTC())

	q1 := testutil.SeedQuestion(t, ctx, tx, 1, 1)
	q2 := testutil.SeedQuestion(t, ctx, tx, 1, 2)
	o1 := testutil.SeedOption(t, ctx, tx, q1.QuestionID, 4, 1)
	o2 := testutil.SeedOption(t, ctx, tx, q2.QuestionID, 2, 1)

	first := []types.SurveyResponse{
		{SurveyID: s.SurveyID, QuestionID: q1.QuestionID, SelectedOptionID: o1.OptionID, Score: 4},
		{SurveyID: s.SurveyID, QuestionID: q2.QuestionID, SelectedOptionID: o2.OptionID, Score: 2},
	}
	if err := repo.CreateBatch(ctx, tx, first); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	rows, err := repo.GetBySurveyID(ctx, tx, s.SurveyID)
	if err != nil || len(rows) != 2 {
		t.Fatalf("GetBySurveyID: err=%v len=%d", err, len(rows))
	}

	// Full replacement: delete everything, insert the new set.
	if err := repo.DeleteBySurveyID(ctx, tx, s.SurveyID); err != nil {
		t.Fatalf("DeleteBySurveyID: %v", err)
	}
	second := []types.SurveyResponse{
		{SurveyID: s.SurveyID, QuestionID: q1.QuestionID, SelectedOptionID: o1.OptionID, Score: 4},
	}
	if err := repo.CreateBatch(ctx, tx, second); err != nil {
		t.Fatalf("CreateBatch replacement: %v", err)
	}
	rows, err = repo.GetBySurveyID(ctx, tx, s.SurveyID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("after replacement GetBySurveyID: err=%v len=%d", err, len(rows))
	}
	if rows[0].QuestionID != q1.QuestionID {
		t.Fatalf("replacement kept wrong row: %+v", rows[0])
	}

	details, err := repo.GetDetailedBySurveyID(ctx, tx, s.SurveyID)
	if err != nil || len(details) != 1 {
		t.Fatalf("GetDetailedBySurveyID: err=%v len=%d", err, len(details))
	}
	if details[0].QuestionText == "" || details[0].OptionText == "" {
		t.Fatalf("GetDetailedBySurveyID missing joined text: %+v", details[0])
	}

	// Empty batch is a no-op.
	if err := repo.CreateBatch(ctx, tx, nil); err != nil {
		t.Fatalf("CreateBatch empty: %v", err)
	}
}

func TestSurveyCategoryScoreRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewSurveyCategoryScoreRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "scorerepo@example.com")
	p := testutil.SeedProfile(t, ctx, tx, u.UserID)
	s := testutil.SeedSurvey(t, ctx, tx, p.ProfileID, time.Now().UTC())

	second := testutil.SeedCategory(t, ctx, tx, "Sleep", 2)
	firstCat := testutil.SeedCategory(t, ctx, tx, "Mood", 1)

	scores := []types.SurveyCategoryScore{
		{SurveyID: s.SurveyID, CategoryID: second.CategoryID, Score: 7.5},
		{SurveyID: s.SurveyID, CategoryID: firstCat.CategoryID, Score: 3},
	}
	if err := repo.CreateBatch(ctx, tx, scores); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	details, err := repo.GetBySurveyID(ctx, tx, s.SurveyID)
	if err != nil || len(details) != 2 {
		t.Fatalf("GetBySurveyID: err=%v len=%d", err, len(details))
	}
	if details[0].CategoryID != firstCat.CategoryID {
		t.Fatalf("GetBySurveyID order: want display order, got category %d first", details[0].CategoryID)
	}
	if details[1].Score != 7.5 {
		t.Fatalf("score mismatch: %+v", details[1])
	}

	if err := repo.DeleteBySurveyID(ctx, tx, s.SurveyID); err != nil {
		t.Fatalf("DeleteBySurveyID: %v", err)
	}
	details, err = repo.GetBySurveyID(ctx, tx, s.SurveyID)
	if err != nil || len(details) != 0 {
		t.Fatalf("after delete GetBySurveyID: err=%v len=%d", err, len(details))
	}
}
