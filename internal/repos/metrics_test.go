package repos

import (
	"context"
	"testing"
	"time"

	"github.com/lyrahhq/lyrah-backend/internal/repos/testutil"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

func TestMetricsRepoSurveyHistory(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMetricsRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "history@example.com")
	p := testutil.SeedProfile(t, ctx, tx, u.UserID)

	q := testutil.SeedQuestion(t, ctx, tx, 1, 1)
	o := testutil.SeedOption(t, ctx, tx, q.QuestionID, 3, 1)
	cat := testutil.SeedCategory(t, ctx, tx, "Mood", 1)

	older := testutil.SeedSurvey(t, ctx, tx, p.ProfileID, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	newer := testutil.SeedSurvey(t, ctx, tx, p.ProfileID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))

	resp := types.SurveyResponse{SurveyID: newer.SurveyID, QuestionID: q.QuestionID, SelectedOptionID: o.OptionID, Score: 3}
	if err := tx.WithContext(ctx).Create(&resp).Error; err != nil {
		t.Fatalf("seed response: %v", err)
	}
	score := types.SurveyCategoryScore{SurveyID: newer.SurveyID, CategoryID: cat.CategoryID, Score: 3}
	if err := tx.WithContext(ctx).Create(&score).Error; err != nil {
		t.Fatalf("seed score: %v", err)
	}

	entries, err := repo.GetSurveyHistory(ctx, tx, p.ProfileID)
	if err != nil || len(entries) != 2 {
		t.Fatalf("GetSurveyHistory: err=%v len=%d", err, len(entries))
	}
	if entries[0].SurveyID != newer.SurveyID {
		t.Fatalf("GetSurveyHistory order: want newest first, got %s", entries[0].SurveyID)
	}
	if entries[0].QuestionsAnswered != 1 || entries[0].TotalScore != 3 {
		t.Fatalf("GetSurveyHistory newest row: %+v", entries[0])
	}
	if entries[1].SurveyID != older.SurveyID || entries[1].QuestionsAnswered != 0 || entries[1].TotalScore != 0 {
		t.Fatalf("GetSurveyHistory empty survey row: %+v", entries[1])
	}
}

func TestMetricsRepoLoginAndActivity(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMetricsRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "loghistory@example.com")

	for i := 0; i < 3; i++ {
		entry := &types.LoginHistory{
			UserID:         u.UserID,
			LoginTimestamp: time.Date(2026, 6, 1+i, 0, 0, 0, 0, time.UTC),
			Success:        i != 0,
		}
		if err := repo.CreateLoginHistory(ctx, tx, entry); err != nil {
			t.Fatalf("CreateLoginHistory: %v", err)
		}
	}

	entries, err := repo.GetLoginHistory(ctx, tx, u.UserID, 2)
	if err != nil || len(entries) != 2 {
		t.Fatalf("GetLoginHistory: err=%v len=%d", err, len(entries))
	}
	if !entries[0].LoginTimestamp.After(entries[1].LoginTimestamp) {
		t.Fatalf("GetLoginHistory order: %v then %v", entries[0].LoginTimestamp, entries[1].LoginTimestamp)
	}

	act := &types.UserActivityLog{
		UserID:       u.UserID,
		ActivityType: "survey_submitted",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.LogActivity(ctx, tx, act); err != nil {
		t.Fatalf("LogActivity: %v", err)
	}
	acts, err := repo.GetUserActivity(ctx, tx, u.UserID, 10)
	if err != nil || len(acts) != 1 || acts[0].ActivityType != "survey_submitted" {
		t.Fatalf("GetUserActivity: err=%v acts=%+v", err, acts)
	}
}

func TestMetricsRepoSurveyStatistics(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMetricsRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "stats@example.com")
	p := testutil.SeedProfile(t, ctx, tx, u.UserID)
	testutil.SeedSurvey(t, ctx, tx, p.ProfileID, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	testutil.SeedSurvey(t, ctx, tx, p.ProfileID, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	stats, err := repo.GetSurveyStatistics(ctx, tx)
	if err != nil || stats == nil {
		t.Fatalf("GetSurveyStatistics: err=%v", err)
	}
	if stats.TotalSurveys < 2 || stats.UniqueProfiles < 1 {
		t.Fatalf("GetSurveyStatistics counts: %+v", stats)
	}
	if stats.LatestSurvey == nil || stats.FirstSurvey == nil {
		t.Fatalf("GetSurveyStatistics bounds: %+v", stats)
	}
}
