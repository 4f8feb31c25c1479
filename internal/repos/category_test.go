package repos

import (
	"context"
	"testing"

	"github.com/lyrahhq/lyrah-backend/internal/repos/testutil"
)

func TestCategoryRepoMappings(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewCategoryRepo(db, testutil.Logger(t))

	q1 := testutil.SeedQuestion(t, ctx, tx, 1, 1)
	q2 := testutil.SeedQuestion(t, ctx, tx, 1, 2)
	mood := testutil.SeedCategory(t, ctx, tx, "Mood", 1)
	sleep := testutil.SeedCategory(t, ctx, tx, "Sleep", 2)

	testutil.SeedMapping(t, ctx, tx, q1.QuestionID, mood.CategoryID, 1.0)
	testutil.SeedMapping(t, ctx, tx, q1.QuestionID, sleep.CategoryID, 0.5)
	testutil.SeedMapping(t, ctx, tx, q2.QuestionID, sleep.CategoryID, 2.0)

	mappings, err := repo.GetMappings(ctx, tx)
	if err != nil || len(mappings) != 3 {
		t.Fatalf("GetMappings: err=%v len=%d", err, len(mappings))
	}

	entries, err := repo.GetMappingEntries(ctx, tx)
	if err != nil || len(entries) != 3 {
		t.Fatalf("GetMappingEntries: err=%v len=%d", err, len(entries))
	}
	if entries[0].CategoryName == "" || entries[0].QuestionText == "" {
		t.Fatalf("GetMappingEntries missing joined names: %+v", entries[0])
	}

	questions, err := repo.GetQuestionsForCategory(ctx, tx, sleep.CategoryID)
	if err != nil || len(questions) != 2 {
		t.Fatalf("GetQuestionsForCategory: err=%v len=%d", err, len(questions))
	}
	if questions[0].QuestionID != q1.QuestionID || questions[0].Weight != 0.5 {
		t.Fatalf("GetQuestionsForCategory first row: %+v", questions[0])
	}

	got, err := repo.GetByID(ctx, tx, mood.CategoryID)
	if err != nil || got == nil || got.Name != "Mood" {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if missing, err := repo.GetByID(ctx, tx, 999999); err != nil || missing != nil {
		t.Fatalf("GetByID for unknown id: err=%v got=%v", err, missing)
	}
}
