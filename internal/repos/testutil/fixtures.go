package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		UserID:       uuid.New(),
		Username:     email,
		Email:        email,
		PasswordHash: "hash",
		RoleID:       2,
		IsActive:     true,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *types.Profile {
	tb.Helper()
	p := &types.Profile{
		ProfileID: uuid.New(),
		UserID:    userID,
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, section, number int) *types.Question {
	tb.Helper()
	q := &types.Question{
		QuestionText:   fmt.Sprintf("question %d.%d", section, number),
		SectionNumber:  section,
		QuestionNumber: number,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func SeedOption(tb testing.TB, ctx context.Context, tx *gorm.DB, questionID int, score float64, order int) *types.QuestionOption {
	tb.Helper()
	o := &types.QuestionOption{
		QuestionID:   questionID,
		OptionText:   fmt.Sprintf("option %d", order),
		Score:        score,
		DisplayOrder: order,
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed option: %v", err)
	}
	return o
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, order int) *types.Category {
	tb.Helper()
	c := &types.Category{
		Name:         name,
		DisplayOrder: order,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedMapping(tb testing.TB, ctx context.Context, tx *gorm.DB, questionID, categoryID int, weight float64) *types.QuestionCategoryMapping {
	tb.Helper()
	m := &types.QuestionCategoryMapping{
		QuestionID: questionID,
		CategoryID: categoryID,
		Weight:     weight,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed mapping: %v", err)
	}
	return m
}

func SeedSurvey(tb testing.TB, ctx context.Context, tx *gorm.DB, profileID uuid.UUID, surveyDate time.Time) *types.Survey {
	tb.Helper()
	s := &types.Survey{
		SurveyID:     uuid.New(),
		ProfileID:    profileID,
		ConsentGiven: true,
		SurveyDate:   surveyDate,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed survey: %v", err)
	}
	return s
}

func PtrBool(v bool) *bool { return &v }

func PtrString(v string) *string { return &v }

func PtrTime(v time.Time) *time.Time { return &v }
