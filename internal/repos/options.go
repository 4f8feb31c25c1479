package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

// OptionsRepo serves the improvement-area and wellness-activity catalogs.
// Both are seeded out of band and read-only at runtime.
type OptionsRepo interface {
	GetImprovementAreas(ctx context.Context, tx *gorm.DB) ([]*types.ImprovementAreaOption, error)
	GetImprovementAreaByID(ctx context.Context, tx *gorm.DB, optionID int) (*types.ImprovementAreaOption, error)
	GetWellnessActivities(ctx context.Context, tx *gorm.DB) ([]*types.WellnessActivityOption, error)
	GetWellnessActivityByID(ctx context.Context, tx *gorm.DB, optionID int) (*types.WellnessActivityOption, error)
}

type optionsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOptionsRepo(db *gorm.DB, baseLog *logger.Logger) OptionsRepo {
	repoLog := baseLog.With("repo", "OptionsRepo")
	return &optionsRepo{db: db, log: repoLog}
}

func (r *optionsRepo) GetImprovementAreas(ctx context.Context, tx *gorm.DB) ([]*types.ImprovementAreaOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var options []*types.ImprovementAreaOption
	if err := transaction.WithContext(ctx).
		Order("display_order").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *optionsRepo) GetImprovementAreaByID(ctx context.Context, tx *gorm.DB, optionID int) (*types.ImprovementAreaOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var option types.ImprovementAreaOption
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

func (r *optionsRepo) GetWellnessActivities(ctx context.Context, tx *gorm.DB) ([]*types.WellnessActivityOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var options []*types.WellnessActivityOption
	if err := transaction.WithContext(ctx).
		Order("display_order").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *optionsRepo) GetWellnessActivityByID(ctx context.Context, tx *gorm.DB, optionID int) (*types.WellnessActivityOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var option types.WellnessActivityOption
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
