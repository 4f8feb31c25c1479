package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

type ProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error)
	GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Profile, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ProfileWithUser, error)
	GetOwner(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.ProfileOwner, error)
	Exists(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, patch types.ProfilePatch) error

	GetImprovementAreas(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.ImprovementAreaDetail, error)
	UpsertImprovementArea(ctx context.Context, tx *gorm.DB, area *types.ProfileImprovementArea) error
	RemoveImprovementArea(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, optionID int) error

	GetWellnessActivities(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.WellnessActivityDetail, error)
	AddWellnessActivity(ctx context.Context, tx *gorm.DB, activity *types.ProfileWellnessActivity) error
	RemoveWellnessActivity(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, optionID int) error
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{db: db, log: repoLog}
}

func (r *profileRepo) Create(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var profile types.Profile
	err := transaction.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var profile types.Profile
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ProfileWithUser, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ProfileWithUser
	if err := transaction.WithContext(ctx).
		Table("profiles").
		Select("profiles.*, users.username, users.email").
		Joins("JOIN users ON users.user_id = profiles.user_id").
		Where("users.is_active = ?", true).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *profileRepo) GetOwner(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.ProfileOwner, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var owner types.ProfileOwner
	result := transaction.WithContext(ctx).
		Table("profiles").
		Select("profiles.profile_id, profiles.first_name, profiles.last_name, users.username, users.email").
		Joins("JOIN users ON users.user_id = profiles.user_id").
		Where("profiles.profile_id = ?", profileID).
		Limit(1).
		Scan(&owner)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &owner, nil
}

func (r *profileRepo) Exists(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *profileRepo) Update(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, patch types.ProfilePatch) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	updates := map[string]any{}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.Birthdate != nil {
		updates["birthdate"] = *patch.Birthdate
	}
	if patch.Gender != nil {
		updates["gender"] = *patch.Gender
	}
	if patch.ProfilePictureURL != nil {
		updates["profile_picture_url"] = *patch.ProfilePictureURL
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.City != nil {
		updates["city"] = *patch.City
	}
	if patch.State != nil {
		updates["state"] = *patch.State
	}
	if patch.Country != nil {
		updates["country"] = *patch.Country
	}
	if patch.PostalCode != nil {
		updates["postal_code"] = *patch.PostalCode
	}
	if len(updates) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("profile_id = ?", profileID).
		Updates(updates).Error
}

func (r *profileRepo) GetImprovementAreas(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.ImprovementAreaDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ImprovementAreaDetail
	if err := transaction.WithContext(ctx).
		Table("profile_improvement_areas").
		Select("profile_improvement_areas.profile_id, profile_improvement_areas.option_id, improvement_areas_options.name, improvement_areas_options.description, profile_improvement_areas.priority_order").
		Joins("JOIN improvement_areas_options ON improvement_areas_options.option_id = profile_improvement_areas.option_id").
		Where("profile_improvement_areas.profile_id = ?", profileID).
		Order("profile_improvement_areas.priority_order").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *profileRepo) UpsertImprovementArea(ctx context.Context, tx *gorm.DB, area *types.ProfileImprovementArea) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "option_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"priority_order"}),
		}).
		Create(area).Error
}

func (r *profileRepo) RemoveImprovementArea(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, optionID int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Where("profile_id = ? AND option_id = ?", profileID, optionID).
		Delete(&types.ProfileImprovementArea{}).Error
}

func (r *profileRepo) GetWellnessActivities(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.WellnessActivityDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.WellnessActivityDetail
	if err := transaction.WithContext(ctx).
		Table("profile_wellness_activities").
		Select("profile_wellness_activities.profile_id, profile_wellness_activities.option_id, wellness_activities_options.name, wellness_activities_options.description").
		Joins("JOIN wellness_activities_options ON wellness_activities_options.option_id = profile_wellness_activities.option_id").
		Where("profile_wellness_activities.profile_id = ?", profileID).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *profileRepo) AddWellnessActivity(ctx context.Context, tx *gorm.DB, activity *types.ProfileWellnessActivity) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(activity).Error
}

func (r *profileRepo) RemoveWellnessActivity(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, optionID int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Where("profile_id = ? AND option_id = ?", profileID, optionID).
		Delete(&types.ProfileWellnessActivity{}).Error
}
