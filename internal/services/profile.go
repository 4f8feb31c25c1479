package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/repos"
	"github.com/lyrahhq/lyrah-backend/internal/types"
	"github.com/lyrahhq/lyrah-backend/internal/utils"
)

type ProfileCreateInput struct {
	UserID            uuid.UUID  `json:"user_id" binding:"required"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Birthdate         *time.Time `json:"birthdate"`
	Gender            string     `json:"gender"`
	ProfilePictureURL string     `json:"profile_picture_url"`
	Bio               string     `json:"bio"`
	Phone             string     `json:"phone"`
	Address           string     `json:"address"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	Country           string     `json:"country"`
	PostalCode        string     `json:"postal_code"`
}

type ProfileUpdateInput struct {
	FirstName         *string    `json:"first_name"`
	LastName          *string    `json:"last_name"`
	Birthdate         *time.Time `json:"birthdate"`
	Gender            *string    `json:"gender"`
	ProfilePictureURL *string    `json:"profile_picture_url"`
	Bio               *string    `json:"bio"`
	Phone             *string    `json:"phone"`
	Address           *string    `json:"address"`
	City              *string    `json:"city"`
	State             *string    `json:"state"`
	Country           *string    `json:"country"`
	PostalCode        *string    `json:"postal_code"`
}

type ImprovementAreaInput struct {
	OptionID      int `json:"option_id" binding:"required"`
	PriorityOrder int `json:"priority_order"`
}

type WellnessActivityInput struct {
	OptionID int `json:"option_id" binding:"required"`
}

type ProfileService interface {
	Create(ctx context.Context, input ProfileCreateInput) (*types.Profile, error)
	GetAll(ctx context.Context) ([]*types.ProfileWithUser, error)
	GetByID(ctx context.Context, profileID uuid.UUID) (*types.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	Update(ctx context.Context, profileID uuid.UUID, input ProfileUpdateInput) (*types.Profile, error)

	GetImprovementAreas(ctx context.Context, profileID uuid.UUID) ([]*types.ImprovementAreaDetail, error)
	SetImprovementArea(ctx context.Context, profileID uuid.UUID, input ImprovementAreaInput) error
	RemoveImprovementArea(ctx context.Context, profileID uuid.UUID, optionID int) error

	GetWellnessActivities(ctx context.Context, profileID uuid.UUID) ([]*types.WellnessActivityDetail, error)
	AddWellnessActivity(ctx context.Context, profileID uuid.UUID, input WellnessActivityInput) error
	RemoveWellnessActivity(ctx context.Context, profileID uuid.UUID, optionID int) error
}

type profileService struct {
	db          *gorm.DB
	profileRepo repos.ProfileRepo
	userRepo    repos.UserRepo
	log         *logger.Logger
}

func NewProfileService(db *gorm.DB, profileRepo repos.ProfileRepo, userRepo repos.UserRepo, baseLog *logger.Logger) ProfileService {
	serviceLog := baseLog.With("service", "ProfileService")
	return &profileService{db: db, profileRepo: profileRepo, userRepo: userRepo, log: serviceLog}
}

func (s *profileService) Create(ctx context.Context, input ProfileCreateInput) (*types.Profile, error) {
	profile := &types.Profile{
		ProfileID:         uuid.New(),
		UserID:            input.UserID,
		FirstName:         utils.NormalizeString(input.FirstName),
		LastName:          utils.NormalizeString(input.LastName),
		Birthdate:         input.Birthdate,
		Gender:            input.Gender,
		ProfilePictureURL: input.ProfilePictureURL,
		Bio:               input.Bio,
		Phone:             input.Phone,
		Address:           input.Address,
		City:              input.City,
		State:             input.State,
		Country:           input.Country,
		PostalCode:        input.PostalCode,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.GetByID(ctx, tx, input.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %s: %w", input.UserID, ErrInvalidReference)
		}
		existing, err := s.profileRepo.GetByUserID(ctx, tx, input.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("user %s already has a profile: %w", input.UserID, ErrConflict)
		}
		_, err = s.profileRepo.Create(ctx, tx, profile)
		return err
	})
	if err != nil {
		return nil, classifyDBError(err)
	}

	s.log.Info("Profile created", "profile_id", profile.ProfileID, "user_id", profile.UserID)
	return profile, nil
}

func (s *profileService) GetAll(ctx context.Context) ([]*types.ProfileWithUser, error) {
	profiles, err := s.profileRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return profiles, nil
}

func (s *profileService) GetByID(ctx context.Context, profileID uuid.UUID) (*types.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, nil, profileID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", profileID, ErrNotFound)
	}
	return profile, nil
}

func (s *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile for user %s: %w", userID, ErrNotFound)
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, profileID uuid.UUID, input ProfileUpdateInput) (*types.Profile, error) {
	patch := types.ProfilePatch{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Birthdate:         input.Birthdate,
		Gender:            input.Gender,
		ProfilePictureURL: input.ProfilePictureURL,
		Bio:               input.Bio,
		Phone:             input.Phone,
		Address:           input.Address,
		City:              input.City,
		State:             input.State,
		Country:           input.Country,
		PostalCode:        input.PostalCode,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.GetByID(ctx, tx, profileID)
		if err != nil {
			return err
		}
		if profile == nil {
			return fmt.Errorf("profile %s: %w", profileID, ErrNotFound)
		}
		return s.profileRepo.Update(ctx, tx, profileID, patch)
	})
	if err != nil {
		return nil, classifyDBError(err)
	}

	return s.GetByID(ctx, profileID)
}

func (s *profileService) GetImprovementAreas(ctx context.Context, profileID uuid.UUID) ([]*types.ImprovementAreaDetail, error) {
	if err := s.requireProfile(ctx, profileID); err != nil {
		return nil, err
	}
	areas, err := s.profileRepo.GetImprovementAreas(ctx, nil, profileID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return areas, nil
}

// SetImprovementArea inserts the selection or updates its priority when the
// profile already picked that option.
func (s *profileService) SetImprovementArea(ctx context.Context, profileID uuid.UUID, input ImprovementAreaInput) error {
	if err := s.requireProfile(ctx, profileID); err != nil {
		return err
	}
	area := &types.ProfileImprovementArea{
		ProfileID:     profileID,
		OptionID:      input.OptionID,
		PriorityOrder: input.PriorityOrder,
	}
	if err := s.profileRepo.UpsertImprovementArea(ctx, nil, area); err != nil {
		return classifyDBError(err)
	}
	return nil
}

func (s *profileService) RemoveImprovementArea(ctx context.Context, profileID uuid.UUID, optionID int) error {
	if err := s.requireProfile(ctx, profileID); err != nil {
		return err
	}
	if err := s.profileRepo.RemoveImprovementArea(ctx, nil, profileID, optionID); err != nil {
		return classifyDBError(err)
	}
	return nil
}

func (s *profileService) GetWellnessActivities(ctx context.Context, profileID uuid.UUID) ([]*types.WellnessActivityDetail, error) {
	if err := s.requireProfile(ctx, profileID); err != nil {
		return nil, err
	}
	activities, err := s.profileRepo.GetWellnessActivities(ctx, nil, profileID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return activities, nil
}

func (s *profileService) AddWellnessActivity(ctx context.Context, profileID uuid.UUID, input WellnessActivityInput) error {
	if err := s.requireProfile(ctx, profileID); err != nil {
		return err
	}
	activity := &types.ProfileWellnessActivity{ProfileID: profileID, OptionID: input.OptionID}
	if err := s.profileRepo.AddWellnessActivity(ctx, nil, activity); err != nil {
		return classifyDBError(err)
	}
	return nil
}

func (s *profileService) RemoveWellnessActivity(ctx context.Context, profileID uuid.UUID, optionID int) error {
	if err := s.requireProfile(ctx, profileID); err != nil {
		return err
	}
	if err := s.profileRepo.RemoveWellnessActivity(ctx, nil, profileID, optionID); err != nil {
		return classifyDBError(err)
	}
	return nil
}

func (s *profileService) requireProfile(ctx context.Context, profileID uuid.UUID) error {
	exists, err := s.profileRepo.Exists(ctx, nil, profileID)
	if err != nil {
		return classifyDBError(err)
	}
	if !exists {
		return fmt.Errorf("profile %s: %w", profileID, ErrNotFound)
	}
	return nil
}
