package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/repos"
	"github.com/lyrahhq/lyrah-backend/internal/types"
	"github.com/lyrahhq/lyrah-backend/internal/utils"
)

type UserUpdateInput struct {
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	RoleID     *int    `json:"role_id"`
	IsActive   *bool   `json:"is_active"`
	IsVerified *bool   `json:"is_verified"`
}

type UserService interface {
	GetAll(ctx context.Context) ([]*types.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
	Update(ctx context.Context, userID uuid.UUID, input UserUpdateInput) (*types.User, error)
	Deactivate(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	db       *gorm.DB
	userRepo repos.UserRepo
	log      *logger.Logger
}

func NewUserService(db *gorm.DB, userRepo repos.UserRepo, baseLog *logger.Logger) UserService {
	serviceLog := baseLog.With("service", "UserService")
	return &userService{db: db, userRepo: userRepo, log: serviceLog}
}

func (s *userService) GetAll(ctx context.Context) ([]*types.User, error) {
	users, err := s.userRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, classifyDBError(err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, input UserUpdateInput) (*types.User, error) {
	patch := types.UserPatch{
		RoleID:     input.RoleID,
		IsActive:   input.IsActive,
		IsVerified: input.IsVerified,
	}
	if input.Username != nil {
		normalized := utils.NormalizeString(*input.Username)
		patch.Username = &normalized
	}
	if input.Email != nil {
		normalized := utils.NormalizeEmail(*input.Email)
		patch.Email = &normalized
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.GetByID(ctx, tx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return s.userRepo.Update(ctx, tx, userID, patch)
	})
	if err != nil {
		return nil, classifyDBError(err)
	}

	return s.GetByID(ctx, userID)
}

// Deactivate is a soft delete. The row stays for history and FK integrity.
func (s *userService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return classifyDBError(err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	if err := s.userRepo.Deactivate(ctx, nil, userID); err != nil {
		return classifyDBError(err)
	}
	s.log.Info("User deactivated", "user_id", userID)
	return nil
}
