package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/repos"
	"github.com/lyrahhq/lyrah-backend/internal/types"
	"github.com/lyrahhq/lyrah-backend/internal/utils"
)

type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginMeta struct {
	IPAddress string
	UserAgent string
}

type AuthResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      *types.User    `json:"user"`
	Profile   *types.Profile `json:"profile,omitempty"`
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput, meta LoginMeta) (*AuthResult, error)
	Authenticate(tokenString string) (uuid.UUID, string, error)
}

type authService struct {
	db          *gorm.DB
	userRepo    repos.UserRepo
	profileRepo repos.ProfileRepo
	metricsRepo repos.MetricsRepo
	secret      []byte
	tokenTTL    time.Duration
	log         *logger.Logger
}

func NewAuthService(
	db *gorm.DB,
	userRepo repos.UserRepo,
	profileRepo repos.ProfileRepo,
	metricsRepo repos.MetricsRepo,
	secret string,
	tokenTTL time.Duration,
	baseLog *logger.Logger,
) AuthService {
	serviceLog := baseLog.With("service", "AuthService")
	return &authService{
		db:          db,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		metricsRepo: metricsRepo,
		secret:      []byte(secret),
		tokenTTL:    tokenTTL,
		log:         serviceLog,
	}
}

// Register creates the user and an empty profile in one transaction, then
// issues a token. New users always get the non-admin role.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := utils.NormalizeEmail(input.Email)
	username := utils.NormalizeString(input.Username)

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &types.User{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		RoleID:       2,
		IsActive:     true,
	}
	profile := &types.Profile{
		ProfileID: uuid.New(),
		UserID:    user.UserID,
		FirstName: utils.NormalizeString(input.FirstName),
		LastName:  utils.NormalizeString(input.LastName),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := s.userRepo.EmailExists(ctx, tx, email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return fmt.Errorf("email %s: %w", email, ErrConflict)
		}
		taken, err = s.userRepo.UsernameExists(ctx, tx, username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			return fmt.Errorf("username %s: %w", username, ErrConflict)
		}

		if _, err := s.userRepo.Create(ctx, tx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := s.profileRepo.Create(ctx, tx, profile); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, classifyDBError(err)
	}

	token, expiresAt, err := s.issueToken(user.UserID, types.RoleUser)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered", "user_id", user.UserID, "email", email)
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user, Profile: profile}, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput, meta LoginMeta) (*AuthResult, error) {
	email := utils.NormalizeEmail(input.Email)

	user, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, classifyDBError(err)
	}
	if user == nil || !user.IsActive {
		s.recordLoginAttempt(ctx, user, meta, false)
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}
	if !utils.CheckPassword(user.PasswordHash, input.Password) {
		s.recordLoginAttempt(ctx, user, meta, false)
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	roleName, err := s.userRepo.RoleName(ctx, nil, user.RoleID)
	if err != nil {
		return nil, classifyDBError(err)
	}

	if err := s.userRepo.RecordLogin(ctx, nil, user.UserID); err != nil {
		s.log.Warn("Failed to record login", "user_id", user.UserID, "error", err)
	}
	s.recordLoginAttempt(ctx, user, meta, true)

	profile, err := s.profileRepo.GetByUserID(ctx, nil, user.UserID)
	if err != nil {
		return nil, classifyDBError(err)
	}

	token, expiresAt, err := s.issueToken(user.UserID, roleName)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", "user_id", user.UserID)
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user, Profile: profile}, nil
}

// Authenticate validates a bearer token and returns the subject and role.
func (s *authService) Authenticate(tokenString string) (uuid.UUID, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("invalid token: %w", ErrUnauthorized)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid token subject: %w", ErrUnauthorized)
	}
	return userID, claims.Role, nil
}

func (s *authService) issueToken(userID uuid.UUID, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *authService) recordLoginAttempt(ctx context.Context, user *types.User, meta LoginMeta, success bool) {
	if user == nil {
		return
	}
	entry := &types.LoginHistory{
		UserID:         user.UserID,
		LoginTimestamp: time.Now().UTC(),
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
		Success:        success,
	}
	if err := s.metricsRepo.CreateLoginHistory(ctx, nil, entry); err != nil {
		s.log.Warn("Failed to record login history", "user_id", user.UserID, "error", err)
	}
}
