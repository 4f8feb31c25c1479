package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lyrahhq/lyrah-backend/internal/repos"
	"github.com/lyrahhq/lyrah-backend/internal/repos/testutil"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return NewAuthService(
		db,
		repos.NewUserRepo(db, log),
		repos.NewProfileRepo(db, log),
		repos.NewMetricsRepo(db, log),
		"test-secret",
		time.Hour,
		log,
	)
}

func TestAuthServiceRegisterLoginRoundtrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{
		Username:  "roundtrip",
		Email:     "Roundtrip@Example.com",
		Password:  "hunter2hunter2",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.User.Email != "roundtrip@example.com" {
		t.Fatalf("email not normalized: %q", reg.User.Email)
	}
	if reg.User.PasswordHash == "hunter2hunter2" {
		t.Fatal("password stored in plaintext")
	}
	if reg.Profile == nil || reg.Profile.FirstName != "Ada" {
		t.Fatalf("profile not created: %+v", reg.Profile)
	}
	if reg.Token == "" {
		t.Fatal("no token issued on register")
	}

	res, err := svc.Login(ctx, LoginInput{Email: "roundtrip@example.com", Password: "hunter2hunter2"}, LoginMeta{IPAddress: "127.0.0.1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.User.UserID != reg.User.UserID {
		t.Fatalf("Login returned wrong user: %s", res.User.UserID)
	}

	userID, role, err := svc.Authenticate(res.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if userID != reg.User.UserID || role != "user" {
		t.Fatalf("Authenticate claims: id=%s role=%q", userID, role)
	}
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	input := RegisterInput{Username: "dupe-a", Email: "dupe@example.com", Password: "hunter2hunter2"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	input.Username = "dupe-b"
	if _, err := svc.Register(ctx, input); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestAuthServiceLoginFailures(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Username: "failures",
		Email:    "failures@example.com",
		Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "failures@example.com", Password: "wrong-password"}, LoginMeta{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong password: want ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "hunter2hunter2"}, LoginMeta{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("unknown email: want ErrUnauthorized, got %v", err)
	}
}

func TestAuthServiceAuthenticateRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)

	if _, _, err := svc.Authenticate("not-a-token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if _, _, err := svc.Authenticate(""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("empty token: want ErrUnauthorized, got %v", err)
	}
}
