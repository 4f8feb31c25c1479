package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/lyrahhq/lyrah-backend/internal/repos/testutil"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "userrepo@example.com")

	got, err := repo.GetByID(ctx, tx, u.UserID)
	if err != nil || got == nil || got.Email != u.Email {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if missing, err := repo.GetByID(ctx, tx, uuid.New()); err != nil || missing != nil {
		t.Fatalf("GetByID for unknown id: err=%v got=%v", err, missing)
	}

	byEmail, err := repo.GetByEmail(ctx, tx, u.Email)
	if err != nil || byEmail == nil || byEmail.UserID != u.UserID {
		t.Fatalf("GetByEmail: err=%v got=%v", err, byEmail)
	}

	taken, err := repo.EmailExists(ctx, tx, u.Email)
	if err != nil || !taken {
		t.Fatalf("EmailExists: err=%v taken=%v", err, taken)
	}
	taken, err = repo.UsernameExists(ctx, tx, "nobody-here")
	if err != nil || taken {
		t.Fatalf("UsernameExists for unknown name: err=%v taken=%v", err, taken)
	}

	newName := "renamed"
	verified := true
	if err := repo.Update(ctx, tx, u.UserID, types.UserPatch{Username: &newName, IsVerified: &verified}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, u.UserID)
	if err != nil || got.Username != newName || !got.IsVerified {
		t.Fatalf("after Update: err=%v got=%+v", err, got)
	}

	if err := repo.RecordLogin(ctx, tx, u.UserID); err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}
	if err := repo.RecordLogin(ctx, tx, u.UserID); err != nil {
		t.Fatalf("RecordLogin again: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, u.UserID)
	if err != nil || got.LoginCount != 2 || got.LastLogin == nil {
		t.Fatalf("after RecordLogin: err=%v count=%d last=%v", err, got.LoginCount, got.LastLogin)
	}

	if err := repo.Deactivate(ctx, tx, u.UserID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, u.UserID)
	if err != nil || got == nil || got.IsActive {
		t.Fatalf("after Deactivate: err=%v got=%+v", err, got)
	}

	role, err := repo.RoleName(ctx, tx, 2)
	if err != nil || role != types.RoleUser {
		t.Fatalf("RoleName: err=%v role=%q", err, role)
	}
}
