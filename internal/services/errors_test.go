package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassifyDBError(t *testing.T) {
	if got := classifyDBError(nil); got != nil {
		t.Fatalf("nil: %v", got)
	}
	if got := classifyDBError(gorm.ErrRecordNotFound); !errors.Is(got, ErrNotFound) {
		t.Fatalf("record not found: %v", got)
	}
	if got := classifyDBError(&pgconn.PgError{Code: "23505"}); !errors.Is(got, ErrConflict) {
		t.Fatalf("unique violation: %v", got)
	}
	if got := classifyDBError(&pgconn.PgError{Code: "23503"}); !errors.Is(got, ErrInvalidReference) {
		t.Fatalf("fk violation: %v", got)
	}
	if got := classifyDBError(&pgconn.PgError{Code: "23502"}); !errors.Is(got, ErrValidation) {
		t.Fatalf("not null violation: %v", got)
	}

	// Wrapped driver errors classify the same way.
	wrapped := fmt.Errorf("insert responses: %w", &pgconn.PgError{Code: "23503"})
	if got := classifyDBError(wrapped); !errors.Is(got, ErrInvalidReference) {
		t.Fatalf("wrapped fk violation: %v", got)
	}

	// Unknown errors pass through untouched.
	plain := errors.New("disk on fire")
	if got := classifyDBError(plain); got != plain {
		t.Fatalf("passthrough: %v", got)
	}
}
