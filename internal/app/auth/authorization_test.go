package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/session"
)

type stubLocker struct {
	owner int64
	err   error
}

func (s stubLocker) LockOwner(ctx context.Context, t repositories.OwnedTable, key, ownerID int64) (int64, error) {
	return s.owner, s.err
}

var careerTable = repositories.OwnedTable{Table: "career", OwnerColumn: "alumni_id", KeyColumn: "id"}

func TestRequireRole(t *testing.T) {
	student := session.New("s1", 1, session.RoleStudent)
	alumni := session.New("s2", 2, session.RoleAlumni)

	if err := RequireRole(student, AlumniOnly, apperrors.ErrAlumniOnly); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for student, got %v", err)
	}
	if err := RequireRole(alumni, AlumniOnly, apperrors.ErrAlumniOnly); err != nil {
		t.Fatalf("expected alumni to pass, got %v", err)
	}
	if err := RequireRole(student, AnyRole, apperrors.ErrAlumniOnly); err != nil {
		t.Fatalf("expected any role to pass, got %v", err)
	}
}

func TestRequireOwnershipConflatesMissingAndForeignRows(t *testing.T) {
	sess := session.New("s", 7, session.RoleAlumni)
	ctx := context.Background()

	missing := RequireOwnership(ctx, stubLocker{err: repositories.ErrOwnedRowNotFound}, careerTable, 10, sess)
	foreign := RequireOwnership(ctx, stubLocker{owner: 8}, careerTable, 10, sess)

	if !errors.Is(missing, apperrors.ErrPermissionDenied) || !errors.Is(foreign, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v and %v", missing, foreign)
	}
	if missing.Error() != foreign.Error() {
		t.Fatalf("missing and foreign rows must be indistinguishable: %q vs %q", missing, foreign)
	}

	if err := RequireOwnership(ctx, stubLocker{owner: 7}, careerTable, 10, sess); err != nil {
		t.Fatalf("expected owner to pass, got %v", err)
	}

	boom := errors.New("db down")
	if err := RequireOwnership(ctx, stubLocker{err: boom}, careerTable, 10, sess); !errors.Is(err, boom) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}
