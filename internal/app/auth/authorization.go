package auth

import (
	"context"
	"errors"

	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/logger"
	"github.com/yigit/alumnet/internal/pkg/session"
)

// RolePredicate decides whether a role may manage a kind of resource
type RolePredicate func(role session.Role) bool

// AnyRole allows every known role
func AnyRole(role session.Role) bool { return role.Valid() }

// AlumniOnly allows alumni sessions only
func AlumniOnly(role session.Role) bool { return role == session.RoleAlumni }

// OwnerLocker reads and locks the owner of a row inside the current transaction
type OwnerLocker interface {
	LockOwner(ctx context.Context, t repositories.OwnedTable, key, ownerID int64) (int64, error)
}

// RequireRole returns denied when the session role does not satisfy allowed
func RequireRole(sess session.Session, allowed RolePredicate, denied error) error {
	if allowed == nil || allowed(sess.Role()) {
		return nil
	}
	logger.Warn().Int64("personID", sess.PersonID()).Str("role", string(sess.Role())).Msg("Role not allowed for resource")
	return denied
}

// RequireOwnership locks the row identified by key and checks that the
// session person owns it. A missing row and a row owned by someone else
// produce the same error.
func RequireOwnership(ctx context.Context, locker OwnerLocker, t repositories.OwnedTable, key int64, sess session.Session) error {
	owner, err := locker.LockOwner(ctx, t, key, sess.PersonID())
	if err != nil {
		if errors.Is(err, repositories.ErrOwnedRowNotFound) {
			return apperrors.ErrNotOwner
		}
		return err
	}

	if owner != sess.PersonID() {
		logger.Warn().Int64("personID", sess.PersonID()).Str("table", t.Table).Int64("key", key).Msg("Ownership check failed")
		return apperrors.ErrNotOwner
	}

	return nil
}
