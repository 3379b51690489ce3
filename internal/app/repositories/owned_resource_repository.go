package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/dberrors"
	"github.com/yigit/alumnet/internal/pkg/helpers"
	"github.com/yigit/alumnet/internal/pkg/logger"
)

// ErrOwnedRowNotFound is returned when no row matches an ownership lookup
var ErrOwnedRowNotFound = errors.New("owned row not found")

// OwnedTable names a table whose rows belong to one person.
// Table and column names come from a fixed registry, never from request input.
type OwnedTable struct {
	Table       string
	OwnerColumn string
	KeyColumn   string
	// Association tables are keyed by (owner, key), so lookups must include the owner
	Association bool
}

// OwnedResourceRepository runs the statements shared by every owned profile resource
type OwnedResourceRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewOwnedResourceRepository creates a new OwnedResourceRepository
func NewOwnedResourceRepository(q db.Querier) *OwnedResourceRepository {
	return &OwnedResourceRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository whose statements run on tx
func (r *OwnedResourceRepository) WithTx(tx db.Querier) *OwnedResourceRepository {
	return NewOwnedResourceRepository(tx)
}

func (r *OwnedResourceRepository) ownedPredicate(t OwnedTable, key, ownerID int64) squirrel.Sqlizer {
	if t.Association {
		return squirrel.Eq{t.KeyColumn: key, t.OwnerColumn: ownerID}
	}
	return squirrel.Eq{t.KeyColumn: key}
}

// LockOwner reads the owner of the row identified by key and locks it until the
// transaction ends. ErrOwnedRowNotFound is returned when no row matches.
func (r *OwnedResourceRepository) LockOwner(ctx context.Context, t OwnedTable, key, ownerID int64) (int64, error) {
	sql, args, err := r.sb.Select(t.OwnerColumn).
		From(t.Table).
		Where(r.ownedPredicate(t, key, ownerID)).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build owner lookup query: %w", err)
	}

	var owner int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrOwnedRowNotFound
		}
		logger.Error().Err(err).Str("table", t.Table).Int64("key", key).Msg("Error looking up row owner")
		return 0, fmt.Errorf("error looking up %s owner: %w", t.Table, err)
	}

	return owner, nil
}

// DeleteOwned deletes the row identified by key and owned by ownerID
func (r *OwnedResourceRepository) DeleteOwned(ctx context.Context, t OwnedTable, key, ownerID int64) error {
	sql, args, err := r.sb.Delete(t.Table).
		Where(squirrel.Eq{t.KeyColumn: key, t.OwnerColumn: ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", t.Table).Int64("key", key).Msg("Error executing delete query")
		return fmt.Errorf("error deleting from %s: %w", t.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOwnedRowNotFound
	}

	return nil
}

// InsertAssociation links a tag to its owner.
// A duplicate pair yields a conflict error carrying conflictMessage.
func (r *OwnedResourceRepository) InsertAssociation(ctx context.Context, t OwnedTable, ownerID, tagID int64, conflictMessage string) error {
	sql, args, err := r.sb.Insert(t.Table).
		Columns(t.OwnerColumn, t.KeyColumn).
		Values(ownerID, tagID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build association insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError(conflictMessage)
		}
		logger.Error().Err(err).Str("table", t.Table).Int64("ownerID", ownerID).Msg("Error inserting association")
		return fmt.Errorf("error inserting into %s: %w", t.Table, err)
	}

	return nil
}

// InsertEducation inserts an education record and returns its id
func (r *OwnedResourceRepository) InsertEducation(ctx context.Context, rec models.EducationRecord) (int64, error) {
	start, err := helpers.PgDate(rec.StartDate)
	if err != nil {
		return 0, apperrors.NewValidationError("start_date must be a date in YYYY-MM-DD format")
	}
	end, err := helpers.PgDatePtr(rec.EndDate)
	if err != nil {
		return 0, apperrors.NewValidationError("end_date must be a date in YYYY-MM-DD format")
	}

	sql, args, err := r.sb.Insert("education").
		Columns("person_id", "programme_id", "study_level_id", "start_date", "end_date").
		Values(rec.PersonID, rec.ProgrammeID, rec.StudyLevelID, start, end).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build education insert query: %w", err)
	}

	return r.insertReturningID(ctx, "education", sql, args, "this education record already exists", "unknown programme or study level")
}

// InsertCareer inserts a career record and returns its id
func (r *OwnedResourceRepository) InsertCareer(ctx context.Context, rec models.CareerRecord) (int64, error) {
	start, err := helpers.PgDate(rec.StartDate)
	if err != nil {
		return 0, apperrors.NewValidationError("start_date must be a date in YYYY-MM-DD format")
	}
	end, err := helpers.PgDatePtr(rec.EndDate)
	if err != nil {
		return 0, apperrors.NewValidationError("end_date must be a date in YYYY-MM-DD format")
	}

	sql, args, err := r.sb.Insert("career").
		Columns("alumni_id", "job_title", "company_name", "city", "work_country_code", "start_date", "end_date", "job_description").
		Values(rec.AlumniID, rec.JobTitle, rec.CompanyName,
			helpers.PgText(rec.City), helpers.PgText(rec.WorkCountryCode),
			start, end, helpers.PgText(rec.JobDescription)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build career insert query: %w", err)
	}

	return r.insertReturningID(ctx, "career", sql, args, "this career record already exists", "unknown work country")
}

func (r *OwnedResourceRepository) insertReturningID(ctx context.Context, table, sql string, args []interface{}, conflictMessage, fkMessage string) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return 0, apperrors.NewConflictError(conflictMessage)
		case dberrors.IsForeignKeyViolation(err):
			return 0, apperrors.NewValidationError(fkMessage)
		}
		logger.Error().Err(err).Str("table", table).Msg("Error executing insert query")
		return 0, fmt.Errorf("error inserting into %s: %w", table, err)
	}
	return id, nil
}
