package person

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/logger"
)

// AlumniRepository handles the 'alumni' subtype table
type AlumniRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(q db.Querier) *AlumniRepository {
	return &AlumniRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateAlumni marks a person as an alumni
func (r *AlumniRepository) CreateAlumni(ctx context.Context, personID int64) error {
	sql, args, err := r.sb.Insert("alumni").
		Columns("person_id").
		Values(personID).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create alumni SQL")
		return fmt.Errorf("failed to build create alumni query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("personID", personID).Msg("Error executing create alumni query")
		return fmt.Errorf("error creating alumni: %w", err)
	}

	return nil
}

// IsAlumni reports whether an alumni row exists for the person
func (r *AlumniRepository) IsAlumni(ctx context.Context, personID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("alumni").
		Where(squirrel.Eq{"person_id": personID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build alumni lookup query: %w", err)
	}

	var one int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Int64("personID", personID).Msg("Error looking up alumni row")
		return false, fmt.Errorf("error checking alumni: %w", err)
	}

	return true, nil
}
