package person

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

// Common errors
var (
	ErrPersonNotFound = errors.New("person not found")
)

// Repository handles operations on the 'person' table
type Repository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewRepository creates a new Repository
func NewRepository(q db.Querier) *Repository {
	return &Repository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreatePerson inserts a person with empty names and returns its id.
// A duplicate username or email yields apperrors.ErrIdentityTaken.
func (r *Repository) CreatePerson(ctx context.Context, username, email, passwordHash string) (int64, error) {
	sql, args, err := r.sb.Insert("person").
		Columns("username", "email", "password_hash", "first_name", "last_name").
		Values(username, email, passwordHash, "", "").
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create person SQL")
		return 0, fmt.Errorf("failed to build create person query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Str("username", username).Msg("Attempted to register a taken username or email")
			return 0, apperrors.ErrIdentityTaken
		}
		logger.Error().Err(err).Str("username", username).Msg("Error executing create person query")
		return 0, fmt.Errorf("error creating person: %w", err)
	}

	return id, nil
}

// GetCredentials finds the password hash of the person whose username or email equals identifier
func (r *Repository) GetCredentials(ctx context.Context, identifier string) (*models.Credentials, error) {
	sql, args, err := r.sb.Select("id", "password_hash").
		From("person").
		Where(squirrel.Or{squirrel.Eq{"username": identifier}, squirrel.Eq{"email": identifier}}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get credentials SQL")
		return nil, fmt.Errorf("failed to build get credentials query: %w", err)
	}

	var creds models.Credentials
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&creds.PersonID, &creds.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPersonNotFound
		}
		logger.Error().Err(err).Msg("Error scanning credentials row")
		return nil, fmt.Errorf("error retrieving credentials: %w", err)
	}

	return &creds, nil
}

// UpdatePersonalInfo overwrites the personal fields of a person.
// Nil optional fields are stored as NULL.
func (r *Repository) UpdatePersonalInfo(ctx context.Context, personID int64, info models.PersonalInfo) error {
	sql, args, err := r.sb.Update("person").
		Set("first_name", info.FirstName).
		Set("last_name", info.LastName).
		Set("phone_number", helpers.PgText(info.PhoneNumber)).
		Set("address", helpers.PgText(info.Address)).
		Set("home_country", helpers.PgText(info.HomeCountry)).
		Where(squirrel.Eq{"id": personID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update personal info SQL")
		return fmt.Errorf("failed to build update personal info query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("unknown home country")
		}
		logger.Error().Err(err).Int64("personID", personID).Msg("Error executing update personal info query")
		return fmt.Errorf("error updating personal info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPersonNotFound
	}

	return nil
}
