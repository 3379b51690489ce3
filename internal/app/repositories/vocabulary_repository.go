package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/logger"
)

// VocabularyRepository reads and seeds the reference tables used by the edit forms
type VocabularyRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewVocabularyRepository creates a new VocabularyRepository
func NewVocabularyRepository(q db.Querier) *VocabularyRepository {
	return &VocabularyRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListCountries returns all countries ordered by name
func (r *VocabularyRepository) ListCountries(ctx context.Context) ([]models.Country, error) {
	sql, args, err := r.sb.Select("code", "name").From("country").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build country list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying countries")
		return nil, fmt.Errorf("error listing countries: %w", err)
	}

	countries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Country, error) {
		var c models.Country
		err := row.Scan(&c.Code, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning countries: %w", err)
	}
	return countries, nil
}

// ListProgrammes returns all programmes ordered by name
func (r *VocabularyRepository) ListProgrammes(ctx context.Context) ([]models.Programme, error) {
	sql, args, err := r.sb.Select("id", "name").From("programme").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build programme list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying programmes")
		return nil, fmt.Errorf("error listing programmes: %w", err)
	}

	programmes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Programme, error) {
		var p models.Programme
		err := row.Scan(&p.ID, &p.Name)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning programmes: %w", err)
	}
	return programmes, nil
}

// ListStudyLevels returns all study levels ordered by id
func (r *VocabularyRepository) ListStudyLevels(ctx context.Context) ([]models.StudyLevel, error) {
	sql, args, err := r.sb.Select("id", "name").From("study_level").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build study level list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying study levels")
		return nil, fmt.Errorf("error listing study levels: %w", err)
	}

	levels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StudyLevel, error) {
		var l models.StudyLevel
		err := row.Scan(&l.ID, &l.Name)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning study levels: %w", err)
	}
	return levels, nil
}

// EnsureCountry inserts a country unless its code exists
func (r *VocabularyRepository) EnsureCountry(ctx context.Context, c models.Country) error {
	return r.ensure(ctx, r.sb.Insert("country").Columns("code", "name").Values(c.Code, c.Name).
		Suffix("ON CONFLICT (code) DO NOTHING"), "country")
}

// EnsureProgramme inserts a programme unless its name exists
func (r *VocabularyRepository) EnsureProgramme(ctx context.Context, name string) error {
	return r.ensure(ctx, r.sb.Insert("programme").Columns("name").Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING"), "programme")
}

// EnsureStudyLevel inserts a study level unless its name exists
func (r *VocabularyRepository) EnsureStudyLevel(ctx context.Context, name string) error {
	return r.ensure(ctx, r.sb.Insert("study_level").Columns("name").Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING"), "study_level")
}

func (r *VocabularyRepository) ensure(ctx context.Context, q squirrel.InsertBuilder, table string) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s seed query: %w", table, err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error seeding %s: %w", table, err)
	}
	return nil
}
