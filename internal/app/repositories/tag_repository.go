package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/logger"
)

// Tag vocabularies
const (
	VocabularySkill     = "skill"
	VocabularyInterest  = "interest"
	VocabularyExpertise = "expertise"
)

// TagRepository handles the skill, interest and expertise vocabularies.
// Names are unique case-insensitively.
type TagRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(q db.Querier) *TagRepository {
	return &TagRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository whose statements run on tx
func (r *TagRepository) WithTx(tx db.Querier) *TagRepository {
	return NewTagRepository(tx)
}

// FindID returns the id of the tag whose name matches case-insensitively
func (r *TagRepository) FindID(ctx context.Context, vocabulary, name string) (int64, bool, error) {
	sql, args, err := r.sb.Select("id").
		From(vocabulary).
		Where(squirrel.Expr("LOWER(name) = LOWER(?)", name)).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("failed to build tag lookup query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		logger.Error().Err(err).Str("vocabulary", vocabulary).Msg("Error looking up tag")
		return 0, false, fmt.Errorf("error looking up %s: %w", vocabulary, err)
	}
	return id, true, nil
}

// GetOrCreate returns the id of the tag named name, creating it when absent.
// The first spelling stored wins.
func (r *TagRepository) GetOrCreate(ctx context.Context, vocabulary, name string) (int64, error) {
	id, found, err := r.FindID(ctx, vocabulary, name)
	if err != nil {
		return 0, err
	}
	if found {
		return id, nil
	}

	sql, args, err := r.sb.Insert(vocabulary).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT ((LOWER(name))) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build tag insert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.Error().Err(err).Str("vocabulary", vocabulary).Msg("Error inserting tag")
			return 0, fmt.Errorf("error inserting %s: %w", vocabulary, err)
		}
		// A concurrent request created the same name first
		id, found, err = r.FindID(ctx, vocabulary, name)
		if err != nil {
			return 0, err
		}
		if !found {
			return 0, fmt.Errorf("%s %q vanished after insert conflict", vocabulary, name)
		}
	}

	logger.Debug().Str("vocabulary", vocabulary).Int64("id", id).Msg("Tag resolved")
	return id, nil
}
