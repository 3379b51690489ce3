package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/helpers"
	"github.com/yigit/alumnet/internal/pkg/logger"
)

// ErrProfileNotFound is returned when the profile view has no row for a person
var ErrProfileNotFound = errors.New("profile not found")

var profileColumns = []string{
	"person_id", "username", "email", "first_name", "last_name",
	"phone_number", "address", "home_country", "home_country_name",
	"education", "skills", "interests",
}

// ProfileRepository reads the aggregated profile views
type ProfileRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(q db.Querier) *ProfileRepository {
	return &ProfileRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetStudentProfile reads v_student_profile for a person
func (r *ProfileRepository) GetStudentProfile(ctx context.Context, personID int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns...).
		From("v_student_profile").
		Where(squirrel.Eq{"person_id": personID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student profile query: %w", err)
	}

	var row profileRow
	if err := r.db.QueryRow(ctx, sql, args...).Scan(row.targets()...); err != nil {
		return nil, r.scanError(err, personID)
	}

	return row.toModel(), nil
}

// GetAlumniProfile reads v_alumni_profile for a person
func (r *ProfileRepository) GetAlumniProfile(ctx context.Context, personID int64) (*models.Profile, error) {
	columns := append(append([]string{}, profileColumns...), "career", "expertise")
	sql, args, err := r.sb.Select(columns...).
		From("v_alumni_profile").
		Where(squirrel.Eq{"person_id": personID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build alumni profile query: %w", err)
	}

	var row profileRow
	var career, expertise interface{}
	targets := append(row.targets(), &career, &expertise)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(targets...); err != nil {
		return nil, r.scanError(err, personID)
	}

	profile := row.toModel()
	profile.Career = helpers.DecodeAggregate[models.CareerView](career)
	profile.Expertise = helpers.DecodeAggregate[models.TagView](expertise)
	return profile, nil
}

func (r *ProfileRepository) scanError(err error, personID int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProfileNotFound
	}
	logger.Error().Err(err).Int64("personID", personID).Msg("Error scanning profile row")
	return fmt.Errorf("error retrieving profile: %w", err)
}

// profileRow holds the raw columns shared by both views.
// Aggregated columns are scanned untyped and decoded leniently.
type profileRow struct {
	personID        int64
	username        string
	email           string
	firstName       string
	lastName        string
	phoneNumber     pgtype.Text
	address         pgtype.Text
	homeCountry     pgtype.Text
	homeCountryName pgtype.Text
	education       interface{}
	skills          interface{}
	interests       interface{}
}

func (p *profileRow) targets() []interface{} {
	return []interface{}{
		&p.personID, &p.username, &p.email, &p.firstName, &p.lastName,
		&p.phoneNumber, &p.address, &p.homeCountry, &p.homeCountryName,
		&p.education, &p.skills, &p.interests,
	}
}

func (p *profileRow) toModel() *models.Profile {
	return &models.Profile{
		PersonID:        p.personID,
		Username:        p.username,
		Email:           p.email,
		FirstName:       p.firstName,
		LastName:        p.lastName,
		PhoneNumber:     helpers.TextPtr(p.phoneNumber),
		Address:         helpers.TextPtr(p.address),
		HomeCountry:     helpers.TextPtr(p.homeCountry),
		HomeCountryName: helpers.TextPtr(p.homeCountryName),
		Education:       helpers.DecodeAggregate[models.EducationView](p.education),
		Skills:          helpers.DecodeAggregate[models.TagView](p.skills),
		Interests:       helpers.DecodeAggregate[models.TagView](p.interests),
	}
}
