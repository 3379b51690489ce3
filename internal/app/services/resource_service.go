package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/alumnet/internal/app/auth"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/session"
	"github.com/yigit/alumnet/internal/pkg/validation"
)

// Resource kinds
const (
	KindEducation = "education"
	KindCareer    = "career"
	KindSkill     = "skill"
	KindInterest  = "interest"
	KindExpertise = "expertise"
)

var (
	errUnknownKind      = apperrors.NewResourceNotFoundError("unknown profile resource")
	errCareerAlumniOnly = apperrors.NewForbiddenError("only alumni can add career records")
	errExpertiseAlumni  = apperrors.NewForbiddenError("only alumni can add expertise")
)

// tagPayload is implemented by requests that name a vocabulary tag
type tagPayload interface {
	TagName() string
}

// insertFunc stores a direct resource owned by ownerID and returns its id
type insertFunc func(ctx context.Context, repo *repositories.OwnedResourceRepository, ownerID int64, payload interface{}) (int64, error)

// ResourceDefinition describes one kind of owned profile resource.
// Tag kinds set Vocabulary; direct kinds set Insert.
type ResourceDefinition struct {
	Kind string
	repositories.OwnedTable
	Vocabulary      string
	RoleAllowed     appauth.RolePredicate
	RoleDenied      error
	ConflictMessage string
	NewPayload      func() interface{}
	Insert          insertFunc
}

// IsTag reports whether the resource associates a vocabulary tag
func (d ResourceDefinition) IsTag() bool {
	return d.Vocabulary != ""
}

// DefaultResourceDefinitions returns the registry of profile resources
func DefaultResourceDefinitions() []ResourceDefinition {
	return []ResourceDefinition{
		{
			Kind:        KindEducation,
			OwnedTable:  repositories.OwnedTable{Table: "education", OwnerColumn: "person_id", KeyColumn: "id"},
			RoleAllowed: appauth.AnyRole,
			NewPayload:  func() interface{} { return &dto.EducationRequest{} },
			Insert:      insertEducation,
		},
		{
			Kind:        KindCareer,
			OwnedTable:  repositories.OwnedTable{Table: "career", OwnerColumn: "alumni_id", KeyColumn: "id"},
			RoleAllowed: appauth.AlumniOnly,
			RoleDenied:  errCareerAlumniOnly,
			NewPayload:  func() interface{} { return &dto.CareerRequest{} },
			Insert:      insertCareer,
		},
		{
			Kind:            KindSkill,
			OwnedTable:      repositories.OwnedTable{Table: "person_skill", OwnerColumn: "person_id", KeyColumn: "skill_id", Association: true},
			Vocabulary:      repositories.VocabularySkill,
			RoleAllowed:     appauth.AnyRole,
			ConflictMessage: "you already have this skill",
			NewPayload:      func() interface{} { return &dto.SkillRequest{} },
		},
		{
			Kind:            KindInterest,
			OwnedTable:      repositories.OwnedTable{Table: "person_interest", OwnerColumn: "person_id", KeyColumn: "interest_id", Association: true},
			Vocabulary:      repositories.VocabularyInterest,
			RoleAllowed:     appauth.AnyRole,
			ConflictMessage: "you already have this interest",
			NewPayload:      func() interface{} { return &dto.InterestRequest{} },
		},
		{
			Kind:            KindExpertise,
			OwnedTable:      repositories.OwnedTable{Table: "alumni_expertise", OwnerColumn: "alumni_id", KeyColumn: "expertise_id", Association: true},
			Vocabulary:      repositories.VocabularyExpertise,
			RoleAllowed:     appauth.AlumniOnly,
			RoleDenied:      errExpertiseAlumni,
			ConflictMessage: "you already have this expertise",
			NewPayload:      func() interface{} { return &dto.ExpertiseRequest{} },
		},
	}
}

func insertEducation(ctx context.Context, repo *repositories.OwnedResourceRepository, ownerID int64, payload interface{}) (int64, error) {
	req := payload.(*dto.EducationRequest)
	return repo.InsertEducation(ctx, models.EducationRecord{
		PersonID:     ownerID,
		ProgrammeID:  req.ProgrammeID,
		StudyLevelID: req.StudyLevelID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
}

func insertCareer(ctx context.Context, repo *repositories.OwnedResourceRepository, ownerID int64, payload interface{}) (int64, error) {
	req := payload.(*dto.CareerRequest)
	return repo.InsertCareer(ctx, models.CareerRecord{
		AlumniID:        ownerID,
		JobTitle:        req.JobTitle,
		CompanyName:     req.CompanyName,
		City:            req.City,
		WorkCountryCode: req.WorkCountryCode,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		JobDescription:  req.JobDescription,
	})
}

// ResourceService adds and deletes owned profile resources.
// Every kind goes through the same role, validation and ownership checks.
type ResourceService struct {
	pool        db.Pool
	ownedRepo   *repositories.OwnedResourceRepository
	tagRepo     *repositories.TagRepository
	definitions map[string]ResourceDefinition
	logger      zerolog.Logger
}

// NewResourceService creates a new ResourceService over the given definitions
func NewResourceService(pool db.Pool, definitions []ResourceDefinition, logger zerolog.Logger) *ResourceService {
	byKind := make(map[string]ResourceDefinition, len(definitions))
	for _, d := range definitions {
		byKind[d.Kind] = d
	}
	repos := repositories.NewRepositories(pool)
	return &ResourceService{
		pool:        pool,
		ownedRepo:   repos.OwnedRepository,
		tagRepo:     repos.TagRepository,
		definitions: byKind,
		logger:      logger,
	}
}

// Definition looks up the definition of a resource kind
func (s *ResourceService) Definition(kind string) (ResourceDefinition, error) {
	d, ok := s.definitions[kind]
	if !ok {
		return ResourceDefinition{}, errUnknownKind
	}
	return d, nil
}

func (s *ResourceService) authorize(sess session.Session, d ResourceDefinition) error {
	denied := d.RoleDenied
	if denied == nil {
		denied = apperrors.ErrAlumniOnly
	}
	return appauth.RequireRole(sess, d.RoleAllowed, denied)
}

// Add stores a new resource of kind for the session person.
// decode fills the kind's payload; it only runs once the role is allowed.
// The id of the new row, or of the tag for tag kinds, is returned.
func (s *ResourceService) Add(ctx context.Context, sess session.Session, kind string, decode func(payload interface{}) error) (int64, error) {
	d, err := s.Definition(kind)
	if err != nil {
		return 0, err
	}

	if err := s.authorize(sess, d); err != nil {
		return 0, err
	}

	payload := d.NewPayload()
	if decode != nil {
		if err := decode(payload); err != nil {
			return 0, apperrors.NewValidationError("invalid request body")
		}
	}
	if err := validation.Struct(payload); err != nil {
		return 0, err
	}

	var id int64
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		owned := s.ownedRepo.WithTx(tx)

		if !d.IsTag() {
			newID, err := d.Insert(ctx, owned, sess.PersonID(), payload)
			if err != nil {
				return err
			}
			id = newID
			return nil
		}

		tp, ok := payload.(tagPayload)
		if !ok {
			return fmt.Errorf("payload for %s does not name a tag", d.Kind)
		}
		tagID, err := s.tagRepo.WithTx(tx).GetOrCreate(ctx, d.Vocabulary, tp.TagName())
		if err != nil {
			return err
		}
		if err := owned.InsertAssociation(ctx, d.OwnedTable, sess.PersonID(), tagID, d.ConflictMessage); err != nil {
			return err
		}
		id = tagID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("kind", d.Kind).Int64("personID", sess.PersonID()).Int64("id", id).Msg("Profile resource added")
	return id, nil
}

// Delete removes a resource of kind when the session person owns it.
// A missing row and a row owned by someone else are both reported as forbidden.
func (s *ResourceService) Delete(ctx context.Context, sess session.Session, kind string, key int64) error {
	d, err := s.Definition(kind)
	if err != nil {
		return err
	}

	if err := s.authorize(sess, d); err != nil {
		return err
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		owned := s.ownedRepo.WithTx(tx)
		if err := appauth.RequireOwnership(ctx, owned, d.OwnedTable, key, sess); err != nil {
			return err
		}
		if err := owned.DeleteOwned(ctx, d.OwnedTable, key, sess.PersonID()); err != nil {
			if errors.Is(err, repositories.ErrOwnedRowNotFound) {
				return apperrors.ErrNotOwner
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("kind", d.Kind).Int64("personID", sess.PersonID()).Int64("key", key).Msg("Profile resource deleted")
	return nil
}
