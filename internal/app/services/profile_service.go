package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/app/repositories/person"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/session"
	"github.com/yigit/alumnet/internal/pkg/validation"
)

var errInvalidMode = apperrors.NewValidationError("mode must be view or edit")

// ProfileService reads profiles and saves personal information
type ProfileService struct {
	pool           db.Pool
	profileRepo    *repositories.ProfileRepository
	vocabularyRepo *repositories.VocabularyRepository
	personRepo     *repositories.PersonRepository
	logger         zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(pool db.Pool, logger zerolog.Logger) *ProfileService {
	repos := repositories.NewRepositories(pool)
	return &ProfileService{
		pool:           pool,
		profileRepo:    repos.ProfileRepository,
		vocabularyRepo: repos.VocabularyRepository,
		personRepo:     repos.PersonRepository,
		logger:         logger,
	}
}

// GetProfile returns the profile of the session person.
// Edit mode adds the vocabularies the edit forms offer.
func (s *ProfileService) GetProfile(ctx context.Context, sess session.Session, mode string) (*dto.ProfileResponse, error) {
	if mode == "" {
		mode = dto.ProfileModeView
	}
	if mode != dto.ProfileModeView && mode != dto.ProfileModeEdit {
		return nil, errInvalidMode
	}

	var (
		profile *models.Profile
		err     error
	)
	if sess.IsAlumni() {
		profile, err = s.profileRepo.GetAlumniProfile(ctx, sess.PersonID())
	} else {
		profile, err = s.profileRepo.GetStudentProfile(ctx, sess.PersonID())
	}
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	profile.Role = string(sess.Role())

	resp := &dto.ProfileResponse{Mode: mode, Profile: profile}
	if mode == dto.ProfileModeView {
		return resp, nil
	}

	if resp.Countries, err = s.vocabularyRepo.ListCountries(ctx); err != nil {
		return nil, err
	}
	if resp.Programmes, err = s.vocabularyRepo.ListProgrammes(ctx); err != nil {
		return nil, err
	}
	if resp.StudyLevels, err = s.vocabularyRepo.ListStudyLevels(ctx); err != nil {
		return nil, err
	}

	return resp, nil
}

// SavePersonalInfo updates the personal fields of the session person
func (s *ProfileService) SavePersonalInfo(ctx context.Context, sess session.Session, req *dto.PersonalInfoRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.personRepo.WithTx(tx).UpdatePersonalInfo(ctx, sess.PersonID(), req.ToModel())
	})
	if err != nil {
		if errors.Is(err, person.ErrPersonNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return err
	}

	s.logger.Info().Int64("personID", sess.PersonID()).Msg("Personal info saved")
	return nil
}
