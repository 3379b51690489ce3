package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/app/repositories/person"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/auth"
	"github.com/yigit/alumnet/internal/pkg/session"
	"github.com/yigit/alumnet/internal/pkg/validation"
)

// AuthService handles registration, login and logout
type AuthService struct {
	pool       db.Pool
	personRepo *repositories.PersonRepository
	sessions   session.Store
	hashCost   int
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(pool db.Pool, sessions session.Store, logger zerolog.Logger) *AuthService {
	return &AuthService{
		pool:       pool,
		personRepo: repositories.NewPersonRepository(pool),
		sessions:   sessions,
		hashCost:   auth.BcryptCost,
		logger:     logger,
	}
}

// Register creates a person and its role subtype row in one transaction
// and returns the new person id
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	if err := validation.Struct(req); err != nil {
		return 0, err
	}

	hash, err := auth.HashPasswordWithCost(req.Password, s.hashCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	var personID int64
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.personRepo.WithTx(tx)

		id, err := repo.CreatePerson(ctx, req.Username, req.Email, hash)
		if err != nil {
			return err
		}

		if session.Role(req.Role) == session.RoleAlumni {
			err = repo.CreateAlumni(ctx, id)
		} else {
			err = repo.CreateStudent(ctx, id)
		}
		if err != nil {
			return err
		}

		personID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("personID", personID).Str("role", req.Role).Msg("Person registered")
	return personID, nil
}

// Login checks credentials and opens a server-side session.
// Unknown identifiers and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (session.Session, error) {
	if err := validation.Struct(req); err != nil {
		return session.Session{}, apperrors.NewValidationError("username/email and password are required")
	}

	creds, err := s.personRepo.GetCredentials(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, person.ErrPersonNotFound) {
			auth.SimulatePasswordCheck(req.Password)
			s.logger.Info().Msg("Login attempt with unknown identifier")
			return session.Session{}, apperrors.ErrInvalidCredentials
		}
		return session.Session{}, err
	}

	if !auth.CheckPassword(creds.PasswordHash, req.Password) {
		s.logger.Info().Int64("personID", creds.PersonID).Msg("Login attempt with wrong password")
		return session.Session{}, apperrors.ErrInvalidCredentials
	}

	isAlumni, err := s.personRepo.IsAlumni(ctx, creds.PersonID)
	if err != nil {
		return session.Session{}, err
	}
	role := session.RoleStudent
	if isAlumni {
		role = session.RoleAlumni
	}

	sess, err := s.sessions.Create(ctx, creds.PersonID, role)
	if err != nil {
		s.logger.Error().Err(err).Int64("personID", creds.PersonID).Msg("Failed to create session")
		return session.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info().Int64("personID", creds.PersonID).Str("role", string(role)).Msg("Person logged in")
	return sess, nil
}

// Authenticate resolves a session id into the logged-in session
func (s *AuthService) Authenticate(ctx context.Context, sessionID string) (session.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return session.Session{}, apperrors.ErrAuthenticationRequired
		}
		return session.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

// Logout discards the server-side session. Unknown ids are not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SessionTTL is how long a new session lives
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}
