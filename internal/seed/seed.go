package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/db"
)

// DefaultCountries are the countries available for home and work locations
var DefaultCountries = []models.Country{
	{Code: "TR", Name: "Turkey"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "DE", Name: "Germany"},
	{Code: "FR", Name: "France"},
	{Code: "NL", Name: "Netherlands"},
	{Code: "US", Name: "United States"},
	{Code: "CA", Name: "Canada"},
	{Code: "IN", Name: "India"},
	{Code: "CN", Name: "China"},
	{Code: "NG", Name: "Nigeria"},
}

// DefaultProgrammes are the programmes education records can reference
var DefaultProgrammes = []string{
	"Computer Science",
	"Software Engineering",
	"Electrical Engineering",
	"Mathematics",
	"Physics",
	"Business Administration",
}

// DefaultStudyLevels are inserted in order so their ids follow seniority
var DefaultStudyLevels = []string{
	"Foundation",
	"Bachelor",
	"Master",
	"Doctorate",
}

// CreateDefaultData inserts the reference vocabularies if they don't exist.
// It keeps going after a failure and returns every error it collected.
func CreateDefaultData(ctx context.Context, q db.Querier, lgr zerolog.Logger) error {
	vocabRepo := repositories.NewVocabularyRepository(q)

	lgr.Info().Msg("Checking/Creating default data (countries, programmes, study levels)...")
	var finalErr error

	for _, c := range DefaultCountries {
		if err := vocabRepo.EnsureCountry(ctx, c); err != nil {
			lgr.Error().Err(err).Str("code", c.Code).Msg("Error creating country")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, name := range DefaultProgrammes {
		if err := vocabRepo.EnsureProgramme(ctx, name); err != nil {
			lgr.Error().Err(err).Str("programme", name).Msg("Error creating programme")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, name := range DefaultStudyLevels {
		if err := vocabRepo.EnsureStudyLevel(ctx, name); err != nil {
			lgr.Error().Err(err).Str("studyLevel", name).Msg("Error creating study level")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
