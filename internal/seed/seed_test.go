package seed

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
)

func TestCreateDefaultData(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	for _, c := range DefaultCountries {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO country (code,name)")).
			WithArgs(c.Code, c.Name).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for _, name := range DefaultProgrammes {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO programme (name)")).
			WithArgs(name).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for _, name := range DefaultStudyLevels {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO study_level (name)")).
			WithArgs(name).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
	}

	if err := CreateDefaultData(context.Background(), mock, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDefaultData: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateDefaultDataCollectsErrors(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()
	mock.MatchExpectationsInOrder(false)

	boom := errors.New("boom")
	for range DefaultCountries {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO country")).WillReturnError(boom)
	}
	for range DefaultProgrammes {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO programme")).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for range DefaultStudyLevels {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO study_level")).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	err = CreateDefaultData(context.Background(), mock, zerolog.Nop())
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error to contain boom, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
