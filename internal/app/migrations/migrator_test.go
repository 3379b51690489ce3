package migrations

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
)

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatalf("write migration: %v", err)
	}
}

func TestMigrateFromDirectoryAppliesPendingFilesInOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	dir := t.TempDir()
	writeMigration(t, dir, "002_views.sql", "CREATE VIEW v AS SELECT 1")
	writeMigration(t, dir, "001_init.sql", "CREATE TABLE t (id INT)")
	writeMigration(t, dir, "README.md", "ignored")

	createTracking := regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")
	checkApplied := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)")

	// 001 is already recorded
	mock.ExpectExec(createTracking).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(checkApplied).WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	// 002 is applied and recorded in the same transaction
	mock.ExpectExec(createTracking).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(checkApplied).WithArgs("002").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE VIEW v AS SELECT 1")).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).WithArgs("002").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	m := NewMigrator(mock, zerolog.Nop())
	if err := m.MigrateFromDirectory(context.Background(), dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVersionOf(t *testing.T) {
	if v := versionOf("/srv/migrations/010_add_views.sql"); v != "010" {
		t.Fatalf("expected 010, got %s", v)
	}
}
