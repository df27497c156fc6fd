package migration

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// setupPostgresTestDB opens the database named by DAILYME_TEST_POSTGRES_URL,
// e.g. "postgres://user@localhost:5432/dailyme_test?sslmode=disable".
func setupPostgresTestDB(t *testing.T) *sql.DB {
	t.Helper()
	connStr := os.Getenv("DAILYME_TEST_POSTGRES_URL")
	if connStr == "" {
		t.Skip("DAILYME_TEST_POSTGRES_URL not set, skipping PostgreSQL integration test")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("failed to open postgres database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping postgres database: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DROP TABLE IF EXISTS schema_version")
		db.Exec("DROP TABLE IF EXISTS test_notes")
		db.Exec("DROP TABLE IF EXISTS test_moods")
		db.Close()
	})
	return db
}

func TestPostgresSetVersion(t *testing.T) {
	db := setupPostgresTestDB(t)

	runner, err := NewRunner(db, os.DirFS(setupTestMigrations(t, map[string]string{
		"001_init.sql": "CREATE TABLE test_notes (id SERIAL PRIMARY KEY);",
	})), DriverPostgres)
	if err != nil {
		t.Fatalf("failed to create migration runner: %v", err)
	}

	for _, v := range []int{1, 2} {
		if err := runner.SetVersion(v); err != nil {
			t.Fatalf("SetVersion(%d) failed: %v", v, err)
		}
		got, err := runner.GetCurrentVersion()
		if err != nil {
			t.Fatalf("GetCurrentVersion failed: %v", err)
		}
		if got != v {
			t.Errorf("expected version %d, got %d", v, got)
		}
	}
}

func TestPostgresApplyMigrations(t *testing.T) {
	db := setupPostgresTestDB(t)

	runner, err := NewRunner(db, os.DirFS(setupTestMigrations(t, map[string]string{
		"001_init.sql":  `CREATE TABLE test_notes (id SERIAL PRIMARY KEY, body TEXT NOT NULL);`,
		"002_moods.sql": `CREATE TABLE test_moods (day TEXT PRIMARY KEY, mood TEXT NOT NULL);`,
	})), DriverPostgres)
	if err != nil {
		t.Fatalf("failed to create migration runner: %v", err)
	}

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 migrations applied, got %d", count)
	}

	for _, table := range []string{"test_notes", "test_moods"} {
		var exists bool
		if err := db.QueryRow("SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = $1)", table).Scan(&exists); err != nil {
			t.Fatalf("failed to check %s table: %v", table, err)
		}
		if !exists {
			t.Errorf("%s table was not created", table)
		}
	}

	count, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations (2nd) failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 migrations on second run, got %d", count)
	}
}
