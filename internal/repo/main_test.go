package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/travel-planner/backend/internal/repo"
	"github.com/pkordes/travel-planner/backend/testutil"
)

// TestMain runs before any test in the repo_test package.
// It brings the test database schema up to date once so individual tests
// never need to think about schema state.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured; skip all tests in this package cleanly.
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	if err := repo.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("TestMain: ensure schema: %v", err)
	}

	os.Exit(m.Run())
}
