package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/cliform-tools/cli/internal/store"
	"github.com/cliform-tools/cli/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		store.CloseDB(db)
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// SeedInvocations records a slice of invocations into the test database.
func SeedInvocations(t *testing.T, db *sql.DB, invocations []store.Invocation) {
	t.Helper()

	st := store.NewWithDB(db)
	for _, inv := range invocations {
		_, err := st.Record(inv)
		require.NoError(t, err, "failed to seed invocation: %+v", inv)
	}
}
