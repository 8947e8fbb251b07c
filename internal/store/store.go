// Package store persists the invocation history in a local SQLite
// database: every executed command line is recorded with its outcome so
// past runs can be listed and re-imported.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/cliform-tools/cli/internal/store/migrations"
)

// Store wraps a SQLite database connection for the invocation history.
type Store struct {
	db   *sql.DB
	path string
}

// New creates a new Store with the given database path.
// Runs migrations automatically.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, path: ""}
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CloseDB closes a database connection and logs any errors.
// Intended for use in defer statements where errors would otherwise be ignored.
func CloseDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "store: close database: %v\n", err)
	}
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record adds an invocation to the history and returns its ID. A fresh
// run ID is assigned when the invocation carries none.
func (s *Store) Record(inv Invocation) (int64, error) {
	if inv.RunID == "" {
		inv.RunID = uuid.NewString()
	}
	result, err := s.db.Exec(
		`INSERT INTO invocations
		 (run_id, command_path, cmdline, started_at, outcome_id)
		 VALUES (?, ?, ?, ?, ?)`,
		inv.RunID,
		inv.CommandPath,
		inv.Cmdline,
		inv.StartedAt.Format(time.RFC3339),
		int(inv.Outcome),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Filter narrows a history listing. Zero values mean "no constraint".
type Filter struct {
	CommandPath string
	Outcome     *Outcome
	Since       *time.Time
	Until       *time.Time
	Limit       int
}

// List returns invocations matching the filter, most recent first.
func (s *Store) List(filter Filter) ([]Invocation, error) {
	base := `
		SELECT
			id,
			run_id,
			command_path,
			cmdline,
			started_at,
			outcome_id
		FROM invocations
	`

	var (
		clauses []string
		args    []any
	)

	if filter.CommandPath != "" {
		clauses = append(clauses, "command_path = ?")
		args = append(args, filter.CommandPath)
	}

	if filter.Outcome != nil {
		clauses = append(clauses, "outcome_id = ?")
		args = append(args, int(*filter.Outcome))
	}

	if filter.Since != nil {
		clauses = append(clauses, "started_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339))
	}

	if filter.Until != nil {
		clauses = append(clauses, "started_at <= ?")
		args = append(args, filter.Until.Format(time.RFC3339))
	}

	query := base

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY started_at DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invocation

	for rows.Next() {
		inv, err := scanInvocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}

	return out, rows.Err()
}

// Last returns the most recent invocation for a command path, or nil
// when the history has none.
func (s *Store) Last(commandPath string) (*Invocation, error) {
	all, err := s.List(Filter{CommandPath: commandPath, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

// Prune keeps only the newest n invocations.
func (s *Store) Prune(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("prune: negative keep count %d", n)
	}
	result, err := s.db.Exec(
		`DELETE FROM invocations
		 WHERE id NOT IN (SELECT id FROM invocations ORDER BY id DESC LIMIT ?)`,
		n,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// scanInvocation scans a single row into an Invocation.
func scanInvocation(rows *sql.Rows) (Invocation, error) {
	var (
		inv       Invocation
		ts        string
		outcomeID int
	)

	if err := rows.Scan(
		&inv.ID,
		&inv.RunID,
		&inv.CommandPath,
		&inv.Cmdline,
		&ts,
		&outcomeID,
	); err != nil {
		return Invocation{}, err
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return Invocation{}, err
	}

	inv.StartedAt = t
	inv.Outcome = Outcome(outcomeID)

	return inv, nil
}
