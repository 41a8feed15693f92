// Package ledger records generated file sets in a per-project SQLite
// database so destroy can remove exactly what generate produced, even when
// naming conventions or defaults have changed since.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// FileName is the ledger database file inside the .lattice directory.
const FileName = "ledger.db"

// ErrNotFound indicates no record exists for the requested target.
var ErrNotFound = errors.New("no ledger record for target")

// Ledger is the handle to a project's artifact ledger.
type Ledger struct {
	db *sql.DB
}

// Record is one generate run: the target identity plus the exact
// project-relative file paths it produced.
type Record struct {
	Kind      string
	Name      string
	RoutePath string
	Files     []string
	CreatedAt time.Time
}

// Open opens or creates the ledger database under latticeDir.
func Open(latticeDir string) (*Ledger, error) {
	if err := os.MkdirAll(latticeDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", latticeDir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(latticeDir, FileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) initialize() error {
	schema := `
CREATE TABLE IF NOT EXISTS artifacts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL,
	name TEXT NOT NULL,
	route_path TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	UNIQUE(kind, name)
);

CREATE TABLE IF NOT EXISTS artifact_files (
	artifact_id INTEGER NOT NULL,
	path TEXT NOT NULL,
	UNIQUE(artifact_id, path)
);
`
	if _, err := l.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize ledger schema: %w", err)
	}
	return nil
}

// Put stores a record, replacing any previous record for the same target.
func (l *Ledger) Put(rec Record) error {
	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteTarget(tx, rec.Kind, rec.Name); err != nil {
		return err
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := tx.Exec(
		"INSERT INTO artifacts (kind, name, route_path, created_at) VALUES (?, ?, ?, ?)",
		rec.Kind, rec.Name, rec.RoutePath, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert artifact: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read artifact id: %w", err)
	}

	for _, path := range rec.Files {
		if _, err := tx.Exec(
			"INSERT INTO artifact_files (artifact_id, path) VALUES (?, ?)", id, path,
		); err != nil {
			return fmt.Errorf("failed to insert file %s: %w", path, err)
		}
	}

	return tx.Commit()
}

// Get returns the record for a target, or ErrNotFound.
func (l *Ledger) Get(kind, name string) (*Record, error) {
	row := l.db.QueryRow(
		"SELECT id, route_path, created_at FROM artifacts WHERE kind = ? AND name = ?",
		kind, name,
	)

	var id int64
	var routePath, createdAt string
	if err := row.Scan(&id, &routePath, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query artifact: %w", err)
	}

	rec := &Record{Kind: kind, Name: name, RoutePath: routePath}
	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	rows, err := l.db.Query(
		"SELECT path FROM artifact_files WHERE artifact_id = ? ORDER BY path", id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		rec.Files = append(rec.Files, path)
	}
	return rec, rows.Err()
}

// Delete removes the record for a target. Deleting a missing record is a no-op.
func (l *Ledger) Delete(kind, name string) error {
	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteTarget(tx, kind, name); err != nil {
		return err
	}
	return tx.Commit()
}

func deleteTarget(tx *sql.Tx, kind, name string) error {
	if _, err := tx.Exec(
		"DELETE FROM artifact_files WHERE artifact_id IN (SELECT id FROM artifacts WHERE kind = ? AND name = ?)",
		kind, name,
	); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	if _, err := tx.Exec(
		"DELETE FROM artifacts WHERE kind = ? AND name = ?", kind, name,
	); err != nil {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}
	return nil
}

// List returns all records ordered by kind then name.
func (l *Ledger) List() ([]Record, error) {
	rows, err := l.db.Query(
		"SELECT kind, name, route_path, created_at FROM artifacts ORDER BY kind, name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt string
		if err := rows.Scan(&rec.Kind, &rec.Name, &rec.RoutePath, &createdAt); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		full, err := l.Get(records[i].Kind, records[i].Name)
		if err != nil {
			return nil, err
		}
		records[i].Files = full.Files
	}
	return records, nil
}
