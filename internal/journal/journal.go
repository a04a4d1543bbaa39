// Package journal persists an audit log of executed commands in
// SQLite. Every command the host applies lands here, failures
// included, so an editing session can be reconstructed after the fact.
package journal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/sqlutil"
)

// CurrentVersion is the journal schema version. Bump it when the
// entries table changes shape; OpenWithRebuild discards incompatible
// files.
const CurrentVersion = 1

// ErrEntryNotFound indicates the requested entry id is not journaled.
var ErrEntryNotFound = errors.New("journal entry not found")

// Journal is the SQLite journal handle.
type Journal struct {
	db *sql.DB
}

// Entry is one executed command.
type Entry struct {
	ID      string       // ULID; lexicographic order is execution order
	At      time.Time    // execution time (UTC)
	Command command.Type // command tag
	Payload string       // payload JSON as received
	Success bool
	Error   string // rejection message when Success is false
	Address string // resulting node address, when the command produced one
}

// Open opens or creates the journal at path, creating parent
// directories as needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

// OpenWithRebuild opens the journal, discarding it first if its schema
// version does not match. Returns (journal, wasRebuilt, error).
func OpenWithRebuild(path string) (*Journal, bool, error) {
	if _, err := os.Stat(path); err == nil {
		db, err := sql.Open("sqlite", path)
		if err == nil {
			compatible := isVersionCompatible(db)
			db.Close()
			if !compatible {
				if err := removeJournalFiles(path); err != nil {
					return nil, false, err
				}
				j, err := Open(path)
				return j, true, err
			}
		}
	}

	j, err := Open(path)
	return j, false, err
}

// OpenInMemory opens an in-memory journal (for testing).
func OpenInMemory() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}

	j := &Journal{db: db}
	if err := j.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

// Close closes the journal.
func (j *Journal) Close() error {
	return j.db.Close()
}

func isVersionCompatible(db *sql.DB) bool {
	var version string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&version)
	if err != nil {
		return false
	}
	return version == fmt.Sprintf("%d", CurrentVersion)
}

func removeJournalFiles(path string) error {
	paths := []string{path, path + "-wal", path + "-shm"}
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return nil
}

func (j *Journal) initialize() error {
	schema := `
		-- WAL keeps readers (journal list) off the host's write path
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,           -- ULID; sorts by execution time
			executed_at INTEGER NOT NULL,  -- Unix seconds
			command TEXT NOT NULL,         -- command tag
			payload TEXT NOT NULL,         -- payload JSON as received
			success INTEGER NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_entries_command ON entries(command);
		CREATE INDEX IF NOT EXISTS idx_entries_executed_at ON entries(executed_at);
	`

	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	_, err := j.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('version', ?)`,
		fmt.Sprintf("%d", CurrentVersion))
	if err != nil {
		return fmt.Errorf("failed to set journal version: %w", err)
	}
	return nil
}

// Record journals one applied command and its response. It satisfies
// the host's Recorder interface.
func (j *Journal) Record(c command.Command, r command.Response) error {
	payload, err := json.Marshal(c.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	addr, _ := r.Address()
	e := Entry{
		ID:      ulid.Make().String(),
		At:      time.Now().UTC(),
		Command: c.Type,
		Payload: string(payload),
		Success: r.Success,
		Error:   r.Error,
		Address: addr,
	}
	return j.append(e)
}

func (j *Journal) append(e Entry) error {
	_, err := j.db.Exec(`
		INSERT INTO entries (id, executed_at, command, payload, success, error, address)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.At.Unix(), string(e.Command), e.Payload, e.Success, e.Error, e.Address)
	if err != nil {
		return fmt.Errorf("failed to journal %s: %w", e.Command, err)
	}
	return nil
}

// Filter narrows List results. The zero value matches everything.
type Filter struct {
	Tags       []string  // command tags; empty matches all
	Since      time.Time // entries executed at or after this time; zero matches all
	FailedOnly bool      // only entries whose command was rejected
	Limit      int       // <= 0 returns everything
}

// List returns entries newest first.
func (j *Journal) List(f Filter) ([]Entry, error) {
	query := `
		SELECT id, executed_at, command, payload, success, error, address
		FROM entries
	`
	var where []string
	var args []any
	if len(f.Tags) > 0 {
		placeholders, tagArgs := sqlutil.InClauseArgs(f.Tags)
		where = append(where, fmt.Sprintf("command IN (%s)", placeholders))
		args = append(args, tagArgs...)
	}
	if !f.Since.IsZero() {
		where = append(where, "executed_at >= ?")
		args = append(args, f.Since.Unix())
	}
	if f.FailedOnly {
		where = append(where, "success = 0")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id DESC LIMIT ?`
	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}
	args = append(args, limit)

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (Entry, error) {
		return scanEntry(rows.Scan)
	})
}

// Get returns one entry by id.
func (j *Journal) Get(id string) (Entry, error) {
	row := j.db.QueryRow(`
		SELECT id, executed_at, command, payload, success, error, address
		FROM entries
		WHERE id = ?`, id)

	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrEntryNotFound
	}
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

func scanEntry(scan func(...any) error) (Entry, error) {
	var e Entry
	var at int64
	var tag string
	if err := scan(&e.ID, &at, &tag, &e.Payload, &e.Success, &e.Error, &e.Address); err != nil {
		return Entry{}, err
	}
	e.At = time.Unix(at, 0).UTC()
	e.Command = command.Type(tag)
	return e, nil
}
