package history

import (
	"database/sql"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteStore is a calculation log persisted to a SQLite database, for
// deployments that should keep history across restarts. The cap is enforced
// in SQL on every push.
type SQLiteStore struct {
	db        *sql.DB
	limit     int
	mu        sync.RWMutex
	closeOnce sync.Once

	insertStmt *sql.Stmt
	pruneStmt  *sql.Stmt
	listStmt   *sql.Stmt
	countStmt  *sql.Stmt
	clearStmt  *sql.Stmt
}

// NewSQLiteStore opens (creating if needed) the database at path with a cap
// of limit entries. A non-positive limit falls back to DefaultLimit.
func NewSQLiteStore(path string, limit int) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		path, int((5 * time.Second).Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{db: db, limit: limit}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history_entries (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL,
		expression TEXT NOT NULL,
		result REAL NOT NULL,
		created_at INTEGER NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.insertStmt, err = s.db.Prepare(`
		INSERT INTO history_entries (id, expression, result, created_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}

	s.pruneStmt, err = s.db.Prepare(`
		DELETE FROM history_entries
		WHERE seq NOT IN (SELECT seq FROM history_entries ORDER BY seq DESC LIMIT ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare prune statement: %w", err)
	}

	s.listStmt, err = s.db.Prepare(`
		SELECT id, expression, result, created_at
		FROM history_entries
		ORDER BY seq ASC
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare list statement: %w", err)
	}

	s.countStmt, err = s.db.Prepare(`SELECT COUNT(*) FROM history_entries`)
	if err != nil {
		return fmt.Errorf("failed to prepare count statement: %w", err)
	}

	s.clearStmt, err = s.db.Prepare(`DELETE FROM history_entries`)
	if err != nil {
		return fmt.Errorf("failed to prepare clear statement: %w", err)
	}

	return nil
}

// Push appends a calculation and prunes beyond the cap.
func (s *SQLiteStore) Push(expression string, result float64) (*Entry, error) {
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return nil, ErrNonFiniteResult
	}

	entry := &Entry{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.insertStmt.Exec(entry.ID, entry.Expression, entry.Result, entry.CreatedAt.Unix()); err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}
	if _, err := s.pruneStmt.Exec(s.limit); err != nil {
		return nil, fmt.Errorf("failed to prune entries: %w", err)
	}

	return entry, nil
}

// All returns the retained entries, oldest first.
func (s *SQLiteStore) All() ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.listStmt.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Expression, &e.Result, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

// Clear removes every entry.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.clearStmt.Exec(); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	return nil
}

// Count returns the number of retained entries.
func (s *SQLiteStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.countStmt.QueryRow().Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

// Close releases the prepared statements and the database handle. Close is
// idempotent and safe to call multiple times.
func (s *SQLiteStore) Close() error {
	var closeErr error

	s.closeOnce.Do(func() {
		for _, stmt := range []*sql.Stmt{s.insertStmt, s.pruneStmt, s.listStmt, s.countStmt, s.clearStmt} {
			if stmt != nil {
				stmt.Close()
			}
		}
		if s.db != nil {
			_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
			closeErr = s.db.Close()
		}
	})

	return closeErr
}
