package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mizuki-dev/animeprompt/internal/domain"
	"github.com/mizuki-dev/animeprompt/internal/ports"
)

// SQLiteStore persists exchanges in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	fb   *FileStore
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the history database. An empty path
// selects ~/.animeprompt/history/history.db. When the database cannot be
// opened the store degrades to a jsonl file store next to it.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(userHome(), ".animeprompt", "history", "history.db")
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return degradedStore(path)
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return degradedStore(path)
	}
	return store
}

func degradedStore(dbPath string) *SQLiteStore {
	jsonl := strings.TrimSuffix(dbPath, filepath.Ext(dbPath)) + ".jsonl"
	return &SQLiteStore{path: dbPath, fb: NewFileStore(jsonl)}
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS exchanges (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		keyword TEXT,
		prompt TEXT,
		model TEXT
	);`)
	return err
}

// Save inserts a new exchange.
func (s *SQLiteStore) Save(ex domain.Exchange) error {
	if s.db == nil {
		return s.fb.Save(ex)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if ex.Timestamp.IsZero() {
		ex.Timestamp = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO exchanges (timestamp, keyword, prompt, model) VALUES (?, ?, ?, ?)`,
		ex.Timestamp.Format(time.RFC3339),
		ex.Keyword,
		ex.Prompt,
		ex.Model,
	)
	return err
}

// Recent returns at most limit exchanges, oldest first. A non-positive
// limit returns everything.
func (s *SQLiteStore) Recent(limit int) ([]domain.Exchange, error) {
	if s.db == nil {
		return s.fb.Recent(limit)
	}
	query := "SELECT timestamp, keyword, prompt, model FROM exchanges ORDER BY id DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var newestFirst []domain.Exchange
	for rows.Next() {
		var ex domain.Exchange
		var ts string
		if err := rows.Scan(&ts, &ex.Keyword, &ex.Prompt, &ex.Model); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			ex.Timestamp = t
		}
		newestFirst = append(newestFirst, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Flip to chronological order for replay as conversation context.
	out := make([]domain.Exchange, 0, len(newestFirst))
	for i := len(newestFirst) - 1; i >= 0; i-- {
		out = append(out, newestFirst[i])
	}
	return out, nil
}

// Clear deletes all exchanges.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fb.Clear()
	}
	_, err := s.db.Exec("DELETE FROM exchanges")
	return err
}

// Path returns where exchanges are actually stored: the sqlite database,
// or the jsonl file when the store is degraded.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return s.fb.Path()
	}
	return s.path
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
