package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mizuki-dev/animeprompt/internal/domain"
	"github.com/mizuki-dev/animeprompt/internal/ports"
)

// FileStore appends exchanges to a jsonl file. It backs the sqlite store
// when the database cannot be opened.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store. An empty path selects
// ~/.animeprompt/history/history.jsonl.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(userHome(), ".animeprompt", "history", "history.jsonl")
	}
	return &FileStore{path: path}
}

// Save implements ports.HistoryRepository.
func (f *FileStore) Save(ex domain.Exchange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	if ex.Timestamp.IsZero() {
		ex.Timestamp = time.Now()
	}
	data, err := json.Marshal(ex)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Recent returns at most limit exchanges, oldest first (best-effort:
// malformed lines are skipped).
func (f *FileStore) Recent(limit int) ([]domain.Exchange, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var all []domain.Exchange
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var ex domain.Exchange
		if err := json.Unmarshal(line, &ex); err == nil {
			all = append(all, ex)
		}
	}
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.HistoryRepository = (*FileStore)(nil)
