package credential

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mizuki-dev/animeprompt/internal/domain"
	"github.com/mizuki-dev/animeprompt/internal/ports"
)

// EnvVar is the environment variable consulted when neither the cache file
// nor the CLI supplied a key.
const EnvVar = "GENAI_API_KEY"

// FileStore caches the API key as a plain string in the system temp
// directory so subsequent runs need no --key flag. Concurrent runs racing on
// the file are tolerated; last writer wins.
type FileStore struct {
	path string
	log  ports.Logger
}

// NewFileStore builds a store. An empty cachePath selects the default
// location under os.TempDir(); the path must stay stable across runs.
func NewFileStore(cachePath string, log ports.Logger) *FileStore {
	if cachePath == "" {
		cachePath = filepath.Join(os.TempDir(), "animeprompt_key")
	}
	return &FileStore{path: cachePath, log: log}
}

// Resolve implements ports.CredentialStore. The cache file wins over a
// fresh --key value; clear the cache (key --clear) to replace a stale key.
func (s *FileStore) Resolve(_ context.Context, cliKey string) (string, error) {
	if data, err := os.ReadFile(s.path); err == nil {
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, nil
		}
	}

	if key := strings.TrimSpace(cliKey); key != "" {
		s.persist(key)
		return key, nil
	}

	if key := strings.TrimSpace(os.Getenv(EnvVar)); key != "" {
		s.persist(key)
		return key, nil
	}

	return "", domain.ErrAPIKeyMissing
}

// Clear removes the cached key.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Cached reports whether a non-empty key is currently cached.
func (s *FileStore) Cached() bool {
	data, err := os.ReadFile(s.path)
	return err == nil && strings.TrimSpace(string(data)) != ""
}

// Path returns the cache file location.
func (s *FileStore) Path() string {
	return s.path
}

// persist is best-effort: a failed write is logged and the resolved key is
// still returned for the current run.
func (s *FileStore) persist(key string) {
	if err := os.WriteFile(s.path, []byte(key), 0o600); err != nil && s.log != nil {
		s.log.Warn("could not cache API key", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
	}
}

var _ ports.CredentialStore = (*FileStore)(nil)
