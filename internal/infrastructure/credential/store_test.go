package credential

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mizuki-dev/animeprompt/internal/domain"
	"github.com/mizuki-dev/animeprompt/internal/pkg/logger"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key")
	return NewFileStore(path, logger.NewStd(false))
}

func TestResolveCacheWinsOverFlagAndEnv(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("cached-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, "env-key")

	key, err := store.Resolve(context.Background(), "flag-key")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if key != "cached-key" {
		t.Errorf("got %q, want cached value to win", key)
	}
}

func TestResolveFlagPersistsToCache(t *testing.T) {
	store := newTestStore(t)
	t.Setenv(EnvVar, "")

	key, err := store.Resolve(context.Background(), "flag-key")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if key != "flag-key" {
		t.Errorf("got %q, want flag-key", key)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	if string(data) != "flag-key" {
		t.Errorf("cache file holds %q, want flag-key", string(data))
	}
}

func TestResolveEnvFallbackPersists(t *testing.T) {
	store := newTestStore(t)
	t.Setenv(EnvVar, "abc")

	key, err := store.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if key != "abc" {
		t.Errorf("got %q, want abc", key)
	}
	if !store.Cached() {
		t.Error("env-resolved key was not persisted")
	}
}

func TestResolveEmptyCacheFileFallsThrough(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, "")

	key, err := store.Resolve(context.Background(), "flag-key")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if key != "flag-key" {
		t.Errorf("got %q, want flag-key when cache file is blank", key)
	}
}

func TestResolveNoSourceFails(t *testing.T) {
	store := newTestStore(t)
	t.Setenv(EnvVar, "")

	_, err := store.Resolve(context.Background(), "")
	if !errors.Is(err, domain.ErrAPIKeyMissing) {
		t.Fatalf("Resolve() error = %v, want ErrAPIKeyMissing", err)
	}
}

func TestResolvePersistFailureIsNonFatal(t *testing.T) {
	// Point the cache at a path whose parent does not exist so the write
	// fails; the key must still come back for the current run.
	path := filepath.Join(t.TempDir(), "missing-dir", "key")
	store := NewFileStore(path, logger.NewStd(false))
	t.Setenv(EnvVar, "")

	key, err := store.Resolve(context.Background(), "flag-key")
	if err != nil {
		t.Fatalf("Resolve() error = %v, want best-effort persist", err)
	}
	if key != "flag-key" {
		t.Errorf("got %q, want flag-key", key)
	}
}

func TestClearRemovesCache(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("cached"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if store.Cached() {
		t.Error("cache still present after Clear")
	}
	// Clearing an absent cache is not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() on empty cache error = %v", err)
	}
}
