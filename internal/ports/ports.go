// Package ports defines the interfaces between the application core and the
// infrastructure adapters (config files, credential cache, Gemini client,
// history storage). The application layer depends only on these abstractions
// so each adapter can be swapped for an in-memory fake in tests.
package ports

import (
	"context"

	"github.com/mizuki-dev/animeprompt/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.animeprompt/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CredentialStore resolves the API key and caches it across runs.
// Resolution order: cached file first, then the CLI-supplied value, then the
// GENAI_API_KEY environment variable. Persisting the key is best-effort and
// must never fail the run.
type CredentialStore interface {
	Resolve(ctx context.Context, cliKey string) (string, error)
}

// GeneratorFactory builds a Generator for the configured settings.
type GeneratorFactory interface {
	ForSettings(domain.GenerationSettings) (Generator, error)
}

// Generator performs a single remote generation call.
type Generator interface {
	Name() string
	Generate(context.Context, GenerateRequest) (domain.GenerationResult, error)
}

// GenerateRequest carries everything one remote call needs.
type GenerateRequest struct {
	Keyword    string
	History    []domain.Exchange
	Credential string
}

// HistoryRepository persists exchanges across invocations.
type HistoryRepository interface {
	Save(domain.Exchange) error
	// Recent returns at most limit exchanges, oldest first.
	Recent(limit int) ([]domain.Exchange, error)
	Clear() error
	Path() string
}

// Logger provides the logging abstraction used throughout the application.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
