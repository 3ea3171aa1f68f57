package ai

import (
	"github.com/mizuki-dev/animeprompt/internal/domain"
	"github.com/mizuki-dev/animeprompt/internal/ports"
)

// Factory builds generators from config settings.
type Factory struct {
	log ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(log ports.Logger) *Factory {
	return &Factory{log: log}
}

// ForSettings implements ports.GeneratorFactory. Gemini is the only backend.
func (f *Factory) ForSettings(settings domain.GenerationSettings) (ports.Generator, error) {
	return NewGeminiGenerator(settings, f.log), nil
}

var _ ports.GeneratorFactory = (*Factory)(nil)
