package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mizuki-dev/animeprompt/internal/domain"
	"github.com/mizuki-dev/animeprompt/internal/ports"
)

// Service orchestrates one generation run end-to-end: resolve the
// credential, replay recent history, call the generator, record the new
// exchange.
type Service struct {
	ConfigProvider   ports.ConfigProvider
	CredentialStore  ports.CredentialStore
	GeneratorFactory ports.GeneratorFactory
	HistoryStore     ports.HistoryRepository
	Logger           ports.Logger
}

// Run processes a single keyword.
func (s *Service) Run(req domain.PromptRequest) (domain.PromptResponse, error) {
	if s.ConfigProvider == nil || s.CredentialStore == nil ||
		s.GeneratorFactory == nil || s.HistoryStore == nil || s.Logger == nil {
		return domain.PromptResponse{}, errors.New("generate.Service dependencies not satisfied")
	}

	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		return domain.PromptResponse{}, domain.ErrNoPrompt
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.PromptResponse{}, fmt.Errorf("load config: %w", err)
	}

	if cfg.Generation.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Generation.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	credential, err := s.CredentialStore.Resolve(ctx, req.APIKey)
	if err != nil {
		return domain.PromptResponse{}, err
	}

	// History is context, not correctness: a broken store must not stop a run.
	recent, err := s.HistoryStore.Recent(cfg.History.Window)
	if err != nil {
		s.Logger.Warn("could not load history", map[string]interface{}{"error": err.Error()})
		recent = nil
	}

	window := domain.NewContextWindow(cfg.History.Window)
	for _, ex := range recent {
		window.Push(ex)
	}

	generator, err := s.GeneratorFactory.ForSettings(cfg.Generation)
	if err != nil {
		return domain.PromptResponse{}, fmt.Errorf("generator init: %w", err)
	}

	s.Logger.Info("calling generator", map[string]interface{}{
		"generator": generator.Name(),
		"model":     cfg.Generation.Model,
		"history":   window.Len(),
	})

	result, err := generator.Generate(ctx, ports.GenerateRequest{
		Keyword:    keyword,
		History:    window.Entries(),
		Credential: credential,
	})
	if err != nil {
		return domain.PromptResponse{}, err
	}

	exchange := domain.Exchange{
		Timestamp: time.Now(),
		Keyword:   keyword,
		Prompt:    result.Prompt,
		Model:     result.Model,
	}
	if err := s.HistoryStore.Save(exchange); err != nil {
		s.Logger.Warn("could not save exchange", map[string]interface{}{"error": err.Error()})
	}

	return domain.PromptResponse{
		Result:      result,
		HistoryUsed: window.Len(),
	}, nil
}
