package app

import (
	"context"

	"github.com/mizuki-dev/animeprompt/internal/application/generate"
	"github.com/mizuki-dev/animeprompt/internal/infrastructure/ai"
	"github.com/mizuki-dev/animeprompt/internal/infrastructure/config"
	"github.com/mizuki-dev/animeprompt/internal/infrastructure/credential"
	"github.com/mizuki-dev/animeprompt/internal/infrastructure/history"
	"github.com/mizuki-dev/animeprompt/internal/pkg/logger"
	"github.com/mizuki-dev/animeprompt/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	GenerateService *generate.Service
	ConfigProvider  ports.ConfigProvider
	CredentialStore *credential.FileStore
	HistoryStore    ports.HistoryRepository
	Logger          ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	credStore := credential.NewFileStore(cfg.Credential.CachePath, log)
	historyStore := history.NewSQLiteStore("")

	generateService := &generate.Service{
		ConfigProvider:   cfgLoader,
		CredentialStore:  credStore,
		GeneratorFactory: ai.NewFactory(log),
		HistoryStore:     historyStore,
		Logger:           log,
	}

	return &Container{
		GenerateService: generateService,
		ConfigProvider:  cfgLoader,
		CredentialStore: credStore,
		HistoryStore:    historyStore,
		Logger:          log,
	}, nil
}
