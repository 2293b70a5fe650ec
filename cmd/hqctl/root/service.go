package root

import (
	"github.com/osse101/HealthQuest_Go/internal/engine"
	"github.com/osse101/HealthQuest_Go/internal/game"
	"github.com/osse101/HealthQuest_Go/internal/health"
	"github.com/osse101/HealthQuest_Go/internal/report"
	"github.com/osse101/HealthQuest_Go/internal/storage"
)

func openStore(opts *globalOptions) (*storage.Store, error) {
	return storage.New(opts.dir)
}

func openService(opts *globalOptions) (game.Service, *storage.Store, error) {
	store, err := openStore(opts)
	if err != nil {
		return nil, nil, err
	}
	provider, err := health.NewProvider(opts.healthProvider, opts.healthFile)
	if err != nil {
		return nil, nil, err
	}
	return game.NewService(store, engine.New(), provider, report.NewFileRenderer(store)), store, nil
}
