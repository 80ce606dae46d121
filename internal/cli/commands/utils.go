package commands

import (
	"github.com/kutbudev/clickup-bridge/internal/clickup"
	"github.com/kutbudev/clickup-bridge/internal/config"
	"github.com/kutbudev/clickup-bridge/internal/ollama"
	"github.com/kutbudev/clickup-bridge/internal/query"
	"github.com/kutbudev/clickup-bridge/internal/store"
)

// components bundles the collaborators shared by the serve, ingest and
// query commands, wired from one loaded configuration.
type components struct {
	cfg       *config.Config
	walker    *clickup.Walker
	store     *store.Store
	responder *query.Responder
}

func wire() (*components, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := clickup.NewClient(cfg.ClickUp)
	st := store.New(cfg.Store.Path)

	return &components{
		cfg:       cfg,
		walker:    clickup.NewWalker(client, cfg.ClickUp.TeamID),
		store:     st,
		responder: query.NewResponder(st, ollama.NewClient(cfg.Ollama)),
	}, nil
}
