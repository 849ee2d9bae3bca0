package main

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
)

// loadEngine loads the reference tables (embedded unless a data directory is
// configured) and binds an engine to them
func loadEngine(cfg *config.Config) (*reference.Tables, *engine.Resolver, error) {
	var (
		tables *reference.Tables
		err    error
	)
	if cfg.DataDir != "" {
		tables, err = reference.LoadDir(cfg.DataDir, cfg.LocaleTag())
	} else {
		tables, err = reference.LoadDefault(cfg.LocaleTag())
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	resolver, err := engine.New(&engine.Config{Tables: tables})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}

	slog.Debug("loaded reference data",
		"data_dir", cfg.DataDir,
		"races", len(tables.Races()),
		"classes", len(tables.Classes()),
		"backgrounds", len(tables.Backgrounds()),
	)
	return tables, resolver, nil
}
