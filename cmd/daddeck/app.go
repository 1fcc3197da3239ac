package main

import (
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/config"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/logging"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid card configuration", err, logging.Fields{"config_path": path, "hint": "create a daddeck_config.json with a 'card_list' array of card objects (name,dad_type,rarity,stats{...},abilities[],flavor_text,series) and optional server.address"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, cards []game.Card) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, cards)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db, cards)
}
