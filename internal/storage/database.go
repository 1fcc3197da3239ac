package storage

import (
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenAndMigrate(dataSourceName string, cardsFromConfig []game.Card) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Keep schema updated via AutoMigrate; the DB file can simply be
	// removed when a clean slate is needed.
	err = db.AutoMigrate(&game.Card{}, &game.User{}, &game.CollectionEntry{})
	if err != nil {
		return nil, err
	}

	seedDefaultCards(db, cardsFromConfig)
	return db, nil
}

// seedDefaultCards inserts one identity row per configured card when the
// table is empty. Stats and abilities stay in the config file; only the
// name is persisted, so config edits take effect without a reseed.
func seedDefaultCards(db *gorm.DB, cardsFromConfig []game.Card) {
	var count int64
	db.Model(&game.Card{}).Count(&count)
	if count > 0 {
		return
	}
	cards := make([]game.Card, 0, len(cardsFromConfig))
	for _, c := range cardsFromConfig {
		cards = append(cards, game.Card{Name: c.Name})
	}
	if len(cards) == 0 {
		return
	}
	if err := db.Create(&cards).Error; err != nil {
		logging.Error("failed to seed card catalog", err, nil)
		return
	}
	logging.Info("card catalog seeded", logging.Fields{"count": len(cards)})
}
