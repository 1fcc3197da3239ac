package storage

import (
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

type Repository interface {
	// Card catalog. Stats, types and abilities always come from the
	// config file; the DB only anchors identity (ID + name).
	GetCards() ([]game.Card, error)
	GetCardByID(id uint) (*game.Card, error)
	GetCardsByIDs(ids []uint) ([]game.Card, error)
	// GetCardByName returns a card by its name (case-insensitive).
	GetCardByName(name string) (*game.Card, error)

	// Player aggregates
	UpsertUser(uuid, name string) error
	GetStatsByName(name string) (*game.User, error)
	SaveUser(u *game.User) error
	// UpdateStatsOnBattleEnd bumps battle/win aggregates for both
	// named players. Unknown players are created on the fly.
	UpdateStatsOnBattleEnd(winnerName, loserName string) error
	// Leaderboard
	GetTopPlayers(limit int) ([]game.User, error)

	// Collections. Entries come back with the catalog card attached.
	GetCollection(playerUUID string) ([]game.CollectionEntry, error)
	// AddCardsToCollection bumps the copy count per card, creating
	// entries on first sight.
	AddCardsToCollection(playerUUID string, cardIDs []uint) error
}
