package storage

import (
	"strings"
	"time"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
	// configByName maps lowercase card name -> config definition (stats,
	// type, rarity, abilities).
	configByName map[string]game.Card
}

func NewSQLiteRepository(db *gorm.DB, configCards []game.Card) Repository {
	m := make(map[string]game.Card, len(configCards))
	for _, c := range configCards {
		m[strings.ToLower(c.Name)] = c
	}
	return &sqliteRepository{db: db, configByName: m}
}

// applyConfig copies config-sourced fields onto a persisted card row.
// The config file is the single source of truth for everything except
// identity.
func (r *sqliteRepository) applyConfig(c *game.Card) {
	if r.configByName == nil {
		return
	}
	if conf, ok := r.configByName[strings.ToLower(c.Name)]; ok {
		c.DadType = conf.DadType
		c.Rarity = conf.Rarity
		c.Stats = conf.Stats
		c.Abilities = conf.Abilities
		c.FlavorText = conf.FlavorText
		c.Series = conf.Series
	}
}

func (r *sqliteRepository) GetCards() ([]game.Card, error) {
	var cards []game.Card
	if err := r.db.Find(&cards).Error; err != nil {
		return nil, err
	}
	for i := range cards {
		r.applyConfig(&cards[i])
	}
	return cards, nil
}

func (r *sqliteRepository) GetCardByID(id uint) (*game.Card, error) {
	var c game.Card
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	r.applyConfig(&c)
	return &c, nil
}

func (r *sqliteRepository) GetCardsByIDs(ids []uint) ([]game.Card, error) {
	var cards []game.Card
	if err := r.db.Where("id IN ?", ids).Find(&cards).Error; err != nil {
		return cards, err
	}
	for i := range cards {
		r.applyConfig(&cards[i])
	}
	return cards, nil
}

func (r *sqliteRepository) GetCardByName(name string) (*game.Card, error) {
	var c game.Card
	if err := r.db.Where("lower(name) = ?", strings.ToLower(name)).First(&c).Error; err != nil {
		return nil, err
	}
	r.applyConfig(&c)
	return &c, nil
}

func (r *sqliteRepository) UpsertUser(uuid, name string) error {
	var u game.User
	if err := r.db.Where("player_name = ?", name).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			u = game.User{PlayerUUID: uuid, PlayerName: name}
		} else {
			return err
		}
	}
	if uuid != "" {
		u.PlayerUUID = uuid
	}
	return r.db.Save(&u).Error
}

func (r *sqliteRepository) GetStatsByName(name string) (*game.User, error) {
	var u game.User
	if err := r.db.Where("player_name = ?", name).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return &game.User{PlayerName: name, Battles: 0, Wins: 0}, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *sqliteRepository) SaveUser(u *game.User) error {
	return r.db.Save(u).Error
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(winnerName, loserName string) error {
	// Helper to upsert and add deltas
	upsert := func(name string, battles, wins int) error {
		var u game.User
		if err := r.db.Where("player_name = ?", name).First(&u).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				u = game.User{PlayerName: name, Battles: 0, Wins: 0}
			} else {
				return err
			}
		}
		u.Battles += battles
		u.Wins += wins
		return r.db.Save(&u).Error
	}
	if winnerName != "" {
		if err := upsert(winnerName, 1, 1); err != nil {
			return err
		}
	}
	if loserName != "" {
		if err := upsert(loserName, 1, 0); err != nil {
			return err
		}
	}
	return nil
}

func (r *sqliteRepository) GetCollection(playerUUID string) ([]game.CollectionEntry, error) {
	var entries []game.CollectionEntry
	if err := r.db.Where("player_uuid = ?", playerUUID).Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.CardID)
	}
	cards, err := r.GetCardsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*game.Card, len(cards))
	for i := range cards {
		byID[cards[i].ID] = &cards[i]
	}
	for i := range entries {
		entries[i].Card = byID[entries[i].CardID]
	}
	return entries, nil
}

func (r *sqliteRepository) AddCardsToCollection(playerUUID string, cardIDs []uint) error {
	for _, id := range cardIDs {
		var e game.CollectionEntry
		err := r.db.Where("player_uuid = ? AND card_id = ?", playerUUID, id).First(&e).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			e = game.CollectionEntry{PlayerUUID: playerUUID, CardID: id, ObtainedAt: time.Now()}
		}
		e.Count++
		if err := r.db.Save(&e).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetTopPlayers returns top N players ordered by Wins desc, then Battles desc
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.User, error) {
	if limit <= 0 {
		limit = 10
	}
	var users []game.User
	if err := r.db.Model(&game.User{}).
		Order("wins DESC").
		Order("battles DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
