package service

import (
	"errors"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/engine"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/pack"
)

// CatalogRepo is the minimal repository interface required by the
// card-draw services.
type CatalogRepo interface {
	GetCards() ([]game.Card, error)
}

// PackRepo adds the collection and profile writes used when a player
// claims generated packs into their collection.
type PackRepo interface {
	CatalogRepo
	AddCardsToCollection(playerUUID string, cardIDs []uint) error
	UpsertUser(uuid, name string) error
	GetStatsByName(name string) (*game.User, error)
	SaveUser(u *game.User) error
}

// MaxPacksPerRequest caps one generate call.
const MaxPacksPerRequest = 10

var (
	ErrUnknownPackType = errors.New("unknown pack type")
	ErrBadPackCount    = errors.New("pack count must be between 1 and 10")
)

// GeneratePacksRequest rolls Count packs of the given type. Seed 0 asks
// the server to roll a fresh seed; packs after the first derive their
// seed by offset so the whole batch stays reproducible. When PlayerUUID
// is set the rolled cards are claimed into that player's collection;
// PlayerName additionally keeps the player's profile aggregates.
type GeneratePacksRequest struct {
	PackType   string `json:"pack_type"`
	Count      int    `json:"count"`
	Seed       int64  `json:"seed"`
	PlayerUUID string `json:"player_uuid"`
	PlayerName string `json:"player_name"`
}

// GeneratePacks rolls one or more packs from the card catalog.
func GeneratePacks(repo PackRepo, req GeneratePacksRequest) ([][]game.Card, int64, error) {
	if !pack.IsValidPackType(req.PackType) {
		return nil, 0, ErrUnknownPackType
	}
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxPacksPerRequest {
		return nil, 0, ErrBadPackCount
	}

	catalog, err := repo.GetCards()
	if err != nil {
		return nil, 0, err
	}

	seed := req.Seed
	if seed == 0 {
		seed, err = engine.NewBattleSeed()
		if err != nil {
			return nil, 0, err
		}
	}

	packs := make([][]game.Card, 0, count)
	for i := 0; i < count; i++ {
		cards, err := pack.Generate(catalog, pack.PackType(req.PackType), seed+int64(i))
		if err != nil {
			return nil, 0, err
		}
		packs = append(packs, cards)
	}

	if req.PlayerUUID != "" {
		if err := claimPacks(repo, req, packs); err != nil {
			return nil, 0, err
		}
	}
	return packs, seed, nil
}

// claimPacks adds every rolled card to the player's collection and, when
// a profile name is given, bumps the packs-opened aggregate.
func claimPacks(repo PackRepo, req GeneratePacksRequest, packs [][]game.Card) error {
	ids := make([]uint, 0, len(packs)*pack.CardsPerPack)
	for _, cards := range packs {
		for _, c := range cards {
			ids = append(ids, c.ID)
		}
	}
	if err := repo.AddCardsToCollection(req.PlayerUUID, ids); err != nil {
		return err
	}
	if req.PlayerName == "" {
		return nil
	}
	if err := repo.UpsertUser(req.PlayerUUID, req.PlayerName); err != nil {
		return err
	}
	u, err := repo.GetStatsByName(req.PlayerName)
	if err != nil {
		return err
	}
	u.PacksOpened += len(packs)
	return repo.SaveUser(u)
}

// RandomCard draws one card uniformly from the catalog, skipping any
// excluded IDs. Deterministic for a given (catalog, seed, exclusions).
func RandomCard(repo CatalogRepo, seed int64, excludeIDs []uint) (*game.Card, error) {
	catalog, err := repo.GetCards()
	if err != nil {
		return nil, err
	}
	excluded := make(map[uint]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	pool := make([]game.Card, 0, len(catalog))
	for _, c := range catalog {
		if !excluded[c.ID] {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return nil, ErrCardNotFound
	}
	if seed == 0 {
		seed, err = engine.NewBattleSeed()
		if err != nil {
			return nil, err
		}
	}
	rng := engine.NewSeededRandom(seed)
	idx := int(rng.Next() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	card := pool[idx]
	return &card, nil
}
