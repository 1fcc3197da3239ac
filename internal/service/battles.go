package service

import (
	"errors"
	"fmt"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/dedupe"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/engine"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/keys"
)

// CardRepo is the minimal repository interface required by the battle
// services. Using a small interface simplifies testing.
type CardRepo interface {
	GetCardsByIDs(ids []uint) ([]game.Card, error)
	GetCardByID(id uint) (*game.Card, error)
	UpdateStatsOnBattleEnd(winnerName, loserName string) error
}

// MaxDeckCards caps the number of card instances a deck may run.
const MaxDeckCards = 10

var (
	ErrCardNotFound = errors.New("card not found")
	ErrEmptyDeck    = errors.New("deck has no cards")
	ErrBadCardCount = errors.New("deck entry count must be >= 1")
	ErrDeckTooLarge = errors.New("deck exceeds the card limit")
)

// DeckCardSpec references one catalog card and how many copies to run.
type DeckCardSpec struct {
	CardID uint `json:"card_id"`
	Count  int  `json:"count"`
}

// DeckSpec is a deck as submitted by a client: catalog references only.
type DeckSpec struct {
	Name  string         `json:"name"`
	Cards []DeckCardSpec `json:"cards"`
}

// ResolveBattleRequest resolves DeckA (attacker) against DeckB. Seed 0
// asks the server to roll a fresh battle seed. Player names are
// optional; when both are present the leaderboard aggregates are
// updated.
type ResolveBattleRequest struct {
	DeckA   DeckSpec `json:"deck_a"`
	DeckB   DeckSpec `json:"deck_b"`
	Seed    int64    `json:"seed"`
	PlayerA string   `json:"player_a"`
	PlayerB string   `json:"player_b"`
}

// buildDeck materializes a DeckSpec against the card catalog.
func buildDeck(repo CardRepo, spec DeckSpec) (*game.Deck, error) {
	if len(spec.Cards) == 0 {
		return nil, ErrEmptyDeck
	}
	total := 0
	ids := make([]uint, 0, len(spec.Cards))
	for _, cs := range spec.Cards {
		if cs.Count < 1 {
			return nil, ErrBadCardCount
		}
		total += cs.Count
		ids = append(ids, cs.CardID)
	}
	if total > MaxDeckCards {
		return nil, ErrDeckTooLarge
	}

	cards, err := repo.GetCardsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*game.Card, len(cards))
	for i := range cards {
		byID[cards[i].ID] = &cards[i]
	}

	deck := &game.Deck{Name: spec.Name}
	for _, cs := range spec.Cards {
		card, ok := byID[cs.CardID]
		if !ok {
			return nil, ErrCardNotFound
		}
		deck.Entries = append(deck.Entries, game.DeckEntry{Card: card, Count: cs.Count})
	}
	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return deck, nil
}

// deckKeyParts encodes a deck for the dedupe key. Copy counts and entry
// order are part of the deck's identity, so both go into the key.
func deckKeyParts(d *game.Deck) []string {
	parts := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		parts = append(parts, fmt.Sprintf("%dx %s", e.Count, e.Card.Name))
	}
	return parts
}

// ResolveBattle builds both decks from the catalog, resolves the battle
// deterministically for the seed, and updates leaderboard aggregates
// when both player names are present. Identical concurrent requests are
// collapsed onto a single resolution via singleflight.
func ResolveBattle(repo CardRepo, req ResolveBattleRequest) (*game.BattleResult, int64, error) {
	deckA, err := buildDeck(repo, req.DeckA)
	if err != nil {
		return nil, 0, err
	}
	deckB, err := buildDeck(repo, req.DeckB)
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

	key := keys.BattleKey(deckKeyParts(deckA), deckKeyParts(deckB), seed) +
		":" + req.PlayerA + ":" + req.PlayerB
	v, err, _ := dedupe.BattleGroup.Do(key, func() (interface{}, error) {
		res := engine.CalculateBattleResult(deckA, deckB, seed)
		if req.PlayerA != "" && req.PlayerB != "" {
			winnerName, loserName := req.PlayerA, req.PlayerB
			if res.Winner != deckA {
				winnerName, loserName = req.PlayerB, req.PlayerA
			}
			if err := repo.UpdateStatsOnBattleEnd(winnerName, loserName); err != nil {
				return nil, err
			}
		}
		return res, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return v.(*game.BattleResult), seed, nil
}

// SimulateBattleRequest pits two single cards against each other in the
// turn-based simulator.
type SimulateBattleRequest struct {
	CardA uint  `json:"card_a"`
	CardB uint  `json:"card_b"`
	Seed  int64 `json:"seed"`
}

// SimulateBattle runs the turn-based single-card simulator.
func SimulateBattle(repo CardRepo, req SimulateBattleRequest) (*game.BattleOutcome, int64, error) {
	cardA, err := repo.GetCardByID(req.CardA)
	if err != nil {
		return nil, 0, ErrCardNotFound
	}
	cardB, err := repo.GetCardByID(req.CardB)
	if err != nil {
		return nil, 0, ErrCardNotFound
	}
	seed := req.Seed
	if seed == 0 {
		seed, err = engine.NewBattleSeed()
		if err != nil {
			return nil, 0, err
		}
	}
	out := engine.SimulateBattle(cardA, cardB, engine.NewSeededRandom(seed))
	return &out, seed, nil
}

// PredictBattleRequest asks for a heuristic winner estimate.
type PredictBattleRequest struct {
	CardA uint `json:"card_a"`
	CardB uint `json:"card_b"`
}

// PredictWinner returns the heuristic prediction for a card matchup.
func PredictWinner(repo CardRepo, req PredictBattleRequest) (*game.Prediction, error) {
	cardA, err := repo.GetCardByID(req.CardA)
	if err != nil {
		return nil, ErrCardNotFound
	}
	cardB, err := repo.GetCardByID(req.CardB)
	if err != nil {
		return nil, ErrCardNotFound
	}
	pred := engine.PredictWinner(cardA, cardB)
	return &pred, nil
}
