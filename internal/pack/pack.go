package pack

import (
	"errors"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/engine"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// PackType selects the rarity odds used when rolling a pack.
type PackType string

const (
	PackStandard PackType = "standard"
	PackPremium  PackType = "premium"
)

// CardsPerPack is the fixed pack size.
const CardsPerPack = 5

var ErrEmptyCatalog = errors.New("card catalog is empty")
var ErrUnknownPackType = errors.New("unknown pack type")

// rarityWeight is one row of a pack's rarity table. Weights are
// cumulative probability thresholds in [0,1]; the last row must reach 1.
type rarityWeight struct {
	rarity game.Rarity
	upTo   float64
}

// Standard packs are mostly commons with a thin high-rarity tail.
var standardWeights = []rarityWeight{
	{game.RarityCommon, 0.55},
	{game.RarityUncommon, 0.80},
	{game.RarityRare, 0.92},
	{game.RarityEpic, 0.97},
	{game.RarityLegendary, 0.995},
	{game.RarityMythic, 1.0},
}

// Premium packs shift the mass toward rare and above.
var premiumWeights = []rarityWeight{
	{game.RarityCommon, 0.20},
	{game.RarityUncommon, 0.45},
	{game.RarityRare, 0.75},
	{game.RarityEpic, 0.92},
	{game.RarityLegendary, 0.98},
	{game.RarityMythic, 1.0},
}

func weightsFor(t PackType) ([]rarityWeight, error) {
	switch t {
	case PackStandard:
		return standardWeights, nil
	case PackPremium:
		return premiumWeights, nil
	default:
		return nil, ErrUnknownPackType
	}
}

// IsValidPackType reports whether s names a known pack type.
func IsValidPackType(s string) bool {
	_, err := weightsFor(PackType(s))
	return err == nil
}

func rollRarity(weights []rarityWeight, rng *engine.SeededRandom) game.Rarity {
	roll := rng.Next()
	for _, w := range weights {
		if roll < w.upTo {
			return w.rarity
		}
	}
	return weights[len(weights)-1].rarity
}

// Generate rolls a pack of CardsPerPack cards from the catalog. Each
// slot rolls a rarity from the pack's table, then draws uniformly from
// the catalog cards of that rarity. When the catalog has no card of the
// rolled rarity the slot falls back to the next lower tier with stock
// (then upward if even commons are missing). Identical (catalog, type,
// seed) inputs yield an identical pack; duplicates across slots are
// allowed, as in a real booster.
func Generate(catalog []game.Card, packType PackType, seed int64) ([]game.Card, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	weights, err := weightsFor(packType)
	if err != nil {
		return nil, err
	}

	byRarity := make(map[game.Rarity][]game.Card, len(game.AllRarities))
	for _, c := range catalog {
		byRarity[c.Rarity] = append(byRarity[c.Rarity], c)
	}

	rng := engine.NewSeededRandom(seed)
	out := make([]game.Card, 0, CardsPerPack)
	for slot := 0; slot < CardsPerPack; slot++ {
		rarity := rollRarity(weights, rng)
		pool := poolFor(byRarity, rarity)
		idx := int(rng.Next() * float64(len(pool)))
		if idx >= len(pool) {
			idx = len(pool) - 1
		}
		out = append(out, pool[idx])
	}
	return out, nil
}

// poolFor returns the catalog cards of the requested rarity, walking
// down then up the tier order until a non-empty pool is found. The
// catalog is known non-empty, so the walk always terminates.
func poolFor(byRarity map[game.Rarity][]game.Card, rarity game.Rarity) []game.Card {
	tier := rarity.Tier()
	if tier < 0 {
		tier = 0
	}
	for t := tier; t >= 0; t-- {
		if pool := byRarity[game.AllRarities[t]]; len(pool) > 0 {
			return pool
		}
	}
	for t := tier + 1; t < len(game.AllRarities); t++ {
		if pool := byRarity[game.AllRarities[t]]; len(pool) > 0 {
			return pool
		}
	}
	return nil
}
