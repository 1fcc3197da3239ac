package engine

import "github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"

// CalculatePower aggregates a card's eight stats into a scalar power:
// the stat average scaled by the rarity multiplier. The multiplication
// happens before the /10 so tier scaling is exact.
func CalculatePower(card *game.Card) float64 {
	return card.Stats.Average() * float64(card.Rarity.MultiplierX10()) / 10
}

// DeckTotalPower sums card power across all instances in the deck,
// duplicates included.
func DeckTotalPower(deck *game.Deck) float64 {
	total := 0.0
	for _, e := range deck.Entries {
		total += CalculatePower(e.Card) * float64(e.Count)
	}
	return total
}
