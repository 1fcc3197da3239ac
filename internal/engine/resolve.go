package engine

import (
	"fmt"
	"math"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// Deck-level variance band. Narrower than the per-attack band so a deck
// with a 40%+ edge in average power can never lose the matchup to the
// roll alone.
const (
	deckVarianceMin = 0.9
	deckVarianceMax = 1.1
)

// CalculateBattleResult resolves a deck-vs-deck battle. deckA attacks.
// The entire resolution is driven by a single SeededRandom built from
// seed, with a fixed draw order, so identical (deckA, deckB, seed)
// inputs yield an identical result. Both decks must hold at least one
// card instance; a deck with none yields nil.
func CalculateBattleResult(deckA, deckB *game.Deck, seed int64) *game.BattleResult {
	rng := NewSeededRandom(seed)

	countA := deckA.TotalCards()
	countB := deckB.TotalCards()
	if countA == 0 || countB == 0 {
		return nil
	}
	totalA := DeckTotalPower(deckA)
	totalB := DeckTotalPower(deckB)
	// normalize by deck size: average card quality beats raw card count
	perCardA := totalA / float64(countA)
	perCardB := totalB / float64(countB)

	mainA := deckA.DominantType()
	mainB := deckB.DominantType()
	typeAdv := GetTypeAdvantage(mainA, mainB)
	synA := CalculateSynergyBonus(deckA)
	synB := CalculateSynergyBonus(deckB)

	effectiveA := perCardA * typeAdv * synA.Multiplier
	effectiveB := perCardB * synB.Multiplier

	log := []string{
		fmt.Sprintf("DECK BATTLE: %s vs %s", deckA.Name, deckB.Name),
		fmt.Sprintf("%s: %d cards, total power %.1f, main type %s", deckA.Name, countA, totalA, mainA),
		fmt.Sprintf("%s: %d cards, total power %.1f, main type %s", deckB.Name, countB, totalB, mainB),
	}
	switch typeAdv {
	case AdvantageMultiplier:
		log = append(log, fmt.Sprintf("Type advantage: %s dominates %s ×%.1f", mainA, mainB, typeAdv))
	case DisadvantageMultiplier:
		log = append(log, fmt.Sprintf("Type disadvantage: %s struggles against %s ×%.1f", mainA, mainB, typeAdv))
	default:
		log = append(log, "Type matchup: neutral")
	}
	if synA.Theme != "" {
		log = append(log, fmt.Sprintf("%s deck synergy: %s ×%.2f", deckA.Name, synA.Theme, synA.Multiplier))
	}
	if synB.Theme != "" {
		log = append(log, fmt.Sprintf("%s deck synergy: %s ×%.2f", deckB.Name, synB.Theme, synB.Multiplier))
	}

	// Draw order is part of the determinism contract: damage rolls
	// first, then side variances.
	base := effectiveA - perCardB*0.5
	if base < minDamageBase {
		base = minDamageBase
	}
	roll := RollDamage(base, rng)
	varA := rng.NextRange(deckVarianceMin, deckVarianceMax)
	varB := rng.NextRange(deckVarianceMin, deckVarianceMax)

	finalA := effectiveA * varA
	finalB := effectiveB * varB
	log = append(log,
		fmt.Sprintf("%s attack: %s for %d damage", deckA.Name, roll.Describe(), roll.Damage),
		fmt.Sprintf("%s variance %d%%: final power %.1f", deckA.Name, int(math.Round(varA*100)), finalA),
		fmt.Sprintf("%s variance %d%%: final power %.1f", deckB.Name, int(math.Round(varB*100)), finalB),
	)

	attackerStats := game.DeckStats{TotalPower: totalA, EffectivePower: effectiveA, FinalPower: finalA, MainType: mainA}
	defenderStats := game.DeckStats{TotalPower: totalB, EffectivePower: effectiveB, FinalPower: finalB, MainType: mainB}

	winner, loser := deckA, deckB
	if finalB > finalA {
		winner, loser = deckB, deckA
	}
	log = append(log, fmt.Sprintf("%s wins! %s takes %d damage", winner.Name, loser.Name, roll.Damage))

	return &game.BattleResult{
		Winner:        winner,
		Loser:         loser,
		Damage:        roll.Damage,
		TypeAdvantage: typeAdv,
		SynergyBonus:  synA.Multiplier,
		AttackerStats: attackerStats,
		DefenderStats: defenderStats,
		Log:           log,
	}
}
