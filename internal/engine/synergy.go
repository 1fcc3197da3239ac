package engine

import (
	"fmt"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// Deck-wide synergy thresholds.
const (
	deckSynergyMajorCount = 5
	deckSynergyMinorCount = 3
	deckSynergyMajorMult  = 1.15
	deckSynergyMinorMult  = 1.05
)

// CalculateSynergyBonus detects a deck-wide thematic bonus: five or
// more cards of one dad type earn the full "_BROS" theme, three or more
// a smaller one. Duplicate copies count individually.
func CalculateSynergyBonus(deck *game.Deck) game.DeckSynergy {
	hist := deck.TypeHistogram()
	var best game.DadType
	bestCount := 0
	// iterate deck entries, not the map, so ties resolve stably
	for _, e := range deck.Entries {
		if c := hist[e.Card.DadType]; c > bestCount {
			best = e.Card.DadType
			bestCount = c
		}
	}
	switch {
	case bestCount >= deckSynergyMajorCount:
		return game.DeckSynergy{
			Multiplier:  deckSynergyMajorMult,
			Theme:       string(best) + "_BROS",
			Description: fmt.Sprintf("%d %s dads grilling in unison", bestCount, best),
		}
	case bestCount >= deckSynergyMinorCount:
		return game.DeckSynergy{
			Multiplier:  deckSynergyMinorMult,
			Theme:       string(best) + "_BUDDIES",
			Description: fmt.Sprintf("%d %s dads nodding at each other", bestCount, best),
		}
	default:
		return game.DeckSynergy{Multiplier: 1.0}
	}
}

type pairSynergy struct {
	a, b  game.DadType
	bonus float64
	name  string
}

// pairSynergies is the fixed table of named dad-type alliances. Order
// matters: the first matching row wins. Rarity alliances are checked
// before this table.
var pairSynergies = []pairSynergy{
	{game.BBQDicktator, game.LawnEnforcer, 1.3, "Ultimate Cookout"},
	{game.ToolTimeTitan, game.FixItFelon, 1.3, "Garage Brothers"},
	{game.CouchCommander, game.SportsShouter, 1.25, "Game Day Duo"},
	{game.GolfGonad, game.CargoShortCaptain, 1.25, "Country Club Combo"},
	{game.NaptimeNinja, game.ThermostatTyrant, 1.2, "Sunday Afternoon"},
	{game.FishingPhantom, game.MinivanManiac, 1.2, "Road Trip Legends"},
}

// Rarity alliance bonuses.
const (
	mythicAllianceBonus    = 2.0
	legendaryAllianceBonus = 1.5
)

// CheckSynergy looks up the pairwise synergy between two cards. The
// table is finite and total: any pair not listed simply has no synergy.
func CheckSynergy(cardA, cardB *game.Card) game.SynergyCheck {
	if cardA.Rarity == game.RarityMythic && cardB.Rarity == game.RarityMythic {
		return game.SynergyCheck{HasSynergy: true, SynergyBonus: mythicAllianceBonus, SynergyName: "Mythic Alliance"}
	}
	if cardA.Rarity == game.RarityLegendary && cardB.Rarity == game.RarityLegendary {
		return game.SynergyCheck{HasSynergy: true, SynergyBonus: legendaryAllianceBonus, SynergyName: "Legendary Duo"}
	}
	for _, p := range pairSynergies {
		if (cardA.DadType == p.a && cardB.DadType == p.b) || (cardA.DadType == p.b && cardB.DadType == p.a) {
			return game.SynergyCheck{HasSynergy: true, SynergyBonus: p.bonus, SynergyName: p.name}
		}
	}
	return game.SynergyCheck{SynergyBonus: 1.0}
}
