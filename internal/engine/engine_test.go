package engine

import (
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// uniformStats builds a stat set with every attribute equal to v.
func uniformStats(v float64) game.StatSet {
	var ss game.StatSet
	for _, s := range game.AllStats {
		ss.Set(s, v)
	}
	return ss
}

// newTestCard builds a card with uniform stats and one ability.
func newTestCard(name string, t game.DadType, r game.Rarity, stat float64) *game.Card {
	return &game.Card{
		Name:    name,
		DadType: t,
		Rarity:  r,
		Stats:   uniformStats(stat),
		Abilities: []game.Ability{
			{Name: "Signature Move", Description: "The classic."},
		},
	}
}

// newTestDeck builds a deck of count copies of a single card.
func newTestDeck(name string, card *game.Card, count int) *game.Deck {
	return &game.Deck{Name: name, Entries: []game.DeckEntry{{Card: card, Count: count}}}
}
