package engine

import (
	"testing"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

func TestCalculatePower_RarityScaling(t *testing.T) {
	want := map[game.Rarity]float64{
		game.RarityCommon:    50,
		game.RarityUncommon:  60,
		game.RarityRare:      75,
		game.RarityEpic:      90,
		game.RarityLegendary: 110,
		game.RarityMythic:    150,
	}
	for _, r := range game.AllRarities {
		card := newTestCard("Average Al", game.CouchCommander, r, 50)
		if got := CalculatePower(card); got != want[r] {
			t.Fatalf("power for 50-average %s card: got %v, want %v", r, got, want[r])
		}
	}
}

func TestDeckTotalPower(t *testing.T) {
	card := newTestCard("Average Al", game.CouchCommander, game.RarityCommon, 50)
	deck := newTestDeck("Als", card, 4)
	if got := DeckTotalPower(deck); got != 200 {
		t.Fatalf("deck total power: got %v, want 200", got)
	}
}
