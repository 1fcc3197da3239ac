package engine

import (
	"strings"
	"testing"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

func TestCalculateSynergyBonus_MajorTheme(t *testing.T) {
	card := newTestCard("Grill Greg", game.BBQDicktator, game.RarityCommon, 50)
	syn := CalculateSynergyBonus(newTestDeck("Smoke Squad", card, 5))
	if syn.Multiplier != 1.15 {
		t.Fatalf("expected 1.15 for 5 of a type, got %v", syn.Multiplier)
	}
	if syn.Theme != "BBQ_DICKTATOR_BROS" {
		t.Fatalf("unexpected theme %q", syn.Theme)
	}
}

func TestCalculateSynergyBonus_MinorTheme(t *testing.T) {
	card := newTestCard("Couch Carl", game.CouchCommander, game.RarityCommon, 50)
	syn := CalculateSynergyBonus(newTestDeck("Recliner Row", card, 3))
	if syn.Multiplier != 1.05 {
		t.Fatalf("expected 1.05 for 3 of a type, got %v", syn.Multiplier)
	}
	if !strings.HasSuffix(syn.Theme, "_BUDDIES") {
		t.Fatalf("unexpected theme %q", syn.Theme)
	}
}

func TestCalculateSynergyBonus_NoTheme(t *testing.T) {
	a := newTestCard("Grill Greg", game.BBQDicktator, game.RarityCommon, 50)
	b := newTestCard("Golf Gary", game.GolfGonad, game.RarityCommon, 50)
	deck := &game.Deck{Name: "Mixed Bag", Entries: []game.DeckEntry{
		{Card: a, Count: 2},
		{Card: b, Count: 2},
	}}
	syn := CalculateSynergyBonus(deck)
	if syn.Multiplier != 1.0 || syn.Theme != "" {
		t.Fatalf("expected no synergy, got %+v", syn)
	}
}

func TestCalculateSynergyBonus_DuplicatesCount(t *testing.T) {
	card := newTestCard("Grill Greg", game.BBQDicktator, game.RarityCommon, 50)
	// one entry with count 5 is as thematic as five entries of one copy
	syn := CalculateSynergyBonus(newTestDeck("Copies", card, 5))
	if syn.Multiplier != 1.15 {
		t.Fatalf("expected duplicate copies to count, got %v", syn.Multiplier)
	}
}

func TestCheckSynergy_MythicAlliance(t *testing.T) {
	a := newTestCard("Mythic Mike", game.BBQDicktator, game.RarityMythic, 50)
	b := newTestCard("Mythic Marv", game.GolfGonad, game.RarityMythic, 50)
	syn := CheckSynergy(a, b)
	if !syn.HasSynergy || syn.SynergyBonus != 2.0 || syn.SynergyName != "Mythic Alliance" {
		t.Fatalf("unexpected synergy: %+v", syn)
	}
}

func TestCheckSynergy_LegendaryDuo(t *testing.T) {
	a := newTestCard("Legend Lee", game.NaptimeNinja, game.RarityLegendary, 50)
	b := newTestCard("Legend Lou", game.WalletWarden, game.RarityLegendary, 50)
	syn := CheckSynergy(a, b)
	if !syn.HasSynergy || syn.SynergyBonus != 1.5 || syn.SynergyName != "Legendary Duo" {
		t.Fatalf("unexpected synergy: %+v", syn)
	}
}

func TestCheckSynergy_PairTableIsSymmetric(t *testing.T) {
	a := newTestCard("Grill Greg", game.BBQDicktator, game.RarityCommon, 50)
	b := newTestCard("Lawn Larry", game.LawnEnforcer, game.RarityCommon, 50)
	s1 := CheckSynergy(a, b)
	s2 := CheckSynergy(b, a)
	if !s1.HasSynergy || s1.SynergyName != "Ultimate Cookout" {
		t.Fatalf("expected Ultimate Cookout, got %+v", s1)
	}
	if s1 != s2 {
		t.Fatalf("pair synergy not symmetric: %+v vs %+v", s1, s2)
	}
}

func TestCheckSynergy_MythicBeatsPairTable(t *testing.T) {
	// both mythic AND a listed pair: rarity alliance wins
	a := newTestCard("Mythic Mike", game.BBQDicktator, game.RarityMythic, 50)
	b := newTestCard("Mythic Larry", game.LawnEnforcer, game.RarityMythic, 50)
	if syn := CheckSynergy(a, b); syn.SynergyName != "Mythic Alliance" {
		t.Fatalf("expected rarity alliance to win, got %+v", syn)
	}
}

func TestCheckSynergy_NoMatch(t *testing.T) {
	a := newTestCard("Grill Greg", game.BBQDicktator, game.RarityCommon, 50)
	b := newTestCard("Wallet Walt", game.WalletWarden, game.RarityCommon, 50)
	syn := CheckSynergy(a, b)
	if syn.HasSynergy || syn.SynergyBonus != 1.0 {
		t.Fatalf("expected no synergy, got %+v", syn)
	}
}
