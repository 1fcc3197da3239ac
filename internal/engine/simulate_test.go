package engine

import (
	"strings"
	"testing"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

func TestSimulateBattle_ProducesWinnerAndLog(t *testing.T) {
	a := newTestCard("Grill Greg", game.BBQDicktator, game.RarityRare, 70)
	b := newTestCard("Golf Gary", game.GolfGonad, game.RarityRare, 60)
	out := SimulateBattle(a, b, NewSeededRandom(12345))
	if out.Winner == nil || out.Loser == nil {
		t.Fatalf("expected winner and loser, got %+v", out)
	}
	if out.Winner == out.Loser {
		t.Fatalf("winner and loser are the same card")
	}
	if out.Turns < 1 || out.Turns > MaxBattleTurns {
		t.Fatalf("turns out of range: %d", out.Turns)
	}
	joined := strings.Join(out.Log, "\n")
	if !strings.Contains(joined, "BATTLE") {
		t.Fatalf("log missing BATTLE marker:\n%s", joined)
	}
	if !strings.Contains(joined, "wins") {
		t.Fatalf("log missing wins mention:\n%s", joined)
	}
}

func TestSimulateBattle_Deterministic(t *testing.T) {
	a := newTestCard("Grill Greg", game.BBQDicktator, game.RarityRare, 70)
	b := newTestCard("Golf Gary", game.GolfGonad, game.RarityRare, 60)
	out1 := SimulateBattle(a, b, NewSeededRandom(777))
	out2 := SimulateBattle(a, b, NewSeededRandom(777))
	if out1.Winner.Name != out2.Winner.Name || out1.Turns != out2.Turns {
		t.Fatalf("same seed diverged: %s/%d vs %s/%d", out1.Winner.Name, out1.Turns, out2.Winner.Name, out2.Turns)
	}
	if len(out1.Log) != len(out2.Log) {
		t.Fatalf("log lengths differ: %d vs %d", len(out1.Log), len(out2.Log))
	}
	for i := range out1.Log {
		if out1.Log[i] != out2.Log[i] {
			t.Fatalf("log line %d differs:\n%s\n%s", i, out1.Log[i], out2.Log[i])
		}
	}
}

func TestSimulateBattle_OverwhelmingFavorite(t *testing.T) {
	strong := newTestCard("Mythic Mike", game.ToolTimeTitan, game.RarityMythic, 90)
	weak := newTestCard("Rookie Rick", game.MinivanManiac, game.RarityCommon, 10)
	for seed := int64(0); seed < 50; seed++ {
		out := SimulateBattle(strong, weak, NewSeededRandom(seed))
		if out.Winner != strong {
			t.Fatalf("seed %d: expected Mythic Mike to win, got %s", seed, out.Winner.Name)
		}
	}
}

func TestSimulateBattle_NoAbilitiesStillResolves(t *testing.T) {
	a := newTestCard("Plain Pete", game.NaptimeNinja, game.RarityCommon, 55)
	a.Abilities = nil
	b := newTestCard("Plain Paul", game.WalletWarden, game.RarityCommon, 55)
	b.Abilities = nil
	out := SimulateBattle(a, b, NewSeededRandom(3))
	if out.Winner == nil {
		t.Fatalf("expected a winner even without abilities")
	}
	if out.Turns > MaxBattleTurns {
		t.Fatalf("turn cap exceeded: %d", out.Turns)
	}
}
