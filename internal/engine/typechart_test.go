package engine

import (
	"testing"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

func TestValidateTypeChart(t *testing.T) {
	if err := ValidateTypeChart(); err != nil {
		t.Fatalf("type chart invalid: %v", err)
	}
}

func TestTypeChart_Cardinality(t *testing.T) {
	for _, dt := range game.AllDadTypes {
		if n := len(AdvantagesOf(dt)); n != 2 {
			t.Fatalf("%s has %d advantages, want 2", dt, n)
		}
		if n := len(DisadvantagesOf(dt)); n != 2 {
			t.Fatalf("%s has %d disadvantages, want 2", dt, n)
		}
		if n := len(NeutralsOf(dt)); n != 10 {
			t.Fatalf("%s has %d neutrals, want 10", dt, n)
		}
	}
}

func TestTypeChart_Symmetry(t *testing.T) {
	for _, a := range game.AllDadTypes {
		for _, b := range game.AllDadTypes {
			fwd := GetTypeAdvantage(a, b)
			rev := GetTypeAdvantage(b, a)
			if fwd == AdvantageMultiplier && rev != DisadvantageMultiplier {
				t.Fatalf("advantage(%s,%s)=1.2 but advantage(%s,%s)=%v", a, b, b, a, rev)
			}
			if fwd == DisadvantageMultiplier && rev != AdvantageMultiplier {
				t.Fatalf("advantage(%s,%s)=0.8 but advantage(%s,%s)=%v", a, b, b, a, rev)
			}
			if a == b && fwd != NeutralMultiplier {
				t.Fatalf("self advantage for %s: %v", a, fwd)
			}
		}
	}
}

func TestTypeChart_BBQBeatsGolf(t *testing.T) {
	if adv := GetTypeAdvantage(game.BBQDicktator, game.GolfGonad); adv != 1.2 {
		t.Fatalf("expected BBQ_DICKTATOR > GOLF_GONAD = 1.2, got %v", adv)
	}
	if adv := GetTypeAdvantage(game.GolfGonad, game.BBQDicktator); adv != 0.8 {
		t.Fatalf("expected GOLF_GONAD < BBQ_DICKTATOR = 0.8, got %v", adv)
	}
}

func TestTypeChart_UnknownTypeIsNeutral(t *testing.T) {
	if adv := GetTypeAdvantage(game.DadType("SOMETHING_ELSE"), game.BBQDicktator); adv != 1.0 {
		t.Fatalf("unknown type should be neutral, got %v", adv)
	}
	if adv := GetTypeAdvantage(game.BBQDicktator, game.DadType("SOMETHING_ELSE")); adv != 1.0 {
		t.Fatalf("unknown defender should be neutral, got %v", adv)
	}
}
