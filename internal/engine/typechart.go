package engine

import (
	"fmt"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// Advantage multipliers returned by GetTypeAdvantage.
const (
	AdvantageMultiplier    = 1.2
	NeutralMultiplier      = 1.0
	DisadvantageMultiplier = 0.8
)

// typeChart is the canonical adjacency table: each dad type lists the
// exactly two types it is strong against. Disadvantages are derived by
// inversion, never stored, so "beats" and "loses to" cannot drift apart.
var typeChart = map[game.DadType][2]game.DadType{
	game.BBQDicktator:      {game.GolfGonad, game.GarageGremlin},
	game.GolfGonad:         {game.LawnEnforcer, game.CouchCommander},
	game.LawnEnforcer:      {game.GarageGremlin, game.FishingPhantom},
	game.GarageGremlin:     {game.CouchCommander, game.SportsShouter},
	game.CouchCommander:    {game.FishingPhantom, game.ToolTimeTitan},
	game.FishingPhantom:    {game.SportsShouter, game.ThermostatTyrant},
	game.SportsShouter:     {game.ToolTimeTitan, game.MinivanManiac},
	game.ToolTimeTitan:     {game.ThermostatTyrant, game.DadJokeDealer},
	game.ThermostatTyrant:  {game.MinivanManiac, game.FixItFelon},
	game.MinivanManiac:     {game.DadJokeDealer, game.NaptimeNinja},
	game.DadJokeDealer:     {game.FixItFelon, game.WalletWarden},
	game.FixItFelon:        {game.NaptimeNinja, game.CargoShortCaptain},
	game.NaptimeNinja:      {game.WalletWarden, game.BBQDicktator},
	game.WalletWarden:      {game.CargoShortCaptain, game.GolfGonad},
	game.CargoShortCaptain: {game.BBQDicktator, game.LawnEnforcer},
}

func beats(attacker, defender game.DadType) bool {
	adv, ok := typeChart[attacker]
	if !ok {
		return false
	}
	return adv[0] == defender || adv[1] == defender
}

// GetTypeAdvantage returns 1.2 when the attacker's type beats the
// defender's, 0.8 for the reverse, and 1.0 otherwise. Unknown types are
// treated as neutral rather than rejected.
func GetTypeAdvantage(attacker, defender game.DadType) float64 {
	if beats(attacker, defender) {
		return AdvantageMultiplier
	}
	if beats(defender, attacker) {
		return DisadvantageMultiplier
	}
	return NeutralMultiplier
}

// AdvantagesOf returns the two types t is strong against.
func AdvantagesOf(t game.DadType) []game.DadType {
	adv, ok := typeChart[t]
	if !ok {
		return nil
	}
	return []game.DadType{adv[0], adv[1]}
}

// DisadvantagesOf returns the types that are strong against t.
func DisadvantagesOf(t game.DadType) []game.DadType {
	var out []game.DadType
	for _, u := range game.AllDadTypes {
		if beats(u, t) {
			out = append(out, u)
		}
	}
	return out
}

// NeutralsOf returns the types with no relation to t in either
// direction, t itself excluded.
func NeutralsOf(t game.DadType) []game.DadType {
	var out []game.DadType
	for _, u := range game.AllDadTypes {
		if u == t {
			continue
		}
		if !beats(t, u) && !beats(u, t) {
			out = append(out, u)
		}
	}
	return out
}

// ValidateTypeChart checks the structural invariants of the advantage
// relation: every type has exactly 2 advantages, 2 disadvantages and 10
// neutrals, no type beats itself, and no two types beat each other.
// Call it once at startup; a failure is a programming error in the
// table above.
func ValidateTypeChart() error {
	for _, t := range game.AllDadTypes {
		if _, ok := typeChart[t]; !ok {
			return fmt.Errorf("type chart: missing entry for %s", t)
		}
	}
	if len(typeChart) != len(game.AllDadTypes) {
		return fmt.Errorf("type chart: has %d entries, want %d", len(typeChart), len(game.AllDadTypes))
	}
	for _, t := range game.AllDadTypes {
		if beats(t, t) {
			return fmt.Errorf("type chart: %s beats itself", t)
		}
		adv := AdvantagesOf(t)
		dis := DisadvantagesOf(t)
		neu := NeutralsOf(t)
		if len(adv) != 2 || adv[0] == adv[1] {
			return fmt.Errorf("type chart: %s must beat exactly 2 distinct types", t)
		}
		if len(dis) != 2 {
			return fmt.Errorf("type chart: %s must lose to exactly 2 types, has %d", t, len(dis))
		}
		if len(neu) != 10 {
			return fmt.Errorf("type chart: %s must be neutral to exactly 10 types, has %d", t, len(neu))
		}
		for _, u := range adv {
			if beats(u, t) {
				return fmt.Errorf("type chart: %s and %s beat each other", t, u)
			}
		}
	}
	return nil
}
