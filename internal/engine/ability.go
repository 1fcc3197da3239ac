package engine

import (
	"fmt"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// combatStats gives every dad type its attack stat and the defender
// stat that resists it.
type combatStats struct {
	attack  game.Stat
	defense game.Stat
}

var typeCombatStats = map[game.DadType]combatStats{
	game.BBQDicktator:      {game.StatGrilling, game.StatFrugality},
	game.GolfGonad:         {game.StatSportsTrivia, game.StatNapping},
	game.LawnEnforcer:      {game.StatLawnCare, game.StatHandiness},
	game.GarageGremlin:     {game.StatHandiness, game.StatThermostat},
	game.CouchCommander:    {game.StatNapping, game.StatSportsTrivia},
	game.FishingPhantom:    {game.StatNapping, game.StatGrilling},
	game.SportsShouter:     {game.StatSportsTrivia, game.StatDadJokes},
	game.ToolTimeTitan:     {game.StatHandiness, game.StatLawnCare},
	game.ThermostatTyrant:  {game.StatThermostat, game.StatFrugality},
	game.MinivanManiac:     {game.StatDadJokes, game.StatNapping},
	game.DadJokeDealer:     {game.StatDadJokes, game.StatSportsTrivia},
	game.FixItFelon:        {game.StatHandiness, game.StatGrilling},
	game.NaptimeNinja:      {game.StatNapping, game.StatThermostat},
	game.WalletWarden:      {game.StatFrugality, game.StatDadJokes},
	game.CargoShortCaptain: {game.StatLawnCare, game.StatGrilling},
}

func combatStatsFor(t game.DadType) combatStats {
	if cs, ok := typeCombatStats[t]; ok {
		return cs
	}
	return combatStats{game.StatGrilling, game.StatNapping}
}

// statusRider is the chance for a dad type's abilities to attach a
// status effect to the target.
type statusRider struct {
	kind     game.StatusKind
	chance   float64
	duration int
}

var typeStatusRiders = map[game.DadType]statusRider{
	game.BBQDicktator:   {game.StatusGrilled, 0.30, 2},
	game.DadJokeDealer:  {game.StatusLectured, 0.30, 2},
	game.SportsShouter:  {game.StatusLectured, 0.25, 2},
	game.FishingPhantom: {game.StatusDrunk, 0.25, 2},
}

// ExecuteAbility resolves one card ability against a target. A missing
// ability index is an expected edge case and reports a failed result
// instead of an error.
func ExecuteAbility(card, target *game.Card, abilityIndex int, rng *SeededRandom) game.AbilityResult {
	return executeAbilityStats(card, target, abilityIndex, card.Stats, target.Stats, rng)
}

// executeAbilityStats is the stat-snapshot variant used by the battle
// simulator, where status effects have already modified both sides.
func executeAbilityStats(card, target *game.Card, abilityIndex int, attackerStats, defenderStats game.StatSet, rng *SeededRandom) game.AbilityResult {
	if abilityIndex < 0 || abilityIndex >= len(card.Abilities) {
		return game.AbilityResult{Success: false, Damage: 0}
	}
	ability := card.Abilities[abilityIndex]
	cs := combatStatsFor(card.DadType)
	roll := RollDamage(damageBase(attackerStats, defenderStats, cs.attack, cs.defense), rng)

	result := game.AbilityResult{
		Success:    true,
		Damage:     roll.Damage,
		FlavorText: fmt.Sprintf("%s uses %s: %s for %d damage!", card.Name, ability.Name, roll.Describe(), roll.Damage),
	}
	if rider, ok := typeStatusRiders[card.DadType]; ok {
		if rng.Next() < rider.chance {
			result.StatusEffects = append(result.StatusEffects, game.StatusEffect{
				Kind:     rider.kind,
				Duration: rider.duration,
				Stacks:   1,
			})
		}
	}
	return result
}
