package engine

import (
	"fmt"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// MaxBattleTurns is the hard cap on simulated battle length.
const MaxBattleTurns = 10

// healthPoolFactor sizes a card's health pool from its power.
const healthPoolFactor = 3.0

type combatant struct {
	card       *game.Card
	pool       float64
	effects    []game.StatusEffect
	nextSkill  int
	totalDealt int
}

// SimulateBattle runs a bounded turn loop between two cards. The
// attacker acts and roles swap every turn; status effects modify stats
// while active and tick once per turn. The battle ends when a health
// pool is exhausted or the turn cap is reached, in which case the side
// with the larger remaining pool wins.
func SimulateBattle(cardA, cardB *game.Card, rng *SeededRandom) game.BattleOutcome {
	a := &combatant{card: cardA, pool: CalculatePower(cardA) * healthPoolFactor}
	b := &combatant{card: cardB, pool: CalculatePower(cardB) * healthPoolFactor}

	log := []string{fmt.Sprintf("=== BATTLE START: %s vs %s ===", cardA.Name, cardB.Name)}
	log = append(log,
		fmt.Sprintf("%s enters with a pool of %.0f", cardA.Name, a.pool),
		fmt.Sprintf("%s enters with a pool of %.0f", cardB.Name, b.pool),
	)

	attacker, defender := a, b
	turns := 0
	for turn := 1; turn <= MaxBattleTurns; turn++ {
		turns = turn
		atkStats := applyStatusEffects(attacker.card.Stats, attacker.effects)
		defStats := applyStatusEffects(defender.card.Stats, defender.effects)

		if n := len(attacker.card.Abilities); n > 0 {
			idx := attacker.nextSkill % n
			attacker.nextSkill++
			res := executeAbilityStats(attacker.card, defender.card, idx, atkStats, defStats, rng)
			defender.pool -= float64(res.Damage)
			attacker.totalDealt += res.Damage
			log = append(log, fmt.Sprintf("Turn %d: %s", turn, res.FlavorText))
			for _, e := range res.StatusEffects {
				defender.effects = AddStatusEffect(defender.effects, e)
				log = append(log, fmt.Sprintf("%s is %s! (%d turns)", defender.card.Name, e.Kind, e.Duration))
			}
		} else {
			cs := combatStatsFor(attacker.card.DadType)
			roll := RollDamage(damageBase(atkStats, defStats, cs.attack, cs.defense), rng)
			defender.pool -= float64(roll.Damage)
			attacker.totalDealt += roll.Damage
			log = append(log, fmt.Sprintf("Turn %d: %s attacks: %s for %d damage!", turn, attacker.card.Name, roll.Describe(), roll.Damage))
		}

		if defender.pool <= 0 {
			log = append(log, fmt.Sprintf("%s is out of steam!", defender.card.Name))
			log = append(log, fmt.Sprintf("%s wins after %d turns!", attacker.card.Name, turn))
			return game.BattleOutcome{Winner: attacker.card, Loser: defender.card, Turns: turn, Log: log}
		}

		attacker.effects = TickStatusEffects(attacker.effects)
		defender.effects = TickStatusEffects(defender.effects)
		attacker, defender = defender, attacker
	}

	// Turn cap: the side with more pool left takes it; a dead-even pool
	// falls back to raw power.
	winner, loser := a, b
	if b.pool > a.pool {
		winner, loser = b, a
	} else if b.pool == a.pool && CalculatePower(cardB) > CalculatePower(cardA) {
		winner, loser = b, a
	}
	log = append(log, fmt.Sprintf("Turn limit reached: %s wins on remaining stamina (%.0f vs %.0f)!", winner.card.Name, winner.pool, loser.pool))
	return game.BattleOutcome{Winner: winner.card, Loser: loser.card, Turns: turns, Log: log}
}
