package engine

import (
	"fmt"
	"math"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// Damage roll tuning.
const (
	glancingChance     = 0.10
	criticalChance     = 0.05
	glancingMultiplier = 0.5
	criticalMultiplier = 1.5
	varianceMin        = 0.8
	varianceMax        = 1.2
	minDamageBase      = 5.0
	minDamage          = 1
)

// DamageOutcome identifies which branch a damage roll took.
type DamageOutcome int

const (
	OutcomeNormal DamageOutcome = iota
	OutcomeCritical
	OutcomeGlancing
)

func (o DamageOutcome) String() string {
	switch o {
	case OutcomeCritical:
		return "CRITICAL"
	case OutcomeGlancing:
		return "Glancing"
	default:
		return "Normal"
	}
}

// DamageRoll records one attack's damage and how it was rolled; battle
// logs and the UI need the branch and variance, not just the number.
type DamageRoll struct {
	Damage      int
	Outcome     DamageOutcome
	Multiplier  float64
	VariancePct int
}

// Describe renders the roll for battle logs.
func (dr DamageRoll) Describe() string {
	switch dr.Outcome {
	case OutcomeCritical:
		return "CRITICAL ×1.5"
	case OutcomeGlancing:
		return "Glancing ×0.5"
	default:
		return fmt.Sprintf("Normal (variance %d%%)", dr.VariancePct)
	}
}

// RollDamage turns a damage base into a final amount. Glancing is
// checked first and is mutually exclusive with a critical; a normal hit
// draws a uniform variance factor instead. Damage never drops below 1.
func RollDamage(base float64, rng *SeededRandom) DamageRoll {
	var mult float64
	var outcome DamageOutcome
	switch {
	case rng.Next() < glancingChance:
		outcome = OutcomeGlancing
		mult = glancingMultiplier
	case rng.Next() < criticalChance:
		outcome = OutcomeCritical
		mult = criticalMultiplier
	default:
		outcome = OutcomeNormal
		mult = rng.NextRange(varianceMin, varianceMax)
	}
	dmg := int(math.Round(base * mult))
	if dmg < minDamage {
		dmg = minDamage
	}
	return DamageRoll{
		Damage:      dmg,
		Outcome:     outcome,
		Multiplier:  mult,
		VariancePct: int(math.Round(mult * 100)),
	}
}

// damageBase computes the pre-roll damage base from a stat matchup:
// attacker stat minus half the defender stat, floored at 5.
func damageBase(attacker, defender game.StatSet, atkStat, defStat game.Stat) float64 {
	base := attacker.Get(atkStat) - defender.Get(defStat)*0.5
	if base < minDamageBase {
		base = minDamageBase
	}
	return base
}

// CalculateDamage computes one attack's damage between two cards using
// the named stat matchup and the caller's generator.
func CalculateDamage(attacker, defender *game.Card, atkStat, defStat game.Stat, rng *SeededRandom) int {
	return RollDamage(damageBase(attacker.Stats, defender.Stats, atkStat, defStat), rng).Damage
}
