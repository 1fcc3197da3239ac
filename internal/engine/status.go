package engine

import "github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"

type statModifier struct {
	stat game.Stat
	pct  float64
}

// statusModifiers is the fixed per-kind stat modifier table. A kind
// absent here (or an unrecognized kind) modifies nothing; drunk affects
// accuracy elsewhere, not stats.
var statusModifiers = map[game.StatusKind][]statModifier{
	game.StatusGrilled: {
		{game.StatGrilling, -0.20},
		{game.StatHandiness, -0.20},
	},
	game.StatusLectured: {
		{game.StatDadJokes, -0.20},
		{game.StatSportsTrivia, -0.20},
	},
	game.StatusWired: {
		{game.StatGrilling, 0.30},
		{game.StatDadJokes, 0.30},
		{game.StatHandiness, 0.30},
		{game.StatLawnCare, 0.30},
		{game.StatThermostat, 0.30},
		{game.StatNapping, 0.30},
		{game.StatFrugality, 0.30},
		{game.StatSportsTrivia, 0.30},
	},
	game.StatusDrunk: nil,
}

// ApplyStatusEffectsToCard derives a modified stat snapshot from the
// card's base stats. Each active effect's percentage modifier is scaled
// by its stack count; the card itself is never mutated and the result
// is clamped to [0, 100].
func ApplyStatusEffectsToCard(card *game.Card, effects []game.StatusEffect) game.StatSet {
	return applyStatusEffects(card.Stats, effects)
}

func applyStatusEffects(stats game.StatSet, effects []game.StatusEffect) game.StatSet {
	out := stats
	for _, e := range effects {
		if e.Duration <= 0 {
			continue
		}
		stacks := e.Stacks
		if stacks < 1 {
			stacks = 1
		}
		if stacks > game.MaxStatusStacks {
			stacks = game.MaxStatusStacks
		}
		for _, m := range statusModifiers[e.Kind] {
			v := out.Get(m.stat) * (1 + m.pct*float64(stacks))
			out.Set(m.stat, v)
		}
	}
	return out.Clamped()
}

// TickStatusEffects decrements every effect's duration by one turn and
// drops effects that have expired. The input slice is not modified.
func TickStatusEffects(effects []game.StatusEffect) []game.StatusEffect {
	out := make([]game.StatusEffect, 0, len(effects))
	for _, e := range effects {
		e.Duration--
		if e.Duration <= 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

// AddStatusEffect merges a new effect into the active set. Re-applying
// an existing kind increments its stacks up to the cap and refreshes
// the duration to the new effect's duration; durations never add up.
// The input slice is not modified.
func AddStatusEffect(effects []game.StatusEffect, newEffect game.StatusEffect) []game.StatusEffect {
	if newEffect.Stacks < 1 {
		newEffect.Stacks = 1
	}
	out := make([]game.StatusEffect, len(effects))
	copy(out, effects)
	for i := range out {
		if out[i].Kind == newEffect.Kind {
			if out[i].Stacks < game.MaxStatusStacks {
				out[i].Stacks++
			}
			out[i].Duration = newEffect.Duration
			return out
		}
	}
	return append(out, newEffect)
}
