package engine

import (
	"fmt"
	"math"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

// closeMatchRatio is the band inside which neither card dominates: a
// matchup only stops being "close" once one side leads by more than 20%.
const closeMatchRatio = 1.2

// PredictWinner estimates the outcome of a card matchup without
// running the simulator. It is a cheap heuristic, not a proof.
func PredictWinner(cardA, cardB *game.Card) game.Prediction {
	powerA := CalculatePower(cardA)
	powerB := CalculatePower(cardB)

	winner := cardA
	stronger, weaker := powerA, powerB
	if powerB > powerA {
		winner = cardB
		stronger, weaker = powerB, powerA
	}
	ratio := 1.0
	if weaker > 0 {
		ratio = stronger / weaker
	}

	if syn := CheckSynergy(cardA, cardB); syn.HasSynergy {
		conf := 85 + int(math.Round((ratio-1)*20))
		if conf > 95 {
			conf = 95
		}
		return game.Prediction{
			Winner:     winner,
			Confidence: conf,
			Reason:     fmt.Sprintf("synergy in play: %s swings the matchup", syn.SynergyName),
		}
	}

	if ratio <= closeMatchRatio {
		conf := 50 + int(math.Round((ratio-1)*125))
		if conf > 75 {
			conf = 75
		}
		return game.Prediction{
			Winner:     winner,
			Confidence: conf,
			Reason:     fmt.Sprintf("close match: slight edge to %s", winner.Name),
		}
	}

	conf := 75 + int(math.Round((ratio-closeMatchRatio)*25))
	if conf > 95 {
		conf = 95
	}
	return game.Prediction{
		Winner:     winner,
		Confidence: conf,
		Reason:     fmt.Sprintf("%s overpowers the matchup with a %.2fx power ratio", winner.Name, ratio),
	}
}
