package watersort

import "time"

const (
	scoreBase        = 1000.0
	completionWeight = 1.0
	timeDecayPerMin  = 0.05
	solvedMultiplier = 2.0
)

// Score derives the current score from move efficiency, completion
// progress and elapsed play time. It is a heuristic, but a deterministic
// one: the same ledger, board and elapsed time always score the same.
func (s GameState) Score(elapsed time.Duration) int {
	score := scoreBase

	if excess := len(s.Moves) - s.OptimalEstimate; excess > 0 && s.OptimalEstimate > 0 {
		score *= float64(s.OptimalEstimate) / float64(s.OptimalEstimate+excess)
	}

	if colors := s.ColorCount(); colors > 0 {
		fraction := float64(s.completedTubes()) / float64(colors)
		score *= 1 + completionWeight*fraction
	}

	score /= 1 + timeDecayPerMin*elapsed.Minutes()

	if s.IsSolved() {
		score *= solvedMultiplier
	}

	return int(score)
}
