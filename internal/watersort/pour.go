package watersort

import "fmt"

type PourResult struct {
	Moved bool  `json:"moved"`
	Color Color `json:"color,omitempty"`
	Count int   `json:"count,omitempty"`
}

// canPour checks the forward legality rule: the destination has spare
// capacity and is either empty or topped with the source's run color.
// Pouring a tube into itself is never legal.
func (s GameState) canPour(from, to int) bool {
	if from == to {
		return false
	}
	src, dst := s.Tubes[from], s.Tubes[to]
	if src.Empty() || len(dst) >= s.TubeHeight {
		return false
	}
	return dst.Empty() || dst.Top() == src.Top()
}

// pour transfers min(runLength, capacity) segments from the top of one tube
// to the top of another. The board is only mutated on success.
func (s *GameState) pour(from, to int) (Move, error) {
	src := s.Tubes[from]
	if src.Empty() {
		return Move{}, ErrSourceEmpty
	}
	if !s.canPour(from, to) {
		return Move{}, ErrIllegalPour
	}

	color := src.Top()
	count := src.RunLength()
	if capacity := s.TubeHeight - len(s.Tubes[to]); count > capacity {
		count = capacity
	}

	s.Tubes[from] = src[:len(src)-count]
	for range count {
		s.Tubes[to] = append(s.Tubes[to], color)
	}

	return Move{From: from, To: to, Color: color, Count: count}, nil
}

// AttemptPour applies a player pour and records it in the move ledger.
// A rejected pour leaves both tubes untouched and returns
// [ErrSourceEmpty] or [ErrIllegalPour].
func (s *GameState) AttemptPour(from, to int) (*PourResult, error) {
	if !s.TubeInBounds(from) || !s.TubeInBounds(to) {
		return nil, InvalidParametersError{
			fmt.Sprintf("tube index out of bounds (from = %d, to = %d)", from, to),
		}
	}

	move, err := s.pour(from, to)
	if err != nil {
		return &PourResult{Moved: false}, err
	}

	s.Moves.record(move)
	s.Solved = s.IsSolved()

	return &PourResult{Moved: true, Color: move.Color, Count: move.Count}, nil
}

// reversePour moves exactly one segment with no color matching. Reverse
// pours intentionally break the sorted invariant; they exist only to
// scramble a solved board during generation.
func (s *GameState) reversePour(from, to int) error {
	if from == to || s.Tubes[from].Empty() || len(s.Tubes[to]) >= s.TubeHeight {
		return ErrIllegalPour
	}
	src := s.Tubes[from]
	color := src.Top()
	s.Tubes[from] = src[:len(src)-1]
	s.Tubes[to] = append(s.Tubes[to], color)
	return nil
}

// legalReversePours enumerates every (from, to) pair a reverse pour could
// use right now.
func (s GameState) legalReversePours() [][2]int {
	pairs := make([][2]int, 0, len(s.Tubes)*len(s.Tubes))
	for from := range s.Tubes {
		if s.Tubes[from].Empty() {
			continue
		}
		for to := range s.Tubes {
			if to == from || len(s.Tubes[to]) >= s.TubeHeight {
				continue
			}
			pairs = append(pairs, [2]int{from, to})
		}
	}
	return pairs
}
