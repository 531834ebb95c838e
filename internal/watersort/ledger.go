package watersort

// Move is an immutable record of one successful forward pour.
type Move struct {
	From  int   `json:"from"`
	To    int   `json:"to"`
	Color Color `json:"color"`
	Count int   `json:"count"`
}

// MoveLedger is the append/pop-only history of applied pours. It is the
// sole input to undo and to move-count scoring.
type MoveLedger []Move

func (l *MoveLedger) record(m Move) {
	*l = append(*l, m)
}

func (l *MoveLedger) popLast() (Move, bool) {
	if len(*l) == 0 {
		return Move{}, false
	}
	m := (*l)[len(*l)-1]
	*l = (*l)[:len(*l)-1]
	return m, true
}

func (l *MoveLedger) clear() {
	*l = (*l)[:0]
}

// Undo pops the most recent ledger entry and performs the exact inverse
// transfer, restoring the prior segment ordering. Returns false on an
// empty ledger; that is a no-op, not an error.
func (s *GameState) Undo() bool {
	move, ok := s.Moves.popLast()
	if !ok {
		return false
	}

	src := s.Tubes[move.To]
	s.Tubes[move.To] = src[:len(src)-move.Count]
	for range move.Count {
		s.Tubes[move.From] = append(s.Tubes[move.From], move.Color)
	}

	s.Solved = s.IsSolved()
	return true
}
