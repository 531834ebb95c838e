package watersort

// visitedBudget bounds the breadth-first search. Exhausting it means
// "presumed unsolvable": the cost of a false negative is one generator
// retry, a false positive would hand the player a dead board.
const visitedBudget = 500_000

// IsSolvable reports whether some finite sequence of legal forward pours
// drives the board to a solved state. It explores the move graph
// breadth-first over canonicalized board keys, bounded by [visitedBudget].
func (s GameState) IsSolvable() bool {
	if s.IsSolved() {
		return true
	}

	// An incomplete or overfull color set can never sort into exactly one
	// tube per color. Cheaper to reject here than to let the search prove it.
	for _, count := range s.colorCounts() {
		if count != s.TubeHeight {
			return false
		}
	}

	start := &GameState{GameParams: s.GameParams, Tubes: cloneTubes(s.Tubes)}
	visited := map[string]struct{}{start.key(): {}}
	queue := []*GameState{start}

	for len(queue) > 0 {
		if len(visited) >= visitedBudget {
			Log.WithField("seed", s.Seed()).
				Warn("solvability search budget exhausted, presuming unsolvable")
			return false
		}

		cur := queue[0]
		queue = queue[1:]

		for from := range cur.Tubes {
			src := cur.Tubes[from]
			if src.Empty() || src.Completed(cur.TubeHeight) {
				// Completed tubes are terminal; un-sorting one never helps.
				continue
			}
			wholeRun := src.RunLength() == len(src)
			for to := range cur.Tubes {
				if !cur.canPour(from, to) {
					continue
				}
				if cur.Tubes[to].Empty() && wholeRun {
					// Relocating a uniform stack into another empty tube
					// makes no progress.
					continue
				}

				next := &GameState{
					GameParams: cur.GameParams,
					Tubes:      cloneTubes(cur.Tubes),
				}
				if _, err := next.pour(from, to); err != nil {
					continue
				}
				if next.IsSolved() {
					return true
				}

				key := next.key()
				if _, seen := visited[key]; seen {
					continue
				}
				visited[key] = struct{}{}
				queue = append(queue, next)
			}
		}
	}

	return false
}

func cloneTubes(tubes []Tube) []Tube {
	clone := make([]Tube, len(tubes))
	for i, t := range tubes {
		clone[i] = append(make(Tube, 0, len(t)), t...)
	}
	return clone
}
