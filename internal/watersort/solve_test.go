package watersort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSolved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		state  *GameState
		solved bool
	}{
		{
			name:   "four full monochrome tubes",
			state:  board(4, Tube{1, 1, 1, 1}, Tube{2, 2, 2, 2}, Tube{3, 3, 3, 3}, Tube{4, 4, 4, 4}),
			solved: true,
		},
		{
			name:   "completed plus empty",
			state:  board(2, Tube{1, 1}, Tube{}),
			solved: true,
		},
		{
			name:   "monochrome but not full",
			state:  board(4, Tube{1, 1}, Tube{}),
			solved: false,
		},
		{
			name:   "mixed tube",
			state:  board(2, Tube{1, 2}, Tube{2, 1}),
			solved: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.solved, test.state.IsSolved())
		})
	}
}

func TestIsSolvable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		state    *GameState
		solvable bool
	}{
		{
			name:     "already solved",
			state:    board(2, Tube{1, 1}, Tube{}),
			solvable: true,
		},
		{
			name:     "one swap away",
			state:    board(2, Tube{1, 2}, Tube{2, 1}, Tube{}),
			solvable: true,
		},
		{
			name:     "interleaved with buffer",
			state:    board(3, Tube{1, 2, 1}, Tube{2, 1, 2}, Tube{}),
			solvable: true,
		},
		{
			name:     "no empty tube and no legal pour",
			state:    board(2, Tube{1, 2}, Tube{2, 1}),
			solvable: false,
		},
		{
			name:     "incomplete color set",
			state:    board(4, Tube{1, 1, 1}, Tube{}),
			solvable: false,
		},
		{
			name:     "overfull color set",
			state:    board(2, Tube{1, 1}, Tube{1, 2}, Tube{2}),
			solvable: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.solvable, test.state.IsSolvable())
		})
	}
}

func TestSolvedImpliesSolvable(t *testing.T) {
	t.Parallel()

	states := []*GameState{
		board(2, Tube{1, 1}, Tube{}),
		board(4, Tube{1, 1, 1, 1}, Tube{2, 2, 2, 2}, Tube{3, 3, 3, 3}, Tube{4, 4, 4, 4}),
		GameParams{TubeCount: 5, TubeHeight: 4}.solvedSeed(),
	}

	for _, s := range states {
		if assert.True(t, s.IsSolved()) {
			assert.True(t, s.IsSolvable())
		}
	}
}

func TestSolvableDoesNotMutate(t *testing.T) {
	t.Parallel()

	s := board(3, Tube{1, 2, 1}, Tube{2, 1, 2}, Tube{})
	before := cloneTubes(s.Tubes)

	s.IsSolvable()

	assert.Equal(t, before, s.Tubes)
}

func TestKeyDistinguishesTubeOrder(t *testing.T) {
	t.Parallel()

	a := board(2, Tube{1, 1}, Tube{2, 2}, Tube{})
	b := board(2, Tube{2, 2}, Tube{1, 1}, Tube{})

	assert.NotEqual(t, a.key(), b.key())
}

func TestKeyDistinguishesStackBoundaries(t *testing.T) {
	t.Parallel()

	a := board(2, Tube{1, 2}, Tube{})
	b := board(2, Tube{1}, Tube{2})

	assert.NotEqual(t, a.key(), b.key())
}
