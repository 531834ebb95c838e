package watersort

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoIsExactInverse(t *testing.T) {
	t.Parallel()

	s := board(4, Tube{1, 2, 2}, Tube{2}, Tube{1, 1, 1})
	before := cloneTubes(s.Tubes)

	_, err := s.AttemptPour(0, 1)
	require.NoError(t, err)
	require.NotEqual(t, before, s.Tubes)

	require.True(t, s.Undo())

	assert.Equal(t, before, s.Tubes, "undo must restore segments in order")
	assert.Empty(t, s.Moves)
}

func TestUndoEmptyLedger(t *testing.T) {
	t.Parallel()

	s := board(4, Tube{1}, Tube{})
	before := cloneTubes(s.Tubes)

	assert.False(t, s.Undo())
	assert.Equal(t, before, s.Tubes)
}

func TestUndoUnwindsWholeGame(t *testing.T) {
	t.Parallel()

	params := GameParams{TubeCount: 5, TubeHeight: 4}
	r := rand.New(rand.NewPCG(3, 4))
	s, err := NewGame(&params, r)
	require.NoError(t, err)

	before := cloneTubes(s.Tubes)

	// Walk a handful of legal pours, then unwind them all.
	applied := 0
	for range 10 {
		moved := false
		for from := range s.Tubes {
			for to := range s.Tubes {
				if s.canPour(from, to) {
					_, err := s.AttemptPour(from, to)
					require.NoError(t, err)
					applied++
					moved = true
					break
				}
			}
			if moved {
				break
			}
		}
		if !moved {
			break
		}
	}
	require.Positive(t, applied)
	require.Len(t, s.Moves, applied)

	for range applied {
		require.True(t, s.Undo())
	}

	assert.Equal(t, before, s.Tubes)
	assert.False(t, s.Undo())
}

func TestUndoRestoresSolvedFlag(t *testing.T) {
	t.Parallel()

	s := board(2, Tube{1}, Tube{1})

	_, err := s.AttemptPour(0, 1)
	require.NoError(t, err)
	require.True(t, s.Solved)

	require.True(t, s.Undo())
	assert.False(t, s.Solved)
}

func TestLedgerClear(t *testing.T) {
	t.Parallel()

	l := MoveLedger{{From: 0, To: 1, Color: 1, Count: 1}}
	l.clear()
	assert.Empty(t, l)

	_, ok := l.popLast()
	assert.False(t, ok)
}
