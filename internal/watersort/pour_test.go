package watersort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board(height int, tubes ...Tube) *GameState {
	return &GameState{
		GameParams: GameParams{TubeCount: len(tubes), TubeHeight: height},
		Tubes:      tubes,
	}
}

func TestPourSingleSegmentOfRun(t *testing.T) {
	t.Parallel()

	s := board(4, Tube{1, 1, 2}, Tube{})

	res, err := s.AttemptPour(0, 1)
	require.NoError(t, err)

	assert.True(t, res.Moved)
	assert.Equal(t, Color(2), res.Color)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, Tube{1, 1}, s.Tubes[0])
	assert.Equal(t, Tube{2}, s.Tubes[1])
}

func TestPourRunBoundedByCapacity(t *testing.T) {
	t.Parallel()

	s := board(2, Tube{3, 3, 3}, Tube{3})

	res, err := s.AttemptPour(0, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Count)
	assert.Equal(t, Tube{3, 3}, s.Tubes[0])
	assert.Equal(t, Tube{3, 3}, s.Tubes[1])
	assert.True(t, s.Tubes[1].Completed(2))
}

func TestPourRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		state    *GameState
		from, to int
		err      error
	}{
		{
			name:  "color mismatch",
			state: board(4, Tube{2}, Tube{5}),
			from:  0, to: 1,
			err: ErrIllegalPour,
		},
		{
			name:  "empty source",
			state: board(4, Tube{}, Tube{1}),
			from:  0, to: 1,
			err: ErrSourceEmpty,
		},
		{
			name:  "full destination",
			state: board(2, Tube{1, 1}, Tube{1, 1}),
			from:  0, to: 1,
			err: ErrIllegalPour,
		},
		{
			name:  "same tube",
			state: board(4, Tube{1}, Tube{}),
			from:  0, to: 0,
			err: ErrIllegalPour,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			before := cloneTubes(test.state.Tubes)

			res, err := test.state.AttemptPour(test.from, test.to)
			require.ErrorIs(t, err, test.err)

			assert.False(t, res.Moved)
			assert.Equal(t, before, test.state.Tubes, "rejected pour must not mutate the board")
			assert.Empty(t, test.state.Moves)
		})
	}
}

func TestPourOutOfBounds(t *testing.T) {
	t.Parallel()

	s := board(4, Tube{1}, Tube{})

	var invalid InvalidParametersError
	_, err := s.AttemptPour(0, 5)
	require.ErrorAs(t, err, &invalid)
	_, err = s.AttemptPour(-1, 1)
	require.ErrorAs(t, err, &invalid)
}

func TestPourConservesSegments(t *testing.T) {
	t.Parallel()

	s := board(4, Tube{1, 2, 2}, Tube{2}, Tube{1, 1})
	total := s.segmentCount()

	_, err := s.AttemptPour(0, 1)
	require.NoError(t, err)
	assert.Equal(t, total, s.segmentCount())

	_, err = s.AttemptPour(0, 2)
	require.NoError(t, err)
	assert.Equal(t, total, s.segmentCount())
}

func TestPourRecordsLedger(t *testing.T) {
	t.Parallel()

	s := board(4, Tube{1, 2, 2}, Tube{2})

	_, err := s.AttemptPour(0, 1)
	require.NoError(t, err)

	require.Len(t, s.Moves, 1)
	assert.Equal(t, Move{From: 0, To: 1, Color: 2, Count: 2}, s.Moves[0])
}
