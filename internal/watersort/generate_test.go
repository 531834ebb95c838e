package watersort

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestNewGameRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "one tube", params: GameParams{TubeCount: 1, TubeHeight: 4}},
		{name: "zero tubes", params: GameParams{TubeCount: 0, TubeHeight: 4}},
		{name: "zero height", params: GameParams{TubeCount: 4, TubeHeight: 0}},
		{name: "negative height", params: GameParams{TubeCount: 4, TubeHeight: -1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			_, err := NewGame(&test.params, r)
			var invalid InvalidParametersError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestNewGameStandardBoard(t *testing.T) {
	t.Parallel()

	params := GameParams{TubeCount: 4, TubeHeight: 4}
	r := rand.New(rand.NewPCG(1, 2))

	game, err := NewGame(&params, r)
	require.NoError(t, err)

	assert.True(t, game.IsSolvable())
	assert.False(t, game.IsSolved())
	assert.Empty(t, game.Moves)
	assert.Positive(t, game.OptimalEstimate)
}

func TestNewGameColorCounts(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "2x1", params: GameParams{TubeCount: 2, TubeHeight: 1}},
		{name: "3x2", params: GameParams{TubeCount: 3, TubeHeight: 2}},
		{name: "4x4", params: GameParams{TubeCount: 4, TubeHeight: 4}},
		{name: "5x4", params: GameParams{TubeCount: 5, TubeHeight: 4}},
		{name: "6x4", params: GameParams{TubeCount: 6, TubeHeight: 4}},
		{name: "6x6", params: GameParams{TubeCount: 6, TubeHeight: 6}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 10 {
				game, err := NewGame(&test.params, r)
				require.NoError(t, err)

				assert.True(t, game.IsSolvable(), "generated board must be solvable")
				assert.Len(t, game.Tubes, test.params.TubeCount)

				counts := game.colorCounts()
				assert.Len(t, counts, test.params.ColorCount())
				for color, count := range counts {
					assert.Equal(t, test.params.TubeHeight, count,
						"color %d must fill exactly one tube", color)
				}
				for _, tube := range game.Tubes {
					assert.LessOrEqual(t, len(tube), test.params.TubeHeight)
				}
			}
		})
	}
}

func TestSolvedSeed(t *testing.T) {
	t.Parallel()

	seed := GameParams{TubeCount: 5, TubeHeight: 4}.solvedSeed()

	assert.True(t, seed.IsSolved())
	assert.Len(t, seed.Tubes, 5)
	assert.Empty(t, seed.Tubes[4])
	for i := range 4 {
		assert.True(t, seed.Tubes[i].Completed(4))
	}
}

func TestScrambleKeepsSegmentCount(t *testing.T) {
	t.Parallel()

	params := GameParams{TubeCount: 5, TubeHeight: 4}
	state := params.solvedSeed()
	total := state.segmentCount()

	state.scramble(params.TubeCount*params.TubeHeight*2, rand.New(rand.NewPCG(7, 7)))

	assert.Equal(t, total, state.segmentCount())
	for _, tube := range state.Tubes {
		assert.LessOrEqual(t, len(tube), params.TubeHeight)
	}
}

func TestEstimateMoves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state *GameState
		want  int
	}{
		{name: "solved", state: board(2, Tube{1, 1}, Tube{}), want: 0},
		{name: "one break", state: board(2, Tube{1, 2}, Tube{2, 1}), want: 2},
		{name: "alternating", state: board(4, Tube{1, 2, 1, 2}, Tube{}), want: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, test.state.estimateMoves())
		})
	}
}
