package watersort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRoundTrip(t *testing.T) {
	t.Parallel()

	params := GameParams{TubeCount: 6, TubeHeight: 4}

	parsed, err := ParseSeed(params.Seed())
	require.NoError(t, err)
	assert.Equal(t, params, *parsed)
}

func TestParseSeedInvalid(t *testing.T) {
	t.Parallel()

	for _, seed := range []string{"", "6", "a:b", "6:"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, "seed %q should not parse", seed)
	}
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, GameParams{TubeCount: 2, TubeHeight: 1}.Validate())
	assert.Error(t, GameParams{TubeCount: 1, TubeHeight: 4}.Validate())
	assert.Error(t, GameParams{TubeCount: 4, TubeHeight: 0}.Validate())
}
