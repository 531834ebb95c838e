package watersort

import (
	"fmt"
	"strings"
)

type GameParams struct {
	TubeCount  int
	TubeHeight int
}

func (p GameParams) Unpack() (tc int, th int) {
	return p.TubeCount, p.TubeHeight
}

// ColorCount returns the number of distinct colors a fresh board holds.
// One tube is always left empty to give pours room to happen.
func (p GameParams) ColorCount() int {
	return p.TubeCount - 1
}

func (p GameParams) Validate() error {
	if p.TubeCount < 2 {
		return InvalidParametersError{
			fmt.Sprintf("tube count must be at least 2, got %d", p.TubeCount),
		}
	}
	if p.TubeHeight < 1 {
		return InvalidParametersError{
			fmt.Sprintf("tube height must be at least 1, got %d", p.TubeHeight),
		}
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d", p.TubeCount, p.TubeHeight)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d", &p.TubeCount, &p.TubeHeight)
	if n != 2 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}
