package watersort

import (
	"bytes"
	"encoding/gob"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Color identifies one liquid. Colors are small positive integers; zero is
// never stored in a tube.
type Color uint8

// Tube is an ordered stack of colored unit segments, index 0 at the bottom.
type Tube []Color

func (t Tube) Empty() bool {
	return len(t) == 0
}

func (t Tube) Top() Color {
	return t[len(t)-1]
}

// RunLength is the length of the uniform-colored suffix of the tube, i.e.
// how many segments a single pour could lift off the top.
func (t Tube) RunLength() int {
	if len(t) == 0 {
		return 0
	}
	top := t.Top()
	n := 0
	for i := len(t) - 1; i >= 0 && t[i] == top; i-- {
		n++
	}
	return n
}

func (t Tube) Completed(maxHeight int) bool {
	if len(t) != maxHeight {
		return false
	}
	for _, c := range t[1:] {
		if c != t[0] {
			return false
		}
	}
	return true
}

type GameState struct {
	GameParams
	Tubes           []Tube
	Moves           MoveLedger
	OptimalEstimate int
	Solved, Dead    bool
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, err
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s GameState) TubeInBounds(i int) bool {
	return 0 <= i && i < len(s.Tubes)
}

// IsSolved reports whether every tube is either empty or completed.
func (s GameState) IsSolved() bool {
	for _, t := range s.Tubes {
		if !t.Empty() && !t.Completed(s.TubeHeight) {
			return false
		}
	}
	return true
}

func (s GameState) completedTubes() int {
	n := 0
	for _, t := range s.Tubes {
		if t.Completed(s.TubeHeight) {
			n++
		}
	}
	return n
}

func (s GameState) segmentCount() int {
	n := 0
	for _, t := range s.Tubes {
		n += len(t)
	}
	return n
}

// colorCounts tallies total segments per color across the whole board.
func (s GameState) colorCounts() map[Color]int {
	counts := make(map[Color]int)
	for _, t := range s.Tubes {
		for _, c := range t {
			counts[c]++
		}
	}
	return counts
}

// key serializes the board for visited-state deduplication. Tubes are taken
// in index order: two boards that permute tube order are distinct on
// purpose, tube identity matters to the player.
func (s GameState) key() string {
	var b strings.Builder
	b.Grow(len(s.Tubes) * (s.TubeHeight + 1))
	for _, t := range s.Tubes {
		for _, c := range t {
			b.WriteByte(byte(c))
		}
		b.WriteByte(0)
	}
	return b.String()
}
