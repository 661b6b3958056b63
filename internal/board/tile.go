package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Tile is a resource hex with an optional dice number. Number 0 means the
// tile carries no number, which is only the case for deserts on a complete
// board.
type Tile struct {
	Kind   ResourceKind
	Number int
}

// Hot reports whether the tile carries one of the two most likely rolls.
func (t Tile) Hot() bool {
	return t.Number == 6 || t.Number == 8
}

// String returns the renderer cell descriptor: "desert" or "wheat-8".
func (t Tile) String() string {
	if t.Number == 0 {
		return t.Kind.String()
	}
	return t.Kind.String() + "-" + strconv.Itoa(t.Number)
}

func ParseTile(s string) (Tile, error) {
	name, num, found := strings.Cut(s, "-")
	kind, err := ParseResourceKind(name)
	if err != nil {
		return Tile{}, err
	}
	if !found {
		return Tile{Kind: kind}, nil
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return Tile{}, fmt.Errorf("invalid number in tile %q: %w", s, err)
	}
	if n < MinNumber || n > MaxNumber {
		return Tile{}, fmt.Errorf("number %d in tile %q is out of range", n, s)
	}
	return Tile{Kind: kind, Number: n}, nil
}

func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tile) UnmarshalText(text []byte) error {
	v, err := ParseTile(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
