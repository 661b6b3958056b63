package board

import (
	"fmt"
	"slices"
	"strings"
)

type Variant int8

const (
	Regular Variant = iota
	Expansion
)

func Variants() []Variant {
	return []Variant{Regular, Expansion}
}

func (v Variant) String() string {
	switch v {
	case Regular:
		return "Regular"
	case Expansion:
		return "Expansion"
	default:
		return fmt.Sprintf("Variant(%d)", int8(v))
	}
}

func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownVariant, s)
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(v.String())), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	p, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

const (
	MinNumber = 2
	MaxNumber = 12
)

// Port is a render position next to the board edge. Row and Col are
// fractional and do not address a tile.
type Port struct {
	Row float64 `json:"row" yaml:"row"`
	Col float64 `json:"col" yaml:"col"`
}

// Config is the static data of one variant. Tiles and Numbers are decks:
// they are shuffled into fresh copies on every generation attempt and never
// modified in place.
type Config struct {
	Tiles      []ResourceKind
	Numbers    []int
	RowLengths []int
	Ports      []Port
	Colors     []string
}

func (c Config) Clone() Config {
	return Config{
		Tiles:      slices.Clone(c.Tiles),
		Numbers:    slices.Clone(c.Numbers),
		RowLengths: slices.Clone(c.RowLengths),
		Ports:      slices.Clone(c.Ports),
		Colors:     slices.Clone(c.Colors),
	}
}

func (c Config) Deserts() (n int) {
	for _, k := range c.Tiles {
		if k == Desert {
			n++
		}
	}
	return
}

// PortColor returns the color of port i, cycling when fewer colors than
// ports are configured.
func (c Config) PortColor(i int) string {
	if len(c.Colors) == 0 {
		return ""
	}
	return c.Colors[i%len(c.Colors)]
}

// Validate checks the invariants generation relies on. The variant is only
// used to label the error.
func (c Config) Validate(v Variant) error {
	fail := func(format string, args ...any) error {
		return &ConfigurationError{Variant: v, Reason: fmt.Sprintf(format, args...)}
	}

	if len(c.Tiles) == 0 {
		return fail("no tiles")
	}
	for _, k := range c.Tiles {
		if k < Desert || k > Ore {
			return fail("unknown resource kind %d", k)
		}
	}

	sum := 0
	for _, l := range c.RowLengths {
		if l <= 0 {
			return fail("row length %d is not positive", l)
		}
		sum += l
	}
	if sum != len(c.Tiles) {
		return fail("row lengths sum to %d, want %d tiles", sum, len(c.Tiles))
	}

	if want := len(c.Tiles) - c.Deserts(); len(c.Numbers) != want {
		return fail("%d number tokens for %d non-desert tiles", len(c.Numbers), want)
	}
	for _, n := range c.Numbers {
		if n < MinNumber || n > MaxNumber {
			return fail("number %d out of range %d..%d", n, MinNumber, MaxNumber)
		}
	}

	if len(c.Ports) > 0 && len(c.Colors) == 0 {
		return fail("%d ports but no colors", len(c.Ports))
	}
	return nil
}
