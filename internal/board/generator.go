package board

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
)

var Log *slog.Logger = slog.Default()

// DefaultMaxAttempts caps rejection sampling. Both built-in variants are
// accepted within a few dozen attempts on average.
const DefaultMaxAttempts = 100_000

// Layout is an accepted board together with the static port data of its
// variant.
type Layout struct {
	Variant  Variant
	Board    Board
	Ports    []Port
	Colors   []string
	Attempts int
}

// PortColor cycles through the colors if there are fewer colors than ports.
func (l Layout) PortColor(i int) string {
	if len(l.Colors) == 0 {
		return ""
	}
	return l.Colors[i%len(l.Colors)]
}

type Generator struct {
	configs     map[Variant]Config
	maxAttempts int

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Generator)

// WithMaxAttempts bounds the number of boards tried per call. Zero removes
// the bound.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		g.maxAttempts = n
	}
}

func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewGenerator validates every config up front and returns the first
// [ConfigurationError] it finds.
func NewGenerator(configs map[Variant]Config, opts ...Option) (*Generator, error) {
	g := &Generator{
		configs:     make(map[Variant]Config, len(configs)),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = NewRand()
	}
	if g.maxAttempts < 0 {
		return nil, fmt.Errorf("max attempts must not be negative, got %d", g.maxAttempts)
	}

	variants := make([]Variant, 0, len(configs))
	for v := range configs {
		variants = append(variants, v)
	}
	slices.Sort(variants)
	for _, v := range variants {
		c := configs[v]
		if err := c.Validate(v); err != nil {
			return nil, err
		}
		g.configs[v] = c.Clone()
	}
	return g, nil
}

// Seeded returns a generator over the same configs whose random source is
// derived from seed alone, so equal seeds give equal layouts.
func (g *Generator) Seeded(seed uint64) *Generator {
	return &Generator{
		configs:     g.configs,
		maxAttempts: g.maxAttempts,
		rnd:         rand.New(rand.NewPCG(seed, seed)),
	}
}

func (g *Generator) Config(v Variant) (Config, error) {
	c, ok := g.configs[v]
	if !ok {
		return Config{}, fmt.Errorf("%w %s", ErrUnknownVariant, v)
	}
	return c.Clone(), nil
}

func (g *Generator) Variants() []Variant {
	variants := make([]Variant, 0, len(g.configs))
	for v := range g.configs {
		variants = append(variants, v)
	}
	slices.Sort(variants)
	return variants
}

func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// Generate draws boards for v until one passes [Valid]. It gives up with
// [ErrGenerationNotFound] once the attempt budget is spent, or with the
// context error when ctx is done.
func (g *Generator) Generate(ctx context.Context, v Variant) (*Layout, error) {
	c, ok := g.configs[v]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownVariant, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for attempt := 1; g.maxAttempts == 0 || attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b, err := g.draw(c)
		if err != nil {
			var ce *ConfigurationError
			if errors.As(err, &ce) {
				ce.Variant = v
			}
			return nil, err
		}

		if violation, found := FirstViolation(b); found {
			Log.Debug("board rejected",
				slog.String("variant", v.String()),
				slog.Int("attempt", attempt),
				slog.Any("violation", violation),
			)
			continue
		}

		Log.Debug("board accepted",
			slog.String("variant", v.String()),
			slog.Int("attempts", attempt),
		)
		return &Layout{
			Variant:  v,
			Board:    b,
			Ports:    slices.Clone(c.Ports),
			Colors:   slices.Clone(c.Colors),
			Attempts: attempt,
		}, nil
	}

	return nil, fmt.Errorf(
		"%w for %s after %d attempts", ErrGenerationNotFound, v, g.maxAttempts,
	)
}

// draw builds one candidate board from freshly shuffled decks.
func (g *Generator) draw(c Config) (Board, error) {
	tiles := Shuffle(g.rnd, c.Tiles)
	numbers := Shuffle(g.rnd, c.Numbers)
	b, err := Populate(tiles, c.RowLengths)
	if err != nil {
		return nil, err
	}
	AssignNumbers(b, numbers)
	return b, nil
}
