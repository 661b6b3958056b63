package board

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	g, err := NewGenerator(DefaultConfigs(), opts...)
	require.NoError(t, err)
	return g
}

func requireWellFormed(t *testing.T, c Config, l *Layout) {
	t.Helper()

	assert.Equal(t, c.RowLengths, l.Board.RowLengths())
	assert.Equal(t, len(c.Tiles), l.Board.Len())

	wantKinds := make(map[ResourceKind]int)
	for _, k := range c.Tiles {
		wantKinds[k]++
	}
	assert.Equal(t, wantKinds, l.Board.Kinds())

	assert.Equal(t, slices.Sorted(slices.Values(c.Numbers)), l.Board.Numbers())
	for _, row := range l.Board {
		for _, tile := range row {
			if tile.Kind == Desert {
				assert.Zero(t, tile.Number, "desert with a number")
			} else {
				assert.NotZero(t, tile.Number, "%s without a number", tile.Kind)
			}
		}
	}

	_, found := FirstViolation(l.Board)
	assert.False(t, found)
	assert.Equal(t, c.Ports, l.Ports)
	assert.Equal(t, c.Colors, l.Colors)
	assert.GreaterOrEqual(t, l.Attempts, 1)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	rounds := 200
	if testing.Short() {
		rounds = 10
	}

	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			t.Parallel()
			g := newTestGenerator(t)
			c, err := g.Config(v)
			require.NoError(t, err)
			for range rounds {
				l, err := g.Generate(context.Background(), v)
				require.NoError(t, err)
				assert.Equal(t, v, l.Variant)
				requireWellFormed(t, c, l)
			}
		})
	}
}

func TestGenerateRegularScenario(t *testing.T) {
	g := newTestGenerator(t)
	l, err := g.Generate(context.Background(), Regular)
	require.NoError(t, err)

	assert.Equal(t, 19, l.Board.Len())
	assert.Equal(t, 1, l.Board.Kinds()[Desert])
	assert.Equal(t,
		[]int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12},
		l.Board.Numbers(),
	)
	assert.Equal(t, []int{3, 4, 5, 4, 3}, l.Board.RowLengths())
	assert.True(t, Valid(l.Board))
	assert.Len(t, l.Ports, 18)
	assert.Len(t, l.Colors, 18)
}

func TestGenerateExpansionScenario(t *testing.T) {
	g := newTestGenerator(t)
	l, err := g.Generate(context.Background(), Expansion)
	require.NoError(t, err)

	assert.Equal(t, 30, l.Board.Len())
	assert.Equal(t, 2, l.Board.Kinds()[Desert])
	assert.Equal(t,
		[]int{
			2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 6,
			8, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11, 12, 12,
		},
		l.Board.Numbers(),
	)
	assert.Equal(t, []int{3, 4, 5, 6, 5, 4, 3}, l.Board.RowLengths())
	assert.True(t, Valid(l.Board))
	assert.Len(t, l.Ports, 22)
	assert.Len(t, l.Colors, 22)
}

func TestGenerateStaticDataUntouched(t *testing.T) {
	g := newTestGenerator(t)
	want, err := DefaultConfig(Regular)
	require.NoError(t, err)

	first, err := g.Generate(context.Background(), Regular)
	require.NoError(t, err)
	first.Ports[0] = Port{Row: 9, Col: 9}
	first.Colors[0] = "Pink"

	for range 20 {
		l, err := g.Generate(context.Background(), Regular)
		require.NoError(t, err)
		assert.Equal(t, want.Ports, l.Ports)
		assert.Equal(t, want.Colors, l.Colors)
	}
}

func TestGenerateSeeded(t *testing.T) {
	g := newTestGenerator(t)

	a, err := g.Seeded(42).Generate(context.Background(), Expansion)
	require.NoError(t, err)
	b, err := g.Seeded(42).Generate(context.Background(), Expansion)
	require.NoError(t, err)

	assert.Equal(t, a.Board, b.Board)
	assert.Equal(t, a.Attempts, b.Attempts)
}

func TestGenerateNotFound(t *testing.T) {
	// Two hot tiles side by side in a single row can never be separated.
	configs := map[Variant]Config{
		Regular: {
			Tiles:      []ResourceKind{Wheat, Wood},
			Numbers:    []int{6, 8},
			RowLengths: []int{2},
		},
	}
	g, err := NewGenerator(configs, WithMaxAttempts(10))
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), Regular)
	assert.ErrorIs(t, err, ErrGenerationNotFound)
	assert.Contains(t, err.Error(), "after 10 attempts")
}

func TestGenerateCanceled(t *testing.T) {
	g := newTestGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, Regular)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateUnknownVariant(t *testing.T) {
	configs := DefaultConfigs()
	delete(configs, Expansion)
	g, err := NewGenerator(configs)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), Expansion)
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Equal(t, []Variant{Regular}, g.Variants())
}

func TestNewGeneratorRejectsBadConfig(t *testing.T) {
	configs := DefaultConfigs()
	c := configs[Expansion]
	c.RowLengths = []int{3, 4, 5, 6, 5, 4}
	configs[Expansion] = c

	_, err := NewGenerator(configs)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, Expansion, ce.Variant)

	_, err = NewGenerator(DefaultConfigs(), WithMaxAttempts(-1))
	assert.Error(t, err)
}

func TestShuffleKeepsInput(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	out := Shuffle(r, in)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, in)
	assert.ElementsMatch(t, in, out)
}

func TestShuffleUniform(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	r := rand.New(rand.NewPCG(1, 2))
	in := []int{0, 1, 2}
	counts := make(map[[3]int]int)
	const n = 60_000
	for range n {
		out := Shuffle(r, in)
		counts[[3]int(out)]++
	}
	require.Len(t, counts, 6)
	for perm, c := range counts {
		assert.InDelta(t, n/6, c, n/60, "permutation %v", perm)
	}
}
