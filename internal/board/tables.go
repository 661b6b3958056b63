package board

// Port colors as drawn by the renderer. Each 2:1 port takes the color of the
// resource it trades; every other color marks a generic 3:1 port.
const (
	ColorGeneric = "Black"
	ColorWheat   = "#ECCF1B"
	ColorWood    = "#1A4D00"
	ColorSheep   = "#97E83A"
	ColorBrick   = "#BA0B0B"
	ColorOre     = "#A0A0A0"
)

var portResources = map[string]ResourceKind{
	ColorWheat: Wheat,
	ColorWood:  Wood,
	ColorSheep: Sheep,
	ColorBrick: Brick,
	ColorOre:   Ore,
}

// PortTrade returns the resource a port of the given color trades 2:1. The
// second result is false for generic 3:1 ports.
func PortTrade(color string) (ResourceKind, bool) {
	k, ok := portResources[color]
	return k, ok
}

func deck(counts ...int) []ResourceKind {
	var tiles []ResourceKind
	for kind, n := range counts {
		for range n {
			tiles = append(tiles, ResourceKind(kind))
		}
	}
	return tiles
}

func pair(c string) []string { return []string{c, c} }

func concat(groups ...[]string) (out []string) {
	for _, g := range groups {
		out = append(out, g...)
	}
	return
}

var regular = Config{
	Tiles:      deck(1, 4, 4, 4, 3, 3),
	Numbers:    []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12},
	RowLengths: []int{3, 4, 5, 4, 3},
	Ports: []Port{
		{-0.65, 1}, {-0.35, 0.5}, {-0.65, 2}, {-0.35, 2.5},
		{0.65, 4}, {0.35, 3.5}, {0.65, 0}, {1.35, 0},
		{1.65, 4.5}, {2.35, 4.5}, {3.35, 0}, {2.65, 0},
		{3.35, 4}, {3.65, 3.5}, {4.65, 1}, {4.35, 0.5},
		{4.65, 2}, {4.35, 2.5},
	},
	Colors: concat(
		pair(ColorGeneric), pair(ColorSheep),
		pair(ColorGeneric), pair(ColorOre),
		pair(ColorGeneric), pair(ColorWheat),
		pair(ColorBrick), pair(ColorGeneric),
		pair(ColorWood),
	),
}

var expansion = Config{
	Tiles: deck(2, 6, 6, 6, 5, 5),
	Numbers: []int{
		2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 6,
		8, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11, 12, 12,
	},
	RowLengths: []int{3, 4, 5, 6, 5, 4, 3},
	Ports: []Port{
		{-0.65, 1}, {-0.35, 0.5}, {-0.65, 2}, {-0.35, 2.5},
		{0.65, 4}, {0.35, 3.5}, {1.65, -0.5}, {2.35, -0.5},
		{3.35, 5}, {2.65, 5}, {4.35, -0.5}, {3.65, -0.5},
		{5.35, 0}, {4.65, 0}, {4.65, 4}, {4.35, 4.5},
		{6.65, 1}, {6.35, 0.5}, {6.65, 2}, {6.35, 2.5},
		{5.65, 3.5}, {6.35, 3.5},
	},
	Colors: concat(
		pair(ColorBrick), pair(ColorWheat),
		pair(ColorGeneric), pair(ColorOre),
		pair(ColorGeneric), pair(ColorGeneric),
		pair(ColorWood), pair(ColorGeneric),
		pair(ColorSheep), pair(ColorGeneric),
		pair(ColorSheep),
	),
}

// DefaultConfig returns a copy of the built-in tables for v.
func DefaultConfig(v Variant) (Config, error) {
	switch v {
	case Regular:
		return regular.Clone(), nil
	case Expansion:
		return expansion.Clone(), nil
	default:
		return Config{}, ErrUnknownVariant
	}
}

func DefaultConfigs() map[Variant]Config {
	return map[Variant]Config{
		Regular:   regular.Clone(),
		Expansion: expansion.Clone(),
	}
}
