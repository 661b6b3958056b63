package board

// Neighbor offsets on the offset hex grid, chosen by column parity. The
// table is applied as is to every row, whatever its length.
var (
	evenColNeighbors = [6]Cell{
		{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}, {1, 1},
	}
	oddColNeighbors = [6]Cell{
		{-1, -1}, {-1, 0}, {0, -1}, {0, 1}, {1, -1}, {1, 0},
	}
)

// Neighbors returns the in-bounds neighbors of the cell at row, col.
func Neighbors(b Board, row, col int) []Cell {
	offsets := evenColNeighbors
	if col%2 != 0 {
		offsets = oddColNeighbors
	}
	cells := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		r, c := row+d.Row, col+d.Col
		if b.InBounds(r, c) {
			cells = append(cells, Cell{r, c})
		}
	}
	return cells
}

// Violation is a pair of adjacent hot tiles.
type Violation struct {
	A, B Cell
}

// FirstViolation scans the board row by row and returns the first hot tile
// found next to another hot tile.
func FirstViolation(b Board) (Violation, bool) {
	for i, row := range b {
		for j, t := range row {
			if !t.Hot() {
				continue
			}
			for _, n := range Neighbors(b, i, j) {
				if b.At(n).Hot() {
					return Violation{A: Cell{i, j}, B: n}, true
				}
			}
		}
	}
	return Violation{}, false
}

// Valid reports whether no two hot tiles are adjacent.
func Valid(b Board) bool {
	_, found := FirstViolation(b)
	return !found
}
