package board

import (
	"slices"
	"strings"
)

// Board holds tiles row by row. Rows may have different lengths.
type Board [][]Tile

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (b Board) InBounds(row, col int) bool {
	return 0 <= row && row < len(b) && 0 <= col && col < len(b[row])
}

func (b Board) At(c Cell) Tile {
	return b[c.Row][c.Col]
}

func (b Board) Len() (n int) {
	for _, row := range b {
		n += len(row)
	}
	return
}

func (b Board) RowLengths() []int {
	lengths := make([]int, len(b))
	for i, row := range b {
		lengths[i] = len(row)
	}
	return lengths
}

// Kinds counts the tiles of each resource kind.
func (b Board) Kinds() map[ResourceKind]int {
	counts := make(map[ResourceKind]int)
	for _, row := range b {
		for _, t := range row {
			counts[t.Kind]++
		}
	}
	return counts
}

// Numbers returns every assigned number in ascending order.
func (b Board) Numbers() []int {
	numbers := make([]int, 0, b.Len())
	for _, row := range b {
		for _, t := range row {
			if t.Number != 0 {
				numbers = append(numbers, t.Number)
			}
		}
	}
	slices.Sort(numbers)
	return numbers
}

func (b Board) Clone() Board {
	c := make(Board, len(b))
	for i, row := range b {
		c[i] = slices.Clone(row)
	}
	return c
}

// Strings converts the board into renderer cell descriptors.
func (b Board) Strings() [][]string {
	rows := make([][]string, len(b))
	for i, row := range b {
		rows[i] = make([]string, len(row))
		for j, t := range row {
			rows[i][j] = t.String()
		}
	}
	return rows
}

func ParseBoard(rows [][]string) (Board, error) {
	b := make(Board, len(rows))
	for i, row := range rows {
		b[i] = make([]Tile, len(row))
		for j, s := range row {
			t, err := ParseTile(s)
			if err != nil {
				return nil, err
			}
			b[i][j] = t
		}
	}
	return b, nil
}

const cellWidth = 10

// Format lays the board out as text, indenting shorter rows so the rows
// line up around the center like the hexes do.
func (b Board) Format() string {
	widest := slices.Max(append(b.RowLengths(), 0))
	var sb strings.Builder
	for _, row := range b {
		sb.WriteString(strings.Repeat(" ", (widest-len(row))*cellWidth/2))
		for j, t := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			s := t.String()
			pad := cellWidth - 1 - len(s)
			sb.WriteString(strings.Repeat(" ", pad/2))
			sb.WriteString(s)
			sb.WriteString(strings.Repeat(" ", pad-pad/2))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
