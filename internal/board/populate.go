package board

import "fmt"

// Populate lays shuffled tiles out in rows of the given lengths, taking
// tiles from the end of the sequence. The input must already be a random
// permutation; the order of consumption does not matter beyond that.
func Populate(tiles []ResourceKind, rowLengths []int) (Board, error) {
	sum := 0
	for _, l := range rowLengths {
		sum += l
	}
	if sum != len(tiles) {
		return nil, &ConfigurationError{
			Variant: anyVariant,
			Reason:  fmt.Sprintf("row lengths sum to %d, got %d tiles", sum, len(tiles)),
		}
	}

	next := len(tiles)
	b := make(Board, len(rowLengths))
	for i, l := range rowLengths {
		b[i] = make([]Tile, l)
		for j := range l {
			next--
			b[i][j] = Tile{Kind: tiles[next]}
		}
	}
	return b, nil
}

// AssignNumbers hands out numbers row by row, left to right, skipping
// deserts. If the numbers run out the remaining tiles stay unnumbered;
// surplus numbers are ignored.
func AssignNumbers(b Board, numbers []int) {
	next := 0
	for _, row := range b {
		for j := range row {
			if row[j].Kind == Desert {
				continue
			}
			if next == len(numbers) {
				return
			}
			row[j].Number = numbers[next]
			next++
		}
	}
}
