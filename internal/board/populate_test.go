package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	b, err := Populate([]ResourceKind{Desert, Wheat, Wood}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Board{
		{{Kind: Wood}},
		{{Kind: Wheat}, {Kind: Desert}},
	}, b)
}

func TestPopulateRowMismatch(t *testing.T) {
	_, err := Populate([]ResourceKind{Desert, Wheat, Wood}, []int{1, 1})
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "invalid configuration: row lengths sum to 2, got 3 tiles", err.Error())
}

func TestAssignNumbers(t *testing.T) {
	b := Board{
		{{Kind: Wheat}, {Kind: Desert}},
		{{Kind: Ore}},
	}
	AssignNumbers(b, []int{5, 9})
	assert.Equal(t, [][]string{{"wheat-5", "desert"}, {"ore-9"}}, b.Strings())
}

func TestAssignNumbersRunsOut(t *testing.T) {
	b := Board{
		{{Kind: Desert}, {Kind: Sheep}},
		{{Kind: Brick}, {Kind: Ore}},
	}
	AssignNumbers(b, []int{4})
	assert.Equal(t, [][]string{{"desert", "sheep-4"}, {"brick", "ore"}}, b.Strings())
}

func TestAssignNumbersSurplus(t *testing.T) {
	b := Board{{{Kind: Wood}}}
	AssignNumbers(b, []int{10, 11, 12})
	assert.Equal(t, [][]string{{"wood-10"}}, b.Strings())
}
