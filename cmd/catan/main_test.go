package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/catan-board/internal/board"
	"github.com/vancomm/catan-board/internal/config"
	"github.com/vancomm/catan-board/internal/handlers"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenJSON(t *testing.T) {
	out, err := execute(t, "", "gen", "-v", "expansion", "-s", "7", "-n", "2", "--json")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var layouts []handlers.LayoutDTO
	for dec.More() {
		var l handlers.LayoutDTO
		require.NoError(t, dec.Decode(&l))
		layouts = append(layouts, l)
	}
	require.Len(t, layouts, 2)

	for _, l := range layouts {
		assert.Equal(t, "Expansion", l.Variant)
		require.NotNil(t, l.Seed)
		assert.Equal(t, uint64(7), *l.Seed)
		assert.Len(t, l.Ports, 22)

		b, err := board.ParseBoard(l.Board)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4, 5, 6, 5, 4, 3}, b.RowLengths())
		assert.True(t, board.Valid(b))
	}
}

func TestGenText(t *testing.T) {
	out, err := execute(t, "", "gen", "-v", "regular", "-s", "1", "-n", "1", "--json=false", "--ports")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Regular board ("))
	assert.Contains(t, out, "port  1")
	assert.Contains(t, out, "3:1")
	assert.Contains(t, out, "2:1 wheat")
}

func TestGenRejects(t *testing.T) {
	_, err := execute(t, "", "gen", "-v", "seafarers", "-n", "1")
	assert.ErrorIs(t, err, board.ErrUnknownVariant)

	_, err = execute(t, "", "gen", "-v", "regular", "-n", "0")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	good := `{"board": [["wheat-6", "desert"], ["ore-5", "wood-9"]]}`
	out, err := execute(t, good, "validate", "--json=false")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	bad := `[["wheat-6", "sheep-8"]]`
	out, err = execute(t, bad, "validate", "--json=false")
	assert.ErrorIs(t, err, errInvalidBoard)
	assert.Equal(t, "invalid: wheat-6 at (0,0) touches sheep-8 at (0,1)\n", out)
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(`[["brick-8"], ["ore-6"]]`), 0o600))

	out, err := execute(t, "", "validate", "--json", path)
	assert.ErrorIs(t, err, errInvalidBoard)

	var res handlers.ValidationDTO
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	require.NotNil(t, res.Violation)
	assert.Equal(t, board.Cell{Row: 0, Col: 0}, res.Violation.A)

	_, err = execute(t, "", "validate", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = execute(t, "not json", "validate")
	assert.Error(t, err)
}

func TestVariantsRoundTrip(t *testing.T) {
	out, err := execute(t, "", "variants")
	require.NoError(t, err)

	configs, err := config.ParseVariants([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, board.DefaultConfigs(), configs)
}
