package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vancomm/catan-board/internal/board"
	"github.com/vancomm/catan-board/internal/handlers"
)

var errInvalidBoard = errors.New("board has adjacent 6/8 tiles")

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a board for adjacent 6/8 tiles",
		Long: `Read a board as JSON, either {"board": [[...], ...]} or a bare array
of rows of tile strings such as "wheat-6" or "desert", from a file or stdin.
Exits non-zero when the board breaks the 6/8 rule.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
	validateCmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	b, err := readBoard(in)
	if err != nil {
		return err
	}
	log.WithField("rows", len(b)).Debug("validating board")

	res := handlers.NewValidationDTO(b)
	out := cmd.OutOrStdout()
	if asJSON {
		err = json.NewEncoder(out).Encode(res)
	} else if res.Valid {
		_, err = fmt.Fprintln(out, "valid")
	} else {
		v := res.Violation
		_, err = fmt.Fprintf(out, "invalid: %s at (%d,%d) touches %s at (%d,%d)\n",
			v.Tiles[0], v.A.Row, v.A.Col, v.Tiles[1], v.B.Row, v.B.Col)
	}
	if err != nil {
		return err
	}
	if !res.Valid {
		return errInvalidBoard
	}
	return nil
}

func readBoard(r io.Reader) (board.Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	var dto handlers.ValidateBoardDTO
	if err := json.Unmarshal(data, &dto); err == nil && dto.Board != nil {
		rows = dto.Board
	} else if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unable to decode board: %w", err)
	}
	return board.ParseBoard(rows)
}
