package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/catan-board/internal/board"
	"github.com/vancomm/catan-board/internal/handlers"
)

var (
	variantName string
	seed        uint64
	numBoards   int
	maxAttempts int
	asJSON      bool
	showPorts   bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate boards",
		Long: `Generate one or more boards for a variant.

Examples:
  catan gen
  catan gen -v expansion --ports
  catan gen -n 3 --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: runGen,
	}

	genCmd.Flags().StringVarP(&variantName, "variant", "v", "regular", "Board variant: regular or expansion")
	genCmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "Seed for reproducible boards (random when unset)")
	genCmd.Flags().IntVarP(&numBoards, "number", "n", 1, "Number of boards to generate")
	genCmd.Flags().IntVar(&maxAttempts, "max-attempts", board.DefaultMaxAttempts, "Give up after this many rejected boards (0 = never)")
	genCmd.Flags().BoolVar(&asJSON, "json", false, "Print layouts as JSON")
	genCmd.Flags().BoolVar(&showPorts, "ports", false, "List ports below each board")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	variant, err := board.ParseVariant(variantName)
	if err != nil {
		return err
	}
	if numBoards < 1 {
		return fmt.Errorf("number of boards must be positive, got %d", numBoards)
	}

	configs, err := loadConfigs()
	if err != nil {
		return err
	}
	gen, err := board.NewGenerator(configs, board.WithMaxAttempts(maxAttempts))
	if err != nil {
		return err
	}

	var seedPtr *uint64
	if cmd.Flags().Changed("seed") {
		gen = gen.Seeded(seed)
		seedPtr = &seed
	}

	out := cmd.OutOrStdout()
	for i := range numBoards {
		layout, err := gen.Generate(cmd.Context(), variant)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"variant":  variant.String(),
			"board":    i + 1,
			"attempts": layout.Attempts,
		}).Info("generated board")

		if asJSON {
			err = json.NewEncoder(out).Encode(handlers.NewLayoutDTO(layout, seedPtr))
		} else {
			err = printLayout(out, layout, showPorts)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printLayout(w io.Writer, l *board.Layout, ports bool) error {
	if _, err := fmt.Fprintf(w, "%s board (%d attempts)\n\n%s\n", l.Variant, l.Attempts, l.Board.Format()); err != nil {
		return err
	}
	if !ports {
		return nil
	}
	for i, p := range l.Ports {
		dto := handlers.NewPortDTO(p, l.PortColor(i))
		trade := dto.Ratio
		if dto.Resource != "" {
			trade += " " + dto.Resource
		}
		if _, err := fmt.Fprintf(w, "port %2d  (%5.2f, %5.2f)  %-9s %s\n", i+1, p.Row, p.Col, trade, dto.Color); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
