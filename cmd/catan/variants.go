package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/catan-board/internal/board"
	"github.com/vancomm/catan-board/internal/config"
)

func init() {
	variantsCmd := &cobra.Command{
		Use:   "variants",
		Short: "Print the configured variant tables",
		Long: `Print the variant tables in the YAML format accepted by --variants-file,
so the output can be edited and loaded back.`,
		Args: cobra.NoArgs,
		RunE: runVariants,
	}
	rootCmd.AddCommand(variantsCmd)
}

func runVariants(cmd *cobra.Command, args []string) error {
	configs, err := loadConfigs()
	if err != nil {
		return err
	}

	files := make(map[string]config.VariantFile, len(configs))
	variants := make([]board.Variant, 0, len(configs))
	for v, c := range configs {
		files[strings.ToLower(v.String())] = config.NewVariantFile(c)
		variants = append(variants, v)
	}
	slices.Sort(variants)

	for _, v := range variants {
		c := configs[v]
		log.Debugf("%s: %d tiles in %d rows, %d numbers, %d ports",
			v, len(c.Tiles), len(c.RowLengths), len(c.Numbers), len(c.Ports))
	}

	out, err := yaml.Marshal(files)
	if err != nil {
		return fmt.Errorf("unable to encode variants: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
