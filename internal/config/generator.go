package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/catan-board/internal/board"
)

func MaxAttempts() (int, error) {
	s, ok := os.LookupEnv("GENERATOR_MAX_ATTEMPTS")
	if !ok || s == "" {
		return board.DefaultMaxAttempts, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert GENERATOR_MAX_ATTEMPTS to int: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("GENERATOR_MAX_ATTEMPTS must not be negative, got %d", n)
	}
	return n, nil
}

// VariantsFile is the optional path of a YAML file overriding the built-in
// variant tables.
func VariantsFile() (string, bool) {
	path, ok := os.LookupEnv("VARIANTS_FILE")
	return path, ok && path != ""
}

// NewGenerator builds a generator from the environment: tables from
// VARIANTS_FILE when set, the attempt budget from GENERATOR_MAX_ATTEMPTS.
func NewGenerator() (*board.Generator, error) {
	configs := board.DefaultConfigs()
	if path, ok := VariantsFile(); ok {
		var err error
		configs, err = LoadVariants(path)
		if err != nil {
			return nil, err
		}
	}

	maxAttempts, err := MaxAttempts()
	if err != nil {
		return nil, err
	}

	return board.NewGenerator(configs, board.WithMaxAttempts(maxAttempts))
}
