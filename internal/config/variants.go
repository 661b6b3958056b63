package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/catan-board/internal/board"
)

type PortFile struct {
	Row   float64 `yaml:"row"`
	Col   float64 `yaml:"col"`
	Color string  `yaml:"color"`
}

// VariantFile is the YAML form of a [board.Config]. Tiles are given as
// counts per resource name.
type VariantFile struct {
	Tiles      map[string]int `yaml:"tiles"`
	Numbers    []int          `yaml:"numbers"`
	RowLengths []int          `yaml:"row_lengths"`
	Ports      []PortFile     `yaml:"ports"`
}

func (f VariantFile) Config() (board.Config, error) {
	var c board.Config
	for name := range f.Tiles {
		if _, err := board.ParseResourceKind(name); err != nil {
			return c, err
		}
	}
	for _, kind := range board.ResourceKinds() {
		n := f.Tiles[kind.String()]
		if n < 0 {
			return c, fmt.Errorf("negative %s count %d", kind, n)
		}
		for range n {
			c.Tiles = append(c.Tiles, kind)
		}
	}
	c.Numbers = f.Numbers
	c.RowLengths = f.RowLengths
	for _, p := range f.Ports {
		c.Ports = append(c.Ports, board.Port{Row: p.Row, Col: p.Col})
		c.Colors = append(c.Colors, p.Color)
	}
	return c, nil
}

func NewVariantFile(c board.Config) VariantFile {
	f := VariantFile{
		Tiles:      make(map[string]int),
		Numbers:    c.Numbers,
		RowLengths: c.RowLengths,
	}
	for _, k := range c.Tiles {
		f.Tiles[k.String()]++
	}
	for i, p := range c.Ports {
		f.Ports = append(f.Ports, PortFile{Row: p.Row, Col: p.Col, Color: c.PortColor(i)})
	}
	return f
}

// LoadVariants reads variant tables from a YAML file keyed by variant name.
// Variants missing from the file keep their built-in tables. Every table is
// validated before it is returned.
func LoadVariants(path string) (map[board.Variant]board.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read variants file: %w", err)
	}
	return ParseVariants(b)
}

func ParseVariants(data []byte) (map[board.Variant]board.Config, error) {
	var raw map[string]VariantFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unable to parse variants file: %w", err)
	}

	configs := board.DefaultConfigs()
	for name, f := range raw {
		v, err := board.ParseVariant(name)
		if err != nil {
			return nil, err
		}
		c, err := f.Config()
		if err != nil {
			return nil, &board.ConfigurationError{Variant: v, Reason: err.Error()}
		}
		if err := c.Validate(v); err != nil {
			return nil, err
		}
		configs[v] = c
	}
	return configs, nil
}
