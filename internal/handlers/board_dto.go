package handlers

import (
	"github.com/google/uuid"
	"github.com/gorilla/schema"

	"github.com/vancomm/catan-board/internal/board"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewBoardDTO struct {
	Variant string  `schema:"variant"`
	Seed    *uint64 `schema:"seed"`
}

func ParseNewBoardDTO(src map[string][]string) (NewBoardDTO, error) {
	var dto NewBoardDTO
	err := decoder.Decode(&dto, src)
	if dto.Variant == "" {
		dto.Variant = board.Regular.String()
	}
	return dto, err
}

type PortDTO struct {
	Row      float64 `json:"row"`
	Col      float64 `json:"col"`
	Color    string  `json:"color"`
	Ratio    string  `json:"ratio"`
	Resource string  `json:"resource,omitempty"`
}

func NewPortDTO(p board.Port, color string) PortDTO {
	dto := PortDTO{Row: p.Row, Col: p.Col, Color: color, Ratio: "3:1"}
	if kind, ok := board.PortTrade(color); ok {
		dto.Ratio = "2:1"
		dto.Resource = kind.String()
	}
	return dto
}

func newPortDTOs(ports []board.Port, colorAt func(int) string) []PortDTO {
	dtos := make([]PortDTO, len(ports))
	for i, p := range ports {
		dtos[i] = NewPortDTO(p, colorAt(i))
	}
	return dtos
}

type LayoutDTO struct {
	ID       string     `json:"id"`
	Variant  string     `json:"variant"`
	Seed     *uint64    `json:"seed,omitempty"`
	Board    [][]string `json:"board"`
	Ports    []PortDTO  `json:"ports"`
	Colors   []string   `json:"colors"`
	Attempts int        `json:"attempts"`
}

func NewLayoutDTO(l *board.Layout, seed *uint64) LayoutDTO {
	return LayoutDTO{
		ID:       uuid.NewString(),
		Variant:  l.Variant.String(),
		Seed:     seed,
		Board:    l.Board.Strings(),
		Ports:    newPortDTOs(l.Ports, l.PortColor),
		Colors:   l.Colors,
		Attempts: l.Attempts,
	}
}

type VariantDTO struct {
	Variant    string         `json:"variant"`
	Tiles      map[string]int `json:"tiles"`
	Numbers    []int          `json:"numbers"`
	RowLengths []int          `json:"row_lengths"`
	Ports      []PortDTO      `json:"ports"`
}

func NewVariantDTO(v board.Variant, c board.Config) VariantDTO {
	tiles := make(map[string]int)
	for _, k := range c.Tiles {
		tiles[k.String()]++
	}
	return VariantDTO{
		Variant:    v.String(),
		Tiles:      tiles,
		Numbers:    c.Numbers,
		RowLengths: c.RowLengths,
		Ports:      newPortDTOs(c.Ports, c.PortColor),
	}
}

type ValidateBoardDTO struct {
	Board [][]string `json:"board"`
}

type ViolationDTO struct {
	A     board.Cell `json:"a"`
	B     board.Cell `json:"b"`
	Tiles [2]string  `json:"tiles"`
}

type ValidationDTO struct {
	Valid     bool          `json:"valid"`
	Violation *ViolationDTO `json:"violation,omitempty"`
}

func NewValidationDTO(b board.Board) ValidationDTO {
	v, found := board.FirstViolation(b)
	if !found {
		return ValidationDTO{Valid: true}
	}
	return ValidationDTO{
		Violation: &ViolationDTO{
			A:     v.A,
			B:     v.B,
			Tiles: [2]string{b.At(v.A).String(), b.At(v.B).String()},
		},
	}
}
