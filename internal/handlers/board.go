package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vancomm/catan-board/internal/board"
	"github.com/vancomm/catan-board/internal/config"
)

const maxBoardBody = 1 << 16

type BoardHandler struct {
	logger *slog.Logger
	gen    *board.Generator
	ws     *config.WebSocket
}

func NewBoardHandler(
	logger *slog.Logger,
	gen *board.Generator,
	ws *config.WebSocket,
) *BoardHandler {
	return &BoardHandler{
		logger: logger,
		gen:    gen,
		ws:     ws,
	}
}

// generate runs the generator and maps its failures onto a status code.
// A zero status means the layout is ready.
func (h *BoardHandler) generate(
	ctx context.Context, variant board.Variant, seed *uint64,
) (*board.Layout, int, error) {
	gen := h.gen
	if seed != nil {
		gen = gen.Seeded(*seed)
	}

	layout, err := gen.Generate(ctx, variant)
	switch {
	case err == nil:
		return layout, 0, nil
	case errors.Is(err, board.ErrUnknownVariant):
		return nil, http.StatusBadRequest, err
	case errors.Is(err, board.ErrGenerationNotFound):
		h.logger.Warn("generation gave up", slog.Any("error", err))
		return nil, http.StatusServiceUnavailable, err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, http.StatusServiceUnavailable, err
	default:
		h.logger.Error("unable to generate a board", slog.Any("error", err))
		return nil, http.StatusInternalServerError, errors.New("internal error")
	}
}

func (h *BoardHandler) NewBoard(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewBoardDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	variant, err := board.ParseVariant(dto.Variant)
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	layout, status, err := h.generate(r.Context(), variant, dto.Seed)
	if err != nil {
		sendErrorOrLog(w, h.logger, status, err)
		return
	}

	h.logger.Debug("generated board",
		slog.String("variant", variant.String()),
		slog.Int("attempts", layout.Attempts),
	)
	sendJSONOrLog(w, h.logger, NewLayoutDTO(layout, dto.Seed))
}

func (h *BoardHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var dto ValidateBoardDTO
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBoardBody))
	if err := dec.Decode(&dto); err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid body: %w", err))
		return
	}

	b, err := board.ParseBoard(dto.Board)
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	sendJSONOrLog(w, h.logger, NewValidationDTO(b))
}

func (h *BoardHandler) Variants(w http.ResponseWriter, r *http.Request) {
	variants := h.gen.Variants()
	dtos := make([]VariantDTO, 0, len(variants))
	for _, v := range variants {
		c, err := h.gen.Config(v)
		if err != nil {
			sendErrorOrLog(w, h.logger, http.StatusInternalServerError, err)
			return
		}
		dtos = append(dtos, NewVariantDTO(v, c))
	}
	sendJSONOrLog(w, h.logger, dtos)
}
