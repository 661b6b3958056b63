package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/catan-board/internal/board"
)

type wsCommand string

const (
	wsPing     wsCommand = "p"
	wsGenerate wsCommand = "g"
	wsVariant  wsCommand = "v"
)

// wsSession is one connected renderer. It remembers the selected variant
// between commands; nothing else survives a message.
type wsSession struct {
	*BoardHandler
	ctx     context.Context
	conn    *websocket.Conn
	variant board.Variant
}

func (s *wsSession) write(v any) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.ws.WriteTimeout)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

func (s *wsSession) generate() error {
	layout, _, err := s.BoardHandler.generate(s.ctx, s.variant, nil)
	if err != nil {
		return s.write(wrapError(err))
	}
	return s.write(NewLayoutDTO(layout, nil))
}

// execute runs a single command line. Bad commands are reported to the
// client and do not end the session.
func (s *wsSession) execute(line string) error {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch wsCommand(cmd) {
	case wsPing:
		return s.write(map[string]string{"message": "pong"})
	case wsGenerate:
		return s.generate()
	case wsVariant:
		v, err := board.ParseVariant(strings.TrimSpace(arg))
		if err != nil {
			return s.write(wrapError(err))
		}
		s.variant = v
		return s.generate()
	default:
		return s.write(wrapError(fmt.Errorf("unknown command %q", cmd)))
	}
}

func (s *wsSession) run() error {
	for {
		mt, buf, err := s.conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			continue
		}
		for _, line := range strings.Split(strings.TrimSpace(string(buf)), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := s.execute(line); err != nil {
				return err
			}
		}
	}
}

// ConnectWS upgrades to a websocket that generates a board for every "g"
// line and switches variant on "v <variant>".
func (h *BoardHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
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

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		h.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.ws.ReadLimit)

	h.logger.Debug("established WS connection", slog.String("variant", variant.String()))

	session := &wsSession{
		BoardHandler: h,
		ctx:          r.Context(),
		conn:         conn,
		variant:      variant,
	}
	err = session.run()
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		h.logger.Debug("WS connection closed")
		return
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		h.logger.Warn("WS session ended", slog.Any("error", err))
	}
}
