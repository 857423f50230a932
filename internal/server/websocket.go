package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"inode-msd/internal/logging"
	"inode-msd/msd"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local tooling; the service binds to loopback by default.
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsResult is one reply on the stream: either a decoded record or the
// error the payload produced.
type wsResult struct {
	Record *msd.Record `json:"record,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// handleWebSocket streams decode results: each text message from the
// client is one hex payload, each reply one JSON result. Errors on
// individual payloads are reported in-band and do not close the stream.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	remoteAddr := conn.RemoteAddr().String()
	logging.LogConnection(remoteAddr, "websocket_upgraded")

	defer func() {
		_ = conn.Close()
		logging.LogConnection(remoteAddr, "websocket_closed")
	}()

	conn.SetReadLimit(maxMessageSize)

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warn("WebSocket read error",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		line := strings.TrimSpace(string(payload))
		if line == "" {
			continue
		}

		result := decodeLine(line)
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return
		}
		if err := conn.WriteJSON(result); err != nil {
			logging.Warn("WebSocket write error",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			return
		}
	}
}

func decodeLine(line string) wsResult {
	data, err := msd.ParseHex(line)
	if err != nil {
		return wsResult{Error: err.Error()}
	}
	rec, err := msd.Decode(data)
	if err != nil {
		return wsResult{Error: err.Error()}
	}
	return wsResult{Record: rec}
}
