package host

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/nbroch/skema/internal/protocol"
)

// WebSocket accepts editor connections over HTTP and serves each one
// the envelope protocol, one message per text frame. It implements
// http.Handler so callers mount it on their own mux.
type WebSocket struct {
	host     *Host
	upgrader websocket.Upgrader
}

// NewWebSocket wires a WebSocket transport to h.
func NewWebSocket(h *Host) *WebSocket {
	return &WebSocket{
		host: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  32 * 1024,
			WriteBufferSize: 32 * 1024,
			// Webviews report opaque origins; the listener binds loopback.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *WebSocket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sock, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.host.logDebug("upgrade: %v", err)
		return
	}
	defer sock.Close()

	c := newConn(func(data []byte) error {
		return sock.WriteMessage(websocket.TextMessage, data)
	})
	s.host.attach(c)
	defer s.host.detach(c)

	if err := s.host.greet(c); err != nil {
		s.host.logDebug("editor %s: handshake: %v", c.id, err)
		return
	}

	for {
		_, data, err := sock.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.host.logDebug("editor %s: %v", c.id, err)
			}
			return
		}
		m, err := protocol.Decode(data)
		if err != nil {
			s.host.logDebug("editor %s: %v", c.id, err)
			s.host.sendError(c, err, "BAD_MESSAGE")
			continue
		}
		s.host.handle(c, m)
	}
}
