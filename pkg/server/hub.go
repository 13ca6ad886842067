package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/toast"
)

const (
	// ActionClose asks the server to click a toast's close button.
	ActionClose = "close"

	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Message is an outbound lifecycle message.
type Message struct {
	Event   string `json:"event"`
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Level   string `json:"level"`
	Variant string `json:"variant"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// Command is an inbound client message. A close command names the
// clicked node by hydration ID; ID is the fallback for clients that only
// know the toast.
type Command struct {
	Action string `json:"action"`
	HID    string `json:"hid,omitempty"`
	ID     string `json:"id,omitempty"`
}

// Hub fans toast lifecycle messages out to WebSocket clients.
type Hub struct {
	server   *Server
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

func newHub(s *Server, logger *slog.Logger) *Hub {
	return &Hub{
		server: s,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     s.config.CheckOrigin,
		},
		logger:  logger.With("subsystem", "hub"),
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and serves the client until it leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, h.server.config.ClientBuffer),
	}
	if !h.add(c) {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
		return
	}
	h.logger.Debug("client connected", "remote", r.RemoteAddr)

	go h.writeLoop(c)
	h.readLoop(c)
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.close()
}

// Broadcast queues data for every client. Clients whose buffer is full
// are disconnected.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("client too slow, disconnecting")
			delete(h.clients, c)
			c.close()
		}
	}
}

// Close disconnects every client. Later connections are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}

func (h *Hub) readLoop(c *client) {
	defer h.remove(c)

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				h.logger.Error("read error", "error", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(msg, &cmd); err != nil {
			h.logger.Warn("invalid command", "error", err)
			continue
		}
		h.handleCommand(cmd)
	}
}

func (h *Hub) handleCommand(cmd Command) {
	switch cmd.Action {
	case ActionClose:
		doc := h.server.doc
		err := h.server.loop.Dispatch(func() {
			if !clickClose(doc, cmd) {
				h.logger.Debug("close for unknown toast", "hid", cmd.HID, "id", cmd.ID)
			}
		})
		if err != nil {
			h.logger.Warn("close dispatch failed", "hid", cmd.HID, "id", cmd.ID, "error", err)
		}
	default:
		h.logger.Warn("unknown action", "action", cmd.Action)
	}
}

// clickClose dispatches a click on the close button named by cmd.
func clickClose(doc *dom.Document, cmd Command) bool {
	if cmd.HID == "" {
		return toast.Close(doc, cmd.ID)
	}
	el := doc.ElementByHID(cmd.HID)
	if el == nil || !el.ClassList().Contains(toast.CloseClass) {
		return false
	}
	return el.Dispatch("click")
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	timeout := h.server.config.WriteTimeout
	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(timeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Debug("write error", "error", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(timeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// broadcast is the toast observer feeding the hub. It runs on the loop,
// so it may read the document.
func (s *Server) broadcast(e toast.Event) {
	msg := Message{
		Event:   toast.EventName,
		Kind:    string(e.Kind),
		ID:      e.ToastID,
		Level:   string(e.Type),
		Variant: string(e.Variant),
		Message: e.Message,
		Reason:  string(e.Reason),
	}
	if e.Kind != toast.EventRemoved {
		if el := toast.Find(s.doc, e.ToastID); el != nil {
			html, err := s.renderer.RenderNode(el)
			if err != nil {
				s.logger.Error("render toast failed", "id", e.ToastID, "error", err)
			}
			msg.HTML = html
		}
	}

	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("encode message failed", "error", err)
		return
	}
	s.hub.Broadcast(data)
}
