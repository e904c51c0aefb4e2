package dating

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-couples/internal/auth"
	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 16
)

// Hub fans surprise reveals out to every connection of a couple, so both
// partners see the shake-to-reveal result at the same moment.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]map[*Client]bool
	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	logger     *zap.Logger
	origins    map[string]bool
	upgrader   websocket.Upgrader
}

type Client struct {
	id       string
	hub      *Hub
	conn     *websocket.Conn
	send     chan Message
	coupleID string
}

type Message struct {
	Type     string      `json:"type"`
	CoupleID string      `json:"couple_id"`
	Data     interface{} `json:"data"`
}

// NewHub creates a hub accepting upgrades from the same origin and from
// allowedOrigins. "*" accepts any origin.
func NewHub(logger *zap.Logger, allowedOrigins ...string) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
		origins:    make(map[string]bool, len(allowedOrigins)),
	}
	for _, o := range allowedOrigins {
		if o = strings.TrimRight(strings.ToLower(strings.TrimSpace(o)), "/"); o != "" {
			h.origins[o] = true
		}
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

// checkOrigin lets non-browser clients through; browsers always send Origin
func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || h.origins["*"] || h.origins[strings.ToLower(origin)] {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// Run owns client registration and delivery until ctx is done
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.coupleID] == nil {
				h.clients[client.coupleID] = make(map[*Client]bool)
			}
			h.clients[client.coupleID][client] = true
			h.mu.Unlock()
			h.logger.Debug("websocket connected", zap.String("couple_id", client.coupleID), zap.String("client_id", client.id))

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			h.mu.RLock()
			targets := make([]*Client, 0, len(h.clients[message.CoupleID]))
			for c := range h.clients[message.CoupleID] {
				targets = append(targets, c)
			}
			h.mu.RUnlock()

			for _, c := range targets {
				select {
				case c.send <- message:
				default:
					h.remove(c)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[client.coupleID]
	if !ok || !conns[client] {
		return
	}
	delete(conns, client)
	if len(conns) == 0 {
		delete(h.clients, client.coupleID)
	}
	close(client.send)
	h.logger.Debug("websocket disconnected", zap.String("couple_id", client.coupleID), zap.String("client_id", client.id))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for coupleID, conns := range h.clients {
		for c := range conns {
			close(c.send)
		}
		delete(h.clients, coupleID)
	}
}

// ClientCount returns the number of live connections for a couple
func (h *Hub) ClientCount(coupleID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[coupleID])
}

// NotifyReveal queues a surprise result for the couple. A full queue drops
// the reveal; the HTTP caller already has the result.
func (h *Hub) NotifyReveal(coupleID string, set *SuggestionSet) {
	message := Message{
		Type:     "date_reveal",
		CoupleID: coupleID,
		Data:     set,
	}

	select {
	case h.broadcast <- message:
		RecordReveal()
	default:
		h.logger.Warn("reveal dropped, broadcast queue full", zap.String("couple_id", coupleID))
	}
}

func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed",
			zap.String("couple_id", id.CoupleID),
			zap.String("origin", r.Header.Get("Origin")),
			zap.Error(err),
		)
		return
	}

	client := &Client{
		id:       uuid.NewString(),
		hub:      h,
		conn:     conn,
		send:     make(chan Message, sendBufferSize),
		coupleID: id.CoupleID,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
