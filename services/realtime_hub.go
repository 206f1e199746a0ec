package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	EventLogCreated    = "log.created"
	EventLogDeleted    = "log.deleted"
	EventMetricUpdated = "metric.updated"
)

const (
	wsWriteWait  = 10 * time.Second
	wsSendBuffer = 32
)

// EventPublisher fans domain events out to a user's live connections.
type EventPublisher interface {
	Publish(userID, kind string, data any)
}

type Event struct {
	Kind string    `json:"kind"`
	Data any       `json:"data"`
	At   time.Time `json:"at"`
}

// WSClient is one live socket. Events queue on send and a single writer
// goroutine (WritePump) drains them, so publishers never block on the network.
type WSClient struct {
	UserID string
	Conn   *websocket.Conn

	send chan []byte
	done chan struct{}
	once sync.Once
}

func NewWSClient(userID string, conn *websocket.Conn) *WSClient {
	return &WSClient{
		UserID: userID,
		Conn:   conn,
		send:   make(chan []byte, wsSendBuffer),
		done:   make(chan struct{}),
	}
}

// enqueue reports false when the client's buffer is full.
func (c *WSClient) enqueue(msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *WSClient) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.Conn.Close()
	})
}

// WritePump writes queued events and periodic pings until the client closes.
// It must be the only goroutine writing to Conn.
func (c *WSClient) WritePump(pingPeriod time.Duration) {
	t := time.NewTicker(pingPeriod)
	defer t.Stop()
	for {
		select {
		case msg := <-c.send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.close()
				return
			}
		case <-t.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.done:
			return
		}
	}
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
	log     logrus.FieldLogger
}

func NewRealtimeHub(log logrus.FieldLogger) *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{}), log: log}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	c.close()
}

func (h *RealtimeHub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *RealtimeHub) Publish(userID, kind string, data any) {
	msg, err := json.Marshal(Event{Kind: kind, Data: data, At: time.Now()})
	if err != nil {
		h.log.WithError(err).WithField("kind", kind).Error("realtime: marshal event")
		return
	}

	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if !c.enqueue(msg) {
			h.log.WithField("user_id", userID).Warn("realtime: send buffer full, dropping connection")
			h.Unregister(c)
		}
	}
}
