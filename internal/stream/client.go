// Package stream maintains the persistent websocket connection that pushes
// notification frames from the remote origin into the core.
package stream

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/assist-notify/internal/model"
)

// Envelope is the outbound frame shape.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client holds one duplex connection to a fixed endpoint. On any disconnect
// it retries after a flat pause, indefinitely; a single-user local tool
// should always eventually reconnect rather than give up.
type Client struct {
	url   string
	pause time.Duration

	mu        sync.RWMutex
	conn      *websocket.Conn
	connected bool
	last      *model.Notification

	out chan model.Notification
}

// NewClient creates a stream client for the given websocket endpoint.
func NewClient(url string, pause time.Duration) *Client {
	return &Client{
		url:   url,
		pause: pause,
		out:   make(chan model.Notification),
	}
}

// Notifications returns the channel of successfully parsed incoming frames.
func (c *Client) Notifications() <-chan model.Notification {
	return c.out
}

// Connected reports whether the connection is currently up.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.connected
}

// Last returns a copy of the most recently received notification, or nil if
// none has arrived yet.
func (c *Client) Last() *model.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.last == nil {
		return nil
	}

	n := *c.last
	return &n
}

// Send writes an outbound envelope, fire-and-forget. Attempting to send
// while disconnected logs and drops the frame; it never returns an error to
// the caller.
func (c *Client) Send(typ string, data interface{}) {
	c.mu.RLock()
	conn := c.conn
	connected := c.connected
	c.mu.RUnlock()

	if !connected || conn == nil {
		zlog.Logger.Warn().Str("type", typ).Msg("stream not connected, dropping outbound frame")
		return
	}

	if err := conn.WriteJSON(Envelope{Type: typ, Data: data}); err != nil {
		zlog.Logger.Error().Err(err).Str("type", typ).Msg("failed to send frame")
	}
}

// Run connects and reads frames until ctx is cancelled, reconnecting after
// the configured pause on every failure. One notification per frame; a frame
// that fails to parse is logged and dropped without closing the connection.
func (c *Client) Run(ctx context.Context) {
	for {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			zlog.Logger.Warn().Err(err).Str("url", c.url).Msg("stream connect failed, retrying")
			if !c.sleep(ctx) {
				return
			}
			continue
		}

		zlog.Logger.Info().Str("url", c.url).Msg("stream connected")
		c.setConn(conn)

		c.readLoop(ctx, conn)

		c.setConn(nil)
		_ = conn.Close()

		if ctx.Err() != nil {
			return
		}

		zlog.Logger.Warn().Str("url", c.url).Msg("stream disconnected, retrying")
		if !c.sleep(ctx) {
			return
		}
	}
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var n model.Notification
		if err := json.Unmarshal(frame, &n); err != nil {
			zlog.Logger.Error().Err(err).Str("frame", string(frame)).Msg("failed to parse frame, dropping")
			continue
		}

		if !n.Type.Valid() {
			zlog.Logger.Error().Str("frame", string(frame)).Msg("unknown notification type, dropping")
			continue
		}

		c.mu.Lock()
		last := n
		c.last = &last
		c.mu.Unlock()

		select {
		case c.out <- n:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn = conn
	c.connected = conn != nil
}

// sleep waits out the reconnect pause, returning false if ctx was cancelled.
func (c *Client) sleep(ctx context.Context) bool {
	select {
	case <-time.After(c.pause):
		return true
	case <-ctx.Done():
		return false
	}
}
