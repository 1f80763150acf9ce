package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/assist-notify/internal/model"
)

var upgrader = websocket.Upgrader{}

// frameServer upgrades incoming connections and writes the given frames.
func frameServer(t *testing.T, frames ...string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}

		for _, frame := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}

		// Keep the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestClient_ReceivesFramesAndDropsMalformed(t *testing.T) {
	id := uuid.New()
	srv := frameServer(t,
		`{malformed`,
		`{"id":"`+id.String()+`","type":"robot","title":"nope"}`,
		`{"id":"`+id.String()+`","type":"email","title":"A","message":"hello"}`,
	)
	defer srv.Close()

	c := NewClient(wsURL(srv), 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	var got model.Notification
	select {
	case got = <-c.Notifications():
	case <-time.After(2 * time.Second):
		t.Fatal("no notification received")
	}

	// Malformed and unknown-type frames were dropped, the valid one kept.
	assert.Equal(t, id, got.ID)
	assert.Equal(t, model.TypeEmail, got.Type)
	assert.Equal(t, "A", got.Title)

	assert.True(t, c.Connected())

	last := c.Last()
	require.NotNil(t, last)
	assert.Equal(t, id, last.ID)
}

func TestClient_SendWhileDisconnected(t *testing.T) {
	c := NewClient("ws://localhost:1/never", time.Second)

	// Fire-and-forget: logged, dropped, no panic, no error to the caller.
	c.Send("ping", map[string]string{"hello": "there"})

	assert.False(t, c.Connected())
	assert.Nil(t, c.Last())
}

func TestClient_ReconnectsAfterServerRestart(t *testing.T) {
	id := uuid.New()
	srv := frameServer(t, `{"id":"`+id.String()+`","type":"file","title":"B"}`)
	url := wsURL(srv)

	c := NewClient(url, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	select {
	case got := <-c.Notifications():
		assert.Equal(t, id, got.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no notification received")
	}

	srv.Close()

	// The client keeps retrying after the server goes away.
	assert.Eventually(t, func() bool {
		return !c.Connected()
	}, 2*time.Second, 20*time.Millisecond)
}
