package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*EventHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewEventHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/events", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsToAllObservers(t *testing.T) {
	hub, srv := startHub(t)

	a := dial(t, srv)
	b := dial(t, srv)
	// let the registrations land before emitting
	time.Sleep(50 * time.Millisecond)

	hub.Emit("orderCreated", map[string]any{"orderId": 7, "status": "pending"})

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var env struct {
			Event   string         `json:"event"`
			Payload map[string]any `json:"payload"`
		}
		require.NoError(t, conn.ReadJSON(&env))
		assert.Equal(t, "orderCreated", env.Event)
		assert.Equal(t, "pending", env.Payload["status"])
	}
}

func TestHubPreservesEmissionOrder(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	time.Sleep(50 * time.Millisecond)

	hub.Emit("orderCreated", map[string]any{"seq": 1})
	hub.Emit("orderStatusUpdated", map[string]any{"seq": 2})
	hub.Emit("tablesUpdated", map[string]any{"seq": 3})

	want := []string{"orderCreated", "orderStatusUpdated", "tablesUpdated"}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for _, event := range want {
		var env struct {
			Event string `json:"event"`
		}
		require.NoError(t, conn.ReadJSON(&env))
		assert.Equal(t, event, env.Event)
	}
}

// Emit is fire-and-forget: with no observers (and even with a full buffer)
// it must return immediately rather than block the caller.
func TestEmitNeverBlocks(t *testing.T) {
	hub := NewEventHub() // Run not started: nothing drains the buffer

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Emit("tablesUpdated", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked")
	}
}
