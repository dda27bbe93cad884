package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sportzhq/sportz/go/internal/models"
	"github.com/stretchr/testify/require"
)

func newTestManager() *ConnectionManager {
	return NewConnectionManager(DefaultConnectionConfig())
}

func newTestServer(t *testing.T, cm *ConnectionManager) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = cm.UpgradeConnection(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func dialWebSocket(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func mustEvent(t *testing.T, eventType models.EventType, payload interface{}) models.Event {
	t.Helper()
	event, err := models.NewEvent(eventType, payload)
	require.NoError(t, err)
	return event
}

func TestConnectionManager_RegisterAndUnregisterOnClose(t *testing.T) {
	cm := newTestManager()
	server := newTestServer(t, cm)

	require.Zero(t, cm.ConnectionCount())

	conn := dialWebSocket(t, server)
	require.Eventually(t, func() bool { return cm.ConnectionCount() == 1 },
		time.Second, 10*time.Millisecond)

	// Connection close is the signal that removes the registry entry
	conn.Close()
	require.Eventually(t, func() bool { return cm.ConnectionCount() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestConnectionManager_UnregisterIdempotent(t *testing.T) {
	cm := newTestManager()
	conn := &Connection{
		ID:      "test-conn",
		Send:    make(chan []byte, 1),
		Manager: cm,
	}

	cm.registerConnection(conn)
	require.Equal(t, 1, cm.ConnectionCount())

	cm.unregisterConnection(conn)
	require.Zero(t, cm.ConnectionCount())

	// Second unregister of the same connection is a no-op
	cm.unregisterConnection(conn)
	require.Zero(t, cm.ConnectionCount())
}

func TestConnectionManager_BroadcastDeliversToAll(t *testing.T) {
	cm := newTestManager()
	server := newTestServer(t, cm)

	clients := []*websocket.Conn{
		dialWebSocket(t, server),
		dialWebSocket(t, server),
		dialWebSocket(t, server),
	}
	require.Eventually(t, func() bool { return cm.ConnectionCount() == 3 },
		time.Second, 10*time.Millisecond)

	cm.Broadcast(mustEvent(t, models.EventTypeMatchCreated, map[string]int{"id": 42}))

	for _, client := range clients {
		client.SetReadDeadline(time.Now().Add(time.Second))
		_, payload, err := client.ReadMessage()
		require.NoError(t, err)

		var event models.Event
		require.NoError(t, json.Unmarshal(payload, &event))
		require.Equal(t, models.EventTypeMatchCreated, event.Type)
		require.JSONEq(t, `{"id": 42}`, string(event.Data))
	}
}

func TestConnectionManager_BroadcastDropsDeadConnection(t *testing.T) {
	cm := newTestManager()
	server := newTestServer(t, cm)

	healthy := []*websocket.Conn{
		dialWebSocket(t, server),
		dialWebSocket(t, server),
	}
	require.Eventually(t, func() bool { return cm.ConnectionCount() == 2 },
		time.Second, 10*time.Millisecond)

	// A raw upgraded connection with no write pump and no send buffer:
	// delivery to it cannot be issued, so broadcast must drop it
	rawServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cm.registerConnection(&Connection{
			ID:      "dead-conn",
			Conn:    conn,
			Send:    make(chan []byte),
			Manager: cm,
		})
	}))
	t.Cleanup(rawServer.Close)
	dialWebSocket(t, rawServer)

	require.Eventually(t, func() bool { return cm.ConnectionCount() == 3 },
		time.Second, 10*time.Millisecond)

	cm.Broadcast(mustEvent(t, models.EventTypeScoreUpdated, map[string]int{"id": 7}))

	// The dead connection is removed; the others still get the event
	require.Equal(t, 2, cm.ConnectionCount())
	for _, client := range healthy {
		client.SetReadDeadline(time.Now().Add(time.Second))
		_, payload, err := client.ReadMessage()
		require.NoError(t, err)

		var event models.Event
		require.NoError(t, json.Unmarshal(payload, &event))
		require.Equal(t, models.EventTypeScoreUpdated, event.Type)
	}
}

func TestConnectionManager_BroadcastDuringDisconnectChurn(t *testing.T) {
	cm := newTestManager()

	// Long-lived connections with drainers standing in for healthy clients
	for i := 0; i < 3; i++ {
		conn := &Connection{
			ID:      fmt.Sprintf("stable-%d", i),
			Send:    make(chan []byte, 16),
			Manager: cm,
		}
		go func() {
			for range conn.Send {
			}
		}()
		cm.registerConnection(conn)
	}

	event := mustEvent(t, models.EventTypeCommentaryAdded, map[string]int{"id": 1})

	// Race each broadcast against connections disconnecting mid-flight; a
	// send must never land on a channel the disconnect path has closed
	var wg sync.WaitGroup
	for iter := 0; iter < 500; iter++ {
		victims := make([]*Connection, 0, 8)
		for i := 0; i < 8; i++ {
			v := &Connection{
				ID:      fmt.Sprintf("victim-%d-%d", iter, i),
				Send:    make(chan []byte, 1),
				Manager: cm,
			}
			cm.registerConnection(v)
			victims = append(victims, v)
		}

		wg.Add(2)
		go func() {
			defer wg.Done()
			for _, v := range victims {
				cm.unregisterConnection(v)
			}
		}()
		go func() {
			defer wg.Done()
			cm.Broadcast(event)
		}()
		wg.Wait()
	}

	require.Equal(t, 3, cm.ConnectionCount())
}

func TestConnectionManager_BroadcastOrderPreserved(t *testing.T) {
	cm := newTestManager()
	server := newTestServer(t, cm)

	client := dialWebSocket(t, server)
	require.Eventually(t, func() bool { return cm.ConnectionCount() == 1 },
		time.Second, 10*time.Millisecond)

	cm.Broadcast(mustEvent(t, models.EventTypeMatchCreated, map[string]int{"id": 1}))
	cm.Broadcast(mustEvent(t, models.EventTypeCommentaryAdded, map[string]int{"id": 2}))

	expected := []models.EventType{models.EventTypeMatchCreated, models.EventTypeCommentaryAdded}
	for _, want := range expected {
		client.SetReadDeadline(time.Now().Add(time.Second))
		_, payload, err := client.ReadMessage()
		require.NoError(t, err)

		var event models.Event
		require.NoError(t, json.Unmarshal(payload, &event))
		require.Equal(t, want, event.Type)
	}
}

func TestConnectionManager_NoReplayForLateSubscribers(t *testing.T) {
	cm := newTestManager()
	server := newTestServer(t, cm)

	cm.Broadcast(mustEvent(t, models.EventTypeMatchCreated, map[string]int{"id": 1}))

	late := dialWebSocket(t, server)
	require.Eventually(t, func() bool { return cm.ConnectionCount() == 1 },
		time.Second, 10*time.Millisecond)

	late.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := late.ReadMessage()
	require.Error(t, err)
}

func TestConnectionManager_StartClosesConnectionsOnShutdown(t *testing.T) {
	cm := newTestManager()
	server := newTestServer(t, cm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cm.Start(ctx)
		close(done)
	}()

	dialWebSocket(t, server)
	require.Eventually(t, func() bool { return cm.ConnectionCount() == 1 },
		time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("manager did not shut down in time")
	}
	require.Zero(t, cm.ConnectionCount())
}
