// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// serveHub exposes hub over an httptest server the way the API handler does.
func serveHub(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn)
		hub.Register <- client
		client.Start()
	}))
	t.Cleanup(server.Close)
	return server
}

// dialWebSocket establishes a WebSocket connection to the test server
func dialWebSocket(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	var msg map[string]interface{}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return msg
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	a := NewClient(hub, nil)
	b := NewClient(hub, nil)

	if a.hub != hub {
		t.Error("client hub not set")
	}
	if cap(a.send) != sendBufferSize {
		t.Errorf("send capacity = %d, want %d", cap(a.send), sendBufferSize)
	}
	if b.ID() <= a.ID() {
		t.Errorf("IDs not increasing: %d then %d", a.ID(), b.ID())
	}
}

func TestClient_Constants(t *testing.T) {
	t.Parallel()

	if pingPeriod >= pongWait {
		t.Errorf("pingPeriod %v must be shorter than pongWait %v", pingPeriod, pongWait)
	}
	if writeWait <= 0 || maxMessageSize <= 0 {
		t.Error("timeouts and limits must be positive")
	}
}

func TestClient_StateThenEvents(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	hub.SetSnapshotFunc(func() interface{} {
		return map[string]string{"path": "/", "status": "idle"}
	})
	server := serveHub(t, hub)
	conn := dialWebSocket(t, server)

	state := readMessage(t, conn)
	if state["type"] != MessageTypeState {
		t.Fatalf("first message = %v", state)
	}
	if data, _ := state["data"].(map[string]interface{}); data["status"] != "idle" {
		t.Errorf("state data = %v", state["data"])
	}

	hub.BroadcastRaw([]byte(`{"type":"path_changed","path":"/music"}`))

	msg := readMessage(t, conn)
	if msg["type"] != MessageTypePathChanged {
		t.Fatalf("message = %v", msg)
	}
	if data, _ := msg["data"].(map[string]interface{}); data["path"] != "/music" {
		t.Errorf("event data = %v", msg["data"])
	}
}

func TestClient_PingPong(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	server := serveHub(t, hub)
	conn := dialWebSocket(t, server)

	if err := conn.WriteJSON(Message{Type: MessageTypePing}); err != nil {
		t.Fatal(err)
	}
	if msg := readMessage(t, conn); msg["type"] != MessageTypePong {
		t.Errorf("reply = %v, want pong", msg)
	}
}

func TestClient_DisconnectUnregisters(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	server := serveHub(t, hub)
	conn := dialWebSocket(t, server)
	waitFor(t, "registration", func() bool { return hub.GetClientCount() == 1 })

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()

	waitFor(t, "unregistration", func() bool { return hub.GetClientCount() == 0 })
}

func TestClient_OversizedMessageCloses(t *testing.T) {
	t.Parallel()

	hub, _, _ := startHub(t)
	server := serveHub(t, hub)
	conn := dialWebSocket(t, server)
	waitFor(t, "registration", func() bool { return hub.GetClientCount() == 1 })

	big := `{"type":"ping","data":"` + strings.Repeat("x", maxMessageSize) + `"}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(big)); err != nil {
		t.Fatal(err)
	}

	waitFor(t, "server to drop the client", func() bool { return hub.GetClientCount() == 0 })
}

func TestClient_HubShutdownSendsClose(t *testing.T) {
	t.Parallel()

	hub, cancel, _ := startHub(t)
	server := serveHub(t, hub)
	conn := dialWebSocket(t, server)
	waitFor(t, "registration", func() bool { return hub.GetClientCount() == 1 })

	cancel()

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	_, _, err := conn.ReadMessage()
	if err == nil {
		t.Error("expected the connection to close after hub shutdown")
	}
}
