package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// received is the envelope as decoded by a subscriber
type received struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleConnection))
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func joinRoom(t *testing.T, conn *websocket.Conn, room string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "join", "room": room}))
	// joins are processed asynchronously by the hub's run loop
	time.Sleep(200 * time.Millisecond)
}

func readEvent(t *testing.T, conn *websocket.Conn) received {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg received
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func requireNoEvent(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var msg received
	require.Error(t, conn.ReadJSON(&msg), "expected no further events, got %v", msg)
}

func TestHub_PublishToJoinedRoom(t *testing.T) {
	hub, srv := newTestServer(t)

	conn := dial(t, srv)
	joinRoom(t, conn, "seller1")

	hub.Publish("seller1", EventBidCreated, map[string]string{"bid_id": "bid1"})

	msg := readEvent(t, conn)
	require.Equal(t, EventBidCreated, msg.Event)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	require.Equal(t, "bid1", payload["bid_id"])

	// exactly one delivery per publish
	requireNoEvent(t, conn)
}

func TestHub_RoomIsolation(t *testing.T) {
	hub, srv := newTestServer(t)

	sellerConn := dial(t, srv)
	joinRoom(t, sellerConn, "seller1")

	clientConn := dial(t, srv)
	joinRoom(t, clientConn, "client1")

	hub.Publish("seller1", EventBidCreated, map[string]string{"bid_id": "bid1"})

	msg := readEvent(t, sellerConn)
	require.Equal(t, EventBidCreated, msg.Event)

	// the client room saw nothing
	requireNoEvent(t, clientConn)
}

func TestHub_MultipleConnectionsSameRoom(t *testing.T) {
	hub, srv := newTestServer(t)

	// same seller open in two tabs
	first := dial(t, srv)
	joinRoom(t, first, "seller1")
	second := dial(t, srv)
	joinRoom(t, second, "seller1")

	hub.Publish("seller1", EventBidStatusUpdated, map[string]string{"bid_id": "bid1", "status": "accepted"})

	for _, conn := range []*websocket.Conn{first, second} {
		msg := readEvent(t, conn)
		require.Equal(t, EventBidStatusUpdated, msg.Event)
	}
}

func TestHub_NoDeliveryBeforeJoin(t *testing.T) {
	hub, srv := newTestServer(t)

	conn := dial(t, srv)

	// connected but not joined to any room; no queueing, no replay
	hub.Publish("seller1", EventBidCreated, map[string]string{"bid_id": "bid1"})
	time.Sleep(100 * time.Millisecond)

	joinRoom(t, conn, "seller1")
	requireNoEvent(t, conn)
}

func TestHub_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub, _ := newTestServer(t)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish("ghost-room", EventBidCreated, map[string]int{"n": i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked with no subscribers")
	}
}

func TestHub_ClientCanJoinMultipleRooms(t *testing.T) {
	hub, srv := newTestServer(t)

	conn := dial(t, srv)
	joinRoom(t, conn, "seller1")
	joinRoom(t, conn, "client1")

	hub.Publish("seller1", EventBidCreated, map[string]string{"bid_id": "bid1"})
	msg := readEvent(t, conn)
	require.Equal(t, EventBidCreated, msg.Event)

	hub.Publish("client1", EventBidStatusUpdated, map[string]string{"bid_id": "bid1", "status": "rejected"})
	msg = readEvent(t, conn)
	require.Equal(t, EventBidStatusUpdated, msg.Event)
}
