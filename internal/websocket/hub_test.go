package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/logger"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	r := mux.NewRouter()
	r.HandleFunc("/api/flights/{flightId}/ws", hub.HandleWebSocket)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, flightID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/flights/" + flightID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, flightID uuid.UUID, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.GetClientCount(flightID) == n
	}, time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastSeatsGenerated(t *testing.T) {
	hub, srv := startHub(t)
	flightID := uuid.New()

	conn := dial(t, srv, flightID.String())
	waitForClients(t, hub, flightID, 1)

	hub.BroadcastSeatsGenerated(flightID.String(), 126)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))

	assert.Equal(t, MessageTypeSeatsGenerated, msg.Type)
	assert.Equal(t, flightID.String(), msg.FlightID)
	assert.Equal(t, 126, msg.Count)
	assert.NotZero(t, msg.Timestamp)
}

func TestHub_OnlyTargetFlightReceives(t *testing.T) {
	hub, srv := startHub(t)
	watched, other := uuid.New(), uuid.New()

	target := dial(t, srv, watched.String())
	bystander := dial(t, srv, other.String())
	waitForClients(t, hub, watched, 1)
	waitForClients(t, hub, other, 1)

	hub.BroadcastSchedulesGenerated(watched.String(), 2)

	target.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, target.ReadJSON(&msg))
	assert.Equal(t, MessageTypeSchedulesGenerated, msg.Type)
	assert.Equal(t, 2, msg.Count)

	bystander.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := bystander.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub, srv := startHub(t)
	flightID := uuid.New()

	conn := dial(t, srv, flightID.String())
	waitForClients(t, hub, flightID, 1)

	conn.Close()
	waitForClients(t, hub, flightID, 0)
}

func TestHandleWebSocket_InvalidFlightID(t *testing.T) {
	_, srv := startHub(t)

	resp, err := http.Get(srv.URL + "/api/flights/not-a-uuid/ws")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	hub := NewHub(logger.NewNop())

	// Queued without a running loop; must not block
	for i := 0; i < 300; i++ {
		hub.BroadcastSeatsGenerated(uuid.NewString(), i)
	}
	assert.Equal(t, 0, hub.GetClientCount(uuid.New()))
}
