package network

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

// dialTestServer upgrades one server-side connection and hands both ends to
// the test.
func dialTestServer(t *testing.T) (*WSConnection, *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	serverConns := make(chan *WSConnection, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		serverConns <- NewWSConnection(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url+"/", nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	server := <-serverConns
	t.Cleanup(func() { server.Close() })
	return server, client
}

func TestWSConnection_ReadEnvelope(t *testing.T) {
	server, client := dialTestServer(t)

	msg := `{"event":"create-room","data":{"username":"Alice"}}`
	if err := client.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("client write failed: %v", err)
	}

	env, err := server.ReadEnvelope()
	if err != nil {
		t.Fatalf("ReadEnvelope failed: %v", err)
	}
	if env.Event != EventCreateRoom {
		t.Errorf("Expected event %q, got %q", EventCreateRoom, env.Event)
	}

	var payload struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("payload did not round-trip: %v", err)
	}
	if payload.Username != "Alice" {
		t.Errorf("Expected username Alice, got %q", payload.Username)
	}
}

func TestWSConnection_ReadEnvelope_Malformed(t *testing.T) {
	server, client := dialTestServer(t)

	cases := []string{
		"not json at all",
		`{"data":{}}`, // missing event tag
	}
	for _, raw := range cases {
		if err := client.WriteMessage(websocket.TextMessage, []byte(raw)); err != nil {
			t.Fatalf("client write failed: %v", err)
		}
		_, err := server.ReadEnvelope()
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("frame %q: expected ErrMalformed, got %v", raw, err)
		}
	}

	// The connection survives bad frames.
	if err := client.WriteMessage(websocket.TextMessage, []byte(`{"event":"draw"}`)); err != nil {
		t.Fatalf("client write failed: %v", err)
	}
	env, err := server.ReadEnvelope()
	if err != nil {
		t.Fatalf("ReadEnvelope after bad frames failed: %v", err)
	}
	if env.Event != EventDraw {
		t.Errorf("Expected event %q, got %q", EventDraw, env.Event)
	}
}

func TestWSConnection_Send(t *testing.T) {
	server, client := dialTestServer(t)

	payload := map[string]string{"name": "AB12CD"}
	if err := server.Send(EventRoomClosed, payload); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	var env Envelope
	if err := client.ReadJSON(&env); err != nil {
		t.Fatalf("client read failed: %v", err)
	}
	if env.Event != EventRoomClosed {
		t.Errorf("Expected event %q, got %q", EventRoomClosed, env.Event)
	}

	var got map[string]string
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("payload did not round-trip: %v", err)
	}
	if got["name"] != "AB12CD" {
		t.Errorf("Expected name AB12CD, got %q", got["name"])
	}
}
