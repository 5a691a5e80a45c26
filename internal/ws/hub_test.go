package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestBroadcastFromConcurrentSenders(t *testing.T) {
	hub := NewHub()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.AddConnection("tok", conn)
		close(registered)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the hub to register the connection")
	}

	const senders, perSender = 4, 10
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perSender; j++ {
				hub.Broadcast("tok", Message{Type: "draw_progress"})
			}
		}()
	}
	wg.Wait()

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < senders*perSender; i++ {
		if _, _, err := client.ReadMessage(); err != nil {
			t.Fatalf("read message %d: %v", i, err)
		}
	}
}

func TestBroadcastEvictsClosedConnection(t *testing.T) {
	hub := NewHub()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.AddConnection("tok", conn)
		close(registered)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the hub to register the connection")
	}
	client.Close()

	// The server-side write fails once the peer is gone; broadcasting again
	// afterwards must not find the evicted connection.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.Broadcast("tok", Message{Type: "accept_progress"})
		hub.mu.RLock()
		n := len(hub.sessions["tok"])
		hub.mu.RUnlock()
		if n == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("closed connection was never evicted from the session")
}
