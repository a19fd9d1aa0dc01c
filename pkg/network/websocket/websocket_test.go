package websocket

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/giongto35/gldispatch/pkg/logger"
)

func TestWebsocketRoundTrip(t *testing.T) {
	log := logger.Default()
	peers := make(chan *WS, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := NewServer(w, r, nil, log)
		if err != nil {
			t.Error(err)
			return
		}
		peers <- ws
	}))
	defer srv.Close()

	got := make(chan string, 1)
	u := url.URL{Scheme: "ws", Host: srv.Listener.Addr().String(), Path: "/"}
	client, err := NewClient(u, func(message []byte, err error) { got <- string(message) }, log)
	if err != nil {
		t.Fatal(err)
	}

	var server *WS
	select {
	case server = <-peers:
	case <-time.After(5 * time.Second):
		t.Fatal("no server peer")
	}

	if !server.Write([]byte("hello")) {
		t.Fatal("write refused")
	}
	select {
	case m := <-got:
		if m != "hello" {
			t.Errorf("got %q", m)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no message")
	}

	client.Close()
	for _, ws := range []*WS{client, server} {
		select {
		case <-ws.Done:
		case <-time.After(5 * time.Second):
			t.Fatalf("%v did not shut down", ws.Id())
		}
	}
	if server.Write([]byte("late")) {
		t.Errorf("write after close accepted")
	}
}

func TestCloseSendsNormalClosure(t *testing.T) {
	peers := make(chan *WS, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := NewServer(w, r, nil, logger.Default())
		if err != nil {
			t.Error(err)
			return
		}
		peers <- ws
	}))
	defer srv.Close()

	u := url.URL{Scheme: "ws", Host: srv.Listener.Addr().String(), Path: "/"}
	client, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = client.Close() }()

	var server *WS
	select {
	case server = <-peers:
	case <-time.After(5 * time.Second):
		t.Fatal("no server peer")
	}
	server.Close()

	_ = client.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err = client.ReadMessage()
	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) || closeErr.Code != websocket.CloseNormalClosure {
		t.Errorf("got %v, want a normal close frame", err)
	}
	select {
	case <-server.Done:
	case <-time.After(5 * time.Second):
		t.Fatal("server peer did not shut down")
	}
}
