package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

// hostServer exposes host.Accept at /peer/{room}.
func hostServer(t *testing.T, host *PeerLink) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		room := strings.TrimPrefix(r.URL.Path, "/peer/")
		err := host.Accept(w, r, room)
		switch {
		case errors.Is(err, ErrUnknownRoom):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrRoomFull):
			http.Error(w, err.Error(), http.StatusConflict)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func recv(t *testing.T, ch <-chan []byte) string {
	t.Helper()
	select {
	case b := <-ch:
		return string(b)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for frame")
	}
	return ""
}

func TestPeerLink_RoundTrip(t *testing.T) {
	host := NewPeerLink(Options{})
	room, err := host.Initialize()
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if len(room) != 4 || strings.ToUpper(room) != room {
		t.Fatalf("unexpected room id %q", room)
	}
	if host.Status() != StatusWaiting {
		t.Fatalf("host status=%q", host.Status())
	}

	connected := make(chan struct{}, 1)
	fromGuest := make(chan []byte, 4)
	host.OnConnect(func() { connected <- struct{}{} })
	host.OnData(func(b []byte) { fromGuest <- b })

	srv := hostServer(t, host)

	guest := NewPeerLink(Options{HostURL: wsURL(srv)})
	fromHost := make(chan []byte, 4)
	guest.OnData(func(b []byte) { fromHost <- b })
	t.Cleanup(guest.Cleanup)
	t.Cleanup(host.Cleanup)

	if err := guest.ConnectToHost(context.Background(), strings.ToLower(room)); err != nil {
		t.Fatalf("connect: %v", err)
	}
	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatalf("host never saw the guest")
	}

	if !guest.Send([]byte("ping-from-guest")) {
		t.Fatalf("guest send dropped")
	}
	if got := recv(t, fromGuest); got != "ping-from-guest" {
		t.Fatalf("host got %q", got)
	}
	if !host.Send([]byte("ping-from-host")) {
		t.Fatalf("host send dropped")
	}
	if got := recv(t, fromHost); got != "ping-from-host" {
		t.Fatalf("guest got %q", got)
	}
	if host.Status() != StatusConnected || guest.Status() != StatusConnected {
		t.Fatalf("statuses host=%q guest=%q", host.Status(), guest.Status())
	}
}

func TestPeerLink_RejectsUnknownRoomAndSecondGuest(t *testing.T) {
	host := NewPeerLink(Options{})
	room, _ := host.Initialize()
	srv := hostServer(t, host)
	t.Cleanup(host.Cleanup)

	stranger := NewPeerLink(Options{HostURL: wsURL(srv)})
	if err := stranger.ConnectToHost(context.Background(), "ZZZZ"); err == nil {
		t.Fatalf("expected unknown room to fail")
	}
	if !strings.HasPrefix(stranger.Status(), "connection failed") {
		t.Fatalf("status=%q", stranger.Status())
	}

	first := NewPeerLink(Options{HostURL: wsURL(srv)})
	t.Cleanup(first.Cleanup)
	if err := first.ConnectToHost(context.Background(), room); err != nil {
		t.Fatalf("first guest: %v", err)
	}
	second := NewPeerLink(Options{HostURL: wsURL(srv)})
	if err := second.ConnectToHost(context.Background(), room); err == nil {
		t.Fatalf("expected second guest to be refused")
	}
}

func TestPeerLink_SendWithoutPeerDrops(t *testing.T) {
	p := NewPeerLink(Options{})
	if p.Send([]byte("x")) {
		t.Fatalf("send with no peer must report a drop")
	}
	if p.Connected() {
		t.Fatalf("idle link reports connected")
	}
}

func TestPeerLink_ThrottlesInbound(t *testing.T) {
	host := NewPeerLink(Options{Rate: rate.Limit(0), Burst: 2})
	room, _ := host.Initialize()
	got := make(chan []byte, 8)
	host.OnData(func(b []byte) { got <- b })
	srv := hostServer(t, host)
	t.Cleanup(host.Cleanup)

	guest := NewPeerLink(Options{HostURL: wsURL(srv)})
	t.Cleanup(guest.Cleanup)
	if err := guest.ConnectToHost(context.Background(), room); err != nil {
		t.Fatalf("connect: %v", err)
	}
	for i := 0; i < 5; i++ {
		guest.Send([]byte{byte('a' + i)})
	}

	if a, b := recv(t, got), recv(t, got); a != "a" || b != "b" {
		t.Fatalf("got %q %q", a, b)
	}
	select {
	case extra := <-got:
		t.Fatalf("frame %q passed the limiter", extra)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPeerLink_CleanupClosesRoom(t *testing.T) {
	host := NewPeerLink(Options{})
	room, _ := host.Initialize()
	srv := hostServer(t, host)

	guest := NewPeerLink(Options{HostURL: wsURL(srv)})
	if err := guest.ConnectToHost(context.Background(), room); err != nil {
		t.Fatalf("connect: %v", err)
	}
	host.Cleanup()
	if host.Room() != "" || host.Status() != StatusIdle || host.Connected() {
		t.Fatalf("cleanup left state: room=%q status=%q", host.Room(), host.Status())
	}

	deadline := time.Now().Add(2 * time.Second)
	for guest.Connected() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if guest.Connected() {
		t.Fatalf("guest never noticed the host leaving")
	}
	if guest.Status() != StatusDisconnected {
		t.Fatalf("guest status=%q", guest.Status())
	}
}

func TestPeerLink_SendAfterCloseNeverQueues(t *testing.T) {
	p := NewPeerLink(Options{})
	done := make(chan struct{})
	close(done)
	p.mu.Lock()
	p.send = make(chan []byte, sendBuffer)
	p.done = done
	p.mu.Unlock()

	// select picks among ready cases at random; repeat so a wrong order shows up.
	for i := 0; i < 200; i++ {
		if p.Send([]byte("x")) {
			t.Fatalf("send %d reported queued on a closed link", i)
		}
	}
	if n := len(p.send); n != 0 {
		t.Fatalf("%d frames queued on a closed link", n)
	}
}
