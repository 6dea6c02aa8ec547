package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"pixel_bistro/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = (pongWait * 9) / 10
	maxFrameSize = 1 << 16
	sendBuffer   = 64
	roomIDLength = 4
)

// Connection status strings surfaced to the presentation layer.
const (
	StatusIdle         = "idle"
	StatusWaiting      = "waiting for guest"
	StatusConnecting   = "connecting"
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

var (
	ErrUnknownRoom = errors.New("unknown room")
	ErrRoomFull    = errors.New("room already has a guest")
)

// Options configure a PeerLink.
type Options struct {
	HostURL     string     // ws://host:port of the hosting server
	Rate        rate.Limit // inbound frames per second
	Burst       int
	Dialer      *websocket.Dialer
	Log         *logger.Logger
	CheckOrigin func(r *http.Request) bool
}

// PeerLink is a two-party websocket link. A host initializes a room and
// accepts exactly one guest; a guest dials the host's room. Sends are
// fire-and-forget and dropped when no peer is attached or the queue is full.
type PeerLink struct {
	opts     Options
	upgrader websocket.Upgrader
	log      *logger.Logger

	mu        sync.Mutex
	room      string
	reserved  bool
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	limiter   *rate.Limiter
	status    string
	onData    func([]byte)
	onConnect func()
}

// NewPeerLink returns an idle link.
func NewPeerLink(opts Options) *PeerLink {
	if opts.Dialer == nil {
		opts.Dialer = &websocket.Dialer{HandshakeTimeout: writeWait}
	}
	if opts.Rate == 0 && opts.Burst == 0 {
		opts.Rate, opts.Burst = rate.Inf, 1
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	check := opts.CheckOrigin
	if check == nil {
		check = func(*http.Request) bool { return true }
	}
	return &PeerLink{
		opts:     opts,
		upgrader: websocket.Upgrader{CheckOrigin: check},
		log:      log,
		status:   StatusIdle,
	}
}

// Initialize opens a fresh room and returns its id.
func (p *PeerLink) Initialize() (string, error) {
	p.Cleanup()

	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:roomIDLength])
	p.mu.Lock()
	p.room = id
	p.status = StatusWaiting
	p.mu.Unlock()
	p.log.Infow("peer_room_open", "room", id)
	return id, nil
}

// Room returns the open room id, if any.
func (p *PeerLink) Room() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.room
}

// OnData registers the inbound frame handler. It runs on the read goroutine.
func (p *PeerLink) OnData(fn func([]byte)) {
	p.mu.Lock()
	p.onData = fn
	p.mu.Unlock()
}

// OnConnect registers the callback fired once a peer is attached.
func (p *PeerLink) OnConnect(fn func()) {
	p.mu.Lock()
	p.onConnect = fn
	p.mu.Unlock()
}

// Status returns the human readable connection status.
func (p *PeerLink) Status() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Connected reports whether a peer is attached.
func (p *PeerLink) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn != nil
}

// ConnectToHost dials the host's room. Failures are reported through
// Status as well as the returned error.
func (p *PeerLink) ConnectToHost(ctx context.Context, room string) error {
	room = strings.ToUpper(strings.TrimSpace(room))
	p.mu.Lock()
	p.status = StatusConnecting
	p.mu.Unlock()

	url := strings.TrimRight(p.opts.HostURL, "/") + "/peer/" + room
	conn, resp, err := p.opts.Dialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			err = fmt.Errorf("%w (status %d)", err, resp.StatusCode)
		}
		p.setStatus("connection failed: " + err.Error())
		p.log.Warnw("peer_dial_failed", "room", room, "err", err)
		return fmt.Errorf("connect to room %s: %w", room, err)
	}

	p.mu.Lock()
	p.room = room
	p.mu.Unlock()
	p.attach(conn)
	return nil
}

// Accept upgrades an inbound guest connection for room.
func (p *PeerLink) Accept(w http.ResponseWriter, r *http.Request, room string) error {
	p.mu.Lock()
	switch {
	case p.room == "" || !strings.EqualFold(room, p.room):
		p.mu.Unlock()
		return ErrUnknownRoom
	case p.conn != nil || p.reserved:
		p.mu.Unlock()
		return ErrRoomFull
	}
	p.reserved = true
	p.mu.Unlock()

	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.mu.Lock()
		p.reserved = false
		p.mu.Unlock()
		return fmt.Errorf("upgrade peer: %w", err)
	}
	p.attach(conn)
	return nil
}

// Send queues data for the peer without blocking. It reports whether the
// frame was queued.
func (p *PeerLink) Send(data []byte) bool {
	p.mu.Lock()
	ch, done := p.send, p.done
	p.mu.Unlock()
	if ch == nil {
		return false
	}
	// A closed link must never report a frame as queued, even with buffer room left.
	select {
	case <-done:
		return false
	default:
	}
	select {
	case ch <- data:
		return true
	default:
		p.log.Debugw("peer_send_dropped", "bytes", len(data))
		return false
	}
}

// Cleanup drops the peer and closes the room.
func (p *PeerLink) Cleanup() {
	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn != nil {
		p.detach(conn, StatusIdle)
	}
	p.mu.Lock()
	p.room = ""
	p.reserved = false
	p.status = StatusIdle
	p.mu.Unlock()
}

func (p *PeerLink) attach(conn *websocket.Conn) {
	send := make(chan []byte, sendBuffer)
	done := make(chan struct{})

	p.mu.Lock()
	p.conn = conn
	p.reserved = false
	p.send = send
	p.done = done
	p.limiter = rate.NewLimiter(p.opts.Rate, p.opts.Burst)
	p.status = StatusConnected
	onConnect := p.onConnect
	p.mu.Unlock()

	p.log.Infow("peer_connected", "remote", conn.RemoteAddr().String())
	go p.writePump(conn, send, done)
	go p.readPump(conn)

	if onConnect != nil {
		onConnect()
	}
}

func (p *PeerLink) detach(conn *websocket.Conn, status string) {
	p.mu.Lock()
	if p.conn != conn {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.conn = nil
	p.send = nil
	p.done = nil
	p.status = status
	p.mu.Unlock()

	_ = conn.Close()
	p.log.Infow("peer_detached", "status", status)
}

func (p *PeerLink) setStatus(s string) {
	p.mu.Lock()
	p.status = s
	p.mu.Unlock()
}

func (p *PeerLink) readPump(conn *websocket.Conn) {
	defer p.detach(conn, StatusDisconnected)

	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				p.log.Warnw("peer_read_failed", "err", err)
			}
			return
		}

		p.mu.Lock()
		limiter, handler := p.limiter, p.onData
		p.mu.Unlock()
		if limiter != nil && !limiter.Allow() {
			p.log.Debugw("peer_frame_throttled", "bytes", len(msg))
			continue
		}
		if handler != nil {
			handler(msg)
		}
	}
}

func (p *PeerLink) writePump(conn *websocket.Conn, send <-chan []byte, done <-chan struct{}) {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case msg := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				p.log.Warnw("peer_write_failed", "err", err)
				p.detach(conn, StatusDisconnected)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				p.detach(conn, StatusDisconnected)
				return
			}
		}
	}
}
