package websocket

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/giongto35/gldispatch/pkg/logger"
	"github.com/giongto35/gldispatch/pkg/network"
)

const (
	maxMessageSize = 10 * 1024
	pingTime       = pongTime * 9 / 10
	pongTime       = 60 * time.Second
	writeWait      = 10 * time.Second
	sendBuffer     = 256
)

type WS struct {
	id   network.Uid
	conn conn
	send chan []byte
	quit chan struct{}
	once sync.Once

	onMessage WSMessageHandler

	pingPong bool
	log      *logger.Logger

	shutdown sync.WaitGroup
	// Done is closed after both pumps exit and the connection is closed.
	Done     chan struct{}
}

type WSMessageHandler func(message []byte, err error)

// conn puts a deadline on every write. Only the writer pump writes.
type conn struct {
	*websocket.Conn
	wait time.Duration
}

func (c conn) write(t int, data []byte) error {
	if err := c.SetWriteDeadline(time.Now().Add(c.wait)); err != nil {
		return err
	}
	return c.WriteMessage(t, data)
}

// shut sends a normal close frame, when the peer is still there, and
// closes the socket.
func (c conn) shut() error {
	_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.Close()
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	WriteBufferPool: &sync.Pool{},
}

// reader pumps messages from the websocket connection to the OnMessage callback.
// Blocking, must be called as goroutine. Serializes all websocket reads.
func (ws *WS) reader() {
	defer func() {
		ws.stop()
		ws.shutdown.Done()
		ws.log.Debug().Msgf("%v [ws] CLOSE READER", ws.id.Short())
	}()
	ws.conn.SetReadLimit(maxMessageSize)
	if ws.pingPong {
		_ = ws.conn.SetReadDeadline(time.Now().Add(pongTime))
		ws.conn.SetPongHandler(func(string) error { return ws.conn.SetReadDeadline(time.Now().Add(pongTime)) })
	}
	for {
		_, message, err := ws.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ws.log.Warn().Err(err).Msgf("%v [ws] read", ws.id.Short())
			}
			return
		}
		if ws.onMessage != nil {
			ws.onMessage(message, err)
		}
	}
}

// writer pumps messages from the send channel to the websocket connection.
// Blocking, must be called as goroutine. Serializes all websocket writes.
func (ws *WS) writer() {
	var tick <-chan time.Time
	if ws.pingPong {
		ticker := time.NewTicker(pingTime)
		defer ticker.Stop()
		tick = ticker.C
	}
	defer func() {
		ws.stop()
		// unblocks the reader
		_ = ws.conn.shut()
		ws.shutdown.Done()
		ws.log.Debug().Msgf("%v [ws] CLOSE WRITER", ws.id.Short())
	}()
	for {
		select {
		case <-ws.quit:
			return
		case message := <-ws.send:
			if err := ws.conn.write(websocket.TextMessage, message); err != nil {
				ws.log.Debug().Err(err).Msgf("%v [ws] write", ws.id.Short())
				return
			}
		case <-tick:
			if err := ws.conn.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// NewServer upgrades an HTTP request into a websocket peer.
// onMessage may be nil.
func NewServer(w http.ResponseWriter, r *http.Request, onMessage WSMessageHandler, log *logger.Logger) (*WS, error) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return newSocket(c, true, onMessage, log), nil
}

func NewClient(address url.URL, onMessage WSMessageHandler, log *logger.Logger) (*WS, error) {
	c, _, err := websocket.DefaultDialer.Dial(address.String(), nil)
	if err != nil {
		return nil, err
	}
	return newSocket(c, false, onMessage, log), nil
}

func newSocket(c *websocket.Conn, pingPong bool, onMessage WSMessageHandler, log *logger.Logger) *WS {
	if log == nil {
		log = logger.Default()
	}
	ws := &WS{
		id:        network.NewUid(),
		conn:      conn{Conn: c, wait: writeWait},
		send:      make(chan []byte, sendBuffer),
		quit:      make(chan struct{}),
		onMessage: onMessage,
		pingPong:  pingPong,
		log:       log,
		Done:      make(chan struct{}),
	}
	ws.shutdown.Add(2)
	go ws.writer()
	go ws.reader()
	go func() {
		ws.shutdown.Wait()
		close(ws.Done)
	}()
	return ws
}

func (ws *WS) Id() network.Uid { return ws.id }

// Write queues data without blocking. It returns false when the peer is
// gone or too slow to keep up.
func (ws *WS) Write(data []byte) bool {
	select {
	case <-ws.quit:
		return false
	default:
	}
	select {
	case ws.send <- data:
		return true
	default:
		return false
	}
}

// Close sends a close frame and tears the connection down.
func (ws *WS) Close() { ws.stop() }

func (ws *WS) stop() { ws.once.Do(func() { close(ws.quit) }) }
