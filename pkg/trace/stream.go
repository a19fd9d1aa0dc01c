package trace

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/giongto35/gldispatch/pkg/logger"
	"github.com/giongto35/gldispatch/pkg/network"
	"github.com/giongto35/gldispatch/pkg/network/websocket"
)

// Stream fans recorded calls out to websocket subscribers as JSON text
// messages, one Call per message. Slow subscribers lose calls instead of
// stalling the GL thread.
type Stream struct {
	mu      sync.RWMutex
	subs    map[network.Uid]subscriber
	dropped atomic.Uint64
	log     *logger.Logger
}

type subscriber interface {
	Write([]byte) bool
	Close()
}

func NewStream(log *logger.Logger) *Stream {
	return &Stream{subs: make(map[network.Uid]subscriber), log: log}
}

func (s *Stream) Record(c Call) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.subs) == 0 {
		return
	}
	data, err := json.Marshal(c)
	if err != nil {
		s.log.Error().Err(err).Msg("trace encode")
		return
	}
	for _, sub := range s.subs {
		if !sub.Write(data) {
			s.dropped.Add(1)
		}
	}
}

// ServeHTTP upgrades the request and streams calls until the peer leaves.
func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.NewServer(w, r, nil, s.log)
	if err != nil {
		s.log.Warn().Err(err).Msg("trace subscribe")
		return
	}
	id := ws.Id()
	s.mu.Lock()
	s.subs[id] = ws
	s.mu.Unlock()
	s.log.Info().Str("id", id.Short()).Msg("trace subscriber joined")

	go func() {
		<-ws.Done
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
		s.log.Info().Str("id", id.Short()).Msg("trace subscriber left")
	}()
}

func (s *Stream) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Dropped counts messages not delivered to a subscriber.
func (s *Stream) Dropped() uint64 { return s.dropped.Load() }

// Close disconnects every subscriber.
func (s *Stream) Close() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subs {
		sub.Close()
	}
	return nil
}
