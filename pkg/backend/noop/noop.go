// Package noop fills every slot with a stub that returns zero values and
// warns once per entry point. It stands in for the real implementation
// when no GL context is current.
package noop

import (
	"sync"

	"github.com/giongto35/gldispatch/pkg/backend"
	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/glapi"
	"github.com/giongto35/gldispatch/pkg/logger"
)

const Name = "noop"

func init() {
	backend.Register(Name, func(opts backend.Options) backend.Backend { return New(opts.Log) })
}

type Noop struct {
	log *logger.Logger

	mu     sync.Mutex
	warned [glapi.Count]bool
	calls  int
}

func New(log *logger.Logger) *Noop {
	if log == nil {
		log = logger.Default()
	}
	return &Noop{log: log.Extend(log.With().Str("m", Name))}
}

func (n *Noop) Name() string { return Name }
func (n *Noop) Init() error  { return nil }
func (n *Noop) Close() error { return nil }

// Populate binds all slots of t.
func (n *Noop) Populate(t *dispatch.Table) (int, error) {
	if t.Len() < glapi.Count {
		return 0, &dispatch.RangeError{Offset: glapi.Count - 1, Len: t.Len()}
	}
	bind(t, n)
	return glapi.Count, nil
}

// Table returns a fresh table bound to n.
func (n *Noop) Table() *dispatch.Table {
	t := glapi.NewTable()
	bind(t, n)
	return t
}

// Calls is the number of stub invocations so far.
func (n *Noop) Calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

func (n *Noop) warn(off dispatch.Offset) {
	n.mu.Lock()
	n.calls++
	first := !n.warned[off]
	n.warned[off] = true
	n.mu.Unlock()
	if first {
		n.log.Warn().Msgf("GL call without current context: %v", glapi.Signature(off))
	}
}
