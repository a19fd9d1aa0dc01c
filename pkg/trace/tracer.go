// Package trace interposes a recording layer between callers and a
// dispatch table.
package trace

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/glapi"
)

// Call is one recorded invocation.
type Call struct {
	Seq    uint64          `json:"seq"`
	Offset dispatch.Offset `json:"offset"`
	Name   string          `json:"name"`
	Args   []string        `json:"args,omitempty"`
	Time   time.Time       `json:"time"`
}

func (c Call) String() string { return fmt.Sprintf("#%d %s%v", c.Seq, c.Name, c.Args) }

// Sink receives calls as they happen, on the caller's goroutine.
type Sink interface {
	Record(Call)
}

type SinkFunc func(Call)

func (f SinkFunc) Record(c Call) { f(c) }

type Tracer struct {
	seq     atomic.Uint64
	counts  [glapi.Count]atomic.Uint64
	sinks   []Sink
	metrics *Metrics
	// nil means every entry goes to the sinks
	only    *[glapi.Count]bool
	unknown []string
}

type Option func(*Tracer)

func WithSink(s Sink) Option { return func(tr *Tracer) { tr.sinks = append(tr.sinks, s) } }

func WithMetrics(m *Metrics) Option { return func(tr *Tracer) { tr.metrics = m } }

// WithEntries limits what reaches the sinks to the named entry points.
// Counting is not affected. Names that match no entry point are kept in
// Unknown.
func WithEntries(names ...string) Option {
	return func(tr *Tracer) {
		if len(names) == 0 {
			return
		}
		var only [glapi.Count]bool
		for _, name := range names {
			if e, ok := glapi.Lookup(name); ok {
				only[e.Offset()] = true
			} else {
				tr.unknown = append(tr.unknown, name)
			}
		}
		tr.only = &only
	}
}

func New(opts ...Option) *Tracer {
	tr := &Tracer{}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// Wrap returns a new table whose slots record each call and then forward
// to the function bound in src at the time of wrapping. Slots unbound in
// src stay unbound.
func (tr *Tracer) Wrap(src *dispatch.Table) *dispatch.Table {
	dst := glapi.NewTable()
	wrap(tr, src, dst)
	return dst
}

// Unknown lists the WithEntries names that matched no entry point.
func (tr *Tracer) Unknown() []string { return tr.unknown }

// hit counts a call to off and reports whether a sink wants it. The
// arguments are only boxed for emit when it does.
func (tr *Tracer) hit(off dispatch.Offset) (seq uint64, wanted bool) {
	tr.counts[off].Add(1)
	seq = tr.seq.Add(1)
	if tr.metrics != nil {
		tr.metrics.inc(off)
	}
	return seq, len(tr.sinks) > 0 && (tr.only == nil || tr.only[off])
}

func (tr *Tracer) emit(seq uint64, off dispatch.Offset, args ...any) {
	c := Call{Seq: seq, Offset: off, Name: glapi.Name(off), Time: time.Now()}
	if len(args) > 0 {
		c.Args = make([]string, len(args))
		for i, a := range args {
			c.Args[i] = fmt.Sprint(a)
		}
	}
	for _, s := range tr.sinks {
		s.Record(c)
	}
}

// Count returns how many times slot o was called through the tracer.
func (tr *Tracer) Count(o dispatch.Offset) uint64 {
	if uint(o) >= glapi.Count {
		return 0
	}
	return tr.counts[o].Load()
}

// Total is the number of calls recorded so far.
func (tr *Tracer) Total() uint64 { return tr.seq.Load() }

// EntryCount is a per-entry total.
type EntryCount struct {
	Name  string `json:"name"`
	Calls uint64 `json:"calls"`
}

// Counts lists the entry points called at least once, busiest first.
func (tr *Tracer) Counts() []EntryCount {
	var out []EntryCount
	for i := range tr.counts {
		if n := tr.counts[i].Load(); n > 0 {
			out = append(out, EntryCount{Name: glapi.Name(dispatch.Offset(i)), Calls: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Calls > out[j].Calls })
	return out
}

// Report is a snapshot of a tracer and the stream fed by it.
type Report struct {
	Total uint64 `json:"total"`
	// Dropped counts calls a slow trace subscriber never got.
	Dropped uint64       `json:"dropped"`
	Entries []EntryCount `json:"entries"`
}

// Report summarizes the calls so far. s may be nil.
func (tr *Tracer) Report(s *Stream) Report {
	r := Report{Total: tr.Total(), Entries: tr.Counts()}
	if r.Entries == nil {
		r.Entries = []EntryCount{}
	}
	if s != nil {
		r.Dropped = s.Dropped()
	}
	return r
}
