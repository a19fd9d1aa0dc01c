package trace

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/glapi"
	"github.com/giongto35/gldispatch/pkg/logger"
	"github.com/giongto35/gldispatch/pkg/network"
)

func source() (*glapiState, *dispatch.Table) {
	st := &glapiState{}
	src := glapi.NewTable()
	glapi.SetClear(src, func(mask uint32) { st.cleared = mask })
	glapi.SetIsEnabled(src, func(c uint32) bool { return c == 0x0B71 })
	return st, src
}

type glapiState struct{ cleared uint32 }

func TestWrapForwardsAndCounts(t *testing.T) {
	var calls []Call
	tr := New(WithSink(SinkFunc(func(c Call) { calls = append(calls, c) })))
	st, src := source()
	disp := tr.Wrap(src)

	glapi.Clear(disp, 0x4000)
	glapi.Clear(disp, 0x100)
	if !glapi.IsEnabled(disp, 0x0B71) {
		t.Errorf("result not forwarded")
	}

	if st.cleared != 0x100 {
		t.Errorf("Clear not forwarded, got %#x", st.cleared)
	}
	if n := tr.Count(glapi.OffsetClear); n != 2 {
		t.Errorf("Clear counted %d times", n)
	}
	if tr.Total() != 3 {
		t.Errorf("total %d", tr.Total())
	}
	if len(calls) != 3 || calls[0].Name != "Clear" || calls[0].Args[0] != "16384" || calls[2].Seq != 3 {
		t.Errorf("sink got %v", calls)
	}
	counts := tr.Counts()
	if len(counts) != 2 || counts[0] != (EntryCount{Name: "Clear", Calls: 2}) {
		t.Errorf("counts %v", counts)
	}
}

func TestWrapKeepsUnboundSlots(t *testing.T) {
	_, src := source()
	disp := New().Wrap(src)
	if glapi.ProcFlush(disp) != nil {
		t.Errorf("unbound slot became bound")
	}
	if disp.Bound() != src.Bound() {
		t.Errorf("wrapped %d slots, source has %d", disp.Bound(), src.Bound())
	}
	if New().Count(glapi.Count) != 0 {
		t.Errorf("out of range count")
	}
}

func TestWithEntries(t *testing.T) {
	var names []string
	tr := New(
		WithSink(SinkFunc(func(c Call) { names = append(names, c.Name) })),
		WithEntries("glIsEnabled", "NoSuchCall"),
	)
	_, src := source()
	disp := tr.Wrap(src)
	glapi.Clear(disp, 1)
	glapi.IsEnabled(disp, 1)

	if strings.Join(names, ",") != "IsEnabled" {
		t.Errorf("sink got %v", names)
	}
	if tr.Count(glapi.OffsetClear) != 1 {
		t.Errorf("filtered calls must still be counted")
	}
	if u := tr.Unknown(); len(u) != 1 || u[0] != "NoSuchCall" {
		t.Errorf("unknown %v", u)
	}
}

func TestWithEntriesUnknown(t *testing.T) {
	tests := []struct {
		names   []string
		unknown string
	}{
		{names: []string{"glClear", "ActiveTextureARB"}},
		{names: []string{"Clear", "glFlsh", "Nope"}, unknown: "glFlsh,Nope"},
		{names: []string{"clear"}, unknown: "clear"},
		{},
	}
	for _, test := range tests {
		tr := New(WithEntries(test.names...))
		if got := strings.Join(tr.Unknown(), ","); got != test.unknown {
			t.Errorf("WithEntries(%v) unknown %q, want %q", test.names, got, test.unknown)
		}
	}
}

func TestWrapDoesNotAllocateWithoutSinks(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	delivered := 0
	sink := SinkFunc(func(Call) { delivered++ })

	tests := []struct {
		name string
		tr   *Tracer
	}{
		{name: "counts", tr: New()},
		{name: "metrics", tr: New(WithMetrics(m))},
		{name: "filtered out", tr: New(WithSink(sink), WithEntries("Flush"))},
	}
	for _, test := range tests {
		_, src := source()
		disp := test.tr.Wrap(src)
		n := testing.AllocsPerRun(100, func() {
			glapi.Clear(disp, 0x4000)
			glapi.IsEnabled(disp, 0x0B71)
		})
		if n != 0 {
			t.Errorf("%v: %v allocs per call", test.name, n)
		}
		if test.tr.Count(glapi.OffsetClear) == 0 {
			t.Errorf("%v: calls not counted", test.name)
		}
	}
	if delivered != 0 {
		t.Errorf("filtered calls reached the sink %d times", delivered)
	}
}

type refusing struct{ closed bool }

func (r *refusing) Write([]byte) bool { return false }
func (r *refusing) Close()            { r.closed = true }

func TestReport(t *testing.T) {
	stream := NewStream(logger.NewWriter(io.Discard))
	sub := &refusing{}
	stream.subs[network.NewUid()] = sub

	tr := New(WithSink(stream))
	_, src := source()
	disp := tr.Wrap(src)
	glapi.Clear(disp, 1)
	glapi.Clear(disp, 2)
	glapi.IsEnabled(disp, 3)

	r := tr.Report(stream)
	if r.Total != 3 || r.Dropped != 3 {
		t.Errorf("total %d dropped %d", r.Total, r.Dropped)
	}
	if len(r.Entries) != 2 || r.Entries[0] != (EntryCount{Name: "Clear", Calls: 2}) {
		t.Errorf("entries %v", r.Entries)
	}

	b, err := json.Marshal(New().Report(nil))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"total":0,"dropped":0,"entries":[]}` {
		t.Errorf("empty report %s", b)
	}

	_ = stream.Close()
	if !sub.closed {
		t.Errorf("subscriber not closed")
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Errorf("double registration accepted")
	}

	_, src := source()
	disp := New(WithMetrics(m)).Wrap(src)
	for i := 0; i < 3; i++ {
		glapi.Clear(disp, 0)
	}
	if v := testutil.ToFloat64(m.calls.WithLabelValues("Clear")); v != 3 {
		t.Errorf("Clear counter %v", v)
	}
	if n := testutil.CollectAndCount(m.calls); n != 1 {
		t.Errorf("idle entries exported: %d series", n)
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	tr := New(WithSink(LogSink(logger.NewWriter(&buf))))
	_, src := source()
	glapi.Clear(tr.Wrap(src), 7)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Skipf("debug logging disabled globally: %q", buf.String())
	}
	if line["message"] != "Clear" {
		t.Errorf("got %v", line)
	}
}

func TestStream(t *testing.T) {
	stream := NewStream(logger.Default())
	srv := httptest.NewServer(stream)
	defer srv.Close()

	conn, _, err := gorilla.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = conn.Close() }()

	for deadline := time.Now().Add(5 * time.Second); stream.Subscribers() == 0; {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	_, src := source()
	glapi.Clear(New(WithSink(stream)).Wrap(src), 0x4000)

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var c Call
	if err := conn.ReadJSON(&c); err != nil {
		t.Fatal(err)
	}
	if c.Name != "Clear" || c.Offset != glapi.OffsetClear || len(c.Args) != 1 || c.Args[0] != "16384" {
		t.Errorf("got %+v", c)
	}

	stream.Close()
	for deadline := time.Now().Add(5 * time.Second); stream.Subscribers() != 0; {
		if time.Now().After(deadline) {
			t.Fatal("subscriber not removed after close")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
