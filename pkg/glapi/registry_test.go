package glapi

import (
	"bufio"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/giongto35/gldispatch/pkg/dispatch"
)

func TestOffsetsArePermutation(t *testing.T) {
	seen := make(map[dispatch.Offset]string, Count)
	names := make(map[string]bool, Count)
	for i, e := range Entries() {
		if e.Offset() != dispatch.Offset(i) {
			t.Errorf("%s sits at %d but claims offset %d", e.Name(), i, e.Offset())
		}
		if prev, ok := seen[e.Offset()]; ok {
			t.Errorf("offset %d shared by %s and %s", e.Offset(), prev, e.Name())
		}
		if names[e.Name()] {
			t.Errorf("duplicate name %s", e.Name())
		}
		seen[e.Offset()] = e.Name()
		names[e.Name()] = true
	}
	if len(seen) != Count {
		t.Errorf("got %d offsets, want %d", len(seen), Count)
	}
}

// Offsets already handed out must never move.
func TestPublishedABI(t *testing.T) {
	f, err := os.Open("../../api/abi.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			t.Fatalf("bad abi line %q", line)
		}
		off, err := strconv.Atoi(fields[0])
		if err != nil {
			t.Fatal(err)
		}
		if got := Name(dispatch.Offset(off)); got != fields[1] {
			t.Errorf("offset %d is %q, published as %q", off, got, fields[1])
		}
		n++
	}
	if n > Count {
		t.Errorf("registry dropped entries: %d published, %d known", n, Count)
	}
}

func TestHistoricalOffsets(t *testing.T) {
	tests := []struct {
		off  dispatch.Offset
		want dispatch.Offset
	}{
		{off: OffsetNewList, want: 0},
		{off: OffsetBegin, want: 7},
		{off: OffsetEnd, want: 43},
		{off: OffsetClear, want: 203},
		{off: OffsetFlush, want: 217},
		{off: OffsetGetString, want: 275},
		{off: OffsetDrawArrays, want: 310},
		{off: OffsetTexImage3D, want: 371},
		{off: OffsetActiveTextureARB, want: 374},
		{off: OffsetMultiTexCoord4svARB, want: 407},
	}
	for _, test := range tests {
		if test.off != test.want {
			t.Errorf("%s at %d, want %d", Name(test.off), test.off, test.want)
		}
	}
}

func TestClearFlushScenario(t *testing.T) {
	disp := NewTable()

	var cleared uint32
	myClear := func(mask uint32) { cleared = mask }
	SetClear(disp, myClear)

	if ProcClear(disp) == nil {
		t.Fatalf("Clear not bound")
	}
	if ProcFlush(disp) != nil {
		t.Fatalf("Flush should be unbound")
	}
	Clear(disp, 0x4000)
	if cleared != 0x4000 {
		t.Errorf("Clear got mask %#x", cleared)
	}

	flushed := false
	SetFlush(disp, func() { flushed = true })
	Flush(disp)
	if !flushed {
		t.Errorf("Flush implementation not invoked")
	}

	if disp.Slot(Count) != nil {
		t.Errorf("one past the last slot must read as nil")
	}
}

func TestReturnValuesPassThrough(t *testing.T) {
	disp := NewTable()
	version := []byte("2.1 test\x00")
	SetGetString(disp, func(name uint32) *uint8 { return &version[0] })
	SetIsEnabled(disp, func(c uint32) bool { return c == 0x0B71 })
	SetGenLists(disp, func(n int32) uint32 { return uint32(n) * 10 })

	if p := GetString(disp, 0x1F02); p != &version[0] {
		t.Errorf("GetString returned %v", p)
	}
	if !IsEnabled(disp, 0x0B71) || IsEnabled(disp, 0) {
		t.Errorf("IsEnabled result lost")
	}
	if GenLists(disp, 3) != 30 {
		t.Errorf("GenLists result lost")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		off  dispatch.Offset
		ok   bool
	}{
		{name: "Clear", off: OffsetClear, ok: true},
		{name: "glClear", off: OffsetClear, ok: true},
		{name: "ActiveTexture", off: OffsetActiveTextureARB, ok: true},
		{name: "glActiveTextureARB", off: OffsetActiveTextureARB, ok: true},
		{name: "glMultiTexCoord2f", off: OffsetMultiTexCoord2fARB, ok: true},
		{name: "BlendEquationEXT", off: OffsetBlendEquation, ok: true},
		{name: "gl"},
		{name: ""},
		{name: "DrawArraysInstanced"},
	}
	for _, test := range tests {
		e, ok := Lookup(test.name)
		if ok != test.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", test.name, ok, test.ok)
			continue
		}
		if ok && e.Offset() != test.off {
			t.Errorf("Lookup(%q) = %d, want %d", test.name, e.Offset(), test.off)
		}
	}
}

func TestBindByName(t *testing.T) {
	disp := NewTable()

	if err := Bind(disp, "glViewport", func(x, y, w, h int32) {}); err != nil {
		t.Fatal(err)
	}
	if ProcViewport(disp) == nil {
		t.Errorf("Viewport not bound")
	}

	err := Bind(disp, "glViewport", func(x, y, w, h uint32) {})
	var te *dispatch.TypeError
	if !errors.As(err, &te) {
		t.Errorf("expected type error, got %v", err)
	}

	if err := Bind(disp, "glNope", func() {}); !errors.Is(err, ErrUnknownEntry) {
		t.Errorf("expected unknown entry, got %v", err)
	}
}

func TestSignatures(t *testing.T) {
	if s := Signature(OffsetClear); s != "void Clear(GLbitfield mask)" {
		t.Errorf("got %q", s)
	}
	if s := Signature(Count); s != "" {
		t.Errorf("out of range signature %q", s)
	}
	for _, e := range Entries() {
		if !strings.Contains(Signature(e.Offset()), " "+e.Name()+"(") &&
			!strings.Contains(Signature(e.Offset()), "*"+e.Name()+"(") {
			t.Errorf("signature of %s is %q", e.Name(), Signature(e.Offset()))
		}
	}
}

func TestAliases(t *testing.T) {
	got := Aliases(OffsetActiveTextureARB)
	if len(got) != 1 || got[0] != "ActiveTexture" {
		t.Errorf("got %v", got)
	}
	if len(Aliases(OffsetClear)) != 0 {
		t.Errorf("Clear has no aliases")
	}
}

func TestByOffset(t *testing.T) {
	if _, ok := ByOffset(-1); ok {
		t.Errorf("negative offset resolved")
	}
	if _, ok := ByOffset(Count); ok {
		t.Errorf("offset Count resolved")
	}
	if e, _ := ByOffset(OffsetFlush); e.Name() != "Flush" {
		t.Errorf("got %v", e.Name())
	}
}
