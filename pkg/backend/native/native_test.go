package native

import (
	"errors"
	"runtime"
	"strings"
	"testing"
	"unsafe"

	"github.com/giongto35/gldispatch/pkg/backend"
	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/glapi"
	"github.com/giongto35/gldispatch/pkg/logger"
)

var resolved byte

func resolveAll(string) unsafe.Pointer { return unsafe.Pointer(&resolved) }

// Every go-gl function must fit its slot exactly.
func TestProcsMatchSlots(t *testing.T) {
	disp := glapi.NewTable()
	bound, err := populate(disp, resolveAll, logger.Default())
	if err != nil {
		t.Fatal(err)
	}
	if bound != glapi.Count || disp.Bound() != glapi.Count {
		t.Errorf("bound %d of %d", bound, glapi.Count)
	}
}

func TestProcNames(t *testing.T) {
	tests := []struct {
		off  dispatch.Offset
		name string
	}{
		{off: glapi.OffsetClear, name: "glClear"},
		{off: glapi.OffsetActiveTextureARB, name: "glActiveTexture"},
		{off: glapi.OffsetColorTable, name: "glColorTableEXT"},
		{off: glapi.OffsetCopyColorTable, name: "glCopyColorTableSGI"},
	}
	for _, test := range tests {
		if got := procs[test.off].name; got != test.name {
			t.Errorf("%v resolves through %q, want %q", glapi.Name(test.off), got, test.name)
		}
	}
}

func TestPopulateSkipsMissing(t *testing.T) {
	disp := glapi.NewTable()
	onlyCore := func(name string) unsafe.Pointer {
		if strings.HasSuffix(name, "EXT") || strings.HasSuffix(name, "SGI") {
			return nil
		}
		return resolveAll(name)
	}
	bound, err := populate(disp, onlyCore, logger.Default())
	if err != nil {
		t.Fatal(err)
	}
	if glapi.ProcHistogram(disp) != nil || glapi.ProcClear(disp) == nil {
		t.Errorf("wrong slots bound")
	}
	if bound != glapi.Count-32 || len(disp.Unbound()) != 32 {
		t.Errorf("bound %d, unbound %v", bound, disp.Unbound())
	}
}

func TestPopulateBeforeInit(t *testing.T) {
	if _, err := New(backend.Options{}).Populate(glapi.NewTable()); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("got %v", err)
	}
}

func TestParseContext(t *testing.T) {
	tests := []struct {
		in   string
		want Context
		err  bool
	}{
		{in: "", want: CtxOpenGl},
		{in: "compat", want: CtxOpenGl},
		{in: "Core", want: CtxOpenGlCore},
		{in: "es", want: CtxOpenGlEs},
		{in: "vulkan", err: true},
	}
	for _, test := range tests {
		got, err := ParseContext(test.in)
		if (err != nil) != test.err || got != test.want {
			t.Errorf("ParseContext(%q) = %v, %v", test.in, got, err)
		}
	}
}

// Needs a display, skipped on headless machines.
func TestNativeContext(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	n := New(backend.Options{Log: logger.Default()})
	if err := n.Init(); err != nil {
		t.Skipf("no GL context: %v", err)
	}
	defer func() { _ = n.Close() }()

	disp := glapi.NewTable()
	if _, err := n.Populate(disp); err != nil {
		t.Fatal(err)
	}
	if info := GLInfo(disp); info.Version == "" {
		t.Errorf("empty GL version")
	}
}
