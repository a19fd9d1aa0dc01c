package noop

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/giongto35/gldispatch/pkg/backend"
	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/glapi"
	"github.com/giongto35/gldispatch/pkg/logger"
)

func TestPopulateBindsEverything(t *testing.T) {
	n := New(nil)
	disp := glapi.NewTable()
	bound, err := n.Populate(disp)
	if err != nil {
		t.Fatal(err)
	}
	if bound != glapi.Count || disp.Bound() != glapi.Count {
		t.Errorf("bound %d, table has %d", bound, disp.Bound())
	}
	if len(disp.Unbound()) != 0 {
		t.Errorf("unbound: %v", disp.Unbound())
	}
}

func TestPopulateTooSmall(t *testing.T) {
	var re *dispatch.RangeError
	if _, err := New(nil).Populate(dispatch.New(3)); !errors.As(err, &re) {
		t.Errorf("got %v", err)
	}
}

func TestZeroResults(t *testing.T) {
	disp := New(logger.NewWriter(&bytes.Buffer{})).Table()

	glapi.Clear(disp, 0x4000)
	glapi.CallLists(disp, 1, 0, unsafe.Pointer(nil))
	if glapi.GetString(disp, 0x1F02) != nil {
		t.Errorf("GetString should return nil")
	}
	if glapi.IsEnabled(disp, 0x0B71) {
		t.Errorf("IsEnabled should return false")
	}
	if glapi.GenLists(disp, 4) != 0 || glapi.GetError(disp) != 0 {
		t.Errorf("numeric results should be zero")
	}
}

func TestWarnsOncePerEntry(t *testing.T) {
	var buf bytes.Buffer
	n := New(logger.NewWriter(&buf))
	disp := n.Table()

	for i := 0; i < 3; i++ {
		glapi.Clear(disp, 0)
		glapi.Flush(disp)
	}
	if n.Calls() != 6 {
		t.Errorf("calls %d", n.Calls())
	}
	out := buf.String()
	if c := strings.Count(out, "void Clear(GLbitfield mask)"); c != 1 {
		t.Errorf("Clear warned %d times: %s", c, out)
	}
	if c := strings.Count(out, "void Flush(void)"); c != 1 {
		t.Errorf("Flush warned %d times", c)
	}
}

// Fill keeps real bindings and stubs the rest.
func TestFallbackFill(t *testing.T) {
	disp := glapi.NewTable()
	cleared := false
	glapi.SetClear(disp, func(uint32) { cleared = true })

	filled := disp.Fill(New(logger.NewWriter(&bytes.Buffer{})).Table())
	if filled != glapi.Count-1 {
		t.Errorf("filled %d", filled)
	}
	glapi.Clear(disp, 0)
	glapi.Flush(disp)
	if !cleared {
		t.Errorf("Fill replaced a real binding")
	}
}

func TestRegistered(t *testing.T) {
	b, err := backend.Open(Name, backend.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if b.Name() != Name {
		t.Errorf("got %v", b.Name())
	}
}
