package dispatch

import (
	"errors"
	"testing"
	"unsafe"
)

var (
	testClear = NewEntry[func(mask uint32)]("Clear", 3)
	testFlush = NewEntry[func()]("Flush", 4)
	testError = NewEntry[func() uint32]("GetError", 5)
)

func TestGetReturnsLastBind(t *testing.T) {
	tbl := New(6)

	if testClear.Get(tbl) != nil {
		t.Fatalf("unbound slot should be nil")
	}

	var got []string
	testClear.Bind(tbl, func(uint32) { got = append(got, "a") })
	testClear.Bind(tbl, func(uint32) { got = append(got, "b") })

	for i := 0; i < 3; i++ {
		testClear.Get(tbl)(0)
	}
	if len(got) != 3 || got[0] != "b" || got[2] != "b" {
		t.Errorf("rebinding should replace the slot, got calls %v", got)
	}
	if testFlush.Get(tbl) != nil {
		t.Errorf("binding one slot touched another")
	}
}

func TestSlotOutOfRange(t *testing.T) {
	tbl := New(4)
	tbl.SetSlot(3, unsafe.Pointer(tbl))

	tests := []struct {
		off  Offset
		want bool
	}{
		{off: -1},
		{off: 0},
		{off: 3, want: true},
		{off: 4},
		{off: 1 << 20},
	}
	for _, test := range tests {
		if got := tbl.Slot(test.off) != nil; got != test.want {
			t.Errorf("Slot(%v) bound = %v, want %v", test.off, got, test.want)
		}
	}
}

func TestSetSlotOutOfRangePanics(t *testing.T) {
	tbl := New(2)
	defer func() {
		err, _ := recover().(error)
		var re *RangeError
		if !errors.As(err, &re) || re.Offset != 2 || re.Len != 2 {
			t.Errorf("expected range error, got %v", err)
		}
	}()
	tbl.SetSlot(2, nil)
}

func TestTypedAccessOutOfRange(t *testing.T) {
	small := New(3)
	if testClear.Get(small) != nil || testClear.Bound(small) {
		t.Errorf("an entry past the end of the table must read as unbound")
	}
}

func TestBoundCloneFillReset(t *testing.T) {
	a := New(6)
	testClear.Bind(a, func(uint32) {})
	if a.Bound() != 1 || len(a.Unbound()) != 5 {
		t.Fatalf("bound %v, unbound %v", a.Bound(), a.Unbound())
	}

	b := a.Clone()
	testClear.Unbind(b)
	if !testClear.Bound(a) {
		t.Errorf("clone shares slots with the original")
	}

	flushed := 0
	fallback := New(6)
	testClear.Bind(fallback, func(uint32) { t.Errorf("fill overwrote a bound slot") })
	testFlush.Bind(fallback, func() { flushed++ })

	if n := a.Fill(fallback); n != 1 {
		t.Errorf("Fill() = %v, want 1", n)
	}
	testClear.Get(a)(0)
	testFlush.Get(a)()
	if flushed != 1 {
		t.Errorf("fallback flush was not installed")
	}

	a.Reset()
	if a.Bound() != 0 {
		t.Errorf("reset left %v slots bound", a.Bound())
	}
}

func TestNewNegative(t *testing.T) {
	if New(-1).Len() != 0 {
		t.Errorf("negative size should produce an empty table")
	}
}

func BenchmarkCall(b *testing.B) {
	tbl := New(6)
	n := 0
	testClear.Bind(tbl, func(mask uint32) { n += int(mask) })
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testClear.Func(tbl)(1)
	}
}
