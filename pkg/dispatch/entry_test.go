package dispatch

import (
	"errors"
	"reflect"
	"testing"
)

func TestEntryIdentity(t *testing.T) {
	if testClear.Name() != "Clear" || testClear.Offset() != 3 {
		t.Errorf("got %v@%v", testClear.Name(), testClear.Offset())
	}
	if testClear.Type() != reflect.TypeOf(func(uint32) {}) {
		t.Errorf("wrong type %v", testClear.Type())
	}
}

func TestNewEntryRejectsNonFunc(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for a non-function entry")
		}
	}()
	_ = NewEntry[int]("Bad", 0)
}

func TestBindAny(t *testing.T) {
	tbl := New(6)

	tests := []struct {
		name string
		fn   any
		err  bool
	}{
		{name: "match", fn: func() uint32 { return 7 }},
		{name: "named params", fn: func() (code uint32) { return 7 }},
		{name: "wrong result", fn: func() int32 { return 7 }, err: true},
		{name: "wrong params", fn: func(uint32) uint32 { return 7 }, err: true},
		{name: "nil", fn: nil, err: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testError.Unbind(tbl)
			err := testError.BindAny(tbl, test.fn)
			var te *TypeError
			if test.err {
				if !errors.As(err, &te) || te.Name != "GetError" {
					t.Fatalf("expected type error, got %v", err)
				}
				if testError.Bound(tbl) {
					t.Errorf("failed bind must leave the slot empty")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if v := testError.Get(tbl)(); v != 7 {
				t.Errorf("got %v", v)
			}
		})
	}
}

func TestCallUnboundFaults(t *testing.T) {
	tbl := New(6)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("calling an unbound slot must not succeed silently")
		}
		var ue *UnboundError
		err, _ := r.(error)
		if Debug && (!errors.As(err, &ue) || ue.Name != "Flush" || ue.Offset != 4) {
			t.Errorf("debug builds should report the entry, got %v", r)
		}
	}()
	testFlush.Func(tbl)()
}

func TestRawSlotRoundTrip(t *testing.T) {
	tbl := New(6)
	testClear.Bind(tbl, func(uint32) {})
	p := tbl.Slot(testClear.Offset())

	other := New(6)
	other.SetSlot(testClear.Offset(), p)
	if !testClear.Bound(other) {
		t.Errorf("raw copy lost the binding")
	}
}
