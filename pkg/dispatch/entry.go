package dispatch

import (
	"reflect"
	"unsafe"
)

// Binding is the untyped view of an Entry, used by registries and loaders
// that only know entry points by name.
type Binding interface {
	Name() string
	Offset() Offset
	Type() reflect.Type
	Bound(t *Table) bool
	BindAny(t *Table, fn any) error
	Unbind(t *Table)
}

// Entry is the typed handle of one slot. F is the slot's function type.
//
// Entries are meant to be declared once, as package-level variables of a
// generated registry, so every slot has exactly one signature.
type Entry[F any] struct {
	name string
	off  Offset
	typ  reflect.Type
}

var _ Binding = Entry[func()]{}

// NewEntry declares the slot at offset off.
// It panics when F is not a function type or off is negative.
func NewEntry[F any](name string, off Offset) Entry[F] {
	typ := reflect.TypeOf((*F)(nil)).Elem()
	if typ.Kind() != reflect.Func {
		panic("dispatch: entry " + name + " is not a function type: " + typ.String())
	}
	if off < 0 {
		panic(&RangeError{Offset: off})
	}
	return Entry[F]{name: name, off: off, typ: typ}
}

func (e Entry[F]) Name() string       { return e.name }
func (e Entry[F]) Offset() Offset     { return e.off }
func (e Entry[F]) Type() reflect.Type { return e.typ }

// Bind installs fn into the slot, replacing any previous value.
// A nil fn unbinds the slot.
func (e Entry[F]) Bind(t *Table, fn F) { t.SetSlot(e.off, erase(fn)) }

// Get returns the function bound to the slot, or nil.
func (e Entry[F]) Get(t *Table) F { return restore[F](t.Slot(e.off)) }

// Func is Get for callers about to invoke the result.
// In gldebug builds it panics with an *UnboundError on empty slots, otherwise
// the nil func is returned as is and faults when called.
func (e Entry[F]) Func(t *Table) F {
	p := t.Slot(e.off)
	if Debug && p == nil {
		panic(&UnboundError{Name: e.name, Offset: e.off})
	}
	return restore[F](p)
}

func (e Entry[F]) Bound(t *Table) bool { return t.Slot(e.off) != nil }
func (e Entry[F]) Unbind(t *Table)     { t.SetSlot(e.off, nil) }

// BindAny is Bind for functions of statically unknown type.
func (e Entry[F]) BindAny(t *Table, fn any) error {
	f, ok := fn.(F)
	if !ok {
		return &TypeError{Name: e.name, Want: e.typ, Got: reflect.TypeOf(fn)}
	}
	e.Bind(t, f)
	return nil
}

// A func value is a single pointer, so it round-trips through unsafe.Pointer
// unchanged and stays visible to the GC.
func erase[F any](fn F) unsafe.Pointer { return *(*unsafe.Pointer)(unsafe.Pointer(&fn)) }

func restore[F any](p unsafe.Pointer) F { return *(*F)(unsafe.Pointer(&p)) }
