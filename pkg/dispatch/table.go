// Package dispatch implements an offset-addressed table of function slots.
//
// A Table is a flat array of type-erased function values. Each slot is owned
// by exactly one Entry, which carries the slot's function type and recovers
// it on the way out, so the table itself never needs to know signatures.
//
// Tables are not synchronized. A table belongs to one rendering context and
// must not be rebound while another goroutine calls through it.
package dispatch

import "unsafe"

// Offset is the index of a slot in a Table.
type Offset int

// Table holds one machine-word slot per entry point.
type Table struct {
	slots []unsafe.Pointer
}

// New allocates a table with n unbound slots.
func New(n int) *Table {
	if n < 0 {
		n = 0
	}
	return &Table{slots: make([]unsafe.Pointer, n)}
}

// Len returns the number of slots in t.
func (t *Table) Len() int { return len(t.slots) }

// Slot returns the raw value of slot o or nil when o is out of range or the
// slot is unbound.
func (t *Table) Slot(o Offset) unsafe.Pointer {
	if uint(o) >= uint(len(t.slots)) {
		return nil
	}
	return t.slots[o]
}

// SetSlot stores a raw value into slot o.
// It panics with a *RangeError when o is not a slot of t.
func (t *Table) SetSlot(o Offset, p unsafe.Pointer) {
	if uint(o) >= uint(len(t.slots)) {
		panic(&RangeError{Offset: o, Len: len(t.slots)})
	}
	t.slots[o] = p
}

// Bound returns the number of bound slots.
func (t *Table) Bound() int {
	n := 0
	for _, p := range t.slots {
		if p != nil {
			n++
		}
	}
	return n
}

// Unbound lists offsets of the slots nobody has bound.
func (t *Table) Unbound() []Offset {
	var out []Offset
	for i, p := range t.slots {
		if p == nil {
			out = append(out, Offset(i))
		}
	}
	return out
}

// Clone returns a copy of t. Rebinding the copy leaves t untouched.
func (t *Table) Clone() *Table {
	c := New(len(t.slots))
	copy(c.slots, t.slots)
	return c
}

// Fill copies the bound slots of src into the unbound slots of t and returns
// how many slots it filled. Slots already bound in t are kept.
func (t *Table) Fill(src *Table) int {
	n := 0
	for i := range t.slots {
		if t.slots[i] != nil || i >= len(src.slots) || src.slots[i] == nil {
			continue
		}
		t.slots[i] = src.slots[i]
		n++
	}
	return n
}

// Reset unbinds every slot.
func (t *Table) Reset() {
	for i := range t.slots {
		t.slots[i] = nil
	}
}
