package dispatch

import (
	"fmt"
	"reflect"
)

// RangeError reports an offset that does not address a slot of the table,
// usually a caller built against a larger registry than the table.
type RangeError struct {
	Offset Offset
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dispatch: offset %d out of range [0, %d)", e.Offset, e.Len)
}

// UnboundError is raised by calls through an empty slot in gldebug builds.
type UnboundError struct {
	Name   string
	Offset Offset
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("dispatch: call to unbound entry point %s (offset %d)", e.Name, e.Offset)
}

// TypeError reports a function whose type does not match the slot it was
// bound to.
type TypeError struct {
	Name string
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("dispatch: %s wants %v, got %v", e.Name, e.Want, e.Got)
}
