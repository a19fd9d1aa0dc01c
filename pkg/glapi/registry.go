// Package glapi is the GL entry point registry: one dispatch slot per GL
// function, at the offsets published in api/abi.txt.
//
// Every entry point Xxx has three accessors:
//
//	Xxx(disp, args...)  calls through the slot
//	ProcXxx(disp)       returns the bound function or nil
//	SetXxx(disp, fn)    installs fn
//
// The accessors and offsets are generated by cmd/glgen from api/gl_API.xml.
package glapi

//go:generate go run ../../cmd/glgen --in ../../api/gl_API.xml --abi ../../api/abi.txt --out ../..

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/giongto35/gldispatch/pkg/dispatch"
)

var ErrUnknownEntry = errors.New("unknown entry point")

var byName = func() map[string]dispatch.Offset {
	m := make(map[string]dispatch.Offset, Count+len(aliases))
	for _, e := range entries {
		m[e.Name()] = e.Offset()
	}
	for name, off := range aliases {
		m[name] = off
	}
	return m
}()

// NewTable allocates an empty table sized for this registry.
func NewTable() *dispatch.Table { return dispatch.New(Count) }

// Lookup finds an entry point by name. The gl prefix is optional and
// aliases resolve to the slot they share, e.g. ActiveTexture and
// glActiveTextureARB are the same entry.
func Lookup(name string) (dispatch.Binding, bool) {
	off, ok := byName[name]
	if !ok && strings.HasPrefix(name, "gl") {
		off, ok = byName[name[2:]]
	}
	if !ok {
		return nil, false
	}
	return entries[off], true
}

// ByOffset returns the entry owning slot o.
func ByOffset(o dispatch.Offset) (dispatch.Binding, bool) {
	if uint(o) >= Count {
		return nil, false
	}
	return entries[o], true
}

// Entries lists every entry point in offset order.
func Entries() []dispatch.Binding {
	out := make([]dispatch.Binding, Count)
	copy(out, entries[:])
	return out
}

// Name returns the canonical name of slot o, or "" when o is not a slot.
func Name(o dispatch.Offset) string {
	if e, ok := ByOffset(o); ok {
		return e.Name()
	}
	return ""
}

// Signature returns the C prototype of slot o, or "".
func Signature(o dispatch.Offset) string {
	if uint(o) >= Count {
		return ""
	}
	return signatures[o]
}

// Aliases returns the alternative names of slot o.
func Aliases(o dispatch.Offset) []string {
	var out []string
	for name, off := range aliases {
		if off == o {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Bind installs fn into the slot named name. fn must have the exact
// function type of that slot.
func Bind(disp *dispatch.Table, name string, fn any) error {
	e, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, name)
	}
	return e.BindAny(disp, fn)
}
