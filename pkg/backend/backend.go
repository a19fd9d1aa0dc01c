// Package backend provides the implementations that fill a dispatch table.
package backend

import (
	"errors"

	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/logger"
)

var (
	ErrNotAvailable = errors.New("backend: not available")
	ErrUnknown      = errors.New("backend: unknown")
)

// Backend owns the GL implementation behind a dispatch table.
type Backend interface {
	Name() string
	// Init acquires whatever the implementation needs (a context, a library).
	Init() error
	// Populate binds every entry point the backend implements into t and
	// returns how many slots it wrote.
	Populate(t *dispatch.Table) (int, error)
	Close() error
}

// Options are handed to a factory when a backend is created.
type Options struct {
	Log *logger.Logger
	// Context is the GL profile: core, compat or es.
	Context string
	Major   int
	Minor   int
	Width   int
	Height  int
}
