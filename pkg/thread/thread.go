// Package thread keeps GL work on the main OS thread, the one that owns
// the context.
// See: https://github.com/golang/go/wiki/LockOSThread
package thread

import (
	"sync/atomic"

	"github.com/faiface/mainthread"
)

var wrapped atomic.Bool

// Wrap runs f while serving Main calls on the main thread.
// It returns when f returns.
func Wrap(f func()) {
	wrapped.Store(true)
	defer wrapped.Store(false)
	mainthread.Run(f)
}

// Main calls f on the main thread and waits for it. Outside Wrap it calls
// f directly.
func Main(f func()) {
	if wrapped.Load() {
		mainthread.Call(f)
		return
	}
	f()
}
