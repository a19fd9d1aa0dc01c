//go:build !gldebug

package dispatch

// Debug enables unbound-slot checks on every call. Build with -tags gldebug.
const Debug = false
