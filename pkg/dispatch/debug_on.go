//go:build gldebug

package dispatch

// Debug enables unbound-slot checks on every call.
const Debug = true
