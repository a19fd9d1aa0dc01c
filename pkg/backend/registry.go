package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new backend instance.
type Factory func(opts Options) Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// first one that initializes wins when no name is given
	priority = []string{"native"}
	// stubs serve only when asked for by name, auto never picks them
	stubs = map[string]bool{"noop": true}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the sorted names of registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a new backend instance by name or nil.
func Get(name string, opts Options) Backend {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return factory(opts)
}

// Open creates and initializes the named backend. An empty name or "auto"
// tries the registered backends in priority order, skipping stubs, and
// fails with ErrNotAvailable when none initializes.
func Open(name string, opts Options) (Backend, error) {
	if name != "" && name != "auto" {
		b := Get(name, opts)
		if b == nil {
			return nil, fmt.Errorf("%w: %s (have %v)", ErrUnknown, name, Available())
		}
		if err := b.Init(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return b, nil
	}

	for _, n := range candidates() {
		b := Get(n, opts)
		if b == nil {
			continue
		}
		err := b.Init()
		if err == nil {
			return b, nil
		}
		if opts.Log != nil {
			opts.Log.Warn().Err(err).Msgf("backend %v is not usable", n)
		}
	}
	return nil, ErrNotAvailable
}

// candidates lists priority backends first, then the rest by name.
func candidates() []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range append(append([]string{}, priority...), Available()...) {
		if !seen[n] && !stubs[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
