package backend

import (
	"errors"
	"testing"

	"github.com/giongto35/gldispatch/pkg/dispatch"
)

type fake struct {
	name    string
	initErr error
	closed  bool
}

func (f *fake) Name() string { return f.name }
func (f *fake) Init() error  { return f.initErr }
func (f *fake) Close() error { f.closed = true; return nil }

func (f *fake) Populate(*dispatch.Table) (int, error) { return 0, nil }

func withBackends(t *testing.T, list ...*fake) {
	t.Helper()
	for _, f := range list {
		f := f
		Register(f.name, func(Options) Backend { return f })
	}
	t.Cleanup(func() {
		for _, f := range list {
			Unregister(f.name)
		}
	})
}

func TestRegistry(t *testing.T) {
	withBackends(t, &fake{name: "zeta"}, &fake{name: "alpha"})

	names := Available()
	if len(names) < 2 || names[0] > names[1] {
		t.Errorf("not sorted: %v", names)
	}
	if Get("alpha", Options{}) == nil {
		t.Errorf("registered backend not found")
	}
	if Get("missing", Options{}) != nil {
		t.Errorf("unknown backend found")
	}
}

func TestOpen(t *testing.T) {
	broken := errors.New("no display")
	withBackends(t,
		&fake{name: "native", initErr: broken},
		&fake{name: "noop"},
	)

	tests := []struct {
		name string
		want string
		err  error
	}{
		{name: "", err: ErrNotAvailable},
		{name: "auto", err: ErrNotAvailable},
		{name: "noop", want: "noop"},
		{name: "native", err: broken},
		{name: "vulkan", err: ErrUnknown},
	}
	for _, test := range tests {
		b, err := Open(test.name, Options{})
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("Open(%q) error %v, want %v", test.name, err, test.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Open(%q): %v", test.name, err)
			continue
		}
		if b.Name() != test.want {
			t.Errorf("Open(%q) = %v, want %v", test.name, b.Name(), test.want)
		}
	}
}

func TestOpenAuto(t *testing.T) {
	withBackends(t,
		&fake{name: "native"},
		&fake{name: "noop"},
		&fake{name: "soft", initErr: errors.New("no pixels")},
	)
	for _, name := range []string{"", "auto"} {
		b, err := Open(name, Options{})
		if err != nil {
			t.Fatalf("Open(%q): %v", name, err)
		}
		if b.Name() != "native" {
			t.Errorf("Open(%q) = %v", name, b.Name())
		}
	}
}

func TestOpenAutoSkipsStubs(t *testing.T) {
	registryMu.Lock()
	saved := backends
	backends = map[string]Factory{}
	registryMu.Unlock()
	defer func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	}()
	withBackends(t, &fake{name: "noop"})

	if _, err := Open("auto", Options{}); !errors.Is(err, ErrNotAvailable) {
		t.Errorf("auto picked a stub: %v", err)
	}
	if b, err := Open("noop", Options{}); err != nil || b.Name() != "noop" {
		t.Errorf("noop by name: %v %v", b, err)
	}
}

func TestOpenNothingUsable(t *testing.T) {
	registryMu.Lock()
	saved := backends
	backends = map[string]Factory{}
	registryMu.Unlock()
	defer func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	}()

	if _, err := Open("", Options{}); !errors.Is(err, ErrNotAvailable) {
		t.Errorf("got %v", err)
	}
}
