// Package native binds the dispatch table to the system GL driver through
// go-gl, with an SDL window providing the context.
//
// All GL calls through a table populated here must happen on the thread
// that owns the context, use thread.Main for that.
package native

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/giongto35/gldispatch/pkg/backend"
	"github.com/giongto35/gldispatch/pkg/dispatch"
	"github.com/giongto35/gldispatch/pkg/glapi"
	"github.com/giongto35/gldispatch/pkg/logger"
	"github.com/giongto35/gldispatch/pkg/thread"
)

const Name = "native"

var ErrNotInitialized = errors.New("native: not initialized")

func init() {
	backend.Register(Name, func(opts backend.Options) backend.Backend { return New(opts) })
}

// proc pairs the driver export name of a slot with the go-gl function
// that calls it.
type proc struct {
	name string
	fn   any
}

type Native struct {
	opts backend.Options
	log  *logger.Logger
	sdl  *SDL
	// resolves driver exports, swapped in tests
	getProcAddr func(string) unsafe.Pointer
}

func New(opts backend.Options) *Native {
	log := opts.Log
	if log == nil {
		log = logger.Default()
	}
	return &Native{
		opts:        opts,
		log:         log.Extend(log.With().Str("m", Name)),
		getProcAddr: sdl.GLGetProcAddress,
	}
}

func (n *Native) Name() string { return Name }

// Init creates the context on the main thread and loads the driver.
func (n *Native) Init() (err error) {
	ctx, err := ParseContext(n.opts.Context)
	if err != nil {
		return err
	}
	thread.Main(func() {
		n.sdl, err = newSDLContext(contextConfig{
			Ctx: ctx, W: n.opts.Width, H: n.opts.Height, Major: n.opts.Major, Minor: n.opts.Minor,
		})
		if err != nil {
			return
		}
		if err = gl.InitWithProcAddrFunc(n.getProcAddr); err != nil {
			err = fmt.Errorf("gl init: missing %w", err)
			_ = n.sdl.Deinit()
			n.sdl = nil
		}
	})
	if err != nil {
		return err
	}
	n.log.Info().Msgf("GL context %v ready", ctx)
	return nil
}

// Populate binds every slot whose driver export resolves. Slots the driver
// lacks are left untouched.
func (n *Native) Populate(t *dispatch.Table) (int, error) {
	if n.sdl == nil {
		return 0, ErrNotInitialized
	}
	return populate(t, n.getProcAddr, n.log)
}

func populate(t *dispatch.Table, getProcAddr func(string) unsafe.Pointer, log *logger.Logger) (int, error) {
	if t.Len() < glapi.Count {
		return 0, &dispatch.RangeError{Offset: glapi.Count - 1, Len: t.Len()}
	}
	bound := 0
	var missing []string
	for i, p := range procs {
		if getProcAddr(p.name) == nil {
			missing = append(missing, p.name)
			continue
		}
		e, _ := glapi.ByOffset(dispatch.Offset(i))
		if err := e.BindAny(t, p.fn); err != nil {
			return bound, err
		}
		bound++
	}
	if len(missing) > 0 {
		log.Debug().Strs("missing", missing).Msgf("driver lacks %d entry points", len(missing))
	}
	return bound, nil
}

// Info describes the driver behind disp.
type Info struct {
	Version, Vendor, Renderer string
}

// GLInfo queries the driver through the dispatch table on the main thread.
func GLInfo(disp *dispatch.Table) (info Info) {
	thread.Main(func() {
		str := func(name uint32) string {
			if p := glapi.GetString(disp, name); p != nil {
				return gl.GoStr(p)
			}
			return ""
		}
		info = Info{Version: str(gl.VERSION), Vendor: str(gl.VENDOR), Renderer: str(gl.RENDERER)}
	})
	return
}

func (n *Native) Close() (err error) {
	if n.sdl == nil {
		return nil
	}
	thread.Main(func() { err = n.sdl.Deinit() })
	n.sdl = nil
	return
}
