package native

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

type Context int

const (
	CtxOpenGl Context = iota
	CtxOpenGlCore
	CtxOpenGlEs
)

// ParseContext maps a config value (compat, core, es) to a Context.
func ParseContext(name string) (Context, error) {
	switch strings.ToLower(name) {
	case "", "compat", "compatibility":
		return CtxOpenGl, nil
	case "core":
		return CtxOpenGlCore, nil
	case "es", "gles":
		return CtxOpenGlEs, nil
	}
	return 0, fmt.Errorf("unsupported gl context: %v", name)
}

func (c Context) String() string {
	switch c {
	case CtxOpenGl:
		return "compat"
	case CtxOpenGlCore:
		return "core"
	case CtxOpenGlEs:
		return "es"
	}
	return fmt.Sprintf("Context(%d)", int(c))
}

type SDL struct {
	w   *sdl.Window
	ctx sdl.GLContext
}

type contextConfig struct {
	Ctx          Context
	W, H         int
	Major, Minor int
}

// newSDLContext opens a hidden window and makes a GL context of the
// requested profile current on the calling thread.
func newSDLContext(cfg contextConfig) (*SDL, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	if err := setGLAttrs(cfg); err != nil {
		sdl.Quit()
		return nil, err
	}

	w, h := int32(max(cfg.W, 1)), int32(max(cfg.H, 1))
	win, err := sdl.CreateWindow("gldispatch", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("window: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("gl context: %w", err)
	}

	if err = win.GLMakeCurrent(ctx); err != nil {
		sdl.GLDeleteContext(ctx)
		_ = win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("gl bind: %w", err)
	}
	return &SDL{w: win, ctx: ctx}, nil
}

func setGLAttrs(cfg contextConfig) error {
	set := sdl.GLSetAttribute
	attrs := [][2]int{}
	switch cfg.Ctx {
	case CtxOpenGlCore:
		attrs = append(attrs, [2]int{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE})
	case CtxOpenGlEs:
		attrs = append(attrs, [2]int{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES})
		if cfg.Major == 0 {
			cfg.Major = 2
		}
	case CtxOpenGl:
		attrs = append(attrs, [2]int{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_COMPATIBILITY})
	default:
		return fmt.Errorf("unsupported gl context: %v", cfg.Ctx)
	}
	if cfg.Major > 0 {
		attrs = append(attrs,
			[2]int{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.Major},
			[2]int{sdl.GL_CONTEXT_MINOR_VERSION, cfg.Minor})
	}
	for _, a := range attrs {
		if err := set(sdl.GLattr(a[0]), a[1]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SDL) Deinit() error {
	sdl.GLDeleteContext(s.ctx)
	err := s.w.Destroy()
	sdl.Quit()
	return err
}
