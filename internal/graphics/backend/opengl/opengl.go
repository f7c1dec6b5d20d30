// Package opengl is a graphics backend on an OpenGL 4.1 core context owned
// by the window. The protocol decides whether that context came from GLX or
// EGL.
package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform"
)

// Options hooks the backend to the window's GL context.
type Options struct {
	// MakeCurrent makes the window's context current on this thread.
	MakeCurrent  func() error
	SwapInterval func(int)
	Logger       *zap.Logger
}

var errNoContext = errors.New("opengl: no MakeCurrent hook")

type Backend struct {
	opts Options
}

var _ renderer.Backend = (*Backend)(nil)

func New(opts Options) *Backend {
	return &Backend{opts: opts}
}

func (b *Backend) Type() renderer.Type { return renderer.TypeOpenGL }

func (b *Backend) logger() *zap.Logger {
	if b.opts.Logger != nil {
		return b.opts.Logger
	}
	return renderer.Logger()
}

func (b *Backend) Init(desc platform.Descriptor, res renderer.Resolution) (renderer.Context, error) {
	var path contextPath
	if err := desc.Dispatch(&path); err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}
	if b.opts.MakeCurrent == nil {
		return nil, errNoContext
	}
	if err := b.opts.MakeCurrent(); err != nil {
		return nil, fmt.Errorf("opengl: make %s context current: %w", path.path, err)
	}

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: init bindings over %s: %w", path.path, err)
	}

	if b.opts.SwapInterval != nil {
		b.opts.SwapInterval(swapInterval(res.Reset))
	}
	gl.Viewport(0, 0, int32(res.Width), int32(res.Height))
	if res.Reset.Has(renderer.ResetMSAA) {
		gl.Enable(gl.MULTISAMPLE)
	}
	if res.Reset.Has(renderer.ResetSRGB) {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	}

	c := &Context{
		protocol:   desc.Protocol(),
		res:        res,
		path:       path.path,
		version:    gl.GoStr(gl.GetString(gl.VERSION)),
		projection: projection(res),
	}
	b.logger().Info("opengl context ready",
		zap.Stringer("protocol", c.protocol),
		zap.String("path", string(c.path)),
		zap.String("version", c.version))
	return c, nil
}

// Context wraps the window's current GL context.
type Context struct {
	protocol   platform.Protocol
	res        renderer.Resolution
	path       ContextPath
	version    string
	projection mgl32.Mat4
}

var _ renderer.Context = (*Context)(nil)

func (c *Context) Type() renderer.Type             { return renderer.TypeOpenGL }
func (c *Context) Protocol() platform.Protocol     { return c.protocol }
func (c *Context) Resolution() renderer.Resolution { return c.res }
func (c *Context) Path() ContextPath               { return c.path }
func (c *Context) Version() string                 { return c.version }
func (c *Context) Projection() mgl32.Mat4          { return c.projection }

// Flush finishes pending GL work when the resolution asks for it.
func (c *Context) Flush() {
	if c.res.Reset.Has(renderer.ResetFlushAfterRender) {
		gl.Flush()
	}
}

// Close is a no-op; the window owns and destroys the GL context.
func (c *Context) Close() error { return nil }
