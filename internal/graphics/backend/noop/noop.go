// Package noop is a graphics backend that performs no GPU work. It validates
// and records what it is given, for dry runs and tests.
package noop

import (
	"errors"

	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform"
)

// Backend records every Init call.
type Backend struct {
	// Fail, when set, is returned by Init after the call is recorded.
	Fail error

	calls int
	last  platform.Descriptor
}

var _ renderer.Backend = (*Backend)(nil)

// New returns a noop backend.
func New() *Backend { return &Backend{} }

func (b *Backend) Type() renderer.Type { return renderer.TypeNoop }

// Calls returns how many times Init ran.
func (b *Backend) Calls() int { return b.calls }

// Last returns the descriptor passed to the most recent Init.
func (b *Backend) Last() platform.Descriptor { return b.last }

func (b *Backend) Init(desc platform.Descriptor, res renderer.Resolution) (renderer.Context, error) {
	b.calls++
	b.last = desc
	if b.Fail != nil {
		return nil, b.Fail
	}

	data, ok := renderer.PlatformDataFrom(desc)
	if !ok {
		return nil, platform.ErrNoHandles
	}
	var path pathRecorder
	if err := desc.Dispatch(&path); err != nil {
		return nil, err
	}
	return &Context{data: data, res: res, path: path.name}, nil
}

type pathRecorder struct{ name string }

func (r *pathRecorder) X11(platform.X11Handles) error {
	r.name = "x11"
	return nil
}

func (r *pathRecorder) Wayland(platform.WaylandHandles) error {
	r.name = "wayland"
	return nil
}

// ErrClosed is returned by a second Close.
var ErrClosed = errors.New("noop: context already closed")

// Context is the context produced by Backend.
type Context struct {
	data   renderer.PlatformData
	res    renderer.Resolution
	path   string
	closed bool
}

var _ renderer.Context = (*Context)(nil)

func (c *Context) Type() renderer.Type                 { return renderer.TypeNoop }
func (c *Context) Protocol() platform.Protocol         { return c.data.Protocol }
func (c *Context) Resolution() renderer.Resolution     { return c.res }
func (c *Context) PlatformData() renderer.PlatformData { return c.data }

// Path names the protocol code path Init took.
func (c *Context) Path() string { return c.path }

// Closed reports whether Close ran.
func (c *Context) Closed() bool { return c.closed }

func (c *Context) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	return nil
}
