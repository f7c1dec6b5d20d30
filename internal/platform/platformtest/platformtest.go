// Package platformtest provides an in-memory windowing library for tests.
package platformtest

import (
	"unsafe"

	"surfboot/internal/platform"
)

// Library reports a fixed video driver name.
type Library struct {
	Driver string
}

var _ platform.Library = Library{}

func (l Library) CurrentVideoDriver() string { return l.Driver }

// Window is a window whose properties live in plain maps.
type Window struct {
	Pointers map[string]unsafe.Pointer
	Numbers  map[string]uint64
}

var _ platform.Window = (*Window)(nil)

// NewWindow returns an empty window.
func NewWindow() *Window {
	return &Window{
		Pointers: make(map[string]unsafe.Pointer),
		Numbers:  make(map[string]uint64),
	}
}

// NewX11Window returns a window populated the way an X11 windowing backend
// populates it.
func NewX11Window(xid uint64) *Window {
	w := NewWindow()
	w.Pointers[platform.KeyX11Display] = NewPointer()
	w.Numbers[platform.KeyX11Window] = xid
	return w
}

// NewWaylandWindow returns a window populated the way a Wayland windowing
// backend populates it.
func NewWaylandWindow() *Window {
	w := NewWindow()
	w.Pointers[platform.KeyWaylandDisplay] = NewPointer()
	w.Pointers[platform.KeyWaylandSurface] = NewPointer()
	return w
}

// NewWindowFor returns a window running under p. ProtocolUnknown yields an
// empty window.
func NewWindowFor(p platform.Protocol) *Window {
	switch p {
	case platform.ProtocolX11:
		return NewX11Window(0x2a00007)
	case platform.ProtocolWayland:
		return NewWaylandWindow()
	default:
		return NewWindow()
	}
}

func (w *Window) Properties() platform.Properties { return props{w} }

// NewPointer returns a distinct non-nil pointer usable as a fake native handle.
func NewPointer() unsafe.Pointer {
	return unsafe.Pointer(new(uint64))
}

type props struct{ w *Window }

func (p props) Pointer(key string) unsafe.Pointer { return p.w.Pointers[key] }

func (p props) Number(key string) (uint64, bool) {
	n, ok := p.w.Numbers[key]
	return n, ok
}
