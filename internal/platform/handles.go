package platform

import (
	"fmt"
	"unsafe"
)

// Handle is an opaque native handle borrowed from the windowing library.
// It holds either a pointer (Xlib Display*, wl_display*, wl_surface*) or a
// numeric resource id (X11 XID). The windowing library owns the object.
type Handle struct {
	ptr unsafe.Pointer
	id  uint64
}

// Pointer returns the handle as a pointer, or nil for id handles.
func (h Handle) Pointer() unsafe.Pointer { return h.ptr }

// ID returns the handle as a numeric id, or 0 for pointer handles.
func (h Handle) ID() uint64 { return h.id }

// IsZero reports whether the handle is absent.
func (h Handle) IsZero() bool { return h.ptr == nil && h.id == 0 }

func (h Handle) String() string {
	if h.ptr != nil {
		return fmt.Sprintf("%p", h.ptr)
	}
	return fmt.Sprintf("0x%x", h.id)
}

// Handles is a display/surface pair belonging to exactly one protocol.
//
// The only implementations are X11Handles and WaylandHandles, and their
// constructors refuse absent handles, so holding a Handles value means both
// handles are present.
type Handles interface {
	Protocol() Protocol
	Display() Handle
	Surface() Handle

	dispatch(d Dispatcher) error
}

// X11Handles holds an Xlib Display* and the window's XID.
type X11Handles struct {
	display unsafe.Pointer
	window  uint64
}

var _ Handles = X11Handles{}

// NewX11Handles pairs an X11 display and window. It returns false if either
// is absent.
func NewX11Handles(display unsafe.Pointer, window uint64) (X11Handles, bool) {
	if display == nil || window == 0 {
		return X11Handles{}, false
	}
	return X11Handles{display: display, window: window}, true
}

func (h X11Handles) Protocol() Protocol { return ProtocolX11 }
func (h X11Handles) Display() Handle    { return Handle{ptr: h.display} }
func (h X11Handles) Surface() Handle    { return Handle{id: h.window} }

// DisplayPointer returns the Xlib Display*.
func (h X11Handles) DisplayPointer() unsafe.Pointer { return h.display }

// Window returns the X11 window id.
func (h X11Handles) Window() uint64 { return h.window }

func (h X11Handles) dispatch(d Dispatcher) error { return d.X11(h) }

// WaylandHandles holds a wl_display* and the window's wl_surface*.
type WaylandHandles struct {
	display unsafe.Pointer
	surface unsafe.Pointer
}

var _ Handles = WaylandHandles{}

// NewWaylandHandles pairs a Wayland display and surface. It returns false if
// either is absent.
func NewWaylandHandles(display, surface unsafe.Pointer) (WaylandHandles, bool) {
	if display == nil || surface == nil {
		return WaylandHandles{}, false
	}
	return WaylandHandles{display: display, surface: surface}, true
}

func (h WaylandHandles) Protocol() Protocol { return ProtocolWayland }
func (h WaylandHandles) Display() Handle    { return Handle{ptr: h.display} }
func (h WaylandHandles) Surface() Handle    { return Handle{ptr: h.surface} }

// DisplayPointer returns the wl_display*.
func (h WaylandHandles) DisplayPointer() unsafe.Pointer { return h.display }

// SurfacePointer returns the wl_surface*.
func (h WaylandHandles) SurfacePointer() unsafe.Pointer { return h.surface }

func (h WaylandHandles) dispatch(d Dispatcher) error { return d.Wayland(h) }
