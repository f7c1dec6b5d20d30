package platform

import (
	"unsafe"

	"go.uber.org/zap"
)

// Properties is the key/value surface a windowing library exposes for a window.
type Properties interface {
	// Pointer returns the pointer stored under key, or nil.
	Pointer(key string) unsafe.Pointer
	// Number returns the number stored under key and whether it was set.
	Number(key string) (uint64, bool)
}

// Window is a window owned by the windowing library.
type Window interface {
	Properties() Properties
}

// Keys names the two properties holding a protocol's native handles.
type Keys struct {
	Display string
	Surface string
}

// Property keys. Each protocol has its own namespace and no key is shared.
const (
	KeyX11Display     = "window.x11.display"
	KeyX11Window      = "window.x11.window"
	KeyWaylandDisplay = "window.wayland.display"
	KeyWaylandSurface = "window.wayland.surface"
)

// KeysFor returns the property keys of protocol p.
func KeysFor(p Protocol) (Keys, bool) {
	switch p {
	case ProtocolX11:
		return Keys{Display: KeyX11Display, Surface: KeyX11Window}, true
	case ProtocolWayland:
		return Keys{Display: KeyWaylandDisplay, Surface: KeyWaylandSurface}, true
	default:
		return Keys{}, false
	}
}

// ExtractHandles reads the native handles of protocol p from win, using only
// p's property keys. It returns false when either handle is missing.
func ExtractHandles(win Window, p Protocol) (Handles, bool) {
	if win == nil {
		return nil, false
	}
	props := win.Properties()
	if props == nil {
		return nil, false
	}

	keys, ok := KeysFor(p)
	if !ok {
		Logger().Warn("no property keys for protocol", zap.Stringer("protocol", p))
		return nil, false
	}

	var (
		h       Handles
		present bool
	)
	switch p {
	case ProtocolX11:
		window, _ := props.Number(keys.Surface)
		h, present = NewX11Handles(props.Pointer(keys.Display), window)
	case ProtocolWayland:
		h, present = NewWaylandHandles(props.Pointer(keys.Display), props.Pointer(keys.Surface))
	}
	if !present {
		Logger().Warn("native handles absent",
			zap.Stringer("protocol", p),
			zap.String("display_key", keys.Display),
			zap.String("surface_key", keys.Surface))
		return nil, false
	}

	Logger().Debug("extracted native handles",
		zap.Stringer("protocol", p),
		zap.Stringer("display", h.Display()),
		zap.Stringer("surface", h.Surface()))
	return h, true
}
