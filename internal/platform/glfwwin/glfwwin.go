// Package glfwwin adapts a GLFW window to the platform probe and extractor.
//
// GLFW 3.3 chooses its protocol backend at build time: the default build
// talks to X11 (XWayland included), the "wayland" build tag selects Wayland.
// CurrentVideoDriver reports whichever one this binary was built with.
package glfwwin

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"surfboot/internal/platform"
)

// Library is the GLFW library. glfw.Init must have succeeded.
type Library struct{}

var _ platform.Library = Library{}

func (Library) CurrentVideoDriver() string { return videoDriver }

// Window wraps a GLFW window.
type Window struct {
	w *glfw.Window
}

var _ platform.Window = (*Window)(nil)

// Wrap adapts w.
func Wrap(w *glfw.Window) *Window {
	return &Window{w: w}
}

// GLFW returns the wrapped window.
func (w *Window) GLFW() *glfw.Window { return w.w }

// Properties snapshots the native handles GLFW exposes for the window.
func (w *Window) Properties() platform.Properties {
	if w == nil || w.w == nil {
		return propertyMap{}
	}
	return nativeProperties(w.w)
}

type propertyMap struct {
	pointers map[string]unsafe.Pointer
	numbers  map[string]uint64
}

func (m propertyMap) Pointer(key string) unsafe.Pointer { return m.pointers[key] }

func (m propertyMap) Number(key string) (uint64, bool) {
	n, ok := m.numbers[key]
	return n, ok
}

// x11Properties stores only the handles that are set.
func x11Properties(display unsafe.Pointer, window uint64) propertyMap {
	m := propertyMap{pointers: map[string]unsafe.Pointer{}, numbers: map[string]uint64{}}
	if display != nil {
		m.pointers[platform.KeyX11Display] = display
	}
	if window != 0 {
		m.numbers[platform.KeyX11Window] = window
	}
	return m
}

func waylandProperties(display, surface unsafe.Pointer) propertyMap {
	m := propertyMap{pointers: map[string]unsafe.Pointer{}}
	if display != nil {
		m.pointers[platform.KeyWaylandDisplay] = display
	}
	if surface != nil {
		m.pointers[platform.KeyWaylandSurface] = surface
	}
	return m
}
