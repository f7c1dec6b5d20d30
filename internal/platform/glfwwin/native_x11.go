//go:build linux && !wayland

package glfwwin

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const videoDriver = "x11"

func nativeProperties(w *glfw.Window) propertyMap {
	return x11Properties(unsafe.Pointer(glfw.GetX11Display()), uint64(w.GetX11Window()))
}
