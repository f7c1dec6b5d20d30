//go:build linux && wayland

package glfwwin

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const videoDriver = "wayland"

func nativeProperties(w *glfw.Window) propertyMap {
	return waylandProperties(unsafe.Pointer(glfw.GetWaylandDisplay()), unsafe.Pointer(w.GetWaylandWindow()))
}
