//go:build !linux

package glfwwin

import "github.com/go-gl/glfw/v3.3/glfw"

// No X11 or Wayland backend outside Linux.
const videoDriver = ""

func nativeProperties(*glfw.Window) propertyMap { return propertyMap{} }
