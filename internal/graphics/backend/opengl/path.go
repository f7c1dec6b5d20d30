package opengl

import (
	"github.com/go-gl/mathgl/mgl32"

	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform"
)

// ContextPath names the API a GL context is created through.
type ContextPath string

const (
	PathGLX ContextPath = "glx"
	PathEGL ContextPath = "egl"
)

// contextPath picks the context API for the descriptor's protocol.
type contextPath struct {
	path ContextPath
}

var _ platform.Dispatcher = (*contextPath)(nil)

func (c *contextPath) X11(platform.X11Handles) error {
	c.path = PathGLX
	return nil
}

func (c *contextPath) Wayland(platform.WaylandHandles) error {
	c.path = PathEGL
	return nil
}

func swapInterval(reset renderer.ResetFlags) int {
	if reset.Has(renderer.ResetVSync) {
		return 1
	}
	return 0
}

// projection maps window pixels to clip space with the origin top-left.
func projection(res renderer.Resolution) mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(res.Width), float32(res.Height), 0)
}
