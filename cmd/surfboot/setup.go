package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"surfboot/internal/config"
	"surfboot/internal/graphics/backend/noop"
	"surfboot/internal/graphics/backend/opengl"
	"surfboot/internal/graphics/backend/vulkan"
	"surfboot/internal/graphics/backend/webgpu"
	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform/glfwwin"
)

// setupWindow creates the window the renderer will draw to. Only the
// OpenGL renderer gets a GL context; everything else takes a bare surface.
func setupWindow(cfg *config.Config, opts renderer.Options, visible bool) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	if opts.Renderer == renderer.TypeOpenGL {
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		if opts.Resolution.Reset.Has(renderer.ResetMSAA) {
			glfw.WindowHint(glfw.Samples, 4)
		}
		if opts.Resolution.Reset.Has(renderer.ResetSRGB) {
			glfw.WindowHint(glfw.SRGBCapable, glfw.True)
		}
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	}

	return glfw.CreateWindow(int(cfg.Width), int(cfg.Height), cfg.Title, nil, nil)
}

// setupBackends registers every backend against win.
func setupBackends(win *glfwwin.Window) *renderer.Bootstrapper {
	w := win.GLFW()
	return renderer.NewBootstrapper(
		noop.New(),
		opengl.New(opengl.Options{
			MakeCurrent: func() error {
				w.MakeContextCurrent()
				return nil
			},
			SwapInterval: glfw.SwapInterval,
		}),
		vulkan.New(vulkan.Options{
			ProcAddr:      glfwwin.VulkanLoader(),
			CreateSurface: win.VulkanSurface,
		}),
		webgpu.New(webgpu.Options{}),
	)
}
