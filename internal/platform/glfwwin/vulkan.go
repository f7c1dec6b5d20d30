package glfwwin

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"

	"surfboot/internal/platform"
)

// VulkanLoader returns GLFW's vkGetInstanceProcAddr, or nil when GLFW found
// no Vulkan loader.
func VulkanLoader() unsafe.Pointer {
	if !glfw.VulkanSupported() {
		return nil
	}
	return glfw.GetVulkanGetInstanceProcAddress()
}

// VulkanSurface creates a surface for the window. desc must have been built
// from this window under this library's protocol.
func (w *Window) VulkanSurface(instance vk.Instance, desc platform.Descriptor) (surface vk.Surface, err error) {
	if got, want := desc.Protocol(), platform.ParseProtocol(videoDriver); got != want {
		return surface, fmt.Errorf("glfwwin: descriptor is %s but glfw runs on %s", got, want)
	}
	ptr, err := w.w.CreateWindowSurface(instance, nil)
	if err != nil {
		return surface, err
	}
	return vk.SurfaceFromPointer(ptr), nil
}
