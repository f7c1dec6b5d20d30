package webgpu

import (
	"fmt"
	"math"

	"github.com/cogentcore/webgpu/wgpu"

	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform"
)

// surfaceSource turns descriptor handles into the matching surface
// descriptor variant. Exactly one variant is ever set.
type surfaceSource struct {
	desc *wgpu.SurfaceDescriptor
}

var _ platform.Dispatcher = (*surfaceSource)(nil)

func (s *surfaceSource) X11(h platform.X11Handles) error {
	if h.Window() > math.MaxUint32 {
		return fmt.Errorf("x11 window id 0x%x does not fit in 32 bits", h.Window())
	}
	s.desc = &wgpu.SurfaceDescriptor{
		XlibWindow: &wgpu.SurfaceDescriptorFromXlibWindow{
			Display: h.DisplayPointer(),
			Window:  uint32(h.Window()),
		},
	}
	return nil
}

func (s *surfaceSource) Wayland(h platform.WaylandHandles) error {
	s.desc = &wgpu.SurfaceDescriptor{
		WaylandSurface: &wgpu.SurfaceDescriptorFromWaylandSurface{
			Display: h.DisplayPointer(),
			Surface: h.SurfacePointer(),
		},
	}
	return nil
}

// presentMode maps the vsync reset flag onto a present mode.
func presentMode(reset renderer.ResetFlags) wgpu.PresentMode {
	if reset.Has(renderer.ResetVSync) {
		return wgpu.PresentModeFifo
	}
	return wgpu.PresentModeImmediate
}

// chooseFormat prefers an 8-bit BGRA/RGBA format matching the sRGB flag and
// otherwise takes the surface's preferred (first) format.
func chooseFormat(formats []wgpu.TextureFormat, srgb bool) (wgpu.TextureFormat, bool) {
	if len(formats) == 0 {
		return 0, false
	}
	want := []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8Unorm}
	if srgb {
		want = []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb}
	}
	for _, w := range want {
		for _, f := range formats {
			if f == w {
				return f, true
			}
		}
	}
	return formats[0], true
}

func sampleCount(reset renderer.ResetFlags) uint32 {
	if reset.Has(renderer.ResetMSAA) {
		return 4
	}
	return 1
}
