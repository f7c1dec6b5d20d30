// Package webgpu is a graphics backend built on wgpu-native. It creates the
// window surface from the descriptor's native handles: an Xlib surface for
// X11 and a Wayland surface for Wayland.
package webgpu

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"

	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform"
)

// Options tunes adapter selection.
type Options struct {
	ForceFallbackAdapter bool
	LowPower             bool
	// Logger defaults to renderer.Logger().
	Logger *zap.Logger
}

// Backend initializes a WebGPU device bound to the window surface.
type Backend struct {
	opts Options
}

var _ renderer.Backend = (*Backend)(nil)

// New returns a WebGPU backend.
func New(opts Options) *Backend {
	return &Backend{opts: opts}
}

func (b *Backend) Type() renderer.Type { return renderer.TypeWebGPU }

func (b *Backend) logger() *zap.Logger {
	if b.opts.Logger != nil {
		return b.opts.Logger
	}
	return renderer.Logger()
}

func (b *Backend) Init(desc platform.Descriptor, res renderer.Resolution) (renderer.Context, error) {
	var src surfaceSource
	if err := desc.Dispatch(&src); err != nil {
		return nil, fmt.Errorf("webgpu: %w", err)
	}
	p := desc.Protocol()

	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, errors.New("webgpu: failed to create instance")
	}
	c := &Context{protocol: p, res: res, instance: instance}

	c.surface = instance.CreateSurface(src.desc)
	if c.surface == nil {
		c.Close()
		return nil, fmt.Errorf("webgpu: failed to create %s surface", p)
	}

	power := wgpu.PowerPreferenceHighPerformance
	if b.opts.LowPower {
		power = wgpu.PowerPreferenceLowPower
	}
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    c.surface,
		PowerPreference:      power,
		ForceFallbackAdapter: b.opts.ForceFallbackAdapter,
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("webgpu: request adapter for %s surface: %w", p, err)
	}
	c.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "surfboot device"})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("webgpu: request device: %w", err)
	}
	c.device = device
	c.queue = device.GetQueue()

	caps := c.surface.GetCapabilities(adapter)
	format, ok := chooseFormat(caps.Formats, res.Reset.Has(renderer.ResetSRGB))
	if !ok || len(caps.AlphaModes) == 0 {
		c.Close()
		return nil, fmt.Errorf("webgpu: %s surface is not presentable with this adapter", p)
	}
	c.format = format
	c.sampleCount = sampleCount(res.Reset)

	c.surface.Configure(adapter, device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       res.Width,
		Height:      res.Height,
		PresentMode: presentMode(res.Reset),
		AlphaMode:   caps.AlphaModes[0],
	})

	b.logger().Info("webgpu surface configured",
		zap.Stringer("protocol", p),
		zap.Uint32("width", res.Width),
		zap.Uint32("height", res.Height),
		zap.Uint32("samples", c.sampleCount),
		zap.Bool("vsync", res.Reset.Has(renderer.ResetVSync)))
	return c, nil
}

// Context owns the WebGPU objects created for the window surface.
type Context struct {
	protocol    platform.Protocol
	res         renderer.Resolution
	format      wgpu.TextureFormat
	sampleCount uint32

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

var _ renderer.Context = (*Context)(nil)

func (c *Context) Type() renderer.Type             { return renderer.TypeWebGPU }
func (c *Context) Protocol() platform.Protocol     { return c.protocol }
func (c *Context) Resolution() renderer.Resolution { return c.res }

// Format is the configured surface texture format.
func (c *Context) Format() wgpu.TextureFormat { return c.format }

// SampleCount is 4 when MSAA was requested, else 1.
func (c *Context) SampleCount() uint32 { return c.sampleCount }

func (c *Context) Surface() *wgpu.Surface { return c.surface }
func (c *Context) Device() *wgpu.Device   { return c.device }
func (c *Context) Queue() *wgpu.Queue     { return c.queue }

// Close releases everything in reverse creation order.
func (c *Context) Close() error {
	if c.queue != nil {
		c.queue.Release()
		c.queue = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
	return nil
}
