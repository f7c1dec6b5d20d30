// Package vulkan is a graphics backend on the Vulkan API. The descriptor's
// protocol decides which WSI instance extension is enabled; the surface
// itself is created by the windowing library through Options.CreateSurface.
package vulkan

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
	"go.uber.org/zap"

	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform"
)

// SurfaceFunc creates a VkSurfaceKHR for the window the descriptor was built
// from.
type SurfaceFunc func(instance vk.Instance, desc platform.Descriptor) (vk.Surface, error)

// Options configures the Vulkan backend.
type Options struct {
	AppName string
	// ProcAddr is vkGetInstanceProcAddr as exported by the windowing library.
	ProcAddr      unsafe.Pointer
	CreateSurface SurfaceFunc
	Layers        []string
	Logger        *zap.Logger
}

var (
	errNoLoader  = errors.New("vulkan: no vkGetInstanceProcAddr loader")
	errNoSurface = errors.New("vulkan: no surface factory")
)

// Backend creates a Vulkan instance, surface and physical device selection.
type Backend struct {
	opts Options
}

var _ renderer.Backend = (*Backend)(nil)

// New returns a Vulkan backend.
func New(opts Options) *Backend {
	if opts.AppName == "" {
		opts.AppName = "surfboot"
	}
	return &Backend{opts: opts}
}

func (b *Backend) Type() renderer.Type { return renderer.TypeVulkan }

func (b *Backend) logger() *zap.Logger {
	if b.opts.Logger != nil {
		return b.opts.Logger
	}
	return renderer.Logger()
}

func (b *Backend) Init(desc platform.Descriptor, res renderer.Resolution) (renderer.Context, error) {
	var exts extensionSet
	if err := desc.Dispatch(&exts); err != nil {
		return nil, fmt.Errorf("vulkan: %w", err)
	}
	if b.opts.ProcAddr == nil {
		return nil, errNoLoader
	}
	if b.opts.CreateSurface == nil {
		return nil, errNoSurface
	}
	p := desc.Protocol()

	vk.SetGetInstanceProcAddr(b.opts.ProcAddr)
	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("vulkan: loader init: %w", err)
	}

	have, err := instanceExtensions()
	if err != nil {
		return nil, err
	}
	if missing := missingExtensions(exts.names, have); len(missing) > 0 {
		return nil, fmt.Errorf("vulkan: %s needs instance extensions %s", p, strings.Join(missing, ", "))
	}

	var instance vk.Instance
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			PApplicationName:   b.opts.AppName + "\x00",
			ApplicationVersion: vk.MakeVersion(1, 0, 0),
			PEngineName:        "surfboot\x00",
			ApiVersion:         vk.MakeVersion(1, 1, 0),
		},
		EnabledExtensionCount:   uint32(len(exts.names)),
		PpEnabledExtensionNames: cStrings(exts.names),
		EnabledLayerCount:       uint32(len(b.opts.Layers)),
		PpEnabledLayerNames:     cStrings(b.opts.Layers),
	}, nil, &instance)
	if err := check("vkCreateInstance", ret); err != nil {
		return nil, err
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, fmt.Errorf("vulkan: load instance functions: %w", err)
	}
	c := &Context{protocol: p, res: res, instance: instance, extensions: exts.names}

	surface, err := b.opts.CreateSurface(instance, desc)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("vulkan: create %s surface: %w", p, err)
	}
	c.surface = surface
	c.hasSurface = true

	gpu, family, name, err := pickDevice(instance, surface)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.gpu = gpu
	c.queueFamily = family
	c.deviceName = name

	b.logger().Info("vulkan instance ready",
		zap.Stringer("protocol", p),
		zap.Strings("extensions", exts.names),
		zap.String("device", name),
		zap.Uint32("present_queue_family", family))
	return c, nil
}

func check(op string, ret vk.Result) error {
	if ret != vk.Success {
		return fmt.Errorf("vulkan: %s failed with result %d", op, ret)
	}
	return nil
}

func instanceExtensions() ([]string, error) {
	var count uint32
	if err := check("vkEnumerateInstanceExtensionProperties", vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, err
	}
	list := make([]vk.ExtensionProperties, count)
	if err := check("vkEnumerateInstanceExtensionProperties", vk.EnumerateInstanceExtensionProperties("", &count, list)); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, ext := range list {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// pickDevice returns the first physical device with a queue family that can
// present to surface.
func pickDevice(instance vk.Instance, surface vk.Surface) (vk.PhysicalDevice, uint32, string, error) {
	var count uint32
	if err := check("vkEnumeratePhysicalDevices", vk.EnumeratePhysicalDevices(instance, &count, nil)); err != nil {
		return nil, 0, "", err
	}
	if count == 0 {
		return nil, 0, "", errors.New("vulkan: no physical devices")
	}
	gpus := make([]vk.PhysicalDevice, count)
	if err := check("vkEnumeratePhysicalDevices", vk.EnumeratePhysicalDevices(instance, &count, gpus)); err != nil {
		return nil, 0, "", err
	}

	for _, gpu := range gpus {
		var families uint32
		vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &families, nil)
		for i := uint32(0); i < families; i++ {
			var supported vk.Bool32
			vk.GetPhysicalDeviceSurfaceSupport(gpu, i, surface, &supported)
			if supported == 0 {
				continue
			}
			var props vk.PhysicalDeviceProperties
			vk.GetPhysicalDeviceProperties(gpu, &props)
			props.Deref()
			return gpu, i, vk.ToString(props.DeviceName[:]), nil
		}
	}
	return nil, 0, "", errors.New("vulkan: no device can present to the surface")
}

// Context owns the Vulkan instance and surface.
type Context struct {
	protocol    platform.Protocol
	res         renderer.Resolution
	extensions  []string
	instance    vk.Instance
	surface     vk.Surface
	hasSurface  bool
	gpu         vk.PhysicalDevice
	queueFamily uint32
	deviceName  string
	closed      bool
}

var _ renderer.Context = (*Context)(nil)

func (c *Context) Type() renderer.Type             { return renderer.TypeVulkan }
func (c *Context) Protocol() platform.Protocol     { return c.protocol }
func (c *Context) Resolution() renderer.Resolution { return c.res }

// Extensions lists the enabled instance extensions.
func (c *Context) Extensions() []string { return c.extensions }

func (c *Context) Instance() vk.Instance             { return c.instance }
func (c *Context) Surface() vk.Surface               { return c.surface }
func (c *Context) PhysicalDevice() vk.PhysicalDevice { return c.gpu }
func (c *Context) QueueFamily() uint32               { return c.queueFamily }
func (c *Context) DeviceName() string                { return c.deviceName }

// Close destroys the surface, then the instance.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.hasSurface {
		vk.DestroySurface(c.instance, c.surface, nil)
		c.hasSurface = false
	}
	vk.DestroyInstance(c.instance, nil)
	return nil
}
