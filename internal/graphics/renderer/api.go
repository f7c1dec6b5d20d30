package renderer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"surfboot/internal/platform"
)

// Type selects a graphics backend implementation.
type Type uint8

const (
	TypeNoop Type = iota
	TypeOpenGL
	TypeVulkan
	TypeWebGPU
)

var typeNames = map[Type]string{
	TypeNoop:   "noop",
	TypeOpenGL: "opengl",
	TypeVulkan: "vulkan",
	TypeWebGPU: "webgpu",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("renderer(%d)", uint8(t))
}

// ParseType parses a renderer name as used in config files and flags.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	if name == "gl" {
		return TypeOpenGL, nil
	}
	return 0, fmt.Errorf("unknown renderer %q (want one of %s)", name, strings.Join(TypeNames(), ", "))
}

// TypeNames returns the accepted renderer names, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(typeNames))
	for _, n := range typeNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ResetFlags are applied by the backend when it configures the surface.
type ResetFlags uint32

const ResetNone ResetFlags = 0

const (
	ResetVSync ResetFlags = 1 << iota
	ResetMSAA
	ResetSRGB
	ResetFlushAfterRender
)

var resetNames = []struct {
	flag ResetFlags
	name string
}{
	{ResetVSync, "vsync"},
	{ResetMSAA, "msaa"},
	{ResetSRGB, "srgb"},
	{ResetFlushAfterRender, "flush_after_render"},
}

// Has reports whether all bits of f are set.
func (r ResetFlags) Has(f ResetFlags) bool { return r&f == f }

// Names returns the names of the set flags.
func (r ResetFlags) Names() []string {
	var names []string
	for _, rn := range resetNames {
		if r.Has(rn.flag) {
			names = append(names, rn.name)
		}
	}
	return names
}

func (r ResetFlags) String() string {
	if r == ResetNone {
		return "none"
	}
	return strings.Join(r.Names(), "|")
}

// ParseResetFlags combines flag names into a bitset.
func ParseResetFlags(names []string) (ResetFlags, error) {
	var flags ResetFlags
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || name == "none" {
			continue
		}
		found := false
		for _, rn := range resetNames {
			if rn.name == name {
				flags |= rn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown reset flag %q", raw)
		}
	}
	return flags, nil
}

// ErrInvalidResolution is wrapped when a resolution has a zero dimension.
var ErrInvalidResolution = errors.New("renderer: invalid resolution")

// Resolution is the backbuffer size plus reset behaviour.
type Resolution struct {
	Width  uint32
	Height uint32
	Reset  ResetFlags
}

// Validate rejects zero-sized resolutions.
func (r Resolution) Validate() error {
	if r.Width == 0 || r.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, r.Width, r.Height)
	}
	return nil
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d reset=%s", r.Width, r.Height, r.Reset)
}

// Options is the platform-independent part of backend initialization.
type Options struct {
	Renderer   Type
	Resolution Resolution
}

// PlatformData is the flat form of a descriptor, for backends and logs that
// only need the raw handles and tag.
type PlatformData struct {
	Protocol platform.Protocol
	Display  platform.Handle
	Surface  platform.Handle
}

// PlatformDataFrom flattens a descriptor. It returns false for the zero
// descriptor.
func PlatformDataFrom(desc platform.Descriptor) (PlatformData, bool) {
	h := desc.Handles()
	if h == nil {
		return PlatformData{}, false
	}
	return PlatformData{Protocol: h.Protocol(), Display: h.Display(), Surface: h.Surface()}, true
}

// Backend initializes a graphics context for a window surface.
//
// Init is only ever called with a Valid descriptor. Implementations select
// their per-protocol path with desc.Dispatch and must not try a different
// protocol when that path fails.
type Backend interface {
	Type() Type
	Init(desc platform.Descriptor, res Resolution) (Context, error)
}

// Context is a live graphics context. The caller of Bootstrap owns it and is
// responsible for Close.
type Context interface {
	Type() Type
	Protocol() platform.Protocol
	Resolution() Resolution
	Close() error
}
