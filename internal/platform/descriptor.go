package platform

import "errors"

// ErrNoHandles is returned by Descriptor.Dispatch on the zero Descriptor.
var ErrNoHandles = errors.New("platform: descriptor has no native handles")

// Dispatcher receives a descriptor's handles through the method matching its
// protocol. Adding a protocol adds a method here, so every implementation has
// to handle it before the program compiles again.
type Dispatcher interface {
	X11(h X11Handles) error
	Wayland(h WaylandHandles) error
}

// Descriptor is the protocol-tagged handle bundle handed to a graphics
// backend. It is immutable; the zero value carries no handles and is not
// Valid.
type Descriptor struct {
	handles Handles
}

// Build wraps a handle pair into a Descriptor. The protocol tag is the one
// the pair was extracted for, so tag and handles cannot disagree.
func Build(h Handles) Descriptor {
	return Descriptor{handles: h}
}

// Valid reports whether the descriptor carries handles.
func (d Descriptor) Valid() bool { return d.handles != nil }

// Protocol returns the descriptor's protocol tag.
func (d Descriptor) Protocol() Protocol {
	if d.handles == nil {
		return ProtocolUnknown
	}
	return d.handles.Protocol()
}

// Handles returns the handle pair, or nil for the zero Descriptor.
func (d Descriptor) Handles() Handles { return d.handles }

// Dispatch calls the Dispatcher method for the descriptor's protocol.
func (d Descriptor) Dispatch(v Dispatcher) error {
	if d.handles == nil {
		return ErrNoHandles
	}
	return d.handles.dispatch(v)
}

func (d Descriptor) String() string {
	if d.handles == nil {
		return "descriptor(absent)"
	}
	return "descriptor(" + d.handles.Protocol().String() + " display=" + d.handles.Display().String() +
		" surface=" + d.handles.Surface().String() + ")"
}
