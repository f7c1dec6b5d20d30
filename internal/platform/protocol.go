// Package platform resolves which native windowing protocol is active and
// turns the windowing library's native handles into a descriptor a graphics
// backend can consume.
//
// The pipeline is strictly forward: DetectActiveProtocol, ExtractHandles,
// Build. Each step reports absence explicitly instead of substituting a
// default, so a descriptor only exists when both native handles exist.
package platform

import "strings"

// Protocol identifies a native windowing protocol.
type Protocol uint8

const (
	// ProtocolUnknown means the windowing library reported no usable protocol.
	ProtocolUnknown Protocol = iota
	// ProtocolX11 is the X Window System (Xlib display, XID window).
	ProtocolX11
	// ProtocolWayland is Wayland (wl_display, wl_surface).
	ProtocolWayland
)

// String returns the lower-case protocol name.
func (p Protocol) String() string {
	switch p {
	case ProtocolX11:
		return "x11"
	case ProtocolWayland:
		return "wayland"
	default:
		return "unknown"
	}
}

// Supported lists every concrete protocol, in declaration order.
func Supported() []Protocol {
	return []Protocol{ProtocolX11, ProtocolWayland}
}

// ParseProtocol maps a windowing library driver name onto a Protocol.
// Unrecognised names, including the empty string, map to ProtocolUnknown.
func ParseProtocol(driver string) Protocol {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "x11":
		return ProtocolX11
	case "wayland":
		return ProtocolWayland
	default:
		return ProtocolUnknown
	}
}
