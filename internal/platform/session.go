package platform

import (
	"os"
	"strings"
)

var getenvFn = os.Getenv

// SessionHint guesses the session's protocol from the environment
// (XDG_SESSION_TYPE, then WAYLAND_DISPLAY, then DISPLAY).
//
// It is for diagnostics only. The protocol used for handle extraction always
// comes from the windowing library via DetectActiveProtocol.
func SessionHint() Protocol {
	switch strings.ToLower(strings.TrimSpace(getenvFn("XDG_SESSION_TYPE"))) {
	case "wayland":
		return ProtocolWayland
	case "x11":
		return ProtocolX11
	}
	if strings.TrimSpace(getenvFn("WAYLAND_DISPLAY")) != "" {
		return ProtocolWayland
	}
	if strings.TrimSpace(getenvFn("DISPLAY")) != "" {
		return ProtocolX11
	}
	return ProtocolUnknown
}

// SessionEnv returns the session variables SessionHint looks at, formatted as
// "KEY=value" pairs for error messages. Unset variables are omitted.
func SessionEnv() string {
	var parts []string
	for _, key := range []string{"XDG_SESSION_TYPE", "WAYLAND_DISPLAY", "DISPLAY"} {
		if v := strings.TrimSpace(getenvFn(key)); v != "" {
			parts = append(parts, key+"="+v)
		}
	}
	return strings.Join(parts, " ")
}
