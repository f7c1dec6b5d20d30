package platform

import "go.uber.org/zap"

// Library is the part of a windowing library the probe relies on.
type Library interface {
	// CurrentVideoDriver returns the name of the protocol backend the
	// library is running on, or "" when it cannot tell.
	CurrentVideoDriver() string
}

// DetectActiveProtocol asks the windowing library which protocol is active.
//
// It returns ProtocolUnknown when the library reports nothing recognisable.
// The caller is expected to surface that as a failure; no default is guessed.
func DetectActiveProtocol(lib Library) Protocol {
	if lib == nil {
		Logger().Warn("no windowing library to probe")
		return ProtocolUnknown
	}

	driver := lib.CurrentVideoDriver()
	p := ParseProtocol(driver)
	if p == ProtocolUnknown {
		Logger().Warn("windowing library reported no known protocol",
			zap.String("driver", driver),
			zap.Stringer("session_hint", SessionHint()))
		return ProtocolUnknown
	}

	if hint := SessionHint(); hint != ProtocolUnknown && hint != p {
		// e.g. an X11-only library running under XWayland
		Logger().Info("active protocol differs from session type",
			zap.Stringer("protocol", p),
			zap.Stringer("session_hint", hint))
	}
	Logger().Debug("detected active protocol", zap.Stringer("protocol", p), zap.String("driver", driver))
	return p
}
