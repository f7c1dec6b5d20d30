package renderer

import (
	"errors"
	"fmt"
	"strings"

	"surfboot/internal/platform"
)

// Reason classifies a bootstrap failure.
type Reason uint8

const (
	ReasonProtocolUndetected Reason = iota + 1
	ReasonHandlesAbsent
	ReasonBackendInitFailed
	// ReasonAlreadyBootstrapped is a caller error: bootstrap ran before.
	ReasonAlreadyBootstrapped
)

// Sentinels matched by errors.Is against an *Error of the same Reason.
var (
	ErrProtocolUndetected  = errors.New("renderer: protocol undetected")
	ErrHandlesAbsent       = errors.New("renderer: handles absent")
	ErrBackendInitFailed   = errors.New("renderer: backend init failed")
	ErrAlreadyBootstrapped = errors.New("renderer: already bootstrapped")

	// ErrBackendNotRegistered is wrapped when the requested renderer has no backend.
	ErrBackendNotRegistered = errors.New("renderer: backend not registered")
)

func (r Reason) sentinel() error {
	switch r {
	case ReasonProtocolUndetected:
		return ErrProtocolUndetected
	case ReasonHandlesAbsent:
		return ErrHandlesAbsent
	case ReasonBackendInitFailed:
		return ErrBackendInitFailed
	case ReasonAlreadyBootstrapped:
		return ErrAlreadyBootstrapped
	default:
		return nil
	}
}

func (r Reason) String() string {
	switch r {
	case ReasonProtocolUndetected:
		return "protocol undetected"
	case ReasonHandlesAbsent:
		return "handles absent"
	case ReasonBackendInitFailed:
		return "backend init failed"
	case ReasonAlreadyBootstrapped:
		return "already bootstrapped"
	default:
		return "unknown failure"
	}
}

// Error is the typed failure returned by Bootstrapper.
type Error struct {
	Reason   Reason
	Protocol platform.Protocol
	Renderer Type
	// Hint carries session diagnostics for ReasonProtocolUndetected.
	Hint string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("renderer: ")
	b.WriteString(e.Reason.String())
	switch e.Reason {
	case ReasonProtocolUndetected:
		if e.Hint != "" {
			fmt.Fprintf(&b, " (%s)", e.Hint)
		}
	case ReasonBackendInitFailed:
		fmt.Fprintf(&b, " for protocol %s (%s)", e.Protocol, e.Renderer)
	default:
		fmt.Fprintf(&b, " for protocol %s", e.Protocol)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Reason.
func (e *Error) Is(target error) bool {
	s := e.Reason.sentinel()
	return s != nil && target == s
}
