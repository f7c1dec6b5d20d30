// Package renderer turns a platform descriptor into a live graphics context.
//
// A Bootstrapper runs once per process on the main thread:
//
//	Uninitialized -> Probing -> DescriptorReady -> BackendSelected -> ContextLive
//
// or ends in Failed with the recorded error. Neither end state can be left
// again; a second attempt is reported as ErrAlreadyBootstrapped.
package renderer

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"surfboot/internal/platform"
	"surfboot/internal/profiling"
)

// State is a Bootstrapper lifecycle state.
type State uint8

const (
	StateUninitialized State = iota
	StateProbing
	StateDescriptorReady
	StateBackendSelected
	StateContextLive
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateProbing:
		return "probing"
	case StateDescriptorReady:
		return "descriptor-ready"
	case StateBackendSelected:
		return "backend-selected"
	case StateContextLive:
		return "context-live"
	case StateFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// Bootstrapper runs the probe -> extract -> build -> init pipeline once.
// It is not safe for concurrent use and is not reentrant.
type Bootstrapper struct {
	backends map[Type]Backend
	state    State
	err      error
	ctx      Context
}

// NewBootstrapper registers the available backends. A later backend with the
// same Type replaces an earlier one.
func NewBootstrapper(backends ...Backend) *Bootstrapper {
	b := &Bootstrapper{backends: make(map[Type]Backend, len(backends))}
	for _, be := range backends {
		if be == nil {
			continue
		}
		b.backends[be.Type()] = be
	}
	return b
}

// State returns the current lifecycle state.
func (b *Bootstrapper) State() State { return b.state }

// Err returns the failure recorded when the state is StateFailed.
func (b *Bootstrapper) Err() error { return b.err }

// Context returns the live context, or nil.
func (b *Bootstrapper) Context() Context { return b.ctx }

// Registered lists the renderer types with a backend.
func (b *Bootstrapper) Registered() []Type {
	types := make([]Type, 0, len(b.backends))
	for t := range b.backends {
		types = append(types, t)
	}
	return types
}

// Start runs the whole pipeline: asks lib for the active protocol, extracts
// that protocol's handles from win, builds the descriptor and initializes the
// requested backend.
func (b *Bootstrapper) Start(lib platform.Library, win platform.Window, opts Options) (Context, error) {
	if err := b.enter(); err != nil {
		return nil, err
	}
	profiling.Reset()
	b.state = StateProbing

	var p platform.Protocol
	func() { defer profiling.Track("platform.detect")(); p = platform.DetectActiveProtocol(lib) }()
	if p == platform.ProtocolUnknown {
		return nil, b.fail(&Error{
			Reason:   ReasonProtocolUndetected,
			Renderer: opts.Renderer,
			Hint:     sessionHint(),
			Err:      errors.New("windowing library reported no active protocol"),
		})
	}

	var (
		h  platform.Handles
		ok bool
	)
	func() { defer profiling.Track("platform.extract")(); h, ok = platform.ExtractHandles(win, p) }()
	if !ok {
		keys, _ := platform.KeysFor(p)
		return nil, b.fail(&Error{
			Reason:   ReasonHandlesAbsent,
			Protocol: p,
			Renderer: opts.Renderer,
			Err:      fmt.Errorf("window has no %s / %s", keys.Display, keys.Surface),
		})
	}

	desc := platform.Build(h)
	b.state = StateDescriptorReady
	return b.initBackend(desc, opts)
}

// Bootstrap initializes the requested backend from an already built
// descriptor. The backend is not called when desc carries no handles.
func (b *Bootstrapper) Bootstrap(desc platform.Descriptor, opts Options) (Context, error) {
	if err := b.enter(); err != nil {
		return nil, err
	}
	if !desc.Valid() {
		return nil, b.fail(&Error{
			Reason:   ReasonHandlesAbsent,
			Protocol: desc.Protocol(),
			Renderer: opts.Renderer,
			Err:      platform.ErrNoHandles,
		})
	}
	profiling.Reset()
	b.state = StateDescriptorReady
	return b.initBackend(desc, opts)
}

func (b *Bootstrapper) initBackend(desc platform.Descriptor, opts Options) (Context, error) {
	p := desc.Protocol()
	backend, ok := b.backends[opts.Renderer]
	if !ok {
		return nil, b.fail(&Error{
			Reason:   ReasonBackendInitFailed,
			Protocol: p,
			Renderer: opts.Renderer,
			Err:      fmt.Errorf("%w: %s", ErrBackendNotRegistered, opts.Renderer),
		})
	}
	if err := opts.Resolution.Validate(); err != nil {
		return nil, b.fail(&Error{Reason: ReasonBackendInitFailed, Protocol: p, Renderer: opts.Renderer, Err: err})
	}
	b.state = StateBackendSelected
	Logger().Debug("backend selected",
		zap.Stringer("renderer", opts.Renderer),
		zap.Stringer("protocol", p),
		zap.Stringer("resolution", opts.Resolution))

	var (
		ctx Context
		err error
	)
	func() { defer profiling.Track("backend.init")(); ctx, err = backend.Init(desc, opts.Resolution) }()
	if err == nil && ctx == nil {
		err = errors.New("backend returned no context")
	}
	if err != nil {
		return nil, b.fail(&Error{Reason: ReasonBackendInitFailed, Protocol: p, Renderer: opts.Renderer, Err: err})
	}

	b.ctx = ctx
	b.state = StateContextLive
	Logger().Info("renderer context live",
		zap.Stringer("renderer", ctx.Type()),
		zap.Stringer("protocol", ctx.Protocol()),
		zap.Stringer("resolution", ctx.Resolution()),
		zap.String("stages", profiling.Summary()))
	return ctx, nil
}

// enter rejects every call once the pipeline has started.
func (b *Bootstrapper) enter() error {
	if b.state == StateUninitialized {
		return nil
	}
	p := platform.ProtocolUnknown
	if b.ctx != nil {
		p = b.ctx.Protocol()
	}
	return &Error{
		Reason:   ReasonAlreadyBootstrapped,
		Protocol: p,
		Err:      fmt.Errorf("bootstrapper is %s", b.state),
	}
}

func (b *Bootstrapper) fail(e *Error) error {
	b.state = StateFailed
	b.err = e
	Logger().Error("renderer bootstrap failed",
		zap.Stringer("reason", e.Reason),
		zap.Stringer("protocol", e.Protocol),
		zap.Stringer("renderer", e.Renderer),
		zap.Error(e.Err))
	return e
}

func sessionHint() string {
	var parts []string
	if hint := platform.SessionHint(); hint != platform.ProtocolUnknown {
		parts = append(parts, "session looks like "+hint.String())
	}
	if env := platform.SessionEnv(); env != "" {
		parts = append(parts, env)
	}
	return strings.Join(parts, ", ")
}
