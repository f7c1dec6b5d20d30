package renderer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfboot/internal/graphics/backend/noop"
	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform"
	"surfboot/internal/platform/platformtest"
)

func noopOptions() renderer.Options {
	return renderer.Options{
		Renderer:   renderer.TypeNoop,
		Resolution: renderer.Resolution{Width: 1280, Height: 720, Reset: renderer.ResetVSync},
	}
}

func TestStart_WaylandSuccess(t *testing.T) {
	be := noop.New()
	b := renderer.NewBootstrapper(be)

	ctx, err := b.Start(platformtest.Library{Driver: "wayland"}, platformtest.NewWaylandWindow(), noopOptions())
	require.NoError(t, err)
	require.NotNil(t, ctx)

	assert.Equal(t, platform.ProtocolWayland, ctx.Protocol())
	assert.Equal(t, renderer.StateContextLive, b.State())
	assert.Equal(t, 1, be.Calls())
	assert.Equal(t, "wayland", ctx.(*noop.Context).Path())
	assert.Equal(t, uint32(1280), ctx.Resolution().Width)
}

func TestStart_X11Success(t *testing.T) {
	be := noop.New()
	b := renderer.NewBootstrapper(be)

	ctx, err := b.Start(platformtest.Library{Driver: "x11"}, platformtest.NewX11Window(0x3c00004), noopOptions())
	require.NoError(t, err)

	data := ctx.(*noop.Context).PlatformData()
	assert.Equal(t, platform.ProtocolX11, data.Protocol)
	assert.Equal(t, uint64(0x3c00004), data.Surface.ID())
	assert.Equal(t, "x11", ctx.(*noop.Context).Path())
}

// wrongKeysWindow is a Wayland window whose properties are queried through
// the X11 namespace, the mistake the extractor is built to catch.
type wrongKeysWindow struct{ *platformtest.Window }

func TestStart_WaylandWithX11KeysFailsWithoutBackendCall(t *testing.T) {
	be := noop.New()
	b := renderer.NewBootstrapper(be)

	// The window runs under Wayland but only carries X11-namespace keys.
	win := platformtest.NewWindow()
	win.Pointers[platform.KeyX11Display] = platformtest.NewPointer()
	win.Numbers[platform.KeyX11Window] = 42

	ctx, err := b.Start(platformtest.Library{Driver: "wayland"}, wrongKeysWindow{win}, noopOptions())
	require.Error(t, err)
	assert.Nil(t, ctx)
	assert.True(t, errors.Is(err, renderer.ErrHandlesAbsent))
	assert.Equal(t, 0, be.Calls())
	assert.Equal(t, renderer.StateFailed, b.State())

	var rerr *renderer.Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, platform.ProtocolWayland, rerr.Protocol)
	assert.Contains(t, err.Error(), "wayland")
}

func TestStart_ProtocolUndetected(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	t.Setenv("WAYLAND_DISPLAY", "wayland-0")

	be := noop.New()
	b := renderer.NewBootstrapper(be)

	_, err := b.Start(platformtest.Library{}, platformtest.NewWaylandWindow(), noopOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, renderer.ErrProtocolUndetected))
	assert.Equal(t, 0, be.Calls())
	assert.Contains(t, err.Error(), "session looks like wayland")
	assert.Same(t, err, b.Err())
}

func TestBootstrap_AbsentDescriptorNeverReachesBackend(t *testing.T) {
	be := noop.New()
	b := renderer.NewBootstrapper(be)

	_, err := b.Bootstrap(platform.Descriptor{}, noopOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, renderer.ErrHandlesAbsent))
	assert.True(t, errors.Is(err, platform.ErrNoHandles))
	assert.Equal(t, 0, be.Calls())
}

func TestBootstrap_SecondCallIsCallerError(t *testing.T) {
	be := noop.New()
	b := renderer.NewBootstrapper(be)

	h, ok := platform.ExtractHandles(platformtest.NewWaylandWindow(), platform.ProtocolWayland)
	require.True(t, ok)
	desc := platform.Build(h)

	first, err := b.Bootstrap(desc, noopOptions())
	require.NoError(t, err)

	second, err := b.Bootstrap(desc, noopOptions())
	assert.Nil(t, second)
	assert.True(t, errors.Is(err, renderer.ErrAlreadyBootstrapped))
	assert.Equal(t, 1, be.Calls())
	assert.Equal(t, renderer.StateContextLive, b.State())
	assert.Same(t, first, b.Context())

	_, err = b.Start(platformtest.Library{Driver: "wayland"}, platformtest.NewWaylandWindow(), noopOptions())
	assert.True(t, errors.Is(err, renderer.ErrAlreadyBootstrapped))
	assert.Equal(t, 1, be.Calls())
}

func TestBootstrap_NoRetryAfterFailure(t *testing.T) {
	be := noop.New()
	b := renderer.NewBootstrapper(be)

	_, err := b.Bootstrap(platform.Descriptor{}, noopOptions())
	require.Error(t, err)
	failure := b.Err()

	h, _ := platform.ExtractHandles(platformtest.NewX11Window(9), platform.ProtocolX11)
	_, err = b.Bootstrap(platform.Build(h), noopOptions())
	assert.True(t, errors.Is(err, renderer.ErrAlreadyBootstrapped))
	assert.Equal(t, renderer.StateFailed, b.State())
	assert.Same(t, failure, b.Err())
	assert.Equal(t, 0, be.Calls())
}

func TestBootstrap_BackendFailureIsReportedNotRetried(t *testing.T) {
	be := noop.New()
	be.Fail = errors.New("device lost")
	b := renderer.NewBootstrapper(be)

	h, _ := platform.ExtractHandles(platformtest.NewWaylandWindow(), platform.ProtocolWayland)
	_, err := b.Bootstrap(platform.Build(h), noopOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, renderer.ErrBackendInitFailed))
	assert.Equal(t, 1, be.Calls())
	assert.Equal(t, platform.ProtocolWayland, be.Last().Protocol())
	assert.True(t, strings.HasPrefix(err.Error(), "renderer: backend init failed for protocol wayland (noop)"), err.Error())
}

func TestBootstrap_UnregisteredRenderer(t *testing.T) {
	be := noop.New()
	b := renderer.NewBootstrapper(be)

	opts := noopOptions()
	opts.Renderer = renderer.TypeVulkan

	h, _ := platform.ExtractHandles(platformtest.NewX11Window(5), platform.ProtocolX11)
	_, err := b.Bootstrap(platform.Build(h), opts)
	assert.True(t, errors.Is(err, renderer.ErrBackendInitFailed))
	assert.True(t, errors.Is(err, renderer.ErrBackendNotRegistered))
	assert.Equal(t, 0, be.Calls())
}

func TestBootstrap_ZeroResolution(t *testing.T) {
	be := noop.New()
	b := renderer.NewBootstrapper(be)

	opts := noopOptions()
	opts.Resolution.Height = 0

	h, _ := platform.ExtractHandles(platformtest.NewX11Window(5), platform.ProtocolX11)
	_, err := b.Bootstrap(platform.Build(h), opts)
	assert.True(t, errors.Is(err, renderer.ErrInvalidResolution))
	assert.Equal(t, 0, be.Calls())
}

type nilContextBackend struct{}

func (nilContextBackend) Type() renderer.Type { return renderer.TypeNoop }
func (nilContextBackend) Init(platform.Descriptor, renderer.Resolution) (renderer.Context, error) {
	return nil, nil
}

func TestBootstrap_NilContextIsFailure(t *testing.T) {
	b := renderer.NewBootstrapper(nilContextBackend{})
	h, _ := platform.ExtractHandles(platformtest.NewX11Window(5), platform.ProtocolX11)
	_, err := b.Bootstrap(platform.Build(h), noopOptions())
	assert.True(t, errors.Is(err, renderer.ErrBackendInitFailed))
	assert.Nil(t, b.Context())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "context-live", renderer.StateContextLive.String())
	assert.Equal(t, "failed", renderer.StateFailed.String())
}
