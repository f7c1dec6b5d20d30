package platform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfboot/internal/platform"
	"surfboot/internal/platform/platformtest"
)

type recordingDispatcher struct {
	x11     []platform.X11Handles
	wayland []platform.WaylandHandles
}

func (r *recordingDispatcher) X11(h platform.X11Handles) error {
	r.x11 = append(r.x11, h)
	return nil
}

func (r *recordingDispatcher) Wayland(h platform.WaylandHandles) error {
	r.wayland = append(r.wayland, h)
	return nil
}

func TestBuild_TagFollowsHandles(t *testing.T) {
	for _, p := range platform.Supported() {
		h, ok := platform.ExtractHandles(platformtest.NewWindowFor(p), p)
		require.True(t, ok)

		d := platform.Build(h)
		assert.True(t, d.Valid())
		assert.Equal(t, p, d.Protocol())
		assert.Equal(t, h, d.Handles())
	}
}

func TestDescriptor_ZeroIsAbsent(t *testing.T) {
	var d platform.Descriptor
	assert.False(t, d.Valid())
	assert.Equal(t, platform.ProtocolUnknown, d.Protocol())
	assert.Equal(t, "descriptor(absent)", d.String())

	rec := &recordingDispatcher{}
	err := d.Dispatch(rec)
	assert.True(t, errors.Is(err, platform.ErrNoHandles))
	assert.Empty(t, rec.x11)
	assert.Empty(t, rec.wayland)

	assert.False(t, platform.Build(nil).Valid())
}

func TestDescriptor_DispatchSelectsOnePath(t *testing.T) {
	x11Win := platformtest.NewX11Window(0x1200003)
	h, ok := platform.ExtractHandles(x11Win, platform.ProtocolX11)
	require.True(t, ok)

	rec := &recordingDispatcher{}
	require.NoError(t, platform.Build(h).Dispatch(rec))
	require.Len(t, rec.x11, 1)
	assert.Empty(t, rec.wayland)
	assert.Equal(t, uint64(0x1200003), rec.x11[0].Window())
	assert.Equal(t, x11Win.Pointers[platform.KeyX11Display], rec.x11[0].DisplayPointer())

	wlWin := platformtest.NewWaylandWindow()
	h, ok = platform.ExtractHandles(wlWin, platform.ProtocolWayland)
	require.True(t, ok)

	rec = &recordingDispatcher{}
	require.NoError(t, platform.Build(h).Dispatch(rec))
	require.Len(t, rec.wayland, 1)
	assert.Empty(t, rec.x11)
	assert.Equal(t, wlWin.Pointers[platform.KeyWaylandSurface], rec.wayland[0].SurfacePointer())
}
