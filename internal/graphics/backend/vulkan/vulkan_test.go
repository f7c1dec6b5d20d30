package vulkan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform"
	"surfboot/internal/platform/platformtest"
)

func TestExtensionSetPerProtocol(t *testing.T) {
	want := map[platform.Protocol][]string{
		platform.ProtocolX11:     {extSurface, extXlibSurface},
		platform.ProtocolWayland: {extSurface, extWaylandSurface},
	}
	for p, exts := range want {
		h, ok := platform.ExtractHandles(platformtest.NewWindowFor(p), p)
		require.True(t, ok)

		var set extensionSet
		require.NoError(t, platform.Build(h).Dispatch(&set))
		assert.Equal(t, exts, set.names, p.String())
	}
}

func TestMissingExtensions(t *testing.T) {
	have := []string{extSurface, extXlibSurface, "VK_KHR_xcb_surface"}
	assert.Empty(t, missingExtensions([]string{extSurface, extXlibSurface}, have))
	assert.Equal(t, []string{extWaylandSurface}, missingExtensions([]string{extSurface, extWaylandSurface}, have))
}

func TestCStrings(t *testing.T) {
	assert.Equal(t, []string{"VK_KHR_surface\x00"}, cStrings([]string{extSurface}))
	assert.Empty(t, cStrings(nil))
}

func TestInitValidatesBeforeTouchingVulkan(t *testing.T) {
	res := renderer.Resolution{Width: 640, Height: 480}

	_, err := New(Options{}).Init(platform.Descriptor{}, res)
	assert.ErrorIs(t, err, platform.ErrNoHandles)

	h, ok := platform.ExtractHandles(platformtest.NewWaylandWindow(), platform.ProtocolWayland)
	require.True(t, ok)
	_, err = New(Options{}).Init(platform.Build(h), res)
	assert.ErrorIs(t, err, errNoLoader)

	_, err = New(Options{ProcAddr: platformtest.NewPointer()}).Init(platform.Build(h), res)
	assert.ErrorIs(t, err, errNoSurface)
}
