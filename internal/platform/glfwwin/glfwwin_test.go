package glfwwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfboot/internal/platform"
	"surfboot/internal/platform/platformtest"
)

type fakeWindow struct{ props propertyMap }

func (f fakeWindow) Properties() platform.Properties { return f.props }

func TestX11PropertiesExtract(t *testing.T) {
	display := platformtest.NewPointer()
	win := fakeWindow{x11Properties(display, 0x1c00004)}

	h, ok := platform.ExtractHandles(win, platform.ProtocolX11)
	require.True(t, ok)
	assert.Equal(t, display, h.Display().Pointer())
	assert.Equal(t, uint64(0x1c00004), h.Surface().ID())

	_, ok = platform.ExtractHandles(win, platform.ProtocolWayland)
	assert.False(t, ok, "x11 window must not yield wayland handles")
}

func TestWaylandPropertiesExtract(t *testing.T) {
	display, surface := platformtest.NewPointer(), platformtest.NewPointer()
	win := fakeWindow{waylandProperties(display, surface)}

	h, ok := platform.ExtractHandles(win, platform.ProtocolWayland)
	require.True(t, ok)
	assert.Equal(t, display, h.Display().Pointer())
	assert.Equal(t, surface, h.Surface().Pointer())

	_, ok = platform.ExtractHandles(win, platform.ProtocolX11)
	assert.False(t, ok, "wayland window must not yield x11 handles")
}

func TestUnsetHandlesAreNotStored(t *testing.T) {
	m := x11Properties(nil, 0)
	assert.Nil(t, m.Pointer(platform.KeyX11Display))
	_, ok := m.Number(platform.KeyX11Window)
	assert.False(t, ok)

	_, ok = platform.ExtractHandles(fakeWindow{waylandProperties(platformtest.NewPointer(), nil)}, platform.ProtocolWayland)
	assert.False(t, ok)
}

func TestNilWindowHasNoProperties(t *testing.T) {
	var w *Window
	_, ok := platform.ExtractHandles(w, platform.ProtocolX11)
	assert.False(t, ok)
}

func TestLibraryReportsBuildBackend(t *testing.T) {
	assert.Equal(t, videoDriver, Library{}.CurrentVideoDriver())
}
