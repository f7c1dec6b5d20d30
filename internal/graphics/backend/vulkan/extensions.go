package vulkan

import (
	"sort"

	"surfboot/internal/platform"
)

const (
	extSurface        = "VK_KHR_surface"
	extXlibSurface    = "VK_KHR_xlib_surface"
	extWaylandSurface = "VK_KHR_wayland_surface"
)

// extensionSet collects the instance extensions one protocol needs.
type extensionSet struct {
	names []string
}

var _ platform.Dispatcher = (*extensionSet)(nil)

func (e *extensionSet) X11(platform.X11Handles) error {
	e.names = []string{extSurface, extXlibSurface}
	return nil
}

func (e *extensionSet) Wayland(platform.WaylandHandles) error {
	e.names = []string{extSurface, extWaylandSurface}
	return nil
}

// missingExtensions returns the entries of want not in have, sorted.
func missingExtensions(want, have []string) []string {
	avail := make(map[string]struct{}, len(have))
	for _, h := range have {
		avail[h] = struct{}{}
	}
	var missing []string
	for _, w := range want {
		if _, ok := avail[w]; !ok {
			missing = append(missing, w)
		}
	}
	sort.Strings(missing)
	return missing
}

// cStrings NUL-terminates names for the C API.
func cStrings(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n + "\x00"
	}
	return out
}
