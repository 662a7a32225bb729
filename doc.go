// Package viewport provides a pan/zoom 2D viewport rendering engine for
// data visualization: maps, scatter overlays, and geometric scenes drawn
// over an infinite virtual plane.
//
// # Overview
//
// viewport sits between an application's scene content and a pixel
// surface. The application registers Drawable items on integer-keyed
// layers; the engine maintains the screen-to-virtual coordinate
// transform, culls items against the visible rectangle, caches the
// rendered scene in an offscreen buffer, and redraws only when something
// actually changed. An optional coordinate grid and a live cursor
// readout are built in.
//
// # Quick Start
//
//	eng := viewport.New(ggsurface.Allocator())
//	eng.Init()
//	eng.Add(myDrawable)
//
//	dst, _ := ggsurface.New(960, 720)
//	if err := eng.Render(dst); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
// Content lives in virtual space, an unbounded plane independent of
// screen pixels. By default the virtual Y axis points up, matching
// conventional math axes; construct the engine with WithYAxisDown to use
// raw pixel orientation instead. The Camera converts between the two
// spaces from its pan offset and scale (virtual units per screen pixel).
//
// # Configuration
//
// Rendering options come from a Config. The application keeps editing
// its own live Config at any time; the engine copies it into a private
// frame snapshot at most once per frame, so Drawables never observe a
// half-applied change. See Config and BaseConfig.
//
// # Backends
//
// The engine draws through the Surface interface. The ggsurface
// sub-package provides a software implementation backed by
// github.com/gogpu/gg; any pixel-addressable 2D backend can be used
// instead.
package viewport

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
