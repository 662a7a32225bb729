package viewport

import (
	"image"
	"image/color"
)

// Surface is the pixel-addressable drawing target the engine renders
// through. It is the contract a host backend must satisfy: filled
// rectangles, stroked lines with settable width and color, text drawing
// with metrics, an antialiasing toggle, and affine transform
// composition. The ggsurface sub-package implements it over a
// github.com/gogpu/gg context.
//
// Surfaces are not safe for concurrent use. The engine drives a surface
// from a single render call at a time.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color, ignoring the
	// current transform.
	Clear(c color.Color)

	// SetColor sets the color for subsequent draw operations.
	SetColor(c color.Color)

	// SetLineWidth sets the stroke width, in current (transformed) units,
	// for subsequent DrawLine calls.
	SetLineWidth(w float64)

	// SetAntialias toggles antialiased rendering for subsequent draw
	// operations. Backends for which antialiasing is not switchable may
	// treat this as advisory.
	SetAntialias(enabled bool)

	// DrawLine strokes a line between two points using the current color
	// and line width.
	DrawLine(x1, y1, x2, y2 float64)

	// FillRect fills an axis-aligned rectangle with the current color.
	FillRect(x, y, w, h float64)

	// DrawString draws text at (x, y), where y is the baseline, using the
	// current color.
	DrawString(s string, x, y float64)

	// MeasureString returns the rendered width and line height of s in
	// pixels.
	MeasureString(s string) (w, h float64)

	// Push saves the current transform onto a stack.
	Push()

	// Pop restores the most recently pushed transform.
	Pop()

	// Translate composes a translation into the current transform.
	Translate(x, y float64)

	// Scale composes a scale into the current transform.
	Scale(x, y float64)

	// DrawImage draws an image with its top-left corner at the given
	// pixel position, ignoring the current transform. The engine uses it
	// to blit the cached frame buffer.
	DrawImage(img image.Image, x, y int)

	// Image returns the current surface contents.
	Image() image.Image
}

// Allocator creates an offscreen Surface with the given pixel
// dimensions. The engine calls it whenever the frame cache buffer must
// be (re)created, which happens on the first frame and after every
// resize. Allocation failure is fatal to the frame and is returned from
// Render.
type Allocator func(width, height int) (Surface, error)
