package viewport

// Drawable is the main object added to the engine for the purpose of
// drawing to it. Implementations draw themselves in virtual coordinates;
// the engine has already applied the viewport transform to the surface
// when Render is called.
//
// The cfg argument is the engine's frame-stable configuration snapshot.
// It does not change for the duration of one frame, even if the
// application is editing its live configuration concurrently.
type Drawable interface {
	// Render draws the item onto the surface.
	Render(s Surface, cfg Config)

	// Visible reports whether the item should be rendered at all.
	Visible() bool
}

// Bounded is an optional interface for Drawables with a known bounding
// box in virtual space. The engine tests the box against the visible
// rectangle and skips items that lie entirely outside it. A Drawable
// that does not implement Bounded, or whose Bounds reports ok=false, is
// drawn regardless of the viewport position.
type Bounded interface {
	// Bounds returns the area taken up by the item. ok=false means the
	// bounds are currently unknown.
	Bounds() (r Rect, ok bool)
}

// AntialiasOptOut is an optional interface that allows a Drawable to opt
// out of antialiasing. This is useful when antialiasing causes rendering
// artifacts, such as bleeding between the edges of adjacent filled
// polygons. A Drawable that does not implement it is antialiased
// whenever the configuration enables antialiasing.
type AntialiasOptOut interface {
	// AllowAntialias reports whether the item may be antialiased.
	AllowAntialias() bool
}

// Item is a convenient base for Drawable implementations. Embedding it
// provides the settable visibility flag, defaulting to visible.
//
//	type dot struct {
//	    viewport.Item
//	    x, y float64
//	}
type Item struct {
	hidden bool
}

// Visible reports whether the item should be rendered.
func (it *Item) Visible() bool { return !it.hidden }

// SetVisible shows or hides the item. Hiding an item does not remove it
// from its layer.
func (it *Item) SetVisible(v bool) { it.hidden = !v }
