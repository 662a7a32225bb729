package viewport

import "github.com/gogpu/gg"

// zoomFactor is the fixed multiplicative step applied per wheel notch.
// Repeated division can never reach zero from a positive scale, so the
// scale > 0 invariant holds without clamping.
const zoomFactor = 1.1

// Camera holds the viewport's navigation state: the virtual-space point
// at the center of the screen, the scale in virtual units per screen
// pixel, and the vertical axis orientation. The engine owns exactly one
// Camera and recomputes its visible rectangle once per frame.
//
// Scale must stay positive. The pan and zoom operations preserve this on
// their own; code that sets the state directly with SetOffset/SetScale
// is responsible for it.
type Camera struct {
	offsetX float64
	offsetY float64
	scale   float64

	// yMirror is -1 when the virtual Y axis points up on screen (the
	// default, matching math axes) and +1 for raw pixel orientation.
	// Fixed at construction.
	yMirror float64

	// Screen pixel dimensions and the derived visible rectangle, updated
	// by update at the start of every frame.
	width, height int
	view          Rect
}

func newCamera(yDown bool) *Camera {
	m := -1.0
	if yDown {
		m = 1.0
	}
	return &Camera{scale: 1, yMirror: m}
}

// Scale returns the current scale in virtual units per screen pixel.
// Items whose size should stay constant on screen multiply by it.
func (c *Camera) Scale() float64 { return c.scale }

// Offset returns the virtual-space center of the visible rectangle.
func (c *Camera) Offset() (x, y float64) { return c.offsetX, c.offsetY }

// SetOffset moves the virtual-space center of the visible rectangle.
func (c *Camera) SetOffset(x, y float64) {
	c.offsetX, c.offsetY = x, y
}

// SetScale sets the scale in virtual units per screen pixel.
// Scale must be positive; SetScale panics otherwise, since a
// non-positive scale makes the viewport transform meaningless.
func (c *Camera) SetScale(s float64) {
	if s <= 0 {
		panic("viewport: scale must be positive")
	}
	c.scale = s
}

// YUp reports whether the virtual Y axis points up on screen.
func (c *Camera) YUp() bool { return c.yMirror < 0 }

// View returns the virtual-space rectangle currently visible, as of the
// last frame. Before the first frame it is the empty rectangle.
func (c *Camera) View() Rect { return c.view }

// Pan shifts the viewport by a pointer-drag delta given in screen
// pixels. The delta is the pointer's previous position minus its current
// one, so dragging content follows the pointer visually regardless of
// the axis orientation.
func (c *Camera) Pan(dx, dy float64) {
	c.offsetX += dx * c.scale
	c.offsetY += dy * c.scale * c.yMirror
}

// Zoom applies one wheel step: scrolling away (dir > 0) zooms out by the
// fixed factor, scrolling toward (dir <= 0) zooms in.
func (c *Camera) Zoom(dir int) {
	if dir > 0 {
		c.scale *= zoomFactor
	} else {
		c.scale /= zoomFactor
	}
}

// ToVirtual converts a screen pixel position to virtual space using the
// dimensions captured at the last frame.
func (c *Camera) ToVirtual(sx, sy float64) (vx, vy float64) {
	vx = (sx-float64(c.width)/2)*c.scale + c.offsetX
	vy = (sy-float64(c.height)/2)*c.yMirror*c.scale + c.offsetY
	return vx, vy
}

// ToScreen converts a virtual-space position to screen pixels. It is the
// inverse of ToVirtual.
func (c *Camera) ToScreen(vx, vy float64) (sx, sy float64) {
	sx = (vx-c.offsetX)/c.scale + float64(c.width)/2
	sy = (vy-c.offsetY)/(c.yMirror*c.scale) + float64(c.height)/2
	return sx, sy
}

// update captures the screen pixel dimensions for the frame and derives
// the visible rectangle centered at the offset.
func (c *Camera) update(width, height int) {
	c.width, c.height = width, height
	vw := float64(width) * c.scale
	vh := float64(height) * c.scale
	right := c.offsetX + vw/2
	top := c.offsetY + vh/2
	c.view = Rect{Min: gg.Pt(right-vw, top-vh), Max: gg.Pt(right, top)}
}
