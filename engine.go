package viewport

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
)

// ErrNilDrawable is returned when a nil Drawable is added to the engine.
var ErrNilDrawable = errors.New("viewport: drawable is nil")

// errNotInitialized is returned from Render when Init was never called.
var errNotInitialized = errors.New("viewport: engine not initialized, call Init first")

// Engine is the central type of this package. It owns the layered scene,
// the Camera, the frame cache, and the configuration snapshot channel,
// and renders one frame per Render call.
//
// Construction is two-phase: New builds the engine, Init populates the
// built-in overlays. Everything after that — adding and removing
// Drawables, navigation, config edits — can happen in any order between
// frames.
//
// The render path is single-threaded: Render must not be invoked
// re-entrantly or concurrently with itself. Input-driven mutation (Pan,
// Wheel, PointerMoved) and live-config edits may come from a different
// goroutine than Render only if the caller serializes them against the
// render call; the engine itself performs no locking.
type Engine struct {
	alloc Allocator
	cam   *Camera

	// Scene. layers is sorted ascending by id; grid is kept out of the
	// registry and painted immediately before layer 0.
	layers []*layer
	grid   *gridLines

	// Configuration snapshot channel. live is owned by the application;
	// frame is the engine's private copy, stable for a whole frame.
	// lastLive tracks which live config frame was built from, so a
	// SetConfig swap forces reconstruction.
	live     Config
	frame    Config
	lastLive Config

	// Frame cache.
	buf     Surface
	width   int
	height  int
	rebuild bool
	direct  bool

	// Pointer readout overlay state. cursorX/Y are the last known screen
	// coordinates; pointerX/Y the derived virtual position.
	showReadout bool
	cursorX     float64
	cursorY     float64
	pointerX    float64
	pointerY    float64
}

// New creates an engine that allocates its cache buffers through alloc.
// Call Init before the first Render.
func New(alloc Allocator, opts ...Option) *Engine {
	options := defaultEngineOptions()
	for _, opt := range opts {
		opt(&options)
	}

	live := options.live
	if live == nil {
		live = NewBaseConfig()
	}

	return &Engine{
		alloc:   alloc,
		cam:     newCamera(options.yDown),
		live:    live,
		width:   -1,
		height:  -1,
		rebuild: true,
		direct:  options.direct,
	}
}

// Init populates the engine's built-in overlays (the coordinate grid).
// It must be called exactly once, after New and before the first Render.
// Keeping it separate from New lets wrapping types finish their own
// setup before any default content exists.
func (e *Engine) Init() {
	e.grid = newGridLines(e.cam)
}

// Camera returns the engine's navigation state. Use it to read the
// current scale and visible rectangle, or to position the viewport
// directly.
func (e *Engine) Camera() *Camera { return e.cam }

// Add adds a drawable item to the default layer (0).
func (e *Engine) Add(d Drawable) error {
	return e.AddToLayer(d, 0)
}

// AddToLayer adds an item to be rendered on the given layer, creating
// the layer if needed. Layers render in ascending id order; the grid
// overlay is drawn immediately before layer 0, so items should be placed
// on layers around that fact. Items are not de-duplicated; adding the
// same item twice draws it twice.
func (e *Engine) AddToLayer(d Drawable, id int) error {
	if d == nil {
		return ErrNilDrawable
	}
	idx := searchLayers(e.layers, id)
	var l *layer
	if idx < 0 {
		l = &layer{id: id}
		idx = -(idx + 1)
		e.layers = append(e.layers, nil)
		copy(e.layers[idx+1:], e.layers[idx:])
		e.layers[idx] = l
	} else {
		l = e.layers[idx]
	}
	l.items = append(l.items, d)
	return nil
}

// Remove removes an item from the default layer (0).
func (e *Engine) Remove(d Drawable) {
	e.RemoveFromLayer(d, 0)
}

// RemoveFromLayer removes the given item from the specified layer. If
// the layer doesn't exist or doesn't contain the item, no action is
// performed. A layer left empty by the removal is dropped from the
// registry.
func (e *Engine) RemoveFromLayer(d Drawable, id int) {
	if d == nil {
		return
	}
	idx := searchLayers(e.layers, id)
	if idx < 0 {
		return
	}
	l := e.layers[idx]
	if l.remove(d) && len(l.items) == 0 {
		e.layers = append(e.layers[:idx], e.layers[idx+1:]...)
	}
}

// Clear removes all application items from every layer. The built-in
// grid overlay survives, and the next frame is a full rebuild.
func (e *Engine) Clear() {
	e.layers = nil
	e.RequestRedraw()
}

// SetConfig swaps in a new live configuration. The engine rebuilds its
// frame copy from the new config's concrete shape before the next frame,
// so an application may switch to a different Config type at runtime.
func (e *Engine) SetConfig(cfg Config) {
	if cfg == nil {
		cfg = NewBaseConfig()
	}
	e.live = cfg
}

// LiveConfig returns the externally-owned live configuration. The engine
// never mutates it beyond clearing its modified flag after a copy.
func (e *Engine) LiveConfig() Config { return e.live }

// RequestRedraw marks the cached frame stale so the next Render rebuilds
// the full scene. Pan, Wheel, and Clear request it automatically; call
// it after mutating Drawable state in place.
func (e *Engine) RequestRedraw() {
	e.rebuild = true
}

// Pan shifts the viewport by a decoded pointer-drag delta in screen
// pixels and requests a full redraw.
func (e *Engine) Pan(dx, dy float64) {
	e.cam.Pan(dx, dy)
	e.RequestRedraw()
}

// Wheel applies one decoded wheel step (dir > 0 zooms out, dir <= 0
// zooms in) and requests a full redraw. When the active configuration
// enables ZoomToCursor, the offset is adjusted so the virtual point that
// was under the cursor stays there; the cursor's virtual position is
// recomputed from the screen coordinates captured at the last
// PointerMoved, which is exact as long as the pointer hasn't moved since.
func (e *Engine) Wheel(dir int) {
	oldX, oldY := e.pointerX, e.pointerY

	e.cam.Zoom(dir)
	e.updatePointer()

	if e.activeConfig().Base().ZoomToCursor {
		e.cam.offsetX += oldX - e.pointerX
		e.cam.offsetY += oldY - e.pointerY
		e.pointerX, e.pointerY = oldX, oldY
	}

	e.RequestRedraw()
}

// PointerMoved records the decoded cursor position in screen pixels and
// activates the coordinate readout. It deliberately does not invalidate
// the frame cache: the readout is drawn as a post-process overlay
// outside the cached buffer, so updating it is free.
func (e *Engine) PointerMoved(x, y float64) {
	e.showReadout = true
	e.cursorX, e.cursorY = x, y
	e.updatePointer()
}

// PointerExited deactivates the coordinate readout.
func (e *Engine) PointerExited() {
	e.showReadout = false
}

// updatePointer derives the cursor's virtual position from the last
// known screen coordinates.
func (e *Engine) updatePointer() {
	e.pointerX, e.pointerY = e.cam.ToVirtual(e.cursorX, e.cursorY)
}

// activeConfig returns the frame snapshot when one exists, falling back
// to the live config before the first frame.
func (e *Engine) activeConfig() Config {
	if e.frame != nil {
		return e.frame
	}
	return e.live
}

// FitContent positions and scales the viewport so the given rectangle
// fits entirely within it. It has no effect before the first frame,
// when the screen dimensions are still unknown.
func (e *Engine) FitContent(r Rect) {
	if e.width <= 0 || e.height <= 0 {
		return
	}
	c := r.Center()
	e.cam.offsetX = c.X
	e.cam.offsetY = c.Y
	if s := max(r.Width()/float64(e.width), r.Height()/float64(e.height)); s > 0 {
		e.cam.scale = s
	}
	e.RequestRedraw()
}

// syncConfig double-buffers the live configuration into the frame copy.
// The frame copy is reconstructed when absent or when SetConfig swapped
// the live config since the last frame (the concrete shape may have
// changed); otherwise it is refreshed only when the live config is
// marked modified. Either way a refresh invalidates the frame cache.
func (e *Engine) syncConfig() {
	if e.frame == nil || e.lastLive != e.live {
		e.frame = e.live.New()
		e.lastLive = e.live
		// The fresh copy needs data regardless of the modified flag.
		e.live.SetModified()
	}

	if e.live.Modified() {
		e.live.CopyInto(e.frame)
		e.live.ClearModified()
		e.rebuild = true
		Logger().Debug("viewport: config snapshot refreshed")
	}
}

// Render produces one frame onto dst. The sequence is fixed: sync the
// config snapshot, sync grid visibility, handle a pixel-size change,
// recompute the visible rectangle, rebuild the cached scene if stale,
// blit it, and finally draw the pointer readout directly on dst so the
// expensive scene render stays cacheable while the cheap overlay stays
// live.
//
// Render returns an error if the engine is uninitialized or the cache
// buffer cannot be allocated; such a frame produces no output and is not
// retried internally.
func (e *Engine) Render(dst Surface) error {
	if e.grid == nil {
		return errNotInitialized
	}

	e.syncConfig()
	base := e.frame.Base()
	e.grid.SetVisible(base.ShowGrid)

	width, height := dst.Width(), dst.Height()
	if width != e.width || height != e.height {
		e.width, e.height = width, height
		if !e.direct {
			buf, err := e.alloc(width, height)
			if err != nil {
				return fmt.Errorf("viewport: allocating %dx%d frame buffer: %w", width, height, err)
			}
			e.buf = buf
			Logger().Debug("viewport: frame buffer reallocated",
				slog.Int("width", width), slog.Int("height", height))
		}
		e.rebuild = true
	}

	e.cam.update(width, height)

	if e.direct {
		e.renderScene(dst)
	} else {
		if e.rebuild {
			e.renderScene(e.buf)
			e.rebuild = false
		}
		dst.DrawImage(e.buf.Image(), 0, 0)
	}

	if e.showReadout {
		e.drawReadout(dst)
	}
	return nil
}

// renderScene draws the full scene — background, grid, and all layers in
// ascending id order — onto s under the viewport transform.
func (e *Engine) renderScene(s Surface) {
	base := e.frame.Base()
	s.Clear(base.Background)

	s.Push()
	s.Translate(float64(e.width)/2, float64(e.height)/2)
	s.Scale(1/e.cam.scale, e.cam.yMirror/e.cam.scale)
	s.Translate(-e.cam.offsetX, -e.cam.offsetY)

	antialiased := base.Antialias
	s.SetAntialias(antialiased)

	view := e.cam.view
	gridDone := false
	for _, l := range e.layers {
		if !gridDone && l.id >= 0 {
			antialiased = e.renderGrid(s, view, antialiased)
			gridDone = true
		}
		antialiased = l.render(s, e.frame, view, antialiased)
	}
	if !gridDone {
		e.renderGrid(s, view, antialiased)
	}

	s.Pop()
}

// renderGrid paints the grid overlay through the same visibility and
// antialias-state logic as a registry layer, without it being one.
func (e *Engine) renderGrid(s Surface, view Rect, antialiased bool) bool {
	l := layer{items: []Drawable{e.grid}}
	return l.render(s, e.frame, view, antialiased)
}

// drawReadout paints the cursor coordinate readout in the bottom-right
// corner of the screen surface, with a background-colored shadow so it
// stays legible over scene content.
func (e *Engine) drawReadout(s Surface) {
	base := e.frame.Base()
	s.SetAntialias(base.Antialias)

	str := fmt.Sprintf("(%d, %d)", int(e.pointerX), int(e.pointerY))
	w, _ := s.MeasureString(str)
	x := float64(e.width) - w - 5
	y := float64(e.height) - 5
	s.SetColor(base.Background)
	s.DrawString(str, x+2, y+2)
	s.DrawString(str, x-2, y-2)
	s.SetColor(color.White)
	s.DrawString(str, x, y)
}
