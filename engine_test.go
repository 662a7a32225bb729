package viewport

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
)

// recordSurface is a Surface fake that records draw operations so tests
// can assert on render order, culling, state toggles, and cache reuse
// without a real rasterizer.
type recordSurface struct {
	w, h int

	ops        []string // coarse op log in call order
	clears     int
	clearColor color.Color
	lines      []recordedLine
	strings    []string
	images     int
	aaCalls    int
	aa         bool

	color     color.Color
	lineWidth float64
}

type recordedLine struct {
	x1, y1, x2, y2 float64
	color          color.Color
}

func newRecordSurface(w, h int) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (r *recordSurface) Width() int  { return r.w }
func (r *recordSurface) Height() int { return r.h }

func (r *recordSurface) Clear(c color.Color) {
	r.clears++
	r.clearColor = c
	r.ops = append(r.ops, "clear")
}

func (r *recordSurface) SetColor(c color.Color) { r.color = c }
func (r *recordSurface) SetLineWidth(w float64) { r.lineWidth = w }
func (r *recordSurface) SetAntialias(on bool)   { r.aaCalls++; r.aa = on }
func (r *recordSurface) Push()                  {}
func (r *recordSurface) Pop()                   {}
func (r *recordSurface) Translate(x, y float64) {}
func (r *recordSurface) Scale(x, y float64)     {}

func (r *recordSurface) DrawLine(x1, y1, x2, y2 float64) {
	r.lines = append(r.lines, recordedLine{x1, y1, x2, y2, r.color})
	r.ops = append(r.ops, "line")
}

func (r *recordSurface) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, "rect")
}

func (r *recordSurface) DrawString(s string, x, y float64) {
	r.strings = append(r.strings, s)
	r.ops = append(r.ops, "string:"+s)
}

func (r *recordSurface) MeasureString(s string) (float64, float64) {
	return float64(len(s)) * 7, 13
}

func (r *recordSurface) DrawImage(img image.Image, x, y int) {
	r.images++
	r.ops = append(r.ops, "image")
}

func (r *recordSurface) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, r.w, r.h))
}

// recordAlloc is an Allocator that keeps every buffer it hands out.
type recordAlloc struct {
	bufs []*recordSurface
	err  error
}

func (a *recordAlloc) alloc(w, h int) (Surface, error) {
	if a.err != nil {
		return nil, a.err
	}
	buf := newRecordSurface(w, h)
	a.bufs = append(a.bufs, buf)
	return buf, nil
}

func (a *recordAlloc) last() *recordSurface {
	return a.bufs[len(a.bufs)-1]
}

// probe is a Drawable that tags the surface op log with its name.
type probe struct {
	Item
	name    string
	bounds  Rect
	bounded bool
	noAA    bool
	seen    []Config
}

func (p *probe) Render(s Surface, cfg Config) {
	p.seen = append(p.seen, cfg)
	s.DrawString(p.name, 0, 0)
}

func (p *probe) Bounds() (Rect, bool) { return p.bounds, p.bounded }

func (p *probe) AllowAntialias() bool { return !p.noAA }

func newTestEngine(t *testing.T) (*Engine, *recordAlloc) {
	t.Helper()
	alloc := &recordAlloc{}
	eng := New(alloc.alloc)
	eng.Init()
	return eng, alloc
}

func renderOK(t *testing.T, eng *Engine, dst Surface) {
	t.Helper()
	if err := eng.Render(dst); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
}

func TestRenderRequiresInit(t *testing.T) {
	eng := New((&recordAlloc{}).alloc)
	if err := eng.Render(newRecordSurface(100, 100)); err == nil {
		t.Fatal("Render() before Init returned nil error")
	}
}

func TestAddNilDrawable(t *testing.T) {
	eng, _ := newTestEngine(t)
	if err := eng.Add(nil); !errors.Is(err, ErrNilDrawable) {
		t.Fatalf("Add(nil) error = %v, want ErrNilDrawable", err)
	}
	if err := eng.AddToLayer(nil, 3); !errors.Is(err, ErrNilDrawable) {
		t.Fatalf("AddToLayer(nil, 3) error = %v, want ErrNilDrawable", err)
	}
	if len(eng.layers) != 0 {
		t.Fatalf("layer registry has %d layers after failed adds, want 0", len(eng.layers))
	}
}

func TestAllocFailurePropagates(t *testing.T) {
	allocErr := errors.New("out of memory")
	alloc := &recordAlloc{err: allocErr}
	eng := New(alloc.alloc)
	eng.Init()

	err := eng.Render(newRecordSurface(100, 100))
	if !errors.Is(err, allocErr) {
		t.Fatalf("Render() error = %v, want wrapped %v", err, allocErr)
	}
}

func TestRenderOrderAcrossLayers(t *testing.T) {
	eng, alloc := newTestEngine(t)
	eng.LiveConfig().Base().ShowGrid = false
	eng.LiveConfig().SetModified()

	a := &probe{name: "A"}
	b := &probe{name: "B"}
	c := &probe{name: "C"}
	if err := eng.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := eng.Add(b); err != nil {
		t.Fatal(err)
	}
	if err := eng.AddToLayer(c, 1); err != nil {
		t.Fatal(err)
	}

	renderOK(t, eng, newRecordSurface(100, 100))

	got := alloc.last().strings
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("rendered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rendered %v, want %v", got, want)
		}
	}
}

func TestGridPaintsBeforeLayerZero(t *testing.T) {
	eng, alloc := newTestEngine(t)

	behind := &probe{name: "behind"}
	front := &probe{name: "front"}
	if err := eng.AddToLayer(behind, -1); err != nil {
		t.Fatal(err)
	}
	if err := eng.Add(front); err != nil {
		t.Fatal(err)
	}

	renderOK(t, eng, newRecordSurface(256, 256))

	// The op log must read: behind, grid lines, front.
	ops := alloc.last().ops
	idxBehind, idxFront, firstLine := -1, -1, -1
	for i, op := range ops {
		switch {
		case op == "string:behind":
			idxBehind = i
		case op == "string:front":
			idxFront = i
		case op == "line" && firstLine == -1:
			firstLine = i
		}
	}
	if idxBehind == -1 || idxFront == -1 || firstLine == -1 {
		t.Fatalf("op log missing expected entries: %v", ops)
	}
	if !(idxBehind < firstLine && firstLine < idxFront) {
		t.Fatalf("grid not painted between layer -1 and layer 0: behind=%d grid=%d front=%d",
			idxBehind, firstLine, idxFront)
	}
}

func TestRebuildTriggers(t *testing.T) {
	eng, alloc := newTestEngine(t)
	dst := newRecordSurface(960, 720)

	// Frame 1: first frame always rebuilds.
	renderOK(t, eng, dst)
	buf := alloc.last()
	if buf.clears != 1 {
		t.Fatalf("frame 1: buffer cleared %d times, want 1", buf.clears)
	}
	if dst.images != 1 {
		t.Fatalf("frame 1: blitted %d times, want 1", dst.images)
	}

	// Frame 2: pointer motion only must not rebuild, only re-blit plus
	// the readout overlay on the screen surface.
	eng.PointerMoved(480, 360)
	renderOK(t, eng, dst)
	if buf.clears != 1 {
		t.Fatalf("frame 2: pointer move caused rebuild (clears=%d)", buf.clears)
	}
	if dst.images != 2 {
		t.Fatalf("frame 2: blitted %d times, want 2", dst.images)
	}
	if len(dst.strings) == 0 {
		t.Fatal("frame 2: readout not drawn on screen surface")
	}
	if len(buf.strings) != 0 {
		t.Fatal("frame 2: readout leaked into the cache buffer")
	}

	// Frame 3: a modified config forces a rebuild.
	eng.LiveConfig().SetModified()
	renderOK(t, eng, dst)
	if buf.clears != 2 {
		t.Fatalf("frame 3: modified config did not rebuild (clears=%d)", buf.clears)
	}

	// Frame 4: a resize reallocates and rebuilds.
	bigger := newRecordSurface(1280, 800)
	renderOK(t, eng, bigger)
	if len(alloc.bufs) != 2 {
		t.Fatalf("resize allocated %d buffers total, want 2", len(alloc.bufs))
	}
	nb := alloc.last()
	if nb.w != 1280 || nb.h != 800 {
		t.Fatalf("new buffer is %dx%d, want 1280x800", nb.w, nb.h)
	}
	if nb.clears != 1 {
		t.Fatalf("frame 4: resize did not rebuild (clears=%d)", nb.clears)
	}

	// Frame 5: pan requests a full redraw.
	renderOK(t, eng, bigger)
	eng.Pan(10, 0)
	renderOK(t, eng, bigger)
	if nb.clears != 2 {
		t.Fatalf("frame 5: pan did not rebuild (clears=%d)", nb.clears)
	}
}

func TestConfigSnapshotStability(t *testing.T) {
	eng, alloc := newTestEngine(t)
	dst := newRecordSurface(100, 100)

	renderOK(t, eng, dst)
	oldBg := alloc.last().clearColor

	// Edit the live config without marking it modified: the frame copy
	// must keep serving the old settings.
	eng.LiveConfig().Base().Background = color.RGBA{R: 0xff, A: 0xff}
	eng.RequestRedraw()
	renderOK(t, eng, dst)
	if got := alloc.last().clearColor; got != oldBg {
		t.Fatalf("unmodified live config leaked into frame: cleared with %v, want %v", got, oldBg)
	}

	// Marking it modified publishes the edit.
	eng.LiveConfig().SetModified()
	renderOK(t, eng, dst)
	want := color.RGBA{R: 0xff, A: 0xff}
	if got := alloc.last().clearColor; got != want {
		t.Fatalf("modified live config not copied: cleared with %v, want %v", got, want)
	}
	if eng.LiveConfig().Modified() {
		t.Fatal("modified flag not cleared after copy")
	}
}

// shapedConfig is a Config subtype used to exercise the shape-swap
// reconstruction path.
type shapedConfig struct {
	BaseConfig
	PointSize float64
}

func (c *shapedConfig) New() Config { return &shapedConfig{BaseConfig: *NewBaseConfig()} }

func (c *shapedConfig) CopyInto(dst Config) {
	c.BaseConfig.CopyInto(dst)
	dst.(*shapedConfig).PointSize = c.PointSize
}

func TestConfigShapeSwap(t *testing.T) {
	eng, _ := newTestEngine(t)
	dst := newRecordSurface(100, 100)

	p := &probe{name: "p"}
	if err := eng.Add(p); err != nil {
		t.Fatal(err)
	}
	renderOK(t, eng, dst)
	if _, ok := p.seen[len(p.seen)-1].(*BaseConfig); !ok {
		t.Fatalf("frame config is %T, want *BaseConfig", p.seen[len(p.seen)-1])
	}

	// Swapping in a different concrete shape must rebuild the frame copy
	// with that shape and copy the data even though the modified flag was
	// never set by the caller.
	sc := &shapedConfig{BaseConfig: *NewBaseConfig(), PointSize: 7}
	eng.SetConfig(sc)
	renderOK(t, eng, dst)

	got, ok := p.seen[len(p.seen)-1].(*shapedConfig)
	if !ok {
		t.Fatalf("frame config after swap is %T, want *shapedConfig", p.seen[len(p.seen)-1])
	}
	if got == sc {
		t.Fatal("engine handed the live config to a Drawable instead of a copy")
	}
	if got.PointSize != 7 {
		t.Fatalf("subtype field not copied: PointSize = %v, want 7", got.PointSize)
	}
}

func TestZoomAnchoring(t *testing.T) {
	tests := []struct {
		name     string
		anchored bool
	}{
		{"cursor anchored", true},
		{"center anchored", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, _ := newTestEngine(t)
			eng.LiveConfig().Base().ZoomToCursor = tt.anchored
			eng.LiveConfig().SetModified()

			dst := newRecordSurface(960, 720)
			renderOK(t, eng, dst) // capture dimensions and frame config
			eng.Pan(37, -21)      // move off the origin so the cases differ
			renderOK(t, eng, dst)

			const cx, cy = 700, 200
			eng.PointerMoved(cx, cy)
			cam := eng.Camera()
			beforeX, beforeY := cam.ToVirtual(cx, cy)
			centerX, centerY := cam.Offset()

			eng.Wheel(-1)

			const tol = 1e-9
			if tt.anchored {
				afterX, afterY := cam.ToVirtual(cx, cy)
				if !near(afterX, beforeX, tol) || !near(afterY, beforeY, tol) {
					t.Errorf("cursor virtual point drifted: (%v, %v) -> (%v, %v)",
						beforeX, beforeY, afterX, afterY)
				}
			} else {
				gotX, gotY := cam.Offset()
				if !near(gotX, centerX, tol) || !near(gotY, centerY, tol) {
					t.Errorf("viewport center drifted: (%v, %v) -> (%v, %v)",
						centerX, centerY, gotX, gotY)
				}
			}
		})
	}
}

func TestClearKeepsGrid(t *testing.T) {
	eng, alloc := newTestEngine(t)
	if err := eng.Add(&probe{name: "X"}); err != nil {
		t.Fatal(err)
	}

	eng.Clear()
	renderOK(t, eng, newRecordSurface(256, 256))

	buf := alloc.last()
	if len(buf.strings) != 0 {
		t.Fatalf("cleared scene still rendered items: %v", buf.strings)
	}
	if len(buf.lines) == 0 {
		t.Fatal("grid overlay lost after Clear")
	}
}

func TestDirectRendering(t *testing.T) {
	alloc := &recordAlloc{}
	eng := New(alloc.alloc, WithDirectRendering())
	eng.Init()

	dst := newRecordSurface(128, 128)
	renderOK(t, eng, dst)

	if len(alloc.bufs) != 0 {
		t.Fatalf("direct rendering allocated %d cache buffers, want 0", len(alloc.bufs))
	}
	if dst.clears != 1 || dst.images != 0 {
		t.Fatalf("direct rendering: clears=%d images=%d, want 1 and 0", dst.clears, dst.images)
	}
}

func near(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func ExampleEngine() {
	eng := New(func(w, h int) (Surface, error) {
		return newRecordSurface(w, h), nil
	})
	eng.Init()

	dst := newRecordSurface(960, 720)
	if err := eng.Render(dst); err != nil {
		fmt.Println(err)
	}
	fmt.Println(eng.Camera().View().Width())
	// Output: 960
}
