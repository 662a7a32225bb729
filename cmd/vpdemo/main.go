// Command vpdemo demonstrates the viewport engine: it builds a small
// scatter-and-geometry scene, simulates pan/zoom navigation, and writes
// each frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/gogpu/gg"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/config"
	"github.com/gogpu/viewport/ggsurface"
)

func main() {
	var (
		width   = flag.Int("width", 960, "frame width")
		height  = flag.Int("height", 720, "frame height")
		prefix  = flag.String("prefix", "frame", "output file prefix")
		cfgPath = flag.String("config", "", "optional settings file (TOML)")
		points  = flag.Int("points", 400, "scatter point count")
		seed    = flag.Int64("seed", 1, "scatter seed")
	)
	flag.Parse()

	cfg := viewport.NewBaseConfig()
	cfg.Antialias = true
	cfg.ZoomToCursor = true
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		cfg = loaded
	}

	eng := viewport.New(ggsurface.Allocator(), viewport.WithConfig(cfg))
	eng.Init()

	buildScene(eng, *points, *seed)

	dst, err := ggsurface.New(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}

	// A short navigation script: initial view, a drag, then three
	// cursor-anchored zoom-ins around a fixed pointer position.
	frame := 0
	snap := func() {
		if err := eng.Render(dst); err != nil {
			log.Fatalf("Render failed: %v", err)
		}
		name := fmt.Sprintf("%s_%02d.png", *prefix, frame)
		if err := dst.SavePNG(name); err != nil {
			log.Fatalf("Failed to save %s: %v", name, err)
		}
		log.Printf("wrote %s", name)
		frame++
	}

	snap()

	eng.Pan(-120, 80)
	snap()

	eng.PointerMoved(float64(*width)*0.7, float64(*height)*0.3)
	for i := 0; i < 3; i++ {
		eng.Wheel(-1)
		snap()
	}
}

// buildScene fills the engine with demo content: a sine polyline on
// layer -1 behind the grid, scattered squares on layer 0, and labeled
// markers on layer 1.
func buildScene(eng *viewport.Engine, points int, seed int64) {
	must := func(err error) {
		if err != nil {
			log.Fatalf("Failed to build scene: %v", err)
		}
	}

	must(eng.AddToLayer(&sineWave{amplitude: 200, period: 640, step: 8}, -1))

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < points; i++ {
		x := rng.NormFloat64() * 300
		y := rng.NormFloat64() * 300
		must(eng.Add(newSquare(x, y, 4+rng.Float64()*6, scatterColor(rng))))
	}

	must(eng.AddToLayer(newMarker(0, 0, "origin"), 1))
	must(eng.AddToLayer(newMarker(256, 256, "NE"), 1))
	must(eng.AddToLayer(newMarker(-256, -256, "SW"), 1))
}

func scatterColor(rng *rand.Rand) color.Color {
	c := gg.RGB(0.3+rng.Float64()*0.7, 0.4+rng.Float64()*0.5, 0.6+rng.Float64()*0.4)
	return c
}

// square is a filled axis-aligned square with known bounds, so it gets
// culled once panned out of view. It opts out of antialiasing: adjacent
// squares would otherwise bleed at shared edges.
type square struct {
	viewport.Item
	x, y, size float64
	fill       color.Color
}

func newSquare(x, y, size float64, fill color.Color) *square {
	return &square{x: x, y: y, size: size, fill: fill}
}

func (sq *square) Render(s viewport.Surface, _ viewport.Config) {
	s.SetColor(sq.fill)
	s.FillRect(sq.x-sq.size/2, sq.y-sq.size/2, sq.size, sq.size)
}

func (sq *square) Bounds() (viewport.Rect, bool) {
	h := sq.size / 2
	return viewport.R(sq.x-h, sq.y-h, sq.x+h, sq.y+h), true
}

func (sq *square) AllowAntialias() bool { return false }

// sineWave strokes y = A*sin(2πx/T) across the visible width. It has no
// bounds, so it is drawn at every viewport position.
type sineWave struct {
	viewport.Item
	amplitude float64
	period    float64
	step      float64
}

func (w *sineWave) Render(s viewport.Surface, cfg viewport.Config) {
	s.SetColor(color.RGBA{R: 0x66, G: 0xbb, B: 0xff, A: 0xff})
	s.SetLineWidth(2)

	// Cover the viewport with a little slack on both sides.
	x0 := -w.period * 4
	x1 := w.period * 4
	prevX := x0
	prevY := w.at(x0)
	for x := x0 + w.step; x <= x1; x += w.step {
		y := w.at(x)
		s.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
}

func (w *sineWave) at(x float64) float64 {
	return w.amplitude * math.Sin(2*math.Pi*x/w.period)
}

// marker is a crosshair with a text label, sized in virtual units.
type marker struct {
	viewport.Item
	x, y  float64
	label string
}

func newMarker(x, y float64, label string) *marker {
	return &marker{x: x, y: y, label: label}
}

func (m *marker) Render(s viewport.Surface, _ viewport.Config) {
	const arm = 12
	s.SetColor(color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff})
	s.SetLineWidth(2)
	s.DrawLine(m.x-arm, m.y, m.x+arm, m.y)
	s.DrawLine(m.x, m.y-arm, m.x, m.y+arm)
	s.DrawString(m.label, m.x+arm+2, m.y)
}

func (m *marker) Bounds() (viewport.Rect, bool) {
	// The label extends right of the crosshair; over-approximate.
	return viewport.R(m.x-16, m.y-16, m.x+120, m.y+16), true
}
