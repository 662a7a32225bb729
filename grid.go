package viewport

// minGridPixels is the on-screen spacing below which minor grid lines
// become visually dense; the grid then substitutes the major spacing.
const minGridPixels = 5

// gridLines draws the coordinate grid. It is not part of the layer
// registry: the engine paints it immediately before layer 0, after any
// negative-id layers. Its visibility is synced from the frame config
// every frame.
type gridLines struct {
	Item
	cam *Camera
}

func newGridLines(cam *Camera) *gridLines {
	return &gridLines{cam: cam}
}

// Render draws vertical and horizontal lines at every multiple of the
// chosen spacing inside the visible rectangle. Lines through virtual 0
// take the axis color; others the major or minor color depending on
// whether they fall on a large grid square edge.
func (g *gridLines) Render(s Surface, cfg Config) {
	base := cfg.Base()
	// One screen pixel regardless of zoom.
	s.SetLineWidth(g.cam.Scale())

	spacing := base.GridSize
	if float64(spacing)/g.cam.Scale() < minGridPixels {
		spacing *= base.GridMajorEvery
	}

	view := g.cam.View()

	start := int(view.Min.X)
	start -= start % spacing
	for x := start; float64(x) <= view.Max.X; x += spacing {
		s.SetColor(base.GridLineColor(x))
		s.DrawLine(float64(x), view.Min.Y, float64(x), view.Max.Y)
	}

	start = int(view.Min.Y)
	start -= start % spacing
	for y := start; float64(y) <= view.Max.Y; y += spacing {
		s.SetColor(base.GridLineColor(y))
		s.DrawLine(view.Min.X, float64(y), view.Max.X, float64(y))
	}
}
