package viewport

import "image/color"

// Config carries the rendering options the engine and its Drawables
// consult each frame: background and grid styling, the antialiasing
// toggle, and navigation behavior.
//
// The engine keeps a private frame copy of the config so that edits made
// mid-frame cannot cause rendering quirks. Before each frame it checks
// the live config's modified flag and, if set, copies the settings into
// its own instance. After editing settings directly, call SetModified so
// the engine knows to refresh its copy.
//
// Applications that need extra settings embed BaseConfig in their own
// type and implement New and CopyInto for the full shape:
//
//	type appConfig struct {
//	    viewport.BaseConfig
//	    PointSize float64
//	}
//
//	func (c *appConfig) New() viewport.Config { return &appConfig{} }
//
//	func (c *appConfig) CopyInto(dst viewport.Config) {
//	    c.BaseConfig.CopyInto(dst)
//	    dst.(*appConfig).PointSize = c.PointSize
//	}
type Config interface {
	// Modified reports whether the settings changed since the engine last
	// copied them.
	Modified() bool

	// SetModified marks the settings as changed so the engine refreshes
	// its frame copy before the next frame.
	SetModified()

	// ClearModified resets the modified flag. The engine calls it after
	// copying; applications normally have no reason to.
	ClearModified()

	// CopyInto copies all settings into dst, which has the same concrete
	// shape as the receiver.
	CopyInto(dst Config)

	// New returns a fresh instance of the receiver's concrete shape. The
	// engine uses it to build its frame copy without knowing the concrete
	// type.
	New() Config

	// Base returns the standard settings shared by every Config shape.
	Base() *BaseConfig
}

// Default grid styling, matching conventional dark-background plots.
var (
	defaultBackground     = color.Black
	defaultAxisColor      = color.RGBA{R: 0xff, G: 0xc8, B: 0x00, A: 0xff}
	defaultGridMajorColor = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
	defaultGridMinorColor = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
)

// BaseConfig is the standard Config implementation. Its zero value is
// not useful; use NewBaseConfig to get the defaults.
type BaseConfig struct {
	// Antialias indicates whether antialiasing should generally be
	// applied when rendering. Items can opt out per Drawable via
	// AntialiasOptOut.
	Antialias bool

	// ShowGrid indicates whether the coordinate grid, including the axes,
	// should be rendered. The grid is drawn immediately before layer 0.
	ShowGrid bool

	// ZoomToCursor keeps the virtual point under the cursor fixed on
	// screen across a zoom step. When false, the viewport center is the
	// point that stays fixed.
	ZoomToCursor bool

	// Background is the color the frame is cleared to.
	Background color.Color

	// AxisColor is the color of the grid lines through virtual 0 on
	// either axis.
	AxisColor color.Color

	// GridMajorColor is the color of a large grid square's edge.
	GridMajorColor color.Color

	// GridMinorColor is the color of a small grid square's edge.
	GridMinorColor color.Color

	// GridSize is the edge length of a small grid square, in virtual
	// units.
	GridSize int

	// GridMajorEvery is the number of small grid squares per large grid
	// square.
	GridMajorEvery int

	modified bool
}

var _ Config = (*BaseConfig)(nil)

// NewBaseConfig returns a BaseConfig with the default settings:
// antialiasing off, grid on, center-anchored zoom, black background, a
// 64-unit minor grid with a major line every 8 squares.
func NewBaseConfig() *BaseConfig {
	return &BaseConfig{
		ShowGrid:       true,
		Background:     defaultBackground,
		AxisColor:      defaultAxisColor,
		GridMajorColor: defaultGridMajorColor,
		GridMinorColor: defaultGridMinorColor,
		GridSize:       64,
		GridMajorEvery: 8,
	}
}

// Modified reports whether the settings changed since the last copy.
func (c *BaseConfig) Modified() bool { return c.modified }

// SetModified marks the settings as changed.
func (c *BaseConfig) SetModified() { c.modified = true }

// ClearModified resets the modified flag.
func (c *BaseConfig) ClearModified() { c.modified = false }

// Base returns c itself.
func (c *BaseConfig) Base() *BaseConfig { return c }

// New returns a fresh BaseConfig with default settings. Types embedding
// BaseConfig must provide their own New so the engine's frame copy has
// the right concrete shape.
func (c *BaseConfig) New() Config { return NewBaseConfig() }

// CopyInto copies the standard settings into dst. It copies settings
// only, never the modified flag. Types embedding BaseConfig should call
// it from their own CopyInto so no settings are left out.
func (c *BaseConfig) CopyInto(dst Config) {
	b := dst.Base()
	b.Antialias = c.Antialias
	b.ShowGrid = c.ShowGrid
	b.ZoomToCursor = c.ZoomToCursor
	b.Background = c.Background
	b.AxisColor = c.AxisColor
	b.GridMajorColor = c.GridMajorColor
	b.GridMinorColor = c.GridMinorColor
	b.GridSize = c.GridSize
	b.GridMajorEvery = c.GridMajorEvery
}

// GridLineColor returns the color for the grid line through virtual
// coordinate v: the axis color on 0, the major color on multiples of
// GridSize*GridMajorEvery, the minor color otherwise.
func (c *BaseConfig) GridLineColor(v int) color.Color {
	if v == 0 {
		return c.AxisColor
	}
	if (v/c.GridSize)%c.GridMajorEvery == 0 {
		return c.GridMajorColor
	}
	return c.GridMinorColor
}
