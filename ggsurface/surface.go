// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/viewport"
)

// defaultFontSize is the point size of the built-in readout face.
const defaultFontSize = 13

var (
	defaultFaceOnce sync.Once
	defaultFaceVal  text.Face
	defaultFaceErr  error
)

// defaultFace lazily builds a face from the embedded Go Regular font.
// The font source is package-wide; faces are cheap per-size views.
func defaultFace() (text.Face, error) {
	defaultFaceOnce.Do(func() {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			defaultFaceErr = fmt.Errorf("ggsurface: parsing built-in font: %w", err)
			return
		}
		defaultFaceVal = source.Face(defaultFontSize)
	})
	return defaultFaceVal, defaultFaceErr
}

// Option configures a Surface during creation.
type Option func(*surfaceOptions)

type surfaceOptions struct {
	face text.Face
}

// WithFace sets the font face used for text drawing, replacing the
// built-in Go Regular face.
func WithFace(face text.Face) Option {
	return func(o *surfaceOptions) {
		o.face = face
	}
}

// Surface renders through a software gg context. It satisfies
// viewport.Surface and is usable both as the screen target and as the
// engine's cache buffer.
type Surface struct {
	dc *gg.Context

	// Line width in user units, converted to device pixels at stroke
	// time using the tracked cumulative scale.
	lineWidth float64
	sx, sy    float64
	stack     []scalePair

	antialias bool
}

type scalePair struct{ sx, sy float64 }

var _ viewport.Surface = (*Surface)(nil)

// New creates a software surface with the given pixel dimensions.
// It fails only if no usable font face can be built.
func New(width, height int, opts ...Option) (*Surface, error) {
	var options surfaceOptions
	for _, opt := range opts {
		opt(&options)
	}

	face := options.face
	if face == nil {
		var err error
		face, err = defaultFace()
		if err != nil {
			return nil, err
		}
	}

	dc := gg.NewContext(width, height)
	dc.SetFont(face)

	return &Surface{
		dc:        dc,
		lineWidth: 1,
		sx:        1,
		sy:        1,
		antialias: true,
	}, nil
}

// Allocator returns a viewport.Allocator that creates Surfaces with the
// given options. Pass it to viewport.New so the engine's frame cache
// lives on the same backend as the screen surface.
func Allocator(opts ...Option) viewport.Allocator {
	return func(width, height int) (viewport.Surface, error) {
		return New(width, height, opts...)
	}
}

// Context exposes the underlying gg context for drawing operations
// beyond the viewport contract (circles, paths, PNG output).
func (s *Surface) Context() *gg.Context { return s.dc }

// SavePNG writes the surface contents to a PNG file.
func (s *Surface) SavePNG(path string) error { return s.dc.SavePNG(path) }

// Close releases the underlying context's resources.
func (s *Surface) Close() error { return s.dc.Close() }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Clear fills the whole pixel buffer with c, ignoring the transform.
func (s *Surface) Clear(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// SetColor sets the color for subsequent draw operations.
func (s *Surface) SetColor(c color.Color) {
	s.dc.SetColor(c)
}

// SetLineWidth sets the stroke width in user units.
func (s *Surface) SetLineWidth(w float64) {
	s.lineWidth = w
}

// SetAntialias records the requested antialiasing state. The software
// rasterizer always produces antialiased output, so the toggle is
// advisory here; it exists so the engine's state minimization works the
// same across backends.
func (s *Surface) SetAntialias(enabled bool) {
	s.antialias = enabled
}

// Antialias reports the last requested antialiasing state.
func (s *Surface) Antialias() bool { return s.antialias }

// deviceLineWidth converts the user-unit line width to device pixels
// under the current cumulative scale.
func (s *Surface) deviceLineWidth() float64 {
	return s.lineWidth * math.Sqrt(math.Abs(s.sx*s.sy))
}

// DrawLine strokes a line between two user-space points.
func (s *Surface) DrawLine(x1, y1, x2, y2 float64) {
	s.dc.SetLineWidth(s.deviceLineWidth())
	s.dc.DrawLine(x1, y1, x2, y2)
	_ = s.dc.Stroke()
}

// FillRect fills an axis-aligned rectangle with the current color.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.DrawRectangle(x, y, w, h)
	_ = s.dc.Fill()
}

// DrawString draws text with its baseline at (x, y).
func (s *Surface) DrawString(str string, x, y float64) {
	s.dc.DrawString(str, x, y)
}

// MeasureString returns the rendered width and line height of str.
func (s *Surface) MeasureString(str string) (w, h float64) {
	return s.dc.MeasureString(str)
}

// Push saves the current transform.
func (s *Surface) Push() {
	s.stack = append(s.stack, scalePair{s.sx, s.sy})
	s.dc.Push()
}

// Pop restores the most recently pushed transform.
func (s *Surface) Pop() {
	if n := len(s.stack); n > 0 {
		p := s.stack[n-1]
		s.stack = s.stack[:n-1]
		s.sx, s.sy = p.sx, p.sy
	}
	s.dc.Pop()
}

// Translate composes a translation into the current transform.
func (s *Surface) Translate(x, y float64) {
	s.dc.Translate(x, y)
}

// Scale composes a scale into the current transform.
func (s *Surface) Scale(x, y float64) {
	s.sx *= x
	s.sy *= y
	s.dc.Scale(x, y)
}

// DrawImage blits an image with its top-left corner at the given pixel
// position, ignoring the current transform. The engine calls it once per
// frame to copy the cache buffer to the screen.
func (s *Surface) DrawImage(img image.Image, x, y int) {
	s.dc.Push()
	s.dc.Identity()
	s.dc.DrawImage(gg.ImageBufFromImage(img), float64(x), float64(y))
	s.dc.Pop()
}

// Image returns the current surface contents.
func (s *Surface) Image() image.Image { return s.dc.Image() }
