// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggsurface implements the viewport host-surface contract on top
// of the github.com/gogpu/gg software rasterizer.
//
// A Surface wraps a gg drawing context and exposes the subset of
// operations the viewport engine needs: filled rectangles, stroked
// lines, text with metrics, transform composition, and image blitting.
// Allocator adapts the package to the engine's cache-buffer allocation
// hook:
//
//	eng := viewport.New(ggsurface.Allocator())
//	eng.Init()
//
//	dst, err := ggsurface.New(960, 720)
//	if err != nil {
//	    // no usable font face
//	}
//	err = eng.Render(dst)
//
// Line widths are interpreted in user (transformed) units, matching what
// scene content drawn in virtual coordinates expects: the surface tracks
// the cumulative scale of the transform stack and converts widths to
// device pixels before stroking, since gg itself strokes in device
// pixels.
package ggsurface
