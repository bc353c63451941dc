// Package graph maps expressions onto pixel space: a Viewport converts
// between math and pixel coordinates, and Sample walks the pixel columns
// of a viewport evaluating a parsed expression at each one.
package graph

import "math"

// Scale bounds keep a viewport usable: zooming can neither collapse it to
// a zero span nor blow it out past float usefulness.
const (
	minScale = 1e-9
	maxScale = 1e9
)

// Viewport is a window onto the plane. Scale is math units per pixel and
// is uniform in both axes, so squares stay square. The math point
// (CenterX, CenterY) sits at the pixel center of the view.
type Viewport struct {
	CenterX float64
	CenterY float64
	Scale   float64
	Width   int
	Height  int
}

// DefaultViewport spans x in [-10, 10] centered on the origin.
func DefaultViewport(width, height int) Viewport {
	return Viewport{
		CenterX: 0,
		CenterY: 0,
		Scale:   20.0 / float64(width),
		Width:   width,
		Height:  height,
	}
}

// XAt converts a pixel column to its math x coordinate.
func (v Viewport) XAt(px int) float64 {
	return v.CenterX + (float64(px)-float64(v.Width)/2)*v.Scale
}

// YAt converts a pixel row to its math y coordinate. Pixel rows grow
// downward while math y grows upward.
func (v Viewport) YAt(py int) float64 {
	return v.CenterY - (float64(py)-float64(v.Height)/2)*v.Scale
}

// PixelX converts a math x coordinate to a pixel column, inverting XAt.
func (v Viewport) PixelX(x float64) float64 {
	return (x-v.CenterX)/v.Scale + float64(v.Width)/2
}

// PixelY converts a math y coordinate to a pixel row, inverting YAt.
func (v Viewport) PixelY(y float64) float64 {
	return (v.CenterY-y)/v.Scale + float64(v.Height)/2
}

// XMin and XMax bound the visible x range.
func (v Viewport) XMin() float64 { return v.XAt(0) }
func (v Viewport) XMax() float64 { return v.XAt(v.Width - 1) }

// Pan shifts the center by a pixel delta. Positive dyPx moves the view
// content up, matching a downward drag.
func (v Viewport) Pan(dxPx, dyPx float64) Viewport {
	v.CenterX += dxPx * v.Scale
	v.CenterY += dyPx * v.Scale
	return v
}

// Zoom scales the view about its center. Factors below one zoom in.
// The resulting scale is clamped so repeated zooming cannot produce a
// degenerate or non-finite viewport.
func (v Viewport) Zoom(factor float64) Viewport {
	s := v.Scale * factor
	if math.IsNaN(s) || s < minScale {
		s = minScale
	}
	if s > maxScale {
		s = maxScale
	}
	v.Scale = s
	return v
}

// Reset returns the default view for the same pixel dimensions.
func (v Viewport) Reset() Viewport {
	return DefaultViewport(v.Width, v.Height)
}
