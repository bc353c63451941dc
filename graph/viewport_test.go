package graph

import (
	"math"
	"testing"
)

func TestViewportTransformInverse(t *testing.T) {
	v := Viewport{CenterX: 1.5, CenterY: -2, Scale: 0.05, Width: 320, Height: 240}
	for _, px := range []int{0, 1, 159, 160, 319} {
		x := v.XAt(px)
		back := v.PixelX(x)
		if math.Abs(back-float64(px)) > 1e-9 {
			t.Fatalf("PixelX(XAt(%d)) = %v, want %d", px, back, px)
		}
	}
	for _, py := range []int{0, 119, 120, 239} {
		y := v.YAt(py)
		back := v.PixelY(y)
		if math.Abs(back-float64(py)) > 1e-9 {
			t.Fatalf("PixelY(YAt(%d)) = %v, want %d", py, back, py)
		}
	}
}

func TestViewportCenterPixel(t *testing.T) {
	v := Viewport{CenterX: 3, CenterY: 4, Scale: 0.1, Width: 200, Height: 100}
	if got := v.XAt(100); got != 3 {
		t.Fatalf("XAt(width/2) = %v, want center x 3", got)
	}
	if got := v.YAt(50); got != 4 {
		t.Fatalf("YAt(height/2) = %v, want center y 4", got)
	}
}

func TestViewportYAxisFlip(t *testing.T) {
	v := DefaultViewport(100, 100)
	if !(v.YAt(0) > v.YAt(99)) {
		t.Fatalf("YAt(0)=%v should be above YAt(99)=%v", v.YAt(0), v.YAt(99))
	}
}

func TestViewportPan(t *testing.T) {
	v := Viewport{CenterX: 0, CenterY: 0, Scale: 0.5, Width: 100, Height: 100}
	p := v.Pan(10, -4)
	if p.CenterX != 5 {
		t.Fatalf("Pan: CenterX = %v, want 5", p.CenterX)
	}
	if p.CenterY != -2 {
		t.Fatalf("Pan: CenterY = %v, want -2", p.CenterY)
	}
	if p.Scale != v.Scale || p.Width != v.Width {
		t.Fatalf("Pan must not change scale or size")
	}
}

func TestViewportZoomClamp(t *testing.T) {
	v := DefaultViewport(100, 100)
	in := v.Zoom(0.8)
	if in.Scale >= v.Scale {
		t.Fatalf("Zoom(0.8) should shrink scale: %v -> %v", v.Scale, in.Scale)
	}
	small := v
	for i := 0; i < 200; i++ {
		small = small.Zoom(0.5)
	}
	if small.Scale < minScale {
		t.Fatalf("scale underflow: %v", small.Scale)
	}
	big := v
	for i := 0; i < 200; i++ {
		big = big.Zoom(2)
	}
	if big.Scale > maxScale {
		t.Fatalf("scale overflow: %v", big.Scale)
	}
	if got := big.Reset(); got != DefaultViewport(100, 100) {
		t.Fatalf("Reset = %+v, want default", got)
	}
}

func TestDefaultViewportSpan(t *testing.T) {
	v := DefaultViewport(400, 300)
	if got := v.XAt(200); got != 0 {
		t.Fatalf("default center = %v, want 0", got)
	}
	span := v.XMax() - v.XMin()
	if math.Abs(span-20*399.0/400.0) > 1e-9 {
		t.Fatalf("default x span = %v over %d columns", span, v.Width)
	}
}
