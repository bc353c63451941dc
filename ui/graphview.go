package ui

import (
	"fmt"
	"image/color"
	"math"

	"slate/graph"
)

func (a *App) renderGraph(px0, py0, pw, ph int16) {
	if a.graphNode == nil {
		a.drawStringClipped(px0+4, py0+4, "graph: no expression", colorDim, int(pw/a.fontWidth))
		return
	}

	_ = a.d.FillRectangle(px0, py0, pw, ph, colorPanelBG)

	// The viewport tracks the plot area so pan and zoom stay in step with
	// what is on screen.
	vp := a.vp
	vp.Width = int(pw)
	vp.Height = int(ph)
	a.vp = vp

	a.drawGraphGrid(px0, py0, pw, ph, vp)
	a.drawGraphAxes(px0, py0, pw, ph, vp)

	pts := graph.Sample(a.graphNode, a.graphVar, vp)
	a.drawCurve(px0, py0, pw, ph, pts, vp)

	a.drawStringClipped(px0+4, py0+2, a.graphSrc, colorPlot, int((pw-8)/a.fontWidth))

	if a.showCursor {
		a.drawGraphCursor(px0, py0, pw, ph, vp)
	}
}

func (a *App) drawGraphGrid(px0, py0, pw, ph int16, vp graph.Viewport) {
	xSpan := vp.XMax() - vp.XMin()
	if xSpan <= 0 || math.IsNaN(xSpan) || math.IsInf(xSpan, 0) {
		return
	}
	step := niceStep(40 * vp.Scale)

	xStart := math.Ceil(vp.XMin()/step) * step
	for x := xStart; x <= vp.XMax(); x += step {
		ix := int16(math.Round(vp.PixelX(x)))
		if ix < 0 || ix >= pw {
			continue
		}
		for y := int16(0); y < ph; y++ {
			a.d.SetPixel(px0+ix, py0+y, colorGrid)
		}
		a.drawStringClipped(px0+ix+2, py0+ph-a.fontHeight, fmtAxis(x), colorDim, 8)
	}

	yTop := vp.YAt(0)
	yBot := vp.YAt(vp.Height - 1)
	yStart := math.Ceil(yBot/step) * step
	for y := yStart; y <= yTop; y += step {
		iy := int16(math.Round(vp.PixelY(y)))
		if iy < 0 || iy >= ph {
			continue
		}
		for x := int16(0); x < pw; x++ {
			a.d.SetPixel(px0+x, py0+iy, colorGrid)
		}
		a.drawStringClipped(px0+2, py0+iy+1, fmtAxis(y), colorDim, 8)
	}
}

func (a *App) drawGraphAxes(px0, py0, pw, ph int16, vp graph.Viewport) {
	if vp.XMin() <= 0 && vp.XMax() >= 0 {
		ix := int16(math.Round(vp.PixelX(0)))
		if ix >= 0 && ix < pw {
			for y := int16(0); y < ph; y++ {
				a.d.SetPixel(px0+ix, py0+y, colorAxis)
			}
		}
	}
	yTop := vp.YAt(0)
	yBot := vp.YAt(vp.Height - 1)
	if yBot <= 0 && yTop >= 0 {
		iy := int16(math.Round(vp.PixelY(0)))
		if iy >= 0 && iy < ph {
			for x := int16(0); x < pw; x++ {
				a.d.SetPixel(px0+x, py0+iy, colorAxis)
			}
		}
	}
}

// drawCurve connects consecutive defined samples, clipping each segment
// to the plot rectangle. Runs of undefined samples break the polyline.
func (a *App) drawCurve(px0, py0, pw, ph int16, pts []graph.Point, vp graph.Viewport) {
	prevOK := false
	var prevX, prevY float64
	xMin := 0.0
	yMin := 0.0
	xMax := float64(pw - 1)
	yMax := float64(ph - 1)

	for ix, p := range pts {
		if !p.OK {
			prevOK = false
			continue
		}
		curX := float64(ix)
		curY := vp.PixelY(p.Y)
		if prevOK {
			cx0, cy0, cx1, cy1, ok := clipLineToRect(prevX, prevY, curX, curY, xMin, yMin, xMax, yMax)
			if ok {
				a.drawLine(
					px0+roundInt16(cx0),
					py0+roundInt16(cy0),
					px0+roundInt16(cx1),
					py0+roundInt16(cy1),
					colorPlot,
				)
			}
		} else if curY >= yMin && curY <= yMax {
			a.d.SetPixel(px0+int16(ix), py0+roundInt16(curY), colorPlot)
		}
		prevOK = true
		prevX = curX
		prevY = curY
	}
}

func (a *App) drawGraphCursor(px0, py0, pw, ph int16, vp graph.Viewport) {
	cx := a.cursorPx - int(px0)
	cy := a.cursorPy - int(py0)
	if cx < 0 || cx >= int(pw) || cy < 0 || cy >= int(ph) {
		return
	}

	for y := int16(0); y < ph; y += 3 {
		a.d.SetPixel(px0+int16(cx), py0+y, colorCursor)
	}
	for x := int16(0); x < pw; x += 3 {
		a.d.SetPixel(px0+x, py0+int16(cy), colorCursor)
	}

	mx := vp.XAt(cx)
	my := vp.YAt(cy)
	readout := fmt.Sprintf("Cursor: (%.2f, %.2f) | Range: [%s, %s]",
		mx, my, fmtAxis(vp.XMin()), fmtAxis(vp.XMax()))
	a.drawStringClipped(px0+4, py0+ph-2*a.fontHeight, readout, colorCursor, int((pw-8)/a.fontWidth))
}

func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = x0 + u1*dx
	cy0 = y0 + u1*dy
	cx1 = x0 + u2*dx
	cy1 = y0 + u2*dy
	if cx0 < xmin {
		cx0 = xmin
	}
	if cx0 > xmax {
		cx0 = xmax
	}
	if cx1 < xmin {
		cx1 = xmin
	}
	if cx1 > xmax {
		cx1 = xmax
	}
	if cy0 < ymin {
		cy0 = ymin
	}
	if cy0 > ymax {
		cy0 = ymax
	}
	if cy1 < ymin {
		cy1 = ymin
	}
	if cy1 > ymax {
		cy1 = ymax
	}
	return cx0, cy0, cx1, cy1, true
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

func (a *App) drawLine(x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		a.d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	frac := raw / pow
	switch {
	case frac <= 1:
		return 1 * pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000 || av < 0.01:
		return fmt.Sprintf("%.2g", v)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}
