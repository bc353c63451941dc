package graph

import (
	"math"

	"slate/expr"
)

// Point is one sampled function value. OK is false when the function is
// undefined at X: evaluation failed or produced a non-finite value.
type Point struct {
	X, Y float64
	OK   bool
}

// Sample evaluates n once per pixel column of the viewport, binding the
// named variable to the column's math x. Columns where evaluation errors
// or yields NaN/Inf come back with OK false; a well-formed expression
// always yields exactly vp.Width points.
func Sample(n expr.Node, variable string, vp Viewport) []Point {
	pts := make([]Point, vp.Width)
	vars := map[string]float64{}
	for px := 0; px < vp.Width; px++ {
		x := vp.XAt(px)
		vars[variable] = x
		y, err := n.Eval(vars)
		pts[px] = Point{
			X:  x,
			Y:  y,
			OK: err == nil && !math.IsNaN(y) && !math.IsInf(y, 0),
		}
	}
	return pts
}

// SampleExpression parses text and samples it over the viewport. A lex or
// parse failure aborts before any sampling; per-column evaluation trouble
// only clears that column's OK flag.
func SampleExpression(text, variable string, vp Viewport) ([]Point, error) {
	n, err := expr.Parse(text)
	if err != nil {
		return nil, err
	}
	return Sample(n, variable, vp), nil
}
