package ui

import "testing"

func TestGridShapes(t *testing.T) {
	for _, g := range [][][]button{grid(ModeBasic, false), grid(ModeScientific, false), grid(ModeScientific, true)} {
		if len(g) != 5 {
			t.Fatalf("grid rows = %d, want 5", len(g))
		}
		for r := 1; r < len(g); r++ {
			if len(g[r]) != len(g[0]) {
				t.Fatalf("row %d has %d cols, row 0 has %d", r, len(g[r]), len(g[0]))
			}
		}
	}
	if len(grid(ModeBasic, false)[0]) != 4 {
		t.Fatalf("basic grid should have 4 columns")
	}
	if len(grid(ModeScientific, false)[0]) != 6 {
		t.Fatalf("scientific grid should have 6 columns")
	}
}

func TestSecondFunctionSwapsLeftColumns(t *testing.T) {
	first := grid(ModeScientific, false)
	second := grid(ModeScientific, true)
	if second[0][0].label != "asin" {
		t.Fatalf("2nd grid [0][0] = %q, want asin", second[0][0].label)
	}
	// Digits and operators are shared between faces.
	for r := range first {
		for col := 2; col < len(first[r]); col++ {
			if first[r][col] != second[r][col] {
				t.Fatalf("cell [%d][%d] differs between faces", r, col)
			}
		}
	}
	// Toggling must not mutate the primary grid.
	if scientificGrid[0][0].label != "sin" {
		t.Fatalf("primary grid mutated: %q", scientificGrid[0][0].label)
	}
}

func TestPressRouting(t *testing.T) {
	c := testCalculator()
	press(c, button{"7", btnDigit})
	press(c, button{"+", btnOperator})
	press(c, button{"3", btnDigit})
	press(c, button{"=", btnEquals})
	if c.Expression() != "10" {
		t.Fatalf("7+3= gives %q, want 10", c.Expression())
	}
	press(c, button{"C", btnControl})
	if c.Expression() != "" {
		t.Fatalf("C should clear, got %q", c.Expression())
	}

	press(c, button{"pi", btnFunction})
	if c.Expression() != "pi" {
		t.Fatalf("pi button should type, got %q", c.Expression())
	}
	press(c, button{"C", btnControl})
	press(c, button{"asin", btnFunction})
	if c.Expression() != "asin(" {
		t.Fatalf("asin button should open a call, got %q", c.Expression())
	}
}

func TestButtonLayoutHitTest(t *testing.T) {
	g := grid(ModeBasic, false)
	l := newButtonLayout(4, 100, 400, 250, g)

	for r := 0; r < l.rows; r++ {
		for col := 0; col < l.cols; col++ {
			x, y, w, h := l.cellRect(r, col)
			hr, hc, ok := l.hitTest(int(x+w/2), int(y+h/2))
			if !ok || hr != r || hc != col {
				t.Fatalf("hitTest(center of [%d][%d]) = %d,%d,%v", r, col, hr, hc, ok)
			}
		}
	}

	if _, _, ok := l.hitTest(0, 0); ok {
		t.Fatalf("hit above the grid should miss")
	}
	if _, _, ok := l.hitTest(int(l.x)+10000, int(l.y)+10); ok {
		t.Fatalf("hit right of the grid should miss")
	}
}
