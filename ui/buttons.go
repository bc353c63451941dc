package ui

// buttonKind colors a button and routes its press.
type buttonKind uint8

const (
	btnDigit buttonKind = iota
	btnOperator
	btnFunction
	btnControl
	btnEquals
)

type button struct {
	label string
	kind  buttonKind
}

// basicGrid is the four-column desk calculator layout.
var basicGrid = [][]button{
	{{"C", btnControl}, {"CE", btnControl}, {"(", btnOperator}, {")", btnOperator}},
	{{"7", btnDigit}, {"8", btnDigit}, {"9", btnDigit}, {"/", btnOperator}},
	{{"4", btnDigit}, {"5", btnDigit}, {"6", btnDigit}, {"*", btnOperator}},
	{{"1", btnDigit}, {"2", btnDigit}, {"3", btnDigit}, {"-", btnOperator}},
	{{"0", btnDigit}, {".", btnDigit}, {"=", btnEquals}, {"+", btnOperator}},
}

// scientificGrid adds two function columns on the left. The second-
// function toggle swaps the function columns for sciSecond.
var scientificGrid = [][]button{
	{{"sin", btnFunction}, {"cos", btnFunction}, {"C", btnControl}, {"CE", btnControl}, {"(", btnOperator}, {")", btnOperator}},
	{{"tan", btnFunction}, {"sqrt", btnFunction}, {"7", btnDigit}, {"8", btnDigit}, {"9", btnDigit}, {"/", btnOperator}},
	{{"log", btnFunction}, {"ln", btnFunction}, {"4", btnDigit}, {"5", btnDigit}, {"6", btnDigit}, {"*", btnOperator}},
	{{"exp", btnFunction}, {"abs", btnFunction}, {"1", btnDigit}, {"2", btnDigit}, {"3", btnDigit}, {"-", btnOperator}},
	{{"pi", btnFunction}, {"e", btnFunction}, {"0", btnDigit}, {".", btnDigit}, {"=", btnEquals}, {"+", btnOperator}},
}

// sciSecond is the 2nd-function face of the two left columns.
var sciSecond = [][]button{
	{{"asin", btnFunction}, {"acos", btnFunction}},
	{{"atan", btnFunction}, {"x^2", btnFunction}},
	{{"1/x", btnFunction}, {"%", btnOperator}},
	{{"^", btnOperator}, {"floor", btnFunction}},
	{{"tau", btnFunction}, {"ceil", btnFunction}},
}

// grid returns the active button layout.
func grid(mode Mode, second bool) [][]button {
	if mode == ModeBasic {
		return basicGrid
	}
	if !second {
		return scientificGrid
	}
	out := make([][]button, len(scientificGrid))
	for r := range scientificGrid {
		row := make([]button, len(scientificGrid[r]))
		copy(row, scientificGrid[r])
		copy(row[:2], sciSecond[r])
		out[r] = row
	}
	return out
}

// press feeds one button into the calculator. Functions with a value
// semantics (one-press application) go through ApplyFunction; tokens
// like function names before an open paren are typed instead.
func press(c *Calculator, b button) {
	switch b.kind {
	case btnDigit:
		if b.label == "." {
			c.AppendDecimal()
		} else {
			c.AppendDigit(rune(b.label[0]))
		}
	case btnOperator:
		switch b.label {
		case "(", ")":
			c.AppendText(b.label)
		default:
			c.AppendOperator(rune(b.label[0]))
		}
	case btnEquals:
		c.Calculate()
	case btnControl:
		if b.label == "CE" {
			c.ClearAll()
		} else {
			c.Clear()
		}
	case btnFunction:
		switch b.label {
		case "pi", "e", "tau":
			c.AppendText(b.label)
		case "sin", "cos", "tan", "sqrt", "log", "ln", "exp", "abs", "1/x", "x^2":
			c.ApplyFunction(b.label)
		default:
			// asin, acos, atan, floor, ceil type as call prefixes.
			c.AppendText(b.label + "(")
		}
	}
}

// buttonLayout maps grid cells onto framebuffer pixels.
type buttonLayout struct {
	x, y  int16
	cellW int16
	cellH int16
	rows  int
	cols  int
	gap   int16
}

func newButtonLayout(x, y, w, h int16, g [][]button) buttonLayout {
	rows := len(g)
	cols := 0
	if rows > 0 {
		cols = len(g[0])
	}
	l := buttonLayout{x: x, y: y, rows: rows, cols: cols, gap: 2}
	if cols > 0 {
		l.cellW = (w - l.gap*int16(cols-1)) / int16(cols)
	}
	if rows > 0 {
		l.cellH = (h - l.gap*int16(rows-1)) / int16(rows)
	}
	return l
}

// cellRect returns the pixel rectangle of a grid cell.
func (l buttonLayout) cellRect(row, col int) (x, y, w, h int16) {
	x = l.x + int16(col)*(l.cellW+l.gap)
	y = l.y + int16(row)*(l.cellH+l.gap)
	return x, y, l.cellW, l.cellH
}

// hitTest maps a pixel position to a grid cell.
func (l buttonLayout) hitTest(px, py int) (row, col int, ok bool) {
	if l.cellW <= 0 || l.cellH <= 0 {
		return 0, 0, false
	}
	fx := int16(px) - l.x
	fy := int16(py) - l.y
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	col = int(fx / (l.cellW + l.gap))
	row = int(fy / (l.cellH + l.gap))
	if row >= l.rows || col >= l.cols {
		return 0, 0, false
	}
	// Positions inside the gap belong to no button.
	if fx-int16(col)*(l.cellW+l.gap) >= l.cellW {
		return 0, 0, false
	}
	if fy-int16(row)*(l.cellH+l.gap) >= l.cellH {
		return 0, 0, false
	}
	return row, col, true
}
