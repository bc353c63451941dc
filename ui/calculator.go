package ui

import (
	"math"
	"time"

	"slate/expr"
)

const maxHistoryEntries = 200

// Mode selects which button grid the calculator shows.
type Mode uint8

const (
	ModeBasic Mode = iota
	ModeScientific
)

func (m Mode) String() string {
	if m == ModeScientific {
		return "Scientific"
	}
	return "Basic"
}

// HistoryEntry is one completed calculation.
type HistoryEntry struct {
	Expression string
	Result     string
	At         time.Time
}

// Calculator holds the expression being edited, its live preview and the
// calculation history. It is UI-agnostic; the app layer feeds it edits.
type Calculator struct {
	exprText string
	preview  string
	errMsg   string
	mode     Mode
	history  []HistoryEntry

	now func() time.Time
}

func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

func (c *Calculator) Expression() string      { return c.exprText }
func (c *Calculator) Preview() string         { return c.preview }
func (c *Calculator) Err() string             { return c.errMsg }
func (c *Calculator) Mode() Mode              { return c.mode }
func (c *Calculator) History() []HistoryEntry { return c.history }

func (c *Calculator) ToggleMode() {
	if c.mode == ModeBasic {
		c.mode = ModeScientific
	} else {
		c.mode = ModeBasic
	}
}

// AppendDigit appends a digit character.
func (c *Calculator) AppendDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	c.exprText += string(d)
	c.refresh()
}

// AppendOperator appends a binary operator. A trailing operator is
// replaced rather than stacked; a leading '-' is allowed as unary minus.
func (c *Calculator) AppendOperator(op rune) {
	if !isOperatorRune(op) {
		return
	}
	if c.exprText == "" {
		if op == '-' {
			c.exprText = "-"
			c.refresh()
		}
		return
	}
	last := lastRune(c.exprText)
	if isOperatorRune(last) {
		c.exprText = trimLastRune(c.exprText) + string(op)
	} else {
		c.exprText += string(op)
	}
	c.refresh()
}

// AppendDecimal appends a decimal point, at most one per number segment.
func (c *Calculator) AppendDecimal() {
	seg := trailingNumberSegment(c.exprText)
	for _, r := range seg {
		if r == '.' {
			return
		}
	}
	if c.exprText == "" || isOperatorRune(lastRune(c.exprText)) || lastRune(c.exprText) == '(' {
		c.exprText += "0."
	} else {
		c.exprText += "."
	}
	c.refresh()
}

// AppendRune appends arbitrary input: parens, identifier characters and
// anything else the tokenizer understands. Digits and operators route
// through their dedicated edits.
func (c *Calculator) AppendRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
		c.AppendDigit(r)
	case isOperatorRune(r):
		c.AppendOperator(r)
	case r == '.':
		c.AppendDecimal()
	default:
		c.exprText += string(r)
		c.refresh()
	}
}

// AppendText appends a full token, e.g. a function name from a button.
func (c *Calculator) AppendText(s string) {
	c.exprText += s
	c.refresh()
}

func (c *Calculator) Backspace() {
	if c.exprText == "" {
		return
	}
	c.exprText = trimLastRune(c.exprText)
	c.refresh()
}

// Clear drops the current expression but keeps history.
func (c *Calculator) Clear() {
	c.exprText = ""
	c.preview = ""
	c.errMsg = ""
}

// ClearAll drops the expression and the history.
func (c *Calculator) ClearAll() {
	c.Clear()
	c.history = nil
}

// Calculate evaluates the current expression. On success the result is
// recorded in history and becomes the new expression so calculations
// chain; on failure the error message is kept alongside the unchanged
// expression.
func (c *Calculator) Calculate() {
	if c.exprText == "" {
		return
	}
	v, err := expr.Evaluate(c.exprText, nil)
	if err != nil {
		c.errMsg = err.Error()
		return
	}
	out := expr.FormatNumber(v)
	c.pushHistory(c.exprText, out)
	c.exprText = out
	c.preview = out
	c.errMsg = ""
}

// ApplyFunction evaluates the current expression and applies a one-press
// function to the value. Trig functions take degrees here: the buttons
// mimic a desk calculator, while typed expressions use radians.
func (c *Calculator) ApplyFunction(name string) {
	if c.exprText == "" {
		return
	}
	v, err := expr.Evaluate(c.exprText, nil)
	if err != nil {
		c.errMsg = err.Error()
		return
	}

	var out float64
	var label string
	switch name {
	case "sin", "cos", "tan":
		rad := v * math.Pi / 180
		switch name {
		case "sin":
			out = math.Sin(rad)
		case "cos":
			out = math.Cos(rad)
		default:
			out = math.Tan(rad)
		}
		label = name + "(" + c.exprText + ")"
	case "sqrt":
		out = math.Sqrt(v)
		label = "sqrt(" + c.exprText + ")"
	case "log":
		out = math.Log10(v)
		label = "log(" + c.exprText + ")"
	case "ln":
		out = math.Log(v)
		label = "ln(" + c.exprText + ")"
	case "exp":
		out = math.Exp(v)
		label = "exp(" + c.exprText + ")"
	case "abs":
		out = math.Abs(v)
		label = "abs(" + c.exprText + ")"
	case "1/x":
		out = 1 / v
		label = "1/(" + c.exprText + ")"
	case "x^2":
		out = v * v
		label = "(" + c.exprText + ")^2"
	default:
		return
	}

	res := expr.FormatNumber(out)
	c.pushHistory(label, res)
	c.exprText = res
	c.preview = res
	c.errMsg = ""
}

// Recall replaces the current expression with a history entry's
// expression, most recent first.
func (c *Calculator) Recall(idx int) bool {
	if idx < 0 || idx >= len(c.history) {
		return false
	}
	e := c.history[len(c.history)-1-idx]
	c.exprText = e.Expression
	c.refresh()
	return true
}

func (c *Calculator) pushHistory(exprText, result string) {
	c.history = append(c.history, HistoryEntry{
		Expression: exprText,
		Result:     result,
		At:         c.now(),
	})
	if len(c.history) > maxHistoryEntries {
		c.history = c.history[len(c.history)-maxHistoryEntries:]
	}
}

// refresh recomputes the live preview. While the expression is a prefix
// of something valid the preview just mirrors it.
func (c *Calculator) refresh() {
	c.errMsg = ""
	if c.exprText == "" {
		c.preview = ""
		return
	}
	v, err := expr.Evaluate(c.exprText, nil)
	if err != nil {
		c.preview = c.exprText
		return
	}
	c.preview = expr.FormatNumber(v)
}

func isOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '^', '%':
		return true
	}
	return false
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

func trimLastRune(s string) string {
	rs := []rune(s)
	return string(rs[:len(rs)-1])
}

// trailingNumberSegment returns the number being typed at the end of the
// expression, which bounds where a decimal point may go.
func trailingNumberSegment(s string) string {
	rs := []rune(s)
	i := len(rs)
	for i > 0 {
		r := rs[i-1]
		if (r >= '0' && r <= '9') || r == '.' {
			i--
			continue
		}
		break
	}
	return string(rs[i:])
}
