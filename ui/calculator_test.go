package ui

import (
	"math"
	"strconv"
	"testing"
	"time"
)

func testCalculator() *Calculator {
	c := NewCalculator()
	c.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func typeText(c *Calculator, s string) {
	for _, r := range s {
		c.AppendRune(r)
	}
}

func TestCalculatorDigitsAndPreview(t *testing.T) {
	c := testCalculator()
	typeText(c, "2+3*4")
	if c.Expression() != "2+3*4" {
		t.Fatalf("expression = %q", c.Expression())
	}
	if c.Preview() != "14" {
		t.Fatalf("preview = %q, want 14", c.Preview())
	}
}

func TestCalculatorOperatorReplacement(t *testing.T) {
	c := testCalculator()
	typeText(c, "2+")
	c.AppendOperator('*')
	if c.Expression() != "2*" {
		t.Fatalf("expression = %q, want 2*", c.Expression())
	}
	c.AppendOperator('+')
	c.AppendDigit('3')
	if c.Expression() != "2+3" {
		t.Fatalf("expression = %q, want 2+3", c.Expression())
	}
}

func TestCalculatorLeadingMinus(t *testing.T) {
	c := testCalculator()
	c.AppendOperator('+')
	if c.Expression() != "" {
		t.Fatalf("leading + should be ignored, got %q", c.Expression())
	}
	c.AppendOperator('-')
	c.AppendDigit('3')
	c.Calculate()
	if c.Expression() != "-3" {
		t.Fatalf("expression = %q, want -3", c.Expression())
	}
}

func TestCalculatorDecimalOncePerNumber(t *testing.T) {
	c := testCalculator()
	c.AppendDigit('1')
	c.AppendDecimal()
	c.AppendDecimal()
	c.AppendDigit('5')
	if c.Expression() != "1.5" {
		t.Fatalf("expression = %q, want 1.5", c.Expression())
	}
	c.AppendOperator('+')
	c.AppendDecimal()
	if c.Expression() != "1.5+0." {
		t.Fatalf("expression = %q, want 1.5+0.", c.Expression())
	}
}

func TestCalculatorCalculateChains(t *testing.T) {
	c := testCalculator()
	typeText(c, "2+3")
	c.Calculate()
	if c.Expression() != "5" {
		t.Fatalf("expression after = : %q, want 5", c.Expression())
	}
	typeText(c, "*4")
	c.Calculate()
	if c.Expression() != "20" {
		t.Fatalf("chained result = %q, want 20", c.Expression())
	}
	h := c.History()
	if len(h) != 2 {
		t.Fatalf("history len = %d, want 2", len(h))
	}
	if h[0].Expression != "2+3" || h[0].Result != "5" {
		t.Fatalf("history[0] = %+v", h[0])
	}
	if h[1].Expression != "5*4" || h[1].Result != "20" {
		t.Fatalf("history[1] = %+v", h[1])
	}
	if h[0].At.IsZero() {
		t.Fatalf("history entry missing timestamp")
	}
}

func TestCalculatorErrorKeepsExpression(t *testing.T) {
	c := testCalculator()
	typeText(c, "2+")
	c.Calculate()
	if c.Err() == "" {
		t.Fatalf("want an error for %q", c.Expression())
	}
	if c.Expression() != "2+" {
		t.Fatalf("expression should survive a failed calculate, got %q", c.Expression())
	}
	if len(c.History()) != 0 {
		t.Fatalf("failed calculation must not enter history")
	}
	c.AppendDigit('3')
	if c.Err() != "" {
		t.Fatalf("editing should clear the error")
	}
}

func TestCalculatorClearVsClearAll(t *testing.T) {
	c := testCalculator()
	typeText(c, "1+1")
	c.Calculate()
	typeText(c, "+1")
	c.Clear()
	if c.Expression() != "" {
		t.Fatalf("Clear: expression = %q", c.Expression())
	}
	if len(c.History()) != 1 {
		t.Fatalf("Clear must keep history")
	}
	c.ClearAll()
	if len(c.History()) != 0 {
		t.Fatalf("ClearAll must drop history")
	}
}

func TestCalculatorRecall(t *testing.T) {
	c := testCalculator()
	typeText(c, "6*7")
	c.Calculate()
	c.Clear()
	if !c.Recall(0) {
		t.Fatalf("Recall(0) should succeed")
	}
	if c.Expression() != "6*7" {
		t.Fatalf("recalled %q, want 6*7", c.Expression())
	}
	if c.Recall(5) {
		t.Fatalf("Recall out of range should fail")
	}
}

func TestCalculatorApplyFunctionDegrees(t *testing.T) {
	c := testCalculator()
	typeText(c, "90")
	c.ApplyFunction("sin")
	got, err := strconv.ParseFloat(c.Expression(), 64)
	if err != nil {
		t.Fatalf("result %q not numeric: %v", c.Expression(), err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("sin(90 deg) = %v, want 1", got)
	}
	h := c.History()
	if len(h) != 1 || h[0].Expression != "sin(90)" {
		t.Fatalf("history = %+v, want sin(90)", h)
	}
}

func TestCalculatorApplyFunctionReciprocalAndSquare(t *testing.T) {
	c := testCalculator()
	typeText(c, "4")
	c.ApplyFunction("x^2")
	if c.Expression() != "16" {
		t.Fatalf("4 squared = %q, want 16", c.Expression())
	}
	c.ApplyFunction("1/x")
	if c.Expression() != "0.0625" {
		t.Fatalf("1/16 = %q, want 0.0625", c.Expression())
	}
}

func TestCalculatorNonFiniteDisplay(t *testing.T) {
	c := testCalculator()
	typeText(c, "1/0")
	c.Calculate()
	if c.Expression() != "Infinity" {
		t.Fatalf("1/0 = %q, want Infinity", c.Expression())
	}
	if c.Err() != "" {
		t.Fatalf("division by zero is a value, not an error: %q", c.Err())
	}
}

func TestCalculatorUnboundVariableError(t *testing.T) {
	c := testCalculator()
	typeText(c, "x+1")
	c.Calculate()
	if c.Err() == "" {
		t.Fatalf("x+1 should fail outside the graph")
	}
}
