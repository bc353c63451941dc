package expr

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "empty"},
		{in: "   ", want: "empty"},
		{in: "2 + ", want: "end of expression"},
		{in: "(2 + 3", want: "expected ')'"},
		{in: "2 + * 3", want: "unexpected"},
		{in: "1 2", want: "unexpected"},
		{in: "frob(1)", want: "unknown function"},
		{in: "sin(1, 2)", want: "expects 1 argument"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		if !errors.Is(err, ErrParse) {
			t.Fatalf("Parse(%q) err = %v, want ErrParse", tt.in, err)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("Parse(%q) err = %q, want substring %q", tt.in, err, tt.want)
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2+3*4", want: "2 + 3 * 4"},
		{in: "(2+3)*4", want: "(2 + 3) * 4"},
		{in: "2^3^2", want: "2 ^ 3 ^ 2"},
		{in: "-x^2", want: "-x ^ 2"},
		{in: "2*(x+1)", want: "2 * (x + 1)"},
		{in: "sin(x)+1", want: "sin(x) + 1"},
		{in: "pi*2", want: "pi * 2"},
	}
	for _, tt := range tests {
		n, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.in, err)
		}
		if got := NodeString(n); got != tt.want {
			t.Fatalf("NodeString(Parse(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseClassifiesNames(t *testing.T) {
	n, err := Parse("pi + x + e + sin(y)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	vars := Vars(n)
	if len(vars) != 2 || vars[0] != "x" || vars[1] != "y" {
		t.Fatalf("Vars = %v, want [x y]", vars)
	}
}

func TestParseOnceEvalMany(t *testing.T) {
	n, err := Parse("x^2 + 1")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	vars := map[string]float64{}
	for i, want := range []float64{1, 2, 5, 10} {
		vars["x"] = float64(i)
		got, err := n.Eval(vars)
		if err != nil {
			t.Fatalf("Eval(x=%d) error: %v", i, err)
		}
		if got != want {
			t.Fatalf("Eval(x=%d) = %v, want %v", i, got, want)
		}
	}
}
