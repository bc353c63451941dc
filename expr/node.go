package expr

import (
	"fmt"
	"math"
)

// Node is a parsed expression. Eval is pure: the same tree and bindings
// always produce the same result, and a tree may be evaluated concurrently
// against different binding maps.
//
// Arithmetic never fails. Division by zero, negative square roots and the
// like follow IEEE semantics and propagate ±Inf/NaN through the tree; the
// only evaluation error is an unbound variable.
type Node interface {
	Eval(vars map[string]float64) (float64, error)
}

type nodeLiteral struct{ v float64 }

func (n nodeLiteral) Eval(_ map[string]float64) (float64, error) { return n.v, nil }

// nodeConst is a named engine constant such as pi. Constants resolve at
// parse time and cannot be shadowed by bindings.
type nodeConst struct {
	name string
	v    float64
}

func (n nodeConst) Eval(_ map[string]float64) (float64, error) { return n.v, nil }

type nodeVar struct{ name string }

func (n nodeVar) Eval(vars map[string]float64) (float64, error) {
	v, ok := vars[n.name]
	if !ok {
		return 0, fmt.Errorf("%w: %w %q", ErrEval, ErrUnknownVar, n.name)
	}
	return v, nil
}

type nodeUnary struct {
	op byte
	x  Node
}

func (n nodeUnary) Eval(vars map[string]float64) (float64, error) {
	v, err := n.x.Eval(vars)
	if err != nil {
		return 0, err
	}
	if n.op == '-' {
		return -v, nil
	}
	return v, nil
}

type nodeBinary struct {
	op    byte
	left  Node
	right Node
}

func (n nodeBinary) Eval(vars map[string]float64) (float64, error) {
	a, err := n.left.Eval(vars)
	if err != nil {
		return 0, err
	}
	b, err := n.right.Eval(vars)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		return a / b, nil
	case '%':
		return math.Mod(a, b), nil
	case '^':
		return math.Pow(a, b), nil
	default:
		return 0, fmt.Errorf("%w: binary %q", ErrEval, n.op)
	}
}

// nodeCall is a single-argument function application. The function is
// resolved during parsing; name is kept for printing.
type nodeCall struct {
	name string
	fn   func(float64) float64
	arg  Node
}

func (n nodeCall) Eval(vars map[string]float64) (float64, error) {
	v, err := n.arg.Eval(vars)
	if err != nil {
		return 0, err
	}
	return n.fn(v), nil
}
