package expr

import (
	"fmt"
	"math"
)

// NodeString renders n back to source form, parenthesizing only where
// precedence requires it.
func NodeString(n Node) string {
	return nodeStringPrec(n, 0)
}

func nodeStringPrec(n Node, parentPrec int) string {
	switch nn := n.(type) {
	case nodeLiteral:
		return FormatNumber(nn.v)
	case nodeConst:
		return nn.name
	case nodeVar:
		return nn.name
	case nodeUnary:
		prec := 4
		s := string(nn.op) + nodeStringPrec(nn.x, prec)
		if prec < parentPrec {
			return "(" + s + ")"
		}
		return s
	case nodeBinary:
		prec := binPrec(nn.op)
		left := nodeStringPrec(nn.left, prec)
		rightPrec := prec
		if nn.op == '^' {
			rightPrec = prec - 1
		}
		right := nodeStringPrec(nn.right, rightPrec)
		s := fmt.Sprintf("%s %c %s", left, nn.op, right)
		if prec < parentPrec {
			return "(" + s + ")"
		}
		return s
	case nodeCall:
		return nn.name + "(" + nodeStringPrec(nn.arg, 0) + ")"
	default:
		return "<?>"
	}
}

func binPrec(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/', '%':
		return 2
	case '^':
		return 3
	default:
		return 0
	}
}

// FormatNumber renders a result for display: up to ten fractional digits
// with trailing zeros trimmed, and the words Infinity/NaN for non-finite
// values.
func FormatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	s := fmt.Sprintf("%.10f", f)
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}
