package expr

import "errors"

var (
	ErrLex   = errors.New("lex error")
	ErrParse = errors.New("parse error")
	ErrEval  = errors.New("eval error")
	// ErrUnknownVar is returned when evaluating an expression with an unbound variable.
	ErrUnknownVar = errors.New("unknown variable")
)

// Evaluate tokenizes, parses and evaluates text against vars in one step.
// vars may be nil when the expression uses no variables.
func Evaluate(text string, vars map[string]float64) (float64, error) {
	n, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return n.Eval(vars)
}

// Vars collects the variable names referenced by n.
func Vars(n Node) []string {
	seen := map[string]bool{}
	var out []string
	walkVars(n, seen, &out)
	return out
}

func walkVars(n Node, seen map[string]bool, out *[]string) {
	switch nn := n.(type) {
	case nodeVar:
		if !seen[nn.name] {
			seen[nn.name] = true
			*out = append(*out, nn.name)
		}
	case nodeUnary:
		walkVars(nn.x, seen, out)
	case nodeBinary:
		walkVars(nn.left, seen, out)
		walkVars(nn.right, seen, out)
	case nodeCall:
		walkVars(nn.arg, seen, out)
	}
}
