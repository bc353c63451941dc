package expr

import "fmt"

// Grammar, loosest to tightest binding:
//
//	expr    := term (('+'|'-') term)*
//	term    := factor (('*'|'/'|'%') factor)*
//	factor  := unary ('^' factor)?          right associative
//	unary   := ('-'|'+') unary | primary
//	primary := Number | Ident | Ident '(' expr ')' | '(' expr ')'
type parser struct {
	toks []token
	i    int
}

// Parse tokenizes text and builds its expression tree. The tree is
// immutable after Parse returns; parse once and evaluate as many times
// as needed.
func Parse(text string) (Node, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.cur().kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrParse, p.cur().text, p.cur().pos)
	}
	return n, nil
}

func (p *parser) cur() token { return p.toks[p.i] }

func (p *parser) next() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokPlus || p.cur().kind == tokMinus {
		op := p.cur().text[0]
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokStar || p.cur().kind == tokSlash || p.cur().kind == tokPercent {
		op := p.cur().text[0]
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseFactor() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur().kind == tokCaret {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return nodeBinary{op: '^', left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.cur().kind == tokPlus || p.cur().kind == tokMinus {
		op := p.cur().text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	switch p.cur().kind {
	case tokNumber:
		v := p.cur().num
		p.next()
		return nodeLiteral{v: v}, nil
	case tokIdent:
		name := p.cur().text
		pos := p.cur().pos
		p.next()
		if p.cur().kind == tokLParen {
			fn, ok := builtins[name]
			if !ok {
				return nil, fmt.Errorf("%w: unknown function %q at position %d", ErrParse, name, pos)
			}
			p.next()
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.cur().kind == tokComma {
				return nil, fmt.Errorf("%w: %s expects 1 argument", ErrParse, name)
			}
			if p.cur().kind != tokRParen {
				return nil, fmt.Errorf("%w: expected ')'", ErrParse)
			}
			p.next()
			return nodeCall{name: name, fn: fn, arg: arg}, nil
		}
		if v, ok := constants[name]; ok {
			return nodeConst{name: name, v: v}, nil
		}
		return nodeVar{name: name}, nil
	case tokLParen:
		p.next()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur().kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		p.next()
		return n, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrParse)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrParse, p.cur().text, p.cur().pos)
	}
}
