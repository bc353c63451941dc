package expr

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokBad
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) {
		r, size := utf8.DecodeRuneInString(l.s[l.i:])
		if !unicode.IsSpace(r) {
			break
		}
		l.i += size
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	pos := l.i
	r, size := utf8.DecodeRuneInString(l.s[l.i:])

	// Button glyphs and math symbols map onto their ASCII forms so pasted
	// and typed input tokenize identically.
	switch r {
	case '+':
		l.i += size
		return token{kind: tokPlus, text: "+", pos: pos}
	case '-', '−':
		l.i += size
		return token{kind: tokMinus, text: "-", pos: pos}
	case '*', '×':
		l.i += size
		return token{kind: tokStar, text: "*", pos: pos}
	case '/', '÷':
		l.i += size
		return token{kind: tokSlash, text: "/", pos: pos}
	case '%':
		l.i += size
		return token{kind: tokPercent, text: "%", pos: pos}
	case '^':
		l.i += size
		return token{kind: tokCaret, text: "^", pos: pos}
	case '(':
		l.i += size
		return token{kind: tokLParen, text: "(", pos: pos}
	case ')':
		l.i += size
		return token{kind: tokRParen, text: ")", pos: pos}
	case ',':
		l.i += size
		return token{kind: tokComma, text: ",", pos: pos}
	case 'π':
		l.i += size
		return token{kind: tokIdent, text: "pi", pos: pos}
	}

	if isIdentStart(r) {
		start := l.i
		l.i += size
		for l.i < len(l.s) {
			r, size := utf8.DecodeRuneInString(l.s[l.i:])
			if !isIdentContinue(r) {
				break
			}
			l.i += size
		}
		return token{kind: tokIdent, text: l.s[start:l.i], pos: pos}
	}
	if r == '.' || unicode.IsDigit(r) {
		start := l.i
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokBad, text: txt, pos: pos}
		}
		return token{kind: tokNumber, text: txt, num: f, pos: pos}
	}

	l.i += size
	return token{kind: tokBad, text: string(r), pos: pos}
}

func scanNumber(s string, i int) int {
	if i < len(s) && s[i] == '.' {
		i++
	}
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && unicode.IsDigit(rune(s[i])) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && unicode.IsDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// tokenize runs the lexer to EOF and applies the implicit multiplication
// pass. Every input character lands in some token; anything unrecognized
// surfaces as an error naming the character and its byte position.
func tokenize(s string) ([]token, error) {
	l := lexer{s: s}
	var out []token
	for {
		t := l.next()
		if t.kind == tokBad {
			return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrLex, t.text, t.pos)
		}
		out = append(out, t)
		if t.kind == tokEOF {
			return insertImplicitMul(out), nil
		}
	}
}

// insertImplicitMul places a '*' between adjacent tokens written in the
// juxtaposition forms 2(x+1), (x+1)(x-1) and (x+1)2.
func insertImplicitMul(toks []token) []token {
	out := make([]token, 0, len(toks))
	for i, t := range toks {
		if i > 0 {
			prev := toks[i-1]
			closing := prev.kind == tokNumber || prev.kind == tokRParen
			opening := t.kind == tokLParen || (prev.kind == tokRParen && t.kind == tokNumber)
			if closing && opening {
				out = append(out, token{kind: tokStar, text: "*", pos: t.pos})
			}
		}
		out = append(out, t)
	}
	return out
}
