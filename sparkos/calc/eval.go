package calc

import (
	"math"
	"strconv"
	"strings"
)

// evalSymbols maps display glyphs to the symbols the evaluator reads. The
// mapping is one character to one character, so positions are unchanged.
var evalSymbols = strings.NewReplacer(string(glyphMul), "*", string(glyphDiv), "/")

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	pos  int
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	pos := l.i
	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+", pos: pos}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-", pos: pos}
	case '*':
		l.i++
		return token{kind: tokStar, text: "*", pos: pos}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/", pos: pos}
	}

	if c := l.s[l.i]; c == '.' || isDigit(c) {
		for l.i < len(l.s) && (l.s[l.i] == '.' || isDigit(l.s[l.i])) {
			l.i++
		}
		return token{kind: tokNumber, text: l.s[pos:l.i], pos: pos}
	}

	l.i++
	return token{kind: tokInvalid, text: l.s[pos:l.i], pos: pos}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseNumber accepts one run: digits with at most one '.', not ending in '.'.
// A leading '.' is read as "0.".
func parseNumber(txt string) (float64, error) {
	if txt == "" || txt[len(txt)-1] == '.' || strings.Count(txt, ".") > 1 {
		return 0, ErrMalformedExpression
	}
	f, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, ErrOutOfRange
		}
		return 0, ErrMalformedExpression
	}
	return f, nil
}

// tokenize splits expr into operand, operator, operand, ... and checks the
// alternation. Operands carry their parsed value. The only accepted sign is a
// '-' at position 0 directly before a number, which is how a negative result
// reads back.
func tokenize(expr string) ([]token, error) {
	l := lexer{s: evalSymbols.Replace(expr)}
	fail := func(pos int, err error) ([]token, error) {
		return nil, &EvalError{Expr: expr, Pos: pos, Err: err}
	}

	var toks []token
	wantOperand := true
	for {
		tok := l.next()
		switch tok.kind {
		case tokEOF:
			if wantOperand {
				return fail(tok.pos, ErrMalformedExpression)
			}
			return toks, nil

		case tokInvalid:
			return fail(tok.pos, ErrMalformedExpression)

		case tokNumber:
			if !wantOperand {
				return fail(tok.pos, ErrMalformedExpression)
			}
			v, err := parseNumber(tok.text)
			if err != nil {
				return fail(tok.pos, err)
			}
			tok.num = v
			toks = append(toks, tok)
			wantOperand = false

		default:
			if wantOperand {
				if tok.kind != tokMinus || tok.pos != 0 {
					return fail(tok.pos, ErrMalformedExpression)
				}
				num := l.next()
				if num.kind != tokNumber {
					return fail(num.pos, ErrMalformedExpression)
				}
				v, err := parseNumber(num.text)
				if err != nil {
					return fail(num.pos, err)
				}
				toks = append(toks, token{kind: tokNumber, text: "-" + num.text, pos: 0, num: -v})
				wantOperand = false
				continue
			}
			toks = append(toks, tok)
			wantOperand = true
		}
	}
}

// evaluate folds × and ÷ into terms first, then adds and subtracts the terms
// left to right.
func evaluate(expr string) (float64, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}

	terms := []float64{toks[0].num}
	var signs []tokenKind
	for i := 1; i+1 < len(toks); i += 2 {
		op, rhs := toks[i], toks[i+1]
		last := len(terms) - 1
		switch op.kind {
		case tokStar:
			terms[last] *= rhs.num
		case tokSlash:
			if rhs.num == 0 {
				return 0, &EvalError{Expr: expr, Pos: op.pos, Err: ErrDivisionByZero}
			}
			terms[last] /= rhs.num
		default:
			signs = append(signs, op.kind)
			terms = append(terms, rhs.num)
		}
	}

	acc := terms[0]
	for i, sign := range signs {
		if sign == tokPlus {
			acc += terms[i+1]
		} else {
			acc -= terms[i+1]
		}
	}

	if math.IsInf(acc, 0) || math.IsNaN(acc) {
		return 0, &EvalError{Expr: expr, Pos: 0, Err: ErrOutOfRange}
	}
	return acc, nil
}
