package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// keywords maps the names of unary functions to their operators. The constant
// pi is handled separately because it lexes as a number.
var keywords = map[string]OperatorKind{
	"sin":   Sin,
	"cos":   Cos,
	"tan":   Tan,
	"asin":  Asin,
	"acos":  Acos,
	"atan":  Atan,
	"sind":  SinDeg,
	"cosd":  CosDeg,
	"tand":  TanDeg,
	"asind": AsinDeg,
	"acosd": AcosDeg,
	"atand": AtanDeg,
	"ln":    Ln,
	"log":   Log,
	"abs":   Abs,
	"fac":   Fac,
}

// symbols maps single-rune operators and parentheses to their tokens, sans
// column.
var symbols = map[rune]Token{
	'+': Operator{Kind: Add},
	'-': Operator{Kind: Sub},
	'*': Operator{Kind: Mult},
	'/': Operator{Kind: Div},
	'%': Operator{Kind: Mod},
	'^': Operator{Kind: Pow},
	'(': Paren{Side: Left},
	')': Paren{Side: Right},
}

type lexer struct {
	src []rune
	buf strings.Builder
	pos int
}

// lexInto scans src into out, replacing its previous contents. If an error
// occurs, out holds the tokens scanned before it.
func lexInto(src string, out *Sequence) error {
	out.Reset()
	l := lexer{src: []rune(src)}
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		switch {
		case unicode.IsSpace(r):
			l.pos++
		case isDigit(r):
			tok, err := l.scanNum()
			if err != nil {
				return err
			}
			out.Append(tok)
		case isLower(r):
			tok, err := l.scanIdent()
			if err != nil {
				return err
			}
			out.Append(tok)
		default:
			tok, ok := symbols[r]
			if !ok {
				return fail(InvalidInputCharacter, l.pos)
			}
			out.Append(withCol(tok, l.pos))
			l.pos++
		}
	}
	return nil
}

// scanNum scans a decimal literal starting at a digit.
func (l *lexer) scanNum() (Token, error) {
	defer l.buf.Reset()
	col := l.pos
	dot := false
	for ; l.pos < len(l.src); l.pos++ {
		r := l.src[l.pos]
		if r == '.' {
			if dot {
				return nil, fail(MultipleDecimalPoints, l.pos)
			}
			dot = true
		} else if !isDigit(r) {
			break
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	if strings.HasSuffix(text, ".") {
		return nil, fail(NumEndsWithDot, l.pos-1)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Only digits and a single interior dot reach here.
		panic("calc: invalid number: " + text + " (" + err.Error() + ")")
	}
	return Number{Value: v, Col: col}, nil
}

// scanIdent scans a run of lowercase letters as a single keyword.
func (l *lexer) scanIdent() (Token, error) {
	defer l.buf.Reset()
	col := l.pos
	for ; l.pos < len(l.src) && isLower(l.src[l.pos]); l.pos++ {
		l.buf.WriteRune(l.src[l.pos])
	}
	name := l.buf.String()
	if name == "pi" {
		return Number{Value: math.Pi, Col: col}, nil
	}
	k, ok := keywords[name]
	if !ok {
		return nil, fail(InvalidInputCharacter, col)
	}
	return Operator{Kind: k, Col: col}, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLower(r rune) bool {
	return 'a' <= r && r <= 'z'
}

// withCol returns a copy of tok positioned at col.
func withCol(tok Token, col int) Token {
	switch tok := tok.(type) {
	case Number:
		tok.Col = col
		return tok
	case Operator:
		tok.Col = col
		return tok
	case Paren:
		tok.Col = col
		return tok
	default:
		panic("calc: unknown token type")
	}
}
