package calc

import (
	"strconv"
)

// Token is a single lexical unit of an expression: a Number, an Operator, or
// a Paren. The set of implementations is closed.
type Token interface {
	// Pos returns the column of the first source rune that produced the
	// token. Columns are used only for error reporting.
	Pos() int
	// String renders the token as display text.
	String() string

	token()
}

// Number is a numeric literal or an intermediate value.
type Number struct {
	Value float64
	Col   int
}

// Operator is a binary operator or a unary function.
type Operator struct {
	Kind OperatorKind
	Col  int
}

// Paren is a left or right parenthesis.
type Paren struct {
	Side Side
	Col  int
}

func (Number) token()   {}
func (Operator) token() {}
func (Paren) token()    {}

func (t Number) Pos() int   { return t.Col }
func (t Operator) Pos() int { return t.Col }
func (t Paren) Pos() int    { return t.Col }

func (t Number) String() string   { return FormatNumber(t.Value) }
func (t Operator) String() string { return t.Kind.Symbol() }
func (t Paren) String() string    { return t.Side.String() }

// Side distinguishes left and right parentheses.
type Side int8

const (
	Left Side = iota + 1
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "("
	case Right:
		return ")"
	default:
		return "Side(" + strconv.Itoa(int(s)) + ")"
	}
}

// OperatorKind identifies an operator.
type OperatorKind int8

const (
	opNone OperatorKind = iota

	// binary
	Add
	Sub
	Mult
	Div
	Mod
	Pow

	// unary
	Neg
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	SinDeg
	CosDeg
	TanDeg
	AsinDeg
	AcosDeg
	AtanDeg
	Ln
	Log
	Abs
	Fac

	opCount
)

// operators maps each kind to its display symbol, its name, and its
// precedence. Higher precedence binds tighter.
var operators = [opCount]struct {
	sym  string
	name string
	prec int8
}{
	opNone:  {"", "None", 0},
	Add:     {"+", "Add", 1},
	Sub:     {"-", "Sub", 1},
	Mult:    {"*", "Mult", 2},
	Div:     {"/", "Div", 2},
	Mod:     {"%", "Mod", 2},
	Pow:     {"^", "Pow", 3},
	Neg:     {"neg", "Neg", 4},
	Sin:     {"sin", "Sin", 4},
	Cos:     {"cos", "Cos", 4},
	Tan:     {"tan", "Tan", 4},
	Asin:    {"asin", "Asin", 4},
	Acos:    {"acos", "Acos", 4},
	Atan:    {"atan", "Atan", 4},
	SinDeg:  {"sind", "SinDeg", 4},
	CosDeg:  {"cosd", "CosDeg", 4},
	TanDeg:  {"tand", "TanDeg", 4},
	AsinDeg: {"asind", "AsinDeg", 4},
	AcosDeg: {"acosd", "AcosDeg", 4},
	AtanDeg: {"atand", "AtanDeg", 4},
	Ln:      {"ln", "Ln", 4},
	Log:     {"log", "Log", 4},
	Abs:     {"abs", "Abs", 4},
	Fac:     {"fac", "Fac", 4},
}

func (k OperatorKind) valid() bool {
	return opNone < k && k < opCount
}

// Precedence returns the binding strength of the operator. Add and Sub are 1,
// Mult, Div, and Mod are 2, Pow is 3, and every unary operator is 4.
func (k OperatorKind) Precedence() int {
	if !k.valid() {
		return 0
	}
	return int(operators[k].prec)
}

// Unary reports whether the operator takes a single operand.
func (k OperatorKind) Unary() bool {
	return Neg <= k && k <= Fac
}

// Arity returns the number of operands the operator consumes.
func (k OperatorKind) Arity() int {
	if k.Unary() {
		return 1
	}
	return 2
}

// Symbol returns the canonical display text of the operator, e.g. "^" or
// "asind".
func (k OperatorKind) Symbol() string {
	if !k.valid() {
		return ""
	}
	return operators[k].sym
}

func (k OperatorKind) String() string {
	if !k.valid() {
		return "OperatorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return operators[k].name
}

// isParen reports whether tok is a Paren on side s.
func isParen(tok Token, s Side) bool {
	p, ok := tok.(Paren)
	return ok && p.Side == s
}
