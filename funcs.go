package calc

import (
	"math"

	"github.com/emirpasic/gods/v2/stacks/arraystack"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// monadic computes a unary operator. If the operand is outside the operator's
// domain, the result is the kind of error to report.
type monadic func(x float64) (float64, Kind)

// dyadic computes a binary operator on its left and right operands.
type dyadic func(x, y float64) (float64, Kind)

var monadics = [opCount]monadic{
	Neg: total(func(x float64) float64 { return -x }),
	Sin: total(math.Sin),
	Cos: total(math.Cos),
	Tan: func(x float64) (float64, Kind) {
		if math.Abs(math.Mod(x, math.Pi)) == math.Pi/2 {
			return 0, TangentUndefined
		}
		return math.Tan(x), kindNone
	},
	Asin: arcus(math.Asin, 1),
	Acos: arcus(math.Acos, 1),
	Atan: total(math.Atan),
	SinDeg: total(func(x float64) float64 {
		return math.Sin(x * degToRad)
	}),
	CosDeg: total(func(x float64) float64 {
		return math.Cos(x * degToRad)
	}),
	TanDeg: func(x float64) (float64, Kind) {
		if math.Abs(math.Mod(x, 180)) == 90 {
			return 0, TangentUndefined
		}
		return math.Tan(x * degToRad), kindNone
	},
	AsinDeg: arcus(math.Asin, radToDeg),
	AcosDeg: arcus(math.Acos, radToDeg),
	AtanDeg: total(func(x float64) float64 {
		return math.Atan(x) * radToDeg
	}),
	Ln:  logarithm(math.Log),
	Log: logarithm(math.Log10),
	Abs: total(math.Abs),
	Fac: factorial,
}

var dyadics = [opCount]dyadic{
	Add:  func(x, y float64) (float64, Kind) { return x + y, kindNone },
	Sub:  func(x, y float64) (float64, Kind) { return x - y, kindNone },
	Mult: func(x, y float64) (float64, Kind) { return x * y, kindNone },
	Div: func(x, y float64) (float64, Kind) {
		if y == 0 {
			return 0, ZeroDivision
		}
		return x / y, kindNone
	},
	// Mod is the remainder with the sign of the dividend, never an error.
	Mod: func(x, y float64) (float64, Kind) { return math.Mod(x, y), kindNone },
	Pow: func(x, y float64) (float64, Kind) {
		switch {
		case x < 0 && math.Trunc(y) != y:
			return 0, NegativeFractionalExponent
		case x == 0 && y < 0:
			return 0, ZeroNegativeExponent
		}
		return math.Pow(x, y), kindNone
	},
}

// total wraps a function defined on all reals.
func total(f func(float64) float64) monadic {
	return func(x float64) (float64, Kind) {
		return f(x), kindNone
	}
}

// arcus wraps an inverse trigonometric function defined on [-1, 1]. The range
// is checked before the result is scaled.
func arcus(f func(float64) float64, scale float64) monadic {
	return func(x float64) (float64, Kind) {
		if x < -1 || x > 1 {
			return 0, ArcusOutOfRange
		}
		return f(x) * scale, kindNone
	}
}

// logarithm wraps a logarithm defined on the positive reals.
func logarithm(f func(float64) float64) monadic {
	return func(x float64) (float64, Kind) {
		if x <= 0 {
			return 0, LogOutOfRange
		}
		return f(x), kindNone
	}
}

// factorial computes n! for integral n. For negative n, the result is
// -(|n|!). The product saturates at infinity.
func factorial(n float64) (float64, Kind) {
	if math.Trunc(n) != n {
		return 0, FacInputNotInt
	}
	r := 1.0
	if n < 0 {
		r = -1
	}
	m := math.Abs(n)
	for i := 2.0; i <= m && !math.IsInf(r, 0); i++ {
		r *= i
	}
	return r, kindNone
}

// apply pops the operands of op from the stack and pushes its result. Binary
// operands are popped right first.
func apply(stack *arraystack.Stack[float64], op Operator) error {
	if op.Kind.Unary() {
		f := monadics[op.Kind]
		x, ok := stack.Pop()
		if !ok || f == nil {
			return fail(InvalidToken, op.Col)
		}
		r, kind := f(x)
		if kind != kindNone {
			return fail(kind, op.Col)
		}
		stack.Push(r)
		return nil
	}
	var f dyadic
	if op.Kind.valid() {
		f = dyadics[op.Kind]
	}
	y, ok := stack.Pop()
	if !ok || f == nil {
		return fail(InvalidToken, op.Col)
	}
	x, ok := stack.Pop()
	if !ok {
		return fail(InvalidToken, op.Col)
	}
	r, kind := f(x, y)
	if kind != kindNone {
		return fail(kind, op.Col)
	}
	stack.Push(r)
	return nil
}
