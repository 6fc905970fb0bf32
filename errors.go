package calc

import "strconv"

// Kind classifies an evaluation error.
type Kind int8

const (
	kindNone Kind = iota

	// Lexical errors.
	MultipleDecimalPoints
	NumEndsWithDot
	InvalidInputCharacter

	// Grammatical errors.
	InvalidToken
	UnmatchedLeftPar
	UnmatchedRightPar

	// Arithmetic errors.
	ZeroDivision
	NegativeFractionalExponent
	ZeroNegativeExponent
	TangentUndefined
	ArcusOutOfRange
	LogOutOfRange
	FacInputNotInt

	kindCount
)

var kinds = [kindCount]struct {
	name  string
	class string
	msg   string
}{
	kindNone:                   {"None", "", ""},
	MultipleDecimalPoints:      {"MultipleDecimalPoints", "SyntaxError", "Multiple decimal points in number"},
	NumEndsWithDot:             {"NumEndsWithDot", "SyntaxError", "Number ending with decimal point"},
	InvalidInputCharacter:      {"InvalidInputCharacter", "SyntaxError", "Invalid input"},
	InvalidToken:               {"InvalidToken", "SyntaxError", "Invalid token"},
	UnmatchedLeftPar:           {"UnmatchedLeftPar", "SyntaxError", "')' expected"},
	UnmatchedRightPar:          {"UnmatchedRightPar", "SyntaxError", "Unmatched right parentheses"},
	ZeroDivision:               {"ZeroDivision", "MathError", "Division by zero"},
	NegativeFractionalExponent: {"NegativeFractionalExponent", "ParseError", "Negative number with fractional exponent not supported"},
	ZeroNegativeExponent:       {"ZeroNegativeExponent", "MathError", "Zero with negative exponent"},
	TangentUndefined:           {"TangentUndefined", "MathError", "Tangent of argument is undefined"},
	ArcusOutOfRange:            {"ArcusOutOfRange", "MathError", "Arcus function argument out of range"},
	LogOutOfRange:              {"LogOutOfRange", "MathError", "Logarithm function argument out of range"},
	FacInputNotInt:             {"FacInputNotInt", "MathError", "Factorial input must be an integer"},
}

func (k Kind) valid() bool {
	return kindNone < k && k < kindCount
}

func (k Kind) String() string {
	if !k.valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// Message returns a human-readable description of the error kind.
func (k Kind) Message() string {
	if !k.valid() {
		return "unknown error"
	}
	return kinds[k].msg
}

// Class returns the category the error kind is reported under: SyntaxError,
// MathError, or ParseError.
func (k Kind) Class() string {
	if !k.valid() {
		return "Error"
	}
	return kinds[k].class
}

// Error is an error from any stage of evaluation. It implements InputError.
type Error struct {
	// Kind is the type of error.
	Kind Kind
	// Col is the zero-based rune offset of the token that caused the error.
	// For UnmatchedLeftPar, it is the length of the input.
	Col int
}

func (err *Error) Error() string {
	return errpos(err.Col, err.Kind.Message())
}

func (err *Error) Pos() int {
	return err.Col
}

// Is reports whether target is an *Error of the same kind, regardless of
// column.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// Errors of each kind for use with errors.Is.
var (
	ErrMultipleDecimalPoints      = &Error{Kind: MultipleDecimalPoints}
	ErrNumEndsWithDot             = &Error{Kind: NumEndsWithDot}
	ErrInvalidInputCharacter      = &Error{Kind: InvalidInputCharacter}
	ErrInvalidToken               = &Error{Kind: InvalidToken}
	ErrUnmatchedLeftPar           = &Error{Kind: UnmatchedLeftPar}
	ErrUnmatchedRightPar          = &Error{Kind: UnmatchedRightPar}
	ErrZeroDivision               = &Error{Kind: ZeroDivision}
	ErrNegativeFractionalExponent = &Error{Kind: NegativeFractionalExponent}
	ErrZeroNegativeExponent       = &Error{Kind: ZeroNegativeExponent}
	ErrTangentUndefined           = &Error{Kind: TangentUndefined}
	ErrArcusOutOfRange            = &Error{Kind: ArcusOutOfRange}
	ErrLogOutOfRange              = &Error{Kind: LogOutOfRange}
	ErrFacInputNotInt             = &Error{Kind: FacInputNotInt}
)

// fail is a shortcut to create an *Error.
func fail(kind Kind, col int) error {
	return &Error{Kind: kind, Col: col}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the zero-based rune offset of the error.
	Pos() int
}

var _ InputError = (*Error)(nil)
