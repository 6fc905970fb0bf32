// Package calc implements a floating-point calculator for arithmetic and
// trigonometric expressions.
//
// Expressions use the binary operators + - * / % ^, parentheses, the unary
// functions sin cos tan asin acos atan, their degree forms sind cosd tand
// asind acosd atand, and ln log abs fac, and the constant pi. Functions apply
// to the operand that follows them with or without parentheses, so
// "sin cos -90" and "sin(cos(-90))" are the same. A single + or - may precede
// any operand.
//
// Evaluation happens in four stages: lexing into tokens, checking the grammar,
// converting to postfix order, and reducing the postfix form. The first stage
// to fail reports an *Error with the kind of failure and the column of the
// offending input.
package calc
