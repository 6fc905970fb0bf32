package calc

import "unicode/utf8"

// Convert lexes and validates src, then converts it to postfix order. Unary
// signs are folded away: a + sign is dropped, and a - sign either negates the
// number that follows it or becomes a Neg operator. The caller owns the
// result and may Release it when done.
func (ctx *Context) Convert(src string) (*Sequence, error) {
	buf := ctx.get()
	defer buf.Release()
	if err := lexInto(src, buf); err != nil {
		ctx.failed("lex", src, err)
		return nil, err
	}
	if err := Check(buf, utf8.RuneCountInString(src)); err != nil {
		ctx.failed("check", src, err)
		return nil, err
	}
	stack := ctx.get()
	defer stack.Release()
	out := ctx.get()
	shunt(buf, out, stack)
	ctx.log.V(2).Info("converted", "src", src, "postfix", out.String())
	return out, nil
}

// shunt converts the valid infix tokens in in to postfix, appending them to
// out. stack must be empty; it holds pending operators and left parentheses.
// Numbers in in may be negated in place.
func shunt(in, out, stack *Sequence) {
	// sign is whether a + or - at this point is a sign rather than a binary
	// operator, i.e. we are at the start or just after an operator or (.
	sign := true
	for i := 0; i < in.Len(); i++ {
		tok, _ := in.At(i)
		switch tok := tok.(type) {
		case Number:
			out.Append(tok)
			sign = false
		case Paren:
			if tok.Side == Left {
				stack.Push(tok)
				sign = true
				continue
			}
			for {
				top, ok := stack.Pop()
				if !ok || isParen(top, Left) {
					break
				}
				out.Append(top)
			}
			sign = false
		case Operator:
			if sign && (tok.Kind == Add || tok.Kind == Sub) {
				if tok.Kind == Sub {
					negate(in, i+1, stack, tok.Col)
				}
				continue
			}
			resolve(tok, out, stack)
			sign = true
		}
	}
	for {
		top, ok := stack.Pop()
		if !ok {
			break
		}
		out.Append(top)
	}
}

// negate applies a - sign at col to the token at index i of in. A number is
// negated directly. Anything else is a ( or a unary function, so a Neg
// operator goes on the stack to wrap it.
func negate(in *Sequence, i int, stack *Sequence, col int) {
	next, _ := in.At(i)
	switch next := next.(type) {
	case Number:
		next.Value = -next.Value
		in.Set(i, next)
	case Paren, Operator:
		stack.Push(Operator{Kind: Neg, Col: col})
	}
}

// resolve moves operators that bind at least as tightly as op from the stack to
// out, then pushes op. Unary operators of equal precedence stay on the stack,
// so they group right to left; binary ones are popped, so they group left to
// right.
func resolve(op Operator, out, stack *Sequence) {
	prec := op.Kind.Precedence()
	for {
		top, ok := stack.Peek()
		if !ok {
			break
		}
		t, ok := top.(Operator)
		if !ok {
			// Left parenthesis.
			break
		}
		p := t.Kind.Precedence()
		if p < prec || p == prec && op.Kind.Unary() {
			break
		}
		stack.Pop()
		out.Append(t)
	}
	stack.Push(op)
}
