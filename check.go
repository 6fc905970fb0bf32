package calc

// checker is the state of syntax validation. The checker is always either
// expecting an operand or expecting an operator.
type checker struct {
	operand  bool // expecting an operand
	operator bool // expecting an operator
	lpar     bool // a left parenthesis may appear
	sign     bool // a leading + or - may appear

	left, right int // parentheses seen so far
}

func newChecker() checker {
	return checker{operand: true, lpar: true, sign: true}
}

// Check validates the grammar of a lexed expression without modifying it. end
// is the length of the source in runes; it is the column reported when a left
// parenthesis is never closed. An empty sequence is valid.
func Check(tokens *Sequence, end int) error {
	c := newChecker()
	var last Token
	for i := 0; i < tokens.Len(); i++ {
		tok, _ := tokens.At(i)
		if kind := c.accept(tok); kind != kindNone {
			return fail(kind, tok.Pos())
		}
		last = tok
	}
	if last == nil {
		return nil
	}
	if c.left > c.right {
		return fail(UnmatchedLeftPar, end)
	}
	// The expression must end on an operand or a closed group.
	if _, ok := last.(Number); ok || isParen(last, Right) {
		return nil
	}
	return fail(InvalidToken, last.Pos())
}

// accept advances the state machine over tok. The result is kindNone if tok
// is allowed in the current state.
func (c *checker) accept(tok Token) Kind {
	switch {
	case c.operand:
		return c.acceptOperand(tok)
	case c.operator:
		return c.acceptOperator(tok)
	default:
		return InvalidToken
	}
}

func (c *checker) acceptOperand(tok Token) Kind {
	switch tok := tok.(type) {
	case Number:
		c.operand, c.operator = false, true
		c.sign = true
		return kindNone
	case Paren:
		if c.lpar && tok.Side == Left {
			c.sign = true
			c.left++
			return kindNone
		}
		return InvalidToken
	case Operator:
		switch {
		case c.sign && (tok.Kind == Add || tok.Kind == Sub):
			c.sign = false
			return kindNone
		case tok.Kind.Unary():
			// sin(, sin -3, and sin sin 3 are all fine.
			c.sign = true
			c.lpar = true
			return kindNone
		}
		return InvalidToken
	default:
		return InvalidToken
	}
}

func (c *checker) acceptOperator(tok Token) Kind {
	switch tok := tok.(type) {
	case Paren:
		if tok.Side != Right {
			return InvalidToken
		}
		c.lpar = false
		c.right++
		if c.right > c.left {
			return UnmatchedRightPar
		}
		return kindNone
	case Operator:
		if tok.Kind.Unary() {
			return InvalidToken
		}
		c.operand, c.operator = true, false
		c.lpar = true
		c.sign = true
		return kindNone
	default:
		return InvalidToken
	}
}
