package calc

import (
	"strings"
	"sync"

	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// Sequence is an ordered, growable list of tokens. Depending on the stage that
// produced it, the order is either source order or postfix evaluation order.
// A Sequence is never shared between stages.
type Sequence struct {
	list *arraylist.List[Token]
	// pool is the pool the sequence returns to on Release, or nil if the
	// sequence is not pooled or has already been released.
	pool Pool
}

// NewSequence creates an unpooled sequence holding toks.
func NewSequence(toks ...Token) *Sequence {
	return &Sequence{list: arraylist.New[Token](toks...)}
}

// Append adds tokens to the end of the sequence.
func (s *Sequence) Append(toks ...Token) {
	s.list.Add(toks...)
}

// Push adds a token to the end of the sequence, treating it as a stack.
func (s *Sequence) Push(tok Token) {
	s.list.Add(tok)
}

// Pop removes and returns the last token. If the sequence is empty, the
// result is nil, false.
func (s *Sequence) Pop() (Token, bool) {
	n := s.list.Size()
	if n == 0 {
		return nil, false
	}
	tok, _ := s.list.Get(n - 1)
	s.list.Remove(n - 1)
	return tok, true
}

// Peek returns the last token without removing it.
func (s *Sequence) Peek() (Token, bool) {
	return s.list.Get(s.list.Size() - 1)
}

// At returns the token at index i. If i is out of range, the result is
// nil, false.
func (s *Sequence) At(i int) (Token, bool) {
	return s.list.Get(i)
}

// Set replaces the token at index i. It does nothing if i is out of range.
func (s *Sequence) Set(i int, tok Token) {
	if i < 0 || i >= s.list.Size() {
		return
	}
	s.list.Set(i, tok)
}

// Len returns the number of tokens in the sequence.
func (s *Sequence) Len() int {
	return s.list.Size()
}

// Tokens returns a copy of the tokens in order.
func (s *Sequence) Tokens() []Token {
	return s.list.Values()
}

// Reset removes all tokens.
func (s *Sequence) Reset() {
	s.list.Clear()
}

// Release returns a pooled sequence to its pool. The sequence must not be used
// afterward. Releasing an unpooled or already released sequence does nothing.
func (s *Sequence) Release() {
	if s == nil || s.pool == nil {
		return
	}
	p := s.pool
	s.pool = nil
	s.list.Clear()
	p.Put(s)
}

// String renders the tokens separated by single spaces.
func (s *Sequence) String() string {
	var b strings.Builder
	for i, tok := range s.list.Values() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

// Pool supplies the sequences each stage of evaluation works in. Every
// sequence obtained from a pool during a call is returned to it before the
// call completes, except the postfix sequence returned by Context.Convert,
// which the caller releases.
type Pool interface {
	// Get returns an empty sequence.
	Get() *Sequence
	// Put receives a released, empty sequence.
	Put(*Sequence)
}

// syncPool is the default Pool.
type syncPool struct {
	p sync.Pool
}

func newSyncPool() *syncPool {
	return &syncPool{p: sync.Pool{New: func() any { return NewSequence() }}}
}

func (p *syncPool) Get() *Sequence {
	return p.p.Get().(*Sequence)
}

func (p *syncPool) Put(s *Sequence) {
	p.p.Put(s)
}
