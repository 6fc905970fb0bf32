package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceStack(t *testing.T) {
	s := NewSequence()
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push(num(1, 0))
	s.Push(op(Add, 1))
	s.Append(num(2, 2), paren(Right, 3))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, "1 + 2 )", s.String())

	tok, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, paren(Right, 3), tok)
	tok, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, paren(Right, 3), tok)
	assert.Equal(t, 3, s.Len())

	tok, ok = s.At(1)
	require.True(t, ok)
	assert.Equal(t, op(Add, 1), tok)
	_, ok = s.At(3)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)

	s.Set(0, num(5, 0))
	s.Set(3, num(6, 3))
	s.Set(-1, num(6, 3))
	assert.Equal(t, []Token{num(5, 0), op(Add, 1), num(2, 2)}, s.Tokens())

	s.Reset()
	assert.Zero(t, s.Len())
	assert.Equal(t, "", s.String())
}

func TestSequenceTokensCopy(t *testing.T) {
	s := NewSequence(num(1, 0))
	toks := s.Tokens()
	toks[0] = num(2, 0)
	tok, _ := s.At(0)
	assert.Equal(t, num(1, 0), tok)
}

type recordPool struct {
	put []*Sequence
}

func (p *recordPool) Get() *Sequence { return NewSequence() }
func (p *recordPool) Put(s *Sequence) { p.put = append(p.put, s) }

func TestSequenceRelease(t *testing.T) {
	p := new(recordPool)
	ctx := NewContext(WithPool(p))
	s := ctx.get()
	s.Append(num(1, 0), num(2, 1))
	s.Release()
	require.Len(t, p.put, 1)
	assert.Same(t, s, p.put[0])
	assert.Zero(t, s.Len(), "released sequence not emptied")

	// Releasing again, or releasing unpooled sequences, is a no-op.
	s.Release()
	NewSequence(num(1, 0)).Release()
	var nilseq *Sequence
	nilseq.Release()
	assert.Len(t, p.put, 1)
}

func TestSyncPool(t *testing.T) {
	ctx := NewContext()
	for i := 0; i < 10; i++ {
		s := ctx.get()
		assert.Zero(t, s.Len())
		s.Push(num(float64(i), 0))
		s.Release()
	}
}
