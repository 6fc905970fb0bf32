package calc

import (
	"github.com/emirpasic/gods/v2/stacks/arraystack"
	"github.com/go-logr/logr"
)

// Context is a context for evaluating expressions. A Context holds only
// configuration, so it is safe to use concurrently as long as its Pool is.
type Context struct {
	pool    Pool
	log     logr.Logger
	metrics *Metrics
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	poolopt    struct{ p Pool }
	logopt     struct{ l logr.Logger }
	metricsopt struct{ m *Metrics }
)

func (poolopt) ctxOption()    {}
func (logopt) ctxOption()     {}
func (metricsopt) ctxOption() {}

// WithPool sets the pool that supplies token sequences.
func WithPool(p Pool) ContextOption {
	return poolopt{p}
}

// WithLogger sets the logger for diagnostics. Stage failures are logged at
// V(1), intermediate forms at V(2).
func WithLogger(l logr.Logger) ContextOption {
	return logopt{l}
}

// WithMetrics sets the metrics that evaluations are recorded to.
func WithMetrics(m *Metrics) ContextOption {
	return metricsopt{m}
}

// NewContext creates a new evaluation context. By default, the context has its
// own sequence pool, discards logs, and records no metrics.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{log: logr.Discard()}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case poolopt:
			n.pool = opt.p
		case logopt:
			n.log = opt.l
		case metricsopt:
			n.metrics = opt.m
		default:
			panic("calc: unknown option type")
		}
	}
	if n.pool == nil {
		n.pool = newSyncPool()
	}
	return &n
}

// get obtains an empty sequence from the context's pool.
func (ctx *Context) get() *Sequence {
	s := ctx.pool.Get()
	s.Reset()
	s.pool = ctx.pool
	return s
}

// failed logs an error from a stage of evaluation.
func (ctx *Context) failed(stage, src string, err error) {
	if e, ok := err.(*Error); ok {
		ctx.log.V(1).Info("evaluation failed", "stage", stage, "src", src, "kind", e.Kind.String(), "col", e.Col)
		return
	}
	ctx.log.V(1).Info("evaluation failed", "stage", stage, "src", src, "err", err)
}

// Lex scans src into tokens in source order. The caller owns the result and may
// Release it when done.
func (ctx *Context) Lex(src string) (*Sequence, error) {
	out := ctx.get()
	if err := lexInto(src, out); err != nil {
		out.Release()
		ctx.failed("lex", src, err)
		return nil, err
	}
	return out, nil
}

// Eval evaluates an expression and returns its result. The empty expression
// evaluates to 0.
func (ctx *Context) Eval(src string) (float64, error) {
	postfix, err := ctx.Convert(src)
	if err != nil {
		ctx.metrics.observe(-1, err)
		return 0, err
	}
	defer postfix.Release()
	r, err := ctx.EvalPostfix(postfix)
	ctx.metrics.observe(postfix.Len(), err)
	if err != nil {
		ctx.failed("eval", src, err)
		return 0, err
	}
	ctx.log.V(2).Info("evaluated", "src", src, "result", r)
	return r, nil
}

// EvalPostfix reduces a postfix sequence to a single value. The empty sequence
// evaluates to 0. Arithmetic errors are reported at the column of the
// operator that failed. A sequence that does not reduce to exactly one value,
// e.g. one built by hand with a missing operand, yields InvalidToken.
func (ctx *Context) EvalPostfix(postfix *Sequence) (float64, error) {
	stack := arraystack.New[float64]()
	var last Token
	for i := 0; i < postfix.Len(); i++ {
		tok, _ := postfix.At(i)
		switch tok := tok.(type) {
		case Number:
			stack.Push(tok.Value)
		case Operator:
			if err := apply(stack, tok); err != nil {
				return 0, err
			}
		default:
			return 0, fail(InvalidToken, tok.Pos())
		}
		last = tok
	}
	switch stack.Size() {
	case 0:
		return 0, nil
	case 1:
		r, _ := stack.Pop()
		return r, nil
	default:
		return 0, fail(InvalidToken, last.Pos())
	}
}

var std = NewContext()

// Lex is a shortcut to lex an expression with a default context.
func Lex(src string) (*Sequence, error) {
	return std.Lex(src)
}

// Convert is a shortcut to convert an expression to postfix with a default
// context.
func Convert(src string) (*Sequence, error) {
	return std.Convert(src)
}

// EvalPostfix is a shortcut to evaluate a postfix sequence with a default
// context.
func EvalPostfix(postfix *Sequence) (float64, error) {
	return std.EvalPostfix(postfix)
}

// Eval is a shortcut to evaluate an expression with a default context.
func Eval(src string) (float64, error) {
	return std.Eval(src)
}
