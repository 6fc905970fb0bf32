package calc_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/cel-go/cel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
)

// celEval evaluates an arithmetic expression with CEL. Every literal in src
// must be written as a double, e.g. 2.0, since CEL does not mix int and
// double operands.
func celEval(t *testing.T, env *cel.Env, src string) float64 {
	t.Helper()
	ast, iss := env.Compile(src)
	if iss != nil && iss.Err() != nil {
		t.Fatalf("CEL rejected %q: %v", src, iss.Err())
	}
	prg, err := env.Program(ast)
	require.NoError(t, err)
	val, _, err := prg.Eval(map[string]any{})
	require.NoError(t, err, "evaluating %q", src)
	r, ok := val.Value().(float64)
	require.True(t, ok, "%q evaluated to %T", src, val.Value())
	return r
}

func TestAgainstCEL(t *testing.T) {
	env, err := cel.NewEnv()
	require.NoError(t, err)
	cases := []string{
		"1.0",
		"-1.5",
		"10.0/5.0",
		"456.0-41.0-675.0*8.0-15.0",
		"(456.0-41.0-675.0)*8.0-15.0",
		"(1.0+-4.0/2.5)*16.0-1.0/5.0",
		"-(2.0+3.0) + 1.0",
		"-(3.0/6.0) + 1.0",
		"2.0 - -3.0",
		"8.0/2.0/2.0",
		"8.0/2.0*2.0",
		"1.0 - 2.0 + 3.0 * 4.0 / 5.0 - -6.0",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			r, err := calc.Eval(src)
			require.NoError(t, err)
			assert.Equal(t, celEval(t, env, src), r)
		})
	}
}

// arith generates random arithmetic expressions that CEL and calc must
// agree on exactly. Division is only ever by a nonzero literal.
type arith struct {
	rng *rand.Rand
	b   strings.Builder
}

func (g *arith) literal() {
	g.b.WriteString(strconv.Itoa(1 + g.rng.Intn(999)))
	g.b.WriteString([]string{".0", ".5", ".25", ".125"}[g.rng.Intn(4)])
}

func (g *arith) expr(depth int) {
	n := 1 + g.rng.Intn(3)
	for i := 0; i < n; i++ {
		if i > 0 {
			g.b.WriteString([]string{" + ", " - "}[g.rng.Intn(2)])
		}
		g.term(depth)
	}
}

func (g *arith) term(depth int) {
	g.factor(depth)
	n := g.rng.Intn(3)
	for i := 0; i < n; i++ {
		if g.rng.Intn(2) == 0 {
			g.b.WriteString(" * ")
			g.factor(depth)
		} else {
			g.b.WriteString(" / ")
			g.literal()
		}
	}
}

func (g *arith) factor(depth int) {
	if g.rng.Intn(4) == 0 {
		g.b.WriteByte('-')
	}
	if depth > 0 && g.rng.Intn(3) == 0 {
		g.b.WriteByte('(')
		g.expr(depth - 1)
		g.b.WriteByte(')')
		return
	}
	g.literal()
}

func TestRandomAgainstCEL(t *testing.T) {
	env, err := cel.NewEnv()
	require.NoError(t, err)
	g := arith{rng: rand.New(rand.NewSource(1))}
	for i := 0; i < 500; i++ {
		g.b.Reset()
		g.expr(3)
		src := g.b.String()
		r, err := calc.Eval(src)
		require.NoError(t, err, "%q", src)
		require.Equal(t, celEval(t, env, src), r, "%q", src)
	}
}
