//go:build go1.18
// +build go1.18

package calc_test

import (
	"errors"
	"math"
	"testing"
	"unicode/utf8"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("1 + 2")
	f.Add("-sin cos -tan -90")
	f.Add("(((8+9)*10)^2)-(1+2-3*4/5^6%2-1)")
	f.Add("fac -5")
	f.Add("1..2")
	f.Add("1Ã—2")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calc.Eval(s)
		if err == nil {
			return
		}
		var e *calc.Error
		if !errors.As(err, &e) {
			t.Fatalf("%q: error %v is not *calc.Error", s, err)
		}
		if e.Col < 0 || e.Col > utf8.RuneCountInString(s) {
			t.Errorf("%q: column %d out of range", s, e.Col)
		}
		if r != 0 {
			t.Errorf("%q: nonzero result %v with error", s, r)
		}
	})
}

func FuzzConvert(f *testing.F) {
	f.Add("1 + 2")
	f.Add(" - (5)")
	f.Add("sin cos tan 90")
	f.Add("2^-(1)*3")
	f.Add("(1")
	f.Fuzz(func(t *testing.T, s string) {
		p := new(countingPool)
		ctx := calc.NewContext(calc.WithPool(p))
		want, werr := ctx.Eval(s)
		postfix, err := ctx.Convert(s)
		if err != nil {
			if werr == nil || !errors.Is(werr, err) {
				t.Fatalf("%q: Convert failed with %v but Eval gave %v", s, err, werr)
			}
			if p.Live() != 0 {
				t.Fatalf("%q: %d sequences live after failed conversion", s, p.Live())
			}
			return
		}
		got, err := ctx.EvalPostfix(postfix)
		postfix.Release()
		if (err == nil) != (werr == nil) || err != nil && !errors.Is(err, werr) {
			t.Errorf("%q: EvalPostfix gave %v but Eval gave %v", s, err, werr)
		}
		if got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
			t.Errorf("%q: EvalPostfix gave %v but Eval gave %v", s, got, want)
		}
		if p.Live() != 0 {
			t.Errorf("%q: %d sequences live after release", s, p.Live())
		}
	})
}
