package convert

import (
	"math/big"
	"testing"

	"calcium/ca"
	"calcium/context"
	"calcium/qqbar"
)

func newCtx() *context.Context {
	return context.NewDefault()
}

func sqrt2(c *context.Context) *ca.Ca {
	g := c.ExtForQQbar(qqbar.SqrtOfInt(2, c.Options.LowPrec))
	return ca.EmbedExt(c, g)
}

func TestToRationalAndInteger(t *testing.T) {
	c := newCtx()
	half := ca.FromRat(c, big.NewRat(1, 2))
	r, ok := ToRational(half)
	if !ok || r.Cmp(big.NewRat(1, 2)) != 0 {
		t.Fatalf("ToRational(1/2) failed")
	}
	if _, ok := ToInteger(half); ok {
		t.Fatalf("1/2 should not be an integer")
	}
	n, ok := ToInteger(ca.FromInt64(c, 7))
	if !ok || n.Int64() != 7 {
		t.Fatalf("ToInteger(7) failed")
	}
}

func TestToQQbarRoundTrip(t *testing.T) {
	c := newCtx()
	s := sqrt2(c)
	alg, ok := ToQQbar(s)
	if !ok {
		t.Fatalf("ToQQbar(sqrt(2)) should succeed")
	}
	if alg.Degree() != 2 {
		t.Fatalf("expected degree 2, got %d", alg.Degree())
	}
}

func TestToBallExcludesZero(t *testing.T) {
	c := newCtx()
	one := ca.FromInt64(c, 1)
	b := ToBall(one, 64)
	if !b.ExcludesZero() {
		t.Fatalf("ball for 1 should exclude zero")
	}
}

func TestToDecimalString(t *testing.T) {
	c := newCtx()
	half := ca.FromRat(c, big.NewRat(1, 2))
	if got := ToDecimalString(half, 6); got != "0.5" {
		t.Fatalf("unexpected decimal string %q", got)
	}
	if got := ToDecimalString(ca.Undefined(c), 6); got != "Undefined" {
		t.Fatalf("unexpected special string %q", got)
	}
}

func TestFactor(t *testing.T) {
	c := newCtx()
	x := ca.FromInt64(c, 12)
	fs := Factor(x, ZZFull)
	total := map[int64]int{}
	for _, f := range fs {
		r, _ := f.Base.Rational()
		total[r.Num().Int64()] += f.Exp
	}
	if total[2] != 2 || total[3] != 1 {
		t.Fatalf("expected 12 = 2^2 * 3, got %v", total)
	}
}

func TestSymbolicExpressionRoundTrip(t *testing.T) {
	c := newCtx()
	x := ca.FromRat(c, big.NewRat(3, 4))
	e := ToSymbolicExpression(x)
	back, ok := FromSymbolicExpression(c, e)
	if !ok {
		t.Fatalf("round trip of rational failed")
	}
	if !ca.EqualRepr(back, x) {
		t.Fatalf("round-tripped value differs: %v vs %v", back, x)
	}

	s := sqrt2(c)
	e2 := ToSymbolicExpression(s)
	back2, ok := FromSymbolicExpression(c, e2)
	if !ok {
		t.Fatalf("round trip of sqrt(2) failed")
	}
	if !ca.EqualRepr(back2, s) {
		t.Fatalf("round-tripped sqrt(2) differs: %v vs %v", back2, s)
	}
}

func TestSymbolicExpressionSpecials(t *testing.T) {
	c := newCtx()
	inf := ca.PosInf(c)
	e := ToSymbolicExpression(inf)
	back, ok := FromSymbolicExpression(c, e)
	if !ok || back.Kind() != ca.KindSignedInfinity {
		t.Fatalf("round trip of +infinity failed")
	}
}
