package mpoly

import (
	"math/big"
	"testing"
)

func TestPolyAddMulBasic(t *testing.T) {
	x := Var(2, 0)
	y := Var(2, 1)
	sum := Add(x, y)
	if sum.IsZero() {
		t.Fatalf("x+y should not be zero")
	}
	prod := Mul(x, y)
	c, ok := prod.IsConstant()
	if ok {
		t.Fatalf("x*y should not be constant, got %v", c)
	}
}

func TestPolyEqual(t *testing.T) {
	x := Var(1, 0)
	two := Constant(1, big.NewInt(2))
	a := Add(Mul(x, x), two)
	b := Add(two, Mul(x, x))
	if !a.Equal(b) {
		t.Fatalf("a and b should be structurally equal")
	}
}

func TestQuasiDivRemIdealReducesSquareRootRelation(t *testing.T) {
	// Ideal: x^2 - 2 = 0 (the relation defining sqrt(2)).
	x := Var(1, 0)
	two := Constant(1, big.NewInt(2))
	relation := Sub(Mul(x, x), two)
	ideal := NewIdeal(relation)

	// Reduce x^2 modulo the ideal: should become 2 (possibly scaled).
	xSquared := Mul(x, x)
	rem, scale := ideal.QuasiDivRemIdeal(xSquared)

	// scale*x^2 - rem should be a multiple of (x^2-2), i.e. rem should be
	// a scalar multiple of 2.
	c, ok := rem.IsConstant()
	if !ok {
		t.Fatalf("x^2 reduced mod (x^2-2) should be constant, got %s", rem.String())
	}
	_ = scale
	if c.Sign() == 0 {
		t.Fatalf("reduced x^2 should not be zero")
	}
}

func TestRatFuncCanonicalize(t *testing.T) {
	x := Var(1, 0)
	num := Scale(x, big.NewInt(6))
	den := Constant(1, big.NewInt(4))
	rf := Canonicalize(&RatFunc{Num: num, Den: den})
	// 6x/4 should canonicalize to 3x/2.
	nc := rf.Num.Content()
	dc := rf.Den.Content()
	g := new(big.Int).GCD(nil, nil, nc, dc)
	if g.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("canonicalized fraction should have coprime content, got gcd=%s", g.String())
	}
}

func TestInvRat(t *testing.T) {
	x := Var(1, 0)
	rf := FromPoly(x)
	inv := InvRat(rf)
	if !inv.Num.Equal(Constant(1, big.NewInt(1))) {
		t.Fatalf("1/x numerator should be 1, got %s", inv.Num.String())
	}
}
