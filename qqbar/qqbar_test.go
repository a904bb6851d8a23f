package qqbar

import (
	"math/big"
	"testing"

	"calcium/bigball"
)

func sqrtTwo(prec bigball.Prec) *Alg {
	mp := intPoly{big.NewInt(-2), big.NewInt(0), big.NewInt(1)} // x^2 - 2
	enc := bigball.Exact(1.4142135623730951, 0, prec)
	return &Alg{MinPoly: mp, Enclosure: enc}
}

func TestRationalFastPath(t *testing.T) {
	a := FromRat(big.NewRat(1, 2), 64)
	b := FromRat(big.NewRat(1, 3), 64)
	sum := Add(a, b, 16)
	r, ok := sum.Rational()
	if !ok {
		t.Fatalf("1/2+1/3 should stay rational")
	}
	if r.Cmp(big.NewRat(5, 6)) != 0 {
		t.Fatalf("got %s want 5/6", r.RatString())
	}
}

func TestNegSqrtTwo(t *testing.T) {
	s := sqrtTwo(64)
	n := Neg(s)
	if n.Degree() != 2 {
		t.Fatalf("neg(sqrt2) should stay degree 2, got %d", n.Degree())
	}
	if n.Enclosure.ReMid.Sign() >= 0 {
		t.Fatalf("neg(sqrt2) should be negative")
	}
}

func TestAddSqrtTwoAndNegSqrtTwo(t *testing.T) {
	s := sqrtTwo(64)
	n := Neg(s)
	sum := Add(s, n, 16)
	r, ok := sum.Rational()
	if !ok {
		t.Fatalf("sqrt2 + (-sqrt2) should collapse to rational 0, got degree %d", sum.Degree())
	}
	if r.Sign() != 0 {
		t.Fatalf("sqrt2 - sqrt2 should be 0, got %s", r.RatString())
	}
}

func TestCmpByDegree(t *testing.T) {
	half := FromRat(big.NewRat(1, 2), 64)
	s := sqrtTwo(64)
	if Cmp(half, s) >= 0 {
		t.Fatalf("rational (degree 1) should sort before sqrt(2) (degree 2)")
	}
}
