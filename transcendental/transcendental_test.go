package transcendental

import (
	"math/big"
	"testing"

	"calcium/ca"
	"calcium/context"
)

func TestExpZeroIsOne(t *testing.T) {
	c := context.NewDefault()
	r, ok := Exp(c, ca.Zero(c)).Rational()
	if !ok || r.Cmp(big.NewRat(1, 1)) != 0 {
		t.Fatalf("exp(0) should be 1")
	}
}

func TestLogOneIsZero(t *testing.T) {
	c := context.NewDefault()
	r, ok := Log(c, ca.One(c)).Rational()
	if !ok || r.Sign() != 0 {
		t.Fatalf("log(1) should be 0")
	}
}

func TestLogExpCancels(t *testing.T) {
	c := context.NewDefault()
	pi := Pi(c)
	got := Log(c, Exp(c, pi))
	if !ca.EqualRepr(got, pi) {
		t.Fatalf("log(exp(pi)) should simplify back to pi")
	}
}

func TestSqrtOfPerfectSquare(t *testing.T) {
	c := context.NewDefault()
	r, ok := Sqrt(c, ca.FromInt64(c, 9)).Rational()
	if !ok || r.Cmp(big.NewRat(3, 1)) != 0 {
		t.Fatalf("sqrt(9) should be 3")
	}
}

func TestSqrtOfNonSquareIsAlgebraic(t *testing.T) {
	c := context.NewDefault()
	s := Sqrt(c, ca.FromInt64(c, 2))
	if _, ok := s.Rational(); ok {
		t.Fatalf("sqrt(2) should not be rational")
	}
	sq := ca.Mul(s, s)
	r, ok := sq.Rational()
	if !ok || r.Cmp(big.NewRat(2, 1)) != 0 {
		t.Fatalf("sqrt(2)^2 should be 2, got %v", sq)
	}
}

func TestSinCosAtZero(t *testing.T) {
	c := context.NewDefault()
	if r, ok := Sin(c, ca.Zero(c)).Rational(); !ok || r.Sign() != 0 {
		t.Fatalf("sin(0) should be 0")
	}
	if r, ok := Cos(c, ca.Zero(c)).Rational(); !ok || r.Cmp(big.NewRat(1, 1)) != 0 {
		t.Fatalf("cos(0) should be 1")
	}
}
