package ca

import (
	"math/big"
	"testing"

	"calcium/context"
	"calcium/qqbar"
)

func newCtx() *context.Context {
	return context.NewDefault()
}

func sqrt2(c *context.Context) *Ca {
	g := c.ExtForQQbar(qqbar.SqrtOfInt(2, c.Options.LowPrec))
	f := c.FieldForSingleExt(g)
	return fromFieldElem(c, f, nil, nfElem{new(big.Rat), big.NewRat(1, 1)}, nil)
}

func TestSqrt2MinusSqrt2IsZero(t *testing.T) {
	c := newCtx()
	s := sqrt2(c)
	diff := Sub(s, s)
	r, ok := diff.Rational()
	if !ok || r.Sign() != 0 {
		t.Fatalf("sqrt2-sqrt2 should condense to the rational 0, got %v", diff)
	}
}

func TestSqrt2TimesSqrt2IsTwo(t *testing.T) {
	c := newCtx()
	s := sqrt2(c)
	prod := Mul(s, s)
	r, ok := prod.Rational()
	if !ok || r.Cmp(big.NewRat(2, 1)) != 0 {
		t.Fatalf("sqrt2*sqrt2 should condense to the rational 2, got %v", prod)
	}
}

func TestInverseOfSqrt2TimesSqrt2IsOne(t *testing.T) {
	c := newCtx()
	s := sqrt2(c)
	inv := Inv(s)
	prod := Mul(s, inv)
	r, ok := prod.Rational()
	if !ok || r.Cmp(big.NewRat(1, 1)) != 0 {
		t.Fatalf("sqrt2 * 1/sqrt2 should be 1, got %v", prod)
	}
}

func TestIAddNegIIsZero(t *testing.T) {
	c := newCtx()
	sum := Add(I(c), NegI(c))
	r, ok := sum.Rational()
	if !ok || r.Sign() != 0 {
		t.Fatalf("i+(-i) should be 0, got %v", sum)
	}
}

func TestITimesIIsNegOne(t *testing.T) {
	c := newCtx()
	prod := Mul(I(c), I(c))
	r, ok := prod.Rational()
	if !ok || r.Cmp(big.NewRat(-1, 1)) != 0 {
		t.Fatalf("i*i should be -1, got %v", prod)
	}
}

func TestOneOverZeroIsUnsignedInfinity(t *testing.T) {
	c := newCtx()
	res := Div(One(c), Zero(c))
	if res.Kind() != KindUnsignedInfinity {
		t.Fatalf("1/0 should be UnsignedInfinity, got %v", res.Kind())
	}
}

func TestPosInfPlusNegInfIsUndefined(t *testing.T) {
	c := newCtx()
	res := Add(PosInf(c), NegInf(c))
	if res.Kind() != KindUndefined {
		t.Fatalf("(+inf)+(-inf) should be Undefined, got %v", res.Kind())
	}
}

func TestPosInfPlusFiniteIsPosInf(t *testing.T) {
	c := newCtx()
	res := Add(PosInf(c), FromInt64(c, 5))
	if res.Kind() != KindSignedInfinity || !EqualRepr(res.Direction(), One(c)) {
		t.Fatalf("(+inf)+5 should stay +inf, got %v", res)
	}
}

func TestMergeDifferentFields(t *testing.T) {
	c := newCtx()
	s := sqrt2(c)
	sum := Add(s, I(c))
	if sum.Field().NVars() != 2 {
		t.Fatalf("sqrt(2)+i should live in a 2-generator field, got %d", sum.Field().NVars())
	}
	back := Sub(sum, I(c))
	r, ok := back.Rational()
	_ = r
	if ok {
		t.Fatalf("sqrt(2)+i-i should condense back to sqrt(2), not a rational")
	}
}

func TestEqualReprReflexive(t *testing.T) {
	c := newCtx()
	x := FromInt64(c, 7)
	if !EqualRepr(x, x) {
		t.Fatalf("EqualRepr should be reflexive")
	}
	if !EqualRepr(x, FromInt64(c, 7)) {
		t.Fatalf("two Ca values with the same rational payload should EqualRepr")
	}
}
