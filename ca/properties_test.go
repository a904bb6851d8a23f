package ca

import (
	"math/rand"
	"testing"

	"calcium/context"
)

// These mirror original_source's t-properties.c: bulk, randomized checks
// of ring-axiom invariants over RandTest-generated elements of the
// Q/Q(i)/Q(sqrt2) tower, rather than a handful of hand-picked examples.
const propertyTrials = 200

func TestPropertyAddCommutative(t *testing.T) {
	c := context.NewDefault()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < propertyTrials; i++ {
		x, y := RandTest(c, r), RandTest(c, r)
		if !EqualRepr(Add(x, y), Add(y, x)) {
			t.Fatalf("Add not commutative for x=%v y=%v", x, y)
		}
	}
}

func TestPropertyMulCommutative(t *testing.T) {
	c := context.NewDefault()
	r := rand.New(rand.NewSource(2))
	for i := 0; i < propertyTrials; i++ {
		x, y := RandTest(c, r), RandTest(c, r)
		if !EqualRepr(Mul(x, y), Mul(y, x)) {
			t.Fatalf("Mul not commutative for x=%v y=%v", x, y)
		}
	}
}

func TestPropertyAddAssociative(t *testing.T) {
	c := context.NewDefault()
	r := rand.New(rand.NewSource(3))
	for i := 0; i < propertyTrials; i++ {
		x, y, z := RandTest(c, r), RandTest(c, r), RandTest(c, r)
		lhs := Add(Add(x, y), z)
		rhs := Add(x, Add(y, z))
		if !EqualRepr(lhs, rhs) {
			t.Fatalf("Add not associative for x=%v y=%v z=%v", x, y, z)
		}
	}
}

func TestPropertyMulAssociative(t *testing.T) {
	c := context.NewDefault()
	r := rand.New(rand.NewSource(4))
	for i := 0; i < propertyTrials; i++ {
		x, y, z := RandTest(c, r), RandTest(c, r), RandTest(c, r)
		lhs := Mul(Mul(x, y), z)
		rhs := Mul(x, Mul(y, z))
		if !EqualRepr(lhs, rhs) {
			t.Fatalf("Mul not associative for x=%v y=%v z=%v", x, y, z)
		}
	}
}

func TestPropertyDistributive(t *testing.T) {
	c := context.NewDefault()
	r := rand.New(rand.NewSource(5))
	for i := 0; i < propertyTrials; i++ {
		x, y, z := RandTest(c, r), RandTest(c, r), RandTest(c, r)
		lhs := Mul(x, Add(y, z))
		rhs := Add(Mul(x, y), Mul(x, z))
		if !EqualRepr(lhs, rhs) {
			t.Fatalf("Mul not distributive over Add for x=%v y=%v z=%v", x, y, z)
		}
	}
}

func TestPropertySubIsAddNeg(t *testing.T) {
	c := context.NewDefault()
	r := rand.New(rand.NewSource(6))
	for i := 0; i < propertyTrials; i++ {
		x, y := RandTest(c, r), RandTest(c, r)
		if !EqualRepr(Sub(x, y), Add(x, Neg(y))) {
			t.Fatalf("Sub(x,y) != Add(x,Neg(y)) for x=%v y=%v", x, y)
		}
	}
}

func TestPropertySelfSubtractionIsZero(t *testing.T) {
	c := context.NewDefault()
	r := rand.New(rand.NewSource(7))
	zero := Zero(c)
	for i := 0; i < propertyTrials; i++ {
		x := RandTest(c, r)
		if !EqualRepr(Sub(x, x), zero) {
			t.Fatalf("x-x != 0 for x=%v", x)
		}
	}
}

func TestPropertyAddZeroIdentity(t *testing.T) {
	c := context.NewDefault()
	r := rand.New(rand.NewSource(8))
	zero := Zero(c)
	for i := 0; i < propertyTrials; i++ {
		x := RandTest(c, r)
		if !EqualRepr(Add(x, zero), x) {
			t.Fatalf("x+0 != x for x=%v", x)
		}
	}
}

func TestPropertyMulOneIdentity(t *testing.T) {
	c := context.NewDefault()
	r := rand.New(rand.NewSource(9))
	one := One(c)
	for i := 0; i < propertyTrials; i++ {
		x := RandTest(c, r)
		if !EqualRepr(Mul(x, one), x) {
			t.Fatalf("x*1 != x for x=%v", x)
		}
	}
}
