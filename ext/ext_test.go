package ext

import (
	"math/big"
	"testing"

	"calcium/bigball"
	"calcium/qqbar"
)

type stubArg struct {
	n int
}

func (s stubArg) CompareArg(other Arg) int {
	o := other.(stubArg)
	if s.n < o.n {
		return -1
	}
	if s.n > o.n {
		return 1
	}
	return 0
}

func (s stubArg) EnclosureAt(prec uint) Enclosure {
	return bigball.Exact(float64(s.n), 0, prec)
}

func TestCompareAlgebraicBeforeFunction(t *testing.T) {
	alg := NewAlgebraic(qqbar.FromRat(big.NewRat(1, 2), 64))
	fn := NewFunction(HeadPi)
	if Compare(alg, fn) >= 0 {
		t.Fatalf("algebraic extension should sort before function extension")
	}
}

func TestCompareFunctionByHeadThenArgs(t *testing.T) {
	a := NewFunction(HeadExp, stubArg{1})
	b := NewFunction(HeadExp, stubArg{2})
	if Compare(a, b) >= 0 {
		t.Fatalf("Exp(1) should sort before Exp(2)")
	}
	c := NewFunction(HeadLog, stubArg{1})
	if Compare(a, c) >= 0 {
		t.Fatalf("Exp should sort before Log (lower head id)")
	}
}

func TestEqual(t *testing.T) {
	a := NewFunction(HeadSin, stubArg{3})
	b := NewFunction(HeadSin, stubArg{3})
	if !Equal(a, b) {
		t.Fatalf("structurally identical function exts should be equal")
	}
}
