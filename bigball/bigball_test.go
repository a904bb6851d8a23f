package bigball

import (
	"math/big"
	"testing"
)

func TestExactArithmetic(t *testing.T) {
	a := Exact(2, 0, 128)
	b := Exact(3, 0, 128)
	sum := Add(a, b)
	if sum.ReMid.Cmp(big.NewFloat(5)) != 0 {
		t.Fatalf("2+3 mid = %s, want 5", sum.ReMid.String())
	}
	if sum.ContainsZero() {
		t.Fatalf("5 should not contain zero")
	}
}

func TestMulRadiusPropagation(t *testing.T) {
	x := &Ball{
		ReMid: big.NewFloat(1).SetPrec(64),
		ReRad: big.NewFloat(0.1).SetPrec(64),
		ImMid: big.NewFloat(0).SetPrec(64),
		ImRad: big.NewFloat(0).SetPrec(64),
	}
	y := &Ball{
		ReMid: big.NewFloat(1).SetPrec(64),
		ReRad: big.NewFloat(0.1).SetPrec(64),
		ImMid: big.NewFloat(0).SetPrec(64),
		ImRad: big.NewFloat(0).SetPrec(64),
	}
	prod := Mul(x, y)
	if prod.ReRad.Sign() <= 0 {
		t.Fatalf("product of two nonzero-radius balls should have positive radius")
	}
}

func TestContainsZero(t *testing.T) {
	b := Exact(0.001, 0, 64)
	b.ReRad.SetFloat64(0.01)
	if !b.ContainsZero() {
		t.Fatalf("ball around 0.001 with radius 0.01 should contain zero")
	}
	b2 := Exact(1, 0, 64)
	if b2.ContainsZero() {
		t.Fatalf("ball around 1 with zero radius should not contain zero")
	}
}

func TestSignAndCompare(t *testing.T) {
	a := Exact(5, 0, 64)
	b := Exact(3, 0, 64)
	less, greater := Compare(a, b)
	if less || !greater {
		t.Fatalf("5 should compare greater than 3")
	}
}
