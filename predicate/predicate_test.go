package predicate

import (
	"math/big"
	"testing"

	"calcium/ca"
	"calcium/context"
	"calcium/qqbar"
	"calcium/truth"
)

func newCtx() *context.Context {
	return context.NewDefault()
}

func sqrt2(c *context.Context) *ca.Ca {
	g := c.ExtForQQbar(qqbar.SqrtOfInt(2, c.Options.LowPrec))
	return ca.EmbedExt(c, g)
}

func TestCheckIsZero(t *testing.T) {
	c := newCtx()
	if CheckIsZero(ca.Zero(c)) != truth.True {
		t.Fatalf("0 should check as zero")
	}
	if CheckIsZero(ca.One(c)) != truth.False {
		t.Fatalf("1 should not check as zero")
	}
	s := sqrt2(c)
	diff := ca.Sub(s, s)
	if CheckIsZero(diff) != truth.True {
		t.Fatalf("sqrt(2)-sqrt(2) should check as zero")
	}
}

func TestCheckEqual(t *testing.T) {
	c := newCtx()
	if CheckEqual(ca.FromInt64(c, 3), ca.FromInt64(c, 3)) != truth.True {
		t.Fatalf("3 == 3 should be True")
	}
	if CheckEqual(ca.FromInt64(c, 3), ca.FromInt64(c, 4)) != truth.False {
		t.Fatalf("3 == 4 should be False")
	}
	if CheckEqual(ca.PosInf(c), ca.PosInf(c)) != truth.True {
		t.Fatalf("+inf == +inf should be True")
	}
	if CheckEqual(ca.PosInf(c), ca.NegInf(c)) != truth.False {
		t.Fatalf("+inf == -inf should be False")
	}
	if CheckEqual(ca.Undefined(c), ca.One(c)) != truth.Unknown {
		t.Fatalf("Undefined == 1 should be Unknown")
	}
}

func TestCheckOrder(t *testing.T) {
	c := newCtx()
	a := ca.FromInt64(c, 2)
	b := ca.FromInt64(c, 5)
	if CheckLt(a, b) != truth.True {
		t.Fatalf("2 < 5 should be True")
	}
	if CheckGt(a, b) != truth.False {
		t.Fatalf("2 > 5 should be False")
	}
	if CheckLe(a, a) != truth.True {
		t.Fatalf("2 <= 2 should be True")
	}
	if CheckGe(a, a) != truth.True {
		t.Fatalf("2 >= 2 should be True")
	}
}

func TestCheckIsReal(t *testing.T) {
	c := newCtx()
	if CheckIsReal(ca.FromInt64(c, 7)) != truth.True {
		t.Fatalf("rational should be real")
	}
	if CheckIsReal(sqrt2(c)) != truth.True {
		t.Fatalf("sqrt(2) should be real")
	}
	if CheckIsReal(ca.I(c)) != truth.False {
		t.Fatalf("i should not be real")
	}
}

func TestCheckIsImaginary(t *testing.T) {
	c := newCtx()
	if CheckIsImaginary(ca.I(c)) != truth.True {
		t.Fatalf("i should be purely imaginary")
	}
	if CheckIsImaginary(ca.FromInt64(c, 1)) != truth.False {
		t.Fatalf("1 should not be purely imaginary")
	}
	if CheckIsImaginary(ca.Zero(c)) != truth.False {
		t.Fatalf("0 is not considered imaginary")
	}
}

func TestCheckIsRationalAndInteger(t *testing.T) {
	c := newCtx()
	half := ca.FromRat(c, big.NewRat(1, 2))
	if CheckIsRational(half) != truth.True {
		t.Fatalf("1/2 should be rational")
	}
	if CheckIsInteger(half) != truth.False {
		t.Fatalf("1/2 should not be an integer")
	}
	if CheckIsInteger(ca.FromInt64(c, 4)) != truth.True {
		t.Fatalf("4 should be an integer")
	}
	if CheckIsRational(sqrt2(c)) != truth.False {
		t.Fatalf("sqrt(2) should not be rational")
	}
}

func TestCheckIsAlgebraic(t *testing.T) {
	c := newCtx()
	if CheckIsAlgebraic(ca.FromInt64(c, 3)) != truth.True {
		t.Fatalf("3 should be algebraic")
	}
	if CheckIsAlgebraic(sqrt2(c)) != truth.True {
		t.Fatalf("sqrt(2) should be algebraic")
	}
}
