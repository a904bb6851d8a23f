package context

import (
	"math/big"
	"testing"

	"calcium/ext"
	"calcium/qqbar"
)

func TestExtInterningSharesIdentity(t *testing.T) {
	c := NewDefault()
	a1 := qqbar.SqrtOfInt(2, c.Options.LowPrec)
	a2 := qqbar.SqrtOfInt(2, c.Options.LowPrec)

	e1 := c.ExtForQQbar(a1)
	e2 := c.ExtForQQbar(a2)
	if e1 != e2 {
		t.Fatalf("two requests for the same algebraic extension should intern to the same pointer")
	}
}

func TestFieldQIIsSingleton(t *testing.T) {
	c := NewDefault()
	f1 := c.FieldQI()
	f2 := c.FieldQI()
	if f1 != f2 {
		t.Fatalf("Q(i) should be a cached singleton")
	}
	if !f1.IsQI() {
		t.Fatalf("FieldQI result should be marked as the Q(i) singleton")
	}
}

func TestFieldForGensInterns(t *testing.T) {
	c := NewDefault()
	sqrt2 := c.ExtForQQbar(qqbar.SqrtOfInt(2, c.Options.LowPrec))
	f1 := c.FieldForGens([]*ext.Ext{sqrt2})
	f2 := c.FieldForGens([]*ext.Ext{sqrt2})
	if f1 != f2 {
		t.Fatalf("requesting the same generator set twice should intern to the same field")
	}
}

func TestPolyContextCaches(t *testing.T) {
	c := NewDefault()
	p1 := c.PolyContext(3)
	p2 := c.PolyContext(3)
	if p1 != p2 {
		t.Fatalf("PolyContext should cache per arity")
	}
	_ = big.NewInt(0)
}
