package field

import (
	"testing"

	"calcium/ext"
	"calcium/qqbar"
)

func TestQHasNoGenerators(t *testing.T) {
	q := Q()
	if q.NVars() != 0 || len(q.Gens) != 0 {
		t.Fatalf("Q should have zero generators")
	}
}

func TestCompareByGeneratorCount(t *testing.T) {
	q := Q()
	sqrt2 := ext.NewAlgebraic(algFromPoly(2))
	nf := NumberField(sqrt2)
	if Compare(q, nf) >= 0 {
		t.Fatalf("Q (0 generators) should sort before a NumberField (1 generator)")
	}
}

func TestBuildIdealContainsMinimalPolynomial(t *testing.T) {
	sqrt2 := ext.NewAlgebraic(algFromPoly(2))
	ideal := BuildIdeal([]*ext.Ext{sqrt2})
	if len(ideal.Gens) != 1 {
		t.Fatalf("expected exactly one ideal generator for one algebraic generator, got %d", len(ideal.Gens))
	}
}

// algFromPoly builds a qqbar.Alg for sqrt(n), for use in field-level tests
// that don't need the full Ext/field/context construction machinery.
func algFromPoly(n int64) *qqbar.Alg {
	return qqbar.SqrtOfInt(n, 64)
}
