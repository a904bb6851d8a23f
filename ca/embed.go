package ca

import (
	"math/big"

	"calcium/context"
	"calcium/ext"
	"calcium/mpoly"
)

// EmbedExt wraps a (newly interned or already-cached) Extension g as a Ca
// living in its own single-generator field: a NumberField when g is
// algebraic, a one-variable Multi field otherwise. Used by package
// transcendental every time a function call produces a brand new named
// extension (spec.md 4.1's "every new generator starts in its own field",
// subsequently merged with others on demand by the arithmetic in
// arith.go/merge.go).
func EmbedExt(c *context.Context, g *ext.Ext) *Ca {
	if g.IsAlgebraic {
		f := c.FieldForSingleExt(g)
		return fromFieldElem(c, f, nil, nfElem{new(big.Rat), big.NewRat(1, 1)}, nil)
	}
	f := c.FieldForSingleExt(g)
	rf := &mpoly.RatFunc{Num: mpoly.Var(1, 0), Den: mpoly.Constant(1, big.NewInt(1))}
	return fromFieldElem(c, f, nil, nil, rf)
}
