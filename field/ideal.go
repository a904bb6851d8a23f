package field

import (
	"math/big"

	"calcium/ext"
	"calcium/mpoly"
)

// BuildIdeal constructs the reduction ideal for a Multi field over the
// given (already canonically ordered) generator tuple, per spec.md 4.2:
// each algebraic generator contributes its minimal polynomial, expressed
// as a univariate polynomial in its own variable.
//
// No relation between two different generators is added, here or when
// package ca merges fields, and QuasiDivRemIdeal does not derive one: two
// algebraic generators that are expressible in terms of one another (for
// example sqrt(2) and sqrt(8)) stay unrelated in the ideal.
func BuildIdeal(gens []*ext.Ext) *mpoly.Ideal {
	n := len(gens)
	var relations []*mpoly.Poly
	for i, g := range gens {
		if !g.IsAlgebraic {
			continue
		}
		relations = append(relations, minPolyRelation(n, i, g))
	}
	return mpoly.NewIdeal(relations...)
}

// minPolyRelation returns the generator's minimal polynomial m(t) with t
// substituted by variable i, i.e. m(x_i), as a multivariate polynomial in
// n variables.
func minPolyRelation(n, i int, g *ext.Ext) *mpoly.Poly {
	mp := g.Alg.MinPoly
	out := mpoly.New(n)
	xi := mpoly.Var(n, i)
	term := mpoly.Constant(n, big.NewInt(1))
	for _, c := range mp {
		out = mpoly.Add(out, mpoly.Scale(term, c))
		term = mpoly.Mul(term, xi)
	}
	return out
}
