// field merge (spec.md 4.5): before a binary operation can combine two
// finite values from different fields, both operands are re-expressed as
// rational functions over a single common field generated by the union of
// their generators, the same way the original's ca_merge_field (restored
// per SPEC_FULL.md section 3, original_source/ca/merge_field.c) works.
package ca

import (
	"math/big"

	"calcium/ext"
	"calcium/field"
	"calcium/mpoly"
)

// toMultiRatFunc re-expresses x (whatever its current field) as a
// mpoly.RatFunc over the given target Multi field, whose generator tuple
// must be a superset of x's own generators.
func toMultiRatFunc(target *field.Field, x *Ca) *mpoly.RatFunc {
	n := target.NVars()
	switch x.fld.Kind {
	case field.KindQ:
		return mpoly.NewConstantRat(n, x.rat)
	case field.KindNumberField:
		idx := indexOfGen(target, x.fld.Generator())
		num, den := nfToPoly(x.nf, n, idx)
		return &mpoly.RatFunc{Num: num, Den: mpoly.Constant(n, den)}
	default:
		mapping := make([]int, x.fld.NVars())
		for i, g := range x.fld.Gens {
			mapping[i] = indexOfGen(target, g)
		}
		return &mpoly.RatFunc{
			Num: reindexPoly(x.rf.Num, mapping, n),
			Den: reindexPoly(x.rf.Den, mapping, n),
		}
	}
}

func indexOfGen(f *field.Field, g *ext.Ext) int {
	for i, cand := range f.Gens {
		if ext.Equal(cand, g) {
			return i
		}
	}
	return -1
}

// nfToPoly converts a NumberField element's coefficient vector (over its
// own generator, at position idx in the target's generator tuple) into an
// integer-coefficient polynomial in n variables plus a shared integer
// denominator, clearing each coefficient's own denominator first.
func nfToPoly(a nfElem, n, idx int) (*mpoly.Poly, *big.Int) {
	lcm := big.NewInt(1)
	for _, c := range a {
		lcm = lcmInt(lcm, c.Denom())
	}
	out := mpoly.New(n)
	xi := mpoly.Constant(n, big.NewInt(1))
	var xvar *mpoly.Poly
	if idx >= 0 {
		xvar = mpoly.Var(n, idx)
	}
	for i, c := range a {
		scaled := new(big.Int).Mul(c.Num(), new(big.Int).Div(lcm, c.Denom()))
		out = mpoly.Add(out, mpoly.Scale(xi, scaled))
		if i+1 < len(a) && xvar != nil {
			xi = mpoly.Mul(xi, xvar)
		}
	}
	return out, lcm
}

func lcmInt(a, b *big.Int) *big.Int {
	if b.Sign() == 0 {
		return new(big.Int).Set(a)
	}
	g := new(big.Int).GCD(nil, nil, a, b)
	return new(big.Int).Div(new(big.Int).Mul(a, b), g)
}

// reindexPoly rebuilds p (over p.NVars variables) as a polynomial over
// newNVars variables, with old variable i relocated to mapping[i].
func reindexPoly(p *mpoly.Poly, mapping []int, newNVars int) *mpoly.Poly {
	out := mpoly.New(newNVars)
	for _, t := range p.Terms() {
		newExp := make(mpoly.Monomial, newNVars)
		for i, e := range t.Exp {
			if e == 0 {
				continue
			}
			newExp[mapping[i]] = e
		}
		term := mpoly.Constant(newNVars, t.Coeff)
		for i, e := range newExp {
			if e == 0 {
				continue
			}
			term = mpoly.Mul(term, pow(mpoly.Var(newNVars, i), e))
		}
		out = mpoly.Add(out, term)
	}
	return out
}

func pow(p *mpoly.Poly, n int) *mpoly.Poly {
	out := mpoly.Constant(p.NVars, big.NewInt(1))
	for i := 0; i < n; i++ {
		out = mpoly.Mul(out, p)
	}
	return out
}

// mergeFields returns the common Multi field for a and b (as ca's own
// generator set, interned via the owning Context) together with both
// operands re-expressed as RatFunc values over it.
func mergeFields(x, y *Ca) (*field.Field, *mpoly.RatFunc, *mpoly.RatFunc) {
	gens := unionGens(x, y)
	target := x.ctx.FieldForGens(gens)
	return target, toMultiRatFunc(target, x), toMultiRatFunc(target, y)
}

func unionGens(x, y *Ca) []*ext.Ext {
	var out []*ext.Ext
	out = append(out, gensOf(x)...)
	for _, g := range gensOf(y) {
		found := false
		for _, h := range out {
			if ext.Equal(g, h) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, g)
		}
	}
	return out
}

func gensOf(x *Ca) []*ext.Ext {
	if x.kind != KindFinite {
		return nil
	}
	switch x.fld.Kind {
	case field.KindQ:
		return nil
	case field.KindNumberField:
		return []*ext.Ext{x.fld.Generator()}
	default:
		return x.fld.Gens
	}
}
