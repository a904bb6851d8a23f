// Condensation (spec.md component C10, original_source/ca/condense_field.c):
// after a Multi-field arithmetic step, check whether the result actually
// depends on fewer generators than the field carries (or none at all,
// or collapses onto a single algebraic generator already known as a
// NumberField) and re-embed it in the smallest field that represents it
// exactly. Without this, field.NVars would only ever grow across a chain
// of operations even when, e.g., sqrt(2)+sqrt(2)-sqrt(2) reduces back to
// a single generator.
package ca

import (
	"math/big"

	"calcium/ext"
	"calcium/field"
	"calcium/mpoly"
)

// CondenseField simplifies x to the smallest field that represents it
// exactly, recursing until no further simplification applies.
func CondenseField(x *Ca) *Ca {
	if x.kind != KindFinite {
		return x
	}
	switch x.fld.Kind {
	case field.KindQ:
		return x
	case field.KindNumberField:
		if r, ok := x.nf.asRational(); ok {
			return FromRat(x.ctx, r)
		}
		return x
	default:
		return condenseMulti(x)
	}
}

func condenseMulti(x *Ca) *Ca {
	if r, ok := x.rf.IsConstant(); ok {
		return FromRat(x.ctx, r)
	}
	used := usedVars(x.rf, x.fld.NVars())
	nUsed := 0
	for _, u := range used {
		if u {
			nUsed++
		}
	}
	if nUsed == x.fld.NVars() {
		return x
	}

	var subGens []*ext.Ext
	mapping := make([]int, x.fld.NVars())
	for i, u := range used {
		if u {
			mapping[i] = len(subGens)
			subGens = append(subGens, x.fld.Gens[i])
		} else {
			mapping[i] = -1
		}
	}

	target := x.ctx.FieldForGens(subGens)
	newNum := reindexDown(x.rf.Num, mapping, target.NVars())
	newDen := reindexDown(x.rf.Den, mapping, target.NVars())

	switch target.Kind {
	case field.KindQ:
		nc, _ := newNum.IsConstant()
		dc, _ := newDen.IsConstant()
		return FromRat(x.ctx, ratQuo(nc, dc))
	case field.KindNumberField:
		monic := monicMinPoly(target.Generator().Alg)
		numNF := univariateToNF(newNum, monic)
		denNF := univariateToNF(newDen, monic)
		nf := nfMul(numNF, nfInv(denNF, monic), monic)
		return CondenseField(fromFieldElem(x.ctx, target, nil, nf, nil))
	default:
		rf := &mpoly.RatFunc{Num: newNum, Den: newDen}
		rf = mpoly.ReduceIdeal(rf, target.Ideal)
		return fromFieldElem(x.ctx, target, nil, nil, rf)
	}
}

// usedVars reports, for each of n variables, whether it appears with a
// nonzero exponent in either Num or Den.
func usedVars(rf *mpoly.RatFunc, n int) []bool {
	out := make([]bool, n)
	mark := func(p *mpoly.Poly) {
		for _, t := range p.Terms() {
			for i, e := range t.Exp {
				if e != 0 {
					out[i] = true
				}
			}
		}
	}
	mark(rf.Num)
	mark(rf.Den)
	return out
}

func reindexDown(p *mpoly.Poly, mapping []int, newN int) *mpoly.Poly {
	out := mpoly.New(newN)
	for _, t := range p.Terms() {
		newExp := make(mpoly.Monomial, newN)
		for i, e := range t.Exp {
			if e == 0 {
				continue
			}
			newExp[mapping[i]] = e
		}
		term := mpoly.Constant(newN, t.Coeff)
		for i, e := range newExp {
			if e == 0 {
				continue
			}
			for k := 0; k < e; k++ {
				term = mpoly.Mul(term, mpoly.Var(newN, i))
			}
		}
		out = mpoly.Add(out, term)
	}
	return out
}

// univariateToNF interprets a (now single-variable) polynomial as an
// element of its generator's NumberField, reducing it modulo the monic
// minimal polynomial.
func univariateToNF(p *mpoly.Poly, monic []*big.Rat) nfElem {
	D := nfDegree(monic)
	coeffs := make(ratPoly, 0)
	for _, t := range p.Terms() {
		deg := 0
		for _, e := range t.Exp {
			deg += e
		}
		for len(coeffs) <= deg {
			coeffs = append(coeffs, new(big.Rat))
		}
		coeffs[deg] = new(big.Rat).Add(coeffs[deg], new(big.Rat).SetInt(t.Coeff))
	}
	reduced := ratPolyMod(coeffs, ratPoly(monic))
	out := nfZero(D)
	for i, c := range reduced {
		if i >= D {
			break
		}
		out[i] = c
	}
	return out
}

func ratQuo(n, d *big.Int) *big.Rat {
	return new(big.Rat).SetFrac(n, d)
}
