package mpoly

import "math/big"

// Ideal is a finite set of polynomial relations among a Multi field's
// generators (spec.md 3, "Reduction ideal"). It is used purely as a
// reducer, never eagerly Groebner-basis'd (spec.md 4.2), matching
// USE_GB's default-lazy behavior in package context.
type Ideal struct {
	Gens []*Poly
}

// NewIdeal wraps a generator list, dropping any zero polynomials.
func NewIdeal(gens ...*Poly) *Ideal {
	out := make([]*Poly, 0, len(gens))
	for _, g := range gens {
		if !g.IsZero() {
			out = append(out, g)
		}
	}
	return &Ideal{Gens: out}
}

// QuasiDivRemIdeal reduces f modulo the ideal's generators, returning a
// remainder r and a positive rational scale such that
// scale * f == r  (mod ideal),
// i.e. scale*f - r lies in the ideal generated by Gens. This mirrors the
// fmpz_mpoly_quasidivrem_ideal contract spec.md section 9 names as the
// single largest capability this module delegates to an external
// collaborator in the real library: division over Z is not exact in
// general, so every elimination step scales the whole working polynomial
// (and the accumulated scale factor) by the dividing generator's leading
// coefficient, a classical pseudo-division.
func (id *Ideal) QuasiDivRemIdeal(f *Poly) (remainder *Poly, scale *big.Rat) {
	if len(id.Gens) == 0 {
		return f.Clone(), big.NewRat(1, 1)
	}

	p := f.Clone()
	r := New(f.NVars)
	scaleAccum := big.NewRat(1, 1)

	for !p.IsZero() {
		ltExp, ltCoeff, _ := p.LeadingTerm()
		divided := false
		for _, g := range id.Gens {
			gExp, gCoeff, ok := g.LeadingTerm()
			if !ok {
				continue
			}
			quotExp, divisible := gExp.divides(ltExp)
			if !divisible {
				continue
			}
			// Pseudo-division step: scale p (and the running remainder
			// and scale factor) by gCoeff, then subtract the matching
			// multiple of g so the leading term cancels exactly.
			p = Scale(p, gCoeff)
			r = Scale(r, gCoeff)
			scaleAccum.Mul(scaleAccum, new(big.Rat).SetInt(gCoeff))

			sub := MulMonomial(g, ltCoeff, quotExp)
			p = Sub(p, sub)
			divided = true
			break
		}
		if !divided {
			// No generator's leading monomial divides; the leading term
			// of p is already fully reduced, move it into the remainder.
			r = Add(r, termPoly(p.NVars, ltExp, ltCoeff))
			p = removeTerm(p, ltExp)
		}
	}

	return r, scaleAccum
}

func termPoly(nvars int, exp Monomial, coeff *big.Int) *Poly {
	p := New(nvars)
	p.setTerm(exp.clone(), new(big.Int).Set(coeff))
	return p
}

func removeTerm(p *Poly, exp Monomial) *Poly {
	out := p.Clone()
	delete(out.terms, exp.key())
	return out
}
