package ca

import (
	"math/big"

	"calcium/bigball"
	"calcium/qqbar"
)

// nfElem is a NumberField element's cached power-basis representation: the
// coefficient vector (low degree first) of the unique polynomial of degree
// less than deg(minpoly) congruent to the element modulo the field
// generator's minimal polynomial. This is calcium's analogue of antic's
// nf_elem_t, scoped to what field arithmetic here actually needs (no
// denominator-shared representation, just exact big.Rat coefficients).
type nfElem []*big.Rat

// monicMinPoly returns the field generator's minimal polynomial, rescaled
// to be monic over Q (dividing through by its leading coefficient), in
// low-degree-first order. Reading a.MinPoly's elements across the package
// boundary is fine even though qqbar.intPoly itself is unexported: slice
// indexing and range only depend on the underlying element type (*big.Int).
func monicMinPoly(a *qqbar.Alg) []*big.Rat {
	mp := a.MinPoly
	n := len(mp)
	lead := mp[n-1]
	out := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		out[i] = new(big.Rat).SetFrac(mp[i], lead)
	}
	return out
}

func nfDegree(monic []*big.Rat) int {
	return len(monic) - 1
}

func nfZero(deg int) nfElem {
	out := make(nfElem, deg)
	for i := range out {
		out[i] = new(big.Rat)
	}
	return out
}

func nfFromRat(r *big.Rat, deg int) nfElem {
	out := nfZero(deg)
	if deg > 0 {
		out[0] = new(big.Rat).Set(r)
	}
	return out
}

func nfClone(a nfElem) nfElem {
	out := make(nfElem, len(a))
	for i, c := range a {
		out[i] = new(big.Rat).Set(c)
	}
	return out
}

func (a nfElem) isZero() bool {
	for _, c := range a {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// asRational reports whether a is degree 0 (a pure rational embedded in
// the number field), returning its value.
func (a nfElem) asRational() (*big.Rat, bool) {
	for i := 1; i < len(a); i++ {
		if a[i].Sign() != 0 {
			return nil, false
		}
	}
	if len(a) == 0 {
		return new(big.Rat), true
	}
	return a[0], true
}

func nfAdd(a, b nfElem) nfElem {
	out := make(nfElem, len(a))
	for i := range a {
		out[i] = new(big.Rat).Add(a[i], b[i])
	}
	return out
}

func nfNeg(a nfElem) nfElem {
	out := make(nfElem, len(a))
	for i := range a {
		out[i] = new(big.Rat).Neg(a[i])
	}
	return out
}

func nfSub(a, b nfElem) nfElem {
	return nfAdd(a, nfNeg(b))
}

// nfMul multiplies a*b and reduces modulo monic (the generator's monic
// minimal polynomial), using the relation x^D = -sum(monic[j]*x^j, j<D).
func nfMul(a, b nfElem, monic []*big.Rat) nfElem {
	D := nfDegree(monic)
	conv := make([]*big.Rat, 2*D-1)
	for i := range conv {
		conv[i] = new(big.Rat)
	}
	if D == 0 {
		return nfElem{}
	}
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			if bj.Sign() == 0 {
				continue
			}
			conv[i+j].Add(conv[i+j], new(big.Rat).Mul(ai, bj))
		}
	}
	for k := 2*D - 2; k >= D; k-- {
		c := conv[k]
		if c.Sign() == 0 {
			continue
		}
		for j := 0; j < D; j++ {
			conv[k-D+j].Sub(conv[k-D+j], new(big.Rat).Mul(c, monic[j]))
		}
	}
	return nfElem(conv[:D])
}

// nfInv computes a^-1 mod monic via the polynomial extended Euclidean
// algorithm over Q: find s with s*a === gcd(a, monic) (mod monic), then
// scale s by the inverse of that (constant, since monic is treated as
// irreducible) gcd.
func nfInv(a nfElem, monic []*big.Rat) nfElem {
	D := nfDegree(monic)
	g, s, _ := ratPolyExtGCD(ratPoly(append(nfElem{}, a...)), ratPoly(monic))
	gc := ratPolyTrim(g)
	if len(gc) != 1 {
		// Should not happen for a genuine field generator and nonzero a;
		// fall back to treating the leading coefficient as the scalar.
		gc = ratPoly{gc[len(gc)-1]}
	}
	inv := new(big.Rat).Inv(gc[0])
	sTrim := ratPolyMod(s, ratPoly(monic))
	out := nfZero(D)
	for i, c := range sTrim {
		if i >= D {
			break
		}
		out[i] = new(big.Rat).Mul(c, inv)
	}
	return out
}

// nfEval evaluates the element a (as a polynomial in the generator) at the
// generator's numerical enclosure, using Horner's rule under bigball
// arithmetic, to produce a numerical enclosure for the element.
func nfEval(a nfElem, genEnclosure *bigball.Ball) *bigball.Ball {
	prec := genEnclosure.Prec()
	acc := bigball.Zero(prec)
	for i := len(a) - 1; i >= 0; i-- {
		acc = bigball.Mul(acc, genEnclosure)
		acc = bigball.Add(acc, bigball.FromRat(a[i], prec))
	}
	return acc
}

func nfEqual(a, b nfElem) bool {
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// --- minimal rational-polynomial extended Euclidean algorithm ---
//
// ratPoly is low-degree-first, *big.Rat coefficients; used only inside
// this file for nfInv. qqbar has its own unexported ratPoly with the same
// shape for unrelated purposes (annihilator combination); duplicating the
// handful of helpers here keeps the two packages decoupled.
type ratPoly []*big.Rat

func ratPolyTrim(p ratPoly) ratPoly {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

func ratPolyDegree(p ratPoly) int {
	p = ratPolyTrim(p)
	return len(p) - 1
}

func ratPolyIsZero(p ratPoly) bool {
	return ratPolyDegree(p) < 0
}

func ratPolyDivMod(f, g ratPoly) (q, r ratPoly) {
	f = append(ratPoly{}, f...)
	g = ratPolyTrim(g)
	dg := ratPolyDegree(g)
	df := ratPolyDegree(f)
	if df < dg {
		return ratPoly{}, ratPolyTrim(f)
	}
	q = make(ratPoly, df-dg+1)
	for i := range q {
		q[i] = new(big.Rat)
	}
	lead := g[dg]
	work := append(ratPoly{}, f...)
	for k := df; k >= dg; k-- {
		if k >= len(work) || work[k].Sign() == 0 {
			continue
		}
		c := new(big.Rat).Quo(work[k], lead)
		q[k-dg] = c
		for j := 0; j <= dg; j++ {
			work[k-dg+j] = new(big.Rat).Sub(work[k-dg+j], new(big.Rat).Mul(c, g[j]))
		}
	}
	return q, ratPolyTrim(work)
}

func ratPolyMod(f, g ratPoly) ratPoly {
	_, r := ratPolyDivMod(f, g)
	return r
}

func ratPolyMulP(a, b ratPoly) ratPoly {
	if ratPolyIsZero(a) || ratPolyIsZero(b) {
		return ratPoly{}
	}
	out := make(ratPoly, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			out[i+j].Add(out[i+j], new(big.Rat).Mul(ai, bj))
		}
	}
	return ratPolyTrim(out)
}

func ratPolySubP(a, b ratPoly) ratPoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(ratPoly, n)
	for i := 0; i < n; i++ {
		var av, bv *big.Rat
		if i < len(a) {
			av = a[i]
		} else {
			av = new(big.Rat)
		}
		if i < len(b) {
			bv = b[i]
		} else {
			bv = new(big.Rat)
		}
		out[i] = new(big.Rat).Sub(av, bv)
	}
	return ratPolyTrim(out)
}

// ratPolyExtGCD returns (g, s, t) with s*a + t*b == g via the standard
// polynomial extended Euclidean algorithm.
func ratPolyExtGCD(a, b ratPoly) (g, s, t ratPoly) {
	oldR, curR := append(ratPoly{}, a...), append(ratPoly{}, b...)
	oldS, curS := ratPoly{big.NewRat(1, 1)}, ratPoly{}
	oldT, curT := ratPoly{}, ratPoly{big.NewRat(1, 1)}

	for !ratPolyIsZero(curR) {
		q, _ := ratPolyDivMod(oldR, curR)
		oldR, curR = curR, ratPolySubP(oldR, ratPolyMulP(q, curR))
		oldS, curS = curS, ratPolySubP(oldS, ratPolyMulP(q, curS))
		oldT, curT = curT, ratPolySubP(oldT, ratPolyMulP(q, curT))
	}
	return ratPolyTrim(oldR), ratPolyTrim(oldS), ratPolyTrim(oldT)
}
