// Package qqbar implements algebraic numbers: a primitive, positive-
// leading-coefficient minimal (or, where noted, merely squarefree
// annihilating) polynomial over Z together with a numerical enclosure that
// disambiguates which root of that polynomial the value denotes. This is
// calcium's stand-in for the spec's external C1 collaborator ("qqbar"),
// scoped to what the rest of the module (field merge, condensation, the
// predicate engine's algebraic-number fallback) actually needs.
package qqbar

import (
	"fmt"
	"math"
	"math/big"

	"calcium/bigball"
)

// Alg is an exact algebraic number.
type Alg struct {
	MinPoly   intPoly      // primitive, positive leading coefficient
	Enclosure *bigball.Ball // isolates exactly one root of MinPoly
}

// Degree returns deg(MinPoly); a rational has degree 1.
func (a *Alg) Degree() int {
	return a.MinPoly.degree()
}

// IsRational reports whether a represents an element of Q.
func (a *Alg) IsRational() bool {
	return a.Degree() <= 1
}

// Rational returns (value, true) when a is rational.
func (a *Alg) Rational() (*big.Rat, bool) {
	if !a.IsRational() {
		return nil, false
	}
	if a.Degree() == 0 {
		return new(big.Rat), true
	}
	// MinPoly = [c0, c1], root = -c0/c1.
	num := new(big.Int).Neg(a.MinPoly[0])
	return new(big.Rat).SetFrac(num, a.MinPoly[1]), true
}

// FromInt64 returns the algebraic number n.
func FromInt64(n int64, prec bigball.Prec) *Alg {
	return FromRat(big.NewRat(n, 1), prec)
}

// FromRat returns the algebraic number r, a degree-1 element.
func FromRat(r *big.Rat, prec bigball.Prec) *Alg {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	mp := intPoly{new(big.Int).Neg(num), den}
	if den.Sign() < 0 {
		mp[0].Neg(mp[0])
		mp[1].Neg(mp[1])
	}
	f, _ := new(big.Float).SetPrec(prec).SetRat(r).Float64()
	return &Alg{
		MinPoly:   mp.trim(),
		Enclosure: bigball.Exact(f, 0, prec),
	}
}

// SqrtOfInt returns sqrt(n) for a positive non-square integer n, with
// minimal polynomial x^2-n and an enclosure seeded from math.Sqrt (exact
// enough at any working precision to isolate the positive root, since the
// two roots +-sqrt(n) are separated by 2*sqrt(n) > any float64 rounding
// error). Used by package transcendental's algebraic sqrt path and by
// tests that need a concrete degree-2 algebraic number without going
// through the full Ext/field machinery.
func SqrtOfInt(n int64, prec bigball.Prec) *Alg {
	mp := intPoly{big.NewInt(-n), big.NewInt(0), big.NewInt(1)}
	f := math.Sqrt(float64(n))
	return &Alg{MinPoly: mp.trim(), Enclosure: bigball.Exact(f, 0, prec)}
}

// NewFromAnnihilator builds an Alg from any polynomial known to vanish at
// the value described by enclosure, taking its squarefree part so that the
// enclosure (which must isolate exactly one root of the squarefree part)
// disambiguates the value unambiguously. It does not attempt to factor the
// squarefree polynomial further into irreducibles -- see qqbar.go's doc
// comment and DESIGN.md for why that is out of scope here.
func NewFromAnnihilator(ann []*big.Int, enclosure *bigball.Ball) *Alg {
	p := intPoly(ann).squarefreePart()
	return &Alg{MinPoly: p, Enclosure: enclosure}
}

// Equal decides structural equality: same minimal polynomial and
// enclosures that cannot both be correct unless they denote the same root.
// Rationals compare exactly; otherwise the enclosures are compared once, as
// given, with no refinement to a higher precision.
func Equal(a, b *Alg) bool {
	if polyEqual(a.MinPoly, b.MinPoly) {
		if ra, ok := a.Rational(); ok {
			if rb, ok2 := b.Rational(); ok2 {
				return ra.Cmp(rb) == 0
			}
		}
		return enclosuresAgree(a.Enclosure, b.Enclosure)
	}
	return false
}

func polyEqual(a, b intPoly) bool {
	a = a.trim()
	b = b.trim()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// enclosuresAgree reports whether two enclosures are consistent with
// denoting the same point: the two enclosures overlap.
func enclosuresAgree(a, b *bigball.Ball) bool {
	d := bigball.Sub(a, b)
	return d.ContainsZero()
}

// Cmp implements the canonical ordering of spec.md 4.1: by degree, then
// absolute-lexicographic comparison of minimal polynomials (low-degree
// coefficient first, sign ignored, matching the source's intent of a total
// order that does not depend on an arbitrary sign convention beyond the
// already-fixed positive-leading-coefficient normalization), then by real
// then imaginary part of the numerical value.
func Cmp(a, b *Alg) int {
	da, db := a.Degree(), b.Degree()
	if da != db {
		if da < db {
			return -1
		}
		return 1
	}
	ap, bp := a.MinPoly.trim(), b.MinPoly.trim()
	for i := 0; i < len(ap) && i < len(bp); i++ {
		if c := ap[i].CmpAbs(bp[i]); c != 0 {
			return c
		}
	}
	if len(ap) != len(bp) {
		if len(ap) < len(bp) {
			return -1
		}
		return 1
	}
	if less, greater := bigball.Compare(a.Enclosure, b.Enclosure); less {
		return -1
	} else if greater {
		return 1
	}
	imCmp := a.Enclosure.ImMid.Cmp(b.Enclosure.ImMid)
	return imCmp
}

func (a *Alg) String() string {
	if r, ok := a.Rational(); ok {
		return r.RatString()
	}
	return fmt.Sprintf("qqbar(deg=%d, %s)", a.Degree(), a.Enclosure.String())
}
