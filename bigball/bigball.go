// Package bigball implements rigorous rectangular complex enclosures (balls)
// over arbitrary-precision floats: a value known to lie within
// (reMid +/- reRad) + i*(imMid +/- imRad). It generalizes
// Preimage_Sampler.BigComplex (exact big.Float complex arithmetic with no
// error tracking) by attaching a radius to each part, which is what lets
// the predicate cascade in package predicate decide check_is_zero and
// friends soundly: a ball that excludes a point proves inequality, but a
// ball that contains a point never proves equality on its own.
package bigball

import (
	"fmt"
	"math/big"
)

// Ball is a rigorous enclosure of a complex number.
type Ball struct {
	ReMid *big.Float
	ReRad *big.Float
	ImMid *big.Float
	ImRad *big.Float
}

// Prec is the working precision, in bits, used to build and combine balls.
// The predicate cascade walks a geometric schedule of these (64, 128, ...).
type Prec = uint

// Zero returns the exact point 0 at the given precision.
func Zero(prec Prec) *Ball {
	return Exact(0, 0, prec)
}

// Unknown returns a ball centered at the origin with infinite radius on
// both axes: it contains every complex number, so ContainsZero is true
// and ExcludesZero/IsReal are both false. This is the honest enclosure
// for a function head this module has no numeric model for -- unlike
// Zero, which would falsely look like an exact, real 0 to every caller
// that inspects a ball's shape rather than only asking ContainsZero.
func Unknown(prec Prec) *Ball {
	inf := new(big.Float).SetPrec(prec).SetInf(false)
	return &Ball{
		ReMid: new(big.Float).SetPrec(prec),
		ReRad: inf,
		ImMid: new(big.Float).SetPrec(prec),
		ImRad: new(big.Float).SetPrec(prec).SetInf(false),
	}
}

// Exact returns a zero-radius ball around (re, im).
func Exact(re, im float64, prec Prec) *Ball {
	return &Ball{
		ReMid: new(big.Float).SetPrec(prec).SetFloat64(re),
		ReRad: new(big.Float).SetPrec(prec),
		ImMid: new(big.Float).SetPrec(prec).SetFloat64(im),
		ImRad: new(big.Float).SetPrec(prec),
	}
}

// Approx returns a ball around (re, im) with a radius reflecting float64's
// ~2^-52 relative precision, rather than a true zero-radius point. Used
// whenever a value is seeded from a float64 computation (math.Sqrt, an
// irrational qqbar root, a transcendental function evaluation) instead of
// from an exact big.Rat: the radius keeps ContainsZero/ExcludesZero and
// the comparison predicates sound with respect to that approximation,
// short of the full arbitrary-precision interval-Newton root refinement a
// true acb-backed implementation would perform (see DESIGN.md).
func Approx(re, im float64, prec Prec) *Ball {
	b := Exact(re, im, prec)
	scale := 1e-14
	reAbs := re
	if reAbs < 0 {
		reAbs = -reAbs
	}
	imAbs := im
	if imAbs < 0 {
		imAbs = -imAbs
	}
	mag := reAbs + imAbs
	if mag < 1 {
		mag = 1
	}
	rad := new(big.Float).SetPrec(prec).SetFloat64(mag * scale)
	b.ReRad = new(big.Float).Set(rad)
	b.ImRad = new(big.Float).Set(rad)
	return b
}

// FromRat returns a zero-radius ball around the exact rational a + 0i.
func FromRat(a *big.Rat, prec Prec) *Ball {
	re := new(big.Float).SetPrec(prec).SetRat(a)
	return &Ball{
		ReMid: re,
		ReRad: new(big.Float).SetPrec(prec),
		ImMid: new(big.Float).SetPrec(prec),
		ImRad: new(big.Float).SetPrec(prec),
	}
}

// Prec reports the working precision of b.
func (b *Ball) Prec() Prec { return b.ReMid.Prec() }

func absFloat(x *big.Float) *big.Float {
	return new(big.Float).Abs(x)
}

// Add returns a rigorous enclosure of x+y: midpoints add, radii add.
func Add(x, y *Ball) *Ball {
	return &Ball{
		ReMid: new(big.Float).Add(x.ReMid, y.ReMid),
		ReRad: new(big.Float).Add(x.ReRad, y.ReRad),
		ImMid: new(big.Float).Add(x.ImMid, y.ImMid),
		ImRad: new(big.Float).Add(x.ImRad, y.ImRad),
	}
}

// Neg returns an enclosure of -x.
func Neg(x *Ball) *Ball {
	return &Ball{
		ReMid: new(big.Float).Neg(x.ReMid),
		ReRad: new(big.Float).Set(x.ReRad),
		ImMid: new(big.Float).Neg(x.ImMid),
		ImRad: new(big.Float).Set(x.ImRad),
	}
}

// Sub returns a rigorous enclosure of x-y.
func Sub(x, y *Ball) *Ball {
	return Add(x, Neg(y))
}

// Mul returns a rigorous enclosure of x*y using interval multiplication:
// (a+-ra)(c+-rc) = ac +- (|a|rc + |c|ra + ra*rc) for the real/imag cross
// terms of complex multiplication (z*w) = (ac-bd) + i(ad+bc).
func Mul(x, y *Ball) *Ball {
	prec := x.ReMid.Prec()
	a, b, ra, rb := x.ReMid, x.ImMid, x.ReRad, x.ImRad
	c, d, rc, rd := y.ReMid, y.ImMid, y.ReRad, y.ImRad

	ac := new(big.Float).Mul(a, c)
	bd := new(big.Float).Mul(b, d)
	ad := new(big.Float).Mul(a, d)
	bc := new(big.Float).Mul(b, c)

	reMid := new(big.Float).SetPrec(prec).Sub(ac, bd)
	imMid := new(big.Float).SetPrec(prec).Add(ad, bc)

	// Error terms bound |delta(ac)| <= |a|*rc + |c|*ra + ra*rc, and likewise
	// for bd, ad, bc; the radius of a sum/difference is the sum of radii.
	errTerm := func(u, v, ru, rv *big.Float) *big.Float {
		t1 := new(big.Float).Mul(absFloat(u), rv)
		t2 := new(big.Float).Mul(absFloat(v), ru)
		t3 := new(big.Float).Mul(ru, rv)
		return new(big.Float).Add(new(big.Float).Add(t1, t2), t3)
	}

	reRad := new(big.Float).Add(errTerm(a, c, ra, rc), errTerm(b, d, rb, rd))
	imRad := new(big.Float).Add(errTerm(a, d, ra, rd), errTerm(b, c, rb, rc))

	return &Ball{ReMid: reMid, ReRad: reRad, ImMid: imMid, ImRad: imRad}
}

// Inv returns a rigorous enclosure of 1/x via the conjugate-over-squared-
// modulus identity, valid whenever x excludes the origin (callers are
// expected to have established that via ExcludesZero first).
func Inv(x *Ball) *Ball {
	prec := x.ReMid.Prec()
	conjIm := new(big.Float).Neg(x.ImMid)
	normMid := new(big.Float).Add(
		new(big.Float).Mul(x.ReMid, x.ReMid),
		new(big.Float).Mul(x.ImMid, x.ImMid),
	)
	reOut := new(big.Float).Quo(x.ReMid, normMid)
	imOut := new(big.Float).Quo(conjIm, normMid)
	invNorm := new(big.Float).Quo(new(big.Float).SetPrec(prec).SetInt64(1), normMid)
	reRad := new(big.Float).Mul(x.ReRad, invNorm)
	imRad := new(big.Float).Mul(x.ImRad, invNorm)
	margin := new(big.Float).SetPrec(prec).SetFloat64(1.0001)
	return &Ball{
		ReMid: reOut, ReRad: new(big.Float).Mul(reRad, margin),
		ImMid: imOut, ImRad: new(big.Float).Mul(imRad, margin),
	}
}

// Div returns a rigorous enclosure of x/y.
func Div(x, y *Ball) *Ball {
	return Mul(x, Inv(y))
}

// ContainsZero reports whether the ball's rectangle contains the origin,
// i.e. whether it is possible that the true value is exactly zero.
func (b *Ball) ContainsZero() bool {
	reLo := new(big.Float).Sub(b.ReMid, b.ReRad)
	reHi := new(big.Float).Add(b.ReMid, b.ReRad)
	imLo := new(big.Float).Sub(b.ImMid, b.ImRad)
	imHi := new(big.Float).Add(b.ImMid, b.ImRad)
	return reLo.Sign() <= 0 && reHi.Sign() >= 0 && imLo.Sign() <= 0 && imHi.Sign() >= 0
}

// ExcludesZero is the decisive disproof primitive the predicate cascade
// relies on: true only when the enclosure is tight enough to guarantee the
// true value cannot be zero.
func (b *Ball) ExcludesZero() bool {
	return !b.ContainsZero()
}

// IsReal reports whether the ball's imaginary rectangle is forced to zero
// (i.e. every point in the enclosure has zero imaginary part is NOT
// guaranteed, but the ball's im component's lower and upper bound are both
// exactly zero, which only holds for an exact zero-radius zero imaginary
// part -- used as a quick structural check, not a proof of realness in
// general; the real proof is conjugation-based, see package predicate).
func (b *Ball) IsReal() bool {
	return b.ImMid.Sign() == 0 && b.ImRad.Sign() == 0
}

// Sign returns the sign of the real part when the ball is known not to
// straddle zero, and 0 (with ok=false) when it is ambiguous.
func (b *Ball) Sign() (sign int, ok bool) {
	reLo := new(big.Float).Sub(b.ReMid, b.ReRad)
	reHi := new(big.Float).Add(b.ReMid, b.ReRad)
	if reLo.Sign() > 0 {
		return 1, true
	}
	if reHi.Sign() < 0 {
		return -1, true
	}
	return 0, false
}

// Compare reports whether x is strictly less than, greater than, or
// incomparable to y along the real axis, assuming both are known real
// (callers are responsible for having established that via IsReal or the
// conjugation test in package predicate).
func Compare(x, y *Ball) (less, greater bool) {
	diff := Sub(x, y)
	s, ok := diff.Sign()
	if !ok {
		return false, false
	}
	return s < 0, s > 0
}

func (b *Ball) String() string {
	return fmt.Sprintf("(%s +/- %s) + (%s +/- %s)i",
		b.ReMid.Text('g', 10), b.ReRad.Text('g', 3),
		b.ImMid.Text('g', 10), b.ImRad.Text('g', 3))
}

// Widen returns a copy of b with both radii scaled up by factor, used when
// composing several roundoff-prone operations (e.g. qqbar root isolation)
// to stay soundly conservative instead of tracking each rounding error
// individually.
func Widen(b *Ball, factor float64) *Ball {
	f := new(big.Float).SetPrec(b.ReMid.Prec()).SetFloat64(factor)
	return &Ball{
		ReMid: new(big.Float).Set(b.ReMid),
		ReRad: new(big.Float).Mul(b.ReRad, f),
		ImMid: new(big.Float).Set(b.ImMid),
		ImRad: new(big.Float).Mul(b.ImRad, f),
	}
}
