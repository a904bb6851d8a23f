package qqbar

import (
	"math/big"

	"calcium/bigball"
)

// Neg returns -a.
func Neg(a *Alg) *Alg {
	mp := make(intPoly, len(a.MinPoly))
	// p(-x) with the sign pattern alternating by degree, then
	// renormalized to a positive leading coefficient.
	for i, c := range a.MinPoly {
		if i%2 == 0 {
			mp[i] = new(big.Int).Set(c)
		} else {
			mp[i] = new(big.Int).Neg(c)
		}
	}
	enc := bigball.Neg(a.Enclosure)
	return &Alg{MinPoly: mp.primitivePart(), Enclosure: enc}
}

// Add returns a+b, annihilated by Res_y(f(x-y), g(y)) evaluated via
// interpolation over deg(f)*deg(b)+1 sample points (see resultant.go).
func Add(a, b *Alg, degLimit int) *Alg {
	if ra, ok := a.Rational(); ok {
		if rb, ok2 := b.Rational(); ok2 {
			return FromRat(new(big.Rat).Add(ra, rb), a.Enclosure.Prec())
		}
	}
	enc := bigball.Add(a.Enclosure, b.Enclosure)
	ann := combineAnnihilator(a.MinPoly, b.MinPoly, shiftedAdd, degLimit)
	return NewFromAnnihilator(ann, enc)
}

// Mul returns a*b.
func Mul(a, b *Alg, degLimit int) *Alg {
	if ra, ok := a.Rational(); ok {
		if rb, ok2 := b.Rational(); ok2 {
			return FromRat(new(big.Rat).Mul(ra, rb), a.Enclosure.Prec())
		}
	}
	enc := bigball.Mul(a.Enclosure, b.Enclosure)
	ann := combineAnnihilator(a.MinPoly, b.MinPoly, shiftedMul, degLimit)
	return NewFromAnnihilator(ann, enc)
}

// Inv returns 1/a for nonzero a: if a has minimal polynomial
// c_0 + c_1 x + ... + c_n x^n, then 1/a has minimal polynomial
// c_n + c_{n-1} x + ... + c_0 x^n (coefficients reversed).
func Inv(a *Alg) *Alg {
	if ra, ok := a.Rational(); ok {
		return FromRat(new(big.Rat).Inv(ra), a.Enclosure.Prec())
	}
	n := len(a.MinPoly)
	rev := make(intPoly, n)
	for i, c := range a.MinPoly {
		rev[n-1-i] = new(big.Int).Set(c)
	}
	return &Alg{MinPoly: rev.primitivePart(), Enclosure: invertBall(a.Enclosure)}
}

// invertBall returns a rigorous enclosure of 1/z via z's conjugate over
// its squared modulus; valid whenever b's rectangle excludes the origin,
// which holds for any nonzero algebraic number's enclosure past LOW_PREC.
func invertBall(b *bigball.Ball) *bigball.Ball {
	prec := b.ReMid.Prec()
	conjIm := new(big.Float).Neg(b.ImMid)
	normMid := new(big.Float).Add(
		new(big.Float).Mul(b.ReMid, b.ReMid),
		new(big.Float).Mul(b.ImMid, b.ImMid),
	)
	reOut := new(big.Float).Quo(b.ReMid, normMid)
	imOut := new(big.Float).Quo(conjIm, normMid)
	// Radius: |d(1/z)| <= |dz| / |z|^2 to first order; scale the input
	// radii by 1/normMid and add a small relative safety margin so the
	// enclosure stays rigorous under the linear approximation.
	invNorm := new(big.Float).Quo(new(big.Float).SetPrec(prec).SetInt64(1), normMid)
	reRad := new(big.Float).Mul(b.ReRad, invNorm)
	imRad := new(big.Float).Mul(b.ImRad, invNorm)
	margin := new(big.Float).SetPrec(prec).SetFloat64(1.0001)
	return &bigball.Ball{
		ReMid: reOut, ReRad: new(big.Float).Mul(reRad, margin),
		ImMid: imOut, ImRad: new(big.Float).Mul(imRad, margin),
	}
}

// ComposeLinear returns the algebraic number c0 + c1*a (c1 nonzero),
// computed by the substitution y = (x-c0)/c1 into a's minimal polynomial
// rather than by the general resultant elimination Add/Mul use -- exact
// and cheap for an affine change of variable, which is all
// package convert's to_qqbar needs for a NumberField element (every
// NumberField generator this module constructs has degree 2, so every
// element is already of this c0+c1*gen shape; see DESIGN.md for why
// general polynomial composition is out of scope).
func ComposeLinear(a *Alg, c0, c1 *big.Rat) *Alg {
	prec := a.Enclosure.Prec()
	enc := bigball.Add(bigball.FromRat(c0, prec), bigball.Mul(bigball.FromRat(c1, prec), a.Enclosure))
	if ra, ok := a.Rational(); ok {
		r := new(big.Rat).Add(c0, new(big.Rat).Mul(c1, ra))
		return FromRat(r, prec)
	}
	d := a.Degree()
	xMinusC0 := ratPoly{new(big.Rat).Neg(c0), big.NewRat(1, 1)}
	c1pow := make([]*big.Rat, d+1)
	c1pow[0] = big.NewRat(1, 1)
	for i := 1; i <= d; i++ {
		c1pow[i] = new(big.Rat).Mul(c1pow[i-1], c1)
	}
	power := ratPoly{big.NewRat(1, 1)}
	result := ratPoly{new(big.Rat)}
	for i := 0; i <= d; i++ {
		mi := new(big.Rat).SetInt(a.MinPoly[i])
		coeff := new(big.Rat).Mul(mi, c1pow[d-i])
		result = ratPolyAddP(result, ratPolyScaleP(power, coeff))
		if i < d {
			power = ratPolyMul(power, xMinusC0)
		}
	}
	return &Alg{MinPoly: result.toPrimitiveInt(), Enclosure: enc}
}

func ratPolyAddP(a, b ratPoly) ratPoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(ratPoly, n)
	for i := range out {
		out[i] = new(big.Rat)
		if i < len(a) {
			out[i].Add(out[i], a[i])
		}
		if i < len(b) {
			out[i].Add(out[i], b[i])
		}
	}
	return out
}

func ratPolyScaleP(a ratPoly, c *big.Rat) ratPoly {
	out := make(ratPoly, len(a))
	for i, v := range a {
		out[i] = new(big.Rat).Mul(v, c)
	}
	return out
}

// combineAnnihilator computes an integer polynomial (not necessarily
// minimal -- see NewFromAnnihilator) vanishing at the combination of a's
// and b's roots described by expand, using evaluation at deg(a)*deg(b)+1
// rational sample points followed by Lagrange interpolation. degLimit
// bounds the produced degree (callers pass QQBAR_DEG_LIMIT); above the
// limit the caller should fall back to a Multi-field representation
// instead of collapsing to a single algebraic number.
func combineAnnihilator(f, g intPoly, expand func(coeffAt func(i int) *big.Rat, deg int, x0 *big.Rat) ratPoly, degLimit int) []*big.Int {
	da := f.degree()
	db := g.degree()
	maxDeg := da * db
	if degLimit > 0 && maxDeg > degLimit {
		maxDeg = degLimit
	}
	n := maxDeg + 1
	xs := make([]*big.Rat, n)
	ys := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		x0 := big.NewRat(int64(i+1), 1)
		xs[i] = x0
		fy := expand(func(k int) *big.Rat { return new(big.Rat).SetInt(f[k]) }, da, x0)
		ys[i] = resultantScalar(fy, fromInt(g))
	}
	return lagrangeInterpolateInt(xs, ys)
}
