package mpoly

import "math/big"

// RatFunc is a multivariate rational function Num/Den over Z, reduced
// modulo a Multi field's ideal after every multiplicative step (spec.md
// 4.6.1/4.6.2). Den is never the zero polynomial.
type RatFunc struct {
	Num *Poly
	Den *Poly
}

// NewConstantRat returns the rational function c/1 in n variables.
func NewConstantRat(n int, c *big.Rat) *RatFunc {
	num := Constant(n, new(big.Int).Set(c.Num()))
	den := Constant(n, new(big.Int).Set(c.Denom()))
	return &RatFunc{Num: num, Den: den}
}

// FromPoly lifts a polynomial to Num/1.
func FromPoly(p *Poly) *RatFunc {
	return &RatFunc{Num: p, Den: Constant(p.NVars, big.NewInt(1))}
}

// IsZero reports whether the fraction is identically zero.
func (r *RatFunc) IsZero() bool {
	return r.Num.IsZero()
}

// IsConstant reports whether r is a rational constant.
func (r *RatFunc) IsConstant() (*big.Rat, bool) {
	nc, nok := r.Num.IsConstant()
	dc, dok := r.Den.IsConstant()
	if nok && dok {
		return new(big.Rat).SetFrac(nc, dc), true
	}
	return nil, false
}

// AddRat returns x+y as an unreduced fraction: (xn*yd + yn*xd) / (xd*yd).
func AddRat(x, y *RatFunc) *RatFunc {
	num := Add(Mul(x.Num, y.Den), Mul(y.Num, x.Den))
	den := Mul(x.Den, y.Den)
	return &RatFunc{Num: num, Den: den}
}

// SubRat returns x-y.
func SubRat(x, y *RatFunc) *RatFunc {
	num := Sub(Mul(x.Num, y.Den), Mul(y.Num, x.Den))
	den := Mul(x.Den, y.Den)
	return &RatFunc{Num: num, Den: den}
}

// MulRat returns x*y.
func MulRat(x, y *RatFunc) *RatFunc {
	return &RatFunc{Num: Mul(x.Num, y.Num), Den: Mul(x.Den, y.Den)}
}

// DivRat returns x/y.
func DivRat(x, y *RatFunc) *RatFunc {
	return &RatFunc{Num: Mul(x.Num, y.Den), Den: Mul(x.Den, y.Num)}
}

// NegRat returns -x.
func NegRat(x *RatFunc) *RatFunc {
	return &RatFunc{Num: Neg(x.Num), Den: x.Den}
}

// InvRat returns 1/x.
func InvRat(x *RatFunc) *RatFunc {
	return &RatFunc{Num: x.Den, Den: x.Num}
}

// ReduceIdeal reduces both numerator and denominator modulo ideal, then
// reconciles the two scale factors the quasi-division introduces into a
// single overall rational scale applied to the fraction -- spec.md 4.6.1.
func ReduceIdeal(x *RatFunc, ideal *Ideal) *RatFunc {
	if ideal == nil || len(ideal.Gens) == 0 {
		return Canonicalize(x)
	}
	redNum, scaleNum := ideal.QuasiDivRemIdeal(x.Num)
	redDen, scaleDen := ideal.QuasiDivRemIdeal(x.Den)

	// scaleNum * Num == redNum (mod ideal); scaleDen * Den == redDen.
	// Num/Den == (redNum/scaleNum) / (redDen/scaleDen) == (redNum*scaleDen) / (redDen*scaleNum)
	overall := new(big.Rat).Quo(scaleDen, scaleNum)
	num := Scale(redNum, overall.Num())
	den := Scale(redDen, overall.Denom())
	return Canonicalize(&RatFunc{Num: num, Den: den})
}

// Canonicalize divides Num and Den by their shared content and normalizes
// the denominator's leading coefficient to be positive.
func Canonicalize(x *RatFunc) *RatFunc {
	if x.Num.IsZero() {
		return &RatFunc{Num: New(x.Num.NVars), Den: Constant(x.Den.NVars, big.NewInt(1))}
	}
	g := new(big.Int).GCD(nil, nil, x.Num.Content(), x.Den.Content())
	numC := divExactByContent(x.Num, g)
	denC := divExactByContent(x.Den, g)
	if _, coeff, ok := denC.LeadingTerm(); ok && coeff.Sign() < 0 {
		numC = Neg(numC)
		denC = Neg(denC)
	}
	return &RatFunc{Num: numC, Den: denC}
}

func divExactByContent(p *Poly, g *big.Int) *Poly {
	if g.Cmp(big.NewInt(1)) == 0 {
		return p.Clone()
	}
	out := New(p.NVars)
	for _, t := range p.terms {
		q := new(big.Int).Div(t.coeff, g)
		out.setTerm(t.exp, q)
	}
	return out
}
