package qqbar

import "math/big"

// intPoly is a dense univariate polynomial over Z, coefficients indexed
// low-degree first: intPoly[i] is the coefficient of x^i.
type intPoly []*big.Int

func newIntPoly(coeffs ...int64) intPoly {
	p := make(intPoly, len(coeffs))
	for i, c := range coeffs {
		p[i] = big.NewInt(c)
	}
	return p
}

func (p intPoly) clone() intPoly {
	out := make(intPoly, len(p))
	for i, c := range p {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// trim drops trailing zero coefficients, leaving at least the constant term.
func (p intPoly) trim() intPoly {
	n := len(p)
	for n > 1 && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

func (p intPoly) degree() int {
	q := p.trim()
	if len(q) == 1 && q[0].Sign() == 0 {
		return -1
	}
	return len(q) - 1
}

func (p intPoly) isZero() bool {
	for _, c := range p {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// content returns the gcd of all (nonzero) coefficients, always positive.
func (p intPoly) content() *big.Int {
	g := big.NewInt(0)
	for _, c := range p {
		if c.Sign() != 0 {
			g = new(big.Int).GCD(nil, nil, g, new(big.Int).Abs(c))
		}
	}
	if g.Sign() == 0 {
		g.SetInt64(1)
	}
	return g
}

// primitivePart returns p / content(p), leading coefficient forced positive.
func (p intPoly) primitivePart() intPoly {
	p = p.trim()
	c := p.content()
	out := make(intPoly, len(p))
	for i, v := range p {
		q := new(big.Int)
		q.Div(v, c)
		out[i] = q
	}
	if out[len(out)-1].Sign() < 0 {
		for i := range out {
			out[i].Neg(out[i])
		}
	}
	return out.trim()
}

// evalRat evaluates p at a rational point using Horner's method.
func (p intPoly) evalRat(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, new(big.Rat).SetInt(p[i]))
	}
	return acc
}

// derivative returns p'.
func (p intPoly) derivative() intPoly {
	p = p.trim()
	if len(p) <= 1 {
		return newIntPoly(0)
	}
	out := make(intPoly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = new(big.Int).Mul(p[i], big.NewInt(int64(i)))
	}
	return out.trim()
}

// ---- rational-coefficient polynomials, used for gcd / squarefree part ----

type ratPoly []*big.Rat

func fromInt(p intPoly) ratPoly {
	out := make(ratPoly, len(p))
	for i, c := range p {
		out[i] = new(big.Rat).SetInt(c)
	}
	return out
}

func (p ratPoly) trim() ratPoly {
	n := len(p)
	for n > 1 && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

func (p ratPoly) degree() int {
	q := p.trim()
	if len(q) == 1 && q[0].Sign() == 0 {
		return -1
	}
	return len(q) - 1
}

func ratPolyMod(a, b ratPoly) ratPoly {
	a = append(ratPoly{}, a.trim()...)
	b = b.trim()
	db := b.degree()
	if db < 0 {
		panic("qqbar: division by zero polynomial")
	}
	lead := b[db]
	for a.degree() >= db {
		da := a.degree()
		coeff := new(big.Rat).Quo(a[da], lead)
		shift := da - db
		for i := 0; i <= db; i++ {
			term := new(big.Rat).Mul(coeff, b[i])
			a[shift+i] = new(big.Rat).Sub(a[shift+i], term)
		}
		a = a.trim()
		if a.degree() < 0 {
			break
		}
	}
	return a
}

// gcd computes the monic gcd of a and b over Q via the Euclidean algorithm.
func ratPolyGCD(a, b ratPoly) ratPoly {
	a = a.trim()
	b = b.trim()
	for b.degree() >= 0 {
		a, b = b, ratPolyMod(a, b)
	}
	if a.degree() < 0 {
		return a
	}
	lead := a[a.degree()]
	out := make(ratPoly, len(a))
	for i, c := range a {
		out[i] = new(big.Rat).Quo(c, lead)
	}
	return out
}

// toPrimitiveInt clears denominators and takes the primitive part.
func (p ratPoly) toPrimitiveInt() intPoly {
	p = p.trim()
	lcm := big.NewInt(1)
	for _, c := range p {
		d := c.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Div(d, g))
	}
	out := make(intPoly, len(p))
	for i, c := range p {
		n := new(big.Int).Mul(c.Num(), new(big.Int).Div(lcm, c.Denom()))
		out[i] = n
	}
	return intPoly(out).primitivePart()
}

// squarefreePart returns p / gcd(p, p'), the annihilating polynomial with
// all repeated roots removed. This does not factor p into irreducibles
// (factorization over Q is outside this module's scope, per spec.md's
// qqbar-as-external-collaborator framing); it only guarantees the result
// is squarefree, which is enough to disambiguate a single root via its
// enclosure.
func (p intPoly) squarefreePart() intPoly {
	d := p.derivative()
	if d.isZero() {
		return p.primitivePart()
	}
	g := ratPolyGCD(fromInt(p), fromInt(d))
	if g.degree() <= 0 {
		return p.primitivePart()
	}
	quotRat := ratPolyDiv(fromInt(p), g)
	return quotRat.toPrimitiveInt()
}

// ratPolyDiv returns the exact quotient a/b (assumes b divides a).
func ratPolyDiv(a, b ratPoly) ratPoly {
	a = append(ratPoly{}, a.trim()...)
	b = b.trim()
	db := b.degree()
	lead := b[db]
	da := a.degree()
	if da < db {
		return ratPoly{new(big.Rat)}
	}
	quot := make(ratPoly, da-db+1)
	for a.degree() >= db {
		cda := a.degree()
		coeff := new(big.Rat).Quo(a[cda], lead)
		shift := cda - db
		quot[shift] = coeff
		for i := 0; i <= db; i++ {
			term := new(big.Rat).Mul(coeff, b[i])
			a[shift+i] = new(big.Rat).Sub(a[shift+i], term)
		}
		a = a.trim()
		if a.degree() < 0 {
			break
		}
	}
	for i := range quot {
		if quot[i] == nil {
			quot[i] = new(big.Rat)
		}
	}
	return quot
}
