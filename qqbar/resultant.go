package qqbar

import "math/big"

// ratMatrixDet computes the determinant of a square matrix of big.Rat by
// Gaussian elimination over Q. Used to evaluate the Sylvester
// resultant of two scalar-coefficient polynomials at a single point; see
// resultantScalar below.
func ratMatrixDet(m [][]*big.Rat) *big.Rat {
	n := len(m)
	a := make([][]*big.Rat, n)
	for i := range m {
		a[i] = make([]*big.Rat, n)
		for j := range m[i] {
			a[i][j] = new(big.Rat).Set(m[i][j])
		}
	}

	det := big.NewRat(1, 1)
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if a[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return new(big.Rat) // singular: determinant 0
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			det.Neg(det)
		}
		det.Mul(det, a[col][col])
		invPivot := new(big.Rat).Inv(a[col][col])
		for row := col + 1; row < n; row++ {
			if a[row][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Mul(a[row][col], invPivot)
			for k := col; k < n; k++ {
				term := new(big.Rat).Mul(factor, a[col][k])
				a[row][k] = new(big.Rat).Sub(a[row][k], term)
			}
		}
	}
	return det
}

// sylvester builds the Sylvester matrix of two scalar-coefficient
// polynomials f (degree m) and g (degree n), both given low-degree first.
func sylvester(f, g ratPoly) [][]*big.Rat {
	f = f.trim()
	g = g.trim()
	m := f.degree()
	n := g.degree()
	size := m + n
	mat := make([][]*big.Rat, size)
	for i := range mat {
		mat[i] = make([]*big.Rat, size)
		for j := range mat[i] {
			mat[i][j] = new(big.Rat)
		}
	}
	// n rows of shifted f (highest degree coefficient first, per the
	// classical Sylvester layout).
	for r := 0; r < n; r++ {
		for i := 0; i <= m; i++ {
			mat[r][r+i] = new(big.Rat).Set(f[m-i])
		}
	}
	for r := 0; r < m; r++ {
		for i := 0; i <= n; i++ {
			mat[n+r][r+i] = new(big.Rat).Set(g[n-i])
		}
	}
	return mat
}

// resultantScalar computes Res(f, g) for two scalar-coefficient polynomials.
func resultantScalar(f, g ratPoly) *big.Rat {
	f = f.trim()
	g = g.trim()
	if f.degree() <= 0 || g.degree() <= 0 {
		// Degenerate cases (constant factors) are not needed by this
		// module's callers, which always combine two genuine algebraic
		// numbers of degree >= 1.
		if f.degree() == 0 {
			v := f[0]
			res := new(big.Rat).SetInt64(1)
			for i := 0; i < g.degree(); i++ {
				res.Mul(res, v)
			}
			return res
		}
		return new(big.Rat)
	}
	return ratMatrixDet(sylvester(f, g))
}

// resultantOfShiftedAndG evaluates, at the rational point x0, the
// resultant Res_y( f(x0 - y), g(y) ) where f and g are integer polynomials.
// f(x0-y) is expanded directly as a scalar-coefficient polynomial in y by
// substituting the concrete rational x0, which keeps the whole computation
// in plain big.Rat arithmetic (no bivariate polynomial ring is needed).
func resultantOfShiftedAndG(f, g intPoly, x0 *big.Rat, combine func(coeffAt func(i int) *big.Rat, deg int, x0 *big.Rat) ratPoly) *big.Rat {
	deg := f.degree()
	fy := combine(func(i int) *big.Rat { return new(big.Rat).SetInt(f[i]) }, deg, x0)
	return resultantScalar(fy, fromInt(g))
}

// shiftedAdd expands f(x0 - y) as a polynomial in y (low-degree first)
// given f's coefficients (accessed via coeffAt) and its degree.
func shiftedAdd(coeffAt func(i int) *big.Rat, deg int, x0 *big.Rat) ratPoly {
	// f(x0 - y) = sum_i f_i * (x0 - y)^i. Build via repeated convolution.
	result := ratPoly{new(big.Rat)}
	base := ratPoly{new(big.Rat).Set(x0), big.NewRat(-1, 1)} // x0 - y
	term := ratPoly{new(big.Rat).SetInt64(1)}                // (x0-y)^0
	for i := 0; i <= deg; i++ {
		ci := coeffAt(i)
		for len(result) < len(term) {
			result = append(result, new(big.Rat))
		}
		for k, c := range term {
			scaled := new(big.Rat).Mul(c, ci)
			result[k] = new(big.Rat).Add(result[k], scaled)
		}
		term = ratPolyMul(term, base)
	}
	return result.trim()
}

// shiftedMul expands y^deg * f(x0/y) as a polynomial in y: this equals
// sum_i f_i * x0^i * y^(deg-i), a clean scalar-coefficient polynomial with
// no division by y involved.
func shiftedMul(coeffAt func(i int) *big.Rat, deg int, x0 *big.Rat) ratPoly {
	out := make(ratPoly, deg+1)
	for i := 0; i <= deg; i++ {
		pow := new(big.Rat).SetInt64(1)
		for k := 0; k < i; k++ {
			pow.Mul(pow, x0)
		}
		out[deg-i] = new(big.Rat).Mul(coeffAt(i), pow)
	}
	return ratPoly(out).trim()
}

func ratPolyMul(a, b ratPoly) ratPoly {
	if len(a) == 0 || len(b) == 0 {
		return ratPoly{new(big.Rat)}
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
			if bj.Sign() == 0 {
				continue
			}
			out[i+j] = new(big.Rat).Add(out[i+j], new(big.Rat).Mul(ai, bj))
		}
	}
	return out.trim()
}

// lagrangeInterpolateInt recovers an integer polynomial of degree < len(xs)
// from sample points (xs[i], ys[i]) where ys are exact big.Rat values known
// (by construction) to interpolate to a polynomial with integer
// coefficients, via Lagrange interpolation followed by exact rounding.
func lagrangeInterpolateInt(xs []*big.Rat, ys []*big.Rat) intPoly {
	n := len(xs)
	coeffs := make(ratPoly, n)
	for i := range coeffs {
		coeffs[i] = new(big.Rat)
	}
	for i := 0; i < n; i++ {
		// Build the i-th Lagrange basis polynomial L_i(x) = prod_{j!=i} (x-xj)/(xi-xj).
		basis := ratPoly{new(big.Rat).SetInt64(1)}
		denom := new(big.Rat).SetInt64(1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			factor := ratPoly{new(big.Rat).Neg(xs[j]), new(big.Rat).SetInt64(1)} // (x - xj)
			basis = ratPolyMul(basis, factor)
			denom.Mul(denom, new(big.Rat).Sub(xs[i], xs[j]))
		}
		scale := new(big.Rat).Quo(ys[i], denom)
		for k, c := range basis {
			term := new(big.Rat).Mul(c, scale)
			coeffs[k] = new(big.Rat).Add(coeffs[k], term)
		}
	}
	out := make(intPoly, n)
	for i, c := range coeffs {
		if c.IsInt() {
			out[i] = new(big.Int).Set(c.Num())
		} else {
			// Should not happen for genuine annihilating polynomials;
			// round to nearest as a defensive fallback.
			num := new(big.Int).Add(new(big.Int).Mul(c.Num(), big.NewInt(2)), c.Denom())
			den := new(big.Int).Mul(c.Denom(), big.NewInt(2))
			q := new(big.Int).Div(num, den)
			out[i] = q
		}
	}
	return intPoly(out).trim()
}
