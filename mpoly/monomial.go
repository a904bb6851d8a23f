// Package mpoly implements multivariate polynomials over Z, rational
// functions built from them, and the ideal quasi-division primitive that
// spec.md section 9 calls out as "the single largest external contract":
// reduce a numerator/denominator pair modulo a reduction ideal, returning
// a reduced fraction plus a rational scaling factor. The real calcium
// library delegates this to FLINT's fmpz_mpoly_q / Gröbner-basis machinery
// (component C1, external collaborator); this package is calcium's
// self-contained, appropriately scoped stand-in for it.
package mpoly

import (
	"fmt"
	"strings"
)

// Monomial is an exponent vector, one entry per generator variable.
type Monomial []int

func (m Monomial) clone() Monomial {
	out := make(Monomial, len(m))
	copy(out, m)
	return out
}

func (m Monomial) add(n Monomial) Monomial {
	out := make(Monomial, len(m))
	for i := range m {
		out[i] = m[i] + n[i]
	}
	return out
}

// divides reports whether m | n componentwise, returning the quotient n-m.
func (m Monomial) divides(n Monomial) (Monomial, bool) {
	out := make(Monomial, len(m))
	for i := range m {
		if m[i] > n[i] {
			return nil, false
		}
		out[i] = n[i] - m[i]
	}
	return out, true
}

func (m Monomial) isZero() bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}
	return true
}

func (m Monomial) totalDegree() int {
	d := 0
	for _, e := range m {
		d += e
	}
	return d
}

func (m Monomial) key() string {
	var sb strings.Builder
	for i, e := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", e)
	}
	return sb.String()
}

// cmpGradedLex orders monomials by total degree, then lexicographically
// on the exponent vector (first variable first); this is the "chosen monomial order" spec.md
// 4.2/4.6.1 refers to without pinning its exact identity (the source
// likewise treats the monomial order as an internal policy, not an
// observable contract).
func cmpGradedLex(a, b Monomial) int {
	da, db := a.totalDegree(), b.totalDegree()
	if da != db {
		if da > db {
			return 1
		}
		return -1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}
