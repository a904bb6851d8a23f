package mpoly

import (
	"math/big"
	"sort"
	"strings"
)

// Poly is a multivariate polynomial over Z in NVars variables, stored as a
// sparse map from monomial key to (exponents, coefficient). Terms with a
// zero coefficient are never retained.
type Poly struct {
	NVars int
	terms map[string]termEntry
}

type termEntry struct {
	exp   Monomial
	coeff *big.Int
}

// New returns the zero polynomial in n variables.
func New(n int) *Poly {
	return &Poly{NVars: n, terms: map[string]termEntry{}}
}

// Constant returns the constant polynomial c in n variables.
func Constant(n int, c *big.Int) *Poly {
	p := New(n)
	if c.Sign() != 0 {
		p.setTerm(make(Monomial, n), new(big.Int).Set(c))
	}
	return p
}

// Var returns the polynomial equal to the i-th generator variable (0-based).
func Var(n, i int) *Poly {
	p := New(n)
	e := make(Monomial, n)
	e[i] = 1
	p.setTerm(e, big.NewInt(1))
	return p
}

func (p *Poly) setTerm(exp Monomial, coeff *big.Int) {
	if coeff.Sign() == 0 {
		delete(p.terms, exp.key())
		return
	}
	p.terms[exp.key()] = termEntry{exp: exp, coeff: coeff}
}

// Clone deep-copies p.
func (p *Poly) Clone() *Poly {
	out := New(p.NVars)
	for k, t := range p.terms {
		out.terms[k] = termEntry{exp: t.exp.clone(), coeff: new(big.Int).Set(t.coeff)}
	}
	return out
}

// IsZero reports whether p has no terms.
func (p *Poly) IsZero() bool {
	return len(p.terms) == 0
}

// IsConstant reports whether p is a constant, returning its value.
func (p *Poly) IsConstant() (*big.Int, bool) {
	if len(p.terms) == 0 {
		return big.NewInt(0), true
	}
	if len(p.terms) == 1 {
		for _, t := range p.terms {
			if t.exp.isZero() {
				return new(big.Int).Set(t.coeff), true
			}
		}
	}
	return nil, false
}

// sortedTerms returns p's terms ordered by cmpGradedLex, highest first.
func (p *Poly) sortedTerms() []termEntry {
	out := make([]termEntry, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return cmpGradedLex(out[i].exp, out[j].exp) > 0
	})
	return out
}

// Term is an exported view of a single monomial/coefficient pair, used by
// callers (e.g. package ca's ball evaluator) that need to walk every term
// of a polynomial without depending on its internal map representation.
type Term struct {
	Exp   Monomial
	Coeff *big.Int
}

// Terms returns every nonzero term of p in an unspecified order.
func (p *Poly) Terms() []Term {
	out := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, Term{Exp: t.exp, Coeff: t.coeff})
	}
	return out
}

// LeadingTerm returns the highest-order term under the fixed monomial
// order, or (nil, nil, false) for the zero polynomial.
func (p *Poly) LeadingTerm() (Monomial, *big.Int, bool) {
	if p.IsZero() {
		return nil, nil, false
	}
	terms := p.sortedTerms()
	return terms[0].exp, terms[0].coeff, true
}

// Equal reports structural equality.
func (p *Poly) Equal(q *Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for k, t := range p.terms {
		u, ok := q.terms[k]
		if !ok || t.coeff.Cmp(u.coeff) != 0 {
			return false
		}
	}
	return true
}

// Add returns p+q.
func Add(p, q *Poly) *Poly {
	out := p.Clone()
	for k, t := range q.terms {
		if cur, ok := out.terms[k]; ok {
			sum := new(big.Int).Add(cur.coeff, t.coeff)
			out.setTerm(t.exp, sum)
		} else {
			out.setTerm(t.exp, new(big.Int).Set(t.coeff))
		}
	}
	return out
}

// Neg returns -p.
func Neg(p *Poly) *Poly {
	out := New(p.NVars)
	for _, t := range p.terms {
		out.setTerm(t.exp, new(big.Int).Neg(t.coeff))
	}
	return out
}

// Sub returns p-q.
func Sub(p, q *Poly) *Poly {
	return Add(p, Neg(q))
}

// Scale returns c*p.
func Scale(p *Poly, c *big.Int) *Poly {
	if c.Sign() == 0 {
		return New(p.NVars)
	}
	out := New(p.NVars)
	for _, t := range p.terms {
		out.setTerm(t.exp, new(big.Int).Mul(t.coeff, c))
	}
	return out
}

// MulMonomial returns c*x^exp*p.
func MulMonomial(p *Poly, c *big.Int, exp Monomial) *Poly {
	out := New(p.NVars)
	for _, t := range p.terms {
		out.setTerm(t.exp.add(exp), new(big.Int).Mul(t.coeff, c))
	}
	return out
}

// Mul returns p*q.
func Mul(p, q *Poly) *Poly {
	out := New(p.NVars)
	for _, tp := range p.terms {
		for _, tq := range q.terms {
			exp := tp.exp.add(tq.exp)
			coeff := new(big.Int).Mul(tp.coeff, tq.coeff)
			key := exp.key()
			if cur, ok := out.terms[key]; ok {
				out.setTerm(exp, new(big.Int).Add(cur.coeff, coeff))
			} else {
				out.setTerm(exp, coeff)
			}
		}
	}
	return out
}

// Content returns the gcd of all coefficients (positive), or 1 for the
// zero polynomial.
func (p *Poly) Content() *big.Int {
	g := big.NewInt(0)
	for _, t := range p.terms {
		g = new(big.Int).GCD(nil, nil, g, new(big.Int).Abs(t.coeff))
	}
	if g.Sign() == 0 {
		g.SetInt64(1)
	}
	return g
}

// Eval evaluates p at a point given as one *big.Rat per variable.
func (p *Poly) Eval(point []*big.Rat) *big.Rat {
	acc := new(big.Rat)
	for _, t := range p.terms {
		term := new(big.Rat).SetInt(t.coeff)
		for i, e := range t.exp {
			for k := 0; k < e; k++ {
				term.Mul(term, point[i])
			}
		}
		acc.Add(acc, term)
	}
	return acc
}

func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	terms := p.sortedTerms()
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		var sb strings.Builder
		sb.WriteString(t.coeff.String())
		for i, e := range t.exp {
			if e == 0 {
				continue
			}
			sb.WriteString("*x")
			sb.WriteString(big.NewInt(int64(i)).String())
			if e != 1 {
				sb.WriteByte('^')
				sb.WriteString(big.NewInt(int64(e)).String())
			}
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, " + ")
}
