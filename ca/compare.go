package ca

import (
	"math/big"
	"sort"

	"calcium/ext"
	"calcium/field"
	"calcium/mpoly"
)

// kindOrder gives the four special kinds a fixed position in the total
// order Compare imposes, with KindFinite sorting last (arbitrary but
// stable) so that every pair of Ca values -- special or not -- has a
// well-defined relative order for interning function-extension arguments.
func kindOrder(k Kind) int {
	switch k {
	case KindUndefined:
		return 0
	case KindUnknown:
		return 1
	case KindUnsignedInfinity:
		return 2
	case KindSignedInfinity:
		return 3
	default:
		return 4
	}
}

// Compare imposes a total (structural, not mathematical) order over Ca
// values, used to canonically order ext.NewFunction arguments (spec.md
// 4.1.3). It is NOT a numeric
// comparison: two Ca values that are mathematically equal but represented
// in different fields compare unequal here (see predicate.CheckEqual for
// the semantic comparison).
func Compare(a, b *Ca) int {
	if a.kind != b.kind {
		return kindOrder(a.kind) - kindOrder(b.kind)
	}
	switch a.kind {
	case KindUndefined, KindUnknown, KindUnsignedInfinity:
		return 0
	case KindSignedInfinity:
		return Compare(a.dir, b.dir)
	default:
		if c := field.Compare(a.fld, b.fld); c != 0 {
			return c
		}
		return compareSameField(a, b)
	}
}

func compareSameField(a, b *Ca) int {
	switch a.fld.Kind {
	case field.KindQ:
		return a.rat.Cmp(b.rat)
	case field.KindNumberField:
		for i := range a.nf {
			if c := a.nf[i].Cmp(b.nf[i]); c != 0 {
				return c
			}
		}
		return 0
	default:
		if c := comparePoly(a.rf.Num, b.rf.Num); c != 0 {
			return c
		}
		return comparePoly(a.rf.Den, b.rf.Den)
	}
}

// comparePoly orders two polynomials lexicographically by their sorted
// terms (lexicographic by exponent vector, then coefficient), a cheap total
// order adequate for canonical argument ordering -- it need not agree with
// any numerical ordering.
func comparePoly(p, q *mpoly.Poly) int {
	pt, qt := sortedForCompare(p), sortedForCompare(q)
	for i := 0; i < len(pt) && i < len(qt); i++ {
		for j := range pt[i].Exp {
			if pt[i].Exp[j] != qt[i].Exp[j] {
				return pt[i].Exp[j] - qt[i].Exp[j]
			}
		}
		if c := pt[i].Coeff.Cmp(qt[i].Coeff); c != 0 {
			return c
		}
	}
	return len(pt) - len(qt)
}

func sortedForCompare(p *mpoly.Poly) []mpoly.Term {
	terms := p.Terms()
	sort.Slice(terms, func(i, j int) bool {
		for k := range terms[i].Exp {
			if terms[i].Exp[k] != terms[j].Exp[k] {
				return terms[i].Exp[k] < terms[j].Exp[k]
			}
		}
		return terms[i].Coeff.Cmp(terms[j].Coeff) < 0
	})
	return terms
}

// EqualRepr decides structural representation equality (spec.md/original
// ca_equal_repr, restored per SPEC_FULL.md section 3): same kind, same
// field, and identical payload -- deliberately stricter than mathematical
// equality (package predicate's CheckEqual), and used by the special-value
// table and by CheckEqual's signed-infinity direction check to recognize
// "already this exact representation" without invoking the predicate
// cascade.
func EqualRepr(a, b *Ca) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindUndefined, KindUnknown, KindUnsignedInfinity:
		return true
	case KindSignedInfinity:
		return EqualRepr(a.dir, b.dir)
	default:
		if !field.Equal(a.fld, b.fld) {
			return false
		}
		switch a.fld.Kind {
		case field.KindQ:
			return a.rat.Cmp(b.rat) == 0
		case field.KindNumberField:
			return nfEqual(a.nf, b.nf)
		default:
			return a.rf.Num.Equal(b.rf.Num) && a.rf.Den.Equal(b.rf.Den)
		}
	}
}

// IsGenAsExt reports whether x is, exactly, the embedding of one of its
// field's own generators (spec.md's "is this element literally a
// generator", used by package predicate's CheckIsAlgebraic and package
// transcendental's exp/log folding to recognize a bare extension).
func IsGenAsExt(x *Ca) (g *ext.Ext, ok bool) {
	if x.kind != KindFinite || x.fld.Kind != field.KindMulti {
		return nil, false
	}
	den, denOk := x.rf.Den.IsConstant()
	if !denOk || den.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	for i, gen := range x.fld.Gens {
		if isPureVar(x.rf.Num, i) {
			return gen, true
		}
	}
	return nil, false
}

// RationalMultipleOfGenerator reports whether x equals coeff*g for some
// rational coeff and some g among x's own Multi-field generators -- the
// general form of which IsGenAsExt (coeff exactly 1) is the special case.
// Package transcendental uses this to recognize arguments like pi/6 as a
// rational multiple of the Pi generator, the precondition the rational-
// multiple-of-pi trig closed forms (spec.md 4.7.4) and the root-of-unity
// exp/log closed forms (spec.md 4.7.1/4.7.2) need.
func RationalMultipleOfGenerator(x *Ca) (coeff *big.Rat, g *ext.Ext, ok bool) {
	if x.kind != KindFinite || x.fld.Kind != field.KindMulti {
		return nil, nil, false
	}
	den, denOk := x.rf.Den.IsConstant()
	if !denOk || den.Sign() == 0 {
		return nil, nil, false
	}
	for i, gen := range x.fld.Gens {
		if c, ok := pureVarCoeff(x.rf.Num, i); ok {
			return new(big.Rat).Quo(new(big.Rat).SetInt(c), den), gen, true
		}
	}
	return nil, nil, false
}

// pureVarCoeff reports whether p is exactly c times the i-th variable (a
// single term, any nonzero integer coefficient, exponent 1 at i and 0
// elsewhere), returning that coefficient.
func pureVarCoeff(p *mpoly.Poly, i int) (*big.Int, bool) {
	terms := p.Terms()
	if len(terms) != 1 {
		return nil, false
	}
	t := terms[0]
	for j, e := range t.Exp {
		want := 0
		if j == i {
			want = 1
		}
		if e != want {
			return nil, false
		}
	}
	return t.Coeff, true
}

// SplitByImaginaryGenerator reports whether x's Multi field lifted the
// distinguished Q(i) generator in among its algebraic generators (as
// ca/merge.go's field merge does whenever an expression combines i with a
// transcendental like pi or e), and if so splits x == re + i*im along that
// generator. This is sound without any further normalization: the
// generator's own x^2+1 ideal relation keeps its exponent at most 1 in any
// reduced representation, so "terms with exponent 0" and "terms with
// exponent 1" exhaustively partition x's numerator. Requires the
// denominator to not itself depend on that generator (the ordinary case,
// since arithmetic rationalizes a complex denominator as it reduces); a
// denominator that still depends on it reports ok=false rather than
// attempting a rationalization this helper cannot verify.
func SplitByImaginaryGenerator(x *Ca) (re, im *Ca, ok bool) {
	if x.kind != KindFinite || x.fld.Kind != field.KindMulti {
		return nil, nil, false
	}
	idx := -1
	iGenerator := I(x.ctx).Field().Generator()
	for i, g := range x.fld.Gens {
		if g.IsAlgebraic && ext.Equal(g, iGenerator) {
			idx = i
			break
		}
	}
	if idx < 0 || !constantInVar(x.rf.Den, idx) {
		return nil, nil, false
	}
	reNum, imNum, ok := splitPolyByVarPower(x.rf.Num, idx)
	if !ok {
		return nil, nil, false
	}
	reRF := &mpoly.RatFunc{Num: reNum, Den: x.rf.Den}
	imRF := &mpoly.RatFunc{Num: imNum, Den: x.rf.Den}
	return fromFieldElem(x.ctx, x.fld, nil, nfElem{}, reRF), fromFieldElem(x.ctx, x.fld, nil, nfElem{}, imRF), true
}

// constantInVar reports whether every term of p has exponent 0 at index i.
func constantInVar(p *mpoly.Poly, i int) bool {
	for _, t := range p.Terms() {
		if t.Exp[i] != 0 {
			return false
		}
	}
	return true
}

// splitPolyByVarPower partitions p's terms by their exponent at index i,
// which after ideal reduction against a degree-2 generator's relation is
// always 0 or 1: the exponent-0 terms form the real part directly, and the
// exponent-1 terms (with that exponent zeroed back out) form the
// imaginary part's coefficient of the generator. Any other exponent means
// p was not actually reduced against that generator's relation, and ok is
// false.
func splitPolyByVarPower(p *mpoly.Poly, i int) (reNum, imNum *mpoly.Poly, ok bool) {
	n := p.NVars
	reNum, imNum = mpoly.New(n), mpoly.New(n)
	for _, t := range p.Terms() {
		switch t.Exp[i] {
		case 0:
			reNum = mpoly.Add(reNum, mpoly.MulMonomial(mpoly.Constant(n, big.NewInt(1)), t.Coeff, t.Exp))
		case 1:
			e := append(mpoly.Monomial(nil), t.Exp...)
			e[i] = 0
			imNum = mpoly.Add(imNum, mpoly.MulMonomial(mpoly.Constant(n, big.NewInt(1)), t.Coeff, e))
		default:
			return nil, nil, false
		}
	}
	return reNum, imNum, true
}

// isPureVar reports whether p is exactly the i-th variable (coefficient 1,
// no other terms): the multivariate-polynomial signature of "this Multi-
// field element is literally one of its own generators", which is what
// IsGenAsExt looks for.
func isPureVar(p *mpoly.Poly, i int) bool {
	terms := p.Terms()
	if len(terms) != 1 {
		return false
	}
	t := terms[0]
	if t.Coeff.Cmp(big.NewInt(1)) != 0 {
		return false
	}
	for j, e := range t.Exp {
		want := 0
		if j == i {
			want = 1
		}
		if e != want {
			return false
		}
	}
	return true
}
