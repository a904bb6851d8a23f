// Package convert implements spec.md component C9: the destructors that
// pull a Ca back out to a rational, an integer, an algebraic number, or a
// numerical ball; decimal-string formatting; a minimal multiplicative
// factorization; and the symbolic-expression serialization pair
// (to_symbolic_expression/from_symbolic_expression) that lets an element
// move between Contexts the way spec.md's `transfer` operation describes.
package convert

import (
	"fmt"
	"math/big"

	"calcium/bigball"
	"calcium/ca"
	"calcium/context"
	"calcium/ext"
	"calcium/field"
	"calcium/mpoly"
	"calcium/qqbar"
)

// ToRational returns x's exact rational value, when x is (exactly) one.
func ToRational(x *ca.Ca) (*big.Rat, bool) {
	return x.Rational()
}

// ToInteger returns x's exact integer value, when x is an integer.
func ToInteger(x *ca.Ca) (*big.Int, bool) {
	r, ok := x.Rational()
	if !ok || !r.IsInt() {
		return nil, false
	}
	return new(big.Int).Set(r.Num()), true
}

// ToQQbar returns x as an algebraic number, when x's condensed field is Q
// or a NumberField. Every NumberField this module constructs has a
// degree-2 generator (sqrt(n) or i), so every element is exactly
// c0 + c1*generator and qqbar.ComposeLinear applies directly; a
// NumberField of higher degree (which nothing in this module currently
// builds) would need general polynomial composition, out of scope here
// (see DESIGN.md).
func ToQQbar(x *ca.Ca) (*qqbar.Alg, bool) {
	if x.IsSpecial() {
		return nil, false
	}
	cond := ca.CondenseField(x)
	switch cond.Field().Kind {
	case field.KindQ:
		r, _ := cond.Rational()
		return qqbar.FromRat(r, cond.Ctx().Options.LowPrec), true
	case field.KindNumberField:
		gen := cond.Field().Generator()
		coeffs := cond.NFCoeffs()
		if len(coeffs) != 2 {
			return nil, false
		}
		return qqbar.ComposeLinear(gen.Alg, coeffs[0], coeffs[1]), true
	default:
		return nil, false
	}
}

// ToBall returns a rigorous enclosure of x at the given precision. A
// special value has no numerical meaning and gets the infinite-radius
// ball (callers are expected to check x.Kind() first, as the predicate
// cascade does, rather than rely on this being a usable numeric value).
func ToBall(x *ca.Ca, prec uint) *bigball.Ball {
	if x.IsSpecial() {
		return bigball.Unknown(prec)
	}
	enc := x.EnclosureAt(prec)
	if b, ok := enc.(*bigball.Ball); ok {
		return b
	}
	return bigball.Unknown(prec)
}

// ToBallAccurateParts refines the enclosure by doubling precision (up to
// the owning Context's PrecLimit) until both the real and imaginary radii
// are smaller than roughly 2^-(prec/2), the closest honest analogue this
// module has to the original's get_acb behavior of independently
// tightening each part for a cancellation-prone expression. True
// independent-part refinement would need arbitrary-precision special-
// function evaluation this module's bigball.Approx seeding does not
// attempt (see DESIGN.md); this just runs the same EnclosureAt schedule
// predicate.CheckIsZero uses, one more time, looking for tightness instead
// of a disproof.
func ToBallAccurateParts(x *ca.Ca, prec uint) *bigball.Ball {
	if x.IsSpecial() {
		return bigball.Unknown(prec)
	}
	c := x.Ctx()
	var best *bigball.Ball
	for p := prec; p <= c.Options.PrecLimit; p *= 2 {
		enc := x.EnclosureAt(p)
		b, ok := enc.(*bigball.Ball)
		if !ok {
			break
		}
		best = b
		if radiusSmallEnough(b, prec) {
			break
		}
	}
	if best == nil {
		return bigball.Unknown(prec)
	}
	return best
}

func radiusSmallEnough(b *bigball.Ball, prec uint) bool {
	bound := new(big.Float).SetPrec(prec + 16).SetMantExp(big.NewFloat(1), -int(prec/2))
	return b.ReRad.Cmp(bound) <= 0 && b.ImRad.Cmp(bound) <= 0
}

// ToDecimalString formats x to approximately digits significant decimal
// digits. The four special values print by name; a SignedInfinity prints
// its direction recursively, matching how Ext.String already composes
// function heads and arguments.
func ToDecimalString(x *ca.Ca, digits int) string {
	switch x.Kind() {
	case ca.KindUndefined:
		return "Undefined"
	case ca.KindUnknown:
		return "Unknown"
	case ca.KindUnsignedInfinity:
		return "UnsignedInfinity"
	case ca.KindSignedInfinity:
		return "SignedInfinity(" + ToDecimalString(x.Direction(), digits) + ")"
	}
	if r, ok := x.Rational(); ok {
		f := new(big.Float).SetPrec(uint(digits)*4 + 32).SetRat(r)
		return f.Text('g', digits)
	}
	prec := uint(digits)*4 + 64
	b := ToBallAccurateParts(x, prec)
	reStr := b.ReMid.Text('g', digits)
	if b.ImMid.Sign() == 0 && b.ImRad.Sign() == 0 {
		return reStr
	}
	sign := "+"
	if b.ImMid.Sign() < 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%s%si", reStr, sign, b.ImMid.Text('g', digits))
}

// FactorFlags selects how deeply Factor decomposes a rational value's
// numerator and denominator, mirroring spec.md's ZZ_NONE/ZZ_SMOOTH/ZZ_FULL
// (the POLY_* multivariate-polynomial factorization flags are out of
// scope here, per spec.md's explicit Non-goals on finite-field/polynomial
// factorization modules).
type FactorFlags int

const (
	ZZNone FactorFlags = iota
	ZZSmooth
	ZZFull
)

// Factor is one (base, exponent) pair of a multiplicative factorization,
// base^exponent contributing to the product.
type Factor struct {
	Base *ca.Ca
	Exp  int
}

// Factor decomposes x multiplicatively. Only rational x is handled beyond
// the trivial single-factor answer: ZZSmooth trial-divides up to
// Options.SmoothLimit and reports the (possibly composite) cofactor as its
// own base past that bound; ZZFull trial-divides up to a fixed larger
// bound for the same reason (this module has no general integer
// factorization routine, only trial division -- see DESIGN.md). Anything
// non-rational, or a request with ZZNone, is returned unfactored.
func Factor(x *ca.Ca, flags FactorFlags) []Factor {
	r, ok := x.Rational()
	if !ok || flags == ZZNone {
		return []Factor{{Base: x, Exp: 1}}
	}
	c := x.Ctx()
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	sign := num.Sign()
	if sign < 0 {
		num.Neg(num)
	}
	bound := c.Options.SmoothLimit
	if flags == ZZFull {
		bound = 1 << 24
	}
	out := []Factor{}
	if sign < 0 {
		out = append(out, Factor{Base: ca.FromInt64(c, -1), Exp: 1})
	}
	appendFactors := func(n *big.Int, sign int) {
		rest := new(big.Int).Set(n)
		for p, e := range trialDivide(n, bound) {
			out = append(out, Factor{Base: ca.FromInt64(c, p), Exp: sign * e})
			rest.Div(rest, new(big.Int).Exp(big.NewInt(p), big.NewInt(int64(e)), nil))
		}
		if rest.Cmp(big.NewInt(1)) > 0 {
			out = append(out, Factor{Base: ca.FromRat(c, new(big.Rat).SetInt(rest)), Exp: sign})
		}
	}
	appendFactors(num, 1)
	appendFactors(den, -1)
	return out
}

func trialDivide(n *big.Int, bound int64) map[int64]int {
	out := map[int64]int{}
	m := new(big.Int).Set(n)
	one := big.NewInt(1)
	for p := int64(2); p <= bound && m.Cmp(one) > 0; p++ {
		bp := big.NewInt(p)
		for new(big.Int).Mod(m, bp).Sign() == 0 {
			m.Div(m, bp)
			out[p]++
		}
	}
	if m.Cmp(one) > 0 && m.IsInt64() {
		out[m.Int64()]++
	}
	return out
}

// Expr is the minimal symbolic-expression grammar spec.md's serialization
// section asks for: rational and algebraic-number literals, n-ary add/mul,
// binary div, unary pow-by-a-fixed-integer, a named function head applied
// to subexpressions (the Extension heads of §3), and the four special
// values.
type ExprKind int

const (
	ExprRat ExprKind = iota
	ExprAlgebraic
	ExprAdd
	ExprMul
	ExprDiv
	ExprPow
	ExprFunc
	ExprSpecial
)

type Expr struct {
	Kind ExprKind
	Rat  *big.Rat
	Alg  *qqbar.Alg
	Args []*Expr
	Head ext.Head
	N    int // exponent, for ExprPow

	Special ca.Kind
	Dir     *Expr // direction, for a SignedInfinity special
}

// ToSymbolicExpression serializes x to an Expr. A NumberField element is
// expanded as a polynomial in its generator (itself an ExprAlgebraic
// leaf); a Multi-field element as the quotient of two polynomials in its
// generators (each an ExprFunc node built from the owning Ext's head and
// recursively-serialized arguments).
func ToSymbolicExpression(x *ca.Ca) *Expr {
	switch x.Kind() {
	case ca.KindUndefined, ca.KindUnknown, ca.KindUnsignedInfinity:
		return &Expr{Kind: ExprSpecial, Special: x.Kind()}
	case ca.KindSignedInfinity:
		return &Expr{Kind: ExprSpecial, Special: x.Kind(), Dir: ToSymbolicExpression(x.Direction())}
	}
	switch x.Field().Kind {
	case field.KindQ:
		r, _ := x.Rational()
		return &Expr{Kind: ExprRat, Rat: r}
	case field.KindNumberField:
		gen := extToExpr(x.Field().Generator())
		coeffs := x.NFCoeffs()
		return nfToExpr(coeffs, gen)
	default:
		rf := x.RatFunc()
		gens := x.Field().Gens
		genExprs := make([]*Expr, len(gens))
		for i, g := range gens {
			genExprs[i] = extToExpr(g)
		}
		num := polyToExpr(rf.Num, genExprs)
		if d, ok := rf.Den.IsConstant(); ok && d.Cmp(big.NewInt(1)) == 0 {
			return num
		}
		den := polyToExpr(rf.Den, genExprs)
		return &Expr{Kind: ExprDiv, Args: []*Expr{num, den}}
	}
}

func nfToExpr(coeffs []*big.Rat, gen *Expr) *Expr {
	terms := make([]*Expr, 0, len(coeffs))
	for i, c := range coeffs {
		if c.Sign() == 0 {
			continue
		}
		lit := &Expr{Kind: ExprRat, Rat: c}
		if i == 0 {
			terms = append(terms, lit)
			continue
		}
		power := gen
		if i > 1 {
			power = &Expr{Kind: ExprPow, Args: []*Expr{gen}, N: i}
		}
		terms = append(terms, &Expr{Kind: ExprMul, Args: []*Expr{lit, power}})
	}
	if len(terms) == 0 {
		return &Expr{Kind: ExprRat, Rat: new(big.Rat)}
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return &Expr{Kind: ExprAdd, Args: terms}
}

func polyToExpr(p *mpoly.Poly, genExprs []*Expr) *Expr {
	terms := p.Terms()
	if len(terms) == 0 {
		return &Expr{Kind: ExprRat, Rat: new(big.Rat)}
	}
	summands := make([]*Expr, 0, len(terms))
	for _, t := range terms {
		lit := &Expr{Kind: ExprRat, Rat: new(big.Rat).SetInt(t.Coeff)}
		factors := []*Expr{lit}
		for i, e := range t.Exp {
			if e == 0 {
				continue
			}
			if e == 1 {
				factors = append(factors, genExprs[i])
			} else {
				factors = append(factors, &Expr{Kind: ExprPow, Args: []*Expr{genExprs[i]}, N: e})
			}
		}
		if len(factors) == 1 {
			summands = append(summands, factors[0])
		} else {
			summands = append(summands, &Expr{Kind: ExprMul, Args: factors})
		}
	}
	if len(summands) == 1 {
		return summands[0]
	}
	return &Expr{Kind: ExprAdd, Args: summands}
}

func extToExpr(g *ext.Ext) *Expr {
	if g.IsAlgebraic {
		return &Expr{Kind: ExprAlgebraic, Alg: g.Alg}
	}
	args := make([]*Expr, len(g.Args))
	for i, a := range g.Args {
		args[i] = ToSymbolicExpression(a.(*ca.Ca))
	}
	return &Expr{Kind: ExprFunc, Head: g.Head, Args: args}
}

// FromSymbolicExpression reconstructs a Ca from e in the given Context,
// reversing ToSymbolicExpression. It is best-effort: a malformed Expr
// (wrong arity for its Kind) reports ok=false rather than panicking, per
// spec.md's "parser failure returns an absent-value indicator, no side
// effects".
func FromSymbolicExpression(c *context.Context, e *Expr) (x *ca.Ca, ok bool) {
	switch e.Kind {
	case ExprRat:
		if e.Rat == nil {
			return nil, false
		}
		return ca.FromRat(c, e.Rat), true
	case ExprAlgebraic:
		if e.Alg == nil {
			return nil, false
		}
		g := c.ExtForQQbar(e.Alg)
		return ca.EmbedExt(c, g), true
	case ExprAdd:
		return foldArgs(c, e.Args, ca.Add)
	case ExprMul:
		return foldArgs(c, e.Args, ca.Mul)
	case ExprDiv:
		if len(e.Args) != 2 {
			return nil, false
		}
		a, ok1 := FromSymbolicExpression(c, e.Args[0])
		b, ok2 := FromSymbolicExpression(c, e.Args[1])
		if !ok1 || !ok2 {
			return nil, false
		}
		return ca.Div(a, b), true
	case ExprPow:
		if len(e.Args) != 1 {
			return nil, false
		}
		a, ok1 := FromSymbolicExpression(c, e.Args[0])
		if !ok1 {
			return nil, false
		}
		return ca.Pow(a, e.N), true
	case ExprFunc:
		args := make([]ext.Arg, len(e.Args))
		for i, sub := range e.Args {
			v, ok := FromSymbolicExpression(c, sub)
			if !ok {
				return nil, false
			}
			args[i] = v
		}
		g := c.ExtForFunction(e.Head, args...)
		return ca.EmbedExt(c, g), true
	case ExprSpecial:
		switch e.Special {
		case ca.KindUndefined:
			return ca.Undefined(c), true
		case ca.KindUnknown:
			return ca.UnknownVal(c), true
		case ca.KindUnsignedInfinity:
			return ca.UInf(c), true
		case ca.KindSignedInfinity:
			if e.Dir == nil {
				return nil, false
			}
			dir, ok := FromSymbolicExpression(c, e.Dir)
			if !ok {
				return nil, false
			}
			return ca.SignedInf(c, dir), true
		}
	}
	return nil, false
}

func foldArgs(c *context.Context, args []*Expr, op func(a, b *ca.Ca) *ca.Ca) (*ca.Ca, bool) {
	if len(args) == 0 {
		return nil, false
	}
	acc, ok := FromSymbolicExpression(c, args[0])
	if !ok {
		return nil, false
	}
	for _, a := range args[1:] {
		v, ok := FromSymbolicExpression(c, a)
		if !ok {
			return nil, false
		}
		acc = op(acc, v)
	}
	return acc, true
}
