// Package ca implements the Calcium element itself (spec.md component
// C5/C6): a field-tagged payload for finite values, plus the four special
// values (Undefined, Unknown, UnsignedInfinity, SignedInfinity) spec.md
// section 3 requires. This mirrors the original's ca_t tagged union
// (original_source/ca/ca.h, t_t enum) the way a Go sum type is usually
// modeled in this corpus: one Kind discriminator plus the fields that are
// only meaningful for that Kind, rather than an unsafe union.
package ca

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"

	"calcium/bigball"
	"calcium/context"
	"calcium/ext"
	"calcium/field"
	"calcium/mpoly"
)

// Kind discriminates Ca's variants.
type Kind int

const (
	KindFinite Kind = iota
	KindUnknown
	KindUndefined
	KindUnsignedInfinity
	KindSignedInfinity
)

func (k Kind) String() string {
	switch k {
	case KindFinite:
		return "finite"
	case KindUnknown:
		return "unknown"
	case KindUndefined:
		return "undefined"
	case KindUnsignedInfinity:
		return "unsigned_infinity"
	case KindSignedInfinity:
		return "signed_infinity"
	default:
		return "invalid"
	}
}

// Ca is a single exact element of the tower of field extensions Q(a1,...,an),
// or one of the four special values. Every Ca is owned by exactly one
// *context.Context, the same one used to intern the field it lives in.
type Ca struct {
	ctx  *context.Context
	kind Kind

	// Finite payload: exactly one of rat/nf/rf is meaningful, selected by
	// fld.Kind.
	fld *field.Field
	rat *big.Rat
	nf  nfElem
	rf  *mpoly.RatFunc

	// SignedInfinity payload: dir is a nonzero finite Ca giving the
	// direction/argument, e.g. +infinity has dir=1, -i*infinity has dir=-i.
	dir *Ca
}

// Ctx returns the owning context.
func (x *Ca) Ctx() *context.Context { return x.ctx }

// Kind reports x's variant.
func (x *Ca) Kind() Kind { return x.kind }

// Field returns x's field for a finite value, or nil otherwise.
func (x *Ca) Field() *field.Field { return x.fld }

func finite(c *context.Context, fld *field.Field) *Ca {
	return &Ca{ctx: c, kind: KindFinite, fld: fld}
}

// Zero returns the additive identity.
func Zero(c *context.Context) *Ca {
	x := finite(c, c.FieldQ())
	x.rat = new(big.Rat)
	return x
}

// One returns the multiplicative identity.
func One(c *context.Context) *Ca {
	x := finite(c, c.FieldQ())
	x.rat = big.NewRat(1, 1)
	return x
}

// NegOne returns -1.
func NegOne(c *context.Context) *Ca {
	x := finite(c, c.FieldQ())
	x.rat = big.NewRat(-1, 1)
	return x
}

// FromInt64 returns the rational integer n.
func FromInt64(c *context.Context, n int64) *Ca {
	x := finite(c, c.FieldQ())
	x.rat = big.NewRat(n, 1)
	return x
}

// FromRat returns the rational value r.
func FromRat(c *context.Context, r *big.Rat) *Ca {
	x := finite(c, c.FieldQ())
	x.rat = new(big.Rat).Set(r)
	return x
}

// I returns the imaginary unit, in the distinguished Q(i) field.
func I(c *context.Context) *Ca {
	f := c.FieldQI()
	x := finite(c, f)
	x.nf = nfElem{new(big.Rat), big.NewRat(1, 1)}
	return x
}

// NegI returns -i.
func NegI(c *context.Context) *Ca {
	f := c.FieldQI()
	x := finite(c, f)
	x.nf = nfElem{new(big.Rat), big.NewRat(-1, 1)}
	return x
}

// Undefined returns the Undefined special value (spec.md: the result of
// an operation with no meaningful answer, e.g. 0/0 or Inf-Inf).
func Undefined(c *context.Context) *Ca {
	return &Ca{ctx: c, kind: KindUndefined}
}

// UnknownVal returns the Unknown special value (spec.md: the result could
// not be determined, as opposed to Undefined's "there is no result").
func UnknownVal(c *context.Context) *Ca {
	return &Ca{ctx: c, kind: KindUnknown}
}

// UInf returns the unsigned (directionless) complex infinity, e.g. 1/0.
func UInf(c *context.Context) *Ca {
	return &Ca{ctx: c, kind: KindUnsignedInfinity}
}

// SignedInf returns the signed infinity in the direction of the nonzero
// finite value dir (spec.md: e.g. +infinity has dir=1, -i*infinity has
// dir=-i). dir is not itself checked for zero-ness here; callers (package
// predicate/ca's own arithmetic) are expected to have already excluded
// zero via the predicate cascade before constructing one.
func SignedInf(c *context.Context, dir *Ca) *Ca {
	return &Ca{ctx: c, kind: KindSignedInfinity, dir: dir}
}

// PosInf, NegInf, PosIInf, NegIInf are the four axis-aligned signed
// infinities spec.md section 3 names explicitly.
func PosInf(c *context.Context) *Ca  { return SignedInf(c, One(c)) }
func NegInf(c *context.Context) *Ca  { return SignedInf(c, NegOne(c)) }
func PosIInf(c *context.Context) *Ca { return SignedInf(c, I(c)) }
func NegIInf(c *context.Context) *Ca { return SignedInf(c, NegI(c)) }

// Direction returns the direction of a SignedInfinity, or nil otherwise.
func (x *Ca) Direction() *Ca { return x.dir }

// IsSpecial reports whether x is not a finite field element.
func (x *Ca) IsSpecial() bool { return x.kind != KindFinite }

// fromFieldElem builds a finite Ca of the given field with nf/rat/rf
// payload matching f.Kind; the caller supplies exactly the payload for
// f.Kind and leaves the others nil.
func fromFieldElem(c *context.Context, f *field.Field, rat *big.Rat, nf nfElem, rf *mpoly.RatFunc) *Ca {
	x := finite(c, f)
	x.rat, x.nf, x.rf = rat, nf, rf
	return x
}

// IsRational reports whether x is a finite value known (by its current
// field representation) to be a plain rational number, without invoking
// the predicate engine's algebraic fallback.
func (x *Ca) IsRational() bool {
	if x.kind != KindFinite {
		return false
	}
	switch x.fld.Kind {
	case field.KindQ:
		return true
	case field.KindNumberField:
		_, ok := x.nf.asRational()
		return ok
	default:
		if c, ok := x.rf.IsConstant(); ok {
			_ = c
			return true
		}
		return false
	}
}

// Rational returns x's rational value when IsRational is true.
func (x *Ca) Rational() (*big.Rat, bool) {
	if x.kind != KindFinite {
		return nil, false
	}
	switch x.fld.Kind {
	case field.KindQ:
		return new(big.Rat).Set(x.rat), true
	case field.KindNumberField:
		return x.nf.asRational()
	default:
		return x.rf.IsConstant()
	}
}

// EnclosureAt implements ext.Arg/ext.Enclosure, evaluating x to a rigorous
// numerical ball at the given precision -- the bridge package ext needs to
// treat a Ca as a function argument without importing package ca.
func (x *Ca) EnclosureAt(prec uint) ext.Enclosure {
	switch x.kind {
	case KindFinite:
		switch x.fld.Kind {
		case field.KindQ:
			return bigball.FromRat(x.rat, prec)
		case field.KindNumberField:
			gen := x.fld.Generator()
			genEnc := genEnclosureAt(x.ctx, gen, prec)
			return nfEval(x.nf, genEnc)
		default:
			return multiEnclosureAt(x.ctx, x, prec)
		}
	default:
		// Undefined/Unknown/UnsignedInfinity/SignedInfinity have no finite
		// complex value at all; an exact-zero ball would misreport them as
		// real 0 to any caller that inspects the ball's shape.
		return bigball.Unknown(prec)
	}
}

// CompareArg implements ext.Arg: delegates to Compare against another Ca.
func (x *Ca) CompareArg(other ext.Arg) int {
	y, ok := other.(*Ca)
	if !ok {
		return 0
	}
	return Compare(x, y)
}

// genEnclosureAt refines (or computes, for a brand new Ext) the algebraic
// generator's numerical enclosure to at least the requested precision,
// caching the result on the Ext the way spec.md 4.1's "ext enclosure
// cache" describes.
func genEnclosureAt(c *context.Context, g *ext.Ext, prec uint) *bigball.Ball {
	if cached, cp := g.Cached(); cached != nil && cp >= prec {
		if b, ok := cached.(*bigball.Ball); ok {
			return b
		}
	}
	var b *bigball.Ball
	if g.IsAlgebraic {
		b = g.Alg.Enclosure
		if b.Prec() < prec {
			b = bigball.Widen(b, 1) // no finer isolation data available; see DESIGN.md
		}
	} else {
		b = functionEnclosureAt(g, prec)
	}
	g.SetCached(b, prec)
	return b
}

// functionEnclosureAt evaluates a function Extension numerically by
// recursing into its arguments' own EnclosureAt and applying the matching
// math/cmplx routine to the float64 midpoint, then re-wrapping the result
// via bigball.Approx. This is not rigorous interval arithmetic in the
// sense bigball.Mul/Add are (no propagated error bound from the math
// library call itself, only Approx's flat float64-precision margin) -- a
// genuine implementation would need arbitrary-precision special-function
// evaluation (arb's acb_* routines) which is out of scope here; see
// DESIGN.md. Heads with no reasonable float64 analogue (the elliptic
// integrals, Riemann zeta, erfi, tetranacci/tribonacci) and the
// undomained branches of Gamma/Erf/Erfc fall back to bigball.Unknown, an
// infinite-radius enclosure, which keeps the predicate cascade honestly
// at Unknown for them instead of fabricating a false zero.
func functionEnclosureAt(g *ext.Ext, prec uint) *bigball.Ball {
	arg := func(i int) complex128 {
		enc := g.Args[i].EnclosureAt(prec)
		b, ok := enc.(*bigball.Ball)
		if !ok {
			return 0
		}
		re, _ := b.ReMid.Float64()
		im, _ := b.ImMid.Float64()
		return complex(re, im)
	}
	wrap := func(z complex128) *bigball.Ball {
		return bigball.Approx(real(z), imag(z), prec)
	}
	switch g.Head {
	case ext.HeadPi:
		return bigball.Approx(math.Pi, 0, prec)
	case ext.HeadEuler:
		return bigball.Approx(math.E, 0, prec)
	case ext.HeadExp:
		return wrap(cmplx.Exp(arg(0)))
	case ext.HeadLog:
		return wrap(cmplx.Log(arg(0)))
	case ext.HeadPow:
		return wrap(cmplx.Pow(arg(0), arg(1)))
	case ext.HeadSin:
		return wrap(cmplx.Sin(arg(0)))
	case ext.HeadCos:
		return wrap(cmplx.Cos(arg(0)))
	case ext.HeadTan:
		return wrap(cmplx.Tan(arg(0)))
	case ext.HeadAtan:
		return wrap(cmplx.Atan(arg(0)))
	case ext.HeadAsin:
		return wrap(cmplx.Asin(arg(0)))
	case ext.HeadAcos:
		return wrap(cmplx.Acos(arg(0)))
	case ext.HeadSign:
		z := arg(0)
		if z == 0 {
			return bigball.Zero(prec)
		}
		return wrap(z / complex(cmplx.Abs(z), 0))
	case ext.HeadAbs:
		return wrap(complex(cmplx.Abs(arg(0)), 0))
	case ext.HeadRe:
		return wrap(complex(real(arg(0)), 0))
	case ext.HeadIm:
		return wrap(complex(imag(arg(0)), 0))
	case ext.HeadConjugate:
		z := arg(0)
		return wrap(complex(real(z), -imag(z)))
	case ext.HeadSqrt:
		return wrap(cmplx.Sqrt(arg(0)))
	case ext.HeadGamma:
		z := arg(0)
		if imag(z) == 0 {
			return bigball.Approx(math.Gamma(real(z)), 0, prec)
		}
		return bigball.Unknown(prec)
	case ext.HeadErf:
		z := arg(0)
		if imag(z) == 0 {
			return bigball.Approx(math.Erf(real(z)), 0, prec)
		}
		return bigball.Unknown(prec)
	case ext.HeadErfc:
		z := arg(0)
		if imag(z) == 0 {
			return bigball.Approx(math.Erfc(real(z)), 0, prec)
		}
		return bigball.Unknown(prec)
	default:
		// Elliptic integrals, Riemann zeta, erfi, tetranacci/tribonacci:
		// no float64 analogue is wired up (see the doc comment above), so
		// report genuine ignorance rather than a false exact zero.
		return bigball.Unknown(prec)
	}
}

// multiEnclosureAt evaluates a Multi-field rational function by
// substituting each generator's numerical enclosure and performing ball
// arithmetic over the resulting expression tree (Num and Den each
// evaluated term by term, then divided via qqbar-style inversion).
func multiEnclosureAt(c *context.Context, x *Ca, prec uint) *bigball.Ball {
	gens := x.fld.Gens
	vals := make([]*bigball.Ball, len(gens))
	for i, g := range gens {
		vals[i] = genEnclosureAt(c, g, prec)
	}
	numB := evalPolyBall(x.rf.Num, vals, prec)
	denB := evalPolyBall(x.rf.Den, vals, prec)
	return bigball.Div(numB, denB)
}

// evalPolyBall evaluates p at vals (one ball per generator) via Horner-free
// term-by-term summation: each monomial becomes a product of ball powers
// times an integer coefficient, accumulated into a rigorous enclosure.
func evalPolyBall(p *mpoly.Poly, vals []*bigball.Ball, prec uint) *bigball.Ball {
	acc := bigball.Zero(prec)
	for _, t := range p.Terms() {
		term := bigball.FromRat(new(big.Rat).SetInt(t.Coeff), prec)
		for i, e := range t.Exp {
			for k := 0; k < e; k++ {
				term = bigball.Mul(term, vals[i])
			}
		}
		acc = bigball.Add(acc, term)
	}
	return acc
}

func (x *Ca) String() string {
	switch x.kind {
	case KindUndefined:
		return "Undefined"
	case KindUnknown:
		return "Unknown"
	case KindUnsignedInfinity:
		return "UnsignedInfinity"
	case KindSignedInfinity:
		return fmt.Sprintf("SignedInfinity(%s)", x.dir.String())
	default:
		switch x.fld.Kind {
		case field.KindQ:
			return x.rat.RatString()
		case field.KindNumberField:
			return fmt.Sprintf("nf(%v)", x.nf)
		default:
			return fmt.Sprintf("%s/%s", x.rf.Num.String(), x.rf.Den.String())
		}
	}
}
