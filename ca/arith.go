// Ring arithmetic dispatch (spec.md component C6): same-field fast paths,
// field merge for mixed operands, ideal reduction after every Multi-field
// step, and the specials algebra table for Undefined/Unknown/infinities
// (spec.md 3's arithmetic-with-specials rules, restored from
// original_source/ca/add.c, mul.c, div.c, inv.c, neg.c).
package ca

import (
	"math/big"

	"calcium/context"
	"calcium/field"
	"calcium/mpoly"
)

// Add returns x+y.
func Add(x, y *Ca) *Ca {
	if s, ok := specialAdd(x, y); ok {
		return s
	}
	c := x.ctx
	switch {
	case x.fld.Kind == field.KindQ && y.fld.Kind == field.KindQ:
		return FromRat(c, new(big.Rat).Add(x.rat, y.rat))
	case field.Equal(x.fld, y.fld):
		return sameFieldAdd(x, y)
	case x.fld.Kind == field.KindQ:
		return Add(liftInto(y.fld, x), y)
	case y.fld.Kind == field.KindQ:
		return Add(x, liftInto(x.fld, y))
	default:
		target, xr, yr := mergeFields(x, y)
		rf := mpoly.AddRat(xr, yr)
		return reduceToCa(c, target, rf)
	}
}

// Sub returns x-y.
func Sub(x, y *Ca) *Ca {
	return Add(x, Neg(y))
}

// Neg returns -x.
func Neg(x *Ca) *Ca {
	switch x.kind {
	case KindUndefined, KindUnknown, KindUnsignedInfinity:
		return &Ca{ctx: x.ctx, kind: x.kind}
	case KindSignedInfinity:
		return SignedInf(x.ctx, Neg(x.dir))
	}
	switch x.fld.Kind {
	case field.KindQ:
		return FromRat(x.ctx, new(big.Rat).Neg(x.rat))
	case field.KindNumberField:
		return fromFieldElem(x.ctx, x.fld, nil, nfNeg(x.nf), nil)
	default:
		return reduceToCa(x.ctx, x.fld, mpoly.NegRat(x.rf))
	}
}

// Mul returns x*y.
func Mul(x, y *Ca) *Ca {
	if s, ok := specialMul(x, y); ok {
		return s
	}
	c := x.ctx
	switch {
	case x.fld.Kind == field.KindQ && y.fld.Kind == field.KindQ:
		return FromRat(c, new(big.Rat).Mul(x.rat, y.rat))
	case field.Equal(x.fld, y.fld):
		return sameFieldMul(x, y)
	case x.fld.Kind == field.KindQ:
		return Mul(liftInto(y.fld, x), y)
	case y.fld.Kind == field.KindQ:
		return Mul(x, liftInto(x.fld, y))
	default:
		target, xr, yr := mergeFields(x, y)
		rf := mpoly.MulRat(xr, yr)
		return reduceToCa(c, target, rf)
	}
}

// Inv returns 1/x; UnsignedInfinity for a structurally-obvious rational
// zero (matching original_source/ca/inv.c's own fast path -- the general
// "is this nonrational value actually zero" question is package
// predicate's check_is_zero, not this function's job).
func Inv(x *Ca) *Ca {
	switch x.kind {
	case KindUndefined:
		return Undefined(x.ctx)
	case KindUnknown:
		return UnknownVal(x.ctx)
	case KindUnsignedInfinity, KindSignedInfinity:
		return Zero(x.ctx)
	}
	if r, ok := x.Rational(); ok && r.Sign() == 0 {
		return UInf(x.ctx)
	}
	switch x.fld.Kind {
	case field.KindQ:
		return FromRat(x.ctx, new(big.Rat).Inv(x.rat))
	case field.KindNumberField:
		monic := monicMinPoly(x.fld.Generator().Alg)
		return fromFieldElem(x.ctx, x.fld, nil, nfInv(x.nf, monic), nil)
	default:
		return reduceToCa(x.ctx, x.fld, mpoly.InvRat(x.rf))
	}
}

// Div returns x/y.
func Div(x, y *Ca) *Ca {
	return Mul(x, Inv(y))
}

// Pow returns x^n for an integer exponent n (spec.md's integer-power
// special case; general pow(x,y) lives in package transcendental).
func Pow(x *Ca, n int) *Ca {
	if n == 0 {
		return One(x.ctx)
	}
	if n < 0 {
		return Inv(Pow(x, -n))
	}
	acc := One(x.ctx)
	base := x
	for n > 0 {
		if n&1 == 1 {
			acc = Mul(acc, base)
		}
		base = Mul(base, base)
		n >>= 1
	}
	return acc
}

// --- same-field fast paths ---

func sameFieldAdd(x, y *Ca) *Ca {
	switch x.fld.Kind {
	case field.KindNumberField:
		return CondenseField(fromFieldElem(x.ctx, x.fld, nil, nfAdd(x.nf, y.nf), nil))
	default:
		return reduceToCa(x.ctx, x.fld, mpoly.AddRat(x.rf, y.rf))
	}
}

func sameFieldMul(x, y *Ca) *Ca {
	switch x.fld.Kind {
	case field.KindNumberField:
		monic := monicMinPoly(x.fld.Generator().Alg)
		return CondenseField(fromFieldElem(x.ctx, x.fld, nil, nfMul(x.nf, y.nf, monic), nil))
	default:
		if order, ok := x.fld.CyclotomicOrder(); ok {
			if res, ok := cyclotomicFastMul(x, y, order); ok {
				return res
			}
		}
		return reduceToCa(x.ctx, x.fld, mpoly.MulRat(x.rf, y.rf))
	}
}

// reduceToCa applies the Multi field's ideal reduction and canonicalizes
// the result, then attempts condensation (spec.md 4.5/C10) before wrapping
// it back up as a Ca.
func reduceToCa(c *context.Context, f *field.Field, rf *mpoly.RatFunc) *Ca {
	red := mpoly.ReduceIdeal(rf, f.Ideal)
	x := fromFieldElem(c, f, nil, nil, red)
	return CondenseField(x)
}

// liftInto re-expresses a rational Ca value x as an element of target
// field's native representation (nfElem or RatFunc), used when one
// operand of a binary op is a plain rational and the other already lives
// in a richer field -- avoids the general field-merge machinery, since Q
// embeds into every field trivially.
func liftInto(target *field.Field, x *Ca) *Ca {
	switch target.Kind {
	case field.KindNumberField:
		deg := target.Generator().Alg.Degree()
		return fromFieldElem(x.ctx, target, nil, nfFromRat(x.rat, deg), nil)
	case field.KindMulti:
		return fromFieldElem(x.ctx, target, nil, nil, mpoly.NewConstantRat(target.NVars(), x.rat))
	default:
		return x
	}
}
