// Power-of-two root-of-unity fast path (spec.md 4.7.1's "p/q * pi*i ->
// root of unity" closed form, restricted to the case field.CyclotomicRing
// actually targets): wiring for package field's CyclotomicRing/
// MulRootOfUnityCoeffs into the ordinary same-field multiplication
// dispatch in arith.go, exercised whenever package transcendental embeds
// such a generator via EmbedCyclotomic.
package ca

import (
	"math/big"

	"calcium/context"
	"calcium/ext"
	"calcium/field"
	"calcium/mpoly"
)

// EmbedCyclotomic wraps the function extension g (expected to be an
// Exp(i*pi*p/order) generator, order a power of two and p odd, the one
// case where x^order = -1 holds exactly) as a Ca living in the
// field.MultiCyclotomic field for that order, rather than the default
// empty-ideal single-generator Multi field EmbedExt would give it.
func EmbedCyclotomic(c *context.Context, g *ext.Ext, order uint64) *Ca {
	f := c.FieldForCyclotomic(g, order)
	rf := &mpoly.RatFunc{Num: mpoly.Var(1, 0), Den: mpoly.Constant(1, big.NewInt(1))}
	return fromFieldElem(c, f, nil, nil, rf)
}

// cyclotomicFastMul multiplies x*y when both already live in the same
// power-of-two cyclotomic Multi field, dispatching to
// field.MulRootOfUnityCoeffs's NTT convolution instead of the generic
// mpoly.Ideal.QuasiDivRemIdeal reduction sameFieldMul's default branch
// would otherwise run. It reports ok=false whenever the representation
// isn't the plain polynomial-over-Z shape the fast path needs (a
// non-unit denominator, or a coefficient too large for an int64 limb),
// letting the caller fall back to the generic reducer.
func cyclotomicFastMul(x, y *Ca, order uint64) (*Ca, bool) {
	xDen, ok := x.rf.Den.IsConstant()
	if !ok || xDen.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	yDen, ok := y.rf.Den.IsConstant()
	if !ok || yDen.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	a, ok := polyCoeffVector(x.rf.Num, order)
	if !ok {
		return nil, false
	}
	b, ok := polyCoeffVector(y.rf.Num, order)
	if !ok {
		return nil, false
	}
	res, err := field.MulRootOfUnityCoeffs(order, a, b)
	if err != nil {
		return nil, false
	}
	num := mpoly.New(1)
	for i, coeff := range res {
		if coeff == 0 {
			continue
		}
		num = mpoly.Add(num, mpoly.MulMonomial(mpoly.Constant(1, big.NewInt(1)), big.NewInt(coeff), mpoly.Monomial{i}))
	}
	rf := &mpoly.RatFunc{Num: num, Den: mpoly.Constant(1, big.NewInt(1))}
	return CondenseField(fromFieldElem(x.ctx, x.fld, nil, nil, rf)), true
}

// polyCoeffVector reads p's coefficients (a single-variable polynomial of
// degree < order) into a dense length-order int64 vector, reporting
// ok=false if any exponent is out of range or any coefficient overflows
// int64 -- cyclotomicFastMul's precondition for handing off to the fixed-
// width NTT ring.
func polyCoeffVector(p *mpoly.Poly, order uint64) ([]int64, bool) {
	out := make([]int64, order)
	for _, t := range p.Terms() {
		e := t.Exp[0]
		if e < 0 || uint64(e) >= order {
			return nil, false
		}
		if !t.Coeff.IsInt64() {
			return nil, false
		}
		out[e] = t.Coeff.Int64()
	}
	return out, true
}
