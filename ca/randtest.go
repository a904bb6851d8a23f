package ca

import (
	"math/big"
	"math/rand"

	"calcium/context"
	"calcium/qqbar"
)

// RandTest returns a random small finite element of the tower of field
// extensions Q, Q(i), and Q(sqrt(2)), the way original_source's
// t-properties.c seeds its bulk invariant checks (restored per
// SPEC_FULL.md section 3 as ca.RandTest). It never returns a special
// value; callers that also want to exercise Undefined/Unknown/infinities
// do so explicitly.
func RandTest(c *context.Context, r *rand.Rand) *Ca {
	switch r.Intn(3) {
	case 0:
		return FromRat(c, randSmallRat(r))
	case 1:
		return randQIElem(c, r)
	default:
		return randSqrt2Elem(c, r)
	}
}

func randSmallRat(r *rand.Rand) *big.Rat {
	num := int64(r.Intn(21) - 10)
	den := int64(r.Intn(5) + 1)
	return big.NewRat(num, den)
}

func randQIElem(c *context.Context, r *rand.Rand) *Ca {
	f := c.FieldQI()
	return fromFieldElem(c, f, nil, nfElem{randSmallRat(r), randSmallRat(r)}, nil)
}

func randSqrt2Elem(c *context.Context, r *rand.Rand) *Ca {
	g := c.ExtForQQbar(qqbar.SqrtOfInt(2, c.Options.LowPrec))
	f := c.FieldForSingleExt(g)
	return fromFieldElem(c, f, nil, nfElem{randSmallRat(r), randSmallRat(r)}, nil)
}
