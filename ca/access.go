package ca

import (
	"math/big"

	"calcium/field"
	"calcium/mpoly"
)

// NFCoeffs returns a copy of x's NumberField power-basis coefficient
// vector (low degree first), or nil if x is not a NumberField element.
// Exposed read-only for package convert's to_symbolic_expression, which
// must walk the raw representation to rebuild an expression tree; every
// other package goes through the ring arithmetic and predicate cascade
// instead of touching this directly.
func (x *Ca) NFCoeffs() []*big.Rat {
	if x.kind != KindFinite || x.fld.Kind != field.KindNumberField {
		return nil
	}
	return nfClone(x.nf)
}

// RatFunc returns x's Multi-field rational-function payload, or nil
// otherwise. See NFCoeffs.
func (x *Ca) RatFunc() *mpoly.RatFunc {
	if x.kind != KindFinite || x.fld.Kind != field.KindMulti {
		return nil
	}
	return x.rf
}
