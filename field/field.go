// Package field implements the Field object (spec.md component C3): an
// ordered tuple of interned extensions plus an optional reduction ideal.
package field

import (
	"fmt"
	"math/big"

	"calcium/ext"
	"calcium/mpoly"
)

// Kind distinguishes the three Field variants of spec.md 3.
type Kind int

const (
	KindQ Kind = iota
	KindNumberField
	KindMulti
)

// Field is an interned field object. Generators are kept sorted by
// ext.Compare (spec.md 4.1's canonical order), which is also the order
// their Multi-field variables are numbered in.
type Field struct {
	Kind  Kind
	Gens  []*ext.Ext // empty for KindQ; exactly one for KindNumberField
	Ideal *mpoly.Ideal

	// qqI marks the distinguished Q(i) singleton (spec.md 3).
	qqI bool

	// cycOrder is nonzero when f is a single-generator Multi field whose
	// ideal is exactly x^cycOrder + 1 -- a power-of-two root-of-unity
	// relation package ca's sameFieldMul recognizes to take the
	// CyclotomicRing NTT fast path instead of the generic ideal reducer.
	cycOrder uint64
}

// Q is the unique rational field.
func Q() *Field {
	return &Field{Kind: KindQ}
}

// NumberField returns a single-algebraic-generator field with primitive
// generator g. The caller (package context) is responsible for interning.
func NumberField(g *ext.Ext) *Field {
	return &Field{Kind: KindNumberField, Gens: []*ext.Ext{g}}
}

// QI marks f as the distinguished Q(i) singleton; used only by the
// context cache when constructing Q(i) itself.
func (f *Field) markQI() *Field {
	f.qqI = true
	return f
}

// IsQI reports whether f is the distinguished Q(i) singleton.
func (f *Field) IsQI() bool {
	return f.qqI
}

// Multi returns a Multi field over the given (already sorted, deduplicated)
// generator tuple and ideal. gens must have length >= 1; a Multi with one
// generator and an empty ideal is the "single transcendental function"
// case spec.md 3 describes.
func Multi(gens []*ext.Ext, ideal *mpoly.Ideal) *Field {
	return &Field{Kind: KindMulti, Gens: gens, Ideal: ideal}
}

// MultiCyclotomic returns the single-generator Multi field for a
// power-of-two root of unity: generator g with the ideal relation
// x^order + 1 = 0, order itself a power of two. This is the field shape
// package transcendental builds for exp(i*pi*p/order) when p is odd
// (spec.md 4.7.1's root-of-unity closed form), letting package ca's
// sameFieldMul recognize it via CyclotomicOrder and dispatch to
// MulRootOfUnityCoeffs's NTT fast path rather than the generic ideal
// reducer QuasiDivRemIdeal would otherwise have to fall back to.
func MultiCyclotomic(g *ext.Ext, order uint64) *Field {
	ideal := mpoly.NewIdeal(xPowOrderPlusOne(order))
	return &Field{Kind: KindMulti, Gens: []*ext.Ext{g}, Ideal: ideal, cycOrder: order}
}

// CyclotomicOrder reports the power-of-two order if f is a Multi field
// built by MultiCyclotomic, and ok=false otherwise.
func (f *Field) CyclotomicOrder() (uint64, bool) {
	return f.cycOrder, f.cycOrder != 0
}

// xPowOrderPlusOne builds the single-variable polynomial x^order + 1.
func xPowOrderPlusOne(order uint64) *mpoly.Poly {
	xPow := mpoly.Var(1, 0)
	for i := uint64(1); i < order; i++ {
		xPow = mpoly.Mul(xPow, mpoly.Var(1, 0))
	}
	return mpoly.Add(xPow, mpoly.Constant(1, big.NewInt(1)))
}

// NVars returns the number of Multi-field variables (0 for Q/NumberField,
// which use their own native representations instead of mpoly.RatFunc).
func (f *Field) NVars() int {
	if f.Kind == KindMulti {
		return len(f.Gens)
	}
	return 0
}

// Generator returns f's unique algebraic generator for a NumberField.
func (f *Field) Generator() *ext.Ext {
	if f.Kind != KindNumberField || len(f.Gens) != 1 {
		return nil
	}
	return f.Gens[0]
}

// StructuralKey returns a value suitable for use as a hash-map key
// identifying f's generator tuple, used by package context's field cache.
// Two fields with the same ordered generators (by ext.Compare) produce the
// same key; the ideal is a deterministic function of the generators (see
// BuildIdeal) so it need not be hashed separately.
func (f *Field) StructuralKey() string {
	switch f.Kind {
	case KindQ:
		return "Q"
	case KindNumberField:
		if f.qqI {
			return "Q(i)"
		}
		return "NF:" + extKey(f.Gens[0])
	default:
		s := "Multi:"
		for _, g := range f.Gens {
			s += extKey(g) + "|"
		}
		if f.cycOrder != 0 {
			s += fmt.Sprintf("cyc%d", f.cycOrder)
		}
		return s
	}
}

func extKey(e *ext.Ext) string {
	// A cheap structural fingerprint; collisions are resolved by
	// package context re-running ext.Equal on bucket hits, so this need
	// not be perfectly injective, only a good partition.
	if e.IsAlgebraic {
		return "A:" + e.Alg.String()
	}
	s := "F:" + e.Head.String()
	for _, a := range e.Args {
		s += "," + argFingerprint(a)
	}
	return s
}

func argFingerprint(a ext.Arg) string {
	type stringer interface{ String() string }
	if s, ok := a.(stringer); ok {
		return s.String()
	}
	return "?"
}

// Compare implements field_cmp (spec.md's original_source ca/field_cmp.c,
// restored per SPEC_FULL.md section 3): orders fields first by generator
// count, then lexicographically by each generator's canonical ext.Compare
// order. Q always sorts first (zero generators); Q(i) sorts as an ordinary
// one-generator NumberField among others of the same generator.
func Compare(a, b *Field) int {
	if len(a.Gens) != len(b.Gens) {
		if len(a.Gens) < len(b.Gens) {
			return -1
		}
		return 1
	}
	for i := range a.Gens {
		if c := ext.Compare(a.Gens[i], b.Gens[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether a and b have the same generator tuple (and hence,
// since the ideal is derived deterministically, the same field).
func Equal(a, b *Field) bool {
	return Compare(a, b) == 0
}
