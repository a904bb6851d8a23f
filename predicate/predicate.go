// Package predicate implements the decision procedures of spec.md
// component C8: check_is_zero and everything built on top of it
// (check_equal, the four real-order comparisons, and the is_real/
// is_imaginary/is_rational/is_integer/is_algebraic family), each
// returning a package truth Value instead of a bool. Every decision
// follows the same shape the original's ca_check_* functions use: try an
// exact structural/algebraic shortcut first, and only when that is
// inconclusive fall back to a numerical disproof cascade over an
// increasing precision schedule up to the owning Context's PrecLimit.
// Absence of a numerical disproof is never treated as proof of the
// opposite -- that would be unsound -- so every cascade that runs out of
// precision answers Unknown, honestly, rather than guessing.
package predicate

import (
	"math/big"

	"calcium/bigball"
	"calcium/ca"
	"calcium/ext"
	"calcium/field"
	"calcium/mpoly"
	"calcium/qqbar"
	"calcium/truth"
)

// CheckIsZero decides whether x is the zero element, following spec.md
// 4.8.1's cascade: (1) an already-rational value decides outright, (2)
// condensing to the smallest exact field decides most of what remains
// (anything that collapses to Q), (3) the numeric ball schedule can
// disprove zero-ness (never prove it) for anything still in a NumberField
// or Multi field, (4) the qqbar algebraic-number fallback merges any pair
// of generators the ideal machinery did not already recognize as the same
// algebraic number, and (5) the complex-normal-form rewrite splits a
// mixed-i expression into real and imaginary halves and decides each
// separately. Only after all five steps are exhausted does the result
// honestly degrade to Unknown.
func CheckIsZero(x *ca.Ca) truth.Value {
	switch x.Kind() {
	case ca.KindUndefined, ca.KindUnknown:
		return truth.Unknown
	case ca.KindUnsignedInfinity, ca.KindSignedInfinity:
		return truth.False
	}
	if r, ok := x.Rational(); ok {
		return truth.FromBool(r.Sign() == 0)
	}
	cond := ca.CondenseField(x)
	if r, ok := cond.Rational(); ok {
		return truth.FromBool(r.Sign() == 0)
	}
	if v := numericDisproveZero(cond); v == truth.False {
		return v
	}
	if v := qqbarFallback(cond); v != truth.Unknown {
		return v
	}
	return complexNormalFormZero(cond)
}

// qqbarFallback implements spec.md 4.8.1 step 4. A Multi field's ideal
// (field.BuildIdeal) only ever records each algebraic generator's own
// minimal-polynomial relation, never a relation BETWEEN two generators --
// so two generators that happen to denote the same algebraic number
// (constructed independently, via different annihilating polynomials, and
// therefore never deduplicated by the context's interning cache) leave a
// provably-zero difference unreduced. This step finds any such pair via
// qqbar.Equal, adds the linear relation g_i - g_j to a throwaway copy of
// the ideal, and re-reduces: if that alone collapses the numerator to the
// constant zero polynomial, x is exactly zero.
func qqbarFallback(x *ca.Ca) truth.Value {
	f := x.Field()
	if f == nil || f.Kind != field.KindMulti {
		return truth.Unknown
	}
	n := f.NVars()
	var extra []*mpoly.Poly
	for i := 0; i < n; i++ {
		gi := f.Gens[i]
		if !gi.IsAlgebraic {
			continue
		}
		for j := i + 1; j < n; j++ {
			gj := f.Gens[j]
			if gj.IsAlgebraic && qqbar.Equal(gi.Alg, gj.Alg) {
				extra = append(extra, mpoly.Sub(mpoly.Var(n, i), mpoly.Var(n, j)))
			}
		}
	}
	if len(extra) == 0 {
		return truth.Unknown
	}
	merged := mpoly.NewIdeal(append(append([]*mpoly.Poly{}, f.Ideal.Gens...), extra...)...)
	reduced := mpoly.ReduceIdeal(x.RatFunc(), merged)
	if r, ok := reduced.IsConstant(); ok {
		return truth.FromBool(r.Sign() == 0)
	}
	return truth.Unknown
}

// complexNormalFormZero implements spec.md 4.8.1 step 5: rewrite x as
// re + i*im along any distinguished-i generator its Multi field lifted in
// (ca.SplitByImaginaryGenerator), and decide each half on its own. This is
// sound -- x == 0 iff both halves are -- and can resolve a case the
// combined complex-ball cascade above left Unknown, since a real-only and
// an imaginary-only enclosure each carry a tighter bound than their
// combined rectangle. Anything that isn't a mixed-i Multi-field value
// reports Unknown, unchanged from the steps above.
func complexNormalFormZero(x *ca.Ca) truth.Value {
	re, im, ok := ca.SplitByImaginaryGenerator(x)
	if !ok {
		return truth.Unknown
	}
	reZero, imZero := CheckIsZero(re), CheckIsZero(im)
	if reZero == truth.False || imZero == truth.False {
		return truth.False
	}
	if reZero == truth.True && imZero == truth.True {
		return truth.True
	}
	return truth.Unknown
}

// numericDisproveZero runs the ball-enclosure schedule 64, 128, 256, ...
// bits (LowPrec doubling up to PrecLimit) looking for an enclosure that
// excludes the origin; that is a sound proof of nonzero-ness. It never
// proves zero-ness (an enclosure containing zero could always still
// refine away from it at higher precision, or could genuinely be zero --
// the cascade cannot tell the two apart), so the zero case always exits
// Unknown, matching the original's refusal to claim exactness from
// ball arithmetic alone.
func numericDisproveZero(x *ca.Ca) truth.Value {
	c := x.Ctx()
	for prec := c.Options.LowPrec; prec <= c.Options.PrecLimit; prec *= 2 {
		enc := x.EnclosureAt(prec)
		if b, ok := enc.(*bigball.Ball); ok && b.ExcludesZero() {
			return truth.False
		}
	}
	return truth.Unknown
}

// CheckEqual decides x == y. For the special values it compares Kind
// (and, for two signed infinities, their directions via EqualRepr)
// directly rather than subtracting, since Undefined/Unknown arithmetic
// would otherwise swallow the comparison into another Unknown.
func CheckEqual(x, y *ca.Ca) truth.Value {
	if x.Kind() == ca.KindUndefined || y.Kind() == ca.KindUndefined {
		return truth.Unknown
	}
	if x.Kind() == ca.KindUnknown || y.Kind() == ca.KindUnknown {
		return truth.Unknown
	}
	if x.IsSpecial() || y.IsSpecial() {
		if x.Kind() != y.Kind() {
			return truth.False
		}
		if x.Kind() == ca.KindSignedInfinity {
			return truth.FromBool(ca.EqualRepr(x.Direction(), y.Direction()))
		}
		return truth.True
	}
	return CheckIsZero(ca.Sub(x, y))
}

// signCascade decides the sign of a finite, non-special value the same
// way CheckIsZero decides zero-ness: exact first (rational, then
// condensed-to-rational), then the ball schedule's decisive Sign().
func signCascade(x *ca.Ca) (sign int, decided bool) {
	if r, ok := x.Rational(); ok {
		return r.Sign(), true
	}
	cond := ca.CondenseField(x)
	if r, ok := cond.Rational(); ok {
		return r.Sign(), true
	}
	c := cond.Ctx()
	for prec := c.Options.LowPrec; prec <= c.Options.PrecLimit; prec *= 2 {
		enc := cond.EnclosureAt(prec)
		b, ok := enc.(*bigball.Ball)
		if !ok {
			continue
		}
		if s, ok := b.Sign(); ok {
			return s, true
		}
	}
	return 0, false
}

// order evaluates x - y and reports its sign via signCascade, or decided
// = false when either operand is a special value or the cascade ran out
// of precision.
func order(x, y *ca.Ca) (sign int, decided bool) {
	if x.IsSpecial() || y.IsSpecial() {
		return 0, false
	}
	return signCascade(ca.Sub(x, y))
}

// nonRealFalse reports the real-order comparisons' non-real short circuit:
// a provably non-real operand makes x <op> y meaningless, and the
// comparison is False rather than Unknown (spec.md 4.8.3) -- Unknown is
// reserved for when realness itself cannot be decided or order's cascade
// runs out of precision, not for "this was never going to be real".
func nonRealFalse(x, y *ca.Ca) bool {
	return CheckIsReal(x) == truth.False || CheckIsReal(y) == truth.False
}

// CheckLt, CheckLe, CheckGt, CheckGe decide the real order x <op> y.
func CheckLt(x, y *ca.Ca) truth.Value {
	if nonRealFalse(x, y) {
		return truth.False
	}
	s, ok := order(x, y)
	if !ok {
		return truth.Unknown
	}
	return truth.FromBool(s < 0)
}

func CheckLe(x, y *ca.Ca) truth.Value {
	if nonRealFalse(x, y) {
		return truth.False
	}
	s, ok := order(x, y)
	if !ok {
		return truth.Unknown
	}
	return truth.FromBool(s <= 0)
}

func CheckGt(x, y *ca.Ca) truth.Value {
	if nonRealFalse(x, y) {
		return truth.False
	}
	s, ok := order(x, y)
	if !ok {
		return truth.Unknown
	}
	return truth.FromBool(s > 0)
}

func CheckGe(x, y *ca.Ca) truth.Value {
	if nonRealFalse(x, y) {
		return truth.False
	}
	s, ok := order(x, y)
	if !ok {
		return truth.Unknown
	}
	return truth.FromBool(s >= 0)
}

// reExcludesZero and imExcludesZero report whether a ball's real (resp.
// imaginary) rectangle is entirely strictly positive or strictly
// negative, i.e. provably nonzero along that axis.
func reExcludesZero(b *bigball.Ball) bool {
	lo := new(big.Float).Sub(b.ReMid, b.ReRad)
	hi := new(big.Float).Add(b.ReMid, b.ReRad)
	return lo.Sign() > 0 || hi.Sign() < 0
}

func imExcludesZero(b *bigball.Ball) bool {
	lo := new(big.Float).Sub(b.ImMid, b.ImRad)
	hi := new(big.Float).Add(b.ImMid, b.ImRad)
	return lo.Sign() > 0 || hi.Sign() < 0
}

// CheckIsReal decides whether x has zero imaginary part. Every rational
// value is real by construction (True immediately); otherwise the cascade
// looks for a ball whose imaginary rectangle either excludes zero (proof
// of False) or is forced to the exact point zero (b.IsReal(), proof of
// True for an exactly-real algebraic generator such as a real qqbar
// root); anything else is Unknown.
func CheckIsReal(x *ca.Ca) truth.Value {
	if x.IsSpecial() {
		return truth.Unknown
	}
	if x.IsRational() {
		return truth.True
	}
	c := x.Ctx()
	for prec := c.Options.LowPrec; prec <= c.Options.PrecLimit; prec *= 2 {
		enc := x.EnclosureAt(prec)
		b, ok := enc.(*bigball.Ball)
		if !ok {
			continue
		}
		if imExcludesZero(b) {
			return truth.False
		}
		if b.IsReal() {
			return truth.True
		}
	}
	return truth.Unknown
}

// CheckIsImaginary decides whether x is nonzero and purely imaginary
// (zero real part). Mirrors CheckIsReal with the axes swapped, plus an
// upfront zero exclusion since 0 itself is real, not "imaginary" in this
// sense.
func CheckIsImaginary(x *ca.Ca) truth.Value {
	if x.IsSpecial() {
		return truth.Unknown
	}
	zero := CheckIsZero(x)
	if zero == truth.True {
		return truth.False
	}
	if x.IsRational() {
		return truth.False
	}
	c := x.Ctx()
	for prec := c.Options.LowPrec; prec <= c.Options.PrecLimit; prec *= 2 {
		enc := x.EnclosureAt(prec)
		b, ok := enc.(*bigball.Ball)
		if !ok {
			continue
		}
		if reExcludesZero(b) {
			return truth.False
		}
		lo := new(big.Float).Sub(b.ReMid, b.ReRad)
		hi := new(big.Float).Add(b.ReMid, b.ReRad)
		if lo.Sign() == 0 && hi.Sign() == 0 && zero == truth.False {
			return truth.True
		}
	}
	return truth.Unknown
}

// CheckIsRational decides whether x's exact value is a plain rational
// number, by condensing it to its smallest field and checking whether
// that field is Q -- exact and decidable either way for a finite value;
// a special value gives Unknown.
func CheckIsRational(x *ca.Ca) truth.Value {
	if x.IsSpecial() {
		return truth.Unknown
	}
	cond := ca.CondenseField(x)
	return truth.FromBool(cond.IsRational())
}

// CheckIsInteger decides whether x is a rational integer.
func CheckIsInteger(x *ca.Ca) truth.Value {
	rational := CheckIsRational(x)
	if rational != truth.True {
		return rational
	}
	cond := ca.CondenseField(x)
	r, _ := cond.Rational()
	return truth.FromBool(r.IsInt())
}

// CheckIsAlgebraic decides whether x is an algebraic number. Condensing
// to Q or a NumberField is a direct proof of True. For a handful of
// generators with well-established transcendence (pi, Euler's e), a
// value that is structurally exactly that generator is decided False;
// every other Multi-field value -- which might genuinely be algebraic
// via some relation this module's ideal machinery did not discover, or
// might not be -- is honestly Unknown, since proving transcendence in
// general is far beyond what a quasi-division-based ideal membership
// check can do (see DESIGN.md).
func CheckIsAlgebraic(x *ca.Ca) truth.Value {
	if x.IsSpecial() {
		return truth.Unknown
	}
	cond := ca.CondenseField(x)
	switch cond.Field().Kind {
	case field.KindQ, field.KindNumberField:
		return truth.True
	}
	if g, ok := ca.IsGenAsExt(cond); ok && !g.IsAlgebraic {
		if g.Head == ext.HeadPi || g.Head == ext.HeadEuler {
			return truth.False
		}
	}
	return truth.Unknown
}
