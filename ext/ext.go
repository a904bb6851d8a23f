// Package ext implements the Extension object (spec.md component C2): a
// single symbolic generator, either an algebraic number or a named
// transcendental function applied to argument elements, together with the
// canonical total order spec.md 4.1 requires for interning and for
// ordering a field's generator tuple.
//
// Ext cannot import package ca (function arguments are Ca values) without
// creating an import cycle, so arguments are carried behind the minimal
// Arg interface instead; package ca supplies the concrete implementation
// and performs the recursive comparisons described in spec.md 4.1.3.
package ext

import (
	"calcium/qqbar"
)

// Head enumerates the named transcendental function heads spec.md section
// 3 lists. Pi and Euler are 0-ary (constants); all others take one or more
// Calcium-element arguments.
type Head int

const (
	HeadInvalid Head = iota
	HeadPi
	HeadEuler
	HeadExp
	HeadLog
	HeadPow
	HeadSqrt
	HeadSin
	HeadCos
	HeadTan
	HeadAtan
	HeadAsin
	HeadAcos
	HeadSign
	HeadAbs
	HeadRe
	HeadIm
	HeadConjugate
	HeadFloor
	HeadCeil
	HeadGamma
	HeadErf
	HeadErfc
	HeadErfi
	HeadEllipticK
	HeadEllipticE
	HeadEllipticPi
	HeadRiemannZeta
	HeadTetranacci
	HeadTribonacci
)

var headNames = map[Head]string{
	HeadPi: "Pi", HeadEuler: "Euler", HeadExp: "Exp", HeadLog: "Log",
	HeadPow: "Pow", HeadSqrt: "Sqrt", HeadSin: "Sin", HeadCos: "Cos",
	HeadTan: "Tan", HeadAtan: "Atan", HeadAsin: "Asin", HeadAcos: "Acos",
	HeadSign: "Sign", HeadAbs: "Abs", HeadRe: "Re", HeadIm: "Im",
	HeadConjugate: "Conjugate", HeadFloor: "Floor", HeadCeil: "Ceil",
	HeadGamma: "Gamma", HeadErf: "Erf", HeadErfc: "Erfc", HeadErfi: "Erfi",
	HeadEllipticK: "EllipticK", HeadEllipticE: "EllipticE",
	HeadEllipticPi: "EllipticPi", HeadRiemannZeta: "RiemannZeta",
	HeadTetranacci: "Tetranacci", HeadTribonacci: "Tribonacci",
}

func (h Head) String() string {
	if n, ok := headNames[h]; ok {
		return n
	}
	return "Unknown"
}

// Arg is the minimal surface an Ext's function arguments must satisfy:
// a comparator against another Arg (delegating to the owning field's and
// payload's own order, per spec.md 4.1.3) and a numerical enclosure
// evaluator at a given precision, used to compute an Ext's own cached
// enclosure. Package ca's Ca type implements this interface.
type Arg interface {
	CompareArg(other Arg) int
	EnclosureAt(prec uint) Enclosure
}

// Enclosure is the minimal ball surface Ext needs; package bigball.Ball
// satisfies it, kept abstract here purely to avoid an import some callers
// (e.g. tests) may want to stub.
type Enclosure interface {
	String() string
}

// Ext is a single interned generator: either Algebraic (an algebraic
// number, spec.md 3) or Function (head applied to args, spec.md 3).
type Ext struct {
	IsAlgebraic bool

	// Algebraic shape.
	Alg *qqbar.Alg

	// Function shape.
	Head Head
	Args []Arg

	// cached numerical enclosure at the precision it was last computed;
	// recomputed lazily by package ca (genEnclosureAt) when a higher
	// precision is requested than cachedPrec covers.
	cached     Enclosure
	cachedPrec uint
}

// NewAlgebraic constructs a (not-yet-interned) algebraic Ext.
func NewAlgebraic(a *qqbar.Alg) *Ext {
	return &Ext{IsAlgebraic: true, Alg: a}
}

// NewFunction constructs a (not-yet-interned) function Ext.
func NewFunction(head Head, args ...Arg) *Ext {
	return &Ext{IsAlgebraic: false, Head: head, Args: append([]Arg{}, args...)}
}

// Cached returns the Ext's cached enclosure and the precision it was
// computed at, or (nil, 0) if none has been cached yet.
func (e *Ext) Cached() (Enclosure, uint) {
	return e.cached, e.cachedPrec
}

// SetCached records a freshly computed enclosure.
func (e *Ext) SetCached(enc Enclosure, prec uint) {
	e.cached = enc
	e.cachedPrec = prec
}

// Arity returns the number of function arguments (0 for Algebraic or a
// 0-ary head like Pi/Euler).
func (e *Ext) Arity() int {
	return len(e.Args)
}

// Compare implements the canonical total order of spec.md 4.1:
//  1. Algebraic < Function.
//  2. Within Algebraic: by qqbar.Cmp (degree, then minimal polynomial,
//     then enclosure).
//  3. Within Function: by head, then argument count, then recursively by
//     each argument's own comparator.
func Compare(a, b *Ext) int {
	if a.IsAlgebraic != b.IsAlgebraic {
		if a.IsAlgebraic {
			return -1
		}
		return 1
	}
	if a.IsAlgebraic {
		return qqbar.Cmp(a.Alg, b.Alg)
	}
	if a.Head != b.Head {
		if a.Head < b.Head {
			return -1
		}
		return 1
	}
	if len(a.Args) != len(b.Args) {
		if len(a.Args) < len(b.Args) {
			return -1
		}
		return 1
	}
	for i := range a.Args {
		if c := a.Args[i].CompareArg(b.Args[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports structural equality under Compare, the condition the
// extension cache (package context) uses to decide "lookup hit".
func Equal(a, b *Ext) bool {
	return Compare(a, b) == 0
}

func (e *Ext) String() string {
	if e.IsAlgebraic {
		return e.Alg.String()
	}
	s := e.Head.String() + "("
	for i, a := range e.Args {
		if i > 0 {
			s += ", "
		}
		if enc := a.EnclosureAt(e.cachedPrec); enc != nil {
			s += enc.String()
		}
	}
	return s + ")"
}
