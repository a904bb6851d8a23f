// Package context implements the Context/cache component (spec.md C4):
// process-local interning of extensions, fields, and per-arity
// multivariate-polynomial contexts, plus the tuning-options vector of
// package context's Options type. Two Contexts never share state; each
// caller owns its own (spec.md section 5, "single-threaded per Context").
package context

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"sync"

	"golang.org/x/crypto/blake2b"

	"calcium/ext"
	"calcium/field"
	"calcium/mpoly"
	"calcium/qqbar"
)

// Context owns the extension cache, field cache, and per-arity mpoly
// contexts described by spec.md 4.4, plus the tuning Options. It is not
// safe for concurrent mutation (spec.md section 5); callers that need
// concurrency give each goroutine its own Context.
type Context struct {
	Options Options

	mu         sync.Mutex // guards the maps below; see note in doc comment
	extBuckets map[[32]byte][]*ext.Ext
	fldBuckets map[[32]byte][]*field.Field
	polyCtxs   map[int]*mpoly.Ctx

	fieldQ  *field.Field
	fieldQI *field.Field
	genI    *ext.Ext

	trace io.Writer
}

// New constructs a Context with the given options. The cache maps start
// empty; Q and Q(i) are interned lazily on first use via FieldQ/FieldQI.
//
// The mutex exists purely as a defensive guard against accidental
// cross-goroutine sharing (a Context is meant to be single-threaded;
// this is not a concurrency feature, just a cheap panic-free safety net
// mirroring how ntru's own caches are always goroutine-confined to one
// signer/verifier at a time).
func New(opts Options) *Context {
	return &Context{
		Options:    opts,
		extBuckets: map[[32]byte][]*ext.Ext{},
		fldBuckets: map[[32]byte][]*field.Field{},
		polyCtxs:   map[int]*mpoly.Ctx{},
		trace:      os.Stderr,
	}
}

// NewDefault constructs a Context with DefaultOptions.
func NewDefault() *Context {
	return New(DefaultOptions())
}

// SetTraceWriter redirects VERBOSE diagnostic output; defaults to os.Stderr.
func (c *Context) SetTraceWriter(w io.Writer) {
	c.trace = w
}

// Trace writes a diagnostic line when Options.Verbose is set, mirroring
// ntru's own dbg(w, f, a...) helper gated by NTRU_DEBUG.
func (c *Context) Trace(format string, args ...any) {
	if c.Options.Verbose {
		fmt.Fprintf(c.trace, format, args...)
	}
}

func structuralHash(s string) [32]byte {
	return blake2b.Sum256([]byte(s))
}

// InternExt returns the unique interned *ext.Ext structurally equal to e,
// constructing and caching e itself if this is the first such request
// (spec.md 4.1's "ext_for_qqbar"/"ext_for_function").
func (c *Context) InternExt(e *ext.Ext) *ext.Ext {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := structuralHash(e.String())
	for _, cand := range c.extBuckets[key] {
		if ext.Equal(cand, e) {
			return cand
		}
	}
	c.extBuckets[key] = append(c.extBuckets[key], e)
	return e
}

// ExtForQQbar interns the algebraic extension for the given algebraic
// number, deduplicating e.g. repeated requests for sqrt(2).
func (c *Context) ExtForQQbar(a *qqbar.Alg) *ext.Ext {
	return c.InternExt(ext.NewAlgebraic(a))
}

// ExtForFunction interns the function extension (head, args). No
// numerical enclosure is computed here; package ca (which owns Ca's
// EnclosureAt implementation) computes one on first request and attaches
// it via Ext.SetCached, since package ext cannot depend on package ca.
func (c *Context) ExtForFunction(head ext.Head, args ...ext.Arg) *ext.Ext {
	return c.InternExt(ext.NewFunction(head, args...))
}

// iGen returns (interning once) the algebraic extension for i = sqrt(-1),
// the generator of the distinguished Q(i) singleton.
func (c *Context) iGen() *ext.Ext {
	if c.genI != nil {
		return c.genI
	}
	mp := []*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(1)} // x^2+1
	a := qqbar.NewFromAnnihilator(mp, iEnclosure(c.Options.LowPrec))
	c.genI = c.ExtForQQbar(a)
	return c.genI
}

// FieldQ returns the unique rational field.
func (c *Context) FieldQ() *field.Field {
	if c.fieldQ == nil {
		c.fieldQ = field.Q()
	}
	return c.fieldQ
}

// FieldQI returns the distinguished Q(i) singleton.
func (c *Context) FieldQI() *field.Field {
	if c.fieldQI != nil {
		return c.fieldQI
	}
	g := c.iGen()
	f := field.NumberField(g)
	c.fieldQI = internField(c, f)
	return c.fieldQI
}

// FieldForSingleExt returns (interning) the single-generator field for g:
// a NumberField if g is algebraic, a single-generator Multi otherwise.
func (c *Context) FieldForSingleExt(g *ext.Ext) *field.Field {
	if g.IsAlgebraic {
		return c.FieldForGens([]*ext.Ext{g})
	}
	return internField(c, field.Multi([]*ext.Ext{g}, mpoly.NewIdeal()))
}

// FieldForCyclotomic returns the single-generator Multi field for g under
// the power-of-two root-of-unity ideal x^order+1 (field.MultiCyclotomic),
// the field package transcendental's Exp builds for exp(i*pi*p/order)
// when order is a power of two and p is odd, so that package ca's
// sameFieldMul can recognize it (field.Field.CyclotomicOrder) and take
// the CyclotomicRing NTT fast path.
func (c *Context) FieldForCyclotomic(g *ext.Ext, order uint64) *field.Field {
	return field.MultiCyclotomic(g, order)
}

// FieldForGens builds (and interns) the Field over the given generator
// set: Q if empty, a NumberField if it is a single algebraic generator,
// Multi otherwise. A set of several algebraic generators is not collapsed
// to a NumberField; it always becomes a Multi field. Generators are sorted by
// ext.Compare and deduplicated first, per spec.md 4.1/4.2.
func (c *Context) FieldForGens(gens []*ext.Ext) *field.Field {
	gens = dedupSorted(gens)
	if len(gens) == 0 {
		return c.FieldQ()
	}
	if len(gens) == 1 && gens[0].IsAlgebraic {
		f := field.NumberField(gens[0])
		return internField(c, f)
	}
	ideal := field.BuildIdeal(gens)
	f := field.Multi(gens, ideal)
	return internField(c, f)
}

func dedupSorted(gens []*ext.Ext) []*ext.Ext {
	cp := append([]*ext.Ext{}, gens...)
	sort.Slice(cp, func(i, j int) bool { return ext.Compare(cp[i], cp[j]) < 0 })
	out := cp[:0]
	for i, g := range cp {
		if i == 0 || !ext.Equal(out[len(out)-1], g) {
			out = append(out, g)
		}
	}
	return out
}

func internField(c *Context, f *field.Field) *field.Field {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := structuralHash(f.StructuralKey())
	for _, cand := range c.fldBuckets[key] {
		if field.Equal(cand, f) {
			return cand
		}
	}
	c.fldBuckets[key] = append(c.fldBuckets[key], f)
	return f
}

// PolyContext returns (caching) the arity-n multivariate polynomial
// context, spec.md 4.4's "one per arity".
func (c *Context) PolyContext(n int) *mpoly.Ctx {
	c.mu.Lock()
	defer c.mu.Unlock()
	if pc, ok := c.polyCtxs[n]; ok {
		return pc
	}
	pc := mpoly.NewCtx(n)
	c.polyCtxs[n] = pc
	return pc
}
