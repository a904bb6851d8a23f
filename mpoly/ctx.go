package mpoly

// Ctx is a trivial per-arity multivariate polynomial context. The real
// calcium library's fmpz_mpoly_ctx_t caches monomial-ordering and variable
// naming state per arity; this package's Poly/RatFunc types are already
// self-describing (they carry NVars directly), so Ctx exists mainly so
// package context's cache structure (one mpoly context per arity, spec.md
// 4.4) has something concrete to hold and hand out.
type Ctx struct {
	NVars int
}

// NewCtx returns the context for n-variable polynomials.
func NewCtx(n int) *Ctx {
	return &Ctx{NVars: n}
}

// Zero returns the zero polynomial in this context's arity.
func (c *Ctx) Zero() *Poly {
	return New(c.NVars)
}
