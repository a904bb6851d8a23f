package field

import (
	"math/big"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// CyclotomicRing builds a Lattigo NTT ring sized for reducing elements of
// the q-th cyclotomic field Q(zeta_q) when q is a power of two, which
// covers the common case of an Ext(Exp, 2*pi*i/q) generator (spec.md
// 4.7.1's "p/q * pi*i -> root of unity" closed form). ring.Ring gives a
// fast NTT-domain multiplication that the arithmetic dispatch in package
// ca's cyclotomicFastMul prefers over the generic mpoly ideal reduction
// path whenever the field's single generator is such a root of unity;
// it falls back to mpoly.Ideal.QuasiDivRemIdeal otherwise (e.g. for a
// non-power-of-two order, or a field with more than one generator).
//
// This mirrors how ntru.Params.BuildRings constructs one *ring.Ring per
// RNS modulus: a thin, validated wrapper around ring.NewRing with the
// project's own precondition checks.
func CyclotomicRing(order uint64) (*ring.Ring, error) {
	n := nextPowerOfTwo(order)
	// A 61-bit NTT-friendly prime congruent to 1 mod 2n is required by
	// lattigo's NewRing; primeFor61Bit below picks one deterministically
	// for the given ring degree, the same role BuildRings's Qi selection
	// plays for the NTRU rings.
	q, err := primeFor61Bit(n)
	if err != nil {
		return nil, err
	}
	return ring.NewRing(n, []uint64{q})
}

// MulRootOfUnityCoeffs multiplies two length-order integer coefficient
// vectors as elements of Z[x]/(x^n+1) (n = nextPowerOfTwo(order)) via
// CyclotomicRing(order)'s NTT domain, the actual "fast path" package ca's
// sameFieldMul dispatches to instead of the generic mpoly ideal reduction
// whenever a Multi field's sole generator is recognized as a power-of-two
// root of unity (ca.cyclotomicFastMul). It mirrors ntru/ntt.go's own
// MForm/NTT/MulCoeffsMontgomery/InvNTT/InvMForm convolution sequence
// (ConvolveRNS), specialized to a single modulus rather than an RNS limb
// set, since exact arithmetic here needs no residue splitting.
func MulRootOfUnityCoeffs(order uint64, a, b []int64) ([]int64, error) {
	n := nextPowerOfTwo(order)
	if uint64(len(a)) != n || uint64(len(b)) != n {
		return nil, errCoeffLengthMismatch
	}
	r, err := CyclotomicRing(order)
	if err != nil {
		return nil, err
	}
	q := r.Modulus[0]
	pa, pb := r.NewPoly(), r.NewPoly()
	for i := uint64(0); i < n; i++ {
		pa.Coeffs[0][i] = decenterToModQ(a[i], q)
		pb.Coeffs[0][i] = decenterToModQ(b[i], q)
	}
	r.MForm(pa, pa)
	r.MForm(pb, pb)
	r.NTT(pa, pa)
	r.NTT(pb, pb)
	out := r.NewPoly()
	r.MulCoeffsMontgomery(pa, pb, out)
	r.InvNTT(out, out)
	r.InvMForm(out, out)
	res := make([]int64, n)
	for i := uint64(0); i < n; i++ {
		res[i] = centerModQ(out.Coeffs[0][i], q)
	}
	return res, nil
}

func decenterToModQ(v int64, q uint64) uint64 {
	if v >= 0 {
		return uint64(v) % q
	}
	return q - (uint64(-v) % q)
}

func centerModQ(v, q uint64) int64 {
	v %= q
	if v > q/2 {
		return int64(v) - int64(q)
	}
	return int64(v)
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// primeFor61Bit returns a prime p such that p = 1 (mod 2n), searching
// downward from a fixed 61-bit candidate the way NTT-friendly modulus
// search is usually seeded; it is not a full generic NTT-prime-finder (the
// real project would call into Lattigo's own ring.GenerateNTTPrimes), but
// it is deterministic and sufficient for the cyclotomic reduction fast
// path described above.
func primeFor61Bit(n uint64) (uint64, error) {
	candidate := new(big.Int).SetUint64((uint64(1) << 61) - 1)
	mod := new(big.Int).SetUint64(2 * n)
	rem := new(big.Int).Mod(candidate, mod)
	candidate.Sub(candidate, rem)
	candidate.Add(candidate, big.NewInt(1))
	for i := 0; i < 1<<16; i++ {
		if candidate.ProbablyPrime(20) {
			return candidate.Uint64(), nil
		}
		candidate.Sub(candidate, mod)
		if candidate.Sign() <= 0 {
			break
		}
	}
	return 0, errNoPrimeFound
}
