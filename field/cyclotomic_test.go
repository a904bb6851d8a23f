package field

import "testing"

func localNextPowerOfTwo(n uint64) uint64 {
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

func TestCyclotomicRingBuilds(t *testing.T) {
	for _, order := range []uint64{1, 2, 3, 5, 8, 17} {
		r, err := CyclotomicRing(order)
		if err != nil {
			t.Fatalf("CyclotomicRing(%d): %v", order, err)
		}
		if r == nil {
			t.Fatalf("CyclotomicRing(%d): nil ring", order)
		}
	}
}

func TestCyclotomicRingModulusCongruence(t *testing.T) {
	order := uint64(16)
	r, err := CyclotomicRing(order)
	if err != nil {
		t.Fatalf("CyclotomicRing(%d): %v", order, err)
	}
	n := localNextPowerOfTwo(order)
	q := r.Modulus[0]
	if q%(2*n) != 1 {
		t.Fatalf("modulus %d is not congruent to 1 mod 2*%d", q, n)
	}
}
