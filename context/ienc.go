package context

import "calcium/bigball"

// iEnclosure returns the exact enclosure of i = sqrt(-1) at prec bits.
func iEnclosure(prec uint) *bigball.Ball {
	return bigball.Exact(0, 1, prec)
}
