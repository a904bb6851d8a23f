package ca

// specialAdd implements the additive rows of spec.md section 3's
// arithmetic-with-specials table. ok is false when neither operand is
// special, meaning the caller should fall through to ordinary field
// arithmetic.
func specialAdd(x, y *Ca) (*Ca, bool) {
	if x.kind == KindUndefined || y.kind == KindUndefined {
		return Undefined(x.ctx), true
	}
	if x.kind == KindUnknown || y.kind == KindUnknown {
		return UnknownVal(x.ctx), true
	}
	switch {
	case x.kind == KindUnsignedInfinity && y.kind == KindUnsignedInfinity:
		return Undefined(x.ctx), true
	case x.kind == KindUnsignedInfinity && y.kind == KindSignedInfinity:
		return Undefined(x.ctx), true
	case x.kind == KindSignedInfinity && y.kind == KindUnsignedInfinity:
		return Undefined(x.ctx), true
	case x.kind == KindUnsignedInfinity:
		return UInf(x.ctx), true
	case y.kind == KindUnsignedInfinity:
		return UInf(x.ctx), true
	case x.kind == KindSignedInfinity && y.kind == KindSignedInfinity:
		if EqualRepr(x.dir, y.dir) {
			return SignedInf(x.ctx, x.dir), true
		}
		// (+infinity)+(-infinity) and similar opposed directions: no
		// meaningful limit, matching spec.md section 8's worked example.
		return Undefined(x.ctx), true
	case x.kind == KindSignedInfinity:
		return SignedInf(x.ctx, x.dir), true
	case y.kind == KindSignedInfinity:
		return SignedInf(x.ctx, y.dir), true
	}
	return nil, false
}

// specialMul implements the multiplicative rows of the same table.
func specialMul(x, y *Ca) (*Ca, bool) {
	if x.kind == KindUndefined || y.kind == KindUndefined {
		return Undefined(x.ctx), true
	}
	if x.kind == KindUnknown || y.kind == KindUnknown {
		return UnknownVal(x.ctx), true
	}
	xInf := x.kind == KindUnsignedInfinity || x.kind == KindSignedInfinity
	yInf := y.kind == KindUnsignedInfinity || y.kind == KindSignedInfinity
	if xInf && yInf {
		if x.kind == KindSignedInfinity && y.kind == KindSignedInfinity {
			return SignedInf(x.ctx, Mul(x.dir, y.dir)), true
		}
		return UInf(x.ctx), true
	}
	if xInf {
		return infTimesFinite(x, y)
	}
	if yInf {
		return infTimesFinite(y, x)
	}
	return nil, false
}

// infTimesFinite handles infinity * finite (in either order); structurally
// rational zero finite operands produce Undefined, anything else produces
// an infinity. A finite value that is zero but only provably so via the
// predicate engine (not structurally) is not caught here -- package
// predicate's callers are expected to route through CheckIsZero before
// relying on this fast path for anything but obviously-rational operands.
func infTimesFinite(inf, finite *Ca) (*Ca, bool) {
	if r, ok := finite.Rational(); ok && r.Sign() == 0 {
		return Undefined(inf.ctx), true
	}
	if inf.kind == KindUnsignedInfinity {
		return UInf(inf.ctx), true
	}
	return SignedInf(inf.ctx, Mul(inf.dir, finite)), true
}
