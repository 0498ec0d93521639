package quad

import "math/bits"

// u128 is the unsigned 128-bit quantity the significand machinery works
// in. It is a trimmed-down sibling of a general-purpose uint128: just
// the add/sub/shift/compare/clz operations the float engine consumes,
// plus the sticky-collapsing ("jam") shifts that IEEE rounding depends
// on.
type u128 struct {
	hi, lo uint64
}

func (u u128) isZero() bool { return u.hi|u.lo == 0 }

func (u u128) add(n u128) (v u128) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

func (u u128) sub(n u128) (v u128) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (u u128) cmp(n u128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u u128) or(n u128) (v u128) {
	v.hi = u.hi | n.hi
	v.lo = u.lo | n.lo
	return v
}

func (u u128) lsh(n uint) (v u128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

func (u u128) rsh(n uint) (v u128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}
	return v
}

// rshJam right-shifts u by n, collapsing every bit shifted away into
// the result's least significant bit. Shifts of 128 or more leave only
// the sticky bit.
func (u u128) rshJam(n uint) (v u128) {
	switch {
	case n == 0:
		return u
	case n < 64:
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
		if u.lo<<(64-n) != 0 {
			v.lo |= 1
		}
	case n == 64:
		v.lo = u.hi
		if u.lo != 0 {
			v.lo |= 1
		}
	case n < 128:
		v.lo = u.hi >> (n - 64)
		if u.hi<<(128-n) != 0 || u.lo != 0 {
			v.lo |= 1
		}
	default:
		if u.hi|u.lo != 0 {
			v.lo = 1
		}
	}
	return v
}

func (u u128) leadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

// mul128to256 is the widening multiply: the full 256-bit product of two
// u128s as a (hi, lo) pair.
func mul128to256(u, v u128) (hi, lo u128) {
	hh1, hh0 := bits.Mul64(u.hi, v.hi)
	ll1, ll0 := bits.Mul64(u.lo, v.lo)
	hl1, hl0 := bits.Mul64(u.hi, v.lo)
	lh1, lh0 := bits.Mul64(u.lo, v.hi)

	var c uint64
	lo.lo = ll0
	lo.hi, c = bits.Add64(ll1, hl0, 0)
	hi.lo, c = bits.Add64(hh0, hl1, c)
	hi.hi = hh1 + c

	lo.hi, c = bits.Add64(lo.hi, lh0, 0)
	hi.lo, c = bits.Add64(hi.lo, lh1, c)
	hi.hi += c

	return hi, lo
}

// shiftRightJam256 right-shifts the 256-bit (hi, lo) pair by n,
// collapsing every lost bit into the low word's least significant bit.
// Any n is accepted; past 256 only the sticky bit survives.
func shiftRightJam256(hi, lo u128, n uint) (rhi, rlo u128) {
	switch {
	case n == 0:
		return hi, lo
	case n < 128:
		rhi = hi.rsh(n)
		rlo = lo.rsh(n).or(hi.lsh(128 - n))
		if !lo.lsh(128 - n).isZero() {
			rlo.lo |= 1
		}
	case n == 128:
		rlo = hi
		if !lo.isZero() {
			rlo.lo |= 1
		}
	case n < 256:
		rlo = hi.rsh(n - 128)
		if !hi.lsh(256-n).isZero() || !lo.isZero() {
			rlo.lo |= 1
		}
	default:
		if !hi.isZero() || !lo.isZero() {
			rlo.lo = 1
		}
	}
	return rhi, rlo
}

// shiftLeft256 left-shifts the 256-bit (hi, lo) pair by n < 128.
func shiftLeft256(hi, lo u128, n uint) (u128, u128) {
	if n == 0 {
		return hi, lo
	}
	return hi.lsh(n).or(lo.rsh(128 - n)), lo.lsh(n)
}
