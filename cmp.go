package quad

// Cmp compares f and g, returning -1, 0 or +1. The boolean is false
// when the operands are unordered, i.e. either is NaN, in which case
// the int is meaningless. Zeroes compare equal regardless of sign.
func (f Float128) Cmp(g Float128) (int, bool) {
	if f.IsNaN() || g.IsNaN() {
		return 0, false
	}
	fm, gm := f.magBits(), g.magBits()
	if fm.isZero() && gm.isZero() {
		return 0, true
	}
	fs, gs := f.Signbit(), g.Signbit()
	switch {
	case fs && !gs:
		return -1, true
	case !fs && gs:
		return 1, true
	}
	c := fm.cmp(gm)
	if fs {
		c = -c
	}
	return c, true
}

// IsUnordered reports whether f and g are unordered, i.e. either is NaN.
func (f Float128) IsUnordered(g Float128) bool {
	return f.IsNaN() || g.IsNaN()
}

// Eq reports whether f == g. Unordered operands are not equal.
func (f Float128) Eq(g Float128) bool {
	c, ok := f.Cmp(g)
	return ok && c == 0
}

// Ne reports whether f != g. Unordered operands are unequal.
func (f Float128) Ne(g Float128) bool {
	c, ok := f.Cmp(g)
	return !ok || c != 0
}

// Lt reports whether f < g; false when unordered.
func (f Float128) Lt(g Float128) bool {
	c, ok := f.Cmp(g)
	return ok && c < 0
}

// Le reports whether f <= g; false when unordered.
func (f Float128) Le(g Float128) bool {
	c, ok := f.Cmp(g)
	return ok && c <= 0
}

// Gt reports whether f > g; false when unordered.
func (f Float128) Gt(g Float128) bool {
	c, ok := f.Cmp(g)
	return ok && c > 0
}

// Ge reports whether f >= g; false when unordered.
func (f Float128) Ge(g Float128) bool {
	c, ok := f.Cmp(g)
	return ok && c >= 0
}

// TotalOrder reports whether f precedes or equals g in the IEEE 754
// totalOrder relation, which orders every bit pattern:
// -NaN < -Inf < finite negatives < -0 < +0 < finite positives < +Inf < +NaN,
// with NaNs ordered by payload and quietness.
func (f Float128) TotalOrder(g Float128) bool {
	return totalOrderKey(f).cmp(totalOrderKey(g)) <= 0
}

// totalOrderKey maps the sign-magnitude pattern onto an unsigned key
// whose natural ordering is totalOrder: negatives flip every bit,
// positives set the top bit.
func totalOrderKey(f Float128) u128 {
	if f.hi&signBit != 0 {
		return u128{hi: ^f.hi, lo: ^f.lo}
	}
	return u128{hi: f.hi | signBit, lo: f.lo}
}

// Max returns the larger of a and b following IEEE maxNum: a single NaN
// loses to the other operand, and +0 beats -0.
func Max(a, b Float128) Float128 {
	switch {
	case a.IsNaN():
		if b.IsNaN() {
			return a.quieted()
		}
		return b
	case b.IsNaN():
		return a
	}
	if c, _ := a.Cmp(b); c != 0 {
		if c > 0 {
			return a
		}
		return b
	}
	if a.Signbit() {
		return b
	}
	return a
}

// Min returns the smaller of a and b following IEEE minNum: a single
// NaN loses to the other operand, and -0 beats +0.
func Min(a, b Float128) Float128 {
	switch {
	case a.IsNaN():
		if b.IsNaN() {
			return a.quieted()
		}
		return b
	case b.IsNaN():
		return a
	}
	if c, _ := a.Cmp(b); c != 0 {
		if c < 0 {
			return a
		}
		return b
	}
	if a.Signbit() {
		return a
	}
	return b
}
