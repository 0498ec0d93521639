package quad

// Add returns f+g, rounded to nearest even.
func (f Float128) Add(g Float128) Float128 { return f.AddRound(g, RoundNearestEven) }

// Sub returns f-g, rounded to nearest even.
func (f Float128) Sub(g Float128) Float128 { return f.SubRound(g, RoundNearestEven) }

// Mul returns f*g, rounded to nearest even.
func (f Float128) Mul(g Float128) Float128 { return f.MulRound(g, RoundNearestEven) }

// AddRound returns f+g under the given rounding mode.
//
// A NaN operand comes back with its quiet bit forced, f taking
// precedence over g. Opposite-signed infinities produce the default
// quiet NaN.
func (f Float128) AddRound(g Float128, mode RoundingMode) Float128 {
	switch {
	case f.IsNaN():
		return f.quieted()
	case g.IsNaN():
		return g.quieted()
	case f.IsInf() && g.IsInf():
		if f.Signbit() != g.Signbit() {
			return NaN()
		}
		return f
	case f.IsInf():
		return f
	case g.IsInf():
		return g
	}
	return addFinite(f, g, mode)
}

// SubRound returns f-g under the given rounding mode. It is
// AddRound(f, -g), except that a NaN g is propagated with its sign and
// payload untouched rather than negated.
func (f Float128) SubRound(g Float128, mode RoundingMode) Float128 {
	switch {
	case f.IsNaN():
		return f.quieted()
	case g.IsNaN():
		return g.quieted()
	}
	return f.AddRound(g.Neg(), mode)
}

// MulRound returns f*g under the given rounding mode. The result sign
// is the operand signs' xor; infinity times zero is the default quiet
// NaN.
func (f Float128) MulRound(g Float128, mode RoundingMode) Float128 {
	switch {
	case f.IsNaN():
		return f.quieted()
	case g.IsNaN():
		return g.quieted()
	}

	neg := f.Signbit() != g.Signbit()
	sign := 1
	if neg {
		sign = -1
	}
	switch {
	case f.IsInf():
		if g.IsZero() {
			return NaN()
		}
		return Inf(sign)
	case g.IsInf():
		if f.IsZero() {
			return NaN()
		}
		return Inf(sign)
	}
	return mulFinite(f, g, neg, mode)
}

// addFinite aligns both significands into the 117-bit rounding form and
// adds or subtracts them. Both operands are finite.
func addFinite(a, b Float128, mode RoundingMode) Float128 {
	// Order so |a| >= |b|; for finite values the sign-masked patterns
	// compare as magnitudes.
	if a.magBits().cmp(b.magBits()) < 0 {
		a, b = b, a
	}

	var (
		neg  = a.Signbit()
		aexp = a.unbiasedExp()
		asig = a.sig().lsh(grsBits)
		bsig = b.sig().lsh(grsBits)
	)
	if d := uint(aexp - b.unbiasedExp()); d > 0 {
		bsig = bsig.rshJam(d)
	}

	var sum u128
	if neg == b.Signbit() {
		sum = asig.add(bsig)
	} else {
		sum = asig.sub(bsig)
		if sum.isZero() {
			// Exact cancellation: +0 in every mode except toward
			// negative, which gets -0.
			return Compose(mode == RoundTowardNegative, 0, 0, 0)
		}
	}

	exp := aexp
	if sum.hi&(1<<(irCarryBit-64)) != 0 {
		// The addition overflowed the leading bit.
		sum = sum.rshJam(1)
		exp++
	} else if sum.hi&(1<<(irLeadBit-64)) == 0 && exp > expMin {
		// Cancellation left the sum below 1.0; renormalize as far as
		// the exponent range allows. Landing short leaves a subnormal.
		shift := sum.leadingZeros() - irHeadroom
		if max := uint(exp - expMin); shift > max {
			shift = max
		}
		sum = sum.lsh(shift)
		exp -= int(shift)
	}
	return roundPack(neg, exp, sum, mode)
}

// mulFinite multiplies two finite operands through the 226-bit product
// form: a high half holding carry/leading/112 fraction bits
// right-justified, and a low half holding the remaining fraction
// left-justified, its sticky bits left uncollected until rounding.
func mulFinite(a, b Float128, neg bool, mode RoundingMode) Float128 {
	asig, bsig := a.sig(), b.sig()
	if asig.isZero() || bsig.isZero() {
		return Compose(neg, 0, 0, 0)
	}
	exp := a.unbiasedExp() + b.unbiasedExp()

	// Pre-shifting each operand by 8 positions the product boundary on
	// the halves exactly, with slack below the low fraction.
	hi, lo := mul128to256(asig.lsh(8), bsig.lsh(8))

	if hi.hi&(1<<(sigBits-64)) != 0 {
		// Carry bit set: the product reached [2,4).
		hi, lo = shiftRightJam256(hi, lo, 1)
		exp++
	}

	if exp < expMin {
		// Tiny: shift down to the subnormal grid, pre-collecting every
		// about-to-be-lost bit into sticky. Far enough below, only the
		// sticky bit survives.
		hi, lo = shiftRightJam256(hi, lo, uint(expMin-exp))
		exp = expMin
	} else if hi.hi&(1<<(sigBits-1-64)) == 0 {
		// Subnormal operand: the leading bit is low. Renormalize as far
		// as the exponent range allows.
		shift := hi.leadingZeros() - (128 - sigBits)
		if max := uint(exp - expMin); shift > max {
			shift = max
		}
		hi, lo = shiftLeft256(hi, lo, shift)
		exp -= int(shift)
	}

	// Collapse the deferred low-half sticky only now, immediately
	// before rounding.
	grs := lo.hi >> 62 << 1
	if lo.hi<<2 != 0 || lo.lo != 0 {
		grs |= 1
	}
	sig := hi.lsh(grsBits)
	sig.lo |= grs
	return roundPack(neg, exp, sig, mode)
}
