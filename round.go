package quad

// RoundingMode selects the IEEE 754 rounding policy applied when a
// result cannot be represented exactly.
type RoundingMode uint8

const (
	// RoundNearestEven rounds to the nearest representable value,
	// breaking ties toward the value with an even least significant
	// significand bit. This is the default for every operator.
	RoundNearestEven RoundingMode = iota

	// RoundTowardZero truncates.
	RoundTowardZero

	// RoundTowardPositive rounds toward positive infinity.
	RoundTowardPositive

	// RoundTowardNegative rounds toward negative infinity.
	RoundTowardNegative

	// RoundNearestAway rounds to nearest, breaking ties away from zero.
	RoundNearestAway

	// RoundOdd truncates, then forces the least significant kept bit to
	// one if any discarded bit was set. It avoids double rounding when a
	// result will be rounded again at a narrower precision, and it is
	// the one mode whose overflow result is the signed maximum finite
	// value rather than infinity.
	RoundOdd
)

func (m RoundingMode) String() string {
	switch m {
	case RoundNearestEven:
		return "NearestEven"
	case RoundTowardZero:
		return "TowardZero"
	case RoundTowardPositive:
		return "TowardPositive"
	case RoundTowardNegative:
		return "TowardNegative"
	case RoundNearestAway:
		return "NearestAway"
	case RoundOdd:
		return "Odd"
	}
	return "Unknown"
}

// roundPack rounds the 117-bit form {kept 113}{G}{R}{S} to a final
// significand and packs it with the sign and exponent. On entry the
// carry bit (116) is clear and either the leading bit (115) is set or
// exp is Emin. A rounding carry out of the significand shifts right one
// and bumps the exponent; exponent overflow yields the per-mode
// overflow value.
func roundPack(neg bool, exp int, sig u128, mode RoundingMode) Float128 {
	switch mode {
	case RoundNearestEven:
		// One combined correction covers the round boundary and the
		// odd-LSB tie break.
		sig = sig.add(u128{lo: grsMask/2 + (sig.lo>>grsBits)&1})
	case RoundNearestAway:
		sig = sig.add(u128{lo: grsMask/2 + 1})
	case RoundTowardZero:
	case RoundTowardPositive:
		if !neg && sig.lo&grsMask != 0 {
			sig = sig.add(u128{lo: grsMask})
		}
	case RoundTowardNegative:
		if neg && sig.lo&grsMask != 0 {
			sig = sig.add(u128{lo: grsMask})
		}
	case RoundOdd:
		if sig.lo&grsMask != 0 {
			sig.lo |= 1 << grsBits
		}
	}
	sig = sig.rsh(grsBits)

	if sig.hi&(1<<(sigBits-64)) != 0 {
		// The correction carried out of the significand.
		sig = sig.rsh(1)
		exp++
	}
	if exp > expMax {
		return overflow(neg, mode)
	}
	var bexp uint
	if sig.hi&(1<<(sigBits-1-64)) != 0 {
		bexp = uint(exp + expBias)
	}
	return Compose(neg, bexp, sig.hi, sig.lo)
}

// overflow returns the post-rounding exponent overflow result for the
// given sign and mode: infinity for the nearest modes, the maximum
// finite value where the mode cannot round away from zero.
func overflow(neg bool, mode RoundingMode) Float128 {
	sign := 1
	if neg {
		sign = -1
	}
	switch mode {
	case RoundTowardZero, RoundOdd:
		return MaxFloat128.withSign(neg)
	case RoundTowardPositive:
		if neg {
			return MaxFloat128.withSign(true)
		}
		return Inf(1)
	case RoundTowardNegative:
		if !neg {
			return MaxFloat128
		}
		return Inf(-1)
	}
	return Inf(sign)
}

func (f Float128) withSign(neg bool) Float128 {
	f.hi &^= signBit
	if neg {
		f.hi |= signBit
	}
	return f
}

// roundPack64 is roundPack's float64 counterpart, used by the
// quad-to-double conversion: {kept 53}{G}{R}{S} in a uint64, returning
// packed float64 bits.
func roundPack64(neg bool, exp int, sig uint64, mode RoundingMode) uint64 {
	switch mode {
	case RoundNearestEven:
		sig += grsMask/2 + (sig>>grsBits)&1
	case RoundNearestAway:
		sig += grsMask/2 + 1
	case RoundTowardZero:
	case RoundTowardPositive:
		if !neg && sig&grsMask != 0 {
			sig += grsMask
		}
	case RoundTowardNegative:
		if neg && sig&grsMask != 0 {
			sig += grsMask
		}
	case RoundOdd:
		if sig&grsMask != 0 {
			sig |= 1 << grsBits
		}
	}
	sig >>= grsBits

	if sig&(1<<53) != 0 {
		sig >>= 1
		exp++
	}
	if exp > 1023 {
		return overflow64(neg, mode)
	}
	var b uint64
	if sig&(1<<52) != 0 {
		b = uint64(exp+1023) << 52
	}
	b |= sig & (1<<52 - 1)
	if neg {
		b |= signBit
	}
	return b
}

func overflow64(neg bool, mode RoundingMode) uint64 {
	const (
		inf64 = uint64(0x7FF) << 52
		max64 = inf64 - 1 // 0x7FEF...F, the largest finite float64
	)
	var b uint64
	switch mode {
	case RoundTowardZero, RoundOdd:
		b = max64
	case RoundTowardPositive:
		if neg {
			b = max64
		} else {
			b = inf64
		}
	case RoundTowardNegative:
		if neg {
			b = inf64
		} else {
			b = max64
		}
	default:
		b = inf64
	}
	if neg {
		b |= signBit
	}
	return b
}
