package quad

import (
	"math"
	"math/bits"
)

// FromUint64 converts an unsigned 64-bit integer exactly.
func FromUint64(v uint64) Float128 {
	return fromMag(false, u128{lo: v}, RoundNearestEven)
}

// FromInt64 converts a signed 64-bit integer exactly.
func FromInt64(v int64) Float128 {
	m := uint64(v)
	if v < 0 {
		m = -m
	}
	return fromMag(v < 0, u128{lo: m}, RoundNearestEven)
}

// FromUint128 converts an unsigned 128-bit integer supplied as two
// 64-bit halves, rounding to nearest even when more than 113
// significant bits are present.
func FromUint128(hi, lo uint64) Float128 {
	return FromUint128Round(hi, lo, RoundNearestEven)
}

// FromUint128Round is FromUint128 under an explicit rounding mode.
// Round-to-odd is the usual request, as a first step of a narrowing
// chain that avoids double rounding.
func FromUint128Round(hi, lo uint64, mode RoundingMode) Float128 {
	return fromMag(false, u128{hi: hi, lo: lo}, mode)
}

// FromInt128 converts a signed (two's complement) 128-bit integer
// supplied as two 64-bit halves, rounding to nearest even.
func FromInt128(hi, lo uint64) Float128 {
	return FromInt128Round(hi, lo, RoundNearestEven)
}

// FromInt128Round is FromInt128 under an explicit rounding mode.
func FromInt128Round(hi, lo uint64, mode RoundingMode) Float128 {
	m := u128{hi: hi, lo: lo}
	neg := hi&signBit != 0
	if neg {
		m = u128{}.sub(m)
	}
	return fromMag(neg, m, mode)
}

// fromMag converts sign and magnitude. The binary point is assumed
// after the most significant set bit; anything past 113 significant
// bits goes through guard/round/sticky.
func fromMag(neg bool, m u128, mode RoundingMode) Float128 {
	if m.isZero() {
		return Compose(neg, 0, 0, 0)
	}
	p := 127 - int(m.leadingZeros())
	var sig u128
	if p <= irLeadBit {
		sig = m.lsh(uint(irLeadBit - p))
	} else {
		sig = m.rshJam(uint(p - irLeadBit))
	}
	return roundPack(neg, p, sig, mode)
}

// Uint128 converts f to an unsigned 128-bit integer, truncating toward
// zero: the fractional tail is discarded, never rounded. NaN and
// negative values saturate to 0; positive infinity and values of
// magnitude 2^128 or more saturate to all ones.
func (f Float128) Uint128() (hi, lo uint64) {
	switch {
	case f.IsNaN():
		return 0, 0
	case f.Signbit():
		return 0, 0
	case f.IsInf():
		return maxUint64, maxUint64
	}
	e := f.unbiasedExp()
	if e < 0 {
		return 0, 0
	}
	if e >= 128 {
		return maxUint64, maxUint64
	}
	sig := f.sig()
	var m u128
	if e >= fracBits {
		m = sig.lsh(uint(e - fracBits))
	} else {
		m = sig.rsh(uint(fracBits - e))
	}
	return m.hi, m.lo
}

// Uint64 converts f to an unsigned 64-bit integer with the same
// truncating, saturating semantics as Uint128.
func (f Float128) Uint64() uint64 {
	hi, lo := f.Uint128()
	if hi != 0 {
		return maxUint64
	}
	return lo
}

// FromFloat64 converts a float64. The conversion is always exact:
// binary128 covers the double range and precision entirely, so
// subnormal doubles renormalize into normal quads. NaN payloads carry
// across, quietened.
func FromFloat64(v float64) Float128 {
	const (
		exp64Mask  = 0x7FF
		frac64Bits = 52
		bias64     = 1023
	)
	b := math.Float64bits(v)
	neg := b&signBit != 0
	e := int(b>>frac64Bits) & exp64Mask
	frac := b & (1<<frac64Bits - 1)

	switch {
	case e == exp64Mask && frac != 0:
		q := u128{lo: frac | 1<<(frac64Bits-1)}.lsh(fracBits - frac64Bits)
		return Compose(neg, expMask, q.hi, q.lo)
	case e == exp64Mask:
		if neg {
			return Inf(-1)
		}
		return Inf(1)
	case e == 0 && frac == 0:
		return Compose(neg, 0, 0, 0)
	case e == 0:
		// Subnormal double; binary128's exponent range renormalizes it.
		p := 63 - bits.LeadingZeros64(frac)
		q := u128{lo: frac &^ (1 << uint(p))}.lsh(uint(fracBits - p))
		return Compose(neg, uint(p-frac64Bits-bias64+1+expBias), q.hi, q.lo)
	}
	q := u128{lo: frac}.lsh(fracBits - frac64Bits)
	return Compose(neg, uint(e-bias64+expBias), q.hi, q.lo)
}

// Float64 converts f to a float64, rounding to nearest even.
func (f Float128) Float64() float64 { return f.Float64Round(RoundNearestEven) }

// Float64Round converts f to a float64 under the given rounding mode,
// saturating toward the double's maximum or infinity when too large and
// producing a double subnormal or zero via a sticky-preserving right
// shift when too small.
func (f Float128) Float64Round(mode RoundingMode) float64 {
	neg := f.Signbit()
	switch {
	case f.IsNaN():
		fh, _ := f.Fraction()
		b := uint64(0x7FF)<<52 | (fh<<4 | f.lo>>60) | 1<<51
		if neg {
			b |= signBit
		}
		return math.Float64frombits(b)
	case f.IsInf():
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case f.IsZero():
		if neg {
			return math.Float64frombits(signBit)
		}
		return 0
	}

	e := f.unbiasedExp()
	sig := f.sig()
	if f.IsSubnormal() {
		lz := sig.leadingZeros() - (128 - sigBits)
		sig = sig.lsh(lz)
		e -= int(lz)
	}

	shift := uint(sigBits - 53 - grsBits)
	if e < -1022 {
		shift += uint(-1022 - e)
		e = -1022
	}
	t := sig.rshJam(shift)
	return math.Float64frombits(roundPack64(neg, e, t.lo, mode))
}
