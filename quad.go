package quad

import "math/big"

// Float128 is an IEEE 754-2008 binary128 value: 1 sign bit, 15 biased
// exponent bits and 112 fraction bits, packed into two uint64s with the
// sign at the top of hi. The implicit leading significand bit is not
// stored.
type Float128 struct {
	hi, lo uint64
}

// FromBits returns the Float128 corresponding to the IEEE 754 binary128
// representation supplied as two 64-bit halves. See Bits() for the
// counterpart.
func FromBits(hi, lo uint64) Float128 { return Float128{hi: hi, lo: lo} }

// Bits returns the packed IEEE 754 binary128 representation of f.
func (f Float128) Bits() (hi, lo uint64) { return f.hi, f.lo }

// NaN returns the default quiet NaN: sign 0, quiet bit set, all other
// fraction bits 0.
func NaN() Float128 { return defaultNaN }

// Inf returns positive infinity if sign >= 0, negative infinity if
// sign < 0.
func Inf(sign int) Float128 {
	v := Float128{hi: uint64(expMask) << expShift}
	if sign < 0 {
		v.hi |= signBit
	}
	return v
}

// Signbit reports whether f is negative or negative zero.
func (f Float128) Signbit() bool { return f.hi&signBit != 0 }

// Exponent returns the biased exponent field, right-justified.
func (f Float128) Exponent() uint { return uint(f.hi>>expShift) & expMask }

// Fraction returns the 112 stored fraction bits, without the implicit
// leading bit.
func (f Float128) Fraction() (hi, lo uint64) { return f.hi & fracMaskHi, f.lo }

// Compose merges sign and fraction with a freshly supplied biased
// exponent, overwriting only the exponent bit positions. The fraction
// is taken in final, unshifted form with no implicit bit. This is the
// sole reassembly primitive the operators use.
func Compose(neg bool, exp uint, fracHi, fracLo uint64) Float128 {
	hi := fracHi&fracMaskHi | (uint64(exp)&expMask)<<expShift
	if neg {
		hi |= signBit
	}
	return Float128{hi: hi, lo: fracLo}
}

// Classification. These are pure integer predicates: they never touch
// host floating point, so they are safe to call before computing.

// IsZero reports whether f is +0 or -0.
func (f Float128) IsZero() bool { return f.hi&^signBit == 0 && f.lo == 0 }

// IsSubnormal reports whether f is subnormal: zero exponent field with a
// nonzero fraction, valued fraction * 2^(Emin-112) with no implicit bit.
func (f Float128) IsSubnormal() bool {
	return f.Exponent() == 0 && !f.IsZero()
}

// IsNormal reports whether f is a normal, finite, nonzero value.
func (f Float128) IsNormal() bool {
	e := f.Exponent()
	return e > 0 && e < expMask
}

// IsInf reports whether f is positive or negative infinity.
func (f Float128) IsInf() bool {
	return f.hi&^signBit == uint64(expMask)<<expShift && f.lo == 0
}

// IsNaN reports whether f is any NaN, quiet or signaling.
func (f Float128) IsNaN() bool {
	return f.Exponent() == expMask && (f.hi&fracMaskHi != 0 || f.lo != 0)
}

// IsSignalingNaN reports whether f is a NaN with the quiet bit clear.
func (f Float128) IsSignalingNaN() bool {
	return f.IsNaN() && f.hi&quietBit == 0
}

// IsFinite reports whether f is neither infinite nor NaN.
func (f Float128) IsFinite() bool { return f.Exponent() != expMask }

// Class is the coarse classification of a Float128. Sign and NaN
// quietness are queried separately via Signbit and IsSignalingNaN.
type Class uint8

const (
	ClassNaN Class = iota
	ClassInf
	ClassNormal
	ClassSubnormal
	ClassZero
)

func (c Class) String() string {
	switch c {
	case ClassNaN:
		return "NaN"
	case ClassInf:
		return "Inf"
	case ClassNormal:
		return "Normal"
	case ClassSubnormal:
		return "Subnormal"
	case ClassZero:
		return "Zero"
	}
	return "Unknown"
}

// Class returns the classification of f.
func (f Float128) Class() Class {
	switch e := f.Exponent(); {
	case e == expMask:
		if f.hi&fracMaskHi != 0 || f.lo != 0 {
			return ClassNaN
		}
		return ClassInf
	case e != 0:
		return ClassNormal
	case f.IsZero():
		return ClassZero
	}
	return ClassSubnormal
}

// Neg returns f with its sign flipped. Valid for every value including
// NaN, whose payload is preserved.
func (f Float128) Neg() Float128 {
	f.hi ^= signBit
	return f
}

// Abs returns f with its sign cleared.
func (f Float128) Abs() Float128 {
	f.hi &^= signBit
	return f
}

// CopySign returns a value with the magnitude of f and the sign of g.
func (f Float128) CopySign(g Float128) Float128 {
	f.hi = f.hi&^signBit | g.hi&signBit
	return f
}

// quieted returns f with the quiet bit forced, used when propagating
// NaN operands.
func (f Float128) quieted() Float128 {
	f.hi |= quietBit
	return f
}

// sig returns the 113-bit significand, with the implicit bit restored
// only when the exponent field is strictly between 0 and the maximum.
func (f Float128) sig() u128 {
	s := u128{hi: f.hi & fracMaskHi, lo: f.lo}
	if e := f.Exponent(); e > 0 && e < expMask {
		s.hi |= 1 << (sigBits - 1 - 64)
	}
	return s
}

// magBits returns the sign-masked bit pattern; for finite values,
// unsigned comparison of these orders by magnitude.
func (f Float128) magBits() u128 {
	return u128{hi: f.hi &^ signBit, lo: f.lo}
}

// unbiasedExp returns the true exponent, substituting Emin for zero and
// subnormal values as the alignment machinery expects.
func (f Float128) unbiasedExp() int {
	e := int(f.Exponent())
	if e == 0 {
		return expMin
	}
	return e - expBias
}

// AsBigFloat returns the exact value of f as a big.Float. Infinities
// convert to big.Float infinities; for NaN the result is nil, which
// big.Float cannot represent.
func (f Float128) AsBigFloat() *big.Float {
	if f.IsNaN() {
		return nil
	}
	b := new(big.Float).SetPrec(sigBits)
	if f.IsInf() {
		return b.SetInf(f.Signbit())
	}
	s := f.sig()
	i := new(big.Int).SetUint64(s.hi)
	i.Lsh(i, 64)
	i.Or(i, new(big.Int).SetUint64(s.lo))
	b.SetInt(i)
	if b.Sign() != 0 {
		b.SetMantExp(b, f.unbiasedExp()-fracBits)
	}
	if f.Signbit() {
		b.Neg(b)
	}
	return b
}
