package quad

const (
	expBits  = 15
	fracBits = 112
	sigBits  = fracBits + 1 // significand with the implicit bit restored

	expBias = 16383
	expMask = 1<<expBits - 1 // 0x7FFF; also the infinity/NaN marker
	expMax  = expBias        // largest normal unbiased exponent
	expMin  = 1 - expBias    // smallest normal unbiased exponent (Emin)

	signBit    = uint64(1) << 63
	expShift   = 48 // exponent position within the hi word
	fracMaskHi = uint64(1)<<expShift - 1
	quietBit   = uint64(1) << 47 // top fraction bit distinguishes quiet NaN

	// The rounding form keeps the 113-bit significand above three
	// guard/round/sticky bits, so the leading bit sits at 115 and an
	// addition can carry into 116.
	grsBits    = 3
	grsMask    = 1<<grsBits - 1
	irLeadBit  = sigBits + grsBits - 1
	irCarryBit = irLeadBit + 1
	irHeadroom = 128 - irCarryBit // leading zeros of a normalized rounding form

	maxUint64 = 1<<64 - 1
)

var (
	// MaxFloat128 is the largest finite binary128 value,
	// (2-2^-112) * 2^16383.
	MaxFloat128 = Float128{hi: 0x7FFEFFFFFFFFFFFF, lo: maxUint64}

	// SmallestNormalFloat128 is 2^-16382, the smallest normal value.
	SmallestNormalFloat128 = Float128{hi: 1 << expShift}

	// SmallestNonzeroFloat128 is 2^-16494, the smallest subnormal value.
	SmallestNonzeroFloat128 = Float128{lo: 1}

	// defaultNaN is the quiet NaN produced by invalid operations:
	// sign 0, quiet bit set, remaining fraction bits 0.
	defaultNaN = Float128{hi: uint64(expMask)<<expShift | quietBit}
)
