package quad

import (
	"fmt"
	"math/big"
	"strings"
)

var (
	big1         = big.NewInt(1)
	bigMaxUint64 = new(big.Int).SetUint64(maxUint64)

	// subnormScale is 2^(112-Emin); value * subnormScale counts smallest
	// subnormal units.
	subnormScale = new(big.Rat).SetInt(new(big.Int).Lsh(big1, fracBits-expMin))
)

// String formats f in decimal with up to 36 significant digits, enough
// to round-trip any binary128 value through FromString.
func (f Float128) String() string {
	if f.IsNaN() {
		return "NaN"
	}
	return f.AsBigFloat().Text('g', 36)
}

// FromString parses a decimal string into a Float128, rounding to
// nearest even. "NaN", "Inf", "+Inf" and "-Inf" are accepted alongside
// ordinary and exponent notation.
func FromString(s string) (out Float128, err error) {
	t := strings.TrimSpace(s)
	if strings.EqualFold(t, "nan") {
		return NaN(), nil
	}

	g, _, err := big.ParseFloat(t, 10, sigBits, big.ToNearestEven)
	if err != nil {
		return out, fmt.Errorf("quad: float128 string %q invalid: %v", s, err)
	}
	neg := g.Signbit()
	if g.IsInf() {
		if neg {
			return Inf(-1), nil
		}
		return Inf(1), nil
	}
	if g.Sign() == 0 {
		return Compose(neg, 0, 0, 0), nil
	}

	ue := g.MantExp(nil) - 1
	switch {
	case ue > expMax:
		if neg {
			return Inf(-1), nil
		}
		return Inf(1), nil
	case ue < expMin:
		// The 113-bit parse would round at the wrong bit for a
		// subnormal; redo the rounding exactly on the decimal value.
		return fromDecimalSubnormal(t, neg)
	}

	m := new(big.Float).SetMantExp(g, fracBits-ue)
	mi, _ := m.Int(nil)
	mi.Abs(mi)
	lo := new(big.Int).And(mi, bigMaxUint64).Uint64()
	hi := new(big.Int).Rsh(mi, 64).Uint64()
	return Compose(neg, uint(ue+expBias), hi, lo), nil
}

// fromDecimalSubnormal rounds a decimal literal below the normal range
// to the fixed subnormal grid: nearest-even on the exact rational value
// counted in smallest-subnormal units. Rounding up to 2^112 units lands
// on the smallest normal.
func fromDecimalSubnormal(s string, neg bool) (Float128, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Float128{}, fmt.Errorf("quad: float128 string %q invalid", s)
	}
	r.Abs(r).Mul(r, subnormScale)

	q, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	rem.Lsh(rem, 1)
	switch rem.Cmp(r.Denom()) {
	case 1:
		q.Add(q, big1)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big1)
		}
	}

	var bexp uint
	if q.Bit(fracBits) == 1 {
		bexp = 1
	}
	lo := new(big.Int).And(q, bigMaxUint64).Uint64()
	hi := new(big.Int).Rsh(q, 64).Uint64()
	return Compose(neg, bexp, hi, lo), nil
}

func (f Float128) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Float128) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Float128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Float128) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("quad: float128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
