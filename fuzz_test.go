package quad

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"
)

type fuzzOp string

// This is the equivalent of passing -quad.fuzziter=10000 to 'go test':
const fuzzDefaultIterations = 10000

// These ops are all enabled by default. You can instead pass them
// explicitly on the command line like so: '-quad.fuzzop=add
// -quad.fuzzop=sub', or you can use the short form
// '-quad.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for
// all the places you need to update.
const (
	fuzzAdd      fuzzOp = "add"
	fuzzBits     fuzzOp = "bits"
	fuzzCmp      fuzzOp = "cmp"
	fuzzFloat64  fuzzOp = "float64"
	fuzzFromU128 fuzzOp = "fromu128"
	fuzzMul      fuzzOp = "mul"
	fuzzString   fuzzOp = "string"
	fuzzSub      fuzzOp = "sub"
)

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAdd,
	fuzzBits,
	fuzzCmp,
	fuzzFloat64,
	fuzzFromU128,
	fuzzMul,
	fuzzString,
	fuzzSub,
}

// The big.Float oracle is only bit-exact against binary128 while
// operands and results stay in the normal range, so random finite
// operands keep their unbiased exponent within this distance of zero.
// Subnormal and overflow behaviour is pinned by explicit tests instead.
const fuzzExpBand = 2048

// randFinite generates a finite Float128 whose exponent sits well clear
// of the subnormal and overflow boundaries. Zeroes come back
// occasionally, in both signs.
func randFinite(rng *rand.Rand) Float128 {
	if rng.Intn(64) == 0 {
		return Compose(rng.Intn(2) == 1, 0, 0, 0)
	}
	exp := uint(expBias - fuzzExpBand + rng.Intn(2*fuzzExpBand+1))
	hi := rng.Uint64() & fracMaskHi
	return Compose(rng.Intn(2) == 1, exp, hi, rng.Uint64())
}

// classic rando!
type rando struct {
	operands []string
	rng      *rand.Rand
}

func (r *rando) Operands() []string { return r.operands }

func (r *rando) Clear() {
	r.operands = r.operands[:0]
}

// samesies returns whether the next operand should repeat the previous
// one. The chance of two random 128-bit operands being related is
// unfathomable, and cancellation paths deserve a workout too.
func (r *rando) samesies() bool {
	const samesiesChance = 0.03
	return r.rng.Float64() < samesiesChance
}

func (r *rando) Float128() Float128 {
	f := randFinite(r.rng)
	r.operands = append(r.operands, f.String())
	return f
}

func (r *rando) Float128x2() (f1, f2 Float128) {
	f1 = r.Float128()
	if r.samesies() {
		f2 = f1
		r.operands = append(r.operands, f2.String())
	} else {
		f2 = r.Float128()
	}
	return f1, f2
}

func (r *rando) AnyFloat128() Float128 {
	f := RandFloat128(r.rng)
	r.operands = append(r.operands, fmt.Sprintf("%#x:%#x", f.hi, f.lo))
	return f
}

func (r *rando) Uint128() (hi, lo uint64) {
	// Uniform over bit sizes, not values, so short integers show up as
	// often as long ones.
	bits := r.rng.Intn(129)
	switch {
	case bits == 0:
	case bits <= 64:
		lo = r.rng.Uint64() >> (64 - uint(bits)) | 1<<(uint(bits)-1)
	default:
		lo = r.rng.Uint64()
		hi = r.rng.Uint64() >> (128 - uint(bits)) | 1<<(uint(bits)-65)
	}
	r.operands = append(r.operands, fmt.Sprintf("%#x:%#x", hi, lo))
	return hi, lo
}

// checkQuadBig compares a Float128 result against a big.Float oracle
// value computed at 113 bits, sign of zero included.
func checkQuadBig(q Float128, b *big.Float) error {
	g := q.AsBigFloat()
	if g == nil {
		return fmt.Errorf("quad(NaN) != big(%s)", b.Text('g', 40))
	}
	if g.Cmp(b) != 0 || g.Signbit() != b.Signbit() {
		return fmt.Errorf("quad(%s) != big(%s)", g.Text('g', 40), b.Text('g', 40))
	}
	return nil
}

type fuzzFloat128 struct {
	source *rando
}

func (f *fuzzFloat128) Add() error {
	a, b := f.source.Float128x2()
	r := a.Add(b)
	if r != b.Add(a) {
		return fmt.Errorf("add does not commute")
	}
	o := new(big.Float).SetPrec(sigBits).Add(a.AsBigFloat(), b.AsBigFloat())
	return checkQuadBig(r, o)
}

func (f *fuzzFloat128) Sub() error {
	a, b := f.source.Float128x2()
	o := new(big.Float).SetPrec(sigBits).Sub(a.AsBigFloat(), b.AsBigFloat())
	return checkQuadBig(a.Sub(b), o)
}

func (f *fuzzFloat128) Mul() error {
	a, b := f.source.Float128x2()
	r := a.Mul(b)
	if r != b.Mul(a) {
		return fmt.Errorf("mul does not commute")
	}
	o := new(big.Float).SetPrec(sigBits).Mul(a.AsBigFloat(), b.AsBigFloat())
	return checkQuadBig(r, o)
}

func (f *fuzzFloat128) Cmp() error {
	a, b := f.source.Float128x2()
	c, ok := a.Cmp(b)
	if !ok {
		return fmt.Errorf("finite operands compared unordered")
	}
	if bc := a.AsBigFloat().Cmp(b.AsBigFloat()); c != bc {
		return fmt.Errorf("quad(%d) != big(%d)", c, bc)
	}
	return nil
}

func (f *fuzzFloat128) Float64() error {
	a := f.source.Float128()
	got := a.Float64()
	want, _ := a.AsBigFloat().Float64()
	if math.Float64bits(got) != math.Float64bits(want) {
		return fmt.Errorf("quad(%x) != big(%x)", got, want)
	}
	return nil
}

func (f *fuzzFloat128) FromU128() error {
	hi, lo := f.source.Uint128()
	b := new(big.Int).SetUint64(hi)
	b.Lsh(b, 64).Or(b, new(big.Int).SetUint64(lo))
	o := new(big.Float).SetPrec(sigBits).SetInt(b)
	return checkQuadBig(FromUint128(hi, lo), o)
}

func (f *fuzzFloat128) Bits() error {
	a := f.source.AnyFloat128()
	if FromBits(a.Bits()) != a {
		return fmt.Errorf("bits do not round trip")
	}
	fh, fl := a.Fraction()
	if Compose(a.Signbit(), a.Exponent(), fh, fl) != a {
		return fmt.Errorf("fields do not recompose")
	}
	return nil
}

func (f *fuzzFloat128) String() error {
	a := f.source.Float128()
	back, err := FromString(a.String())
	if err != nil {
		return err
	}
	if back != a {
		return fmt.Errorf("quad(%s) did not round trip", a)
	}
	return nil
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -quad.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var fuzzImpl = &fuzzFloat128{source: source}
	var totalFailures int

	var failures = make([]int, len(runFuzzOps))

	for opIdx, op := range runFuzzOps {
		for i := 0; i < fuzzIterations; i++ {
			source.Clear()

			var err error

			// NEWOP: add a new branch here in alphabetical order if a new
			// op is added.
			switch op {
			case fuzzAdd:
				err = fuzzImpl.Add()
			case fuzzBits:
				err = fuzzImpl.Bits()
			case fuzzCmp:
				err = fuzzImpl.Cmp()
			case fuzzFloat64:
				err = fuzzImpl.Float64()
			case fuzzFromU128:
				err = fuzzImpl.FromU128()
			case fuzzMul:
				err = fuzzImpl.Mul()
			case fuzzString:
				err = fuzzImpl.String()
			case fuzzSub:
				err = fuzzImpl.Sub()
			default:
				panic(fmt.Errorf("unsupported op %q", op))
			}

			if err != nil {
				failures[opIdx]++
				t.Logf("%s: %s\n", op.Print(source.Operands()...), err)
			}
		}
	}

	for opIdx, cnt := range failures {
		if cnt > 0 {
			totalFailures += cnt
			t.Logf("op %s: %d/%d failed", string(runFuzzOps[opIdx]), cnt, fuzzIterations)
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...string) string {
	// NEWOP: please add a human-readable format for your op here; this
	// is used for reporting errors and should show the operation, i.e.
	// "2 + 2".
	//
	// It should be safe to assume the appropriate number of operands are
	// set in 'operands'; if not, it's a bug to be fixed elsewhere.
	switch op {
	case fuzzBits, fuzzFloat64, fuzzFromU128, fuzzString:
		return fmt.Sprintf("%s(%s)", string(op), operands[0])

	case fuzzAdd, fuzzCmp, fuzzMul, fuzzSub:
		// simple binary case:
		return fmt.Sprintf("%s %s %s", operands[0], op.opString(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) opString() string {
	switch op {
	case fuzzAdd:
		return "+"
	case fuzzSub:
		return "-"
	case fuzzMul:
		return "*"
	case fuzzCmp:
		return "<=>"
	}
	return string(op)
}
