package quad

// RandSource provides the random bits RandFloat128 consumes.
type RandSource interface {
	Uint64() uint64
}

// RandFloat128 generates a Float128 from 128 random bits supplied by an
// external source. Every class of value can come back, including NaN,
// infinity and subnormals; callers wanting only finite values should
// filter on Class.
func RandFloat128(source RandSource) Float128 {
	return Float128{hi: source.Uint64(), lo: source.Uint64()}
}
