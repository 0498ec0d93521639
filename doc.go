/*
Package quad implements IEEE 754-2008 binary128 ("quad precision")
floating point entirely in integer arithmetic, for use where no
hardware quad unit exists.

Float128 is an immutable value type; all operations return new values.
The zero value of Float128 is +0, ready to use.
Every 128-bit pattern decodes to a valid value, and no operation panics
or raises a floating point exception: invalid operations, overflow and
underflow are represented in the result (quiet NaN, signed infinity,
signed zero) rather than signalled.

Simple example:

	a := quad.FromUint64(1)
	fmt.Println(a.Add(a))
	// Output: 2

Arithmetic defaults to round-to-nearest-even. Every operator also has a
Round variant taking an explicit RoundingMode; all six modes, including
round-to-odd, are implemented for add, subtract, multiply and the
integer and float64 conversions.

Float128 supports the following formatting and marshalling interfaces:

	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Divide and fused multiply-add are not implemented yet. IEEE exception
flags (invalid/overflow/underflow/inexact) are not tracked; a layer
above this package must do so if it needs them.
*/
package quad
