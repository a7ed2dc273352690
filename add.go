// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

// DefaultBits is the adder width used by the bitsim command when none is
// given.
const DefaultBits = 32

// Add computes x + y on a freshly built circuit of bits full adders. The
// operands are encoded as bits-wide two's-complement vectors, reduced
// modulo 2^bits, and the result is the low bits of the sum reinterpreted
// as a signed integer in [-2^(bits-1), 2^(bits-1)-1]. Overflow wraps
// around; it is not an error.
//
// bits must be in [1, 64].
//
func Add(x, y int64, bits int) (int64, error) {
	ad, err := NewAdder(bits)
	if err != nil {
		return 0, err
	}
	return ad.Add(x, y), nil
}
