// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// A HalfAdder sums two input bits into a sum bit and a carry bit. It owns
// no wires, only the two gates connecting its inputs to its outputs.
//
type HalfAdder struct {
	sum   *Gate
	carry *Gate
}

// NewHalfAdder builds a half adder on the given wires.
//
//	Function: sum = a ^ b
//	          carry = a & b
//
func NewHalfAdder(a, b, sum, carry *Wire) *HalfAdder {
	return &HalfAdder{
		sum:   Xor(a, b, sum),
		carry: And(a, b, carry),
	}
}

// A FullAdder sums two input bits and a carry-in into a sum bit and a
// carry-out bit. It is built from two half adders and an OR gate
// combining their carries, with three internal wires of its own.
//
type FullAdder struct {
	ha1, ha2 *HalfAdder
	or       *Gate
}

// NewFullAdder builds a full adder on the given wires.
//
//	Function: sum = parity(a, b, cin)
//	          cout = majority(a, b, cin)
//
func NewFullAdder(a, b, cin, sum, cout *Wire) *FullAdder {
	s1, c1, c2 := NewWire(), NewWire(), NewWire()
	f := &FullAdder{}
	f.ha1 = NewHalfAdder(a, b, s1, c1)
	f.ha2 = NewHalfAdder(cin, s1, sum, c2)
	f.or = Or(c2, c1, cout)
	return f
}

// An Adder is a ripple-carry chain of full adders computing the n-bit sum
// of the operands driven onto its A and B buses. The carry-in of stage 0
// is a wire held at Low; the carry-out of the last stage is left
// unobserved, so the sum wraps modulo 2^n.
//
type Adder struct {
	A, B Bus // operand inputs
	Sum  Bus // result outputs

	stages []*FullAdder
	carry  *Wire // final carry-out, discarded
	conv   *Converter
}

// NewAdder builds an addition circuit bits wires wide. bits must be in
// [1, 64].
//
func NewAdder(bits int) (*Adder, error) {
	if bits < 1 || bits > 64 {
		return nil, errors.Errorf("bitsim: invalid bit width %d: must be in [1, 64]", bits)
	}
	ad := &Adder{
		A:      NewBus("a", bits),
		B:      NewBus("b", bits),
		Sum:    NewBus("sum", bits),
		stages: make([]*FullAdder, bits),
	}
	cin := NamedWire("cin")
	cin.Set(Low) // constant 0, driven before any stage observes it
	for i := range ad.stages {
		cout := NamedWire("c" + strconv.Itoa(i))
		ad.stages[i] = NewFullAdder(ad.A[i], ad.B[i], cin, ad.Sum[i], cout)
		cin = cout
	}
	ad.carry = cin
	ad.conv = NewConverter(ad.Sum)
	return ad, nil
}

// Bits returns the adder's bit width.
//
func (ad *Adder) Bits() int { return len(ad.stages) }

// Add drives the two's-complement encodings of x and y onto the A and B
// buses, bit pair by bit pair, and returns the settled sum decoded as a
// signed integer. The final carry is discarded: the result is
// (x + y) mod 2^bits reinterpreted as two's-complement.
//
// Add may be called repeatedly on the same circuit; every call re-drives
// all input wires.
//
func (ad *Adder) Add(x, y int64) int64 {
	ux, uy := uint64(x), uint64(y)
	for i := range ad.stages {
		ad.A[i].Set(signalOf(ux >> uint(i)))
		ad.B[i].Set(signalOf(uy >> uint(i)))
	}
	raw := ad.conv.Result()
	if ad.conv.Sign() == High {
		// sign-extend; a shift by 64 is zero, leaving the full word as is
		raw |= ^uint64(0) << uint(len(ad.stages))
	}
	return int64(raw)
}
