// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim_test

import (
	"testing"

	"github.com/dtholm/bitsim"
)

func TestGateTruthTables(t *testing.T) {
	td := []struct {
		name   string
		gate   func(in1, in2, out *bitsim.Wire) *bitsim.Gate
		result [4]bitsim.Signal // in1=0 in2=0, 0 1, 1 0, 1 1
	}{
		{"AND", bitsim.And, [4]bitsim.Signal{bitsim.Low, bitsim.Low, bitsim.Low, bitsim.High}},
		{"OR", bitsim.Or, [4]bitsim.Signal{bitsim.Low, bitsim.High, bitsim.High, bitsim.High}},
		{"XOR", bitsim.Xor, [4]bitsim.Signal{bitsim.Low, bitsim.High, bitsim.High, bitsim.Low}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			for v := 0; v < 4; v++ {
				in1, in2, out := bitsim.NewWire(), bitsim.NewWire(), bitsim.NewWire()
				g := d.gate(in1, in2, out)
				if g.String() != d.name {
					t.Fatalf("String() = %q, want %q", g.String(), d.name)
				}
				a, b := bitsim.Signal(v>>1), bitsim.Signal(v&1)
				in1.Set(a)
				in2.Set(b)
				if got := out.Get(); got != d.result[v] {
					t.Errorf("%s(%s, %s) = %s, want %s", d.name, a, b, got, d.result[v])
				}
			}
		})
	}
}

// The first Set on either input already drives the output; the input
// never set contributes its cache default of Low.
func TestGatePrematureOutput(t *testing.T) {
	in1, in2, out := bitsim.NewWire(), bitsim.NewWire(), bitsim.NewWire()
	bitsim.Xor(in1, in2, out)
	in1.Set(bitsim.High)
	if out.Get() != bitsim.High {
		t.Errorf("XOR(1, <unset>) = %s, want 1", out.Get())
	}

	in1, in2, out = bitsim.NewWire(), bitsim.NewWire(), bitsim.NewWire()
	bitsim.And(in1, in2, out)
	in1.Set(bitsim.High)
	if out.Get() != bitsim.Low {
		t.Errorf("AND(1, <unset>) = %s, want 0", out.Get())
	}
}

// A single wire feeding both inputs must refresh both cache slots.
func TestGateSharedInputWire(t *testing.T) {
	w, out := bitsim.NewWire(), bitsim.NewWire()
	bitsim.Xor(w, w, out)
	w.Set(bitsim.High)
	if out.Get() != bitsim.Low {
		t.Errorf("XOR(w, w) = %s after w=1, want 0", out.Get())
	}

	w, out = bitsim.NewWire(), bitsim.NewWire()
	bitsim.And(w, w, out)
	w.Set(bitsim.High)
	if out.Get() != bitsim.High {
		t.Errorf("AND(w, w) = %s after w=1, want 1", out.Get())
	}
}
