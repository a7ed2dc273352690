// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

// A Gate observes two input wires and drives a fixed boolean function of
// their values onto its output wire. The gate caches the last value seen
// on each input slot and recomputes on every notification from either
// input; an input that has never been set contributes Low.
//
// A gate must be the only component driving its output wire.
//
type Gate struct {
	kind     string
	in1, in2 *Wire
	out      *Wire
	v1, v2   Signal
	fn       func(a, b Signal) Signal
}

func newGate(kind string, in1, in2, out *Wire, fn func(a, b Signal) Signal) *Gate {
	g := &Gate{kind: kind, in1: in1, in2: in2, out: out, fn: fn}
	in1.attach(g)
	in2.attach(g)
	return g
}

func (g *Gate) update(w *Wire, v Signal, depth int) {
	// in1 and in2 may be the same wire; refresh every matching slot.
	if w == g.in1 {
		g.v1 = v
	}
	if w == g.in2 {
		g.v2 = v
	}
	g.out.propagate(g.fn(g.v1, g.v2), depth+1)
}

func (g *Gate) String() string { return g.kind }

// And returns an AND gate observing in1 and in2 and driving out.
//
//	Function: out = in1 & in2
//
func And(in1, in2, out *Wire) *Gate {
	return newGate("AND", in1, in2, out, func(a, b Signal) Signal {
		if a == High && b == High {
			return High
		}
		return Low
	})
}

// Or returns an OR gate observing in1 and in2 and driving out.
//
//	Function: out = in1 | in2
//
func Or(in1, in2, out *Wire) *Gate {
	return newGate("OR", in1, in2, out, func(a, b Signal) Signal {
		if a == High || b == High {
			return High
		}
		return Low
	})
}

// Xor returns a XOR gate observing in1 and in2 and driving out.
//
//	Function: out = in1 ^ in2
//
func Xor(in1, in2, out *Wire) *Gate {
	return newGate("XOR", in1, in2, out, func(a, b Signal) Signal {
		if a != b {
			return High
		}
		return Low
	})
}
