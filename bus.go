// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

import "strconv"

// A Bus is an ordered group of wires carrying a multi-bit signal, least
// significant bit first.
//
type Bus []*Wire

// NewBus returns a bus of bits fresh wires named name[0] .. name[bits-1].
//
func NewBus(name string, bits int) Bus {
	b := make(Bus, bits)
	for i := range b {
		b[i] = NamedWire(name + "[" + strconv.Itoa(i) + "]")
	}
	return b
}

// SetInt64 drives the low len(b) bits of v's two's-complement pattern
// onto the bus, least significant bit first. Each bit is a full Set with
// its own propagation wave.
//
func (b Bus) SetInt64(v int64) {
	u := uint64(v)
	for i, w := range b {
		w.Set(signalOf(u >> uint(i)))
	}
}

// GetInt64 returns the raw (unsigned within the bus width) value of the
// bus.
//
func (b Bus) GetInt64() int64 {
	var u uint64
	for i, w := range b {
		if w.Get() == High {
			u |= 1 << uint(i)
		}
	}
	return int64(u)
}

// SetSignals drives s onto the bus, least significant bit first. Each
// wire gets a normal Set with its own propagation wave. s must be the bus
// width.
//
func (b Bus) SetSignals(s []Signal) {
	for i, w := range b {
		w.Set(s[i])
	}
}

// Signals returns the current value of every wire in the bus.
//
func (b Bus) Signals() []Signal {
	s := make([]Signal, len(b))
	for i, w := range b {
		s[i] = w.Get()
	}
	return s
}

// A Converter observes every wire of a bus and keeps the decoded group
// value current as the wires settle. It is the read side of an adder:
// attach it to the sum bus before driving the inputs, then query Result
// once every input has been set.
//
type Converter struct {
	bus    Bus
	result uint64
	sign   Signal
}

// NewConverter returns a converter registered on every wire in b.
//
func NewConverter(b Bus) *Converter {
	c := &Converter{bus: b}
	for _, w := range b {
		w.attach(c)
	}
	return c
}

func (c *Converter) update(*Wire, Signal, int) {
	var u uint64
	for i, w := range c.bus {
		if w.Get() == High {
			u |= 1 << uint(i)
		}
	}
	c.result = u
	c.sign = c.bus[len(c.bus)-1].Get()
}

// Result returns the unsigned value of the observed bus as of its last
// notification.
//
func (c *Converter) Result() uint64 { return c.result }

// Sign returns the most significant observed bit.
//
func (c *Converter) Sign() Signal { return c.sign }
