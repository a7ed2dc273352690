// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

// A Signal is a two-valued logic level carried by a Wire.
//
type Signal uint8

// Logic levels.
//
const (
	Low Signal = iota
	High
)

func (s Signal) String() string {
	if s == Low {
		return "0"
	}
	return "1"
}

// signalOf maps the low bit of b to a logic level.
func signalOf(b uint64) Signal {
	if b&1 != 0 {
		return High
	}
	return Low
}
