// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

import (
	"fmt"
	"io"
	"os"
)

type probe struct {
	fn func(Signal)
}

func (p *probe) update(_ *Wire, v Signal, _ int) { p.fn(v) }

// Probe registers fn to be called with the wire's new value on every Set.
//
func Probe(w *Wire, fn func(Signal)) {
	w.attach(&probe{fn: fn})
}

// Display attaches a diagnostic observer to w that prints "label: value"
// to standard output every time the wire is set. It plays no part in the
// computation.
//
func Display(label string, w *Wire) {
	Fdisplay(os.Stdout, label, w)
}

// Fdisplay is Display writing to out.
//
func Fdisplay(out io.Writer, label string, w *Wire) {
	Probe(w, func(v Signal) {
		fmt.Fprintf(out, "%s: %s\n", label, v)
	})
}
