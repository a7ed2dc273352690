// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

import (
	"github.com/pkg/errors"
)

// maxDepth bounds the synchronous notification cascade. A well formed
// circuit is acyclic and never gets anywhere near this; a circuit
// accidentally wired into a loop trips it instead of blowing the stack.
const maxDepth = 4096

// A receiver is notified whenever a wire it observes is set. The receiver
// set is closed: gates, probes (including displays) and bus converters.
type receiver interface {
	update(w *Wire, v Signal, depth int)
}

// A Wire is an observable slot for a single Signal. Components register
// themselves on their input wires at construction time and are notified,
// in registration order, every time the wire is set. Observers are never
// detached; circuits are static once built.
//
// Wires are not safe for concurrent use. Propagation is a single
// synchronous call chain: Set does not return until every wire reachable
// through attached gates has settled.
//
type Wire struct {
	name      string
	value     Signal
	receivers []receiver
}

// NewWire returns a new unobserved wire holding Low.
//
func NewWire() *Wire { return &Wire{} }

// NamedWire returns a new wire carrying a label for diagnostics.
//
func NamedWire(name string) *Wire { return &Wire{name: name} }

// Name returns the wire's label, empty for anonymous wires.
//
func (w *Wire) Name() string { return w.name }

// Get returns the wire's current value. It has no side effects.
//
func (w *Wire) Get() Signal { return w.value }

// Set assigns v to the wire and notifies all attached observers in
// registration order. Notification is unconditional: setting a wire to
// the value it already holds re-notifies, so callers driving a circuit
// bit by bit can rely on every Set producing a real propagation wave.
//
// Set panics with a descriptive error if the cascade exceeds the
// propagation depth limit, which only happens when gates have been wired
// into a cycle.
//
func (w *Wire) Set(v Signal) { w.propagate(v, 0) }

func (w *Wire) propagate(v Signal, depth int) {
	if depth > maxDepth {
		panic(errors.Errorf("bitsim: propagation depth exceeded on wire %q: circuit cycle?", w.name))
	}
	w.value = v
	for _, r := range w.receivers {
		r.update(w, v, depth)
	}
}

func (w *Wire) attach(r receiver) {
	w.receivers = append(w.receivers, r)
}
