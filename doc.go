// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package bitsim simulates binary addition with logic gates connected by
observable wires.

A Wire holds a single two-valued Signal and notifies its observers every
time it is set. Gates observe their two input wires and push the result of
their boolean function onto their output wire, so a single Set on a
circuit input cascades synchronously until every dependent wire has
settled. Half adders, full adders and n-bit ripple-carry adders are built
by composition, and the Add function wraps the whole machine into plain
two's-complement integer addition.

*/
package bitsim
