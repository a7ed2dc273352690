// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

// Command bitsim adds two integers on a simulated gate circuit.
//
// With no arguments it runs the embedded self-test and prints nothing on
// success. With two arguments it adds them:
//
//	bitsim [-n bits] [-trace] x y
//
// With -vectors it runs the test vectors from a YAML file:
//
//	bitsim -vectors cases.yaml
//
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dtholm/bitsim"
)

type vectorFile struct {
	Cases []vector `yaml:"cases"`
}

type vector struct {
	X    int64 `yaml:"x"`
	Y    int64 `yaml:"y"`
	Bits int   `yaml:"bits"`
	Want int64 `yaml:"want"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bitsim: ")
	bits := flag.Int("n", bitsim.DefaultBits, "adder bit width")
	trace := flag.Bool("trace", false, "display sum wire activity")
	vectors := flag.String("vectors", "", "YAML `file` of test vectors to run")
	flag.Parse()

	switch {
	case *vectors != "":
		if err := runVectors(*vectors); err != nil {
			log.Fatal(err)
		}
	case flag.NArg() == 2:
		addOnce(flag.Arg(0), flag.Arg(1), *bits, *trace)
	case flag.NArg() == 0:
		selfTest()
	default:
		log.Fatal("usage: bitsim [-n bits] [-trace] [-vectors file] [x y]")
	}
}

func addOnce(xs, ys string, bits int, trace bool) {
	x, err := strconv.ParseInt(xs, 10, 64)
	if err != nil {
		log.Fatalf("bad operand %q: %v", xs, err)
	}
	y, err := strconv.ParseInt(ys, 10, 64)
	if err != nil {
		log.Fatalf("bad operand %q: %v", ys, err)
	}
	ad, err := bitsim.NewAdder(bits)
	if err != nil {
		log.Fatal(err)
	}
	if trace {
		for _, w := range ad.Sum {
			bitsim.Display(w.Name(), w)
		}
	}
	fmt.Println(ad.Add(x, y))
}

func runVectors(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var vf vectorFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return errors.Wrap(err, path)
	}
	for i, c := range vf.Cases {
		bits := c.Bits
		if bits == 0 {
			bits = bitsim.DefaultBits
		}
		got, err := bitsim.Add(c.X, c.Y, bits)
		if err != nil {
			return errors.Wrapf(err, "%s: case %d", path, i)
		}
		if got != c.Want {
			return errors.Errorf("%s: case %d: add(%d, %d, %d) = %d, want %d",
				path, i, c.X, c.Y, bits, got, c.Want)
		}
	}
	return nil
}

// selfTest checks the gate truth tables and a set of documented addition
// scenarios. It is silent on success and exits non-zero on the first
// failure.
func selfTest() {
	gates := []struct {
		name string
		gate func(in1, in2, out *bitsim.Wire) *bitsim.Gate
		fn   func(a, b uint8) uint8
	}{
		{"AND", bitsim.And, func(a, b uint8) uint8 { return a & b }},
		{"OR", bitsim.Or, func(a, b uint8) uint8 { return a | b }},
		{"XOR", bitsim.Xor, func(a, b uint8) uint8 { return a ^ b }},
	}
	for _, g := range gates {
		for v := 0; v < 4; v++ {
			in1, in2, out := bitsim.NewWire(), bitsim.NewWire(), bitsim.NewWire()
			g.gate(in1, in2, out)
			a, b := bitsim.Signal(v>>1), bitsim.Signal(v&1)
			in1.Set(a)
			in2.Set(b)
			if want := bitsim.Signal(g.fn(uint8(a), uint8(b))); out.Get() != want {
				log.Fatalf("%s(%s, %s) = %s, want %s", g.name, a, b, out.Get(), want)
			}
		}
	}

	adds := []struct {
		x, y int64
		bits int
		want int64
	}{
		{2, 3, bitsim.DefaultBits, 5},
		{128, 129, 8, 1},
		{5, -20, bitsim.DefaultBits, -15},
		{-1, -1, bitsim.DefaultBits, -2},
		{-5, 5, bitsim.DefaultBits, 0},
		{254, 1, 8, -1},
		{-2, -1, 2, 1},
		{255, 1, 8, 0},
		{100, 200, 8, 44},
		{127, 128, 8, -1},
		{1, 1, 2, -2},
		{-1000, -1, bitsim.DefaultBits, -1001},
	}
	for _, c := range adds {
		got, err := bitsim.Add(c.x, c.y, c.bits)
		if err != nil {
			log.Fatal(err)
		}
		if got != c.want {
			log.Fatalf("add(%d, %d, %d) = %d, want %d", c.x, c.y, c.bits, got, c.want)
		}
	}
}
