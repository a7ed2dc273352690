// Copyright 2026 Dan Tholm
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim_test

import (
	"fmt"
	"log"

	"github.com/dtholm/bitsim"
)

func ExampleAdd() {
	sum, err := bitsim.Add(2, 3, bitsim.DefaultBits)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sum)
	// Output: 5
}

func ExampleDisplay() {
	out := bitsim.NewWire()
	bitsim.Display("out", out)
	out.Set(bitsim.High)
	out.Set(bitsim.Low)
	// Output:
	// out: 1
	// out: 0
}

func ExampleNewHalfAdder() {
	a, b := bitsim.NewWire(), bitsim.NewWire()
	sum, carry := bitsim.NewWire(), bitsim.NewWire()
	bitsim.NewHalfAdder(a, b, sum, carry)
	a.Set(bitsim.High)
	b.Set(bitsim.High)
	fmt.Printf("sum=%s carry=%s\n", sum.Get(), carry.Get())
	// Output: sum=0 carry=1
}
