// This file is part of aoc19 - https://github.com/peterall/aoc19
//
// Copyright 2019 The aoc19 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package driver_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterall/aoc19/driver"
	"github.com/peterall/aoc19/vm"
)

// Finds the highest signal that can be sent to the thrusters by a chain of
// five amplifiers running the same program.
func ExampleChain() {
	p, err := vm.ParseString("3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
	if err != nil {
		panic(err)
	}
	var best vm.Cell
	var phases []vm.Cell
	permute([]vm.Cell{0, 1, 2, 3, 4}, 0, func(ph []vm.Cell) {
		v, err := driver.Chain(p, ph, 0, false)
		if err != nil {
			panic(err)
		}
		if v > best {
			best = v
			phases = append(phases[:0], ph...)
		}
	})
	fmt.Println(best, phases)

	// Output:
	// 43210 [4 3 2 1 0]
}

func permute(a []vm.Cell, k int, f func([]vm.Cell)) {
	if k == len(a) {
		f(a)
		return
	}
	for n := k; n < len(a); n++ {
		a[k], a[n] = a[n], a[k]
		permute(a, k+1, f)
		a[k], a[n] = a[n], a[k]
	}
}

// Runs an ASCII program interactively.
func ExampleConsole() {
	// prints every input line back, in uppercase if all letters are 'a' to 'z'
	p := vm.Program{
		3, 100, // in [100]
		1007, 100, 97, 101, // lt [100] #97 [101]
		1005, 101, 13, // jt [101] #13
		1001, 100, -32, 100, // add [100] #-32 [100]
		4, 100, // out [100]
		1105, 1, 0, // jt #1 #0
	}
	i, _ := vm.New(p)
	c := driver.NewConsole(i, strings.NewReader("hello\nworld\n"), os.Stdout, driver.LineMode)
	if err := c.Run(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// HELLO
	// WORLD
	// EOF
}
