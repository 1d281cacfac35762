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

package vm_test

import (
	"fmt"
	"os"

	"github.com/peterall/aoc19/vm"
)

// Shows how to parse a program, feed it some input and collect its output.
func ExampleInstance_Run() {
	p, err := vm.ParseString("3,0,4,0,99")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(p, vm.Input(42))
	if err != nil {
		panic(err)
	}
	fmt.Println(i.Run())
	fmt.Println(i.ReadAll())

	// Output:
	// halted
	// [42]
}

// A machine that runs out of input suspends. It resumes where it left off
// once more input is supplied.
func ExampleInstance_Write() {
	// double every input value, forever
	p := vm.Program{3, 20, 1002, 20, 2, 20, 4, 20, 1105, 1, 0}
	i, err := vm.New(p)
	if err != nil {
		panic(err)
	}
	for _, v := range []vm.Cell{1, 5, -21} {
		i.Write(v)
		if st := i.Run(); st != vm.AwaitingInput {
			fmt.Fprintf(os.Stderr, "unexpected state %v: %v\n", st, i.Err())
			return
		}
		out, _ := i.Read()
		fmt.Println(out)
	}

	// Output:
	// 2
	// 10
	// -42
}

// Faults are reported through the run state.
func ExampleInstance_Err() {
	i, _ := vm.New(vm.Program{1101, 2, 40, 4, 99})
	st := i.Run()
	fmt.Println(st)
	fmt.Println(i.Err())

	// Output:
	// faulted
	// illegal instruction 42 @pc=4
}

// Patching memory before running, as done when searching for program inputs
// stored in memory rather than supplied through the input queue.
func ExampleInstance_Poke() {
	p := vm.Program{1, 0, 0, 0, 99, 30, 40}
	i, _ := vm.New(p)
	i.Poke(1, 5)
	i.Poke(2, 6)
	i.Run()
	fmt.Println(i.Peek(0))

	// Output:
	// 70
}
