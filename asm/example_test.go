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


package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterall/aoc19/asm"
	"github.com/peterall/aoc19/vm"
)

// Assembles a countdown and runs it.
func ExampleAssemble() {
	code := `
	( count down from 3 )
	:loop
		out  counter
		add  counter #-1 counter
		jt   counter #loop
		hlt
	:counter 3
	`
	p, err := asm.Assemble("countdown", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)

	i, err := vm.New(p)
	if err != nil {
		panic(err)
	}
	i.Run()
	fmt.Println(i.ReadAll())

	// Output:
	// 4,10,1001,10,-1,10,1005,10,0,99,3
	// [3 2 1]
}

// Disassembles the relative base example program, along with its data.
func ExampleDisassembleAll() {
	p := vm.Program{109, 19, 204, -34, 99, 1985}
	asm.DisassembleAll(p, 0, os.Stdout)

	// Output:
	//          0	arb #19
	//          2	out @-34
	//          4	hlt
	//          5	.dat 1985
}
