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

// Package vm implements the Intcode virtual machine.
//
// An Intcode machine runs a program over a memory of signed 64 bits integers.
// Each instruction cell packs an opcode in its two low decimal digits and one
// addressing mode digit per operand in the hundreds, thousands and
// ten-thousands places:
//
//	opcode	asm	operands	effect
//	------	---	--------	--------------------------------------
//	1	add	a b dst		dst = a + b
//	2	mul	a b dst		dst = a * b
//	3	in	dst		dst = next input value, suspends if none
//	4	out	a		append a to the output queue
//	5	jt	a target	jump to target if a != 0
//	6	jf	a target	jump to target if a == 0
//	7	lt	a b dst		dst = 1 if a < b, else 0
//	8	eq	a b dst		dst = 1 if a == b, else 0
//	9	arb	a		relative base += a
//	99	hlt			halt
//
// Addressing modes are 0 (position: the operand is an address), 1
// (immediate: the operand is the value) and 2 (relative: the operand is an
// offset from the relative base register). Memory grows on demand: cells
// beyond the end of the program read as zero.
//
// Machines communicate with the Go program driving them through two FIFO
// queues. The driver appends to the input queue with Write and consumes the
// output queue with Read. When an IN instruction finds the input queue empty,
// Run returns with the machine in the AwaitingInput state; the driver can then
// supply more input and call Run again. This allows several machines to be
// chained without goroutines:
//
//	a, _ := vm.New(prog, vm.Input(0))
//	b, _ := vm.New(prog)
//	a.Run()
//	b.Write(a.ReadAll()...)
//	b.Run()
//
// The driver package provides ready made pipelines built this way.
//
// A single Instance must not be used from several goroutines at once. A
// Program is never modified by the machines running it and can be shared.
package vm
