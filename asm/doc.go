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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm		operands	description
//	------	---		--------	-----------------------------------------
//	1	add		a b dst		dst = a + b
//	2	mul		a b dst		dst = a * b
//	3	in		dst		read the next input value into dst
//	4	out		a		output a
//	5	jt, jnz		a target	jump to target if a != 0
//	6	jf, jz		a target	jump to target if a == 0
//	7	lt		a b dst		dst = 1 if a < b, else 0
//	8	eq		a b dst		dst = 1 if a == b, else 0
//	9	arb, rb, srel	a		add a to the relative base
//	99	hlt, halt			halt
//
// Operands:
//
// The addressing mode of an operand is given by its prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42
//	@42	relative mode: the value at address relative base + 42
//
// The operand itself is either an integer (decimal, hex, octal or binary as
// accepted by strconv.ParseInt with base 0, or a character literal like 'a')
// or a label name. Written operands (dst) cannot use immediate mode. A
// trailing comma after an operand is ignored, so "add 1, 2, 3" is valid.
//
// Labels:
//
// A label is defined with ":name" and evaluates to the address of the next
// cell. Labels can be used before their definition.
//
//	:loop
//		out  counter
//		add  counter #-1 counter
//		jt   counter #loop
//		hlt
//	:counter 3
//
// Data:
//
// Integers and labels appearing outside of an instruction are written as is.
// The ".dat" directive can be used to make that explicit and is otherwise
// ignored. The disassembler writes cells that do not decode to an instruction
// as ".dat" directives, so that its output can be fed back to the assembler.
//
// Comments:
//
// Comments are placed between parentheses. Both parentheses must be separated
// from other tokens by whitespace:
//
//	( this is a comment )
package asm
