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

package vm

import "strconv"

// Opcode is an instruction discriminant: the low two decimal digits of an
// instruction cell.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd  Opcode = 1
	OpMul  Opcode = 2
	OpIn   Opcode = 3
	OpOut  Opcode = 4
	OpJT   Opcode = 5
	OpJF   Opcode = 6
	OpLT   Opcode = 7
	OpEQ   Opcode = 8
	OpArb  Opcode = 9 // adjust relative base
	OpHalt Opcode = 99
)

type opInfo struct {
	name  string
	arity int
	out   int // 1-based index of the written operand, 0 if none
}

var opcodes = map[Opcode]opInfo{
	OpAdd:  {"add", 3, 3},
	OpMul:  {"mul", 3, 3},
	OpIn:   {"in", 1, 1},
	OpOut:  {"out", 1, 0},
	OpJT:   {"jt", 2, 0},
	OpJF:   {"jf", 2, 0},
	OpLT:   {"lt", 3, 3},
	OpEQ:   {"eq", 3, 3},
	OpArb:  {"arb", 1, 0},
	OpHalt: {"hlt", 0, 0},
}

// Valid reports whether op is a defined opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Arity returns the number of operands of op.
func (op Opcode) Arity() int {
	return opcodes[op].arity
}

// Output returns the 1-based index of the operand written by op, or 0 if op
// does not write to memory.
func (op Opcode) Output() int {
	return opcodes[op].out
}

func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Mode is an operand addressing mode.
type Mode int

// Addressing modes.
const (
	Position  Mode = iota // operand is an address
	Immediate             // operand is the value itself
	Relative              // operand is an offset from the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Instruction is a decoded instruction cell.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Len returns the number of cells occupied by the instruction, opcode
// included.
func (ins Instruction) Len() int {
	return ins.Op.Arity() + 1
}

// Decode decodes the instruction cell v. It returns ErrIllegalInstruction if
// the opcode is unknown, if a mode digit is not a valid addressing mode, if a
// written operand uses Immediate mode or if v carries mode digits for
// operands the opcode does not have.
func Decode(v Cell) (Instruction, error) {
	var ins Instruction
	if v < 0 {
		return ins, ErrIllegalInstruction
	}
	ins.Op = Opcode(v % 100)
	info, ok := opcodes[ins.Op]
	if !ok {
		return ins, ErrIllegalInstruction
	}
	m := v / 100
	for k := 0; k < len(ins.Modes); k++ {
		d := Mode(m % 10)
		m /= 10
		switch {
		case k >= info.arity:
			if d != Position {
				return ins, ErrIllegalInstruction
			}
		case d > Relative:
			return ins, ErrIllegalInstruction
		case k+1 == info.out && d == Immediate:
			return ins, ErrIllegalInstruction
		}
		ins.Modes[k] = d
	}
	if m != 0 {
		return ins, ErrIllegalInstruction
	}
	return ins, nil
}

// Encode packs an opcode and its operand modes into an instruction cell.
// Missing modes default to Position.
func Encode(op Opcode, modes ...Mode) Cell {
	v := Cell(op)
	f := Cell(100)
	for _, m := range modes {
		v += Cell(m) * f
		f *= 10
	}
	return v
}
