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

package asm

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/peterall/aoc19/internal/ici"
	"github.com/peterall/aoc19/vm"
)

// mnemonics lists the accepted names for each opcode. The first name is the
// one used by the disassembler.
var mnemonics = [...]struct {
	op    vm.Opcode
	names []string
}{
	{vm.OpAdd, []string{"add"}},
	{vm.OpMul, []string{"mul"}},
	{vm.OpIn, []string{"in"}},
	{vm.OpOut, []string{"out"}},
	{vm.OpJT, []string{"jt", "jnz"}},
	{vm.OpJF, []string{"jf", "jz"}},
	{vm.OpLT, []string{"lt"}},
	{vm.OpEQ, []string{"eq"}},
	{vm.OpArb, []string{"arb", "rb", "srel"}},
	{vm.OpHalt, []string{"hlt", "halt"}},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for _, m := range mnemonics {
		for _, n := range m.names {
			opcodeIndex[n] = m.op
		}
	}
}

var modePrefix = [...]string{
	vm.Position:  "",
	vm.Immediate: "#",
	vm.Relative:  "@",
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 positioned
// errors.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k, err := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	p := newParser()
	if err := p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.p, nil
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given slice to the specified io.Writer and returns the position of the next
// instruction and any write error. Cells that do not decode to a valid
// instruction, or whose operands would lie beyond the end of the slice, are
// written as ".dat" directives.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewWriter(w)
	v := mem[pc]
	ins, derr := vm.Decode(v)
	if derr != nil || pc+ins.Op.Arity() >= len(mem) {
		ew.WriteString(".dat ")
		ew.WriteInt(int64(v))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, mnemonics[mnemonicIndex(ins.Op)].names[0])
	for k := 0; k < ins.Op.Arity(); k++ {
		ew.WriteString(" ")
		ew.WriteString(modePrefix[ins.Modes[k]])
		ew.WriteInt(int64(mem[pc+1+k]))
	}
	return pc + ins.Len(), ew.Err
}

func mnemonicIndex(op vm.Opcode) int {
	for k, m := range mnemonics {
		if m.op == op {
			return k
		}
	}
	panic(fmt.Sprintf("no mnemonic for %d", op))
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (i[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
