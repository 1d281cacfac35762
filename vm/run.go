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

import "math"

// Run starts or resumes execution of the machine and returns when it halts,
// faults, or executes an IN instruction with an empty input queue. The
// returned value is the new run state.
//
// When the machine is suspended in the AwaitingInput state, the pending IN
// instruction is retried first, so after supplying more input with Write, a
// subsequent Run picks up where the machine left off.
//
// Run does nothing on a Halted or Faulted machine. Use Reset to start over.
// Faults are never returned as errors: check the returned state, and Err for
// the fault details.
func (i *Instance) Run() State {
	if i.state.Terminal() {
		return i.state
	}
	i.state = Running
	for i.state == Running {
		i.step()
	}
	return i.state
}

// Step executes a single instruction and returns the new run state. A machine
// stopped between two steps reports the Running state.
func (i *Instance) Step() State {
	if i.state.Terminal() {
		return i.state
	}
	i.state = Running
	i.step()
	return i.state
}

// param returns the raw operand k (1-based) of the current instruction.
func (i *Instance) param(k int) (Cell, error) {
	n, err := i.cell(Cell(i.PC + k))
	if err != nil {
		return 0, err
	}
	return i.Mem[n], nil
}

// addr returns the effective address of operand k.
func (i *Instance) addr(ins *Instruction, k int) (int, error) {
	p, err := i.param(k)
	if err != nil {
		return 0, err
	}
	if ins.Modes[k-1] == Relative {
		a := p + i.RB
		switch {
		case i.RB > 0 && a < p:
			return 0, addrError(math.MaxInt64)
		case i.RB < 0 && a > p:
			return 0, addrError(math.MinInt64)
		}
		p = a
	}
	return i.cell(p)
}

// load returns the value of operand k.
func (i *Instance) load(ins *Instruction, k int) (Cell, error) {
	if ins.Modes[k-1] == Immediate {
		return i.param(k)
	}
	n, err := i.addr(ins, k)
	if err != nil {
		return 0, err
	}
	return i.Mem[n], nil
}

// load2 returns the values of the first two operands.
func (i *Instance) load2(ins *Instruction) (a, b Cell, err error) {
	if a, err = i.load(ins, 1); err != nil {
		return 0, 0, err
	}
	b, err = i.load(ins, 2)
	return a, b, err
}

// store writes v to the address designated by operand k.
func (i *Instance) store(ins *Instruction, k int, v Cell) error {
	n, err := i.addr(ins, k)
	if err != nil {
		return err
	}
	i.Mem[n] = v
	return nil
}

func (i *Instance) step() {
	pc := i.PC
	n, err := i.cell(Cell(pc))
	if err != nil {
		i.fault(err, 0)
		return
	}
	v := i.Mem[n]
	ins, err := Decode(v)
	if err != nil {
		i.fault(err, v)
		return
	}
	if err = i.exec(&ins); err != nil {
		i.fault(err, v)
		return
	}
	if i.state == AwaitingInput {
		i.log.Debug("awaiting input", "pc", pc)
		return
	}
	i.insCount++
	if i.state == Halted {
		i.log.Debug("halted", "pc", pc, "instructions", i.insCount)
	}
}

func (i *Instance) exec(ins *Instruction) error {
	switch ins.Op {
	case OpAdd, OpMul, OpLT, OpEQ:
		a, b, err := i.load2(ins)
		if err != nil {
			return err
		}
		var r Cell
		switch ins.Op {
		case OpAdd:
			r = a + b
		case OpMul:
			r = a * b
		case OpLT:
			if a < b {
				r = 1
			}
		case OpEQ:
			if a == b {
				r = 1
			}
		}
		if err = i.store(ins, 3, r); err != nil {
			return err
		}
		i.PC += 4
	case OpIn:
		if i.input.len() == 0 {
			i.state = AwaitingInput
			return nil
		}
		if err := i.store(ins, 1, i.input.peek()); err != nil {
			return err
		}
		i.input.pop()
		i.PC += 2
	case OpOut:
		a, err := i.load(ins, 1)
		if err != nil {
			return err
		}
		i.output.push(a)
		i.PC += 2
	case OpJT, OpJF:
		a, t, err := i.load2(ins)
		if err != nil {
			return err
		}
		if (a != 0) == (ins.Op == OpJT) {
			i.PC = int(t)
		} else {
			i.PC += 3
		}
	case OpArb:
		a, err := i.load(ins, 1)
		if err != nil {
			return err
		}
		i.RB += a
		i.PC += 2
	case OpHalt:
		i.state = Halted
		i.PC = 0
	default:
		return ErrIllegalInstruction
	}
	return nil
}

// fault puts the machine in the Faulted state. The PC is left on the faulting
// instruction.
func (i *Instance) fault(err error, instr Cell) {
	e := &Error{Err: ErrIllegalInstruction, PC: i.PC, Instr: instr}
	if a, ok := err.(addrError); ok {
		e.Err = ErrIllegalAddress
		e.Addr = Cell(a)
	}
	i.err = e
	i.state = Faulted
	i.log.Error(e.Err.Error(), "pc", e.PC, "instr", int64(instr), "addr", int64(e.Addr))
}
