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

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// DefaultMemoryLimit is the default maximum memory size in cells.
const DefaultMemoryLimit = 1 << 24

// State is the run state of an Instance.
type State int

// Run states.
const (
	Ready         State = iota // loaded, not yet started
	Running                    // executing
	AwaitingInput              // suspended on IN with an empty input queue
	Halted                     // reached the halt instruction
	Faulted                    // stopped on an illegal instruction or address
)

var stateNames = [...]string{
	"ready",
	"running",
	"awaiting input",
	"halted",
	"faulted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// Terminal reports whether s is Halted or Faulted. A machine in a terminal
// state does nothing until reset.
func (s State) Terminal() bool {
	return s == Halted || s == Faulted
}

// Instance represents an Intcode machine instance.
type Instance struct {
	PC       int    // Program Counter
	RB       Cell   // Relative base
	Mem      []Cell // Memory
	prog     Program
	input    queue
	output   queue
	state    State
	err      error
	insCount int64
	memLimit int
	log      *slog.Logger
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(values ...Cell) Option {
	return func(i *Instance) error { i.Write(values...); return nil }
}

// Logger sets the logger used to report faults and state changes. Machines
// created without this option do not log.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			l = discard
		}
		i.log = l
		return nil
	}
}

// MemoryLimit sets the maximum memory size in cells. Accessing an address at
// or beyond the limit faults the machine with ErrIllegalAddress. The default
// is DefaultMemoryLimit.
func MemoryLimit(cells int) Option {
	return func(i *Instance) error {
		if cells < len(i.prog) {
			return errors.Errorf("memory limit %d is smaller than the program (%d cells)", cells, len(i.prog))
		}
		i.memLimit = cells
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new machine running program p. The machine is in the Ready
// state. Options are applied after loading, so Input values are not cleared by
// the implicit reset.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		memLimit: DefaultMemoryLimit,
		log:      discard,
	}
	if err := i.Load(p); err != nil {
		return nil, err
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Load binds program p to the machine and resets it. If p does not fit within
// the memory limit, Load returns an error and leaves the machine untouched.
func (i *Instance) Load(p Program) error {
	if len(p) > i.memLimit {
		return errors.Errorf("program (%d cells) exceeds memory limit %d", len(p), i.memLimit)
	}
	i.prog = p
	i.Reset()
	return nil
}

// Reset restores memory from the program, clears the registers and both I/O
// queues, and puts the machine in the Ready state.
func (i *Instance) Reset() {
	i.Mem = append(i.Mem[:0], i.prog...)
	i.PC = 0
	i.RB = 0
	i.input.reset()
	i.output.reset()
	i.state = Ready
	i.err = nil
	i.insCount = 0
}

// Program returns the program bound to the machine.
func (i *Instance) Program() Program {
	return i.prog
}

// State returns the current run state.
func (i *Instance) State() State {
	return i.state
}

// Err returns the *Error that caused the machine to fault, or nil.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed since the last
// reset.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the machine memory in program text form to w.
func (i *Instance) Dump(w io.Writer) error {
	_, err := Program(i.Mem).WriteTo(w)
	return err
}
