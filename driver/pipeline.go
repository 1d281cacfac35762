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


package driver

import (
	"github.com/pkg/errors"

	"github.com/peterall/aoc19/vm"
)

// ErrStalled is returned by Pipeline.Run when no stage can make progress:
// every running stage is awaiting input and no values are in flight.
var ErrStalled = errors.New("pipeline stalled")

// Pipeline is a chain of machines where the output of each stage is fed to the
// input of the next one. In feedback mode, the output of the last stage is fed
// back to the first one.
type Pipeline struct {
	Stages   []*vm.Instance
	Feedback bool

	last  vm.Cell
	valid bool
}

// NewPipeline creates a pipeline of len(seeds) machines all running program p.
// The input queue of each machine is seeded with the corresponding values in
// seeds, typically a phase setting. The options are applied to every stage.
func NewPipeline(p vm.Program, seeds [][]vm.Cell, opts ...vm.Option) (*Pipeline, error) {
	if len(seeds) == 0 {
		return nil, errors.New("NewPipeline: no stages")
	}
	pl := &Pipeline{Stages: make([]*vm.Instance, len(seeds))}
	for k, s := range seeds {
		i, err := vm.New(p, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", k)
		}
		i.Write(s...)
		pl.Stages[k] = i
	}
	return pl, nil
}

// Run writes the given input values to the first stage and runs the stages in
// turn, forwarding values, until the last stage halts. It returns the last
// value output by the last stage.
//
// A fault in any stage stops the pipeline and is returned, wrapped with the
// stage number. If the last stage halts without ever producing a value, the
// returned error wraps vm.ErrNoOutput.
func (pl *Pipeline) Run(input ...vm.Cell) (vm.Cell, error) {
	n := len(pl.Stages)
	pl.Stages[0].Write(input...)
	for {
		moved := false
		for k, s := range pl.Stages {
			if s.Run() == vm.Faulted {
				return 0, errors.Wrapf(s.Err(), "stage %d", k)
			}
			out := s.ReadAll()
			if len(out) == 0 {
				continue
			}
			moved = true
			if k < n-1 {
				pl.Stages[k+1].Write(out...)
				continue
			}
			pl.last, pl.valid = out[len(out)-1], true
			if pl.Feedback && !pl.Stages[0].State().Terminal() {
				pl.Stages[0].Write(out...)
			}
		}
		if pl.Stages[n-1].State() == vm.Halted {
			break
		}
		if !moved {
			return 0, ErrStalled
		}
	}
	if !pl.valid {
		return 0, errors.Wrap(vm.ErrNoOutput, "last stage")
	}
	return pl.last, nil
}

// Chain runs program p in a pipeline with one stage per phase setting, sending
// seed to the first stage, and returns the final value of the last stage.
func Chain(p vm.Program, phases []vm.Cell, seed vm.Cell, feedback bool, opts ...vm.Option) (vm.Cell, error) {
	seeds := make([][]vm.Cell, len(phases))
	for k, ph := range phases {
		seeds[k] = []vm.Cell{ph}
	}
	pl, err := NewPipeline(p, seeds, opts...)
	if err != nil {
		return 0, err
	}
	pl.Feedback = feedback
	return pl.Run(seed)
}
