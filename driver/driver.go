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


// Package driver provides generic drivers for Intcode machines: pipelines of
// machines connected output to input, an interactive console and helpers to
// convert between text and ASCII encoded values.
//
// A driver owns the sequencing of calls to Run on the machines it drives. None
// of the drivers in this package are safe for concurrent use.
package driver

import (
	"github.com/pkg/errors"

	"github.com/peterall/aoc19/vm"
)

// ErrAwaitingInput is returned by drivers when a machine needs more input than
// was supplied.
var ErrAwaitingInput = errors.New("machine awaiting input")

// RunValues runs a new machine for program p with the given input values and
// returns all values it produced. A machine that faults returns the values
// produced up to the fault along with the fault. A machine that runs out of
// input returns its output along with ErrAwaitingInput.
func RunValues(p vm.Program, inputs ...vm.Cell) ([]vm.Cell, error) {
	i, err := vm.New(p, vm.Input(inputs...))
	if err != nil {
		return nil, err
	}
	st := i.Run()
	out := i.ReadAll()
	switch st {
	case vm.Faulted:
		return out, i.Err()
	case vm.AwaitingInput:
		return out, errors.Wrapf(ErrAwaitingInput, "after %d inputs", len(inputs))
	}
	return out, nil
}
