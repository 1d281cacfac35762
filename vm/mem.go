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

import "github.com/pkg/errors"

// grow extends memory to size cells. New cells are zero, including cells
// recovered from the capacity left over by a previous reset.
func (i *Instance) grow(size int) {
	n := len(i.Mem)
	if size <= n {
		return
	}
	if size <= cap(i.Mem) {
		i.Mem = i.Mem[:size]
		clear(i.Mem[n:])
		return
	}
	i.Mem = append(i.Mem, make([]Cell, size-n)...)
}

// cell returns the index of address a, growing memory as needed.
func (i *Instance) cell(a Cell) (int, error) {
	if a < 0 || a >= Cell(i.memLimit) {
		return 0, addrError(a)
	}
	n := int(a)
	if n >= len(i.Mem) {
		i.grow(n + 1)
	}
	return n, nil
}

// Peek returns the value at address addr. Addresses beyond the current extent
// read as zero; Peek never grows memory.
func (i *Instance) Peek(addr int) Cell {
	if addr < 0 || addr >= len(i.Mem) {
		return 0
	}
	return i.Mem[addr]
}

// Poke stores v at address addr, growing memory as needed.
func (i *Instance) Poke(addr int, v Cell) error {
	n, err := i.cell(Cell(addr))
	if err != nil {
		return errors.Wrap(ErrIllegalAddress, "Poke")
	}
	i.Mem[n] = v
	return nil
}
