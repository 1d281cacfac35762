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

// queue is a FIFO of cells. Consumed cells are reclaimed when the queue
// empties or when more than half of the buffer is dead.
type queue struct {
	buf  []Cell
	head int
}

func (q *queue) len() int { return len(q.buf) - q.head }

func (q *queue) push(v ...Cell) { q.buf = append(q.buf, v...) }

func (q *queue) peek() Cell { return q.buf[q.head] }

func (q *queue) pop() Cell {
	v := q.buf[q.head]
	q.head++
	switch {
	case q.head == len(q.buf):
		q.reset()
	case q.head >= 32 && q.head > len(q.buf)/2:
		n := copy(q.buf, q.buf[q.head:])
		q.buf = q.buf[:n]
		q.head = 0
	}
	return v
}

func (q *queue) drain() []Cell {
	if q.len() == 0 {
		return nil
	}
	v := append([]Cell(nil), q.buf[q.head:]...)
	q.reset()
	return v
}

func (q *queue) reset() {
	q.buf = q.buf[:0]
	q.head = 0
}

// Write appends values to the input queue. It can be called in any state;
// values are consumed by IN instructions in the order they were written.
func (i *Instance) Write(values ...Cell) {
	i.input.push(values...)
}

// Pending returns the number of input values not yet consumed.
func (i *Instance) Pending() int {
	return i.input.len()
}

// CanRead returns true if the output queue is not empty.
func (i *Instance) CanRead() bool {
	return i.output.len() > 0
}

// Read removes and returns the oldest value in the output queue. If the queue
// is empty, it returns 0 and ErrNoOutput.
func (i *Instance) Read() (Cell, error) {
	if i.output.len() == 0 {
		i.log.Warn("read from empty output queue", "pc", i.PC, "state", i.state)
		return 0, ErrNoOutput
	}
	return i.output.pop(), nil
}

// ReadAll removes and returns all values in the output queue, oldest first.
func (i *Instance) ReadAll() []Cell {
	return i.output.drain()
}
