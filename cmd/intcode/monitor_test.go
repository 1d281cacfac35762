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


package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterall/aoc19/vm"
)

func TestMonitor(t *testing.T) {
	i, err := vm.New(vm.Program{3, 0, 4, 0, 99})
	require.NoError(t, err)
	var b bytes.Buffer
	m := &monitor{i: i, out: &b}

	script := []struct {
		line string
		out  string
	}{
		{"", ""},
		{"regs", "pc=0 rb=0 state=ready instructions=0 pending=0\n"},
		{"run", "pc=0 rb=0 state=awaiting input instructions=0 pending=0\n"},
		{"in 42", ""},
		{"step", "pc=2 rb=0 state=running instructions=1 pending=0\n         2\tout 0\n"},
		{"mem 0 3", "0: 42 0 4\n"},
		{"STEP 5", "pc=0 rb=0 state=halted instructions=3 pending=0\nhalted\n"},
		{"out", "42\n"},
		{"out", "(empty)\n"},
		{"poke 0 99", ""},
		{"mem 0x0 1", "0: 99\n"},
		{"reset", "pc=0 rb=0 state=ready instructions=0 pending=0\n"},
		{"mem 0 1", "0: 3\n"},
		{"dis", "         0\tin 0\n         2\tout 0\n         4\thlt\n"},
		{"dis 2 1", "         2\tout 0\n"},
		{"state", "ready\n"},
	}
	for _, s := range script {
		b.Reset()
		quit, err := m.exec(s.line)
		require.NoError(t, err, s.line)
		assert.False(t, quit, s.line)
		assert.Equal(t, s.out, b.String(), s.line)
	}

	for _, line := range []string{"frob", "mem", "poke 1", "step x", "in a", "dis -1", "poke -1 0"} {
		_, err := m.exec(line)
		assert.Error(t, err, line)
	}

	for _, line := range []string{"quit", "exit", "q"} {
		quit, err := m.exec(line)
		assert.NoError(t, err)
		assert.True(t, quit, line)
	}

	b.Reset()
	_, err = m.exec("help")
	require.NoError(t, err)
	assert.Contains(t, b.String(), "step   [n]")
	assert.Contains(t, b.String(), "quit")
}

func TestMonitor_fault(t *testing.T) {
	i, err := vm.New(vm.Program{1101, 2, 40, 4, 99})
	require.NoError(t, err)
	var b bytes.Buffer
	m := &monitor{i: i, out: &b}
	_, err = m.exec("run")
	require.NoError(t, err)
	assert.Equal(t, "pc=4 rb=0 state=faulted instructions=1 pending=0\nfaulted: illegal instruction 42 @pc=4\n", b.String())

	b.Reset()
	_, err = m.exec("step")
	require.NoError(t, err)
	assert.Equal(t, "pc=4 rb=0 state=faulted instructions=1 pending=0\nfaulted: illegal instruction 42 @pc=4\n", b.String())
}
