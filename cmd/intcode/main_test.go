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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterall/aoc19/asm"
	"github.com/peterall/aoc19/driver"
	"github.com/peterall/aoc19/vm"
)

const (
	amp1  = "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0"
	ampFb = "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"
)

func execute(t *testing.T, in string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd(new(app))
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(in))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestRun(t *testing.T) {
	echo := writeFile(t, "echo.txt", "3,0,4,0,99\n")
	loop := writeFile(t, "loop.txt", "3,100,4,100,1105,1,0\n")

	tests := []struct {
		name string
		in   string
		args []string
		out  string
	}{
		{"input", "", []string{"run", "-i", "42", echo}, "42\n"},
		{"stdin", "7\n", []string{"run", echo}, "7\n"},
		{"ascii", "", []string{"run", "--ascii", writeFile(t, "hi.txt", "104,72,104,105,104,10,104,1000,99")}, "Hi\n1000\n"},
		{"dump", "", []string{"run", "--dump", writeFile(t, "add.txt", "1,0,0,0,99")}, "pc=0 rb=0 state=halted instructions=2 pending=0\n2,0,0,0,99\n"},
		{"asm", "", []string{"run", "-i", "5", writeFile(t, "echo.asm", "in 0 out 0 hlt")}, "5\n"},
	}
	for _, test := range tests {
		out, _, err := execute(t, test.in, test.args...)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.out, out, test.name)
	}

	out, _, err := execute(t, "1,2\n", "run", loop)
	assert.True(t, errors.Is(err, driver.ErrAwaitingInput), "%v", err)
	assert.Equal(t, "1\n2\n", out)

	_, _, err = execute(t, "", "run", "-i", "1,x", echo)
	assert.True(t, errors.Is(err, vm.ErrMalformedProgram), "%v", err)

	_, _, err = execute(t, "", "run")
	assert.EqualError(t, err, "no program file specified")
}

func TestRun_fault(t *testing.T) {
	fault := writeFile(t, "fault.txt", "1101,2,40,4,99")

	_, stderr, err := execute(t, "", "run", fault)
	var e *vm.Error
	require.True(t, errors.As(err, &e), "%v", err)
	assert.Equal(t, 4, e.PC)
	assert.Contains(t, stderr, "level=ERROR")
	assert.Contains(t, stderr, `msg="illegal instruction"`)

	_, stderr, err = execute(t, "", "run", "--log-level", "off", fault)
	assert.Error(t, err)
	assert.Empty(t, stderr)

	_, _, err = execute(t, "", "run", "--log-level", "loud", fault)
	assert.EqualError(t, err, `invalid log level "loud"`)

	_, _, err = execute(t, "", "run", "--memory-limit", "3", fault)
	assert.Error(t, err)
}

func TestChain(t *testing.T) {
	p1 := writeFile(t, "amp1.txt", amp1)
	pf := writeFile(t, "ampfb.txt", ampFb)
	tests := []struct {
		name string
		args []string
		out  string
	}{
		{"single", []string{"chain", "--phases", "4,3,2,1,0", p1}, "43210\n"},
		{"best", []string{"chain", "--phases", "0,1,2,3,4", "--best", p1}, "43210 4,3,2,1,0\n"},
		{"seed", []string{"chain", "--phases", "1", "--seed", "7", p1}, "71\n"},
		{"feedback", []string{"chain", "--phases", "5,6,7,8,9", "--feedback", "--best", pf}, "139629729 9,8,7,6,5\n"},
	}
	for _, test := range tests {
		out, _, err := execute(t, "", test.args...)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.out, out, test.name)
	}

	_, _, err := execute(t, "", "chain", p1)
	assert.EqualError(t, err, "no phase settings")

	_, _, err = execute(t, "", "chain", "--phases", "1", writeFile(t, "stall.txt", "3,0,3,0,3,0,99"))
	assert.Equal(t, driver.ErrStalled, errors.Cause(err))
}

func TestConfig(t *testing.T) {
	pf := writeFile(t, "ampfb.txt", ampFb)
	cfg := writeFile(t, "cfg.yaml", `
program: `+pf+`
log_level: error
memory_limit: 1000
chain:
  phases: [9, 8, 7, 6, 5]
  feedback: true
`)
	c, err := loadConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, pf, c.Program)
	assert.Equal(t, []vm.Cell{9, 8, 7, 6, 5}, c.Chain.Phases)
	assert.True(t, c.Chain.Feedback)
	assert.Equal(t, 1000, c.MemoryLimit)

	out, _, err := execute(t, "", "--config", cfg, "chain")
	require.NoError(t, err)
	assert.Equal(t, "139629729\n", out)

	// flags override the configuration
	out, _, err = execute(t, "", "--config", cfg, "chain", "--phases", "5,6,7,8,9", "--best")
	require.NoError(t, err)
	assert.Equal(t, "139629729 9,8,7,6,5\n", out)

	echo := writeFile(t, "in.yaml", "program: "+writeFile(t, "echo.txt", "3,0,4,0,99")+"\ninput: [-3]\n")
	out, _, err = execute(t, "", "--config", echo, "run")
	require.NoError(t, err)
	assert.Equal(t, "-3\n", out)

	_, err = loadConfig(writeFile(t, "bad.yaml", "programme: x\n"))
	assert.Error(t, err)
	_, err = loadConfig(writeFile(t, "neg.yaml", "memory_limit: -1\n"))
	assert.Error(t, err)
	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAsmDis(t *testing.T) {
	src := writeFile(t, "quine.asm", "( relative base ) arb #1 out @-1 hlt")
	out, _, err := execute(t, "", "asm", src)
	require.NoError(t, err)
	assert.Equal(t, "109,1,204,-1,99\n", out)

	dst := filepath.Join(t.TempDir(), "quine.txt")
	out, _, err = execute(t, "", "asm", "-o", dst, src)
	require.NoError(t, err)
	assert.Empty(t, out)
	p, err := vm.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, vm.Program{109, 1, 204, -1, 99}, p)

	out, _, err = execute(t, "", "dis", dst)
	require.NoError(t, err)
	assert.Equal(t, "         0\tarb #1\n         2\tout @-1\n         4\thlt\n", out)

	_, _, err = execute(t, "", "asm", writeFile(t, "bad.asm", "out #"))
	_, ok := err.(asm.ErrAsm)
	assert.True(t, ok, "%T: %v", err, err)
}

func TestAtExit(t *testing.T) {
	var b bytes.Buffer
	a := new(app)
	assert.Equal(t, 0, atExit(a, &b, nil))
	assert.Empty(t, b.String())

	assert.Equal(t, 1, atExit(a, &b, errors.New("boom")))
	assert.Equal(t, "\nboom\n", b.String())

	b.Reset()
	a.debug = true
	a.machine, _ = vm.New(vm.Program{1101, 2, 40, 4, 99})
	a.machine.Run()
	assert.Equal(t, 1, atExit(a, &b, a.machine.Err()))
	assert.Contains(t, b.String(), "PC: 4 (42), RB: 0, State: faulted")
}

func TestPermutations(t *testing.T) {
	seen := make(map[string]bool)
	err := permutations([]vm.Cell{1, 2, 3}, func(p []vm.Cell) error {
		seen[vm.Program(p).String()] = true
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 6)

	n := 0
	err = permutations([]vm.Cell{1, 2, 3}, func([]vm.Cell) error {
		n++
		return errors.New("stop")
	})
	assert.EqualError(t, err, "stop")
	assert.Equal(t, 1, n)
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", l.String())
	l, err = parseLevel("off")
	require.NoError(t, err)
	assert.Equal(t, levelOff, l)
	_, err = parseLevel("verbose")
	assert.Error(t, err)
}
