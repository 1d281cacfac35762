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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/peterall/aoc19/asm"
	"github.com/peterall/aoc19/internal/ici"
	"github.com/peterall/aoc19/vm"
)

type monitor struct {
	i   *vm.Instance
	out io.Writer
}

type monitorCmd struct {
	name  string
	usage string
	help  string
	fn    func(m *monitor, args []string) error
}

var monitorCmds []monitorCmd

func init() {
	monitorCmds = []monitorCmd{
		{"step", "[n]", "execute n instructions (default 1)", (*monitor).step},
		{"run", "", "run until the machine halts or waits for input", (*monitor).run},
		{"in", "v...", "append values to the input queue", (*monitor).in},
		{"out", "", "read and print all pending output values", (*monitor).output},
		{"mem", "addr [n]", "print n memory cells (default 8)", (*monitor).mem},
		{"poke", "addr v", "store v at address addr", (*monitor).poke},
		{"regs", "", "print registers", (*monitor).regs},
		{"dis", "[addr [n]]", "disassemble n instructions (default 10) at addr (default pc)", (*monitor).dis},
		{"reset", "", "reset the machine", (*monitor).reset},
		{"state", "", "print the run state and fault details", (*monitor).state},
		{"help", "", "print this help", (*monitor).help},
		{"quit", "", "leave the monitor", nil},
	}
}

func intArg(args []string, k int, def int) (int, error) {
	if k >= len(args) {
		return def, nil
	}
	n, err := strconv.ParseInt(args[k], 0, 0)
	if err != nil {
		return 0, errors.Errorf("invalid argument %q", args[k])
	}
	return int(n), nil
}

// exec executes a single monitor command line. It returns true if the command
// requests to leave the monitor.
func (m *monitor) exec(line string) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	name := strings.ToLower(args[0])
	if name == "quit" || name == "exit" || name == "q" {
		return true, nil
	}
	for _, c := range monitorCmds {
		if c.name == name && c.fn != nil {
			return false, c.fn(m, args[1:])
		}
	}
	return false, errors.Errorf("unknown command %q, try help", args[0])
}

func (m *monitor) step(args []string) error {
	n, err := intArg(args, 0, 1)
	if err != nil {
		return err
	}
	for ; n > 0; n-- {
		if m.i.Step() != vm.Running {
			break
		}
	}
	if err = m.regs(nil); err != nil {
		return err
	}
	if m.i.State().Terminal() {
		return m.state(nil)
	}
	return m.dis([]string{strconv.Itoa(m.i.PC), "1"})
}

func (m *monitor) run(args []string) error {
	m.i.Run()
	if err := m.regs(nil); err != nil {
		return err
	}
	if m.i.State() == vm.Faulted {
		return m.state(nil)
	}
	return nil
}

func (m *monitor) in(args []string) error {
	v, err := parseValues(strings.Join(args, ","))
	if err != nil {
		return err
	}
	m.i.Write(v...)
	return nil
}

func (m *monitor) output(args []string) error {
	v := m.i.ReadAll()
	if len(v) == 0 {
		_, err := io.WriteString(m.out, "(empty)\n")
		return err
	}
	_, err := fmt.Fprintln(m.out, vm.Program(v))
	return err
}

func (m *monitor) mem(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: mem addr [n]")
	}
	addr, err := intArg(args, 0, 0)
	if err != nil {
		return err
	}
	n, err := intArg(args, 1, 8)
	if err != nil {
		return err
	}
	if n < 0 {
		return errors.Errorf("invalid count %d", n)
	}
	v := make([]vm.Cell, n)
	for k := range v {
		v[k] = m.i.Peek(addr + k)
	}
	ew := ici.NewWriter(m.out)
	ew.WriteInt(int64(addr))
	ew.WriteString(": ")
	ici.WriteList(ew, " ", v)
	ew.WriteString("\n")
	return ew.Err
}

func (m *monitor) poke(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: poke addr v")
	}
	addr, err := intArg(args, 0, 0)
	if err != nil {
		return err
	}
	v, err := intArg(args, 1, 0)
	if err != nil {
		return err
	}
	return m.i.Poke(addr, vm.Cell(v))
}

func (m *monitor) regs(args []string) error {
	return writeRegs(m.i, m.out)
}

func (m *monitor) dis(args []string) error {
	pc, err := intArg(args, 0, m.i.PC)
	if err != nil {
		return err
	}
	n, err := intArg(args, 1, 10)
	if err != nil {
		return err
	}
	if pc < 0 {
		return errors.Wrapf(vm.ErrIllegalAddress, "dis %d", pc)
	}
	ew := ici.NewWriter(m.out)
	for ; n > 0 && pc < len(m.i.Mem); n-- {
		fmt.Fprintf(ew, "% 10d\t", pc)
		pc, _ = asm.Disassemble(m.i.Mem, pc, ew)
		ew.WriteString("\n")
	}
	return ew.Err
}

func (m *monitor) reset(args []string) error {
	m.i.Reset()
	return m.regs(nil)
}

func (m *monitor) state(args []string) error {
	ew := ici.NewWriter(m.out)
	ew.WriteString(m.i.State().String())
	if err := m.i.Err(); err != nil {
		ew.WriteString(": " + err.Error())
	}
	ew.WriteString("\n")
	return ew.Err
}

func (m *monitor) help(args []string) error {
	ew := ici.NewWriter(m.out)
	for _, c := range monitorCmds {
		fmt.Fprintf(ew, "%-6s %-11s %s\n", c.name, c.usage, c.help)
	}
	return ew.Err
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, len(monitorCmds))
	for k, c := range monitorCmds {
		items[k] = readline.PcItem(c.name)
	}
	return readline.NewPrefixCompleter(items...)
}

func newMonitorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor [FILE]",
		Short: "Run a program step by step in an interactive monitor",
		Long: `Load a program and start an interactive monitor where the machine can be run
step by step, its memory inspected and modified, and input supplied on demand.
Type help at the prompt for a list of commands.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProgram(args)
			if err != nil {
				return err
			}
			i, err := a.newMachine(p, a.cfg.Input...)
			if err != nil {
				return err
			}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "ic> ",
				HistoryFile:     filepath.Join(os.TempDir(), "intcode_history"),
				AutoComplete:    completer(),
				InterruptPrompt: "^C",
				EOFPrompt:       "quit",
				Stdout:          cmd.OutOrStdout(),
			})
			if err != nil {
				return errors.Wrap(err, "readline")
			}
			defer rl.Close()

			m := &monitor{i: i, out: rl.Stdout()}
			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt {
					if line == "" {
						return nil
					}
					continue
				}
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				quit, err := m.exec(line)
				if err != nil {
					fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
				}
				if quit {
					return nil
				}
			}
		},
	}
}
