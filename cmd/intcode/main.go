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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/peterall/aoc19/asm"
	"github.com/peterall/aoc19/vm"
)

type app struct {
	configFile  string
	logLevel    string
	memoryLimit int
	debug       bool

	cfg     Config
	log     *slog.Logger
	machine *vm.Instance // last machine created, for post-mortem diagnostics
}

// setup loads the configuration file, if any, and configures logging. Command
// line flags take precedence over configuration values.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configFile != "" {
		cfg, err := loadConfig(a.configFile)
		if err != nil {
			return err
		}
		a.cfg = *cfg
	}
	f := cmd.Flags()
	if !f.Changed("log-level") && a.cfg.LogLevel != "" {
		a.logLevel = a.cfg.LogLevel
	}
	if !f.Changed("memory-limit") && a.cfg.MemoryLimit != 0 {
		a.memoryLimit = a.cfg.MemoryLimit
	}
	h, err := newLogHandler(cmd.ErrOrStderr(), a.logLevel)
	if err != nil {
		return err
	}
	a.log = slog.New(h)
	return nil
}

func (a *app) vmOptions() []vm.Option {
	opts := []vm.Option{vm.Logger(a.log)}
	if a.memoryLimit > 0 {
		opts = append(opts, vm.MemoryLimit(a.memoryLimit))
	}
	return opts
}

func (a *app) newMachine(p vm.Program, input ...vm.Cell) (*vm.Instance, error) {
	i, err := vm.New(p, append(a.vmOptions(), vm.Input(input...))...)
	if err != nil {
		return nil, err
	}
	a.machine = i
	return i, nil
}

// loadProgram loads the program named on the command line, or the one from the
// configuration file. Files with a .asm extension are assembled.
func (a *app) loadProgram(args []string) (vm.Program, error) {
	name := a.cfg.Program
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return nil, errors.New("no program file specified")
	}
	if !strings.EqualFold(filepath.Ext(name), ".asm") {
		return vm.Load(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	return asm.Assemble(name, f)
}

// parseValues parses a comma separated list of values.
func parseValues(s string) ([]vm.Cell, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	p, err := vm.ParseString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid values %q", s)
	}
	return p, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "intcode",
		Short: "Intcode virtual machine toolbox",
		Long: `intcode runs, chains, assembles and disassembles Intcode programs.

Program files contain comma separated integers. Files with a .asm extension are
assembled before use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "load settings from YAML `file`")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log `level` (debug, info, warn, error or off)")
	pf.IntVar(&a.memoryLimit, "memory-limit", 0, "machine memory limit in `cells` (0 for the default)")
	pf.BoolVar(&a.debug, "debug", false, "enable debug diagnostics")

	root.AddCommand(
		newRunCmd(a),
		newChainCmd(a),
		newAsmCmd(a),
		newDisCmd(a),
		newMonitorCmd(a),
	)
	return root
}

func atExit(a *app, w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if !a.debug {
		fmt.Fprintf(w, "\n%v\n", err)
		return 1
	}
	fmt.Fprintf(w, "\n%+v\n", err)
	if i := a.machine; i != nil {
		fmt.Fprintf(w, "PC: %v (%v), RB: %v, State: %v\n", i.PC, i.Peek(i.PC), i.RB, i.State())
	}
	return 1
}

func main() {
	a := new(app)
	err := newRootCmd(a).Execute()
	os.Exit(atExit(a, os.Stderr, err))
}
