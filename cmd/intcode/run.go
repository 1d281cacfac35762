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
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/peterall/aoc19/driver"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		input string
		ascii bool
		raw   bool
		dump  bool
	)
	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Run a program",
		Long: `Run a single machine.

Output values are printed one per line. When the machine runs out of input
values, more are read from standard input, as comma separated values.

In ASCII mode, input is read one line at a time and sent as ASCII text and
output values that are ASCII characters are printed as text. With --raw, the
terminal is switched to raw mode and each key press is sent immediately.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProgram(args)
			if err != nil {
				return err
			}
			values := a.cfg.Input
			if cmd.Flags().Changed("input") {
				if values, err = parseValues(input); err != nil {
					return err
				}
			}
			i, err := a.newMachine(p, values...)
			if err != nil {
				return err
			}

			mode := driver.ValueMode
			switch {
			case raw:
				mode = driver.KeyMode
				restore, err := setRawIO()
				if err != nil {
					return err
				}
				defer restore()
			case ascii || a.cfg.ASCII:
				mode = driver.LineMode
			}

			out := cmd.OutOrStdout()
			err = driver.NewConsole(i, cmd.InOrStdin(), out, mode).Run()
			if err == io.EOF {
				err = errors.Wrapf(driver.ErrAwaitingInput, "end of input @pc=%d", i.PC)
			}
			if dump {
				if derr := dumpVM(i, out); err == nil {
					err = derr
				}
			}
			return err
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "comma separated input `values`")
	f.BoolVar(&ascii, "ascii", false, "ASCII input and output")
	f.BoolVar(&raw, "raw", false, "ASCII mode with the terminal in raw mode")
	f.BoolVar(&dump, "dump", false, "dump registers and memory upon exit")
	return cmd
}

