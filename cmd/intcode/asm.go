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
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/peterall/aoc19/asm"
)

func newAsmCmd(a *app) *cobra.Command {
	var outFileName string
	cmd := &cobra.Command{
		Use:   "asm SRC",
		Short: "Assemble a program",
		Long: `Assemble SRC and write the resulting program as comma separated values.
Use "go doc github.com/peterall/aoc19/asm" for a description of the syntax.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "asm")
			}
			defer f.Close()
			p, err := asm.Assemble(args[0], bufio.NewReader(f))
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outFileName != "" {
				var out *os.File
				if out, err = os.Create(outFileName); err != nil {
					return errors.Wrap(err, "asm")
				}
				defer func() {
					if cerr := out.Close(); err == nil {
						err = cerr
					}
				}()
				w = out
			}
			if _, err = p.WriteTo(w); err != nil {
				return err
			}
			_, err = io.WriteString(w, "\n")
			return err
		},
	}
	cmd.Flags().StringVarP(&outFileName, "output", "o", "", "write program to `file` instead of stdout")
	return cmd
}

func newDisCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dis [FILE]",
		Short: "Disassemble a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProgram(args)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err = asm.DisassembleAll(p, 0, w); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}
