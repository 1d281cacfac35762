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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/peterall/aoc19/driver"
	"github.com/peterall/aoc19/vm"
)

func newChainCmd(a *app) *cobra.Command {
	var (
		phases   string
		feedback bool
		seed     int64
		best     bool
	)
	cmd := &cobra.Command{
		Use:   "chain [FILE]",
		Short: "Run a pipeline of machines",
		Long: `Run one machine per phase setting, all running the same program, with the
output of each machine connected to the input of the next one. The first input
of each machine is its phase setting. The seed value is sent to the first
machine and the last value output by the last machine is printed.

With --feedback, the output of the last machine is also sent back to the first
one until the last machine halts. With --best, all permutations of the phase
settings are tried and the highest result is printed along with its phases.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProgram(args)
			if err != nil {
				return err
			}
			ph := a.cfg.Chain.Phases
			if cmd.Flags().Changed("phases") {
				if ph, err = parseValues(phases); err != nil {
					return err
				}
			}
			if len(ph) == 0 {
				return errors.New("no phase settings")
			}
			if !cmd.Flags().Changed("seed") {
				seed = int64(a.cfg.Chain.Seed)
			}
			feedback = feedback || a.cfg.Chain.Feedback

			run := func(ph []vm.Cell) (vm.Cell, error) {
				v, err := driver.Chain(p, ph, vm.Cell(seed), feedback, a.vmOptions()...)
				return v, errors.Wrapf(err, "phases %s", vm.Program(ph))
			}
			if !best {
				v, err := run(ph)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}

			var (
				max  vm.Cell
				maxP []vm.Cell
			)
			err = permutations(ph, func(ph []vm.Cell) error {
				v, err := run(ph)
				if err != nil {
					return err
				}
				if maxP == nil || v > max {
					max, maxP = v, append(maxP[:0], ph...)
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", max, vm.Program(maxP))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&phases, "phases", "", "comma separated phase `settings`, one per machine")
	f.BoolVar(&feedback, "feedback", false, "feed the output of the last machine back to the first one")
	f.Int64Var(&seed, "seed", 0, "initial input `value` of the first machine")
	f.BoolVar(&best, "best", false, "try all permutations of the phase settings")
	return cmd
}

// permutations calls f for every permutation of a, in place. It stops at the
// first error returned by f.
func permutations(a []vm.Cell, f func([]vm.Cell) error) error {
	var perm func(k int) error
	perm = func(k int) error {
		if k == len(a) {
			return f(a)
		}
		for n := k; n < len(a); n++ {
			a[k], a[n] = a[n], a[k]
			if err := perm(k + 1); err != nil {
				return err
			}
			a[k], a[n] = a[n], a[k]
		}
		return nil
	}
	return perm(0)
}
