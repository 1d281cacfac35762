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

	"github.com/peterall/aoc19/internal/ici"
	"github.com/peterall/aoc19/vm"
)

func writeRegs(i *vm.Instance, w io.Writer) error {
	_, err := fmt.Fprintf(w, "pc=%d rb=%d state=%v instructions=%d pending=%d\n",
		i.PC, i.RB, i.State(), i.InstructionCount(), i.Pending())
	return err
}

// dumpVM dumps the registers, then memory as a program, to the specified
// io.Writer.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ici.NewWriter(w)
	writeRegs(i, ew)
	if err := i.Err(); err != nil {
		ew.WriteString("fault: " + err.Error() + "\n")
	}
	i.Dump(ew)
	ew.WriteString("\n")
	return ew.Err
}
