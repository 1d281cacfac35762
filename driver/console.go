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


package driver

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/peterall/aoc19/internal/ici"
	"github.com/peterall/aoc19/vm"
)

// InputMode selects how a Console converts its input stream into machine input.
type InputMode int

// Console input modes.
const (
	// LineMode reads a whole line and feeds it as ASCII, terminated by '\n'.
	LineMode InputMode = iota
	// KeyMode feeds each byte as soon as it is read. Carriage returns are
	// translated to '\n' and CTRL-D ends input. Use it with a terminal in raw
	// mode.
	KeyMode
	// ValueMode reads comma separated integers, one line at a time. Output
	// values are all written in decimal, one per line.
	ValueMode
)

var modeNames = [...]string{
	LineMode:  "line",
	KeyMode:   "key",
	ValueMode: "value",
}

func (m InputMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "invalid"
	}
	return modeNames[m]
}

// ParseInputMode returns the InputMode with the given name.
func ParseInputMode(s string) (InputMode, error) {
	for k, n := range modeNames {
		if strings.EqualFold(s, n) {
			return InputMode(k), nil
		}
	}
	return 0, errors.Errorf("unknown input mode %q", s)
}

// Console drives a machine interactively: it runs the machine, writes its
// output and supplies input from In whenever the machine asks for it.
//
// In the ASCII modes (LineMode and KeyMode), output values that are ASCII
// characters are written as is and other values are written in decimal on a
// line of their own.
type Console struct {
	Machine *vm.Instance
	In      io.Reader
	Out     io.Writer
	Mode    InputMode

	r *bufio.Reader
}

// NewConsole returns a new Console for the given machine.
func NewConsole(i *vm.Instance, in io.Reader, out io.Writer, mode InputMode) *Console {
	return &Console{Machine: i, In: in, Out: out, Mode: mode}
}

// Run runs the machine until it halts or faults. It returns nil once the
// machine has halted, the machine error if it faulted, and io.EOF if the
// machine asked for input after In was exhausted.
//
// Output produced by the machine is always written before returning.
func (c *Console) Run() error {
	ew := ici.NewWriter(c.Out)
	for {
		st := c.Machine.Run()
		c.flush(ew)
		if ew.Err != nil {
			return ew.Err
		}
		switch st {
		case vm.Halted:
			return nil
		case vm.Faulted:
			return c.Machine.Err()
		}
		if err := c.feed(); err != nil {
			return err
		}
	}
}

func (c *Console) flush(ew *ici.Writer) {
	for _, v := range c.Machine.ReadAll() {
		if c.Mode != ValueMode && IsASCII(v) {
			ew.Write([]byte{byte(v)})
			continue
		}
		ew.WriteInt(int64(v))
		ew.WriteString("\n")
	}
}

func (c *Console) feed() error {
	if c.In == nil {
		return io.EOF
	}
	if c.r == nil {
		c.r = bufio.NewReader(c.In)
	}
	switch c.Mode {
	case KeyMode:
		b, err := c.r.ReadByte()
		if err != nil {
			return err
		}
		switch b {
		case '\r':
			b = '\n'
		case 4:
			return io.EOF
		}
		c.Machine.Write(vm.Cell(b))
		return nil
	case ValueMode:
		for {
			line, err := c.r.ReadString('\n')
			if strings.TrimSpace(line) != "" {
				p, perr := vm.ParseString(line)
				if perr != nil {
					return errors.Wrap(perr, "input")
				}
				c.Machine.Write(p...)
				return nil
			}
			if err != nil {
				return err
			}
		}
	default:
		line, err := c.r.ReadString('\n')
		if line == "" {
			return err
		}
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		c.Machine.Write(EncodeASCII(line)...)
		return nil
	}
}
