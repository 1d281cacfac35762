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

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/peterall/aoc19/internal/ici"
)

// Program is a loaded Intcode program. A Program is never modified by the
// machines running it, so the same Program can be shared by any number of
// Instances.
type Program []Cell

// Parse reads a program in text form: decimal integers separated by commas.
// Whitespace around values and empty values are ignored. A token that is not
// a valid integer yields an error wrapping ErrMalformedProgram.
func Parse(r io.Reader) (Program, error) {
	br := bufio.NewReader(r)
	var p Program
	for n := 0; ; n++ {
		tok, err := br.ReadString(',')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "read failed")
		}
		if s := strings.TrimSpace(strings.TrimSuffix(tok, ",")); s != "" {
			v, perr := strconv.ParseInt(s, 10, 64)
			if perr != nil {
				return nil, errors.Wrapf(ErrMalformedProgram, "token %d: %q", n, s)
			}
			p = append(p, Cell(v))
		}
		if err == io.EOF {
			break
		}
	}
	if len(p) == 0 {
		return nil, errors.Wrap(ErrMalformedProgram, "empty program")
	}
	return p, nil
}

// ParseString is like Parse but reads from a string.
func ParseString(s string) (Program, error) {
	return Parse(strings.NewReader(s))
}

// Load loads a program from file fileName.
func Load(fileName string) (Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return p, nil
}

// Clone returns a copy of p.
func (p Program) Clone() Program {
	return append(Program(nil), p...)
}

// WriteTo writes p in text form to w.
func (p Program) WriteTo(w io.Writer) (n int64, err error) {
	ew := ici.NewWriter(w)
	start := ew.N
	err = ici.WriteList(ew, ",", p)
	return ew.N - start, err
}

func (p Program) String() string {
	var b strings.Builder
	p.WriteTo(&b)
	return b.String()
}
