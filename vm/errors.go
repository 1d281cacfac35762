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
	"strconv"

	"github.com/pkg/errors"
)

// Errors reported by the package.
var (
	ErrMalformedProgram   = errors.New("malformed program")
	ErrIllegalInstruction = errors.New("illegal instruction")
	ErrIllegalAddress     = errors.New("illegal address")
	ErrNoOutput           = errors.New("no output available")
)

// Error describes the cause and the context of a machine fault.
type Error struct {
	Err   error // ErrIllegalInstruction or ErrIllegalAddress
	PC    int   // address of the faulting instruction
	Instr Cell  // faulting instruction cell
	Addr  Cell  // effective address when Err is ErrIllegalAddress
}

func (e *Error) Error() string {
	msg := e.Err.Error() + " "
	if e.Err == ErrIllegalAddress {
		msg += strconv.FormatInt(int64(e.Addr), 10) + " in " + strconv.FormatInt(int64(e.Instr), 10)
	} else {
		msg += strconv.FormatInt(int64(e.Instr), 10)
	}
	return msg + " @pc=" + strconv.Itoa(e.PC)
}

// Cause returns the underlying sentinel error. It makes errors.Cause work on
// *Error values.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying sentinel error.
func (e *Error) Unwrap() error { return e.Err }

// addrError is returned by memory accessors and turned into an *Error by the
// fetch loop.
type addrError Cell

func (a addrError) Error() string {
	return ErrIllegalAddress.Error() + " " + strconv.FormatInt(int64(a), 10)
}
