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


// Package ici holds intcode-internal helpers shared by the vm, asm and driver
// packages and the command line tool.
package ici

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and tracks the number of bytes written and the
// first write error. Once a write has failed, all subsequent writes return
// that error without touching the underlying writer, so that callers can check
// for errors once, after a sequence of writes.
type Writer struct {
	w   io.Writer
	N   int64 // bytes written
	Err error
}

// NewWriter returns a Writer writing to w. If w already is a *Writer, it is
// returned as is.
func NewWriter(w io.Writer) *Writer {
	if iw, ok := w.(*Writer); ok {
		return iw
	}
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	w.N += int64(n)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

func (w *Writer) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

// WriteInt writes the decimal representation of v.
func (w *Writer) WriteInt(v int64) (n int, err error) {
	var b [20]byte
	return w.Write(strconv.AppendInt(b[:0], v, 10))
}

// WriteList writes the values in v in decimal, separated by sep, and returns
// the first write error.
func WriteList[T ~int64](w *Writer, sep string, v []T) error {
	for k := range v {
		if k > 0 {
			w.WriteString(sep)
		}
		w.WriteInt(int64(v[k]))
	}
	return w.Err
}
