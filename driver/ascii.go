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
	"strings"

	"github.com/peterall/aoc19/vm"
)

// EncodeASCII returns the values for each byte in s. Use it to feed text to
// machines that read ASCII input.
func EncodeASCII(s string) []vm.Cell {
	v := make([]vm.Cell, len(s))
	for k := 0; k < len(s); k++ {
		v[k] = vm.Cell(s[k])
	}
	return v
}

// IsASCII returns true if v is a 7 bits ASCII character.
func IsASCII(v vm.Cell) bool {
	return v >= 0 && v < 128
}

// DecodeASCII splits machine output into text and non ASCII values. Values that
// are not 7 bits ASCII characters are returned in order in values. Puzzle
// programs usually print a report as text and the answer as a single large
// value.
func DecodeASCII(out []vm.Cell) (text string, values []vm.Cell) {
	var b strings.Builder
	for _, v := range out {
		if IsASCII(v) {
			b.WriteByte(byte(v))
			continue
		}
		values = append(values, v)
	}
	return b.String(), values
}
