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
	"log/slog"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// levelOff disables logging.
const levelOff = slog.Level(math.MaxInt)

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "off", "none", "":
		return levelOff, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.Errorf("invalid log level %q", s)
	}
	return l, nil
}

func newLogHandler(w io.Writer, level string) (slog.Handler, error) {
	l, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if l == levelOff {
		w = io.Discard
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}), nil
}
