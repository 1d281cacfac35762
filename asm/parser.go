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

package asm

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/peterall/aoc19/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	p      vm.Program
	s      scanner.Scanner
	labels map[string]*label
	errs   ErrAsm

	// instruction being assembled
	opPos int
	op    vm.Opcode
	k     int // operands written so far
	arity int
}

func newParser() *parser {
	return &parser{labels: make(map[string]*label)}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	p.p = append(p.p, v)
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{labelSite{p.s.Position, -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, len(p.p)})
}

func (p *parser) defineLabel(name string) {
	switch {
	case name == "":
		p.error(p.s.Position, "Empty label name")
		return
	case opcodeIndex[strings.ToLower(name)] != 0:
		p.error(p.s.Position, "Label name is a mnemonic: "+name)
		return
	}
	if _, err := parseInt(name); err == nil {
		p.error(p.s.Position, "Label name is a number: "+name)
		return
	}
	l, ok := p.labels[name]
	if !ok {
		p.labels[name] = &label{labelSite{p.s.Position, len(p.p)}, nil}
		return
	}
	if l.address != -1 {
		p.error(p.s.Position, "Label redefinition: "+name+", previous definition here: "+l.pos.String())
		return
	}
	l.address = len(p.p)
	l.pos = p.s.Position
}

// parseInt parses integers in any base accepted by strconv as well as
// character literals.
func parseInt(s string) (vm.Cell, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return vm.Cell(n), nil
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, cerr := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if cerr != nil {
			return 0, cerr
		}
		if tail != "" {
			return 0, strconv.ErrSyntax
		}
		return vm.Cell(r), nil
	}
	return 0, err
}

// value writes an integer or a label reference.
func (p *parser) value(s string) {
	if v, err := parseInt(s); err == nil {
		p.write(v)
		return
	}
	if s == "" || s[0] == '\'' || s[0] == '-' || unicode.IsDigit(rune(s[0])) {
		p.error(p.s.Position, "Invalid value: "+s)
		p.write(0)
		return
	}
	p.useLabel(s)
	p.write(0)
}

func (p *parser) operand(s string) {
	mode := vm.Position
	switch {
	case strings.HasPrefix(s, "#"):
		mode, s = vm.Immediate, s[1:]
	case strings.HasPrefix(s, "@"):
		mode, s = vm.Relative, s[1:]
	}
	if mode == vm.Immediate && p.k+1 == p.op.Output() {
		p.error(p.s.Position, "Immediate mode not allowed for written operand of "+p.op.String())
	}
	p.value(s)
	f := vm.Cell(100)
	for n := 0; n < p.k; n++ {
		f *= 10
	}
	p.p[p.opPos] += vm.Cell(mode) * f
	p.k++
}

func (p *parser) pending() bool {
	return p.k < p.arity
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error(p.s.Position, "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := strings.TrimSuffix(p.s.TokenText(), ",")

		if s == "(" {
			// skip comments
			for tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")") {
				tok = p.s.Scan()
			}
			continue
		}

		op, isOp := opcodeIndex[strings.ToLower(s)]
		if p.pending() {
			if isOp || strings.HasPrefix(s, ":") || strings.HasPrefix(s, ".") {
				p.error(p.s.Position, "Missing operand for "+p.op.String()+" before "+s)
				p.arity = 0
			} else {
				p.operand(s)
				continue
			}
		}

		switch {
		case isOp:
			p.op, p.opPos, p.k, p.arity = op, len(p.p), 0, op.Arity()
			p.write(vm.Cell(op))
		case strings.HasPrefix(s, ":"):
			p.defineLabel(s[1:])
		case s == ".dat":
			// raw data follows. Bare values are data anyway.
		case strings.HasPrefix(s, "."):
			p.error(p.s.Position, "Unknown dot directive: "+s)
		case strings.HasPrefix(s, "#") || strings.HasPrefix(s, "@"):
			p.error(p.s.Position, "Operand outside of an instruction: "+s)
		default:
			p.value(s)
		}
	}
	if p.pending() {
		p.error(p.s.Pos(), "Missing operand for "+p.op.String()+" at end of input")
	}

	// write labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.uses[0].pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.p[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
