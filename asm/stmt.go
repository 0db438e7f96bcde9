// This file is part of sicasm - https://github.com/db47h/sicasm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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
	"strconv"
	"strings"

	"github.com/db47h/sicasm/optab"
	"github.com/pkg/errors"
)

// Absent is the placeholder for an absent field.
const Absent = "-"

// Op is the kind of a statement, resolved once from its mnemonic.
type Op uint8

// Statement kinds.
const (
	OpUnknown Op = iota // not a directive and not in the opcode table
	OpStart
	OpEnd
	OpWord
	OpResw
	OpResb
	OpByte
	OpInstr // machine instruction
)

var directives = map[string]Op{
	"START": OpStart,
	"END":   OpEnd,
	"WORD":  OpWord,
	"RESW":  OpResw,
	"RESB":  OpResb,
	"BYTE":  OpByte,
}

var opNames = [...]string{"unknown", "START", "END", "WORD", "RESW", "RESB", "BYTE", "instruction"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Statement is a source statement annotated by pass 1.
type Statement struct {
	Pos      Position
	Addr     uint32
	HasAddr  bool // false for the START statement
	Label    string
	Mnemonic string
	Operand  string
	Op       Op
	Opcode   string // machine opcode, OpInstr only
}

// AddrString returns the statement address in upper case hex, or "-" if the
// statement has none.
func (s *Statement) AddrString() string {
	if !s.HasAddr {
		return Absent
	}
	return strings.ToUpper(strconv.FormatUint(uint64(s.Addr), 16))
}

// parseLine splits a source line into a statement. It returns false for blank
// and comment lines.
func parseLine(pos Position, line string, tab *optab.Table) (Statement, bool) {
	f := strings.Fields(line)
	if len(f) == 0 || f[0][0] == '.' {
		return Statement{}, false
	}
	// unlabeled statement with the label field omitted
	if len(f) < 3 && isMnemonic(f[0], tab) {
		f = append([]string{Absent}, f...)
	}
	s := Statement{Pos: pos, Label: f[0], Mnemonic: Absent, Operand: Absent}
	if len(f) > 1 {
		s.Mnemonic = f[1]
	}
	if len(f) > 2 {
		s.Operand = f[2]
	}
	if op, ok := directives[s.Mnemonic]; ok {
		s.Op = op
	} else if code, ok := tab.Lookup(s.Mnemonic); ok {
		s.Op = OpInstr
		s.Opcode = code
	}
	return s, true
}

func isMnemonic(s string, tab *optab.Table) bool {
	if _, ok := directives[s]; ok {
		return true
	}
	_, ok := tab.Lookup(s)
	return ok
}

// byteLiteral splits a BYTE operand into its type ('C' or 'X') and body.
func byteLiteral(pos Position, operand string) (typ byte, body string, err error) {
	if len(operand) < 3 || operand[1] != '\'' || operand[len(operand)-1] != '\'' {
		return 0, "", errors.WithStack(newError(pos, ErrSyntax, "malformed BYTE literal %s", operand))
	}
	typ, body = operand[0], operand[2:len(operand)-1]
	switch typ {
	case 'C':
	case 'X':
		for i := 0; i < len(body); i++ {
			if !isHexDigit(body[i]) {
				return 0, "", errors.WithStack(newError(pos, ErrSyntax, "invalid hex digit %q in %s", body[i], operand))
			}
		}
	default:
		return 0, "", errors.WithStack(newError(pos, ErrSyntax, "unknown BYTE literal type %c in %s", typ, operand))
	}
	return typ, body, nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// parseUint parses s as an unsigned integer in the given base, fitting in bits.
func parseUint(pos Position, s string, base, bits int, what string) (uint64, error) {
	v, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, errors.WithStack(newError(pos, ErrNumber, "%s: %s", what, numError(err, s)))
	}
	return v, nil
}

func numError(err error, s string) string {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	if err == strconv.ErrRange {
		return strconv.Quote(s) + " out of range"
	}
	return "invalid literal " + strconv.Quote(s)
}
