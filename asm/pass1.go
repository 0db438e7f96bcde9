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
	"bufio"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Pass1 reads the source from r, assigns addresses to statements and builds
// the symbol table. The name parameter is used only in error messages.
func (a *Assembler) Pass1(name string, r io.Reader) error {
	a.reset()
	glog.V(1).Infof("pass 1: %s", name)

	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		st, ok := parseLine(Position{name, line}, s.Text(), a.optab)
		if !ok {
			continue
		}
		if err := a.statement(&st); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "source read failed")
	}

	a.length = a.loc - a.start
	glog.V(1).Infof("pass 1: %d statements, %d symbols, start %X, length %X",
		len(a.stmts), a.symbols.Len(), a.start, a.length)
	if a.strict && len(a.diags) > 0 {
		return errors.WithStack(newErrAsm(a.diags))
	}
	a.nDiags1 = len(a.diags)
	a.pass1Done = true
	return nil
}

func (a *Assembler) statement(st *Statement) error {
	if st.Op == OpStart && !a.startFound {
		v, err := parseUint(st.Pos, st.Operand, 16, 24, "START address")
		if err != nil {
			return err
		}
		a.start, a.loc = uint32(v), uint32(v)
		a.startFound = true
		a.stmts = append(a.stmts, *st)
		return nil
	}

	if st.Label != Absent {
		if prev, ok := a.symbols.define(st.Label, a.loc, st.Pos); !ok {
			a.diag(newError(st.Pos, ErrDuplicate, "%s, previous definition here: %s", st.Label, prev.Pos))
		}
	}

	st.Addr, st.HasAddr = a.loc, true
	n, err := a.size(st)
	if err != nil {
		return err
	}
	if uint64(a.loc)+n > maxAddr+1 {
		return errors.WithStack(newError(st.Pos, ErrNumber, "location counter overflow: %X + %X", a.loc, n))
	}
	glog.V(2).Infof("%s: %X %s %s +%X", st.Pos, st.Addr, st.Mnemonic, st.Op, n)
	a.stmts = append(a.stmts, *st)
	a.loc += uint32(n)
	return nil
}

// size returns by how much a statement advances the location counter.
func (a *Assembler) size(st *Statement) (uint64, error) {
	switch st.Op {
	case OpWord, OpInstr:
		return 3, nil
	case OpResw:
		n, err := parseUint(st.Pos, st.Operand, 10, 32, "RESW count")
		return 3 * n, err
	case OpResb:
		return parseUint(st.Pos, st.Operand, 10, 32, "RESB count")
	case OpByte:
		if _, _, err := byteLiteral(st.Pos, st.Operand); err != nil {
			return 0, err
		}
		return uint64(len(st.Operand) - 3), nil
	}
	return 0, nil
}
