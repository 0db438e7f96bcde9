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
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/db47h/sicasm/obj"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Pass2 generates the object code and object program from the intermediate
// program built by Pass1.
func (a *Assembler) Pass2() (*Result, error) {
	if !a.pass1Done {
		return nil, errors.New("pass 2 requires a successful pass 1")
	}
	glog.V(1).Infof("pass 2: %d statements", len(a.stmts))
	a.diags = a.diags[:a.nDiags1]

	r := &Result{
		Name:       a.programName(),
		Start:      a.start,
		Length:     a.length,
		Statements: a.stmts,
		Symbols:    a.symbols,
	}
	tb := obj.NewTextBuilder(a.maxText)
	for i := range a.stmts {
		st := &a.stmts[i]
		code, err := a.objectCode(st)
		if err != nil {
			return nil, err
		}
		glog.V(2).Infof("%s: %s %s", st.Pos, st.AddrString(), code)
		r.Listing = append(r.Listing, Line{st, code})
		switch {
		case code != "":
			tb.Add(st.Addr, code)
		case st.Op == OpResw || st.Op == OpResb:
			tb.Break()
		}
		if st.Op == OpEnd {
			break
		}
	}
	if a.strict && len(a.diags) > 0 {
		return nil, errors.WithStack(newErrAsm(a.diags))
	}

	r.Program = &obj.Program{
		Header: obj.Header{Name: r.Name, Start: a.start, Length: a.length},
		Text:   tb.Records(),
		End:    obj.End{Entry: a.start},
	}
	r.Diagnostics = append([]*Error(nil), a.diags...)
	glog.V(1).Infof("pass 2: %d text records, %d diagnostics", len(r.Program.Text), len(r.Diagnostics))
	return r, nil
}

// programName returns the label of the first START statement.
func (a *Assembler) programName() string {
	for i := range a.stmts {
		if st := &a.stmts[i]; st.Op == OpStart {
			if st.Label == Absent {
				return ""
			}
			return st.Label
		}
	}
	return ""
}

func (a *Assembler) objectCode(st *Statement) (string, error) {
	switch st.Op {
	case OpInstr:
		var addr uint32
		if st.Operand != Absent {
			v, ok := a.symbols.Lookup(st.Operand)
			if !ok {
				a.diag(newError(st.Pos, ErrUndefined, "%s", st.Operand))
			}
			addr = v
		}
		return fmt.Sprintf("%s%04X", st.Opcode, addr), nil
	case OpWord:
		v, err := strconv.ParseInt(st.Operand, 10, 64)
		if err == nil && (v < -(1<<23) || v > maxAddr) {
			err = strconv.ErrRange
		}
		if err != nil {
			return "", errors.WithStack(newError(st.Pos, ErrNumber, "WORD value: %s", numError(err, st.Operand)))
		}
		return fmt.Sprintf("%06X", uint32(v)&maxAddr), nil
	case OpByte:
		typ, body, err := byteLiteral(st.Pos, st.Operand)
		if err != nil {
			return "", err
		}
		if typ == 'C' {
			return strings.ToUpper(hex.EncodeToString([]byte(body))), nil
		}
		return body, nil
	}
	return "", nil
}
