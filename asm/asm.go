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
	"io"

	"github.com/db47h/sicasm/obj"
	"github.com/db47h/sicasm/optab"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// maxAddr is the highest address the 6 hex digits fields of the object
// program can hold.
const maxAddr = 0xFFFFFF

// Assembler holds the state of an assembly run. The zero value is not usable,
// use New.
//
// Pass1 resets all state from a previous run, so an Assembler can be reused.
// An Assembler must not be used concurrently.
type Assembler struct {
	optab      *optab.Table
	maxText    int
	strict     bool
	symbols    *SymbolTable
	stmts      []Statement
	diags      []*Error
	nDiags1    int // diagnostics from pass 1
	start      uint32
	loc        uint32
	length     uint32
	startFound bool
	pass1Done  bool
}

// Option interface
type Option func(*Assembler) error

// MaxTextBytes sets the maximum length in bytes of Text records. The default,
// 0, puts all the object code in a single Text record. With a limit, records
// are also split at RESW and RESB statements. The limit must not exceed 255.
func MaxTextBytes(n int) Option {
	return func(a *Assembler) error {
		if n < 0 || n > obj.MaxTextLen {
			return errors.Errorf("text record limit %d out of range [0, %d]", n, obj.MaxTextLen)
		}
		a.maxText = n
		return nil
	}
}

// Strict makes duplicate labels and undefined symbols fatal. The default is
// false.
func Strict(strict bool) Option {
	return func(a *Assembler) error { a.strict = strict; return nil }
}

// New returns a new Assembler that uses the given opcode table.
func New(tab *optab.Table, opts ...Option) (*Assembler, error) {
	if tab == nil {
		return nil, errors.New("nil opcode table")
	}
	a := &Assembler{optab: tab, symbols: newSymbolTable()}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Assembler) reset() {
	a.symbols = newSymbolTable()
	a.stmts = nil
	a.diags = nil
	a.start, a.loc, a.length = 0, 0, 0
	a.startFound = false
	a.pass1Done = false
}

// diag records a non-fatal error.
func (a *Assembler) diag(e *Error) {
	glog.Warning(e)
	a.diags = append(a.diags, e)
}

// Assemble runs both passes over the source read from src. The name parameter
// is only used in error messages to name the source.
//
// If a pass fails, the returned error's cause is either an *Error for fatal
// errors, or an ErrAsm listing the diagnostics of a strict mode run.
func Assemble(name string, src io.Reader, tab *optab.Table, opts ...Option) (*Result, error) {
	a, err := New(tab, opts...)
	if err != nil {
		return nil, err
	}
	if err = a.Pass1(name, src); err != nil {
		return nil, err
	}
	return a.Pass2()
}

// Result is the output of a successful run.
type Result struct {
	Name        string // program name, from the START label
	Start       uint32
	Length      uint32
	Statements  []Statement // intermediate program
	Symbols     *SymbolTable
	Listing     []Line
	Program     *obj.Program
	Diagnostics []*Error
}

// Line is a statement processed by pass 2 along with its object code.
type Line struct {
	*Statement
	Code string
}
